// Package commands implements the CLI commands for hotelintel.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "hotelintel",
	Short: "Extract structured hotel information from hotel websites",
	Long: `Hotelintel scrapes hotel websites and extracts a structured profile:
contact details, policies, parking, amenities, dining, rooms, nearby
points of interest, and guest services.

Extraction layers three strategies per field group: a remote language
model when an API key is configured, local entity recognition, and a
regex/keyword baseline that always works offline.

Examples:
  # Extract one hotel site (pattern + NLP only, no API key needed)
  hotelintel scrape -u "https://grandplaza.example" --no-remote

  # Use Anthropic (picks up ANTHROPIC_API_KEY)
  hotelintel scrape -u "https://grandplaza.example" -p anthropic

  # Batch mode with YAML output to a file
  hotelintel scrape -u "https://a.example" -u "https://b.example" \
      --format yaml -o hotels.yaml

  # Headless browser for JavaScript-rendered sites
  hotelintel scrape -u "https://spa-widget-hotel.example" --fetch-mode dynamic`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.hotelintel.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".hotelintel")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("HOTELINTEL")
	viper.AutomaticEnv()

	_ = viper.BindEnv("api_key", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "OPENROUTER_API_KEY")

	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
