package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hotelintel/hotelintel/internal/batch"
	"github.com/hotelintel/hotelintel/internal/extract"
	"github.com/hotelintel/hotelintel/internal/llm"
	"github.com/hotelintel/hotelintel/internal/logger"
	"github.com/hotelintel/hotelintel/internal/output"
	"github.com/hotelintel/hotelintel/internal/scraper"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Extract hotel information from one or more hotel websites",
	Long: `Scrape hotel websites and extract structured hotel profiles.

Each site is fetched once, reduced to a content sample, and run through
the extraction pipeline. Results stream to stdout or a file.

Examples:
  # Single site, JSON to stdout
  hotelintel scrape -u "https://grandplaza.example"

  # Offline mode: skip the remote model entirely
  hotelintel scrape -u "https://grandplaza.example" --no-remote

  # Several sites, RAG-ready text profiles
  hotelintel scrape -u "https://a.example" -u "https://b.example" \
      --format ragtext -o profiles.txt`,
	RunE: runScrape,
}

func init() {
	rootCmd.AddCommand(scrapeCmd)

	flags := scrapeCmd.Flags()

	// URL inputs
	flags.StringSliceP("url", "u", nil, "hotel website URL(s) to scrape (can be repeated)")
	flags.StringP("name", "n", "", "hotel name override (single URL only)")

	// LLM settings
	flags.StringP("provider", "p", "", "LLM provider: anthropic, openai, openrouter, ollama (auto-detects from env vars)")
	flags.StringP("model", "m", "", "model name (provider-specific)")
	flags.StringP("api-key", "k", "", "API key (or use env var)")
	flags.String("base-url", "", "custom API base URL")

	// Strategy settings
	flags.Bool("no-remote", false, "disable the remote language-model strategy")
	flags.Bool("no-nlp", false, "disable the local entity-recognition strategy")
	flags.String("sample-budget", "3000", "content sample size (e.g. 3000, 5KB)")
	flags.Duration("page-timeout", 2*time.Minute, "per-page extraction timeout")

	// Fetch settings
	flags.String("fetch-mode", "static", "fetch mode: static, dynamic")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.Duration("delay", 5*time.Second, "delay between sites in batch mode")

	// Output settings
	flags.StringP("output", "o", "", "output file (default: stdout)")
	flags.String("format", "json", "output format: json, jsonl, yaml, markdown, ragtext")

	_ = viper.BindPFlag("provider", flags.Lookup("provider"))
	_ = viper.BindPFlag("model", flags.Lookup("model"))
	_ = viper.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
}

func runScrape(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	urls, _ := cmd.Flags().GetStringSlice("url")
	if len(urls) == 0 {
		return cmd.Help()
	}

	nameOverride, _ := cmd.Flags().GetString("name")
	if nameOverride != "" && len(urls) > 1 {
		return fmt.Errorf("--name applies to a single URL, got %d", len(urls))
	}

	cfg, provider, err := buildExtractionConfig(cmd)
	if err != nil {
		return err
	}

	opts := []extract.OrchestratorOption{}
	if provider != nil {
		opts = append(opts, extract.WithProvider(provider))
	}
	orch, err := extract.NewOrchestrator(cfg, opts...)
	if err != nil {
		logError("failed to set up extraction: %v", err)
		return err
	}
	logInfo("Strategies: %s", strings.Join(orch.Strategies(), " > "))

	fetchMode, _ := cmd.Flags().GetString("fetch-mode")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	fetcher, err := scraper.New(fetchMode, scraper.FetcherConfig{Timeout: timeout})
	if err != nil {
		return err
	}
	defer func() { _ = fetcher.Close() }()

	delay, _ := cmd.Flags().GetDuration("delay")
	batchCfg := batch.DefaultConfig()
	batchCfg.Delay = delay
	batchCfg.FetchOptions.Timeout = timeout
	batchCfg.HotelName = nameOverride
	runner := batch.New(fetcher, orch, batchCfg)

	writer, closeOutput, err := openWriter(cmd)
	if err != nil {
		return err
	}
	defer closeOutput()

	processed, failed := 0, 0
	for result := range runner.Run(ctx, urls) {
		if result.Err != nil {
			failed++
			logError("%s: %v", result.URL, result.Err)
			continue
		}

		if err := writer.Write(result.Record); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		processed++
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	logInfo("Done: %d extracted, %d failed", processed, failed)
	if processed == 0 && failed > 0 {
		return fmt.Errorf("all %d sites failed", failed)
	}
	return nil
}

// buildExtractionConfig assembles the extraction config and, when the remote
// strategy is enabled, the language-model provider behind it.
func buildExtractionConfig(cmd *cobra.Command) (extract.Config, llm.Provider, error) {
	cfg := extract.DefaultConfig()

	noRemote, _ := cmd.Flags().GetBool("no-remote")
	noNLP, _ := cmd.Flags().GetBool("no-nlp")
	cfg.UseRemote = !noRemote
	cfg.UseLocalNLP = !noNLP

	budgetStr, _ := cmd.Flags().GetString("sample-budget")
	if strings.TrimSpace(budgetStr) != "" {
		budget, err := humanize.ParseBytes(budgetStr)
		if err != nil {
			return cfg, nil, fmt.Errorf("invalid sample-budget %q: %w", budgetStr, err)
		}
		cfg.SampleCharBudget = int(budget)
	}

	pageTimeout, _ := cmd.Flags().GetDuration("page-timeout")
	cfg.PageTimeout = pageTimeout

	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	if !cfg.UseRemote {
		return cfg, nil, nil
	}

	providerName := viper.GetString("provider")
	apiKey := viper.GetString("api_key")
	if providerName == "" {
		detected, detectedKey := llm.DetectProvider()
		providerName = detected
		if apiKey == "" {
			apiKey = detectedKey
		}
		logger.Debug("provider auto-detected", "provider", providerName)
	}

	model := viper.GetString("model")
	if model == "" {
		model = llm.GetDefaultModel(providerName)
	}

	provider, err := llm.NewProvider(providerName, llm.ProviderConfig{
		APIKey:  apiKey,
		BaseURL: viper.GetString("base_url"),
		Model:   model,
	})
	if err != nil {
		// No usable provider is not fatal: extraction degrades to the
		// local strategies.
		logger.Warn("remote strategy disabled", "error", err)
		cfg.UseRemote = false
		return cfg, nil, nil
	}

	logInfo("Provider: %s (%s)", providerName, model)
	return cfg, provider, nil
}

// openWriter creates the output writer for the chosen format and target.
func openWriter(cmd *cobra.Command) (output.Writer, func(), error) {
	format, _ := cmd.Flags().GetString("format")
	outPath, _ := cmd.Flags().GetString("output")

	dest := os.Stdout
	cleanup := func() {}
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return nil, nil, fmt.Errorf("create output file: %w", err)
		}
		dest = f
		cleanup = func() { _ = f.Close() }
	}

	writer, err := output.NewWriter(dest, output.Format(format))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return writer, cleanup, nil
}
