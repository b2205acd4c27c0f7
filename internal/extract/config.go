package extract

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/hotelintel/hotelintel/internal/normalize"
	"github.com/hotelintel/hotelintel/pkg/hotel"
)

// Config controls which strategies run and how results are scored. The zero
// value is not usable; start from DefaultConfig.
type Config struct {
	// UseRemote enables the remote language-model strategy when a provider
	// is configured.
	UseRemote bool `mapstructure:"use_remote"`

	// UseLocalNLP enables the local entity-recognition strategy.
	UseLocalNLP bool `mapstructure:"use_local_nlp"`

	// SampleCharBudget caps the normalized content sample.
	SampleCharBudget int `mapstructure:"sample_char_budget" validate:"min=1"`

	// StrategyOrder is the fallback priority, highest first.
	StrategyOrder []string `mapstructure:"strategy_order" validate:"min=1,dive,oneof=remote nlp pattern"`

	// PageTimeout bounds a full page extraction including all strategies.
	PageTimeout time.Duration `mapstructure:"page_timeout" validate:"min=0"`

	// Weights and Saturation parameterize the confidence score.
	Weights    hotel.Weights    `mapstructure:"weights"`
	Saturation hotel.Saturation `mapstructure:"saturation"`
}

// DefaultConfig returns the standard configuration: all strategies on, in
// the remote, nlp, pattern priority order.
func DefaultConfig() Config {
	return Config{
		UseRemote:        true,
		UseLocalNLP:      true,
		SampleCharBudget: normalize.DefaultCharBudget,
		StrategyOrder:    []string{StrategyRemote, StrategyNLP, StrategyPattern},
		PageTimeout:      2 * time.Minute,
		Weights:          hotel.DefaultWeights(),
		Saturation:       hotel.DefaultSaturation(),
	}
}

var validate = validator.New()

// Validate checks the configuration for structural errors.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid extraction config: %w", err)
	}
	seen := make(map[string]bool, len(c.StrategyOrder))
	for _, name := range c.StrategyOrder {
		if seen[name] {
			return fmt.Errorf("invalid extraction config: duplicate strategy %q in order", name)
		}
		seen[name] = true
	}
	return nil
}
