package htmladf

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/htmladf/core/transform"
)

// Config holds converter settings. It is tagged so a host application can
// embed it in its own JSON, YAML or viper-managed configuration.
type Config struct {
	// MarkMode is "first" (default) or "all". See transform.MarkMode.
	MarkMode string `json:"mark_mode" yaml:"mark_mode" mapstructure:"mark_mode"`

	// MaxDepth prunes elements nested deeper than this. Zero means no limit.
	MaxDepth int `json:"max_depth" yaml:"max_depth" mapstructure:"max_depth"`

	// MaxTokenBytes makes parsing fail on any single tag or text run longer
	// than this. Zero means no limit.
	MaxTokenBytes int `json:"max_token_bytes" yaml:"max_token_bytes" mapstructure:"max_token_bytes"`

	// Selector, when set, converts only the children of the first element
	// matching this CSS selector. The input is then parsed as a full page.
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty" mapstructure:"selector"`

	// StripNoise removes scripts, navigation, forms and similar elements
	// before Selector is applied. Ignored without a Selector.
	StripNoise bool `json:"strip_noise" yaml:"strip_noise" mapstructure:"strip_noise"`
}

// DefaultConfig returns the settings Format uses.
func DefaultConfig() Config {
	return Config{MarkMode: string(transform.MarkModeFirst)}
}

// Validate checks the settings that can be checked without compiling the
// selector.
func (c Config) Validate() error {
	if !transform.MarkMode(c.MarkMode).Valid() {
		return errors.Errorf("invalid mark_mode %q: must be %q or %q", c.MarkMode, transform.MarkModeFirst, transform.MarkModeAll)
	}
	if c.MaxDepth < 0 {
		return errors.Errorf("invalid max_depth %d: must not be negative", c.MaxDepth)
	}
	if c.MaxTokenBytes < 0 {
		return errors.Errorf("invalid max_token_bytes %d: must not be negative", c.MaxTokenBytes)
	}
	return nil
}

// ConfigFromViper decodes a Config from v, starting from DefaultConfig so
// unset keys keep their defaults.
func ConfigFromViper(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding converter config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
