package toolfactory

import (
	"github.com/effective-security/agentools/pkg/toolutils"
	"github.com/effective-security/agentools/tools/sendmail"
	"github.com/effective-security/x/configloader"
)

// Config is the injected configuration for the tool library.
// Values support ${ENV} expansion, so credentials stay out of the file.
type Config struct {
	HTTP         HTTPConfig          `json:"http" yaml:"http"`
	Search       SearchConfig        `json:"search" yaml:"search"`
	ExchangeRate ExchangeRateConfig  `json:"exchange_rate" yaml:"exchange_rate"`
	Email        *sendmail.SESConfig `json:"email,omitempty" yaml:"email,omitempty"`
}

// HTTPConfig overrides the shared outbound HTTP adapter defaults.
type HTTPConfig struct {
	UserAgent string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	// Timeout bounds a single outbound request, in time.ParseDuration
	// format (e.g. "5s"); defaults to 10s.
	Timeout string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
}

type SearchConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

type ExchangeRateConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// LoadConfig from file
func LoadConfig(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	err := configloader.UnmarshalAndExpand(file, cfg)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) String() string {
	redacted := *c
	if c.Email != nil {
		email := *c.Email
		email.SecretAccessKey = "***"
		redacted.Email = &email
	}
	return toolutils.ToYAML(redacted)
}
