// Package toolfactory constructs the tool registry from configuration.
package toolfactory

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/agentools/pkg/httpx"
	"github.com/effective-security/agentools/tools"
	"github.com/effective-security/agentools/tools/exchangerate"
	"github.com/effective-security/agentools/tools/sendmail"
	"github.com/effective-security/agentools/tools/webscrape"
	"github.com/effective-security/agentools/tools/websearch"
)

// New builds a registry with every tool the configuration enables.
// The mail tool is registered only when an email provider is configured.
func New(ctx context.Context, cfg *Config) (*tools.Registry, error) {
	client := httpx.New()
	if cfg.HTTP.UserAgent != "" {
		client.WithHeader("User-Agent", cfg.HTTP.UserAgent)
	}
	if cfg.HTTP.Timeout != "" {
		timeout, err := time.ParseDuration(cfg.HTTP.Timeout)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid http timeout: %q", cfg.HTTP.Timeout)
		}
		client.WithTimeout(timeout)
	}

	scrape, err := webscrape.New()
	if err != nil {
		return nil, err
	}
	scrape.WithHTTPClient(client)

	search, err := websearch.New()
	if err != nil {
		return nil, err
	}
	search.WithHTTPClient(client)
	if cfg.Search.BaseURL != "" {
		search.WithBaseURL(cfg.Search.BaseURL)
	}

	rates, err := exchangerate.New()
	if err != nil {
		return nil, err
	}
	rates.WithHTTPClient(client)
	if cfg.ExchangeRate.BaseURL != "" {
		rates.WithBaseURL(cfg.ExchangeRate.BaseURL)
	}

	reg := tools.NewRegistry()
	if err := reg.Register(scrape, search, rates); err != nil {
		return nil, err
	}

	if cfg.Email != nil {
		sender, err := sendmail.NewSESSender(ctx, cfg.Email)
		if err != nil {
			return nil, errors.WithMessage(err, "failed to create email provider")
		}
		mail, err := sendmail.New(sender)
		if err != nil {
			return nil, err
		}
		if err := reg.Register(mail); err != nil {
			return nil, err
		}
	}

	return reg, nil
}
