package config

import (
	"fmt"
	"net/url"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/postbrowser/internal/core/styles"
)

// Validate checks that the configuration is valid. All problems are
// reported together as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("endpoint", c.Endpoint, validEndpoint),
		criterio.Run("theme", c.Theme, knownTheme),
		c.validateNumbers(),
	)
}

func (c *Config) validateNumbers() error {
	var errs criterio.FieldErrorsBuilder
	if c.PageSize < 1 {
		errs = errs.Append("page_size", fmt.Errorf("must be at least 1, got %d", c.PageSize))
	}
	if c.TruncateLength < 1 {
		errs = errs.Append("truncate_length", fmt.Errorf("must be at least 1, got %d", c.TruncateLength))
	}
	if c.Timeout < 0 {
		errs = errs.Append("timeout", fmt.Errorf("cannot be negative"))
	}
	if c.MessageTTL < 0 {
		errs = errs.Append("message_ttl", fmt.Errorf("cannot be negative"))
	}
	return errs.ToError()
}

// validEndpoint requires an absolute http or https URL.
func validEndpoint(raw string) error {
	if raw == "" {
		return fmt.Errorf("is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

func knownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}
