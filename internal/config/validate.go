package config

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/chandas"
	"github.com/cours-de-latin/chandas/internal/translit"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be > 0 (got %d)", c.Server.MaxBodyBytes)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Identify.validate(); err != nil {
		return fmt.Errorf("identify: %w", err)
	}
	return nil
}

func (l LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (i IdentifyConfig) validate() error {
	if _, err := chandas.ParseMode(i.DefaultResplit); err != nil {
		return fmt.Errorf("default_resplit: %w", err)
	}
	if _, err := translit.ParseScheme(i.DefaultScheme); err != nil {
		return fmt.Errorf("default_scheme: %w", err)
	}
	if i.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", i.Workers)
	}
	return nil
}

// Mode returns the parsed default resplit mode. Validate must have passed.
func (i IdentifyConfig) Mode() chandas.Mode {
	m, _ := chandas.ParseMode(i.DefaultResplit)
	return m
}

// Origins splits AllowedOrigins on commas.
func (c CORSConfig) Origins() []string { return splitList(c.AllowedOrigins) }

// Methods splits AllowedMethods on commas.
func (c CORSConfig) Methods() []string { return splitList(c.AllowedMethods) }

// Headers splits AllowedHeaders on commas.
func (c CORSConfig) Headers() []string { return splitList(c.AllowedHeaders) }

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
