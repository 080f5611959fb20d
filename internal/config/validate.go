package config

import "fmt"

// Validate checks the configuration for values that cannot work at runtime.
func (c *Config) Validate() error {
	if c.SLA.DefaultDays < 0 {
		return fmt.Errorf("sla.default_days: must not be negative, got %d", c.SLA.DefaultDays)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
