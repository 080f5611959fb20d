package main

import (
	"log/slog"
	"strings"
	"sync"

	"scriptorium/internal/config"
	"scriptorium/internal/logging"
	"scriptorium/internal/registry"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = slog.Default()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = slog.Default()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// withStore opens the registry for the duration of one command. Open acquires
// the session lock; Close releases it before the process exits.
func (c *commandContext) withStore(fn func(*registry.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := registry.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
