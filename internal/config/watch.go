package config

import (
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch reloads the configuration file whenever it changes and passes each
// valid result to fn. Invalid edits are logged and skipped. Watch does
// nothing when no file was loaded.
func Watch(v *viper.Viper, logger *slog.Logger, fn func(*Config)) {
	if v.ConfigFileUsed() == "" {
		return
	}
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := reload(v)
		if err != nil {
			logger.Warn("config reload failed", "file", e.Name, "error", err)
			return
		}
		logger.Info("config reloaded", "file", e.Name)
		fn(cfg)
	})
	v.WatchConfig()
}

// reload unmarshals and validates the current state of v.
func reload(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	cfg.path = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
