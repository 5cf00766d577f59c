package config

import "time"

// Config is the resolved campus configuration.
type Config struct {
	Toast        ToastConfig        `mapstructure:"toast" yaml:"toast"`
	Admin        AdminConfig        `mapstructure:"admin" yaml:"admin"`
	Registration RegistrationConfig `mapstructure:"registration" yaml:"registration"`
	Content      ContentConfig      `mapstructure:"content" yaml:"content"`
	Log          LogConfig          `mapstructure:"log" yaml:"log"`
}

// ToastConfig controls the toast queue.
type ToastConfig struct {
	Duration time.Duration `mapstructure:"duration" yaml:"duration" validate:"gt=0"`
}

// AdminConfig holds the demo dashboard credentials.
type AdminConfig struct {
	Username string `mapstructure:"username" yaml:"username" validate:"required"`
	Password string `mapstructure:"password" yaml:"password" validate:"required"`
}

// RegistrationConfig tunes the simulated submission endpoint.
type RegistrationConfig struct {
	Latency time.Duration `mapstructure:"latency" yaml:"latency" validate:"gte=0"`
}

// ContentConfig points at an alternative catalog. Empty uses the embedded one.
type ContentConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level" validate:"log_level"`
	Human bool   `mapstructure:"human" yaml:"human"`
	File  string `mapstructure:"file" yaml:"file"`
}
