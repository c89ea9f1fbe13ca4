package config

import (
	"go.uber.org/zap/zapcore"
)

type Option func(cfg *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(cfg *Config) {
		cfg.Log.LogLevel = level
	}
}

func WithName(name string) Option {
	return func(cfg *Config) {
		cfg.Catalog.Name = name
	}
}

func WithStrictUpdate(strict bool) Option {
	return func(cfg *Config) {
		cfg.Catalog.StrictUpdate = strict
	}
}
