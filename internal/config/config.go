// Package config содержит логику чтения конфигурации сервиса проверки NIT.
package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config содержит параметры конфигурации сервиса проверки NIT.
type Config struct {
	RunAddress string `env:"RUN_ADDRESS"`
	BatchLimit int    `env:"BATCH_LIMIT"`
}

// Parse считывает конфигурацию из флагов командной строки и переменных окружения.
// Значения переменных окружения имеют приоритет над флагами.
func Parse() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	envRunAddress := cfg.RunAddress
	envBatchLimit := cfg.BatchLimit

	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "address and port for HTTP server")
	flag.IntVar(&cfg.BatchLimit, "b", 100, "maximum number of NITs in a batch request")

	flag.Parse()

	if envRunAddress != "" {
		cfg.RunAddress = envRunAddress
	}
	if envBatchLimit != 0 {
		cfg.BatchLimit = envBatchLimit
	}

	if cfg.RunAddress == "" {
		cfg.RunAddress = "localhost:8080"
	}
	if cfg.BatchLimit <= 0 {
		cfg.BatchLimit = 100
	}

	return cfg, nil
}
