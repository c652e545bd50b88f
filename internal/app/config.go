package app

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

// Backend выбирает реализацию Record Store.
type Backend string

const (
	// BackendPostgres — удалённая база, рабочий режим.
	BackendPostgres Backend = "postgres"
	// BackendMemory — хранилище в памяти процесса; данные живут одно
	// выполнение команды. Годится для демонстраций и отладки.
	BackendMemory Backend = "memory"
)

// Config описывает настройки CLI, читаемые из окружения.
type Config struct {
	DatabaseURL string `env:"RETAIL_DATABASE_URL"`
	Backend     string `env:"RETAIL_BACKEND" envDefault:"postgres"`
	LogLevel    string `env:"RETAIL_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig читает конфигурацию из переменных окружения.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	switch Backend(cfg.Backend) {
	case BackendPostgres, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unsupported backend: %q", cfg.Backend)
	}
	if Backend(cfg.Backend) == BackendPostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("RETAIL_DATABASE_URL is required for the postgres backend")
	}

	return cfg, nil
}
