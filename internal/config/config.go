package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// RetryConfig содержит настройки генерации коротких кодов
type RetryConfig struct {
	// MaxAttempts - число попыток сгенерировать свободный код
	MaxAttempts int `env:"CODE_GEN_MAX_ATTEMPTS" envDefault:"5"`
}

// Config содержит конфигурацию приложения.
// Значения читаются из переменных окружения (файл .env подхватывается
// автоматически) и могут быть переопределены флагами командной строки.
type Config struct {
	// ServerAddress - адрес HTTP сервера
	ServerAddress NetworkAddress `env:"SERVER_ADDRESS"`

	// BaseURL - базовый адрес, из которого строится короткий URL
	BaseURL URLPrefix `env:"BASE_URL"`

	// DatabaseDSN - строка подключения к PostgreSQL.
	// Пустое значение переключает приложение на хранилище в памяти.
	DatabaseDSN string `env:"DATABASE_DSN"`

	Retry RetryConfig
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress: NetworkAddress{Host: "localhost", Port: 8080},
		BaseURL:       URLPrefix("http://localhost:8080"),
		Retry:         RetryConfig{MaxAttempts: 5},
	}
}

// Load читает конфигурацию из окружения и флагов командной строки
func Load() (*Config, error) {
	// .env необязателен, его отсутствие не является ошибкой
	_ = godotenv.Load()

	cfg := NewDefaultConfig()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flag.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	flag.Var(&cfg.BaseURL, "b", "base URL for shortened links")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL connection string")
	flag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.BaseURL.String() == "" {
		return fmt.Errorf("base URL is required (BASE_URL or -b)")
	}

	if c.ServerAddress.Port == 0 {
		return fmt.Errorf("server address is required (SERVER_ADDRESS or -a)")
	}

	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("code generation attempts must be positive, got %d", c.Retry.MaxAttempts)
	}

	return nil
}
