package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config описывает все параметры приложения, читаемые из переменных окружения.
type Config struct {
	BotToken string `env:"BOT_TOKEN"`

	DBHost string `env:"DB_HOST" envDefault:"db"`
	DBPort string `env:"DB_PORT" envDefault:"5432"`
	DBUser string `env:"DB_USER"`
	DBPass string `env:"DB_PASS"`
	DBName string `env:"DB_NAME"`

	// KVPath - каталог встраиваемого key-value хранилища (badger),
	// где живут пригласительные токены.
	KVPath string `env:"KV_PATH" envDefault:"/var/lib/travel-agent/badger"`

	GeocoderURL string `env:"GEOCODER_URL" envDefault:"https://nominatim.openstreetmap.org"`
	RouterURL   string `env:"ROUTER_URL" envDefault:"https://router.project-osrm.org"`

	APIPort string `env:"API_PORT" envDefault:"8080"`
}

// Load читает конфигурацию из окружения.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// DSN собирает строку подключения к PostgreSQL.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}
