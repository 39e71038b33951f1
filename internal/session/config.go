// internal/session/config.go
package session

import (
	"os"
	"strconv"

	"go-ant-defense/internal/config"
	"go-ant-defense/internal/defs"
)

// Config — настройки хоста из окружения.
type Config struct {
	Seed  int64   // 0 — случайный сид
	Route string  // Ключ встроенного маршрута
	Speed float64 // Стартовый множитель скорости
}

func DefaultConfig() Config {
	return Config{
		Route: config.DefaultRouteKey,
		Speed: 1,
	}
}

// LoadConfig читает ANTS_SEED, ANTS_ROUTE и ANTS_SPEED. Некорректные значения игнорируются.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if seed := os.Getenv("ANTS_SEED"); seed != "" {
		if val, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	if name := os.Getenv("ANTS_ROUTE"); name != "" {
		if _, ok := defs.Routes[name]; ok {
			cfg.Route = name
		}
	}

	if speed := os.Getenv("ANTS_SPEED"); speed != "" {
		if val, err := strconv.ParseFloat(speed, 64); err == nil && val > 0 && val <= 16 {
			cfg.Speed = val
		}
	}

	return cfg
}
