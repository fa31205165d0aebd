package gamecore

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ethernalpaths/gamecore/gamecore/database"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type Config struct {
	Log    LogConfig         `toml:"log"`
	Server ServerConfig      `toml:"server"`
	DB     database.DBConfig `toml:"db"`
	Spaces struct {
		Key      string `toml:"key"`
		Secret   string `toml:"secret"`
		Region   string `toml:"region"`
		Bucket   string `toml:"bucket"`
		CardRoot string `toml:"cardroot"`
	} `toml:"spaces"`
	Game GameConfig `toml:"game"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    string     `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

type GameConfig struct {
	// Spacing between sequential achievement unlock notifications.
	UnlockNotifyDelay time.Duration `toml:"unlock_notify_delay"`
	// Number of owned-card sets kept in the bonus totals cache.
	BonusCacheSize int `toml:"bonus_cache_size"`
}

func (c GameConfig) NotifyDelay() time.Duration {
	if c.UnlockNotifyDelay <= 0 {
		return 2500 * time.Millisecond
	}
	return c.UnlockNotifyDelay
}

func (c GameConfig) CacheSize() int {
	if c.BonusCacheSize <= 0 {
		return 1024
	}
	return c.BonusCacheSize
}
