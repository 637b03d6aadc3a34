package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Binance struct {
		BaseURL        string `yaml:"base_url"`
		KlinesInterval string `yaml:"klines_interval"`
		KlinesLimit    int    `yaml:"klines_limit"`
	} `yaml:"binance"`
	Cache struct {
		ResultTTL time.Duration `yaml:"result_ttl"`
		SeriesTTL time.Duration `yaml:"series_ttl"`
	} `yaml:"cache"`
	Screener struct {
		RefreshInterval time.Duration `yaml:"refresh_interval"`
	} `yaml:"screener"`
	Alerts struct {
		MinScore int           `yaml:"min_score"`
		Cooldown time.Duration `yaml:"cooldown"`
	} `yaml:"alerts"`
}

// Load reads config from a YAML file (missing file is fine, defaults apply),
// then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("BINANCE_BASE_URL"); v != "" {
		cfg.Binance.BaseURL = v
	}

	return cfg, nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Binance.KlinesInterval = "1h"
	cfg.Binance.KlinesLimit = 50
	cfg.Cache.ResultTTL = 180 * time.Second
	cfg.Cache.SeriesTTL = 3600 * time.Second
	cfg.Screener.RefreshInterval = time.Minute
	cfg.Alerts.MinScore = 85
	cfg.Alerts.Cooldown = 30 * time.Minute
	return cfg
}
