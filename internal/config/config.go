package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Host string
	Port int
}

type StoreConfig struct {
	// Backend selects the record store: "file" for the JSON file store,
	// "sqlite" for the local sqlite database.
	Backend string
	Path    string
}

type Config struct {
	Environment string
	HTTP        HTTPConfig
	Store       StoreConfig
	SeedDemo    bool
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()

	_ = v.ReadInConfig()

	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Store: StoreConfig{
			Backend: v.GetString("STORE_BACKEND"),
			Path:    v.GetString("STORE_PATH"),
		},
		SeedDemo: v.GetBool("SEED_DEMO"),
	}

	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "0.0.0.0"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 8080
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = "file"
	}
	if cfg.Store.Path == "" {
		switch cfg.Store.Backend {
		case "sqlite":
			cfg.Store.Path = "data/orders.db"
		default:
			cfg.Store.Path = "data/orders.json"
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Store.Backend != "file" && cfg.Store.Backend != "sqlite" {
		return fmt.Errorf("STORE_BACKEND must be \"file\" or \"sqlite\", got %q", cfg.Store.Backend)
	}
	return nil
}
