package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Events  EventsConfig  `yaml:"events"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MetricsPort int `yaml:"metrics_port"`
}

// CatalogConfig selects where the catalog snapshot is loaded from:
// "csv" reads CSVPath, "postgres" reads Table via DatabaseURL.
type CatalogConfig struct {
	Source      string `yaml:"source"`
	CSVPath     string `yaml:"csv_path"`
	DatabaseURL string `yaml:"database_url"`
	Table       string `yaml:"table"`
}

type EventsConfig struct {
	URL string `yaml:"url"`
}

type ScoringConfig struct {
	Weights     ScoringWeights `yaml:"weights"`
	DefaultTopN int            `yaml:"default_top_n"`
	MaxTopN     int            `yaml:"max_top_n"`
}

// ScoringWeights are the default priority weights applied when a request
// does not supply its own. Relative magnitudes are all that matter; the
// engine normalizes them before use.
type ScoringWeights struct {
	Performance float64 `yaml:"performance"`
	Economy     float64 `yaml:"economy"`
	Safety      float64 `yaml:"safety"`
	Comfort     float64 `yaml:"comfort"`
	Ownership   float64 `yaml:"ownership"`
	Price       float64 `yaml:"price"`
	FuelPref    float64 `yaml:"fuel_pref"`
	BodyPref    float64 `yaml:"body_pref"`
}

// Map renders the weights in the form the ranking engine consumes.
func (w ScoringWeights) Map() map[string]float64 {
	return map[string]float64{
		"performance": w.Performance,
		"economy":     w.Economy,
		"safety":      w.Safety,
		"comfort":     w.Comfort,
		"ownership":   w.Ownership,
		"price":       w.Price,
		"fuel_pref":   w.FuelPref,
		"body_pref":   w.BodyPref,
	}
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:        8700,
			MetricsPort: 8701,
		},
		Catalog: CatalogConfig{
			Source:  "csv",
			CSVPath: "data/cars.csv",
			Table:   "cars",
		},
		Scoring: ScoringConfig{
			Weights: ScoringWeights{
				Performance: 5,
				Economy:     6,
				Safety:      8,
				Comfort:     5,
				Ownership:   5,
				Price:       6,
				FuelPref:    5,
				BodyPref:    5,
			},
			DefaultTopN: 20,
			MaxTopN:     200,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if cfg.Catalog.Source != "csv" && cfg.Catalog.Source != "postgres" {
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MOTORWALA_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("MOTORWALA_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("MOTORWALA_CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("MOTORWALA_CATALOG_CSV"); v != "" {
		cfg.Catalog.CSVPath = v
	}
	if v := os.Getenv("MOTORWALA_DATABASE_URL"); v != "" {
		cfg.Catalog.DatabaseURL = v
	}
	if v := os.Getenv("MOTORWALA_CATALOG_TABLE"); v != "" {
		cfg.Catalog.Table = v
	}
	if v := os.Getenv("MOTORWALA_NATS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("MOTORWALA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
