package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Flights FlightsConfig `yaml:"flights"`
	Fares   FaresConfig   `yaml:"fares"`
	Logging LoggingConfig `yaml:"logging"`
}

type StoreConfig struct {
	Path string `yaml:"path"`
}

type FlightsConfig struct {
	DomesticFile      string `yaml:"domestic_file"`
	InternationalFile string `yaml:"international_file"`
}

type FaresConfig struct {
	Domestic      float64 `yaml:"domestic"`
	International float64 `yaml:"international"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no config file exists;
// the file names match the ones the tool has always used.
func Default() *Config {
	return &Config{
		Store: StoreConfig{Path: "reservations.txt"},
		Flights: FlightsConfig{
			DomesticFile:      "domestic_flights.txt",
			InternationalFile: "international_flights.txt",
		},
		Fares:   FaresConfig{Domestic: 100, International: 300},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
