package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port          int              `json:"port"`
	PriceProvider string           `json:"priceProvider"`
	Alpaca        AlpacaSecrets    `json:"alpaca"`
	Sheets        SheetsSecrets    `json:"sheets"`
	Simulation    SimulationConfig `json:"simulation"`
}

type AlpacaSecrets struct {
	ApiKey    string `json:"apiKey"`
	ApiSecret string `json:"apiSecret"`
	Endpoint  string `json:"endpoint"`
}

type SheetsSecrets struct {
	ApiKey string `json:"apiKey"`
}

type SimulationConfig struct {
	DefaultCycles  int    `json:"defaultCycles"`
	DefaultYears   int    `json:"defaultYears"`
	AnchorDate     string `json:"anchorDate"`
	Workers        int    `json:"workers"`
	TimeoutSeconds int    `json:"timeoutSeconds"`

	// upper bound on cycles * (months + 1)
	MaxPathMonths int64 `json:"maxPathMonths"`
}

func (c SimulationConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c SimulationConfig) Anchor() (time.Time, error) {
	return ParseDate(c.AnchorDate)
}

func DefaultConfig() Config {
	return Config{
		Port:          3001,
		PriceProvider: "yahoo",
		Alpaca: AlpacaSecrets{
			Endpoint: "https://data.alpaca.markets",
		},
		Simulation: SimulationConfig{
			DefaultCycles:  15000,
			DefaultYears:   15,
			AnchorDate:     "2025-01-01",
			Workers:        0,
			TimeoutSeconds: 30,
			MaxPathMonths:  50_000_000,
		},
	}
}

func configFile() string {
	if path := os.Getenv("PROJECTION_CONFIG"); path != "" {
		return path
	}
	switch strings.ToLower(os.Getenv("PROJECTION_ENV")) {
	case "dev":
		return "config-dev.json"
	case "test":
		return "config-test.json"
	}
	return "config.json"
}

// LoadConfig starts from defaults, layers the optional json config file on
// top, then applies environment overrides
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	f, err := os.ReadFile(configFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not open %s: %w", configFile(), err)
	}
	if err == nil {
		if err := json.Unmarshal(f, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFile(), err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Simulation.Anchor(); err != nil {
		return nil, fmt.Errorf("invalid simulation anchor date: %w", err)
	}

	return &cfg, nil
}

func applyEnv(cfg *Config) error {
	var err error
	if cfg.Port, err = getEnvInt("PORT", cfg.Port); err != nil {
		return err
	}
	cfg.PriceProvider = getEnv("PRICE_PROVIDER", cfg.PriceProvider)
	cfg.Alpaca.ApiKey = getEnv("ALPACA_API_KEY", cfg.Alpaca.ApiKey)
	cfg.Alpaca.ApiSecret = getEnv("ALPACA_API_SECRET", cfg.Alpaca.ApiSecret)
	cfg.Alpaca.Endpoint = getEnv("ALPACA_ENDPOINT", cfg.Alpaca.Endpoint)
	cfg.Sheets.ApiKey = getEnv("SHEETS_API_KEY", cfg.Sheets.ApiKey)

	if cfg.Simulation.Workers, err = getEnvInt("SIM_WORKERS", cfg.Simulation.Workers); err != nil {
		return err
	}
	if cfg.Simulation.TimeoutSeconds, err = getEnvInt("SIM_TIMEOUT_SECONDS", cfg.Simulation.TimeoutSeconds); err != nil {
		return err
	}
	maxPathMonths, err := getEnvInt("SIM_MAX_PATH_MONTHS", int(cfg.Simulation.MaxPathMonths))
	if err != nil {
		return err
	}
	cfg.Simulation.MaxPathMonths = int64(maxPathMonths)

	return nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q: %w", key, value, err)
	}
	return out, nil
}
