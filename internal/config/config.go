// Package config loads gesdash configuration from a YAML file with defaults
// applied for anything unset.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Divaprk/DAaaS-Platform-G36/internal/survey"
)

// Config holds all gesdash configuration.
type Config struct {
	Source    SourceConfig    `yaml:"source"`
	Cache     CacheConfig     `yaml:"cache"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// SourceConfig selects where records come from. When both are set the CSV
// path wins; the endpoint is the deployment fallback.
type SourceConfig struct {
	CSVPath  string `yaml:"csv_path"`
	Endpoint string `yaml:"endpoint"`
	// Watch re-loads the CSV dataset when it changes on disk.
	Watch bool `yaml:"watch"`
}

// CacheConfig configures the local snapshot cache.
type CacheConfig struct {
	Path string `yaml:"path"`
	// KeepSnapshots bounds how many fetches are retained.
	KeepSnapshots int `yaml:"keep_snapshots"`
}

// DashboardConfig holds the defaults the UI starts with.
type DashboardConfig struct {
	Metric        string `yaml:"metric"`
	Mode          string `yaml:"mode"`
	YearStart     int    `yaml:"year_start"`
	YearEnd       int    `yaml:"year_end"`
	MinSampleSize int    `yaml:"min_sample_size"`
	TopN          int    `yaml:"top_n"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // empty means stderr
}

// envEndpoint overrides the configured endpoint URL, for deployments where
// the API address is injected rather than checked in.
const envEndpoint = "GESDASH_ENDPOINT"

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Cache: CacheConfig{
			Path:          filepath.Join(".gesdash", "cache.db"),
			KeepSnapshots: 5,
		},
		Dashboard: DashboardConfig{
			Metric:        string(survey.GrossMonthlyMedian),
			Mode:          string(survey.ByCourse),
			MinSampleSize: 1,
			TopN:          5,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file at path, layering it over Default. A missing
// file is not an error; defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(envEndpoint); v != "" {
		cfg.Source.Endpoint = v
	}
}

func (c Config) validate() error {
	if _, err := survey.ParseMetric(c.Dashboard.Metric); err != nil {
		return fmt.Errorf("dashboard.metric: %w", err)
	}
	if _, err := survey.ParseMode(c.Dashboard.Mode); err != nil {
		return fmt.Errorf("dashboard.mode: %w", err)
	}
	if c.Cache.KeepSnapshots < 1 {
		return fmt.Errorf("cache.keep_snapshots must be at least 1, got %d", c.Cache.KeepSnapshots)
	}
	return nil
}

// Metric returns the validated default metric.
func (c Config) Metric() survey.Metric {
	m, err := survey.ParseMetric(c.Dashboard.Metric)
	if err != nil {
		return survey.GrossMonthlyMedian
	}
	return m
}

// Mode returns the validated default view mode.
func (c Config) Mode() survey.Mode {
	m, err := survey.ParseMode(c.Dashboard.Mode)
	if err != nil {
		return survey.ByCourse
	}
	return m
}
