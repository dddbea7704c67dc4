// Package config loads engine and runtime settings from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gorocky/warroom/internal/alerts"
	"github.com/gorocky/warroom/internal/pricing"
)

// Config holds all application configuration.
type Config struct {
	Store struct {
		SnapshotPath   string `yaml:"snapshot_path"`
		CompetitorPath string `yaml:"competitor_path"`
		InboxPath      string `yaml:"inbox_path"`
		KeepSnapshots  int    `yaml:"keep_snapshots"`
	} `yaml:"store"`
	Pricing struct {
		MarkupFactor float64 `yaml:"markup_factor"`
	} `yaml:"pricing"`
	Alerts struct {
		CheaperRatio         float64 `yaml:"cheaper_ratio"`
		DropThresholdPct     float64 `yaml:"drop_threshold_pct"`
		CheaperSuggestFactor float64 `yaml:"cheaper_suggest_factor"`
		DropSuggestFactor    float64 `yaml:"drop_suggest_factor"`
	} `yaml:"alerts"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file yields pure defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("WARROOM_SNAPSHOT_PATH"); v != "" {
		cfg.Store.SnapshotPath = v
	}
	if v := os.Getenv("WARROOM_COMPETITOR_PATH"); v != "" {
		cfg.Store.CompetitorPath = v
	}
	if v := os.Getenv("WARROOM_INBOX_PATH"); v != "" {
		cfg.Store.InboxPath = v
	}
	if v := os.Getenv("WARROOM_REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("WARROOM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("WARROOM_MARKUP_FACTOR"); v != "" {
		var factor float64
		if _, err := fmt.Sscanf(v, "%f", &factor); err == nil {
			cfg.Pricing.MarkupFactor = factor
		}
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Store.SnapshotPath == "" {
		c.Store.SnapshotPath = "data/snapshots.json"
	}
	if c.Store.CompetitorPath == "" {
		c.Store.CompetitorPath = "data/competitors.json"
	}
	if c.Store.InboxPath == "" {
		c.Store.InboxPath = "data/inbox.json"
	}
	if c.Store.KeepSnapshots == 0 {
		c.Store.KeepSnapshots = 30
	}
	if c.Pricing.MarkupFactor == 0 {
		c.Pricing.MarkupFactor = pricing.DefaultMarkupFactor
	}
	def := alerts.DefaultConfig()
	if c.Alerts.CheaperRatio == 0 {
		c.Alerts.CheaperRatio = def.CheaperRatio
	}
	if c.Alerts.DropThresholdPct == 0 {
		c.Alerts.DropThresholdPct = def.DropThresholdPct
	}
	if c.Alerts.CheaperSuggestFactor == 0 {
		c.Alerts.CheaperSuggestFactor = def.CheaperSuggestFactor
	}
	if c.Alerts.DropSuggestFactor == 0 {
		c.Alerts.DropSuggestFactor = def.DropSuggestFactor
	}
	if c.Schedule.RefreshCron == "" {
		c.Schedule.RefreshCron = "0 0 * * * *" // hourly, with seconds field
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// DetectorConfig maps the alert section onto detector thresholds.
func (c *Config) DetectorConfig() alerts.Config {
	return alerts.Config{
		CheaperRatio:         c.Alerts.CheaperRatio,
		DropThresholdPct:     c.Alerts.DropThresholdPct,
		CheaperSuggestFactor: c.Alerts.CheaperSuggestFactor,
		DropSuggestFactor:    c.Alerts.DropSuggestFactor,
	}
}
