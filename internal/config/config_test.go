package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DataSource.Source != "chart" {
		t.Errorf("default source: got %q", cfg.DataSource.Source)
	}
	if cfg.Symbols.Primary != "^NDX" || cfg.Symbols.Broad != "^GSPC" || cfg.Symbols.Volatility != "^VIX" {
		t.Errorf("default symbols: got %+v", cfg.Symbols)
	}
	if cfg.Thresholds.MajorDrawdown != -20 || cfg.Thresholds.MinorDrawdown != -15 || cfg.Thresholds.Volatility != 30 {
		t.Errorf("default thresholds: got %+v", cfg.Thresholds)
	}
	if cfg.State.File != "data/state.json" {
		t.Errorf("default state file: got %q", cfg.State.File)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte(`
slack:
  webhook_url: https://hooks.slack.com/services/T/B/X
symbols:
  primary: "^IXIC"
thresholds:
  major_drawdown: -25
`)
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Slack.WebhookURL != "https://hooks.slack.com/services/T/B/X" {
		t.Errorf("webhook: got %q", cfg.Slack.WebhookURL)
	}
	if cfg.Symbols.Primary != "^IXIC" {
		t.Errorf("primary symbol: got %q", cfg.Symbols.Primary)
	}
	if cfg.Thresholds.MajorDrawdown != -25 {
		t.Errorf("major threshold: got %v", cfg.Thresholds.MajorDrawdown)
	}
	// Untouched keys keep their defaults.
	if cfg.Thresholds.MinorDrawdown != -15 {
		t.Errorf("minor threshold default: got %v", cfg.Thresholds.MinorDrawdown)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("slack:\n  webhook_url: https://from-yaml\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SLACK_WEBHOOK_URL", "https://from-env")
	t.Setenv("DATA_SOURCE", "quote")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Slack.WebhookURL != "https://from-env" {
		t.Errorf("env must override yaml, got %q", cfg.Slack.WebhookURL)
	}
	if cfg.DataSource.Source != "quote" {
		t.Errorf("source: got %q", cfg.DataSource.Source)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.Slack.WebhookURL = "https://hooks.slack.com/services/T/B/X"
		cfg.applyDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing webhook", func(c *Config) { c.Slack.WebhookURL = "" }, true},
		{"bad source", func(c *Config) { c.DataSource.Source = "csv" }, true},
		{"positive drawdown threshold", func(c *Config) { c.Thresholds.MajorDrawdown = 20 }, true},
		{"major above minor", func(c *Config) { c.Thresholds.MajorDrawdown = -10 }, true},
		{"zero volatility threshold", func(c *Config) { c.Thresholds.Volatility = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
