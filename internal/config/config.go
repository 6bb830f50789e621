package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Slack struct {
		WebhookURL string `yaml:"webhook_url" envconfig:"SLACK_WEBHOOK_URL"`
	} `yaml:"slack"`
	DataSource struct {
		Source string `yaml:"source" envconfig:"DATA_SOURCE"` // "chart" or "quote"
	} `yaml:"data_source"`
	Symbols struct {
		Primary    string `yaml:"primary" envconfig:"SYMBOL_PRIMARY"`
		Broad      string `yaml:"broad" envconfig:"SYMBOL_BROAD"`
		Volatility string `yaml:"volatility" envconfig:"SYMBOL_VOLATILITY"`
	} `yaml:"symbols"`
	Thresholds struct {
		MajorDrawdown float64 `yaml:"major_drawdown" envconfig:"THRESHOLD_MAJOR_DRAWDOWN"`
		MinorDrawdown float64 `yaml:"minor_drawdown" envconfig:"THRESHOLD_MINOR_DRAWDOWN"`
		Volatility    float64 `yaml:"volatility" envconfig:"THRESHOLD_VOLATILITY"`
	} `yaml:"thresholds"`
	State struct {
		File string `yaml:"file" envconfig:"STATE_FILE"`
	} `yaml:"state"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path" envconfig:"SQLITE_PATH"`
	} `yaml:"database"`
	Schedule struct {
		Cron string `yaml:"cron" envconfig:"CRON_SCHEDULE"`
	} `yaml:"schedule"`
	Log struct {
		Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
		Format string `yaml:"format" envconfig:"LOG_FORMAT"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy" envconfig:"HTTPS_PROXY"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing config file is tolerated; a missing .env file as well.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

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

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataSource.Source == "" {
		c.DataSource.Source = "chart"
	}
	if c.Symbols.Primary == "" {
		c.Symbols.Primary = "^NDX"
	}
	if c.Symbols.Broad == "" {
		c.Symbols.Broad = "^GSPC"
	}
	if c.Symbols.Volatility == "" {
		c.Symbols.Volatility = "^VIX"
	}
	if c.Thresholds.MajorDrawdown == 0 {
		c.Thresholds.MajorDrawdown = -20.0
	}
	if c.Thresholds.MinorDrawdown == 0 {
		c.Thresholds.MinorDrawdown = -15.0
	}
	if c.Thresholds.Volatility == 0 {
		c.Thresholds.Volatility = 30.0
	}
	if c.State.File == "" {
		c.State.File = "data/state.json"
	}
	if c.Schedule.Cron == "" {
		// Weekdays at 22:30 UTC, shortly after the US close.
		c.Schedule.Cron = "0 30 22 * * 1-5"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
}

// Validate checks that all required fields are set and sane.
func (c *Config) Validate() error {
	if c.Slack.WebhookURL == "" {
		return fmt.Errorf("slack.webhook_url is required (set SLACK_WEBHOOK_URL)")
	}
	if c.DataSource.Source != "chart" && c.DataSource.Source != "quote" {
		return fmt.Errorf("data_source.source must be \"chart\" or \"quote\", got %q", c.DataSource.Source)
	}
	if c.Thresholds.MajorDrawdown >= 0 || c.Thresholds.MinorDrawdown >= 0 {
		return fmt.Errorf("drawdown thresholds must be negative")
	}
	if c.Thresholds.MajorDrawdown > c.Thresholds.MinorDrawdown {
		return fmt.Errorf("major drawdown threshold must not be above the minor one")
	}
	if c.Thresholds.Volatility <= 0 {
		return fmt.Errorf("thresholds.volatility must be positive")
	}
	return nil
}
