package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/dmitrijs2005/payrollview/internal/client/api"
	"github.com/dmitrijs2005/payrollview/internal/client/export"
	"github.com/dmitrijs2005/payrollview/internal/client/view"
)

// Config holds runtime settings for the payroll client.
type Config struct {
	BaseURL      string        `env:"BASE_URL"`
	Timeout      time.Duration `env:"TIMEOUT"`
	DBPath       string        `env:"DB_PATH"`
	ExportDir    string        `env:"EXPORT_DIR"`
	ExportFormat string        `env:"EXPORT_FORMAT"`
	// ExportTarget is "dir", "s3" or "http".
	ExportTarget string `env:"EXPORT_TARGET"`
	// ExportURL is the base URL files are PUT under when ExportTarget is "http".
	ExportURL string `env:"EXPORT_URL"`
	PageSize  int    `env:"PAGE_SIZE"`
	LogLevel  string `env:"LOG_LEVEL"`
	// LogFile receives logs instead of stderr when set; the full-screen UI
	// discards logs without it.
	LogFile string `env:"LOG_FILE"`
	// UI is "repl" or "tui".
	UI string   `env:"UI"`
	S3 S3Config `envPrefix:"S3_"`
}

type S3Config struct {
	Bucket          string `env:"BUCKET"`
	Prefix          string `env:"PREFIX"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// LoadDefaults populates c with built-in defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = api.DefaultBaseURL
	c.Timeout = api.DefaultTimeout
	c.DBPath = "payrollview.db"
	c.ExportDir = export.DefaultDir
	c.ExportFormat = string(export.FormatCSV)
	c.ExportTarget = "dir"
	c.PageSize = view.DefaultPageSize
	c.LogLevel = "warn"
	c.UI = "repl"
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base url is empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if _, err := export.ParseFormat(c.ExportFormat); err != nil {
		return err
	}
	if !slices.Contains(view.AllowedPageSizes, c.PageSize) {
		return fmt.Errorf("page size %d not in %v", c.PageSize, view.AllowedPageSizes)
	}
	switch c.ExportTarget {
	case "dir":
	case "s3":
		if c.S3.Bucket == "" {
			return fmt.Errorf("export target s3 needs a bucket")
		}
	case "http":
		if c.ExportURL == "" {
			return fmt.Errorf("export target http needs a url")
		}
	default:
		return fmt.Errorf("unknown export target %q", c.ExportTarget)
	}
	switch c.UI {
	case "repl", "tui":
	default:
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named by -c/-config,
// then PAYROLL_* environment variables, then command-line flags. Later
// sources win.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:])
}
