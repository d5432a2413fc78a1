// Package config handles configuration for the stub server, including
// defaults, JSON overlay, environment and command-line flags.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the payroll stub server.
//
// Fields:
//   - Addr: bind address for the HTTP listener.
//   - FixturesPath: YAML fixtures file; empty serves the built-in set.
//   - Tokens: static tokens accepted on every authenticated route.
//   - SecretKey: HMAC secret for tokens minted by /auth/login (HS256).
//   - TokenTTL: lifetime of minted tokens.
//   - ShutdownTimeout: grace period for in-flight requests on exit.
type Config struct {
	Addr            string        `env:"ADDR"`
	FixturesPath    string        `env:"FIXTURES"`
	Tokens          []string      `env:"TOKENS" envSeparator:","`
	SecretKey       string        `env:"SECRET_KEY"`
	TokenTTL        time.Duration `env:"TOKEN_TTL"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
	LogLevel        string        `env:"LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":8000"
	c.Tokens = []string{"dev-token"}
	c.SecretKey = "secretKey"
	c.TokenTTL = time.Hour
	c.ShutdownTimeout = 5 * time.Second
	c.LogLevel = "info"
}

func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("listen address is empty")
	}
	if c.SecretKey == "" {
		return fmt.Errorf("secret key is empty")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file named by
// -c/-config, then PAYROLL_SERVER_* environment variables, then flags.
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
