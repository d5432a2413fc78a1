package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/payrollview/internal/flagx"
	"github.com/dmitrijs2005/payrollview/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Durations
// accept both "1h" strings and integer nanoseconds.
type JsonConfig struct {
	Addr            *string         `json:"addr"`
	FixturesPath    *string         `json:"fixtures"`
	Tokens          []string        `json:"tokens"`
	SecretKey       *string         `json:"secret_key"`
	TokenTTL        *timex.Duration `json:"token_ttl"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
	LogLevel        *string         `json:"log_level"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.Addr != nil {
		cfg.Addr = *jc.Addr
	}
	if jc.FixturesPath != nil {
		cfg.FixturesPath = *jc.FixturesPath
	}
	if jc.Tokens != nil {
		cfg.Tokens = jc.Tokens
	}
	if jc.SecretKey != nil {
		cfg.SecretKey = *jc.SecretKey
	}
	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	return nil
}
