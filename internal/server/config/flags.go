package config

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/payrollview/internal/flagx"
)

var serverFlags = []string{"-a", "-x", "-k", "-s", "-t", "-l"}

// parseFlags overlays cfg with the server's own flags:
//
//	-a string    listen address (e.g. ":8000")
//	-x string    YAML fixtures file
//	-k string    comma-separated static tokens
//	-s string    token signing secret
//	-t duration  minted token lifetime
//	-l string    log level
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("payroll-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "listen address")
	fs.StringVar(&cfg.FixturesPath, "x", cfg.FixturesPath, "fixtures file")
	tokens := fs.String("k", strings.Join(cfg.Tokens, ","), "static tokens")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.DurationVar(&cfg.TokenTTL, "t", cfg.TokenTTL, "token lifetime")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(flagx.FilterArgs(args, serverFlags)); err != nil {
		return err
	}
	cfg.Tokens = splitTokens(*tokens)
	return nil
}

func splitTokens(s string) []string {
	out := []string{}
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
