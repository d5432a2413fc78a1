package main

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/payrollview/internal/buildinfo"
	"github.com/dmitrijs2005/payrollview/internal/client/cli"
	"github.com/dmitrijs2005/payrollview/internal/client/config"
	"github.com/dmitrijs2005/payrollview/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer closeLog()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}

// newLogger writes to the configured log file, else to stderr. The
// full-screen UI owns the terminal, so without a file it logs nowhere.
func newLogger(cfg *config.Config) (logging.Logger, func(), error) {
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
		if err != nil {
			return nil, nil, err
		}
		return logging.New(f, cfg.LogLevel, "text"), func() { _ = f.Close() }, nil
	}
	var w io.Writer = os.Stderr
	if cfg.UI == "tui" {
		w = io.Discard
	}
	return logging.New(w, cfg.LogLevel, "text"), func() {}, nil
}
