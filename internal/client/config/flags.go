package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/payrollview/internal/flagx"
)

var clientFlags = []string{"-u", "-t", "-d", "-o", "-f", "-e", "-w", "-p", "-l", "-ui"}

// parseFlags overlays cfg with the client's own flags, ignoring the rest of
// the command line:
//
//	-u string    API base URL
//	-t duration  request timeout
//	-d string    session database path
//	-o string    export directory
//	-f string    export format (csv|xlsx)
//	-e string    export target (dir|s3|http)
//	-w string    export base URL for the http target
//	-p int       page size
//	-l string    log level (debug|info|warn|error)
//	-ui string   front-end (repl|tui)
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("payrollview", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "API base URL")
	fs.DurationVar(&cfg.Timeout, "t", cfg.Timeout, "request timeout")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "session database path")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "export directory")
	fs.StringVar(&cfg.ExportFormat, "f", cfg.ExportFormat, "export format (csv|xlsx)")
	fs.StringVar(&cfg.ExportTarget, "e", cfg.ExportTarget, "export target (dir|s3|http)")
	fs.StringVar(&cfg.ExportURL, "w", cfg.ExportURL, "export base URL")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "page size")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.UI, "ui", cfg.UI, "front-end (repl|tui)")

	return fs.Parse(flagx.FilterArgs(args, clientFlags))
}
