package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/payrollview/internal/buildinfo"
	"github.com/dmitrijs2005/payrollview/internal/logging"
	"github.com/dmitrijs2005/payrollview/internal/server"
	"github.com/dmitrijs2005/payrollview/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, "json")
	app, err := server.NewApp(cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}
}
