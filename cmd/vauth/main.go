package main

import (
	"context"
	"os"

	"github.com/vauthproject/vauth/internal/buildinfo"
	"github.com/vauthproject/vauth/internal/cli"
	"github.com/vauthproject/vauth/internal/config"
	"github.com/vauthproject/vauth/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to open vault", "error", err)
		os.Exit(1)
	}

	code := cli.Run(ctx, app, os.Args[1:])
	_ = app.Close()
	os.Exit(code)
}
