// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-client/internal/client"
	"github.com/MKhiriev/go-notes-client/internal/config"
	"github.com/MKhiriev/go-notes-client/internal/logger"
	"github.com/MKhiriev/go-notes-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("go-notes-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg)
	log.Info().Strs("build", buildInfo.Lines()).Msg("starting")

	app, err := client.NewApp(cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}

func newLogger(cfg *config.ClientConfig) *logger.Logger {
	if cfg.Log.File != "" {
		return logger.NewFileLogger("go-notes-client", cfg.Log.File)
	}
	return logger.NewClientLogger("go-notes-client")
}
