package main

import (
	"fmt"

	"github.com/MKhiriev/go-qr-notes/internal/adapter"
	"github.com/MKhiriev/go-qr-notes/internal/client"
	"github.com/MKhiriev/go-qr-notes/internal/config"
	"github.com/MKhiriev/go-qr-notes/internal/logger"
	"github.com/MKhiriev/go-qr-notes/internal/service"
	"github.com/MKhiriev/go-qr-notes/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("qr-notes-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backend := adapter.NewHTTPBackend(adapter.HTTPClientConfig{
		BaseURL: cfg.ServerURL,
		Timeout: cfg.RequestTimeout,
	})

	services := service.NewClientServices(backend, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
