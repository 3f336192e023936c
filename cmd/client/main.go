package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/ava-cli/internal/adapter"
	"github.com/MKhiriev/ava-cli/internal/client"
	"github.com/MKhiriev/ava-cli/internal/config"
	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/MKhiriev/ava-cli/internal/service"
	"github.com/MKhiriev/ava-cli/internal/store"
	"github.com/MKhiriev/ava-cli/internal/tui"
	"github.com/MKhiriev/ava-cli/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("ava-client", cfg.Log.File, cfg.Log.Level)

	backend := adapter.NewHTTPBackendAdapter(cfg.API, log)
	storage := store.NewDocumentFileStorage(log)
	services := service.NewClientServices(cfg, storage, backend, log)
	picker := tui.NewFilePicker(cfg.Documents, os.Stdin, os.Stdout, log)

	var app client.Client = client.NewApp(os.Stdin, os.Stdout, os.Stderr, services, picker, log)
	if err = app.Run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Fatal().Err(err).Msg("client run error")
	}
}
