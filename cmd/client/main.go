package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/supabase-bootstrap/internal/adapter"
	"github.com/MKhiriev/supabase-bootstrap/internal/backend"
	"github.com/MKhiriev/supabase-bootstrap/internal/client"
	"github.com/MKhiriev/supabase-bootstrap/internal/config"
	"github.com/MKhiriev/supabase-bootstrap/internal/logger"
	"github.com/MKhiriev/supabase-bootstrap/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("supabase-bootstrap")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	var probe adapter.HealthProbe
	if cfg.Probe.Enabled {
		probe, err = adapter.NewHTTPHealthProbe(cfg.Backend, cfg.Probe, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create health probe")
		}
	}

	app, err := client.NewApp(cfg, buildInfo, backend.SupabaseFactory(), probe, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
