package main

import (
	"context"
	"log"
	"os"

	"shelter-pet-tracker/internal/app"
	"shelter-pet-tracker/internal/platform/config"
	"shelter-pet-tracker/internal/router"

	"github.com/spf13/viper"
)

// @title Shelter Pet Tracker API
// @version 1.0
// @description API local para el registro de ingresos del refugio.
// @BasePath /
func main() {
	cfg, err := config.Load(viper.New(), os.Getenv("SHELTER_CONFIG"))
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := app.NewLogger(cfg, os.Stderr)

	ctx := context.Background()
	a, err := app.Open(ctx, cfg, logg)
	if err != nil {
		log.Fatalf("startup error: %v", err)
	}
	defer func() { _ = a.Close() }()

	h := router.NewRouter(router.Options{
		Service: a.Service,
		Logger:  logg,
		Metrics: a.Metrics,
	})

	if err := router.Serve(ctx, cfg.Addr, h, logg); err != nil {
		logg.Error("server error", map[string]any{"error": err.Error()})
		_ = a.Close()
		os.Exit(1)
	}
}
