package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/meridianhome/storefront/internal/app"
)

func main() {
	_ = godotenv.Load()

	zerolog.TimeFieldFormat = time.RFC3339
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	var cfg app.Config
	if err := envconfig.Process("", &cfg); err != nil {
		zlog.Fatal().Err(err).Msg("failed to process environment config")
	}

	application := app.New(cfg)

	// A missing or broken seed file leaves the store empty but serving;
	// the failure is an operator condition, not a startup fault.
	if err := application.LoadSeed(context.Background()); err != nil {
		zlog.Warn().Err(err).Str("path", cfg.SeedPath).Msg("seed load failed, store starts empty")
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           application.HTTPHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zlog.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("storefront listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}
