// Package main runs the activity signup HTTP server.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mergington/activities/internal/app"
	"github.com/mergington/activities/internal/config"
	"github.com/mergington/activities/internal/logging"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides ACTIVITIES_ADDR)")
	envFile := flag.String("env-file", "", "optional .env file to load")
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			logging.NewDefault("main").WithError(err).Error("load env file")
			os.Exit(1)
		}
	} else {
		_ = godotenv.Load() // allow .env for local runs
	}

	cfg, err := config.Load()
	if err != nil {
		logging.NewDefault("main").WithError(err).Error("load configuration")
		os.Exit(1)
	}
	if *addr != "" {
		cfg.ListenAddr = *addr
	}

	log := logging.New(os.Stderr, "activities", cfg.LogLevel)

	application, err := app.New(cfg, nil, log)
	if err != nil {
		log.WithError(err).Error("initialise application")
		os.Exit(1)
	}

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      application.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("addr", cfg.ListenAddr).Info("server listening")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.WithError(err).Error("server error")
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("server shutdown")
	}
}
