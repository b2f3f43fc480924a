package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mergington.org/internal/auth"
	"mergington.org/internal/config"
	"mergington.org/internal/directory"
	"mergington.org/internal/httpapi"
	"mergington.org/internal/obs"
	"mergington.org/web"
)

var (
	version = "0.3.0"
	commit  = "none"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tokens, err := auth.NewTokens([]byte(cfg.AuthSecret), "mergington", cfg.TokenTTL)
	if err != nil {
		log.Fatalf("auth: %v", err)
	}
	authSvc := auth.NewService(tokens, auth.FileStore{Path: cfg.TeachersFile})

	seed := directory.Default()
	if cfg.ActivitiesFile != "" {
		seed, err = directory.Load(cfg.ActivitiesFile)
		if err != nil {
			log.Fatalf("activities: %v", err)
		}
	}
	dir, err := directory.New(seed)
	if err != nil {
		log.Fatalf("activities: %v", err)
	}

	api := httpapi.New(authSvc, dir, web.Static(), version)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting mergington-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	log.Println("Stopped")
}
