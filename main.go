package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parisxmas/OxiSurvey/internal/auth"
	"github.com/parisxmas/OxiSurvey/internal/config"
	"github.com/parisxmas/OxiSurvey/internal/db"
	"github.com/parisxmas/OxiSurvey/internal/gelf"
	"github.com/parisxmas/OxiSurvey/internal/handler"
	"github.com/parisxmas/OxiSurvey/internal/repository"
	"github.com/parisxmas/OxiSurvey/internal/router"
	"github.com/parisxmas/OxiSurvey/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Fatal: %v", err)
	}

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr, "survey-api")
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			defer gelfWriter.Close()
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	verifier, err := auth.NewVerifier(cfg.AdminToken, cfg.AdminTokenBcrypt)
	if err != nil {
		log.Fatalf("Fatal: admin token: %v", err)
	}

	// MongoDB is dialed on first use, not here.
	provider := db.NewProvider(cfg.MongoURI, cfg.Database, cfg.DBTimeout)

	surveyRepo := repository.NewSurveyRepo(provider)
	surveySvc := service.NewSurveyService(surveyRepo, cfg.Location)

	surveyH := handler.NewSurveyHandler(surveySvc)
	adminH := handler.NewAdminHandler(surveySvc)
	dashH := handler.NewDashboardHandler(surveySvc)

	r := router.New(verifier, surveyH, adminH, dashH)

	// Index creation runs in the background so a slow or unreachable
	// database does not hold up the listener.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*cfg.DBTimeout)
		defer cancel()
		start := time.Now()
		if err := surveyRepo.EnsureIndexes(ctx); err != nil {
			log.Printf("Warning: survey index creation failed: %v", err)
			return
		}
		log.Printf("Background init: survey indexes ready (%s)", time.Since(start).Round(time.Millisecond))
	}()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		<-stop
		log.Printf("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Warning: shutdown: %v", err)
		}
	}()

	log.Printf("Survey API starting on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
	<-drained

	if provider.Connected() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Close(ctx); err != nil {
			log.Printf("Warning: %v", err)
		} else {
			log.Printf("MongoDB connection closed")
		}
	}
	log.Printf("Server stopped")
}
