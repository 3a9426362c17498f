// Command surveyquery prints the most recent survey records and the total
// count.
//
// Usage:
//
//	go run ./cmd/surveyquery          # 10 newest records
//	go run ./cmd/surveyquery -n 25
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/parisxmas/OxiSurvey/internal/config"
	"github.com/parisxmas/OxiSurvey/internal/db"
	"github.com/parisxmas/OxiSurvey/internal/maintenance"
	"github.com/parisxmas/OxiSurvey/internal/repository"
	"github.com/parisxmas/OxiSurvey/internal/service"
)

func main() {
	n := flag.Int("n", 10, "number of records to show")
	flag.Parse()

	cfg, err := config.LoadDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	provider := db.NewProvider(cfg.MongoURI, cfg.Database, cfg.DBTimeout)
	svc := service.NewSurveyService(repository.NewSurveyRepo(provider), cfg.Location)

	ctx, cancel := context.WithTimeout(context.Background(), 4*cfg.DBTimeout)
	err = maintenance.PrintRecent(ctx, svc, *n, cfg.Location, os.Stdout)
	cancel()

	closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	provider.Close(closeCtx)
	closeCancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
}
