// Command conncheck verifies MongoDB connectivity with a write, a read and a
// delete against the surveys collection.
//
// Usage:
//
//	go run ./cmd/conncheck        # reads MONGODB_URI from .env.local, .env or the environment
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/parisxmas/OxiSurvey/internal/config"
	"github.com/parisxmas/OxiSurvey/internal/db"
	"github.com/parisxmas/OxiSurvey/internal/maintenance"
	"github.com/parisxmas/OxiSurvey/internal/repository"
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println("Testing MongoDB connection...")
	fmt.Println()

	cfg, err := config.LoadDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Make sure .env.local exists and contains MONGODB_URI")
		return 1
	}
	fmt.Println("Connection string:", maintenance.MaskURI(cfg.MongoURI))
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 4*cfg.DBTimeout)
	defer cancel()

	provider := db.NewProvider(cfg.MongoURI, cfg.Database, cfg.DBTimeout)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		provider.Close(closeCtx)
	}()

	fmt.Println("Connecting to MongoDB...")
	if _, err := provider.Database(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Connection failed: %v\n", err)
		return 1
	}
	fmt.Println("Connected successfully!")
	fmt.Println()
	fmt.Println("Database:", cfg.Database)

	if err := maintenance.CheckConnection(ctx, repository.NewSurveyRepo(provider), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Connection failed: %v\n", err)
		return 1
	}

	fmt.Println()
	fmt.Println("All tests passed! MongoDB configured correctly.")
	return 0
}
