package repository

import (
	"context"
	"time"

	"github.com/parisxmas/OxiSurvey/internal/models"
)

// SurveyStore is the persistence surface used by the survey service.
type SurveyStore interface {
	Insert(ctx context.Context, s *models.Survey) (string, error)
	// FindPage returns surveys newest first.
	FindPage(ctx context.Context, skip, limit int) ([]models.Survey, error)
	Count(ctx context.Context) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// ProbeStore backs the write-read-delete connectivity check.
type ProbeStore interface {
	InsertProbe(ctx context.Context, probeID string) (string, error)
	CountAll(ctx context.Context) (int64, error)
	DeleteProbe(ctx context.Context, probeID string) (int64, error)
}
