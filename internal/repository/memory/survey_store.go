// Package memory is an in-process SurveyStore and ProbeStore for tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/parisxmas/OxiSurvey/internal/models"
)

type Store struct {
	mu      sync.RWMutex
	surveys []models.Survey
	probes  map[string]models.Probe
	calls   int
}

func New() *Store {
	return &Store{probes: make(map[string]models.Probe)}
}

func (s *Store) Insert(_ context.Context, rec *models.Survey) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	cp := *rec
	s.surveys = append(s.surveys, cp)
	return rec.ID.Hex(), nil
}

func (s *Store) FindPage(_ context.Context, skip, limit int) ([]models.Survey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	sorted := make([]models.Survey, len(s.surveys))
	copy(sorted, s.surveys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SubmittedAt.After(sorted[j].SubmittedAt)
	})

	if skip >= len(sorted) {
		return []models.Survey{}, nil
	}
	end := skip + limit
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[skip:end], nil
}

func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return int64(len(s.surveys)), nil
}

func (s *Store) CountSince(_ context.Context, since time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	var n int64
	for _, rec := range s.surveys {
		if !rec.SubmittedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *Store) InsertProbe(_ context.Context, probeID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	p := models.Probe{
		ID:        primitive.NewObjectID(),
		Test:      true,
		Message:   "Test data",
		ProbeID:   probeID,
		Timestamp: time.Now().UTC(),
	}
	s.probes[probeID] = p
	return p.ID.Hex(), nil
}

func (s *Store) CountAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return int64(len(s.surveys) + len(s.probes)), nil
}

func (s *Store) DeleteProbe(_ context.Context, probeID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++

	if _, ok := s.probes[probeID]; !ok {
		return 0, nil
	}
	delete(s.probes, probeID)
	return 1, nil
}

// Calls reports how many store operations have run.
func (s *Store) Calls() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.calls
}

// Surveys returns a copy of everything stored, in insertion order.
func (s *Store) Surveys() []models.Survey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Survey, len(s.surveys))
	copy(out, s.surveys)
	return out
}

// Probes reports how many probe documents are still present.
func (s *Store) Probes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.probes)
}
