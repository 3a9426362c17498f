package memory

import (
	"context"
	"testing"
	"time"

	"github.com/parisxmas/OxiSurvey/internal/models"
)

func TestFindPageNewestFirst(t *testing.T) {
	s := New()
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	for i, user := range []string{"a", "b", "c"} {
		_, err := s.Insert(ctx, &models.Survey{
			UserID:      user,
			Answers:     map[string]any{},
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	got, err := s.FindPage(ctx, 0, 2)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got) != 2 || got[0].UserID != "c" || got[1].UserID != "b" {
		t.Fatalf("unexpected page: %+v", got)
	}

	got, _ = s.FindPage(ctx, 5, 2)
	if len(got) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(got))
	}
}

func TestInsertAssignsID(t *testing.T) {
	s := New()
	rec := &models.Survey{Answers: map[string]any{}}
	id, _ := s.Insert(context.Background(), rec)
	if id == "" || rec.ID.IsZero() || rec.ID.Hex() != id {
		t.Fatalf("expected generated id, got %q / %s", id, rec.ID.Hex())
	}
}

func TestCountSinceInclusive(t *testing.T) {
	s := New()
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s.Insert(ctx, &models.Survey{SubmittedAt: at})
	s.Insert(ctx, &models.Survey{SubmittedAt: at.Add(-time.Second)})

	n, _ := s.CountSince(ctx, at)
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
}

func TestProbeLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.InsertProbe(ctx, "p1"); err != nil {
		t.Fatalf("insert probe: %v", err)
	}
	if n, _ := s.CountAll(ctx); n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}
	if n, _ := s.Count(ctx); n != 0 {
		t.Fatalf("probe must not count as survey, got %d", n)
	}
	if n, _ := s.DeleteProbe(ctx, "p1"); n != 1 {
		t.Fatalf("expected 1 deleted, got %d", n)
	}
	if n, _ := s.DeleteProbe(ctx, "p1"); n != 0 {
		t.Fatalf("second delete should be a no-op, got %d", n)
	}
}
