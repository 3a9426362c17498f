// Package maintenance holds the one-shot operator tasks: a write/read/delete
// connectivity check and a recent-records dump.
package maintenance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/parisxmas/OxiSurvey/internal/repository"
	"github.com/parisxmas/OxiSurvey/internal/service"
)

// CheckConnection inserts a probe document, counts the collection and
// removes the probe again, reporting each step to out.
func CheckConnection(ctx context.Context, store repository.ProbeStore, out io.Writer) error {
	probeID := uuid.NewString()

	fmt.Fprintln(out, "Testing insert...")
	id, err := store.InsertProbe(ctx, probeID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Insert OK! ID: %s\n", id)

	fmt.Fprintln(out, "Testing query...")
	count, err := store.CountAll(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Total records: %d\n", count)

	deleted, err := store.DeleteProbe(ctx, probeID)
	if err != nil {
		return err
	}
	if deleted != 1 {
		return fmt.Errorf("cleanup removed %d probe documents, expected 1", deleted)
	}
	fmt.Fprintln(out, "Test data cleaned up")
	return nil
}

// PrintRecent writes the n newest surveys followed by the total count.
func PrintRecent(ctx context.Context, svc *service.SurveyService, n int, loc *time.Location, out io.Writer) error {
	surveys, total, err := svc.Recent(ctx, n)
	if err != nil {
		return err
	}
	if loc == nil {
		loc = time.Local
	}

	fmt.Fprintf(out, "Recent %d survey records:\n\n", len(surveys))
	for i, s := range surveys {
		answers, err := json.MarshalIndent(s.Answers, "   ", "  ")
		if err != nil {
			return fmt.Errorf("format answers of %s: %w", s.ID.Hex(), err)
		}
		fmt.Fprintf(out, "%d. ID: %s\n", i+1, s.ID.Hex())
		fmt.Fprintf(out, "   User: %s\n", s.UserID)
		fmt.Fprintf(out, "   Time: %s\n", s.SubmittedAt.In(loc).Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "   Answers: %s\n\n", answers)
	}
	fmt.Fprintf(out, "Total: %d records\n", total)
	return nil
}

var userinfoPassword = regexp.MustCompile(`:[^:@/]+@`)

// MaskURI hides the password of a connection string for display.
func MaskURI(uri string) string {
	if u, err := url.Parse(uri); err == nil {
		return u.Redacted()
	}
	return userinfoPassword.ReplaceAllString(uri, ":xxxxx@")
}
