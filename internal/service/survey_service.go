package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/parisxmas/OxiSurvey/internal/models"
	"github.com/parisxmas/OxiSurvey/internal/repository"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit inside int.
	MaxPage = math.MaxInt / MaxLimit
)

var ErrInvalidAnswers = errors.New("answers must be a JSON object")

type SubmitInput struct {
	UserID    string
	Answers   map[string]any
	IP        string
	UserAgent string
}

type SurveyService struct {
	store repository.SurveyStore
	loc   *time.Location
	now   func() time.Time
}

func NewSurveyService(store repository.SurveyStore, loc *time.Location) *SurveyService {
	if loc == nil {
		loc = time.Local
	}
	return &SurveyService{store: store, loc: loc, now: time.Now}
}

// Submit stores one response. The submission time is always taken from the
// server clock.
func (s *SurveyService) Submit(ctx context.Context, in SubmitInput) (*models.Survey, error) {
	if in.Answers == nil {
		return nil, ErrInvalidAnswers
	}
	userID := in.UserID
	if userID == "" {
		userID = models.AnonymousUser
	}

	sub := &models.Survey{
		UserID:      userID,
		Answers:     in.Answers,
		SubmittedAt: s.now().UTC(),
		IP:          in.IP,
		UserAgent:   in.UserAgent,
	}
	if _, err := s.store.Insert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// List returns one page of surveys, newest first.
func (s *SurveyService) List(ctx context.Context, page, limit int) ([]models.Survey, models.Pagination, error) {
	page, limit = clampPage(page, limit)

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	surveys, err := s.store.FindPage(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	return surveys, models.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pageCount(total, limit),
	}, nil
}

func (s *SurveyService) Stats(ctx context.Context) (*models.Stats, error) {
	now := s.now().In(s.loc)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	thisMonth, err := s.store.CountSince(ctx, startOfMonth)
	if err != nil {
		return nil, err
	}
	today, err := s.store.CountSince(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	return &models.Stats{Total: total, ThisMonth: thisMonth, Today: today}, nil
}

// Recent returns the n newest surveys along with the overall count.
func (s *SurveyService) Recent(ctx context.Context, n int) ([]models.Survey, int64, error) {
	if n < 1 {
		n = 10
	}
	surveys, err := s.store.FindPage(ctx, 0, n)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return surveys, total, nil
}

// ParsePagination reads the page and limit query values the way a browser
// parseInt would: leading digits count, trailing junk is ignored. Anything
// that does not start with a positive integer falls back to the default.
func ParsePagination(pageStr, limitStr string) (int, int) {
	return clampPage(leadingInt(pageStr), leadingInt(limitStr))
}

// leadingInt returns 0 when s has no leading integer. Values past the int
// range saturate.
func leadingInt(s string) int {
	s = strings.TrimLeft(s, " \t\n\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.ParseInt(s[:end], 10, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return int(n)
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

func pageCount(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
