package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/parisxmas/OxiSurvey/internal/db"
	"github.com/parisxmas/OxiSurvey/internal/models"
)

const SurveysCollection = "surveys"

// surveyFilter hides connectivity probes from survey reads.
var surveyFilter = bson.M{"test": bson.M{"$ne": true}}

type SurveyRepo struct {
	provider *db.Provider
}

func NewSurveyRepo(provider *db.Provider) *SurveyRepo {
	return &SurveyRepo{provider: provider}
}

func (r *SurveyRepo) collection(ctx context.Context) (*mongo.Collection, error) {
	d, err := r.provider.Database(ctx)
	if err != nil {
		return nil, err
	}
	return d.Collection(SurveysCollection), nil
}

func (r *SurveyRepo) EnsureIndexes(ctx context.Context) error {
	c, err := r.collection(ctx)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, r.provider.Timeout())
	defer cancel()
	_, err = c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "submittedAt", Value: -1}},
		Options: options.Index().SetName("submittedAt_desc"),
	})
	if err != nil {
		return fmt.Errorf("surveys: create index: %w", err)
	}
	return nil
}

func (r *SurveyRepo) Insert(ctx context.Context, s *models.Survey) (string, error) {
	c, err := r.collection(ctx)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, r.provider.Timeout())
	defer cancel()
	result, err := c.InsertOne(ctx, s)
	if err != nil {
		return "", fmt.Errorf("surveys: insert: %w", err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		s.ID = oid
	}
	return extractID(result.InsertedID), nil
}

func (r *SurveyRepo) FindPage(ctx context.Context, skip, limit int) ([]models.Survey, error) {
	c, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, r.provider.Timeout())
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cur, err := c.Find(ctx, surveyFilter, opts)
	if err != nil {
		return nil, fmt.Errorf("surveys: find: %w", err)
	}
	defer cur.Close(ctx)

	surveys := make([]models.Survey, 0, limit)
	if err := cur.All(ctx, &surveys); err != nil {
		return nil, fmt.Errorf("surveys: decode: %w", err)
	}
	return surveys, nil
}

func (r *SurveyRepo) Count(ctx context.Context) (int64, error) {
	return r.count(ctx, surveyFilter)
}

func (r *SurveyRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, bson.M{
		"test":        bson.M{"$ne": true},
		"submittedAt": bson.M{"$gte": since},
	})
}

// CountAll counts every document in the collection, probes included.
func (r *SurveyRepo) CountAll(ctx context.Context) (int64, error) {
	return r.count(ctx, bson.M{})
}

func (r *SurveyRepo) count(ctx context.Context, filter bson.M) (int64, error) {
	c, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, r.provider.Timeout())
	defer cancel()
	n, err := c.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("surveys: count: %w", err)
	}
	return n, nil
}

func (r *SurveyRepo) InsertProbe(ctx context.Context, probeID string) (string, error) {
	c, err := r.collection(ctx)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, r.provider.Timeout())
	defer cancel()
	result, err := c.InsertOne(ctx, models.Probe{
		Test:      true,
		Message:   "Test data",
		ProbeID:   probeID,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("surveys: insert probe: %w", err)
	}
	return extractID(result.InsertedID), nil
}

func (r *SurveyRepo) DeleteProbe(ctx context.Context, probeID string) (int64, error) {
	c, err := r.collection(ctx)
	if err != nil {
		return 0, err
	}
	ctx, cancel := context.WithTimeout(ctx, r.provider.Timeout())
	defer cancel()
	result, err := c.DeleteOne(ctx, bson.M{"test": true, "probeId": probeID})
	if err != nil {
		return 0, fmt.Errorf("surveys: delete probe: %w", err)
	}
	return result.DeletedCount, nil
}
