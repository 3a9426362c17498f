package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AnonymousUser = "anonymous"

// Survey is one stored submission. Records are never updated after insert.
type Survey struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	UserID      string             `json:"userId" bson:"userId"`
	Answers     map[string]any     `json:"answers" bson:"answers"`
	SubmittedAt time.Time          `json:"submittedAt" bson:"submittedAt"`
	IP          string             `json:"ip,omitempty" bson:"ip,omitempty"`
	UserAgent   string             `json:"userAgent,omitempty" bson:"userAgent,omitempty"`
}

// Stats holds the dashboard counters.
type Stats struct {
	Total     int64 `json:"total"`
	ThisMonth int64 `json:"thisMonth"`
	Today     int64 `json:"today"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// Probe is the throwaway document written by the connectivity check.
type Probe struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Test      bool               `bson:"test"`
	Message   string             `bson:"message"`
	ProbeID   string             `bson:"probeId"`
	Timestamp time.Time          `bson:"timestamp"`
}
