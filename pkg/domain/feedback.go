package domain

import (
	"errors"
	"time"

	"github.com/gemarc/feedback/pkg/sentiment"
)

// errors shared across layers, mapped to HTTP codes by the server
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidFeedback = errors.New("invalid feedback")
	ErrNotConfigured   = errors.New("not configured")
)

// FeedbackType is the category picked by the user when submitting
type FeedbackType string

// enum of feedback types
const (
	FeedbackSuggestion FeedbackType = "suggestion"
	FeedbackBug        FeedbackType = "bug"
	FeedbackCompliment FeedbackType = "compliment"
	FeedbackComplaint  FeedbackType = "complaint"
	FeedbackOther      FeedbackType = "other"
)

// Valid reports whether t is a known feedback type
func (t FeedbackType) Valid() bool {
	switch t {
	case FeedbackSuggestion, FeedbackBug, FeedbackCompliment, FeedbackComplaint, FeedbackOther:
		return true
	}
	return false
}

// Feedback is a user-submitted rating and comment, optionally tied to an event
type Feedback struct {
	ID        int64               `json:"id"`
	UserID    string              `json:"user_id,omitempty"`
	UserName  string              `json:"user_name,omitempty"`
	EventID   int64               `json:"event_id,omitempty"`
	EventName string              `json:"event_name,omitempty"`
	Type      FeedbackType        `json:"type"`
	Subject   string              `json:"subject"`
	Message   string              `json:"message"`
	Rating    int                 `json:"rating,omitempty"` // 1..5, 0 if not given
	Anonymous bool                `json:"anonymous"`
	Sentiment sentiment.Sentiment `json:"sentiment"`
	CreatedAt time.Time           `json:"created_at"`
}

// FeedbackFilter represents filtering criteria for the admin feedback list.
// Zero values mean "all".
type FeedbackFilter struct {
	Rating    int
	EventID   int64
	Sentiment sentiment.Sentiment
	Search    string // case-insensitive match on event name, user name and message
	Limit     int
	Offset    int
}

// SentimentStats aggregates feedback tone for admin dashboards
type SentimentStats struct {
	Total         int     `json:"total"`
	Positive      int     `json:"positive"`
	Neutral       int     `json:"neutral"`
	Negative      int     `json:"negative"`
	AverageRating float64 `json:"average_rating"`
}
