package db

import (
	"database/sql"
	"time"
)

type (
	// NullString is a type alias for sql.NullString
	NullString = sql.NullString
	// NullInt64 is a type alias for sql.NullInt64
	NullInt64 = sql.NullInt64
)

// Feedback represents a stored feedback row joined with its event name
type Feedback struct {
	ID        int64      `db:"id"`
	UserID    string     `db:"user_id"`
	UserName  string     `db:"user_name"`
	EventID   NullInt64  `db:"event_id"`
	EventName NullString `db:"event_name"`
	Type      string     `db:"type"`
	Subject   string     `db:"subject"`
	Message   string     `db:"message"`
	Rating    int        `db:"rating"`
	Anonymous bool       `db:"anonymous"`
	Sentiment string     `db:"sentiment"`
	CreatedAt time.Time  `db:"created_at"`
}

// Event represents a campus event row
type Event struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Date      time.Time  `db:"date"`
	Venue     NullString `db:"venue"`
	CreatedAt time.Time  `db:"created_at"`
}

// SentimentCount is one row of the grouped sentiment statistics query
type SentimentCount struct {
	Sentiment string  `db:"sentiment"`
	Count     int     `db:"cnt"`
	RatingSum float64 `db:"rating_sum"`
	Rated     int     `db:"rated"`
}
