package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gemarc/feedback/pkg/db"
	"github.com/gemarc/feedback/pkg/domain"
)

// EventRepository handles event-related database operations
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateEvent stores a new event and sets its ID
func (r *EventRepository) CreateEvent(ctx context.Context, ev *domain.Event) error {
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	var venue sql.NullString
	if ev.Venue != "" {
		venue = sql.NullString{String: ev.Venue, Valid: true}
	}

	return newRetrier().Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "INSERT INTO events (name, date, venue, created_at) VALUES (?, ?, ?, ?)",
			ev.Name, ev.Date, venue, ev.CreatedAt)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return critical(fmt.Errorf("create event: %w", err))
		}
		id, err := res.LastInsertId()
		if err != nil {
			return critical(fmt.Errorf("get event id: %w", err))
		}
		ev.ID = id
		return nil
	}, errCritical)
}

// GetEvent returns event by ID
func (r *EventRepository) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	var row db.Event
	if err := r.db.GetContext(ctx, &row, "SELECT * FROM events WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return toDomainEvent(&row), nil
}

// ListEvents returns all events, most recent date first
func (r *EventRepository) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	var rows []db.Event
	if err := r.db.SelectContext(ctx, &rows, "SELECT * FROM events ORDER BY date DESC, id DESC"); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	res := make([]*domain.Event, len(rows))
	for i := range rows {
		res[i] = toDomainEvent(&rows[i])
	}
	return res, nil
}

func toDomainEvent(row *db.Event) *domain.Event {
	return &domain.Event{
		ID:        row.ID,
		Name:      row.Name,
		Date:      row.Date,
		Venue:     row.Venue.String,
		CreatedAt: row.CreatedAt,
	}
}
