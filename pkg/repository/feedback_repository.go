package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gemarc/feedback/pkg/db"
	"github.com/gemarc/feedback/pkg/domain"
	"github.com/gemarc/feedback/pkg/sentiment"
)

// FeedbackRepository handles feedback-related database operations
type FeedbackRepository struct {
	db *sqlx.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

const feedbackSelect = `
	SELECT
		f.id, f.user_id, f.user_name, f.event_id, e.name AS event_name,
		f.type, f.subject, f.message, f.rating, f.anonymous, f.sentiment, f.created_at
	FROM feedback f
	LEFT JOIN events e ON f.event_id = e.id`

// CreateFeedback stores a new feedback record and sets its ID
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, fb *domain.Feedback) error {
	if fb.CreatedAt.IsZero() {
		fb.CreatedAt = time.Now().UTC()
	}

	var eventID sql.NullInt64
	if fb.EventID > 0 {
		eventID = sql.NullInt64{Int64: fb.EventID, Valid: true}
	}

	query := `
		INSERT INTO feedback (user_id, user_name, event_id, type, subject, message, rating, anonymous, sentiment, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	return newRetrier().Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, fb.UserID, fb.UserName, eventID, string(fb.Type), fb.Subject,
			fb.Message, fb.Rating, fb.Anonymous, string(fb.Sentiment), fb.CreatedAt)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return critical(fmt.Errorf("create feedback: %w", err))
		}
		id, err := res.LastInsertId()
		if err != nil {
			return critical(fmt.Errorf("get feedback id: %w", err))
		}
		fb.ID = id
		return nil
	}, errCritical)
}

// GetFeedback returns a single feedback record with its event name
func (r *FeedbackRepository) GetFeedback(ctx context.Context, id int64) (*domain.Feedback, error) {
	var row db.Feedback
	if err := r.db.GetContext(ctx, &row, feedbackSelect+" WHERE f.id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get feedback: %w", err)
	}
	return toDomainFeedback(&row), nil
}

// ListFeedback returns feedback matching the filter, newest first
func (r *FeedbackRepository) ListFeedback(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	where, args := filterClause(filter)
	query := feedbackSelect + where + " ORDER BY f.created_at DESC, f.id DESC LIMIT ? OFFSET ?"

	limit := filter.Limit
	if limit <= 0 {
		limit = -1 // no limit in SQLite
	}
	args = append(args, limit, max(filter.Offset, 0))

	var rows []db.Feedback
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}

	res := make([]*domain.Feedback, len(rows))
	for i := range rows {
		res[i] = toDomainFeedback(&rows[i])
	}
	return res, nil
}

// FeedbackStats counts feedback by sentiment for records matching the filter.
// Limit and offset of the filter are ignored.
func (r *FeedbackRepository) FeedbackStats(ctx context.Context, filter domain.FeedbackFilter) (domain.SentimentStats, error) {
	where, args := filterClause(filter)
	query := `
		SELECT f.sentiment, COUNT(*) AS cnt, TOTAL(f.rating) AS rating_sum, COUNT(NULLIF(f.rating, 0)) AS rated
		FROM feedback f
		LEFT JOIN events e ON f.event_id = e.id` + where + `
		GROUP BY f.sentiment`

	var rows []db.SentimentCount
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return domain.SentimentStats{}, fmt.Errorf("feedback stats: %w", err)
	}

	stats := domain.SentimentStats{}
	var ratingSum float64
	var rated int
	for _, row := range rows {
		stats.Total += row.Count
		ratingSum += row.RatingSum
		rated += row.Rated
		switch sentiment.Sentiment(row.Sentiment) {
		case sentiment.Positive:
			stats.Positive += row.Count
		case sentiment.Negative:
			stats.Negative += row.Count
		default:
			stats.Neutral += row.Count
		}
	}
	if rated > 0 {
		stats.AverageRating = ratingSum / float64(rated)
	}
	return stats, nil
}

// FeedbackAfter returns up to limit records with ID greater than afterID, ordered by ID.
// Used to page through the whole table.
func (r *FeedbackRepository) FeedbackAfter(ctx context.Context, afterID int64, limit int) ([]*domain.Feedback, error) {
	var rows []db.Feedback
	query := feedbackSelect + " WHERE f.id > ? ORDER BY f.id LIMIT ?"
	if err := r.db.SelectContext(ctx, &rows, query, afterID, limit); err != nil {
		return nil, fmt.Errorf("get feedback after %d: %w", afterID, err)
	}

	res := make([]*domain.Feedback, len(rows))
	for i := range rows {
		res[i] = toDomainFeedback(&rows[i])
	}
	return res, nil
}

// UpdateSentiment replaces the stored sentiment label of a record
func (r *FeedbackRepository) UpdateSentiment(ctx context.Context, id int64, s sentiment.Sentiment) error {
	return newRetrier().Do(ctx, func() error {
		res, err := r.db.ExecContext(ctx, "UPDATE feedback SET sentiment = ? WHERE id = ?", string(s), id)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return critical(fmt.Errorf("update sentiment: %w", err))
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return critical(fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound))
		}
		return nil
	}, errCritical)
}

// DeleteFeedback removes a feedback record
func (r *FeedbackRepository) DeleteFeedback(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM feedback WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete feedback rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// filterClause builds the WHERE part shared by list and stats queries
func filterClause(filter domain.FeedbackFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Rating > 0 {
		conds = append(conds, "f.rating = ?")
		args = append(args, filter.Rating)
	}
	if filter.EventID > 0 {
		conds = append(conds, "f.event_id = ?")
		args = append(args, filter.EventID)
	}
	if filter.Sentiment != "" {
		conds = append(conds, "f.sentiment = ?")
		args = append(args, string(filter.Sentiment))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		p := likePattern(search)
		conds = append(conds, `(casefold(e.name) LIKE ? ESCAPE '\' OR (f.anonymous = 0 AND casefold(f.user_name) LIKE ? ESCAPE '\') OR casefold(f.message) LIKE ? ESCAPE '\')`)
		args = append(args, p, p, p)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func toDomainFeedback(row *db.Feedback) *domain.Feedback {
	fb := &domain.Feedback{
		ID:        row.ID,
		UserID:    row.UserID,
		UserName:  row.UserName,
		Type:      domain.FeedbackType(row.Type),
		Subject:   row.Subject,
		Message:   row.Message,
		Rating:    row.Rating,
		Anonymous: row.Anonymous,
		Sentiment: sentiment.Sentiment(row.Sentiment),
		CreatedAt: row.CreatedAt,
	}
	if row.EventID.Valid {
		fb.EventID = row.EventID.Int64
	}
	if row.EventName.Valid {
		fb.EventName = row.EventName.String
	}
	return fb
}
