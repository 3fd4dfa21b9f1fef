package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/sync/errgroup"

	"github.com/gemarc/feedback/pkg/config"
	"github.com/gemarc/feedback/pkg/domain"
	"github.com/gemarc/feedback/pkg/llm"
	"github.com/gemarc/feedback/pkg/sentiment"
)

// FeedbackStore is the persistence used for feedback records
type FeedbackStore interface {
	CreateFeedback(ctx context.Context, fb *domain.Feedback) error
	GetFeedback(ctx context.Context, id int64) (*domain.Feedback, error)
	ListFeedback(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error)
	FeedbackStats(ctx context.Context, filter domain.FeedbackFilter) (domain.SentimentStats, error)
	FeedbackAfter(ctx context.Context, afterID int64, limit int) ([]*domain.Feedback, error)
	UpdateSentiment(ctx context.Context, id int64, s sentiment.Sentiment) error
	DeleteFeedback(ctx context.Context, id int64) error
}

// EventStore is the persistence used for events
type EventStore interface {
	CreateEvent(ctx context.Context, ev *domain.Event) error
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]*domain.Event, error)
}

// Digester summarizes an event's feedback, usually with an LLM
type Digester interface {
	Digest(ctx context.Context, req llm.DigestRequest) (string, error)
}

// reclassifyBatch is the page size used when walking all stored feedback
const reclassifyBatch = 200

// FeedbackService handles feedback intake, sentiment classification and admin queries
type FeedbackService struct {
	feedback    FeedbackStore
	events      EventStore
	digester    Digester // nil when digests are disabled
	cfg         config.FeedbackConfig
	maxDigested int
	policy      *bluemonday.Policy
	now         func() time.Time
}

// Params groups FeedbackService dependencies
type Params struct {
	Feedback    FeedbackStore
	Events      EventStore
	Digester    Digester
	Config      config.FeedbackConfig
	MaxDigested int // feedback records passed to the digester, 0 for default
}

// NewFeedbackService creates a new feedback service
func NewFeedbackService(p Params) *FeedbackService {
	if p.MaxDigested <= 0 {
		p.MaxDigested = 50
	}
	return &FeedbackService{
		feedback:    p.Feedback,
		events:      p.Events,
		digester:    p.Digester,
		cfg:         p.Config,
		maxDigested: p.MaxDigested,
		policy:      bluemonday.StrictPolicy(),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates, classifies and stores a new feedback record.
// Validation failures wrap domain.ErrInvalidFeedback.
func (s *FeedbackService) Submit(ctx context.Context, fb *domain.Feedback) error {
	fb.Subject = s.sanitize(fb.Subject)
	fb.Message = s.sanitize(fb.Message)
	fb.UserName = s.sanitize(fb.UserName)

	if fb.Subject == "" && fb.Message == "" {
		return fmt.Errorf("%w: message or subject is required", domain.ErrInvalidFeedback)
	}
	if limit := s.cfg.MaxMessageLength; limit > 0 && utf8.RuneCountInString(fb.Message) > limit {
		return fmt.Errorf("%w: message longer than %d characters", domain.ErrInvalidFeedback, limit)
	}

	if fb.Type == "" {
		fb.Type = domain.FeedbackOther
	}
	if !fb.Type.Valid() {
		return fmt.Errorf("%w: unknown feedback type %q", domain.ErrInvalidFeedback, fb.Type)
	}

	fb.Rating = sentiment.NormalizeRating(fb.Rating)
	if fb.Anonymous {
		fb.UserName = ""
	}

	fb.EventName = ""
	if fb.EventID > 0 {
		ev, err := s.events.GetEvent(ctx, fb.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("%w: unknown event %d", domain.ErrInvalidFeedback, fb.EventID)
			}
			return fmt.Errorf("get event: %w", err)
		}
		fb.EventName = ev.Name
	}

	fb.Sentiment = sentiment.Classify(fb.Message, fb.Rating)
	fb.CreatedAt = s.now()

	if err := s.feedback.CreateFeedback(ctx, fb); err != nil {
		return fmt.Errorf("store feedback: %w", err)
	}
	log.Printf("[DEBUG] feedback %d stored, type=%s, rating=%d, sentiment=%s", fb.ID, fb.Type, fb.Rating, fb.Sentiment)
	return nil
}

// Get returns a single feedback record
func (s *FeedbackService) Get(ctx context.Context, id int64) (*domain.Feedback, error) {
	return s.feedback.GetFeedback(ctx, id)
}

// Delete removes a feedback record
func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	if err := s.feedback.DeleteFeedback(ctx, id); err != nil {
		return err
	}
	log.Printf("[INFO] feedback %d deleted", id)
	return nil
}

// List returns feedback matching the filter with paging limits applied
func (s *FeedbackService) List(ctx context.Context, filter domain.FeedbackFilter) ([]*domain.Feedback, error) {
	filter, err := s.normalizeFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.feedback.ListFeedback(ctx, filter)
}

// Stats returns sentiment counters for feedback matching the filter
func (s *FeedbackService) Stats(ctx context.Context, filter domain.FeedbackFilter) (domain.SentimentStats, error) {
	filter, err := s.normalizeFilter(filter)
	if err != nil {
		return domain.SentimentStats{}, err
	}
	return s.feedback.FeedbackStats(ctx, filter)
}

// CreateEvent stores a new event
func (s *FeedbackService) CreateEvent(ctx context.Context, ev *domain.Event) error {
	ev.Name = s.sanitize(ev.Name)
	ev.Venue = s.sanitize(ev.Venue)
	if ev.Name == "" {
		return fmt.Errorf("%w: event name is required", domain.ErrInvalidFeedback)
	}
	if ev.Date.IsZero() {
		return fmt.Errorf("%w: event date is required", domain.ErrInvalidFeedback)
	}
	ev.CreatedAt = s.now()
	return s.events.CreateEvent(ctx, ev)
}

// Events returns all events
func (s *FeedbackService) Events(ctx context.Context) ([]*domain.Event, error) {
	return s.events.ListEvents(ctx)
}

// ReclassifyResult reports what a reclassification pass did
type ReclassifyResult struct {
	Checked int64 `json:"checked"`
	Updated int64 `json:"updated"`
}

// Reclassify recomputes sentiment of every stored feedback record and updates
// the ones whose label changed, e.g. after the word lists were extended
func (s *FeedbackService) Reclassify(ctx context.Context) (ReclassifyResult, error) {
	var checked, updated atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.cfg.Workers, 1))

	var afterID int64
	for {
		batch, err := s.feedback.FeedbackAfter(gctx, afterID, reclassifyBatch)
		if err != nil {
			werr := g.Wait()
			res := ReclassifyResult{Checked: checked.Load(), Updated: updated.Load()}
			if werr != nil {
				return res, fmt.Errorf("reclassify: %w", werr) // load failed because a worker canceled the group
			}
			return res, fmt.Errorf("load feedback: %w", err)
		}
		if len(batch) == 0 {
			break
		}
		afterID = batch[len(batch)-1].ID

		for _, fb := range batch {
			g.Go(func() error {
				checked.Add(1)
				want := sentiment.Classify(fb.Message, fb.Rating)
				if want == fb.Sentiment {
					return nil
				}
				if err := s.feedback.UpdateSentiment(gctx, fb.ID, want); err != nil {
					return fmt.Errorf("update feedback %d: %w", fb.ID, err)
				}
				updated.Add(1)
				return nil
			})
		}
		if len(batch) < reclassifyBatch {
			break
		}
	}

	err := g.Wait()
	res := ReclassifyResult{Checked: checked.Load(), Updated: updated.Load()}
	if err != nil {
		return res, fmt.Errorf("reclassify: %w", err)
	}
	log.Printf("[INFO] reclassified feedback, checked=%d, updated=%d", res.Checked, res.Updated)
	return res, nil
}

// Digest summarizes recent feedback for an event.
// Returns domain.ErrNotConfigured when no digester is set.
func (s *FeedbackService) Digest(ctx context.Context, eventID int64) (string, error) {
	if s.digester == nil {
		return "", fmt.Errorf("feedback digest: %w", domain.ErrNotConfigured)
	}

	ev, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return "", err
	}

	filter := domain.FeedbackFilter{EventID: eventID, Limit: s.maxDigested}
	items, err := s.feedback.ListFeedback(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("list event feedback: %w", err)
	}
	if len(items) == 0 {
		return "", fmt.Errorf("event %d has no feedback: %w", eventID, domain.ErrNotFound)
	}

	stats, err := s.feedback.FeedbackStats(ctx, filter)
	if err != nil {
		return "", fmt.Errorf("event feedback stats: %w", err)
	}

	summary, err := s.digester.Digest(ctx, llm.DigestRequest{Event: ev, Feedback: items, Stats: stats})
	if err != nil {
		return "", fmt.Errorf("digest event %d: %w", eventID, err)
	}
	return summary, nil
}

// normalizeFilter applies paging limits and drops invalid rating values
func (s *FeedbackService) normalizeFilter(filter domain.FeedbackFilter) (domain.FeedbackFilter, error) {
	if filter.Sentiment != "" && !filter.Sentiment.Valid() {
		return filter, fmt.Errorf("%w: unknown sentiment %q", domain.ErrInvalidFeedback, filter.Sentiment)
	}
	filter.Rating = sentiment.NormalizeRating(filter.Rating)
	filter.Search = strings.TrimSpace(filter.Search)

	switch {
	case filter.Limit <= 0:
		filter.Limit = s.cfg.DefaultLimit
	case s.cfg.MaxLimit > 0 && filter.Limit > s.cfg.MaxLimit:
		filter.Limit = s.cfg.MaxLimit
	}
	filter.Offset = max(filter.Offset, 0)
	return filter, nil
}

// maxSanitizePasses bounds the strip-and-decode loop in sanitize
const maxSanitizePasses = 8

// sanitize strips markup from user text and returns it as plain, trimmed text.
// Decoding entities can expose tags written as escapes, so stripping repeats
// until the text is stable. If it never settles the escaped form is kept.
func (s *FeedbackService) sanitize(text string) string {
	for range maxSanitizePasses {
		plain := html.UnescapeString(s.policy.Sanitize(text))
		if plain == text {
			return strings.TrimSpace(plain)
		}
		text = plain
	}
	return strings.TrimSpace(s.policy.Sanitize(text))
}
