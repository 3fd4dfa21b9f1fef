package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gemarc/feedback/pkg/domain"
	"github.com/gemarc/feedback/pkg/sentiment"
)

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// sentimentRequest is the body of the ad-hoc classification endpoint
type sentimentRequest struct {
	Text   string      `json:"text"`
	Rating ratingValue `json:"rating"`
}

// sentimentHandler classifies text without storing anything
func (s *Server) sentimentHandler(w http.ResponseWriter, r *http.Request) {
	var req sentimentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	renderJSON(w, r, http.StatusOK, sentiment.Analyze(req.Text, int(req.Rating)))
}

// feedbackRequest is the body of feedback submission
type feedbackRequest struct {
	UserID    string      `json:"user_id"`
	UserName  string      `json:"user_name"`
	EventID   int64       `json:"event_id"`
	Type      string      `json:"type"`
	Subject   string      `json:"subject"`
	Message   string      `json:"message"`
	Rating    ratingValue `json:"rating"`
	Anonymous bool        `json:"anonymous"`
}

// submitFeedbackHandler stores new feedback and returns it with its sentiment
func (s *Server) submitFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	var req feedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	fb := &domain.Feedback{
		UserID:    req.UserID,
		UserName:  req.UserName,
		EventID:   req.EventID,
		Type:      domain.FeedbackType(strings.ToLower(strings.TrimSpace(req.Type))),
		Subject:   req.Subject,
		Message:   req.Message,
		Rating:    int(req.Rating),
		Anonymous: req.Anonymous,
	}
	if err := s.feedback.Submit(r.Context(), fb); err != nil {
		s.renderServiceError(w, r, "submit feedback", err)
		return
	}
	renderJSON(w, r, http.StatusCreated, fb)
}

// listFeedbackHandler returns filtered feedback for admins
func (s *Server) listFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	items, err := s.feedback.List(r.Context(), filter)
	if err != nil {
		s.renderServiceError(w, r, "list feedback", err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"feedback": items, "count": len(items)})
}

// feedbackStatsHandler returns sentiment counters for the filtered feedback
func (s *Server) feedbackStatsHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	stats, err := s.feedback.Stats(r.Context(), filter)
	if err != nil {
		s.renderServiceError(w, r, "feedback stats", err)
		return
	}
	renderJSON(w, r, http.StatusOK, stats)
}

// getFeedbackHandler returns a single feedback record
func (s *Server) getFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid feedback ID"), http.StatusBadRequest)
		return
	}

	fb, err := s.feedback.Get(r.Context(), id)
	if err != nil {
		s.renderServiceError(w, r, "get feedback", err)
		return
	}
	renderJSON(w, r, http.StatusOK, fb)
}

// deleteFeedbackHandler removes a feedback record
func (s *Server) deleteFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid feedback ID"), http.StatusBadRequest)
		return
	}

	if err := s.feedback.Delete(r.Context(), id); err != nil {
		s.renderServiceError(w, r, "delete feedback", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listEventsHandler returns all events
func (s *Server) listEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := s.feedback.Events(r.Context())
	if err != nil {
		s.renderServiceError(w, r, "list events", err)
		return
	}
	renderJSON(w, r, http.StatusOK, events)
}

// eventRequest is the body of event creation
type eventRequest struct {
	Name  string    `json:"name"`
	Date  time.Time `json:"date"`
	Venue string    `json:"venue"`
}

// createEventHandler stores a new event
func (s *Server) createEventHandler(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	ev := &domain.Event{Name: req.Name, Date: req.Date, Venue: req.Venue}
	if err := s.feedback.CreateEvent(r.Context(), ev); err != nil {
		s.renderServiceError(w, r, "create event", err)
		return
	}
	renderJSON(w, r, http.StatusCreated, ev)
}

// eventDigestHandler returns an LLM summary of the event's feedback
func (s *Server) eventDigestHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, fmt.Errorf("invalid event ID"), http.StatusBadRequest)
		return
	}

	summary, err := s.feedback.Digest(r.Context(), id)
	if err != nil {
		s.renderServiceError(w, r, "event digest", err)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"event_id": id, "digest": summary})
}

// reclassifyHandler recomputes stored sentiment labels
func (s *Server) reclassifyHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.feedback.Reclassify(r.Context())
	if err != nil {
		s.renderServiceError(w, r, "reclassify", err)
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

// parseFilter reads list filters from the query. "all" or empty means no filter,
// unparsable rating is ignored the same way the classifier ignores it.
func parseFilter(r *http.Request) (domain.FeedbackFilter, error) {
	q := r.URL.Query()
	filter := domain.FeedbackFilter{Search: q.Get("search")}

	if v := filterValue(q.Get("rating")); v != "" {
		filter.Rating = sentiment.ParseRating(v)
	}
	if v := filterValue(q.Get("event")); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id < 0 {
			return filter, fmt.Errorf("invalid event filter %q", v)
		}
		filter.EventID = id
	}
	if v := filterValue(q.Get("sentiment")); v != "" {
		filter.Sentiment = sentiment.Sentiment(strings.ToLower(v))
	}

	var err error
	if filter.Limit, err = intParam(q.Get("limit")); err != nil {
		return filter, fmt.Errorf("invalid limit: %w", err)
	}
	if filter.Offset, err = intParam(q.Get("offset")); err != nil {
		return filter, fmt.Errorf("invalid offset: %w", err)
	}
	return filter, nil
}

func filterValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", r.PathValue("id"))
	}
	return id, nil
}

// ratingValue accepts a rating sent as a number or a string. Anything that is
// not an integer in the valid range decodes to 0 (no rating) instead of failing.
type ratingValue int

// UnmarshalJSON implements json.Unmarshaler
func (v *ratingValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		s = string(data) // not a string, use the raw number
	}
	*v = ratingValue(sentiment.ParseRating(s))
	return nil
}

// renderServiceError maps domain errors to HTTP codes
func (s *Server) renderServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidFeedback):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrNotFound):
		renderError(w, r, err, http.StatusNotFound)
	case errors.Is(err, domain.ErrNotConfigured):
		renderError(w, r, err, http.StatusServiceUnavailable)
	default:
		log.Printf("[ERROR] failed to %s: %v", op, err)
		renderError(w, r, fmt.Errorf("failed to %s", op), http.StatusInternalServerError)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
