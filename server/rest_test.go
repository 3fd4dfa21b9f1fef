package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemarc/feedback/pkg/domain"
	"github.com/gemarc/feedback/pkg/sentiment"
	"github.com/gemarc/feedback/pkg/service"
	"github.com/gemarc/feedback/server/mocks"
)

// do sends request through the full router, middleware included
func do(t *testing.T, fs FeedbackService, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(testConfig(":8080"), fs, "1.2.3", false)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestServer_statusHandler(t *testing.T) {
	w := do(t, &mocks.FeedbackServiceMock{}, "GET", "/api/v1/status", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var status map[string]any
	decode(t, w, &status)
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.NotEmpty(t, status["time"])
}

func TestServer_sentimentHandler(t *testing.T) {
	tests := []struct {
		name string
		body string
		want sentiment.Result
	}{
		{name: "positive", body: `{"text":"This was a great and wonderful event"}`,
			want: sentiment.Result{Sentiment: sentiment.Positive, Positive: 2, Score: 2}},
		{name: "negative", body: `{"text":"This was a terrible and awful event"}`,
			want: sentiment.Result{Sentiment: sentiment.Negative, Negative: 2, Score: -2}},
		{name: "tie numeric rating", body: `{"text":"good bad","rating":5}`,
			want: sentiment.Result{Sentiment: sentiment.Positive, Positive: 1, Negative: 1, ByRating: true}},
		{name: "tie string rating", body: `{"text":"good bad","rating":"1"}`,
			want: sentiment.Result{Sentiment: sentiment.Negative, Positive: 1, Negative: 1, ByRating: true}},
		{name: "garbage rating ignored", body: `{"text":"good bad","rating":"five"}`,
			want: sentiment.Result{Sentiment: sentiment.Neutral, Positive: 1, Negative: 1}},
		{name: "out of range rating ignored", body: `{"text":"","rating":11}`,
			want: sentiment.Result{Sentiment: sentiment.Neutral}},
		{name: "null rating", body: `{"text":"I got a badge today","rating":null}`,
			want: sentiment.Result{Sentiment: sentiment.Neutral}},
		{name: "empty body object", body: `{}`, want: sentiment.Result{Sentiment: sentiment.Neutral}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, &mocks.FeedbackServiceMock{}, "POST", "/api/v1/sentiment", tt.body)
			require.Equal(t, http.StatusOK, w.Code)
			var res sentiment.Result
			decode(t, w, &res)
			assert.Equal(t, tt.want, res)
		})
	}

	t.Run("invalid json", func(t *testing.T) {
		w := do(t, &mocks.FeedbackServiceMock{}, "POST", "/api/v1/sentiment", `{"text":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_submitFeedbackHandler(t *testing.T) {
	fs := &mocks.FeedbackServiceMock{
		SubmitFunc: func(_ context.Context, fb *domain.Feedback) error {
			if fb.Message == "reject" {
				return fmt.Errorf("%w: nope", domain.ErrInvalidFeedback)
			}
			if fb.Message == "boom" {
				return errors.New("db is down")
			}
			fb.ID = 10
			fb.Sentiment = sentiment.Classify(fb.Message, fb.Rating)
			return nil
		},
	}

	w := do(t, fs, "POST", "/api/v1/feedback",
		`{"user_id":"u1","user_name":"alice","event_id":3,"type":" Compliment ","subject":"hi","message":"love it","rating":"5","anonymous":false}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var fb domain.Feedback
	decode(t, w, &fb)
	assert.Equal(t, int64(10), fb.ID)
	assert.Equal(t, sentiment.Positive, fb.Sentiment)

	require.Len(t, fs.SubmitCalls(), 1)
	got := fs.SubmitCalls()[0].Fb
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, int64(3), got.EventID)
	assert.Equal(t, domain.FeedbackCompliment, got.Type)
	assert.Equal(t, 5, got.Rating)

	w = do(t, fs, "POST", "/api/v1/feedback", `{"message":"reject"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid feedback: nope")

	w = do(t, fs, "POST", "/api/v1/feedback", `{"message":"boom"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to submit feedback")
	assert.NotContains(t, w.Body.String(), "db is down")

	w = do(t, fs, "POST", "/api/v1/feedback", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, fs.SubmitCalls(), 3)
}

func TestServer_listFeedbackHandler(t *testing.T) {
	fs := &mocks.FeedbackServiceMock{
		ListFunc: func(context.Context, domain.FeedbackFilter) ([]*domain.Feedback, error) {
			return []*domain.Feedback{
				{ID: 1, Message: "great", Sentiment: sentiment.Positive, CreatedAt: time.Now()},
				{ID: 2, Message: "bad", Sentiment: sentiment.Negative, CreatedAt: time.Now()},
			}, nil
		},
	}

	w := do(t, fs, "GET", "/api/v1/feedback?rating=4&event=7&sentiment=Positive&search=wifi&limit=20&offset=40", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Feedback []domain.Feedback `json:"feedback"`
		Count    int               `json:"count"`
	}
	decode(t, w, &resp)
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Feedback, 2)
	assert.Equal(t, sentiment.Negative, resp.Feedback[1].Sentiment)

	require.Len(t, fs.ListCalls(), 1)
	assert.Equal(t, domain.FeedbackFilter{Rating: 4, EventID: 7, Sentiment: sentiment.Positive, Search: "wifi", Limit: 20, Offset: 40},
		fs.ListCalls()[0].Filter)

	t.Run("all means no filter", func(t *testing.T) {
		w := do(t, fs, "GET", "/api/v1/feedback?rating=all&event=all&sentiment=all", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.FeedbackFilter{}, fs.ListCalls()[1].Filter)
	})

	t.Run("bad rating ignored", func(t *testing.T) {
		w := do(t, fs, "GET", "/api/v1/feedback?rating=abc", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, fs.ListCalls()[2].Filter.Rating)
	})

	for _, q := range []string{"event=x", "limit=-1", "offset=z", "event=-3"} {
		t.Run("bad query "+q, func(t *testing.T) {
			w := do(t, fs, "GET", "/api/v1/feedback?"+q, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Len(t, fs.ListCalls(), 3)
}

func TestServer_feedbackStatsHandler(t *testing.T) {
	fs := &mocks.FeedbackServiceMock{
		StatsFunc: func(_ context.Context, f domain.FeedbackFilter) (domain.SentimentStats, error) {
			if f.Sentiment == "mixed" {
				return domain.SentimentStats{}, fmt.Errorf("%w: unknown sentiment", domain.ErrInvalidFeedback)
			}
			return domain.SentimentStats{Total: 5, Positive: 3, Neutral: 1, Negative: 1, AverageRating: 4.2}, nil
		},
	}

	w := do(t, fs, "GET", "/api/v1/feedback/stats?event=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats domain.SentimentStats
	decode(t, w, &stats)
	assert.Equal(t, domain.SentimentStats{Total: 5, Positive: 3, Neutral: 1, Negative: 1, AverageRating: 4.2}, stats)
	assert.Equal(t, int64(2), fs.StatsCalls()[0].Filter.EventID)

	w = do(t, fs, "GET", "/api/v1/feedback/stats?sentiment=mixed", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_getAndDeleteFeedbackHandler(t *testing.T) {
	fs := &mocks.FeedbackServiceMock{
		GetFunc: func(_ context.Context, id int64) (*domain.Feedback, error) {
			if id != 5 {
				return nil, fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound)
			}
			return &domain.Feedback{ID: 5, Message: "nice", Sentiment: sentiment.Positive}, nil
		},
		DeleteFunc: func(_ context.Context, id int64) error {
			if id != 5 {
				return fmt.Errorf("feedback %d: %w", id, domain.ErrNotFound)
			}
			return nil
		},
	}

	w := do(t, fs, "GET", "/api/v1/feedback/5", "")
	require.Equal(t, http.StatusOK, w.Code)
	var fb domain.Feedback
	decode(t, w, &fb)
	assert.Equal(t, "nice", fb.Message)

	w = do(t, fs, "GET", "/api/v1/feedback/6", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, fs, "GET", "/api/v1/feedback/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, fs, "DELETE", "/api/v1/feedback/5", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, fs, "DELETE", "/api/v1/feedback/6", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, fs, "DELETE", "/api/v1/feedback/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, fs.DeleteCalls(), 2)
}

func TestServer_eventHandlers(t *testing.T) {
	fs := &mocks.FeedbackServiceMock{
		EventsFunc: func(context.Context) ([]*domain.Event, error) {
			return []*domain.Event{{ID: 1, Name: "Hackathon"}}, nil
		},
		CreateEventFunc: func(_ context.Context, ev *domain.Event) error {
			if ev.Name == "" {
				return fmt.Errorf("%w: event name is required", domain.ErrInvalidFeedback)
			}
			ev.ID = 2
			return nil
		},
	}

	w := do(t, fs, "GET", "/api/v1/events", "")
	require.Equal(t, http.StatusOK, w.Code)
	var events []domain.Event
	decode(t, w, &events)
	require.Len(t, events, 1)
	assert.Equal(t, "Hackathon", events[0].Name)

	w = do(t, fs, "POST", "/api/v1/events", `{"name":"Demo Day","date":"2026-11-20T10:00:00Z","venue":"Aula"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var ev domain.Event
	decode(t, w, &ev)
	assert.Equal(t, int64(2), ev.ID)
	assert.Equal(t, time.Date(2026, 11, 20, 10, 0, 0, 0, time.UTC), ev.Date.UTC())
	assert.Equal(t, "Aula", fs.CreateEventCalls()[0].Ev.Venue)

	w = do(t, fs, "POST", "/api/v1/events", `{"date":"2026-11-20T10:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, fs, "POST", "/api/v1/events", `{"name":"x","date":"tomorrow"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_eventDigestHandler(t *testing.T) {
	fs := &mocks.FeedbackServiceMock{
		DigestFunc: func(_ context.Context, id int64) (string, error) {
			switch id {
			case 1:
				return "people liked the talks", nil
			case 2:
				return "", fmt.Errorf("feedback digest: %w", domain.ErrNotConfigured)
			default:
				return "", fmt.Errorf("event %d: %w", id, domain.ErrNotFound)
			}
		},
	}

	w := do(t, fs, "GET", "/api/v1/events/1/digest", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		EventID int64  `json:"event_id"`
		Digest  string `json:"digest"`
	}
	decode(t, w, &resp)
	assert.Equal(t, int64(1), resp.EventID)
	assert.Equal(t, "people liked the talks", resp.Digest)

	w = do(t, fs, "GET", "/api/v1/events/2/digest", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(t, fs, "GET", "/api/v1/events/3/digest", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_reclassifyHandler(t *testing.T) {
	fs := &mocks.FeedbackServiceMock{
		ReclassifyFunc: func(context.Context) (service.ReclassifyResult, error) {
			return service.ReclassifyResult{Checked: 12, Updated: 3}, nil
		},
	}
	w := do(t, fs, "POST", "/api/v1/admin/reclassify", "")
	require.Equal(t, http.StatusOK, w.Code)
	var res service.ReclassifyResult
	decode(t, w, &res)
	assert.Equal(t, service.ReclassifyResult{Checked: 12, Updated: 3}, res)

	fs.ReclassifyFunc = func(context.Context) (service.ReclassifyResult, error) {
		return service.ReclassifyResult{}, errors.New("locked")
	}
	w = do(t, fs, "POST", "/api/v1/admin/reclassify", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRatingValue(t *testing.T) {
	tests := map[string]int{
		`4`: 4, `"3"`: 3, `" 2 "`: 2, `0`: 0, `6`: 0, `-1`: 0, `4.5`: 0, `"x"`: 0, `null`: 0, `true`: 0, `[]`: 0,
	}
	for in, want := range tests {
		var v ratingValue
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, want, int(v), in)
	}
}
