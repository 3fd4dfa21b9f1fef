package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/gemarc/feedback/pkg/config"
	"github.com/gemarc/feedback/pkg/domain"
)

// Digester uses LLM to summarize feedback for event organizers
type Digester struct {
	client    *openai.Client
	config    config.LLMConfig
	systemMsg string
}

// NewDigester creates a new LLM digester
func NewDigester(cfg config.LLMConfig) *Digester {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	return &Digester{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: systemMsg,
	}
}

// default system prompt for feedback digests
const defaultSystemPrompt = `You are an assistant helping campus event organizers understand attendee feedback.
Summarize the feedback you are given in 3-6 short bullet points:
- what attendees liked most
- recurring complaints or problems
- concrete suggestions for the next event
Each feedback line is prefixed with its star rating and a keyword-based sentiment label; use them as hints, not as facts.
Do not invent details that are not present in the feedback. Do not quote user names.
Write in plain text without markdown headers.`

// DigestRequest contains everything needed to summarize an event's feedback
type DigestRequest struct {
	Event    *domain.Event
	Feedback []*domain.Feedback
	Stats    domain.SentimentStats
}

// Digest returns a short summary of the feedback in the request
func (d *Digester) Digest(ctx context.Context, req DigestRequest) (string, error) {
	if len(req.Feedback) == 0 {
		return "", fmt.Errorf("no feedback provided")
	}

	if d.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.config.Timeout)
		defer cancel()
	}

	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       d.config.Model,
		Temperature: float32(d.config.Temperature),
		MaxTokens:   d.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: d.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: d.buildPrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("empty response from llm")
	}
	return summary, nil
}

// buildPrompt creates the user prompt listing the feedback records
func (d *Digester) buildPrompt(req DigestRequest) string {
	var sb strings.Builder

	if req.Event != nil {
		sb.WriteString(fmt.Sprintf("Event: %s (%s)\n", req.Event.Name, req.Event.Date.Format("2006-01-02")))
	}
	sb.WriteString(fmt.Sprintf("Totals: %d feedback, %d positive, %d neutral, %d negative",
		req.Stats.Total, req.Stats.Positive, req.Stats.Neutral, req.Stats.Negative))
	if req.Stats.AverageRating > 0 {
		sb.WriteString(fmt.Sprintf(", average rating %.1f", req.Stats.AverageRating))
	}
	sb.WriteString("\n\nFeedback:\n")

	limit := d.config.MaxFeedback
	for i, fb := range req.Feedback {
		if limit > 0 && i >= limit {
			sb.WriteString(fmt.Sprintf("(%d more omitted)\n", len(req.Feedback)-limit))
			break
		}
		rating := "-"
		if fb.Rating > 0 {
			rating = fmt.Sprintf("%d/5", fb.Rating)
		}
		text := fb.Message
		if fb.Subject != "" {
			text = fb.Subject + ": " + text
		}
		// keep prompt size bounded
		if r := []rune(text); len(r) > 500 {
			text = string(r[:500]) + "..."
		}
		sb.WriteString(fmt.Sprintf("- [%s, %s, %s] %s\n", rating, fb.Sentiment, fb.Type, text))
	}
	return sb.String()
}
