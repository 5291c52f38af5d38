// Package enrichment derives tone and sentiment labels for review text
// through an external chat-completion API.
package enrichment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"review-insights/pkg/utils"

	openai "github.com/sashabaranov/go-openai"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// Error wraps any failure of the enrichment call: transport errors, a
// tripped circuit breaker, or a model reply that does not contain the
// expected two lines. Callers treat all of them as "enrichment skipped".
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("enrichment %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result is the (tone, sentiment) pair for one review.
type Result struct {
	Tone      string
	Sentiment string
}

// Analyzer derives tone and sentiment for a review.
type Analyzer interface {
	Analyze(ctx context.Context, text string, stars int) (*Result, error)
}

const systemPrompt = "Analyze the sentiment and tone of the following review. " +
	"Reply with exactly two lines: the tone on the first line and the sentiment on the second line."

type completionAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Client calls an OpenAI-compatible completion endpoint. A circuit
// breaker fronts the call so a down service fails fast instead of
// stalling every page load.
type Client struct {
	api     completionAPI
	model   string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker[*Result]
	log     *zap.Logger
}

func NewClient(config utils.OpenAIConfig, log *zap.Logger) *Client {
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	breaker := gobreaker.NewCircuitBreaker[*Result](gobreaker.Settings{
		Name: "enrichment",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		Timeout: 30 * time.Second,
	})

	return &Client{
		api:     openai.NewClientWithConfig(clientConfig),
		model:   config.Model,
		timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		breaker: breaker,
		log:     log.With(zap.String("client", "enrichment")),
	}
}

// Analyze sends one completion request and parses the two-line reply.
// Any failure comes back as *Error.
func (c *Client) Analyze(ctx context.Context, text string, stars int) (*Result, error) {
	result, err := c.breaker.Execute(func() (*Result, error) {
		return c.analyze(ctx, text, stars)
	})
	if err != nil {
		if enrichErr, ok := err.(*Error); ok {
			return nil, enrichErr
		}
		// Breaker open, or the half-open trial request was rejected.
		return nil, &Error{Op: "call", Err: err}
	}
	return result, nil
}

func (c *Client) analyze(ctx context.Context, text string, stars int) (*Result, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Review: %s\nStars: %d", text, stars)},
		},
	})
	if err != nil {
		c.log.Warn("Enrichment request failed", zap.Error(err))
		return nil, &Error{Op: "call", Err: err}
	}

	if len(resp.Choices) == 0 {
		return nil, &Error{Op: "parse", Err: fmt.Errorf("completion returned no choices")}
	}

	result, err := parseReply(resp.Choices[0].Message.Content)
	if err != nil {
		c.log.Warn("Enrichment reply malformed",
			zap.Error(err),
			zap.String("reply", resp.Choices[0].Message.Content),
		)
		return nil, &Error{Op: "parse", Err: err}
	}

	return result, nil
}

// parseReply expects the tone on the first non-empty line and the
// sentiment on the second.
func parseReply(reply string) (*Result, error) {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(reply), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) < 2 {
		return nil, fmt.Errorf("expected two lines (tone, sentiment), got %d", len(lines))
	}

	return &Result{Tone: lines[0], Sentiment: lines[1]}, nil
}
