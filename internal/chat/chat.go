// Package chat proxies assistant questions to a text generator and always
// answers the browser, falling back to a canned reply when the generator is
// unavailable.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/frahmantamala/hr-portal/internal"
)

const (
	FallbackReply = "Assistant is offline right now, but your request was received."
	EmptyReply    = "I could not generate a reply just now."

	missingKeyMessage = "Missing GEMINI_API_KEY"
)

var (
	ErrMessageRequired = internal.NewValidationError("Message is required.", internal.ErrCodeRequired)
	// ErrNotConfigured is returned by a generator that has no API key.
	ErrNotConfigured = errors.New("chat: generator not configured")
	// ErrUpstream classifies a failed generate call; the upstream error is
	// attached with WithCause.
	ErrUpstream = internal.NewExternalError("Gemini request failed", nil)
)

// InitError reports that the upstream client could not be constructed.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return "Gemini client init failed: " + e.Err.Error()
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// Generator turns a prompt into reply text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Request is the JSON body of POST /api/chat.
type Request struct {
	Message string `json:"message"`
}

// Response carries a reply, an upstream error description, or both.
type Response struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

type Service struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

func NewService(gen Generator, timeout time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{gen: gen, timeout: timeout, logger: logger}
}

// Ask returns ErrMessageRequired for a blank message. Every generator failure
// is folded into the response instead of an error.
func (s *Service) Ask(ctx context.Context, message string) (*Response, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageRequired
	}

	ctx, cancel := internal.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	reply, err := s.gen.Generate(ctx, message)
	if err != nil {
		s.logger.Warn("chat generator failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return &Response{Reply: FallbackReply, Error: describe(err)}, nil
	}

	if strings.TrimSpace(reply) == "" {
		reply = EmptyReply
	}
	s.logger.Debug("chat reply generated", "duration_ms", time.Since(start).Milliseconds())
	return &Response{Reply: reply}, nil
}

func describe(err error) string {
	var initErr *InitError
	switch {
	case errors.Is(err, ErrNotConfigured):
		return missingKeyMessage
	case errors.As(err, &initErr):
		return initErr.Error()
	case errors.Is(err, ErrUpstream):
		if appErr, ok := internal.IsAppError(err); ok {
			return appErr.Error()
		}
		return ErrUpstream.Message
	default:
		return fmt.Sprintf("Gemini request failed: %v", err)
	}
}
