package llm

import (
	"context"
	"errors"

	"diagnostics-backend/internal/diagnostic"
)

// Client abstracts LLM providers for report prose generation.
type Client interface {
	GenerateReport(ctx context.Context, input GenerateInput) (string, error)
}

// GenerateInput captures the inputs needed to generate a client report.
type GenerateInput struct {
	ToolName string
	Score    int
	Answers  []diagnostic.Answer
	Name     string
}

// ErrNotConfigured is returned when no provider credentials are present.
// Callers treat it as an expected condition, not a failure.
var ErrNotConfigured = errors.New("LLM provider not configured")

// UnconfiguredClient is the client used when no API key is set.
type UnconfiguredClient struct{}

// GenerateReport returns ErrNotConfigured.
func (UnconfiguredClient) GenerateReport(ctx context.Context, input GenerateInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
