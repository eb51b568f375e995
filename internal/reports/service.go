package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"diagnostics-backend/internal/diagnostic"
	"diagnostics-backend/internal/llm"
	"diagnostics-backend/internal/shared/metrics"
	"diagnostics-backend/internal/shared/telemetry"
)

// Service generates client reports, preferring the LLM provider and
// falling back to the deterministic synthesizer and composer. The
// fallback path is the availability guarantee of the report feature: it
// never fails on a validated request.
type Service struct {
	LLM     llm.Client
	Library *diagnostic.Library
	Now     func() time.Time
}

// NewService constructs a Service. A nil client behaves as unconfigured.
func NewService(client llm.Client, library *diagnostic.Library) *Service {
	if client == nil {
		client = llm.UnconfiguredClient{}
	}
	if library == nil {
		library = diagnostic.DefaultLibrary()
	}
	return &Service{LLM: client, Library: library, Now: time.Now}
}

// Generate produces the report for a completed diagnostic. Any panic in
// the provider path degrades to the deterministic fallback rather than
// surfacing an error.
func (s *Service) Generate(ctx context.Context, req GenerateRequest, requestID string) (result Result) {
	if strings.TrimSpace(req.Name) == "" {
		req.Name = defaultClientName
	}

	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("report.generate_panic", map[string]any{
				"request_id": requestID,
				"tool":       req.ToolName,
				"error":      rec,
			})
			metrics.IncReportErrorFallback()
			result = s.fallback(req, SourceErrorFallback)
		}
	}()

	started := metrics.NowMillis()
	content, err := s.LLM.GenerateReport(ctx, llm.GenerateInput{
		ToolName: req.ToolName,
		Score:    req.Score,
		Answers:  req.Answers,
		Name:     req.Name,
	})
	metrics.ObserveReportDurationMs(metrics.NowMillis() - started)

	switch {
	case err == nil:
		metrics.IncReportOpenAI()
		return Result{Content: content, Source: SourceOpenAI}
	case errors.Is(err, llm.ErrNotConfigured):
		// Expected when no API key is set. Log-only, not an error.
		telemetry.Info("report.fallback", map[string]any{
			"request_id": requestID,
			"tool":       req.ToolName,
			"reason":     "not_configured",
		})
		metrics.IncReportFallback()
		return s.fallback(req, SourceIntelligentFallback)
	default:
		telemetry.Error("report.llm_failed", map[string]any{
			"request_id": requestID,
			"tool":       req.ToolName,
			"error":      err.Error(),
		})
		metrics.IncReportFallback()
		return s.fallback(req, SourceFallbackAfterError)
	}
}

// fallback builds the templated report. The classification never fails
// here because the handler validates answers before generation.
func (s *Service) fallback(req GenerateRequest, source string) Result {
	classification, err := diagnostic.Classify(req.Answers)
	if err != nil {
		classification = diagnostic.Classification{Bucket: diagnostic.BucketBalanced}
	}

	insights := s.Library.Synthesize(req.Answers, req.ToolName, classification.Bucket)
	report := s.Library.Compose(req.ToolName, req.Score, req.Answers, req.Name, s.Now())
	return Result{
		Content:  report.Render(),
		Insights: insights,
		Source:   source,
	}
}
