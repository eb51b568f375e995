package reports

import "diagnostics-backend/internal/diagnostic"

// Source labels how a report was produced.
const (
	SourceOpenAI              = "openai"
	SourceIntelligentFallback = "intelligent_fallback"
	SourceFallbackAfterError  = "fallback_after_error"
	SourceErrorFallback       = "error_fallback"
)

// defaultClientName is used when the caller omits a name.
const defaultClientName = "Valued Client"

// GenerateRequest is the report-generation request body.
type GenerateRequest struct {
	ToolName string              `json:"toolName"`
	Score    int                 `json:"score"`
	Answers  []diagnostic.Answer `json:"answers"`
	Name     string              `json:"name"`
}

// Result is the outcome of a generation attempt. Content is always
// non-empty: the deterministic fallback backs every failure path.
type Result struct {
	Content  string                    `json:"content"`
	Insights []diagnostic.InsightEntry `json:"insights,omitempty"`
	Source   string                    `json:"source"`
}
