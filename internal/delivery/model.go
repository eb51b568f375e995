package delivery

import "encoding/json"

// SendRequest is the report-delivery request body. ReportContent accepts
// either a plain string or the generate endpoint's result object.
type SendRequest struct {
	To            string          `json:"to"`
	Name          string          `json:"name"`
	ToolName      string          `json:"toolName"`
	ReportContent json.RawMessage `json:"reportContent"`
	Score         int             `json:"score"`
}

// Reason classifies why a delivery degraded.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNoCredentials Reason = "no_credentials"
	ReasonProviderError Reason = "provider_error"
	ReasonNetworkError  Reason = "network_error"
)

// Result is the structured delivery outcome. The HTTP surface stays
// optimistic; this type is where failures remain observable.
type Result struct {
	Delivered bool   `json:"delivered"`
	Degraded  bool   `json:"degraded"`
	Reason    Reason `json:"reason,omitempty"`
	Message   string `json:"message"`
}

// contentText extracts the report text whether the caller sent a string
// or the structured generation result.
func (r SendRequest) contentText() string {
	if len(r.ReportContent) == 0 {
		return ""
	}
	var asString string
	if err := json.Unmarshal(r.ReportContent, &asString); err == nil {
		return asString
	}
	var asObject struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal(r.ReportContent, &asObject); err == nil {
		return asObject.Content
	}
	return ""
}
