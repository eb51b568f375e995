package delivery

import (
	"context"
	"fmt"
	"strings"

	"diagnostics-backend/internal/shared/metrics"
	"diagnostics-backend/internal/shared/telemetry"
)

// Service delivers report emails. Delivery failure is swallowed by
// product decision: the caller always sees success, while the structured
// Result and telemetry keep the failure observable server-side.
type Service struct {
	Sender Sender
}

// NewService constructs a Service. A nil sender simulates delivery.
func NewService(sender Sender) *Service {
	return &Service{Sender: sender}
}

// Deliver renders and sends the report email, never returning an error.
func (s *Service) Deliver(ctx context.Context, req SendRequest, requestID string) Result {
	if s.Sender == nil {
		telemetry.Info("delivery.simulated", map[string]any{
			"request_id": requestID,
			"tool":       req.ToolName,
			"reason":     string(ReasonNoCredentials),
		})
		metrics.IncEmailSimulated()
		return Result{
			Delivered: false,
			Degraded:  true,
			Reason:    ReasonNoCredentials,
			Message:   "Email simulated (no API key configured)",
		}
	}

	mail := Mail{
		To:      req.To,
		ToName:  req.Name,
		Subject: fmt.Sprintf("Your NBLK Business Diagnostic Report - %s", req.ToolName),
		HTML:    renderEmailHTML(req.Name, req.contentText(), req.Score),
	}

	if err := s.Sender.Send(ctx, mail); err != nil {
		reason := ReasonNetworkError
		if strings.Contains(err.Error(), "http status") {
			reason = ReasonProviderError
		}
		telemetry.Error("delivery.failed", map[string]any{
			"request_id": requestID,
			"tool":       req.ToolName,
			"reason":     string(reason),
			"error":      err.Error(),
		})
		metrics.IncEmailFailed()
		return Result{
			Delivered: false,
			Degraded:  true,
			Reason:    reason,
			Message:   fmt.Sprintf("Email delivery attempted: %s", err),
		}
	}

	metrics.IncEmailSent()
	return Result{Delivered: true, Message: "Email sent successfully"}
}
