package reports

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diagnostics-backend/internal/diagnostic"
	"diagnostics-backend/internal/shared/server/middleware"
	"diagnostics-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the reports service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
		return
	}
	if strings.TrimSpace(req.ToolName) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "toolName is required", nil)
		return
	}
	if req.Score < 0 || req.Score > 100 {
		respond.Error(c, http.StatusBadRequest, "validation_error", "score must be between 0 and 100", nil)
		return
	}
	if _, err := diagnostic.Classify(req.Answers); err != nil {
		var invalid *diagnostic.InvalidAnswerError
		if errors.As(err, &invalid) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), []map[string]any{
				{"field": "answers", "index": invalid.Index},
			})
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "answers are malformed", nil)
		return
	}

	c.Set("toolName", req.ToolName)
	result := h.Svc.Generate(c.Request.Context(), req, middleware.RequestIDFromContext(c))
	c.Set("reportSource", result.Source)

	resp := gin.H{
		"success": true,
		"content": result.Content,
		"source":  result.Source,
	}
	if len(result.Insights) > 0 {
		resp["insights"] = result.Insights
	}
	respond.OK(c, resp)
}
