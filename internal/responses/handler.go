package responses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diagnostics-backend/internal/diagnostic"
	"diagnostics-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the responses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches response-logging and analytics routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/responses", h.record)
	rg.GET("/analytics", h.analytics)
}

type recordRequest struct {
	SessionID string              `json:"sessionId"`
	ToolName  string              `json:"toolName"`
	UserName  string              `json:"userName"`
	UserEmail string              `json:"userEmail"`
	Answers   []diagnostic.Answer `json:"responses"`
	Score     int                 `json:"score"`
}

func (h *Handler) record(c *gin.Context) {
	var req recordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
		return
	}
	if strings.TrimSpace(req.ToolName) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "toolName is required", nil)
		return
	}
	if _, err := diagnostic.Classify(req.Answers); err != nil {
		var invalid *diagnostic.InvalidAnswerError
		if errors.As(err, &invalid) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), []map[string]any{
				{"field": "responses", "index": invalid.Index},
			})
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "responses are malformed", nil)
		return
	}

	c.Set("sessionId", req.SessionID)
	c.Set("toolName", req.ToolName)
	response, err := h.Svc.Record(c.Request.Context(), Response{
		SessionID: req.SessionID,
		ToolName:  req.ToolName,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		Answers:   req.Answers,
		Score:     req.Score,
	})
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to record response", nil)
		return
	}

	respond.JSON(c, http.StatusCreated, gin.H{"id": response.ID})
}

func (h *Handler) analytics(c *gin.Context) {
	analytics, err := h.Svc.Analytics(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute analytics", nil)
		return
	}
	respond.OK(c, analytics)
}
