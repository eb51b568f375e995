package gamification

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diagnostics-backend/internal/diagnostic"
	"diagnostics-backend/internal/sessions"
	"diagnostics-backend/internal/shared/server/respond"
)

// Handler serves the gamified partial report: score, level, leaderboard,
// and milestone state for a session, computed synchronously from the
// answer set.
type Handler struct {
	Library    *diagnostic.Library
	Calculator *Calculator
	Sessions   sessions.Store
}

// NewHandler constructs a Handler.
func NewHandler(library *diagnostic.Library, calculator *Calculator, store sessions.Store) *Handler {
	return &Handler{Library: library, Calculator: calculator, Sessions: store}
}

// RegisterRoutes attaches the preview route.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions/:id/preview", h.preview)
}

type previewRequest struct {
	ToolName     string              `json:"toolName"`
	BusinessName string              `json:"businessName"`
	Answers      []diagnostic.Answer `json:"answers"`
}

func (h *Handler) preview(c *gin.Context) {
	sessionID := c.Param("id")
	c.Set("sessionId", sessionID)

	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
		return
	}
	if strings.TrimSpace(req.ToolName) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "toolName is required", nil)
		return
	}
	c.Set("toolName", req.ToolName)

	classification, err := diagnostic.Classify(req.Answers)
	if err != nil {
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

	businessName := req.BusinessName
	if businessName == "" {
		businessName = "Your Business"
	}

	board, err := h.Calculator.Leaderboard(c.Request.Context(), sessionID, businessName, classification.Score)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to build leaderboard", nil)
		return
	}

	state, err := h.Sessions.Get(c.Request.Context(), sessionID)
	if err != nil && !errors.Is(err, sessions.ErrNotFound) {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load session", nil)
		return
	}

	respond.OK(c, gin.H{
		"score":        classification.Score,
		"bucket":       classification.Bucket,
		"scoreMessage": scoreMessage(classification.Score),
		"insights":     h.Library.Synthesize(req.Answers, req.ToolName, classification.Bucket),
		"cards":        h.Library.PreviewCards(req.Answers, req.ToolName),
		"level":        LevelOf(classification.Score),
		"levelGuide":   LevelGuide(),
		"leaderboard":  board,
		"milestones":   MilestonesFor(h.Library, req.ToolName, classification.Score, state),
	})
}

func scoreMessage(score int) string {
	switch {
	case score == 100:
		return "Excellent! Your business is performing well, but we can help you go even further"
	case score == 0:
		return "No worries: this is the first step to getting clear. Let's fix this together"
	case score >= 80:
		return "Your business shows strong performance with room for strategic improvements"
	case score >= 60:
		return "Your business shows good performance with several areas for improvement"
	default:
		return "Your business has significant opportunities for improvement and growth"
	}
}
