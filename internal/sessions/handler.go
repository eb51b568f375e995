package sessions

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diagnostics-backend/internal/shared/server/respond"
	"diagnostics-backend/internal/shared/telemetry"
)

// Tracker records durable session traces for analytics, alongside the
// ephemeral state this package owns.
type Tracker interface {
	TrackSessionStart(ctx context.Context, sessionID, toolName string) error
	TrackSessionAbandonment(ctx context.Context, sessionID string) error
}

// Handler wires HTTP handlers to the session service.
type Handler struct {
	Svc     *Service
	Tracker Tracker
}

// NewHandler constructs a Handler. Tracker may be nil.
func NewHandler(svc *Service, tracker Tracker) *Handler {
	return &Handler{Svc: svc, Tracker: tracker}
}

// RegisterRoutes attaches session lifecycle routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.start)
	rg.POST("/sessions/:id/abandon", h.abandon)
	rg.POST("/sessions/:id/walkthrough-seen", h.walkthroughSeen)
	rg.POST("/sessions/:id/email-captured", h.emailCaptured)
}

type startRequest struct {
	ToolName string `json:"toolName"`
}

func (h *Handler) start(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
		return
	}
	if strings.TrimSpace(req.ToolName) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "toolName is required", nil)
		return
	}

	c.Set("toolName", req.ToolName)
	state, err := h.Svc.Start(c.Request.Context(), req.ToolName)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start session", nil)
		return
	}
	c.Set("sessionId", state.ID)
	if h.Tracker != nil {
		if err := h.Tracker.TrackSessionStart(c.Request.Context(), state.ID, req.ToolName); err != nil {
			telemetry.Error("session.track_failed", map[string]any{
				"session_id": state.ID,
				"error":      err.Error(),
			})
		}
	}

	respond.JSON(c, http.StatusCreated, gin.H{"sessionId": state.ID})
}

func (h *Handler) abandon(c *gin.Context) {
	id := c.Param("id")
	c.Set("sessionId", id)
	if err := h.Svc.Abandon(c.Request.Context(), id); err != nil && !errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to abandon session", nil)
		return
	}
	if h.Tracker != nil {
		_ = h.Tracker.TrackSessionAbandonment(c.Request.Context(), id)
	}
	respond.OK(c, gin.H{"ok": true})
}

func (h *Handler) walkthroughSeen(c *gin.Context) {
	c.Set("sessionId", c.Param("id"))
	first, err := h.Svc.MarkWalkthroughSeen(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update session", nil)
		return
	}
	respond.OK(c, gin.H{"firstVisit": first})
}

func (h *Handler) emailCaptured(c *gin.Context) {
	c.Set("sessionId", c.Param("id"))
	if err := h.Svc.MarkEmailCaptured(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update session", nil)
		return
	}
	respond.OK(c, gin.H{"ok": true})
}
