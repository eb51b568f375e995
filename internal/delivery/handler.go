package delivery

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diagnostics-backend/internal/shared/server/middleware"
	"diagnostics-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the delivery service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches delivery routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reports/send", h.send)
}

func (h *Handler) send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "request body must be valid JSON", nil)
		return
	}
	if strings.TrimSpace(req.To) == "" || !strings.Contains(req.To, "@") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "a valid recipient email is required", nil)
		return
	}

	c.Set("toolName", req.ToolName)
	result := h.Svc.Deliver(c.Request.Context(), req, middleware.RequestIDFromContext(c))

	// Always success=true toward the user; the Result carries the truth.
	respond.OK(c, gin.H{
		"success": true,
		"message": result.Message,
	})
}
