package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/insurance-backend/internal/http/response"
	"github.com/yungbote/insurance-backend/internal/platform/apierr"
)

// HealthHandler serves liveness and readiness. ready may be nil, meaning always ready.
type HealthHandler struct {
	service string
	ready   func() error
}

func NewHealthHandler(service string, ready func() error) *HealthHandler {
	return &HealthHandler{service: service, ready: ready}
}

// GET /healthz
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /readyz
func (h *HealthHandler) ReadyCheck(c *gin.Context) {
	if h.ready != nil {
		if err := h.ready(); err != nil {
			response.RespondError(c, apierr.New(http.StatusServiceUnavailable, "", err))
			return
		}
	}
	response.RespondOK(c, gin.H{"service": h.service, "status": "ready"})
}
