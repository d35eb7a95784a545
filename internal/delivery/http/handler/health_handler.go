package handler

import (
	"net/http"

	"github.com/RomainBraquet/surfai-backend/internal/repository"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	store repository.ProfileStore // nil when running fallback-only
}

func NewHealthHandler(store repository.ProfileStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Health handles GET /health. The profile count is best effort: a store
// outage degrades the payload, never the endpoint.
func (h *HealthHandler) Health(c *gin.Context) {
	payload := gin.H{"status": "ok"}

	if h.store == nil {
		payload["storage"] = "degraded"
	} else if count, err := h.store.CountWhere(c.Request.Context(), "profiles", nil); err != nil {
		payload["storage"] = "unreachable"
	} else {
		payload["storage"] = "ok"
		payload["profiles"] = count
	}

	c.JSON(http.StatusOK, payload)
}
