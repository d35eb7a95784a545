package handler

import (
	"net/http"

	"github.com/RomainBraquet/surfai-backend/internal/usecase/stats"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsUseCase *stats.StatsUseCase
}

func NewStatsHandler(statsUseCase *stats.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		statsUseCase: statsUseCase,
	}
}

// GetStats handles GET /profiles/me/stats
// @Summary Progress statistics
// @Description Streak, average rating, next-level requirements, completeness
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Summary
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/me/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	summary, err := h.statsUseCase.Summary(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
