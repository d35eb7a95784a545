package handler

import (
	"errors"
	"net/http"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/usecase/recommend"
	"github.com/gin-gonic/gin"
)

type RecommendHandler struct {
	recommendUseCase *recommend.RecommendUseCase
}

func NewRecommendHandler(recommendUseCase *recommend.RecommendUseCase) *RecommendHandler {
	return &RecommendHandler{
		recommendUseCase: recommendUseCase,
	}
}

// RecommendRequest carries candidate condition snapshots by spot.
type RecommendRequest struct {
	Candidates []recommend.Candidate `json:"candidates" binding:"required,min=1,dive"`
}

// Recommend handles POST /profiles/me/recommendations
// @Summary Rank candidate spots
// @Description Score candidate conditions against the caller's profile
// @Tags recommendations
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Candidate spot conditions"
// @Success 200 {object} recommend.RecommendationSet
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/me/recommendations [post]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindError(err)})
		return
	}

	set, err := h.recommendUseCase.Recommend(c.Request.Context(), userID, req.Candidates)
	if err != nil {
		if errors.Is(err, domain.ErrScoringInput) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to build recommendations"})
		return
	}

	c.JSON(http.StatusOK, set)
}
