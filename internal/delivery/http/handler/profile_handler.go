package handler

import (
	"net/http"
	"strconv"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/usecase/profile"
	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUseCase *profile.ProfileUseCase
}

func NewProfileHandler(profileUseCase *profile.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

// CreateProfile handles POST /profiles
// @Summary Create profile
// @Description Create a complete profile from partial user data
// @Tags profile
// @Accept json
// @Produce json
// @Param request body domain.ProfileUpdate true "Partial profile data"
// @Success 201 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindError(err)})
		return
	}

	created, err := h.profileUseCase.CreateProfile(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create profile"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetMyProfile handles GET /profiles/me
// @Summary Get my profile
// @Description Get the caller's profile; a missing profile is synthesized
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/me [get]
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	result, err := h.profileUseCase.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateMyProfile handles PUT /profiles/me
// @Summary Update my profile
// @Description Deep-merge a partial update into the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body domain.ProfileUpdate true "Partial profile update"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/me [put]
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req domain.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindError(err)})
		return
	}

	updated, err := h.profileUseCase.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// AddSession handles POST /profiles/me/sessions
// @Summary Record a surf session
// @Description Store a session and advance the profile's experience counters
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body profile.AddSessionRequest true "Session data"
// @Success 201 {object} gin.H
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/me/sessions [post]
func (h *ProfileHandler) AddSession(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req profile.AddSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindError(err)})
		return
	}

	session, updated, err := h.profileUseCase.AddSession(c.Request.Context(), userID, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record session"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session": session,
		"profile": updated,
	})
}

// ListSessions handles GET /profiles/me/sessions
// @Summary List surf sessions
// @Description Session history, newest first
// @Tags sessions
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} domain.Session
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /profiles/me/sessions [get]
func (h *ProfileHandler) ListSessions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	sessions, err := h.profileUseCase.ListSessions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list sessions"})
		return
	}
	if sessions == nil {
		sessions = []*domain.Session{}
	}

	c.JSON(http.StatusOK, sessions)
}
