package profile

import (
	"context"
	"time"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
	log         zerolog.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	sessionRepo repository.SessionRepository,
	log zerolog.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		log:         log,
	}
}

// AddSessionRequest records one completed surf outing.
type AddSessionRequest struct {
	Date       *time.Time        `json:"date"`
	Spot       string            `json:"spot" binding:"required"`
	BoardID    string            `json:"board_id"`
	Conditions domain.Conditions `json:"conditions"`
	Duration   float64           `json:"duration_hours" binding:"omitempty,min=0"`
	Ratings    domain.Ratings    `json:"ratings"`
}

// CreateProfile builds a complete profile from partial user data.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, userData domain.ProfileUpdate) (*domain.Profile, error) {
	return uc.profileRepo.Create(ctx, userData)
}

// GetProfile never returns not-found; the repository self-heals.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.profileRepo.Read(ctx, userID)
}

// UpdateProfile merge-updates the profile and returns the full result.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.Profile, error) {
	return uc.profileRepo.Update(ctx, userID, update)
}

// AddSession stores the session (best effort) and advances the profile's
// experience counters: sessionsCount, lastSession, spot history and the
// monthly progress counters.
func (uc *ProfileUseCase) AddSession(ctx context.Context, userID string, req *AddSessionRequest) (*domain.Session, *domain.Profile, error) {
	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	session := &domain.Session{
		ID:         uuid.NewString(),
		UserID:     userID,
		Date:       date,
		Spot:       req.Spot,
		BoardID:    req.BoardID,
		Conditions: req.Conditions,
		Duration:   req.Duration,
		Ratings:    req.Ratings,
	}
	session.Ratings.Normalize()

	// Session history is a collaborator concern; losing one row must not
	// block the profile progression update.
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.log.Warn().Err(err).Str("user_id", userID).Msg("failed to store session record")
	}

	current, err := uc.profileRepo.Read(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	sessionsCount := current.SurfLevel.Experience.SessionsCount + 1
	sessionsThisMonth := current.Goals.ProgressTracking.SessionsThisMonth + 1
	hoursThisMonth := current.Goals.ProgressTracking.HoursThisMonth + req.Duration
	history := append(append([]string(nil), current.Spots.History...), req.Spot)

	updated, err := uc.profileRepo.Update(ctx, userID, domain.ProfileUpdate{
		SurfLevel: &domain.SurfLevelUpdate{
			Experience: &domain.ExperienceUpdate{
				SessionsCount: &sessionsCount,
				LastSession:   &date,
			},
		},
		Spots: &domain.SpotsUpdate{History: &history},
		Goals: &domain.GoalsUpdate{
			ProgressTracking: &domain.ProgressTrackingUpdate{
				SessionsThisMonth: &sessionsThisMonth,
				HoursThisMonth:    &hoursThisMonth,
			},
		},
	})
	if err != nil {
		return nil, nil, err
	}

	return session, updated, nil
}

// ListSessions returns session history, newest first.
func (uc *ProfileUseCase) ListSessions(ctx context.Context, userID string, limit, offset int) ([]*domain.Session, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.sessionRepo.ListByUser(ctx, userID, limit, offset)
}
