package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
)

// streakGap is the maximum spacing between adjacent sessions that still
// counts as a continuous streak.
const streakGap = 7 * 24 * time.Hour

// sessionPageSize bounds each history fetch; Summary pages until the
// repository runs dry so long histories are never truncated.
const sessionPageSize = 500

type StatsUseCase struct {
	profileRepo repository.ProfileRepository
	sessionRepo repository.SessionRepository
}

func NewStatsUseCase(profileRepo repository.ProfileRepository, sessionRepo repository.SessionRepository) *StatsUseCase {
	return &StatsUseCase{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
	}
}

type Summary struct {
	SessionsCount         int      `json:"sessions_count"`
	AverageRating         float64  `json:"average_rating"`
	Streak                int      `json:"streak"`
	CurrentLevel          int      `json:"current_level"`
	NextLevelRequirements []string `json:"next_level_requirements"`
	DataCompleteness      float64  `json:"data_completeness"`
}

var levelRequirements = map[int][]string{
	2:  {"Catch unbroken waves consistently", "Log 10 sessions"},
	3:  {"Trim along the open face", "Read basic surf forecasts"},
	4:  {"Link top and bottom turns", "Surf waist-to-shoulder high waves"},
	5:  {"Generate speed down the line", "Pick the right board for the day"},
	6:  {"Carve on the open face", "Handle head-high waves comfortably"},
	7:  {"Surf hollow sections", "Perform cutbacks with power"},
	8:  {"Ride barrels on good days", "Surf overhead waves in control"},
	9:  {"Land aerial maneuvers", "Charge serious waves of consequence"},
	10: {"Compete at an advanced level", "Master a wide range of conditions"},
}

// Summary derives progress statistics from the profile and its session
// history. Pure derivation; nothing is written back.
func (uc *StatsUseCase) Summary(ctx context.Context, userID string) (*Summary, error) {
	profile, err := uc.profileRepo.Read(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	sessions, err := uc.loadAllSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load sessions: %w", err)
	}

	return &Summary{
		SessionsCount:         profile.SurfLevel.Experience.SessionsCount,
		AverageRating:         averageRating(sessions),
		Streak:                Streak(sessions),
		CurrentLevel:          profile.SurfLevel.Overall,
		NextLevelRequirements: NextLevelRequirements(profile.SurfLevel.Overall),
		DataCompleteness:      DataCompleteness(profile),
	}, nil
}

func (uc *StatsUseCase) loadAllSessions(ctx context.Context, userID string) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for offset := 0; ; offset += sessionPageSize {
		page, err := uc.sessionRepo.ListByUser(ctx, userID, sessionPageSize, offset)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, page...)
		if len(page) < sessionPageSize {
			return sessions, nil
		}
	}
}

func averageRating(sessions []*domain.Session) float64 {
	if len(sessions) == 0 {
		return 0
	}
	sum := 0
	for _, s := range sessions {
		sum += s.Ratings.Overall
	}
	return math.Round(float64(sum)/float64(len(sessions))*10) / 10
}

// Streak counts consecutive most-recent sessions no more than seven days
// apart, walking the date-descending history until the first gap.
func Streak(sessions []*domain.Session) int {
	if len(sessions) == 0 {
		return 0
	}
	streak := 1
	for i := 1; i < len(sessions); i++ {
		if sessions[i-1].Date.Sub(sessions[i].Date) > streakGap {
			break
		}
		streak++
	}
	return streak
}

// NextLevelRequirements returns the requirement list for the level above
// the current one, or the max-level sentinel past the table's bound.
func NextLevelRequirements(currentLevel int) []string {
	if reqs, ok := levelRequirements[currentLevel+1]; ok {
		return reqs
	}
	return []string{"Max level reached"}
}

// DataCompleteness is the populated fraction of the expected profile
// fields, rounded to two decimals.
func DataCompleteness(p *domain.Profile) float64 {
	checks := []bool{
		p.Personal.Name != "",
		p.Personal.Email != "",
		p.Personal.Location != "",
		p.Personal.Timezone != "",
		p.SurfLevel.Experience.SessionsCount > 0,
		p.SurfLevel.Experience.YearsActive > 0,
		len(p.Equipment.Boards) > 0,
		len(p.Spots.Favorites) > 0,
		len(p.Goals.Targets) > 0,
		len(p.Preferences.Availability.Days) > 0,
	}
	populated := 0
	for _, ok := range checks {
		if ok {
			populated++
		}
	}
	return math.Round(float64(populated)/float64(len(checks))*100) / 100
}
