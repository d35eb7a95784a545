package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/RomainBraquet/surfai-backend/internal/repository"
)

// topResults is how many ranked candidates are returned as primary
// recommendations; the rest become alternatives.
const topResults = 3

type RecommendUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewRecommendUseCase(profileRepo repository.ProfileRepository) *RecommendUseCase {
	return &RecommendUseCase{profileRepo: profileRepo}
}

// Candidate is one spot with a raw condition snapshot, handed in by the
// forecast collaborator.
type Candidate struct {
	Spot       string            `json:"spot" binding:"required"`
	Conditions domain.Conditions `json:"conditions"`
	DistanceKm *float64          `json:"distance_km" binding:"omitempty,min=0"`
}

// Recommendation is a scored candidate with human-readable metadata.
type Recommendation struct {
	Spot        string            `json:"spot"`
	Score       float64           `json:"score"`
	Suitability string            `json:"suitability"`
	Board       *domain.Board     `json:"board,omitempty"`
	OptimalTime string            `json:"optimal_time"`
	Conditions  domain.Conditions `json:"conditions"`
	DistanceKm  *float64          `json:"distance_km,omitempty"`
}

type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
	Alternatives    []Recommendation `json:"alternatives"`
}

// Recommend scores every candidate against the user's profile and ranks
// them: score descending, ties broken by ascending distance.
func (uc *RecommendUseCase) Recommend(ctx context.Context, userID string, candidates []Candidate) (*RecommendationSet, error) {
	profile, err := uc.profileRepo.Read(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	scored := make([]Recommendation, 0, len(candidates))
	for _, candidate := range candidates {
		score, err := Score(profile, candidate.Conditions)
		if err != nil {
			return nil, err
		}
		scored = append(scored, Recommendation{
			Spot:        candidate.Spot,
			Score:       score,
			Suitability: suitabilityText(score),
			Board:       pickBoard(profile.Equipment.Boards, candidate.Conditions.WaveHeight),
			OptimalTime: optimalTimeHint(profile.Preferences.Availability),
			Conditions:  candidate.Conditions,
			DistanceKm:  candidate.DistanceKm,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return distanceOf(scored[i]) < distanceOf(scored[j])
	})

	set := &RecommendationSet{Recommendations: scored}
	if len(scored) > topResults {
		set.Recommendations = scored[:topResults]
		set.Alternatives = scored[topResults:]
	}
	return set, nil
}

// pickBoard returns the board whose usable range contains the wave height
// and whose optimal size is closest to it. Ties go to the first-added
// board; nil when no board fits.
func pickBoard(boards []domain.Board, waveHeight float64) *domain.Board {
	var best *domain.Board
	bestDist := math.Inf(1)
	for i := range boards {
		b := boards[i]
		if waveHeight < b.MinWaveSize || waveHeight > b.MaxWaveSize {
			continue
		}
		if dist := math.Abs(b.OptimalWaveSize - waveHeight); dist < bestDist {
			bestDist = dist
			best = &boards[i]
		}
	}
	if best == nil {
		return nil
	}
	copied := *best
	return &copied
}

func suitabilityText(score float64) string {
	switch {
	case score >= 4:
		return "excellent conditions for your level"
	case score >= 3:
		return "good session potential"
	case score >= 2:
		return "fair, worth a look"
	case score >= 1:
		return "challenging for your preferences"
	default:
		return "poor match, consider another spot"
	}
}

func optimalTimeHint(availability domain.Availability) string {
	switch availability.PreferredWindow {
	case "dawn":
		return "first light, before the wind picks up"
	case "morning":
		return "early morning, typically cleanest"
	case "midday":
		return "late morning to noon"
	case "afternoon":
		return "mid-afternoon on the incoming tide"
	case "evening":
		return "last two hours before sunset"
	default:
		return "early morning, typically cleanest"
	}
}

func distanceOf(r Recommendation) float64 {
	if r.DistanceKm == nil {
		return math.Inf(1)
	}
	return *r.DistanceKm
}
