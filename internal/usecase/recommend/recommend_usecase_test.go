package recommend

import (
	"context"
	"testing"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedProfileRepo struct {
	profile domain.Profile
}

func (r *fixedProfileRepo) Create(_ context.Context, _ domain.ProfileUpdate) (*domain.Profile, error) {
	out := r.profile.Clone()
	return &out, nil
}

func (r *fixedProfileRepo) Read(_ context.Context, _ string) (*domain.Profile, error) {
	out := r.profile.Clone()
	return &out, nil
}

func (r *fixedProfileRepo) Update(_ context.Context, _ string, _ domain.ProfileUpdate) (*domain.Profile, error) {
	out := r.profile.Clone()
	return &out, nil
}

func floatp(f float64) *float64 { return &f }

func TestRecommendSortsByScoreThenDistance(t *testing.T) {
	p := scoringProfile()
	uc := NewRecommendUseCase(&fixedProfileRepo{profile: *p})

	candidates := []Candidate{
		{Spot: "mushy-inside", Conditions: domain.Conditions{WaveHeight: 0.6}, DistanceKm: floatp(5)},
		{Spot: "far-peak", Conditions: domain.Conditions{WaveHeight: 1.5}, DistanceKm: floatp(40)},
		{Spot: "near-peak", Conditions: domain.Conditions{WaveHeight: 1.5}, DistanceKm: floatp(10)},
	}

	set, err := uc.Recommend(context.Background(), "u1", candidates)
	require.NoError(t, err)
	require.Len(t, set.Recommendations, 3)

	// identical scores fall back to ascending distance
	assert.Equal(t, "near-peak", set.Recommendations[0].Spot)
	assert.Equal(t, "far-peak", set.Recommendations[1].Spot)
	assert.Equal(t, "mushy-inside", set.Recommendations[2].Spot)
}

func TestRecommendSplitsTopResultsFromAlternatives(t *testing.T) {
	p := scoringProfile()
	uc := NewRecommendUseCase(&fixedProfileRepo{profile: *p})

	candidates := []Candidate{
		{Spot: "a", Conditions: domain.Conditions{WaveHeight: 1.5}},
		{Spot: "b", Conditions: domain.Conditions{WaveHeight: 1.3}},
		{Spot: "c", Conditions: domain.Conditions{WaveHeight: 1.1}},
		{Spot: "d", Conditions: domain.Conditions{WaveHeight: 0.9}},
		{Spot: "e", Conditions: domain.Conditions{WaveHeight: 0.7}},
	}

	set, err := uc.Recommend(context.Background(), "u1", candidates)
	require.NoError(t, err)
	assert.Len(t, set.Recommendations, 3)
	assert.Len(t, set.Alternatives, 2)
	assert.Equal(t, "a", set.Recommendations[0].Spot)
	assert.Equal(t, "e", set.Alternatives[1].Spot)
}

func TestRecommendAttachesSuitabilityAndBoard(t *testing.T) {
	p := scoringProfile()
	p.Equipment.Boards = []domain.Board{
		{ID: "log", MinWaveSize: 0.3, OptimalWaveSize: 0.8, MaxWaveSize: 1.2},
		{ID: "shortboard", MinWaveSize: 0.8, OptimalWaveSize: 1.5, MaxWaveSize: 2.5},
	}
	uc := NewRecommendUseCase(&fixedProfileRepo{profile: *p})

	set, err := uc.Recommend(context.Background(), "u1", []Candidate{
		{Spot: "peak", Conditions: domain.Conditions{WaveHeight: 1.5}},
	})
	require.NoError(t, err)
	require.Len(t, set.Recommendations, 1)

	top := set.Recommendations[0]
	assert.Equal(t, 5.0, top.Score)
	assert.Contains(t, top.Suitability, "excellent")
	require.NotNil(t, top.Board)
	assert.Equal(t, "shortboard", top.Board.ID)
	assert.NotEmpty(t, top.OptimalTime)
}

func TestPickBoardClosestOptimalWins(t *testing.T) {
	boards := []domain.Board{
		{ID: "a", MinWaveSize: 0.5, OptimalWaveSize: 1.0, MaxWaveSize: 2.0},
		{ID: "b", MinWaveSize: 0.5, OptimalWaveSize: 1.4, MaxWaveSize: 2.0},
	}

	picked := pickBoard(boards, 1.5)
	require.NotNil(t, picked)
	assert.Equal(t, "b", picked.ID)
}

func TestPickBoardTieGoesToFirstAdded(t *testing.T) {
	boards := []domain.Board{
		{ID: "first", MinWaveSize: 0.5, OptimalWaveSize: 1.0, MaxWaveSize: 2.0},
		{ID: "second", MinWaveSize: 0.5, OptimalWaveSize: 2.0, MaxWaveSize: 2.5},
	}

	// 1.5 is equidistant from both optimals
	picked := pickBoard(boards, 1.5)
	require.NotNil(t, picked)
	assert.Equal(t, "first", picked.ID)
}

func TestPickBoardNilWhenNothingFits(t *testing.T) {
	boards := []domain.Board{
		{ID: "groveler", MinWaveSize: 0.3, OptimalWaveSize: 0.8, MaxWaveSize: 1.2},
	}

	assert.Nil(t, pickBoard(boards, 3.0))
	assert.Nil(t, pickBoard(nil, 1.0))
}
