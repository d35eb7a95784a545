package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scoringProfile is tuned so wave fit is the only variable factor: no
// wind, max level and experience, no crowd.
func scoringProfile() *domain.Profile {
	p := domain.DefaultProfile("u1", time.Now())
	p.SurfLevel.Overall = 10
	p.SurfLevel.Experience.SessionsCount = 100
	p.Preferences.WaveSize = domain.WaveSizeRange{Min: 0.5, Optimal: 1.5, Max: 2.5}
	return &p
}

func mustScore(t *testing.T, p *domain.Profile, c domain.Conditions) float64 {
	t.Helper()
	score, err := Score(p, c)
	require.NoError(t, err)
	return score
}

func TestScoreMaximizedAtOptimalWaveHeight(t *testing.T) {
	p := scoringProfile()

	atOptimal := mustScore(t, p, domain.Conditions{WaveHeight: 1.5})
	assert.Equal(t, 5.0, atOptimal)

	// strictly decreasing moving away from optimal inside the range
	heights := []float64{1.5, 1.25, 1.0, 0.75, 0.5}
	prev := math.Inf(1)
	for _, h := range heights {
		score := mustScore(t, p, domain.Conditions{WaveHeight: h})
		assert.Lessf(t, score, prev, "score at %.2fm should drop below the previous step", h)
		prev = score
	}
}

func TestScoreOutsideRangeGetsHardPenalty(t *testing.T) {
	p := scoringProfile()

	tooBig := mustScore(t, p, domain.Conditions{WaveHeight: 4.0})
	tooSmall := mustScore(t, p, domain.Conditions{WaveHeight: 0.1})

	assert.LessOrEqual(t, tooBig, 5.0*0.3)
	assert.LessOrEqual(t, tooSmall, 5.0*0.3)
}

func TestScoreZeroWidthRangeIsNeutral(t *testing.T) {
	p := scoringProfile()
	p.Preferences.WaveSize = domain.WaveSizeRange{Min: 1.0, Optimal: 1.0, Max: 1.0}

	// wave height sits exactly on the degenerate range; no division by
	// zero, wave factor neutral
	score := mustScore(t, p, domain.Conditions{WaveHeight: 1.0})
	assert.Equal(t, 5.0, score)
}

func TestScoreWindFactorFloorsAtZeroTolerance(t *testing.T) {
	p := scoringProfile()
	p.Preferences.WindTolerance.Onshore = 0

	score := mustScore(t, p, domain.Conditions{WaveHeight: 1.5, WindSpeed: 3})
	assert.Equal(t, 1.0, score) // 5.0 * 0.2
}

func TestScoreWindFactorNeverBelowFloor(t *testing.T) {
	p := scoringProfile()
	p.Preferences.WindTolerance.Onshore = 10

	score := mustScore(t, p, domain.Conditions{WaveHeight: 1.5, WindSpeed: 80})
	assert.Equal(t, 1.0, score)
}

func TestScoreCrowdTable(t *testing.T) {
	p := scoringProfile()
	p.Preferences.CrowdTolerance = domain.CrowdLow

	quiet := mustScore(t, p, domain.Conditions{WaveHeight: 1.5, Crowd: domain.CrowdLow})
	packed := mustScore(t, p, domain.Conditions{WaveHeight: 1.5, Crowd: domain.CrowdHigh})

	assert.Equal(t, 5.0, quiet)
	assert.Equal(t, 2.0, packed) // 5.0 * 0.4
}

func TestScoreUnknownCrowdCombinationIsNeutral(t *testing.T) {
	p := scoringProfile()
	p.Preferences.CrowdTolerance = "packed" // not a table key

	score := mustScore(t, p, domain.Conditions{WaveHeight: 1.5, Crowd: domain.CrowdHigh})
	assert.Equal(t, 5.0, score)
}

func TestScoreRejectsNaNInput(t *testing.T) {
	p := scoringProfile()
	p.Preferences.WaveSize.Optimal = math.NaN()

	_, err := Score(p, domain.Conditions{WaveHeight: 1.5})
	require.ErrorIs(t, err, domain.ErrScoringInput)
}

func TestScoreRejectsInvertedRange(t *testing.T) {
	p := scoringProfile()
	p.Preferences.WaveSize = domain.WaveSizeRange{Min: 2.5, Optimal: 1.5, Max: 0.5}

	_, err := Score(p, domain.Conditions{WaveHeight: 1.5})
	require.ErrorIs(t, err, domain.ErrScoringInput)
}

func TestScoreLevelAndExperienceFactor(t *testing.T) {
	p := scoringProfile()
	p.SurfLevel.Overall = 5
	p.SurfLevel.Experience.SessionsCount = 50

	// 5.0 * (0.6 + 0.2*0.5 + 0.2*0.5) = 4.0
	score := mustScore(t, p, domain.Conditions{WaveHeight: 1.5})
	assert.Equal(t, 4.0, score)
}
