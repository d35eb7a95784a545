package recommend

import (
	"fmt"
	"math"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
)

// Suitability scoring: ordered multiplicative factors over a base of 5.0,
// rounded to one decimal once at the end. The order matters because the
// rounding happens only once, so it is part of the contract.
const (
	baseScore       = 5.0
	outOfRangeWave  = 0.3
	windFactorFloor = 0.2
)

// crowdTable maps (crowd tolerance, observed crowd) to a factor. Unknown
// combinations are neutral.
var crowdTable = map[string]map[string]float64{
	domain.CrowdLow: {
		domain.CrowdLow:    1.0,
		domain.CrowdMedium: 0.7,
		domain.CrowdHigh:   0.4,
	},
	domain.CrowdMedium: {
		domain.CrowdLow:    1.0,
		domain.CrowdMedium: 0.9,
		domain.CrowdHigh:   0.7,
	},
	domain.CrowdHigh: {
		domain.CrowdLow:    1.0,
		domain.CrowdMedium: 1.0,
		domain.CrowdHigh:   0.9,
	},
}

// Score computes the suitability of a condition snapshot for a profile,
// in roughly [0, 5]. It rejects unusable preference data instead of
// producing NaN.
func Score(profile *domain.Profile, conditions domain.Conditions) (float64, error) {
	prefs := profile.Preferences
	if err := validateInput(prefs, conditions); err != nil {
		return 0, err
	}

	score := baseScore

	// 1. Wave fit: hard penalty outside the preferred range, otherwise
	// linear falloff from the optimal size across the range width.
	ws := prefs.WaveSize
	if conditions.WaveHeight < ws.Min || conditions.WaveHeight > ws.Max {
		score *= outOfRangeWave
	} else if rng := ws.Max - ws.Min; rng > 0 {
		waveFactor := 1 - math.Abs(conditions.WaveHeight-ws.Optimal)/rng
		score *= 0.5 + 0.5*waveFactor
	}
	// zero-width range: wave factor stays neutral rather than dividing by zero

	// 2. Wind: zero tolerance behaves as very low tolerance.
	windFactor := windFactorFloor
	if prefs.WindTolerance.Onshore > 0 {
		windFactor = math.Max(windFactorFloor, 1-conditions.WindSpeed/prefs.WindTolerance.Onshore)
	}
	score *= windFactor

	// 3. Level and experience.
	levelFactor := math.Min(1, float64(profile.SurfLevel.Overall)/10)
	experienceFactor := math.Min(1, float64(profile.SurfLevel.Experience.SessionsCount)/100)
	score *= 0.6 + 0.2*levelFactor + 0.2*experienceFactor

	// 4. Crowd, only when the snapshot reports one.
	if conditions.Crowd != "" {
		score *= crowdFactor(prefs.CrowdTolerance, conditions.Crowd)
	}

	return math.Round(score*10) / 10, nil
}

func crowdFactor(tolerance, crowd string) float64 {
	if row, ok := crowdTable[tolerance]; ok {
		if factor, ok := row[crowd]; ok {
			return factor
		}
	}
	return 1.0
}

func validateInput(prefs domain.Preferences, conditions domain.Conditions) error {
	for name, v := range map[string]float64{
		"preferences.wave_size.min":          prefs.WaveSize.Min,
		"preferences.wave_size.optimal":      prefs.WaveSize.Optimal,
		"preferences.wave_size.max":          prefs.WaveSize.Max,
		"preferences.wind_tolerance.onshore": prefs.WindTolerance.Onshore,
		"conditions.wave_height":             conditions.WaveHeight,
		"conditions.wind_speed":              conditions.WindSpeed,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not a number", domain.ErrScoringInput, name)
		}
	}
	if prefs.WaveSize.Max < prefs.WaveSize.Min {
		return fmt.Errorf("%w: wave size range is inverted", domain.ErrScoringInput)
	}
	return nil
}
