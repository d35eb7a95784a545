package domain_test

import (
	"testing"
	"time"

	"github.com/RomainBraquet/surfai-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestApplyReplacesBoardsWholesale(t *testing.T) {
	p := domain.DefaultProfile("u1", time.Now())
	p.Equipment.Boards = []domain.Board{{ID: "b0", Name: "old log"}}

	newBoards := []domain.Board{{ID: "b1", Name: "new shortboard"}}
	domain.Apply(&p, domain.ProfileUpdate{
		Equipment: &domain.EquipmentUpdate{Boards: &newBoards},
	})

	require.Len(t, p.Equipment.Boards, 1)
	assert.Equal(t, "b1", p.Equipment.Boards[0].ID)
}

func TestApplyRecursesIntoNestedSections(t *testing.T) {
	p := domain.DefaultProfile("u1", time.Now())

	domain.Apply(&p, domain.ProfileUpdate{
		Preferences: &domain.PreferencesUpdate{
			WaveSize: &domain.WaveSizeRangeUpdate{Min: floatPtr(0.8)},
		},
	})

	// only the touched leaf changes, siblings keep their defaults
	assert.Equal(t, 0.8, p.Preferences.WaveSize.Min)
	assert.Equal(t, 1.0, p.Preferences.WaveSize.Optimal)
	assert.Equal(t, 2.0, p.Preferences.WaveSize.Max)
	assert.Equal(t, 15.0, p.Preferences.WindTolerance.Onshore)
}

func TestApplyNilSectionsLeaveTargetUntouched(t *testing.T) {
	p := domain.DefaultProfile("u1", time.Now())
	p.Personal.Name = "Jean"
	p.Spots.Favorites = []string{"hossegor"}

	domain.Apply(&p, domain.ProfileUpdate{
		SurfLevel: &domain.SurfLevelUpdate{Overall: intPtr(6)},
	})

	assert.Equal(t, "Jean", p.Personal.Name)
	assert.Equal(t, []string{"hossegor"}, p.Spots.Favorites)
	assert.Equal(t, 6, p.SurfLevel.Overall)
}

func TestApplyScalarOverwrites(t *testing.T) {
	p := domain.DefaultProfile("u1", time.Now())

	domain.Apply(&p, domain.ProfileUpdate{
		Personal: &domain.PersonalUpdate{
			Name:  strPtr("Jean"),
			Email: strPtr("jean@example.com"),
		},
		Preferences: &domain.PreferencesUpdate{
			CrowdTolerance: strPtr(domain.CrowdLow),
		},
	})

	assert.Equal(t, "Jean", p.Personal.Name)
	assert.Equal(t, "jean@example.com", p.Personal.Email)
	assert.Equal(t, domain.CrowdLow, p.Preferences.CrowdTolerance)
}

func TestApplySpotListsReplaceNotAppend(t *testing.T) {
	p := domain.DefaultProfile("u1", time.Now())
	p.Spots.History = []string{"lafitenia", "parlementia"}

	newHistory := []string{"mundaka"}
	domain.Apply(&p, domain.ProfileUpdate{
		Spots: &domain.SpotsUpdate{History: &newHistory},
	})

	assert.Equal(t, []string{"mundaka"}, p.Spots.History)
}

func TestNormalizeClampsLevels(t *testing.T) {
	p := domain.DefaultProfile("u1", time.Now())

	domain.Apply(&p, domain.ProfileUpdate{
		SurfLevel: &domain.SurfLevelUpdate{
			Overall:    intPtr(42),
			Experience: &domain.ExperienceUpdate{SessionsCount: intPtr(-3)},
		},
	})
	p.Normalize()

	assert.Equal(t, 10, p.SurfLevel.Overall)
	assert.Equal(t, 0, p.SurfLevel.Experience.SessionsCount)
}

func TestCloneDoesNotShareSlices(t *testing.T) {
	p := domain.DefaultProfile("u1", time.Now())
	p.Equipment.Boards = []domain.Board{{ID: "b0"}}

	clone := p.Clone()
	clone.Equipment.Boards[0].ID = "mutated"

	assert.Equal(t, "b0", p.Equipment.Boards[0].ID)
}
