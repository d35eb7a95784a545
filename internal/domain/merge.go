package domain

import "time"

// ProfileUpdate mirrors Profile with every field optional. The merge rule
// is structural: a nil section leaves the target untouched, a non-nil
// section recurses, and leaf scalars or slices overwrite the target value
// outright. In particular a slice in the update replaces the whole target
// slice; prior elements are discarded, never concatenated.
type ProfileUpdate struct {
	ID          *string            `json:"id"`
	Personal    *PersonalUpdate    `json:"personal"`
	SurfLevel   *SurfLevelUpdate   `json:"surf_level"`
	Preferences *PreferencesUpdate `json:"preferences"`
	Equipment   *EquipmentUpdate   `json:"equipment"`
	Spots       *SpotsUpdate       `json:"spots"`
	Goals       *GoalsUpdate       `json:"goals"`
}

type PersonalUpdate struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Location *string `json:"location"`
	Timezone *string `json:"timezone"`
}

type SurfLevelUpdate struct {
	Overall     *int               `json:"overall" binding:"omitempty,min=1,max=10"`
	Progression *ProgressionUpdate `json:"progression"`
	Experience  *ExperienceUpdate  `json:"experience"`
}

type ProgressionUpdate struct {
	Paddling   *int `json:"paddling" binding:"omitempty,min=1,max=10"`
	PopUp      *int `json:"pop_up" binding:"omitempty,min=1,max=10"`
	Turning    *int `json:"turning" binding:"omitempty,min=1,max=10"`
	TubeRiding *int `json:"tube_riding" binding:"omitempty,min=1,max=10"`
}

type ExperienceUpdate struct {
	SessionsCount *int       `json:"sessions_count" binding:"omitempty,min=0"`
	LastSession   *time.Time `json:"last_session"`
	YearsActive   *int       `json:"years_active" binding:"omitempty,min=0"`
}

type PreferencesUpdate struct {
	WaveSize       *WaveSizeRangeUpdate `json:"wave_size"`
	WindTolerance  *WindToleranceUpdate `json:"wind_tolerance"`
	CrowdTolerance *string              `json:"crowd_tolerance" binding:"omitempty,oneof=low medium high"`
	WaterTemp      *WaterTempUpdate     `json:"water_temp"`
	Availability   *AvailabilityUpdate  `json:"availability"`
}

type WaveSizeRangeUpdate struct {
	Min     *float64 `json:"min" binding:"omitempty,min=0"`
	Optimal *float64 `json:"optimal" binding:"omitempty,min=0"`
	Max     *float64 `json:"max" binding:"omitempty,min=0"`
}

type WindToleranceUpdate struct {
	Onshore    *float64 `json:"onshore" binding:"omitempty,min=0"`
	Offshore   *float64 `json:"offshore" binding:"omitempty,min=0"`
	Crossshore *float64 `json:"crossshore" binding:"omitempty,min=0"`
}

type WaterTempUpdate struct {
	Min *float64 `json:"min"`
}

type AvailabilityUpdate struct {
	Days            *[]string `json:"days"`
	PreferredWindow *string   `json:"preferred_window"`
}

type EquipmentUpdate struct {
	Boards *[]Board `json:"boards"`
}

type SpotsUpdate struct {
	Favorites *[]string `json:"favorites"`
	History   *[]string `json:"history"`
	Blacklist *[]string `json:"blacklist"`
}

type GoalsUpdate struct {
	Targets          *[]string               `json:"targets"`
	ProgressTracking *ProgressTrackingUpdate `json:"progress_tracking"`
}

type ProgressTrackingUpdate struct {
	SessionsThisMonth *int     `json:"sessions_this_month" binding:"omitempty,min=0"`
	HoursThisMonth    *float64 `json:"hours_this_month" binding:"omitempty,min=0"`
}

// Apply merges u into p in place. The profile id is immutable and never
// touched here; ProfileUpdate.ID is consumed only at creation time.
func Apply(p *Profile, u ProfileUpdate) {
	if u.Personal != nil {
		applyPersonal(&p.Personal, u.Personal)
	}
	if u.SurfLevel != nil {
		applySurfLevel(&p.SurfLevel, u.SurfLevel)
	}
	if u.Preferences != nil {
		applyPreferences(&p.Preferences, u.Preferences)
	}
	if u.Equipment != nil && u.Equipment.Boards != nil {
		p.Equipment.Boards = append([]Board(nil), (*u.Equipment.Boards)...)
	}
	if u.Spots != nil {
		applySpots(&p.Spots, u.Spots)
	}
	if u.Goals != nil {
		applyGoals(&p.Goals, u.Goals)
	}
}

func applyPersonal(t *Personal, u *PersonalUpdate) {
	setString(&t.Name, u.Name)
	setString(&t.Email, u.Email)
	setString(&t.Location, u.Location)
	setString(&t.Timezone, u.Timezone)
}

func applySurfLevel(t *SurfLevel, u *SurfLevelUpdate) {
	setInt(&t.Overall, u.Overall)
	if u.Progression != nil {
		setInt(&t.Progression.Paddling, u.Progression.Paddling)
		setInt(&t.Progression.PopUp, u.Progression.PopUp)
		setInt(&t.Progression.Turning, u.Progression.Turning)
		setInt(&t.Progression.TubeRiding, u.Progression.TubeRiding)
	}
	if u.Experience != nil {
		setInt(&t.Experience.SessionsCount, u.Experience.SessionsCount)
		if u.Experience.LastSession != nil {
			ts := *u.Experience.LastSession
			t.Experience.LastSession = &ts
		}
		setInt(&t.Experience.YearsActive, u.Experience.YearsActive)
	}
}

func applyPreferences(t *Preferences, u *PreferencesUpdate) {
	if u.WaveSize != nil {
		setFloat(&t.WaveSize.Min, u.WaveSize.Min)
		setFloat(&t.WaveSize.Optimal, u.WaveSize.Optimal)
		setFloat(&t.WaveSize.Max, u.WaveSize.Max)
	}
	if u.WindTolerance != nil {
		setFloat(&t.WindTolerance.Onshore, u.WindTolerance.Onshore)
		setFloat(&t.WindTolerance.Offshore, u.WindTolerance.Offshore)
		setFloat(&t.WindTolerance.Crossshore, u.WindTolerance.Crossshore)
	}
	setString(&t.CrowdTolerance, u.CrowdTolerance)
	if u.WaterTemp != nil {
		setFloat(&t.WaterTemp.Min, u.WaterTemp.Min)
	}
	if u.Availability != nil {
		if u.Availability.Days != nil {
			t.Availability.Days = append([]string(nil), (*u.Availability.Days)...)
		}
		setString(&t.Availability.PreferredWindow, u.Availability.PreferredWindow)
	}
}

func applySpots(t *Spots, u *SpotsUpdate) {
	if u.Favorites != nil {
		t.Favorites = append([]string(nil), (*u.Favorites)...)
	}
	if u.History != nil {
		t.History = append([]string(nil), (*u.History)...)
	}
	if u.Blacklist != nil {
		t.Blacklist = append([]string(nil), (*u.Blacklist)...)
	}
}

func applyGoals(t *Goals, u *GoalsUpdate) {
	if u.Targets != nil {
		t.Targets = append([]string(nil), (*u.Targets)...)
	}
	if u.ProgressTracking != nil {
		setInt(&t.ProgressTracking.SessionsThisMonth, u.ProgressTracking.SessionsThisMonth)
		setFloat(&t.ProgressTracking.HoursThisMonth, u.ProgressTracking.HoursThisMonth)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
