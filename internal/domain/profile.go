package domain

import "time"

// Profile is the canonical per-user surfer profile. It is always complete:
// every field carries either caller-provided data or a documented default,
// so callers can serialize it directly.
type Profile struct {
	ID          string      `json:"id"`
	Personal    Personal    `json:"personal"`
	SurfLevel   SurfLevel   `json:"surf_level"`
	Preferences Preferences `json:"preferences"`
	Equipment   Equipment   `json:"equipment"`
	Spots       Spots       `json:"spots"`
	Goals       Goals       `json:"goals"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location"`
	Timezone string `json:"timezone"`
}

type SurfLevel struct {
	Overall     int         `json:"overall"`
	Progression Progression `json:"progression"`
	Experience  Experience  `json:"experience"`
}

type Progression struct {
	Paddling   int `json:"paddling"`
	PopUp      int `json:"pop_up"`
	Turning    int `json:"turning"`
	TubeRiding int `json:"tube_riding"`
}

type Experience struct {
	SessionsCount int        `json:"sessions_count"`
	LastSession   *time.Time `json:"last_session"`
	YearsActive   int        `json:"years_active"`
}

type Preferences struct {
	WaveSize       WaveSizeRange `json:"wave_size"`
	WindTolerance  WindTolerance `json:"wind_tolerance"`
	CrowdTolerance string        `json:"crowd_tolerance"`
	WaterTemp      WaterTemp     `json:"water_temp"`
	Availability   Availability  `json:"availability"`
}

// WaveSizeRange is in meters. Invariant: Min <= Optimal <= Max.
type WaveSizeRange struct {
	Min     float64 `json:"min"`
	Optimal float64 `json:"optimal"`
	Max     float64 `json:"max"`
}

// WindTolerance is the maximum comfortable wind speed per direction, km/h.
type WindTolerance struct {
	Onshore    float64 `json:"onshore"`
	Offshore   float64 `json:"offshore"`
	Crossshore float64 `json:"crossshore"`
}

type WaterTemp struct {
	Min float64 `json:"min"`
}

type Availability struct {
	Days            []string `json:"days"`
	PreferredWindow string   `json:"preferred_window"`
}

type Equipment struct {
	Boards []Board `json:"boards"`
}

// Board is owned by exactly one profile. Sessions reference boards by id
// only; a removed board may leave dangling session references.
type Board struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	LengthFt        float64 `json:"length_ft"`
	VolumeL         float64 `json:"volume_l"`
	MinWaveSize     float64 `json:"min_wave_size"`
	OptimalWaveSize float64 `json:"optimal_wave_size"`
	MaxWaveSize     float64 `json:"max_wave_size"`
}

type Spots struct {
	Favorites []string `json:"favorites"`
	History   []string `json:"history"`
	Blacklist []string `json:"blacklist"`
}

type Goals struct {
	Targets          []string         `json:"targets"`
	ProgressTracking ProgressTracking `json:"progress_tracking"`
}

// ProgressTracking counters are reset by external policy only.
type ProgressTracking struct {
	SessionsThisMonth int     `json:"sessions_this_month"`
	HoursThisMonth    float64 `json:"hours_this_month"`
}

// Crowd levels shared by preferences and condition snapshots.
const (
	CrowdLow    = "low"
	CrowdMedium = "medium"
	CrowdHigh   = "high"
)

// DefaultProfile synthesizes a fully-populated profile for a user id.
// Used both for explicit creation from partial data and for self-healing
// reads when no tier has a record.
func DefaultProfile(id string, now time.Time) Profile {
	return Profile{
		ID: id,
		SurfLevel: SurfLevel{
			Overall: 1,
			Progression: Progression{
				Paddling:   1,
				PopUp:      1,
				Turning:    1,
				TubeRiding: 1,
			},
		},
		Preferences: Preferences{
			WaveSize: WaveSizeRange{
				Min:     0.3,
				Optimal: 1.0,
				Max:     2.0,
			},
			WindTolerance: WindTolerance{
				Onshore:    15,
				Offshore:   25,
				Crossshore: 20,
			},
			CrowdTolerance: CrowdMedium,
			WaterTemp:      WaterTemp{Min: 15},
			Availability: Availability{
				Days:            []string{},
				PreferredWindow: "morning",
			},
		},
		Equipment: Equipment{Boards: []Board{}},
		Spots: Spots{
			Favorites: []string{},
			History:   []string{},
			Blacklist: []string{},
		},
		Goals:     Goals{Targets: []string{}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Normalize clamps bounded fields after a merge so invariants hold
// regardless of what the partial update carried.
func (p *Profile) Normalize() {
	p.SurfLevel.Overall = clamp(p.SurfLevel.Overall, 1, 10)
	p.SurfLevel.Progression.Paddling = clamp(p.SurfLevel.Progression.Paddling, 1, 10)
	p.SurfLevel.Progression.PopUp = clamp(p.SurfLevel.Progression.PopUp, 1, 10)
	p.SurfLevel.Progression.Turning = clamp(p.SurfLevel.Progression.Turning, 1, 10)
	p.SurfLevel.Progression.TubeRiding = clamp(p.SurfLevel.Progression.TubeRiding, 1, 10)
	if p.SurfLevel.Experience.SessionsCount < 0 {
		p.SurfLevel.Experience.SessionsCount = 0
	}
	if p.SurfLevel.Experience.YearsActive < 0 {
		p.SurfLevel.Experience.YearsActive = 0
	}
}

// Clone returns a deep copy so cache and fallback snapshots never share
// slice backing arrays with values handed to callers.
func (p Profile) Clone() Profile {
	out := p
	out.Equipment.Boards = append([]Board(nil), p.Equipment.Boards...)
	out.Preferences.Availability.Days = append([]string(nil), p.Preferences.Availability.Days...)
	out.Spots.Favorites = append([]string(nil), p.Spots.Favorites...)
	out.Spots.History = append([]string(nil), p.Spots.History...)
	out.Spots.Blacklist = append([]string(nil), p.Spots.Blacklist...)
	out.Goals.Targets = append([]string(nil), p.Goals.Targets...)
	if p.SurfLevel.Experience.LastSession != nil {
		t := *p.SurfLevel.Experience.LastSession
		out.SurfLevel.Experience.LastSession = &t
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
