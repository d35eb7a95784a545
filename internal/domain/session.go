package domain

import "time"

// Session is one completed surf outing. UserID and BoardID are weak
// references: a session is never cascade-deleted with its profile, and
// BoardID may dangle if the board was later removed from the quiver.
type Session struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Date       time.Time  `json:"date"`
	Spot       string     `json:"spot"`
	BoardID    string     `json:"board_id"`
	Conditions Conditions `json:"conditions"`
	Duration   float64    `json:"duration_hours"`
	Ratings    Ratings    `json:"ratings"`
}

// Ratings sub-scores are clamped to [1, 10] on ingest.
type Ratings struct {
	Overall     int `json:"overall"`
	Waves       int `json:"waves"`
	Performance int `json:"performance"`
	Fun         int `json:"fun"`
}

func (r *Ratings) Normalize() {
	r.Overall = clamp(r.Overall, 1, 10)
	r.Waves = clamp(r.Waves, 1, 10)
	r.Performance = clamp(r.Performance, 1, 10)
	r.Fun = clamp(r.Fun, 1, 10)
}
