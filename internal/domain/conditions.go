package domain

// Conditions is a raw snapshot of surf conditions at a spot, handed in by
// external forecast collaborators. Units: meters, km/h, degrees Celsius.
type Conditions struct {
	WaveHeight    float64 `json:"wave_height"`
	SwellPeriod   float64 `json:"swell_period"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection string  `json:"wind_direction"`
	Crowd         string  `json:"crowd" binding:"omitempty,oneof=low medium high"`
	WaterTemp     float64 `json:"water_temp"`
}
