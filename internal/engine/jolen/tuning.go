package jolen

// Tuning holds the marble game's constants. Coordinates are screen pixels
// with y growing downwards; angles are degrees, so -90 aims straight up.
type Tuning struct {
	Width        float64 `json:"width" toml:"width"`
	Height       float64 `json:"height" toml:"height"`
	ShooterX     float64 `json:"shooter_x" toml:"shooter_x"`
	ShooterY     float64 `json:"shooter_y" toml:"shooter_y"`
	MarbleRadius float64 `json:"marble_radius" toml:"marble_radius"`
	TargetRadius float64 `json:"target_radius" toml:"target_radius"`
	Targets      int     `json:"targets" toml:"targets"`
	RingX        float64 `json:"ring_x" toml:"ring_x"`
	RingY        float64 `json:"ring_y" toml:"ring_y"`
	RingRadius   float64 `json:"ring_radius" toml:"ring_radius"`
	Shots        int     `json:"shots" toml:"shots"`
	TargetPoints int     `json:"target_points" toml:"target_points"`
	ShotBonus    int     `json:"shot_bonus" toml:"shot_bonus"`
	AimStep      float64 `json:"aim_step" toml:"aim_step"`
	MinAim       float64 `json:"min_aim" toml:"min_aim"`
	MaxAim       float64 `json:"max_aim" toml:"max_aim"`
	MaxPower     float64 `json:"max_power" toml:"max_power"`
	PowerStep    float64 `json:"power_step" toml:"power_step"`
	Friction     float64 `json:"friction" toml:"friction"`
	StopSpeed    float64 `json:"stop_speed" toml:"stop_speed"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Width:        800,
		Height:       600,
		ShooterX:     400,
		ShooterY:     560,
		MarbleRadius: 10,
		TargetRadius: 10,
		Targets:      5,
		RingX:        400,
		RingY:        250,
		RingRadius:   60,
		Shots:        6,
		TargetPoints: 10,
		ShotBonus:    5,
		AimStep:      2,
		MinAim:       -170,
		MaxAim:       -10,
		MaxPower:     18,
		PowerStep:    0.4,
		Friction:     0.985,
		StopSpeed:    0.15,
	}
}
