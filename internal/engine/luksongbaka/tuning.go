package luksongbaka

// Tuning holds the hand-tuned constants of the jump game. Distances are in
// court pixels with y growing upwards from the ground; speeds are per tick;
// angles are in degrees.
type Tuning struct {
	Lives           int     `json:"lives" toml:"lives"`
	MaxLevel        int     `json:"max_level" toml:"max_level"`
	PointsPerLevel  int     `json:"points_per_level" toml:"points_per_level"`
	ResultHoldTicks int     `json:"result_hold_ticks" toml:"result_hold_ticks"`
	RunSpeed        float64 `json:"run_speed" toml:"run_speed"`
	JumpPower       float64 `json:"jump_power" toml:"jump_power"`
	Gravity         float64 `json:"gravity" toml:"gravity"`
	MinAngle        float64 `json:"min_angle" toml:"min_angle"`
	MaxAngle        float64 `json:"max_angle" toml:"max_angle"`
	ChargeSpeed     float64 `json:"charge_speed" toml:"charge_speed"`
	StartX          float64 `json:"start_x" toml:"start_x"`
	PlayerWidth     float64 `json:"player_width" toml:"player_width"`
	PlayerHeight    float64 `json:"player_height" toml:"player_height"`
	BakaX           float64 `json:"baka_x" toml:"baka_x"`
	BakaWidth       float64 `json:"baka_width" toml:"baka_width"`
	BaseHeight      float64 `json:"base_height" toml:"base_height"`
	HeightStep      float64 `json:"height_step" toml:"height_step"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Lives:           3,
		MaxLevel:        5,
		PointsPerLevel:  10,
		ResultHoldTicks: 45,
		RunSpeed:        4,
		JumpPower:       14,
		Gravity:         0.5,
		MinAngle:        20,
		MaxAngle:        70,
		ChargeSpeed:     1.5,
		StartX:          40,
		PlayerWidth:     30,
		PlayerHeight:    50,
		BakaX:           400,
		BakaWidth:       60,
		BaseHeight:      30,
		HeightStep:      15,
	}
}

// BakaHeight is the obstacle height at the given level.
func (t Tuning) BakaHeight(level int) float64 {
	if level < 1 {
		level = 1
	}
	if level > t.MaxLevel {
		level = t.MaxLevel
	}
	return t.BaseHeight + float64(level-1)*t.HeightStep
}
