package patintero

// Tuning holds the tag game's constants. The court is Width×Height screen
// pixels with y growing downwards; the runner starts at the bottom.
type Tuning struct {
	Width              float64 `json:"width" toml:"width"`
	Height             float64 `json:"height" toml:"height"`
	Lines              int     `json:"lines" toml:"lines"`
	EndZone            float64 `json:"end_zone" toml:"end_zone"`
	RunnerRadius       float64 `json:"runner_radius" toml:"runner_radius"`
	RunnerSpeed        float64 `json:"runner_speed" toml:"runner_speed"`
	GuardSpeed         float64 `json:"guard_speed" toml:"guard_speed"`
	CenterSpeed        float64 `json:"center_speed" toml:"center_speed"`
	GuardLength        float64 `json:"guard_length" toml:"guard_length"`
	GuardThickness     float64 `json:"guard_thickness" toml:"guard_thickness"`
	SpeedupPerCrossing float64 `json:"speedup_per_crossing" toml:"speedup_per_crossing"`
	Lives              int     `json:"lives" toml:"lives"`
	PointsPerCrossing  int     `json:"points_per_crossing" toml:"points_per_crossing"`
	TagHoldTicks       int     `json:"tag_hold_ticks" toml:"tag_hold_ticks"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Width:              300,
		Height:             600,
		Lines:              4,
		EndZone:            30,
		RunnerRadius:       12,
		RunnerSpeed:        3,
		GuardSpeed:         1.8,
		CenterSpeed:        1.5,
		GuardLength:        40,
		GuardThickness:     14,
		SpeedupPerCrossing: 0.15,
		Lives:              3,
		PointsPerCrossing:  1,
		TagHoldTicks:       45,
	}
}

// LineY is the y coordinate of the i-th guarded line, counted from the top.
func (t Tuning) LineY(i int) float64 {
	return t.Height * float64(i+1) / float64(t.Lines+1)
}
