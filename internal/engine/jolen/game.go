// Package jolen implements the marble-shooting game. The player aims the
// shooter marble, charges its power and flicks it into a ring of target
// marbles; every marble knocked scores.
package jolen

import (
	"math"

	"github.com/ericogr/laro-arcade/internal/engine"
)

const (
	PhaseMenu     = "menu"
	PhaseAiming   = "aiming"
	PhaseCharging = "charging"
	PhaseRolling  = "rolling"
	PhaseCleared  = "cleared"
	PhaseGameOver = "gameover"
)

type Marble struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
	R  float64 `json:"r"`
}

type Target struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Hit bool    `json:"hit"`
}

type View struct {
	Phase     string   `json:"phase"`
	Marble    Marble   `json:"marble"`
	Targets   []Target `json:"targets"`
	Aim       float64  `json:"aim"`
	Power     float64  `json:"power"`
	ShotsLeft int      `json:"shots_left"`
	Score     int      `json:"score"`
}

type Game struct {
	t         Tuning
	phase     string
	marble    Marble
	targets   []Target
	aim       float64
	power     float64
	powerDir  float64
	shotsLeft int
	score     int
	edges     engine.Edges
}

func New(t Tuning) *Game {
	g := &Game{t: t}
	g.Reset()
	return g
}

func (g *Game) Kind() engine.Kind { return engine.KindJolen }
func (g *Game) Phase() string     { return g.phase }
func (g *Game) Score() int        { return g.score }
func (g *Game) Level() int        { return 1 }
func (g *Game) ShotsLeft() int    { return g.shotsLeft }
func (g *Game) Over() bool        { return g.phase == PhaseCleared || g.phase == PhaseGameOver }

func (g *Game) Reset() {
	g.phase = PhaseMenu
	g.score = 0
	g.shotsLeft = g.t.Shots
	g.aim = (g.t.MinAim + g.t.MaxAim) / 2
	g.power = 0
	g.targets = ring(g.t)
	g.rack()
}

// ring spaces the targets evenly on a circle, the first one at the top.
func ring(t Tuning) []Target {
	out := make([]Target, t.Targets)
	for i := range out {
		a := engine.Radians(-90 + float64(i)*360/float64(t.Targets))
		out[i] = Target{X: t.RingX + t.RingRadius*math.Cos(a), Y: t.RingY + t.RingRadius*math.Sin(a)}
	}
	return out
}

// rack returns the shooter marble to its spot.
func (g *Game) rack() {
	g.marble = Marble{X: g.t.ShooterX, Y: g.t.ShooterY, R: g.t.MarbleRadius}
}

func (g *Game) Step(in engine.Input) {
	pressed, released := g.edges.Update(in.Action)
	switch g.phase {
	case PhaseMenu:
		if pressed {
			g.Reset()
			g.phase = PhaseAiming
		}
	case PhaseAiming:
		g.aim = engine.Clamp(g.aim+engine.Axis(in.Left, in.Right)*g.t.AimStep, g.t.MinAim, g.t.MaxAim)
		if pressed {
			g.phase = PhaseCharging
			g.power = 0
			g.powerDir = 1
		}
	case PhaseCharging:
		if released {
			g.shoot()
			return
		}
		g.swingPower()
	case PhaseRolling:
		g.roll()
	case PhaseCleared, PhaseGameOver:
		if pressed {
			g.Reset()
		}
	}
}

func (g *Game) swingPower() {
	g.power += g.powerDir * g.t.PowerStep
	if g.power >= g.t.MaxPower {
		g.power = g.t.MaxPower
		g.powerDir = -1
	} else if g.power <= 0 {
		g.power = 0
		g.powerDir = 1
	}
}

func (g *Game) shoot() {
	a := engine.Radians(g.aim)
	g.marble.VX = g.power * math.Cos(a)
	g.marble.VY = g.power * math.Sin(a)
	g.phase = PhaseRolling
}

func (g *Game) roll() {
	m := &g.marble
	m.X += m.VX
	m.Y += m.VY
	m.VX *= g.t.Friction
	m.VY *= g.t.Friction

	if m.X-m.R < 0 {
		m.X, m.VX = m.R, -m.VX
	} else if m.X+m.R > g.t.Width {
		m.X, m.VX = g.t.Width-m.R, -m.VX
	}
	if m.Y-m.R < 0 {
		m.Y, m.VY = m.R, -m.VY
	} else if m.Y+m.R > g.t.Height {
		m.Y, m.VY = g.t.Height-m.R, -m.VY
	}

	shooter := engine.Circle{X: m.X, Y: m.Y, R: m.R}
	for i := range g.targets {
		tg := &g.targets[i]
		if tg.Hit {
			continue
		}
		if engine.CirclesOverlap(shooter, engine.Circle{X: tg.X, Y: tg.Y, R: g.t.TargetRadius}) {
			tg.Hit = true
			g.score += g.t.TargetPoints
		}
	}

	if math.Hypot(m.VX, m.VY) < g.t.StopSpeed {
		g.endShot()
	}
}

func (g *Game) endShot() {
	g.shotsLeft--
	if g.remaining() == 0 {
		g.score += g.shotsLeft * g.t.ShotBonus
		g.phase = PhaseCleared
		return
	}
	if g.shotsLeft <= 0 {
		g.shotsLeft = 0
		g.phase = PhaseGameOver
		return
	}
	g.rack()
	g.power = 0
	g.phase = PhaseAiming
}

func (g *Game) remaining() int {
	n := 0
	for _, tg := range g.targets {
		if !tg.Hit {
			n++
		}
	}
	return n
}

func (g *Game) Snapshot() any {
	targets := make([]Target, len(g.targets))
	copy(targets, g.targets)
	return View{
		Phase:     g.phase,
		Marble:    g.marble,
		Targets:   targets,
		Aim:       g.aim,
		Power:     g.power,
		ShotsLeft: g.shotsLeft,
		Score:     g.score,
	}
}
