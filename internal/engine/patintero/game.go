// Package patintero implements the line-tag game: the runner crosses a
// court guarded by taggers who slide along their lines, while a centre
// guard patrols the middle. Every completed crossing scores and speeds the
// guards up.
package patintero

import (
	"math"

	"github.com/ericogr/laro-arcade/internal/engine"
)

const (
	PhaseMenu     = "menu"
	PhaseRunning  = "running"
	PhaseTagged   = "tagged"
	PhaseGameOver = "gameover"
)

const (
	HeadingUp   = "up"
	HeadingDown = "down"
)

type Runner struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	R float64 `json:"r"`
}

// Guard is a tagger. Line guards move along x on a fixed line; the centre
// guard moves along y on the vertical centre line.
type Guard struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Center bool    `json:"center"`
	dir    float64
}

func (gd Guard) rect() engine.Rect {
	return engine.Rect{X: gd.X - gd.W/2, Y: gd.Y - gd.H/2, W: gd.W, H: gd.H}
}

type View struct {
	Phase     string  `json:"phase"`
	Heading   string  `json:"heading"`
	Runner    Runner  `json:"runner"`
	Guards    []Guard `json:"guards"`
	Lives     int     `json:"lives"`
	Score     int     `json:"score"`
	Crossings int     `json:"crossings"`
}

type Game struct {
	t         Tuning
	phase     string
	heading   string
	runner    Runner
	guards    []Guard
	lives     int
	score     int
	crossings int
	hold      int
	edges     engine.Edges
}

func New(t Tuning) *Game {
	g := &Game{t: t}
	g.Reset()
	return g
}

func (g *Game) Kind() engine.Kind { return engine.KindPatintero }
func (g *Game) Phase() string     { return g.phase }
func (g *Game) Score() int        { return g.score }
func (g *Game) Level() int        { return 1 + g.crossings }
func (g *Game) Lives() int        { return g.lives }
func (g *Game) Crossings() int    { return g.crossings }
func (g *Game) Over() bool        { return g.phase == PhaseGameOver }

func (g *Game) Reset() {
	g.phase = PhaseMenu
	g.heading = HeadingUp
	g.lives = g.t.Lives
	g.score = 0
	g.crossings = 0
	g.hold = 0
	g.spawn()
}

// spawn places the runner at the start of the current heading and lines the guards up.
func (g *Game) spawn() {
	y := g.t.Height - g.t.EndZone/2
	if g.heading == HeadingDown {
		y = g.t.EndZone / 2
	}
	g.runner = Runner{X: g.t.Width / 2, Y: y, R: g.t.RunnerRadius}

	g.guards = g.guards[:0]
	for i := 0; i < g.t.Lines; i++ {
		x := g.t.Width / 4
		if i%2 == 1 {
			x = g.t.Width * 3 / 4
		}
		g.guards = append(g.guards, Guard{X: x, Y: g.t.LineY(i), W: g.t.GuardLength, H: g.t.GuardThickness})
	}
	if g.t.Lines > 0 {
		g.guards = append(g.guards, Guard{
			X: g.t.Width / 2, Y: g.t.LineY(0),
			W: g.t.GuardThickness, H: g.t.GuardLength,
			Center: true, dir: 1,
		})
	}
}

func (g *Game) speedFactor() float64 {
	return 1 + g.t.SpeedupPerCrossing*float64(g.crossings)
}

func (g *Game) Step(in engine.Input) {
	pressed, _ := g.edges.Update(in.Action)
	switch g.phase {
	case PhaseMenu:
		if pressed {
			g.Reset()
			g.phase = PhaseRunning
		}
	case PhaseRunning:
		g.moveRunner(in)
		g.moveGuards()
		if g.tagged() {
			if g.lives > 0 {
				g.lives--
			}
			g.phase = PhaseTagged
			g.hold = g.t.TagHoldTicks
			return
		}
		g.checkCrossing()
	case PhaseTagged:
		g.hold--
		if g.hold > 0 {
			return
		}
		if g.lives == 0 {
			g.phase = PhaseGameOver
			return
		}
		g.spawn()
		g.phase = PhaseRunning
	case PhaseGameOver:
		if pressed {
			g.Reset()
		}
	}
}

func (g *Game) moveRunner(in engine.Input) {
	dx := engine.Axis(in.Left, in.Right)
	dy := engine.Axis(in.Up, in.Down)
	if dx != 0 && dy != 0 {
		dx, dy = dx/math.Sqrt2, dy/math.Sqrt2
	}
	r := &g.runner
	r.X = engine.Clamp(r.X+dx*g.t.RunnerSpeed, r.R, g.t.Width-r.R)
	r.Y = engine.Clamp(r.Y+dy*g.t.RunnerSpeed, r.R, g.t.Height-r.R)
}

func (g *Game) moveGuards() {
	f := g.speedFactor()
	top, bottom := g.t.LineY(0), g.t.LineY(g.t.Lines-1)
	for i := range g.guards {
		gd := &g.guards[i]
		if gd.Center {
			gd.Y += gd.dir * g.t.CenterSpeed * f
			if gd.Y >= bottom {
				gd.Y, gd.dir = bottom, -1
			} else if gd.Y <= top {
				gd.Y, gd.dir = top, 1
			}
			continue
		}
		// line guards shadow the runner along their line
		step := g.t.GuardSpeed * f
		diff := g.runner.X - gd.X
		if math.Abs(diff) < step {
			gd.X = g.runner.X
		} else {
			gd.X += math.Copysign(step, diff)
		}
		gd.X = engine.Clamp(gd.X, gd.W/2, g.t.Width-gd.W/2)
	}
}

func (g *Game) tagged() bool {
	c := engine.Circle{X: g.runner.X, Y: g.runner.Y, R: g.runner.R}
	for _, gd := range g.guards {
		if engine.CircleRectOverlap(c, gd.rect()) {
			return true
		}
	}
	return false
}

func (g *Game) checkCrossing() {
	switch {
	case g.heading == HeadingUp && g.runner.Y <= g.t.EndZone:
		g.heading = HeadingDown
	case g.heading == HeadingDown && g.runner.Y >= g.t.Height-g.t.EndZone:
		g.heading = HeadingUp
	default:
		return
	}
	g.crossings++
	g.score += g.t.PointsPerCrossing
}

func (g *Game) Snapshot() any {
	guards := make([]Guard, len(g.guards))
	copy(guards, g.guards)
	return View{
		Phase:     g.phase,
		Heading:   g.heading,
		Runner:    g.runner,
		Guards:    guards,
		Lives:     g.lives,
		Score:     g.score,
		Crossings: g.crossings,
	}
}
