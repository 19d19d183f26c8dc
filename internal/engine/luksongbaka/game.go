// Package luksongbaka implements the obstacle-jump timing game: the player
// runs at the baka, charges a launch angle that swings back and forth, and
// releases to jump over it. Each cleared jump raises the baka.
package luksongbaka

import (
	"math"

	"github.com/ericogr/laro-arcade/internal/engine"
)

const (
	PhaseMenu     = "menu"
	PhaseIdle     = "idle"
	PhaseRunning  = "running"
	PhaseCharging = "charging"
	PhaseJumping  = "jumping"
	PhaseSuccess  = "success"
	PhaseFail     = "fail"
	PhaseGameOver = "gameover"
)

type Player struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Baka struct {
	Level  int     `json:"level"`
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// View is the client-facing snapshot.
type View struct {
	Phase  string  `json:"phase"`
	Player Player  `json:"player"`
	Baka   Baka    `json:"baka"`
	Angle  float64 `json:"angle"`
	Lives  int     `json:"lives"`
	Score  int     `json:"score"`
	Level  int     `json:"level"`
}

type Game struct {
	t        Tuning
	phase    string
	player   Player
	baka     Baka
	angle    float64
	angleDir float64
	lives    int
	score    int
	level    int
	hold     int
	edges    engine.Edges
}

func New(t Tuning) *Game {
	g := &Game{t: t}
	g.Reset()
	return g
}

func (g *Game) Kind() engine.Kind { return engine.KindLuksongBaka }
func (g *Game) Phase() string     { return g.phase }
func (g *Game) Score() int        { return g.score }
func (g *Game) Level() int        { return g.level }
func (g *Game) Lives() int        { return g.lives }
func (g *Game) Over() bool        { return g.phase == PhaseGameOver }

func (g *Game) Reset() {
	g.phase = PhaseMenu
	g.lives = g.t.Lives
	g.score = 0
	g.level = 1
	g.hold = 0
	g.placePlayer()
}

// placePlayer puts the player back at the start line and sizes the baka for the current level.
func (g *Game) placePlayer() {
	g.player = Player{X: g.t.StartX, Width: g.t.PlayerWidth, Height: g.t.PlayerHeight}
	g.baka = Baka{Level: g.level, X: g.t.BakaX, Width: g.t.BakaWidth, Height: g.t.BakaHeight(g.level)}
	g.angle = g.t.MinAngle
	g.angleDir = 1
}

func (g *Game) Step(in engine.Input) {
	pressed, released := g.edges.Update(in.Action)
	switch g.phase {
	case PhaseMenu:
		if pressed {
			g.Reset()
			g.phase = PhaseIdle
		}
	case PhaseIdle:
		if pressed {
			g.phase = PhaseRunning
		}
	case PhaseRunning:
		if pressed {
			g.phase = PhaseCharging
			g.angle = g.t.MinAngle
			g.angleDir = 1
		}
		g.run()
	case PhaseCharging:
		if released {
			g.launch()
			return
		}
		g.swingAngle()
		g.run()
	case PhaseJumping:
		g.fly()
	case PhaseSuccess, PhaseFail:
		g.hold--
		if g.hold > 0 {
			return
		}
		if g.phase == PhaseFail && g.lives == 0 {
			g.phase = PhaseGameOver
			return
		}
		g.placePlayer()
		g.phase = PhaseIdle
	case PhaseGameOver:
		if pressed {
			g.Reset()
		}
	}
}

func (g *Game) run() {
	g.player.X += g.t.RunSpeed
	if g.hitsBaka() {
		g.fail()
	}
}

// swingAngle moves the charge angle toward the current bound and bounces off it.
func (g *Game) swingAngle() {
	g.angle += g.angleDir * g.t.ChargeSpeed
	if g.angle >= g.t.MaxAngle {
		g.angle = g.t.MaxAngle
		g.angleDir = -1
	} else if g.angle <= g.t.MinAngle {
		g.angle = g.t.MinAngle
		g.angleDir = 1
	}
}

func (g *Game) launch() {
	a := engine.Radians(g.angle)
	g.player.VX = g.t.JumpPower * math.Cos(a)
	g.player.VY = g.t.JumpPower * math.Sin(a)
	g.phase = PhaseJumping
}

func (g *Game) fly() {
	p := &g.player
	p.X += p.VX
	p.Y += p.VY
	p.VY -= g.t.Gravity
	landed := false
	if p.Y <= 0 {
		p.Y = 0
		landed = true
	}
	if g.hitsBaka() {
		g.fail()
		return
	}
	if !landed {
		return
	}
	p.VX, p.VY = 0, 0
	if p.X >= g.baka.X+g.baka.Width {
		g.succeed()
	} else {
		g.fail()
	}
}

func (g *Game) hitsBaka() bool {
	p := g.player
	return engine.RectsOverlap(
		engine.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height},
		engine.Rect{X: g.baka.X, Y: 0, W: g.baka.Width, H: g.baka.Height},
	)
}

func (g *Game) succeed() {
	g.score += g.level * g.t.PointsPerLevel
	if g.level < g.t.MaxLevel {
		g.level++
	}
	g.phase = PhaseSuccess
	g.hold = g.t.ResultHoldTicks
}

func (g *Game) fail() {
	if g.lives > 0 {
		g.lives--
	}
	g.player.VX, g.player.VY = 0, 0
	g.phase = PhaseFail
	g.hold = g.t.ResultHoldTicks
}

func (g *Game) Snapshot() any {
	return View{
		Phase:  g.phase,
		Player: g.player,
		Baka:   g.baka,
		Angle:  g.angle,
		Lives:  g.lives,
		Score:  g.score,
		Level:  g.level,
	}
}
