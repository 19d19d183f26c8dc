package jolen

import (
	"testing"

	"github.com/ericogr/laro-arcade/internal/engine"
)

var (
	hold    = engine.Input{Action: true}
	release = engine.Input{}
)

func started(t Tuning) *Game {
	g := New(t)
	g.Step(hold)
	g.Step(release)
	return g
}

// flick charges and releases a shot with the given aim and power, then
// rolls the marble until it stops.
func flick(t *testing.T, g *Game, aim, power float64) {
	t.Helper()
	g.aim = aim
	g.Step(hold)
	if g.Phase() != PhaseCharging {
		t.Fatalf("expected charging, got %s", g.Phase())
	}
	g.power = power
	g.Step(release)
	for i := 0; i < 5000 && g.Phase() == PhaseRolling; i++ {
		m := g.marble
		if m.X < m.R || m.X > g.t.Width-m.R || m.Y < m.R || m.Y > g.t.Height-m.R {
			t.Fatalf("marble left the field: %+v", m)
		}
		g.Step(release)
	}
	if g.Phase() == PhaseRolling {
		t.Fatalf("marble never stopped")
	}
}

func TestRingPlacesFirstTargetOnTop(t *testing.T) {
	tu := DefaultTuning()
	targets := ring(tu)
	if len(targets) != tu.Targets {
		t.Fatalf("expected %d targets, got %d", tu.Targets, len(targets))
	}
	if d := targets[0].X - tu.RingX; d > 1e-9 || d < -1e-9 {
		t.Fatalf("first target should be straight above the ring centre, x=%f", targets[0].X)
	}
	if targets[0].Y != tu.RingY-tu.RingRadius {
		t.Fatalf("unexpected first target y=%f", targets[0].Y)
	}
}

func TestAimIsClamped(t *testing.T) {
	tu := DefaultTuning()
	g := started(tu)
	for i := 0; i < 200; i++ {
		g.Step(engine.Input{Left: true})
	}
	if g.aim != tu.MinAim {
		t.Fatalf("aim should clamp at %f, got %f", tu.MinAim, g.aim)
	}
	for i := 0; i < 200; i++ {
		g.Step(engine.Input{Right: true})
	}
	if g.aim != tu.MaxAim {
		t.Fatalf("aim should clamp at %f, got %f", tu.MaxAim, g.aim)
	}
}

func TestPowerOscillatesWhileCharging(t *testing.T) {
	tu := DefaultTuning()
	g := started(tu)
	g.Step(hold)
	peak := 0.0
	for i := 0; i < 200; i++ {
		g.Step(hold)
		if g.power < 0 || g.power > tu.MaxPower {
			t.Fatalf("power out of range: %f", g.power)
		}
		if g.power > peak {
			peak = g.power
		}
	}
	if peak != tu.MaxPower {
		t.Fatalf("expected power to reach max, peak=%f", peak)
	}
}

func TestStraightShotKnocksTopTarget(t *testing.T) {
	g := started(DefaultTuning())
	flick(t, g, -90, 12)
	if !g.targets[0].Hit {
		t.Fatalf("expected top target to be hit")
	}
	for i := 1; i < len(g.targets); i++ {
		if g.targets[i].Hit {
			t.Fatalf("target %d should not be hit", i)
		}
	}
	if g.Score() != 10 || g.ShotsLeft() != 5 {
		t.Fatalf("unexpected score=%d shots=%d", g.Score(), g.ShotsLeft())
	}
	if g.Phase() != PhaseAiming {
		t.Fatalf("expected aiming after the shot, got %s", g.Phase())
	}
	if g.marble.X != g.t.ShooterX || g.marble.Y != g.t.ShooterY {
		t.Fatalf("marble should be re-racked, got %+v", g.marble)
	}
}

func TestMissCostsAShot(t *testing.T) {
	g := started(DefaultTuning())
	flick(t, g, -170, 3)
	if g.Score() != 0 || g.ShotsLeft() != 5 {
		t.Fatalf("unexpected score=%d shots=%d", g.Score(), g.ShotsLeft())
	}
}

func TestClearingTheRingAwardsBonus(t *testing.T) {
	g := started(DefaultTuning())
	for i := 1; i < len(g.targets); i++ {
		g.targets[i].Hit = true
	}
	flick(t, g, -90, 12)
	if g.Phase() != PhaseCleared || !g.Over() {
		t.Fatalf("expected cleared, got %s", g.Phase())
	}
	want := 10 + 5*g.t.ShotBonus
	if g.Score() != want {
		t.Fatalf("expected score %d, got %d", want, g.Score())
	}
}

func TestOutOfShotsEndsGame(t *testing.T) {
	tu := DefaultTuning()
	tu.Shots = 1
	g := started(tu)
	flick(t, g, -170, 3)
	if g.Phase() != PhaseGameOver || !g.Over() {
		t.Fatalf("expected game over, got %s", g.Phase())
	}
	g.Step(hold)
	if g.Phase() != PhaseMenu || g.ShotsLeft() != 1 {
		t.Fatalf("expected fresh menu after game over, got %s shots=%d", g.Phase(), g.ShotsLeft())
	}
}
