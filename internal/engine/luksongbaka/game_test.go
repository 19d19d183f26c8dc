package luksongbaka

import (
	"testing"

	"github.com/ericogr/laro-arcade/internal/engine"
)

var (
	hold    = engine.Input{Action: true}
	release = engine.Input{}
)

// tap presses and releases the action button over two ticks.
func tap(g *Game) {
	g.Step(hold)
	g.Step(release)
}

func stepUntilLeaves(t *testing.T, g *Game, phase string, in engine.Input) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		if g.Phase() != phase {
			return
		}
		g.Step(in)
	}
	t.Fatalf("game stuck in phase %q", phase)
}

// chargeFrom puts the game into the charging phase with the player at x and
// the launch angle at angle, with the action button held.
func chargeFrom(g *Game, x, angle float64) {
	g.phase = PhaseCharging
	g.Step(hold)
	g.player.X = x
	g.angle = angle
}

func TestMenuPressStartsRun(t *testing.T) {
	g := New(DefaultTuning())
	if g.Phase() != PhaseMenu {
		t.Fatalf("expected menu, got %s", g.Phase())
	}
	tap(g)
	if g.Phase() != PhaseIdle {
		t.Fatalf("expected idle after press, got %s", g.Phase())
	}
	if g.Lives() != 3 || g.Level() != 1 || g.Score() != 0 {
		t.Fatalf("unexpected run state lives=%d level=%d score=%d", g.Lives(), g.Level(), g.Score())
	}
	tap(g)
	if g.Phase() != PhaseRunning {
		t.Fatalf("expected running, got %s", g.Phase())
	}
}

func TestRunningIntoBakaFails(t *testing.T) {
	g := New(DefaultTuning())
	tap(g)
	tap(g)
	stepUntilLeaves(t, g, PhaseRunning, release)
	if g.Phase() != PhaseFail {
		t.Fatalf("expected fail, got %s", g.Phase())
	}
	if g.Lives() != 2 {
		t.Fatalf("expected one life lost, got %d", g.Lives())
	}
	stepUntilLeaves(t, g, PhaseFail, release)
	if g.Phase() != PhaseIdle {
		t.Fatalf("expected idle after fail hold, got %s", g.Phase())
	}
	if g.player.X != DefaultTuning().StartX {
		t.Fatalf("player should be back at the start, x=%f", g.player.X)
	}
}

func TestChargeAngleStaysWithinBounds(t *testing.T) {
	tu := DefaultTuning()
	tu.BakaX = 1e6 // never reach it
	g := New(tu)
	tap(g)
	tap(g)
	g.Step(hold) // running -> charging
	if g.Phase() != PhaseCharging {
		t.Fatalf("expected charging, got %s", g.Phase())
	}
	sawMax := false
	for i := 0; i < 200; i++ {
		g.Step(hold)
		if g.angle < tu.MinAngle || g.angle > tu.MaxAngle {
			t.Fatalf("angle out of bounds: %f", g.angle)
		}
		if g.angle == tu.MaxAngle {
			sawMax = true
		}
	}
	if !sawMax {
		t.Fatalf("expected the angle to reach its maximum and swing back")
	}
}

func TestCleanJumpScoresAndRaisesBaka(t *testing.T) {
	g := New(DefaultTuning())
	tap(g)
	chargeFrom(g, 250, 55)
	g.Step(release)
	if g.Phase() != PhaseJumping {
		t.Fatalf("expected jumping, got %s", g.Phase())
	}
	for g.Phase() == PhaseJumping {
		if g.player.Y < 0 {
			t.Fatalf("player below ground: %f", g.player.Y)
		}
		g.Step(release)
	}
	if g.Phase() != PhaseSuccess {
		t.Fatalf("expected success, got %s", g.Phase())
	}
	if g.Score() != 10 || g.Level() != 2 {
		t.Fatalf("expected score 10 level 2, got score=%d level=%d", g.Score(), g.Level())
	}
	stepUntilLeaves(t, g, PhaseSuccess, release)
	if g.Phase() != PhaseIdle {
		t.Fatalf("expected idle, got %s", g.Phase())
	}
	if g.baka.Height != DefaultTuning().BakaHeight(2) {
		t.Fatalf("baka not raised: %f", g.baka.Height)
	}
}

func TestFlatJumpHitsBaka(t *testing.T) {
	g := New(DefaultTuning())
	tap(g)
	chargeFrom(g, 250, 20)
	g.Step(release)
	stepUntilLeaves(t, g, PhaseJumping, release)
	if g.Phase() != PhaseFail {
		t.Fatalf("expected fail, got %s", g.Phase())
	}
}

func TestShortJumpFails(t *testing.T) {
	g := New(DefaultTuning())
	tap(g)
	chargeFrom(g, 40, 70)
	g.Step(release)
	stepUntilLeaves(t, g, PhaseJumping, release)
	if g.Phase() != PhaseFail {
		t.Fatalf("expected fail for a short landing, got %s", g.Phase())
	}
	if g.player.Y != 0 {
		t.Fatalf("expected player on the ground, y=%f", g.player.Y)
	}
}

func TestLosingAllLivesEndsGame(t *testing.T) {
	tu := DefaultTuning()
	tu.Lives = 2
	g := New(tu)
	tap(g)
	for i := 0; i < tu.Lives; i++ {
		tap(g)
		stepUntilLeaves(t, g, PhaseRunning, release)
		stepUntilLeaves(t, g, PhaseFail, release)
	}
	if !g.Over() || g.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %s", g.Phase())
	}
	if g.Lives() != 0 {
		t.Fatalf("lives should not go negative: %d", g.Lives())
	}
	tap(g)
	if g.Phase() != PhaseMenu || g.Lives() != tu.Lives {
		t.Fatalf("press after game over should return to a fresh menu, got %s lives=%d", g.Phase(), g.Lives())
	}
}

func TestLevelCapsAtMax(t *testing.T) {
	tu := DefaultTuning()
	if got := tu.BakaHeight(99); got != tu.BakaHeight(tu.MaxLevel) {
		t.Fatalf("height should cap at max level, got %f", got)
	}
	g := New(tu)
	g.level = tu.MaxLevel
	g.succeed()
	if g.Level() != tu.MaxLevel {
		t.Fatalf("level exceeded max: %d", g.Level())
	}
	if g.Score() != tu.MaxLevel*tu.PointsPerLevel {
		t.Fatalf("unexpected score %d", g.Score())
	}
}

func TestSnapshotCarriesState(t *testing.T) {
	g := New(DefaultTuning())
	v, ok := g.Snapshot().(View)
	if !ok {
		t.Fatalf("unexpected snapshot type %T", g.Snapshot())
	}
	if v.Phase != PhaseMenu || v.Lives != 3 || v.Baka.Level != 1 {
		t.Fatalf("unexpected view %+v", v)
	}
}
