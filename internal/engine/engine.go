// Package engine holds the vocabulary shared by the minigame engines: the
// per-tick input, the Game contract the play rooms drive, and the overlap
// tests the games use for collisions.
package engine

import (
	"errors"
	"math"

	"github.com/ericogr/laro-arcade/internal/keys"
)

// Kind identifies one of the minigames.
type Kind string

const (
	KindJolen       Kind = "jolen"
	KindPatintero   Kind = "patintero"
	KindLuksongBaka Kind = "luksong_baka"
)

// Kinds lists every playable game in catalog order.
var Kinds = []Kind{KindJolen, KindPatintero, KindLuksongBaka}

var ErrUnknownKind = errors.New("unknown game")

// ParseKind accepts canonical keys as well as display names ("Luksong Baka").
func ParseKind(s string) (Kind, error) {
	k := Kind(keys.GameKey(s))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", ErrUnknownKind
}

// Input is the held state of the controls during one tick.
type Input struct {
	Up     bool `json:"up"`
	Down   bool `json:"down"`
	Left   bool `json:"left"`
	Right  bool `json:"right"`
	Action bool `json:"action"`
}

// Game is a single-player minigame advanced one tick at a time.
// Implementations are not safe for concurrent use; a room owns one.
type Game interface {
	Kind() Kind
	// Step advances the simulation by one tick using the given input.
	Step(in Input)
	// Phase names the current state machine state.
	Phase() string
	Score() int
	// Over reports whether the current run has ended (won or lost).
	Over() bool
	// Level is the difficulty reached in the current run (1 when the game has no levels).
	Level() int
	// Snapshot returns a JSON-serializable view of the game for clients.
	Snapshot() any
	// Reset returns the game to its menu with a fresh run.
	Reset()
}

// Edges tracks Action transitions between ticks.
type Edges struct {
	prev bool
}

// Update records the current Action state and reports whether it was just
// pressed or just released.
func (e *Edges) Update(action bool) (pressed, released bool) {
	pressed = action && !e.prev
	released = !action && e.prev
	e.prev = action
	return pressed, released
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Axis converts a pair of opposing buttons into -1, 0 or 1.
func Axis(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	}
	return 0
}
