package service

import (
	"github.com/ericogr/laro-arcade/internal/config"
	"github.com/ericogr/laro-arcade/internal/engine"
	"github.com/ericogr/laro-arcade/internal/engine/jolen"
	"github.com/ericogr/laro-arcade/internal/engine/luksongbaka"
	"github.com/ericogr/laro-arcade/internal/engine/patintero"
)

// GameInfo describes a minigame for the lobby.
type GameInfo struct {
	Kind        engine.Kind       `json:"kind"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Controls    map[string]string `json:"controls"`
}

var catalog = []GameInfo{
	{
		Kind:        engine.KindJolen,
		Title:       "Jolen",
		Description: "Flick your marble into the ring and knock out every target before you run out of shots.",
		Controls: map[string]string{
			"left/right": "aim",
			"action":     "hold to charge, release to shoot",
		},
	},
	{
		Kind:        engine.KindPatintero,
		Title:       "Patintero",
		Description: "Cross every guarded line and reach the far end without getting tagged.",
		Controls: map[string]string{
			"arrows": "run",
			"action": "start",
		},
	},
	{
		Kind:        engine.KindLuksongBaka,
		Title:       "Luksong Baka",
		Description: "Run up, time your jump angle and clear the baka as it grows taller each level.",
		Controls: map[string]string{
			"action": "start running, hold to charge the angle, release to jump",
		},
	},
}

// Catalog lists the playable games in display order.
func Catalog() []GameInfo {
	out := make([]GameInfo, len(catalog))
	copy(out, catalog)
	return out
}

// NewGame builds a fresh engine of the given kind from the configured tuning.
func NewGame(kind engine.Kind, games config.GamesConfig) (engine.Game, error) {
	switch kind {
	case engine.KindJolen:
		return jolen.New(games.Jolen), nil
	case engine.KindPatintero:
		return patintero.New(games.Patintero), nil
	case engine.KindLuksongBaka:
		return luksongbaka.New(games.LuksongBaka), nil
	default:
		return nil, engine.ErrUnknownKind
	}
}

// Factory adapts NewGame to the room manager.
func Factory(games config.GamesConfig) func(engine.Kind) (engine.Game, error) {
	return func(kind engine.Kind) (engine.Game, error) {
		return NewGame(kind, games)
	}
}
