// Package protocol defines the JSON messages exchanged with browsers over
// the play websocket. Every frame is an Envelope whose payload type is
// named by T.
package protocol

import (
	"encoding/json"

	"github.com/ericogr/laro-arcade/internal/engine"
)

// Client -> server
const (
	MsgHello = "hello"
	MsgInput = "input"
)

// Server -> client
const (
	MsgWelcome  = "welcome"
	MsgState    = "state"
	MsgFinished = "finished"
	MsgError    = "error"
)

const Version = 1

const (
	RolePlayer    = "player"
	RoleSpectator = "spectator"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"`
}

type Hello struct {
	V    int    `json:"v"`
	Name string `json:"name,omitempty"`
}

// Input carries the held buttons for the next tick.
type Input = engine.Input

type Welcome struct {
	Room     string `json:"room"`
	ClientID string `json:"client_id"`
	Role     string `json:"role"`
	Game     string `json:"game"`
	TickHz   int    `json:"tick_hz"`
}

type State struct {
	Tick  int    `json:"tick"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
	Score int    `json:"score"`
	Over  bool   `json:"over"`
	View  any    `json:"view"`
}

type Finished struct {
	Game  string `json:"game"`
	Score int    `json:"score"`
	Level int    `json:"level"`
	Ticks int    `json:"ticks"`
}

type Error struct {
	Message string `json:"message"`
}
