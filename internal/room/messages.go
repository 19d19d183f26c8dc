package room

import (
	"time"

	"github.com/ericogr/laro-arcade/internal/engine"
)

// Conn is the room's view of a connected browser. Send must not block.
type Conn interface {
	Send([]byte) error
	Close() error
}

// Join is issued once the client's hello has been parsed.
type Join struct {
	Conn  Conn
	UID   string
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	ClientID string
	Role     string
}

// Input carries the latest controls for a client.
type Input struct {
	ClientID string
	Input    engine.Input
}

// Leave is issued on disconnect.
type Leave struct {
	ClientID string
}

// Result describes a finished run. UserUID is empty for anonymous players.
type Result struct {
	Room       string
	Game       engine.Kind
	UserUID    string
	PlayerName string
	Score      int
	Level      int
	Ticks      int
	Outcome    string
	FinishedAt time.Time
}
