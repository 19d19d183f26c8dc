package api

import (
	"github.com/ericogr/laro-arcade/internal/room"
	"github.com/ericogr/laro-arcade/internal/storage"
	"github.com/gorilla/websocket"
)

// GameHandler groups the lobby, leaderboard and play handlers.
type GameHandler struct {
	repo     storage.Repository
	rooms    *room.Manager
	upgrader websocket.Upgrader
}

// NewGameHandler creates a GameHandler. Websocket upgrades are accepted from
// allowedOrigins only; an empty list accepts any origin.
func NewGameHandler(repo storage.Repository, rooms *room.Manager, allowedOrigins []string) *GameHandler {
	return &GameHandler{
		repo:  repo,
		rooms: rooms,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
	}
}
