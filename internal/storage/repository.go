package storage

import (
	"errors"

	"github.com/ericogr/laro-arcade/internal/game"
)

var ErrUserNotFound = errors.New("user not found")

type Repository interface {
	// UpsertUser inserts the user or refreshes the profile stored under its UID.
	UpsertUser(u *game.User) error
	GetUserByUID(uid string) (*game.User, error)
	SaveScore(s *game.Score) error
	// GetRecentScores returns the user's latest runs, newest first.
	GetRecentScores(uid string, limit int) ([]game.Score, error)
	// GetStatsByUID aggregates the user's runs per game. Users without runs
	// get an empty list, not an error.
	GetStatsByUID(uid string) (*game.PlayerStats, error)
	// GetTopScores returns the best run per user for a game, highest first.
	// Equal scores are ranked by who got there first.
	GetTopScores(gameKey string, limit int) ([]game.LeaderboardEntry, error)
}
