package service

import (
	"github.com/ericogr/laro-arcade/internal/dedupe"
	"github.com/ericogr/laro-arcade/internal/engine"
	"github.com/ericogr/laro-arcade/internal/game"
	"github.com/ericogr/laro-arcade/internal/keys"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

type LeaderboardRepo interface {
	GetTopScores(gameKey string, limit int) ([]game.LeaderboardEntry, error)
}

type StatsRepo interface {
	GetStatsByUID(uid string) (*game.PlayerStats, error)
}

// ClampLimit maps a requested page size onto 1..MaxLeaderboardLimit, using
// the default for anything non-positive.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return MaxLeaderboardLimit
	}
	return limit
}

// Leaderboard returns the best run per player for a game. Concurrent calls
// for the same game and limit share one query.
func Leaderboard(repo LeaderboardRepo, kind engine.Kind, limit int) ([]game.LeaderboardEntry, error) {
	limit = ClampLimit(limit)
	v, err, _ := dedupe.LeaderboardGroup.Do(keys.LeaderboardKey(string(kind), limit), func() (interface{}, error) {
		return repo.GetTopScores(string(kind), limit)
	})
	if err != nil {
		return nil, err
	}
	entries := v.([]game.LeaderboardEntry)
	// callers may share the slice
	out := make([]game.LeaderboardEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// PlayerStats returns the per-game aggregates of a player, deduplicated like
// Leaderboard.
func PlayerStats(repo StatsRepo, uid string) (*game.PlayerStats, error) {
	v, err, _ := dedupe.StatsGroup.Do("stats:"+uid, func() (interface{}, error) {
		return repo.GetStatsByUID(uid)
	})
	if err != nil {
		return nil, err
	}
	s := *v.(*game.PlayerStats)
	s.Games = append([]game.GameStats(nil), s.Games...)
	return &s, nil
}
