package service

import (
	"fmt"

	"github.com/ericogr/laro-arcade/internal/config"
	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/engine"
	"github.com/ericogr/laro-arcade/internal/engine/jolen"
	"github.com/ericogr/laro-arcade/internal/game"
	"github.com/ericogr/laro-arcade/internal/logging"
	"github.com/ericogr/laro-arcade/internal/room"
)

// ScoreSaver is the slice of the repository RecordResult needs.
type ScoreSaver interface {
	SaveScore(s *game.Score) error
}

// Won decides whether a finished run counts as a win:
// clearing the ring in Jolen, reaching the top level in Luksong Baka and
// completing at least one crossing in Patintero.
func Won(games config.GamesConfig, res room.Result) bool {
	switch res.Game {
	case engine.KindJolen:
		return res.Outcome == jolen.PhaseCleared
	case engine.KindLuksongBaka:
		return res.Level >= games.LuksongBaka.MaxLevel
	case engine.KindPatintero:
		return res.Level > 1
	}
	return false
}

// RecordResult stores a finished run for a signed-in player. Runs by
// anonymous players are not kept; recorded reports whether a row was written.
func RecordResult(repo ScoreSaver, games config.GamesConfig, res room.Result) (recorded bool, err error) {
	if res.UserUID == "" {
		return false, nil
	}
	s := &game.Score{
		UserUID:    res.UserUID,
		PlayerName: res.PlayerName,
		Game:       string(res.Game),
		Room:       res.Room,
		Score:      res.Score,
		Level:      res.Level,
		Ticks:      res.Ticks,
		Outcome:    res.Outcome,
		Won:        Won(games, res),
	}
	if err := repo.SaveScore(s); err != nil {
		return false, fmt.Errorf("save score: %w", err)
	}
	return true, nil
}

// ResultRecorder returns a room finish callback that records runs and logs
// failures. It runs on the room goroutine, so saving happens off it.
func ResultRecorder(repo ScoreSaver, games config.GamesConfig) func(room.Result) {
	return func(res room.Result) {
		go func() {
			recorded, err := RecordResult(repo, games, res)
			fields := logging.Fields{
				constants.LogFieldRoom:  res.Room,
				constants.LogFieldGame:  string(res.Game),
				constants.LogFieldUID:   res.UserUID,
				constants.LogFieldScore: res.Score,
			}
			if err != nil {
				logging.Error("failed to record result", err, fields)
				return
			}
			if recorded {
				logging.Info("result recorded", fields)
			}
		}()
	}
}
