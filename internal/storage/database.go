package storage

import (
	"github.com/ericogr/laro-arcade/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database and keeps the schema current via
// AutoMigrate. Delete the database file to start over.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.User{}, &game.Score{}); err != nil {
		return nil, err
	}
	// Covers the leaderboard scan: best runs of a game first.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_scores_game_score ON scores(game, score DESC, created_at);").Error; err != nil {
		return nil, err
	}
	return db, nil
}
