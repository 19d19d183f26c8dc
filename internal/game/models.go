package game

import (
	"time"

	"gorm.io/gorm"
)

// User stores a signed-in player's identity. UID is the identity provider's
// stable id; everything else is refreshed on each login.
type User struct {
	gorm.Model
	UID         string    `json:"uid" gorm:"uniqueIndex;size:128"`
	Email       string    `json:"email" gorm:"index"`
	Username    string    `json:"username" gorm:"size:64"`
	DisplayName string    `json:"displayname" gorm:"size:128"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// Score is one finished run of a minigame.
type Score struct {
	gorm.Model
	UserUID    string `json:"-" gorm:"index;size:128"`
	PlayerName string `json:"player_name"`
	Game       string `json:"game" gorm:"index;size:32"`
	Room       string `json:"room" gorm:"size:16"`
	Score      int    `json:"score"`
	Level      int    `json:"level"`
	Ticks      int    `json:"ticks"`
	Outcome    string `json:"outcome" gorm:"size:16"`
	Won        bool   `json:"won"`
}

// GameStats aggregates one user's runs of one game.
type GameStats struct {
	Game       string `json:"game"`
	Plays      int    `json:"plays"`
	Wins       int    `json:"wins"`
	BestScore  int    `json:"best_score"`
	TotalScore int    `json:"total_score"`
}

// PlayerStats is the response body of the player stats endpoint.
type PlayerStats struct {
	UID   string      `json:"uid"`
	Games []GameStats `json:"games"`
}

// LeaderboardEntry is a user's best run of a game.
type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	UserUID     string    `json:"-"`
	DisplayName string    `json:"displayname"`
	Score       int       `json:"score"`
	Level       int       `json:"level"`
	AchievedAt  time.Time `json:"achieved_at"`
}
