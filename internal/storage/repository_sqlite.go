package storage

import (
	"errors"

	"github.com/ericogr/laro-arcade/internal/game"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

func (r *sqliteRepository) UpsertUser(u *game.User) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "username", "display_name", "last_login_at", "updated_at"}),
	}).Create(u).Error
}

func (r *sqliteRepository) GetUserByUID(uid string) (*game.User, error) {
	var u game.User
	if err := r.db.Where("uid = ?", uid).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *sqliteRepository) SaveScore(s *game.Score) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetRecentScores(uid string, limit int) ([]game.Score, error) {
	var scores []game.Score
	if err := r.db.Where("user_uid = ?", uid).
		Order("created_at DESC").
		Order("id DESC").
		Limit(clampLimit(limit)).
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *sqliteRepository) GetStatsByUID(uid string) (*game.PlayerStats, error) {
	stats := make([]game.GameStats, 0)
	if err := r.db.Model(&game.Score{}).
		Select("game, count(*) AS plays, sum(CASE WHEN won THEN 1 ELSE 0 END) AS wins, max(score) AS best_score, sum(score) AS total_score").
		Where("user_uid = ?", uid).
		Group("game").
		Order("game").
		Scan(&stats).Error; err != nil {
		return nil, err
	}
	return &game.PlayerStats{UID: uid, Games: stats}, nil
}

// topScoreIDsQuery picks each user's best run of a game, earliest first on
// ties, and returns the ids of the top runs in rank order.
const topScoreIDsQuery = `
SELECT id FROM (
	SELECT id, score, created_at,
		ROW_NUMBER() OVER (PARTITION BY user_uid ORDER BY score DESC, created_at ASC, id ASC) AS rn
	FROM scores
	WHERE game = ? AND deleted_at IS NULL
) best
WHERE rn = 1
ORDER BY score DESC, created_at ASC, id ASC
LIMIT ?`

func (r *sqliteRepository) GetTopScores(gameKey string, limit int) ([]game.LeaderboardEntry, error) {
	limit = clampLimit(limit)

	var ids []uint
	if err := r.db.Raw(topScoreIDsQuery, gameKey, limit).Scan(&ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []game.LeaderboardEntry{}, nil
	}

	var rows []game.Score
	if err := r.db.Select("id", "user_uid", "player_name", "score", "level", "created_at").
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]game.Score, len(rows))
	for _, s := range rows {
		byID[s.ID] = s
	}

	entries := make([]game.LeaderboardEntry, 0, len(ids))
	uids := make([]string, 0, len(ids))
	for _, id := range ids {
		s, ok := byID[id]
		if !ok {
			continue
		}
		uids = append(uids, s.UserUID)
		entries = append(entries, game.LeaderboardEntry{
			Rank:        len(entries) + 1,
			UserUID:     s.UserUID,
			DisplayName: s.PlayerName,
			Score:       s.Score,
			Level:       s.Level,
			AchievedAt:  s.CreatedAt,
		})
	}
	if len(uids) == 0 {
		return entries, nil
	}

	// Prefer the current profile name over the one stored with the run.
	var users []game.User
	if err := r.db.Select("uid", "display_name").Where("uid IN ?", uids).Find(&users).Error; err != nil {
		return nil, err
	}
	names := make(map[string]string, len(users))
	for _, u := range users {
		if u.DisplayName != "" {
			names[u.UID] = u.DisplayName
		}
	}
	for i := range entries {
		if n, ok := names[entries[i].UserUID]; ok {
			entries[i].DisplayName = n
		}
	}
	return entries, nil
}
