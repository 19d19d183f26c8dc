package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/ericogr/laro-arcade/internal/game"
)

func newTestRepo(t *testing.T) Repository {
	t.Helper()
	// Named shared-cache database so every pooled connection sees the same
	// schema, while tests stay isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := OpenAndMigrate(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewSQLiteRepository(db)
}

func TestUpsertUserRefreshesProfile(t *testing.T) {
	repo := newTestRepo(t)

	first := time.Now().Add(-time.Hour)
	if err := repo.UpsertUser(&game.User{UID: "u1", Email: "ana@example.com", Username: "ana", DisplayName: "ana", LastLoginAt: first}); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := repo.UpsertUser(&game.User{UID: "u1", Email: "ana@example.org", Username: "ana", DisplayName: "Ana R.", LastLoginAt: time.Now()}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	u, err := repo.GetUserByUID("u1")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if u.Email != "ana@example.org" || u.DisplayName != "Ana R." {
		t.Fatalf("profile not refreshed: %+v", u)
	}
	if !u.LastLoginAt.After(first) {
		t.Fatalf("last login not refreshed: %v", u.LastLoginAt)
	}
}

func TestGetUserByUIDMissing(t *testing.T) {
	repo := newTestRepo(t)
	if _, err := repo.GetUserByUID("nobody"); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRecentScoresNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	for i := 1; i <= 3; i++ {
		if err := repo.SaveScore(&game.Score{UserUID: "u1", Game: "jolen", Score: i * 10}); err != nil {
			t.Fatalf("save score: %v", err)
		}
	}
	_ = repo.SaveScore(&game.Score{UserUID: "u2", Game: "jolen", Score: 999})

	scores, err := repo.GetRecentScores("u1", 2)
	if err != nil {
		t.Fatalf("recent scores: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 30 || scores[1].Score != 20 {
		t.Fatalf("unexpected scores %+v", scores)
	}
}

func TestStatsByUIDAggregatesPerGame(t *testing.T) {
	repo := newTestRepo(t)
	runs := []game.Score{
		{UserUID: "u1", Game: "jolen", Score: 50, Won: true},
		{UserUID: "u1", Game: "jolen", Score: 20},
		{UserUID: "u1", Game: "patintero", Score: 3},
		{UserUID: "u2", Game: "jolen", Score: 70, Won: true},
	}
	for i := range runs {
		if err := repo.SaveScore(&runs[i]); err != nil {
			t.Fatalf("save score: %v", err)
		}
	}

	stats, err := repo.GetStatsByUID("u1")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats.Games) != 2 {
		t.Fatalf("expected 2 games, got %+v", stats.Games)
	}
	j := stats.Games[0]
	if j.Game != "jolen" || j.Plays != 2 || j.Wins != 1 || j.BestScore != 50 || j.TotalScore != 70 {
		t.Fatalf("unexpected jolen stats %+v", j)
	}
	if p := stats.Games[1]; p.Game != "patintero" || p.Plays != 1 || p.BestScore != 3 {
		t.Fatalf("unexpected patintero stats %+v", p)
	}

	empty, err := repo.GetStatsByUID("nobody")
	if err != nil || len(empty.Games) != 0 {
		t.Fatalf("expected empty stats, got %+v, %v", empty, err)
	}
}

func TestTopScoresBestPerUserEarliestWinsTies(t *testing.T) {
	repo := newTestRepo(t)
	_ = repo.UpsertUser(&game.User{UID: "u2", Email: "b@example.com", Username: "b", DisplayName: "Bea"})

	runs := []game.Score{
		{UserUID: "u1", PlayerName: "a", Game: "luksong_baka", Score: 40},
		{UserUID: "u2", PlayerName: "b", Game: "luksong_baka", Score: 60},
		{UserUID: "u1", PlayerName: "a", Game: "luksong_baka", Score: 60},
		{UserUID: "u3", PlayerName: "c", Game: "luksong_baka", Score: 10},
		{UserUID: "u3", PlayerName: "c", Game: "jolen", Score: 500},
	}
	for i := range runs {
		if err := repo.SaveScore(&runs[i]); err != nil {
			t.Fatalf("save score: %v", err)
		}
	}

	top, err := repo.GetTopScores("luksong_baka", 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected one entry per user, got %+v", top)
	}
	// u2 reached 60 before u1 did
	if top[0].UserUID != "u2" || top[0].DisplayName != "Bea" || top[0].Rank != 1 {
		t.Fatalf("unexpected first entry %+v", top[0])
	}
	if top[1].UserUID != "u1" || top[1].Score != 60 || top[1].DisplayName != "a" {
		t.Fatalf("unexpected second entry %+v", top[1])
	}
	if top[2].UserUID != "u3" || top[2].Score != 10 {
		t.Fatalf("unexpected third entry %+v", top[2])
	}

	limited, _ := repo.GetTopScores("luksong_baka", 1)
	if len(limited) != 1 {
		t.Fatalf("limit not applied: %+v", limited)
	}
}

func TestTopScoresLimitCountsUsersNotRuns(t *testing.T) {
	repo := newTestRepo(t)
	for i := 0; i < 5; i++ {
		if err := repo.SaveScore(&game.Score{UserUID: "grinder", PlayerName: "g", Game: "patintero", Score: 100 + i}); err != nil {
			t.Fatalf("save score: %v", err)
		}
	}
	if err := repo.SaveScore(&game.Score{UserUID: "casual", PlayerName: "c", Game: "patintero", Score: 3}); err != nil {
		t.Fatalf("save score: %v", err)
	}
	// a deleted run must not count as anyone's best
	gone := game.Score{UserUID: "casual", PlayerName: "c", Game: "patintero", Score: 999}
	if err := repo.SaveScore(&gone); err != nil {
		t.Fatalf("save score: %v", err)
	}
	if err := repo.(*sqliteRepository).db.Delete(&gone).Error; err != nil {
		t.Fatalf("delete score: %v", err)
	}

	top, err := repo.GetTopScores("patintero", 2)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected two users, got %+v", top)
	}
	if top[0].UserUID != "grinder" || top[0].Score != 104 || top[0].Rank != 1 {
		t.Fatalf("unexpected first entry %+v", top[0])
	}
	if top[1].UserUID != "casual" || top[1].Score != 3 || top[1].Rank != 2 {
		t.Fatalf("unexpected second entry %+v", top[1])
	}
	if top[1].AchievedAt.IsZero() {
		t.Fatalf("achieved_at not loaded: %+v", top[1])
	}
}
