package api

import (
	"errors"
	"sync"
	"testing"

	"github.com/ericogr/laro-arcade/internal/config"
	"github.com/ericogr/laro-arcade/internal/game"
	"github.com/ericogr/laro-arcade/internal/room"
	"github.com/ericogr/laro-arcade/internal/service"
	"github.com/ericogr/laro-arcade/internal/storage"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockRepo struct {
	mu        sync.Mutex
	users     map[string]game.User
	upsertErr error
	scores    []game.Score
	top       []game.LeaderboardEntry
	topErr    error
	stats     *game.PlayerStats
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: make(map[string]game.User)}
}

func (m *mockRepo) UpsertUser(u *game.User) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.UID] = *u
	return nil
}

func (m *mockRepo) GetUserByUID(uid string) (*game.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[uid]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return &u, nil
}

func (m *mockRepo) SaveScore(s *game.Score) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores = append(m.scores, *s)
	return nil
}

func (m *mockRepo) GetRecentScores(uid string, limit int) ([]game.Score, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []game.Score
	for _, s := range m.scores {
		if s.UserUID == uid {
			out = append(out, s)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *mockRepo) GetStatsByUID(uid string) (*game.PlayerStats, error) {
	if m.stats == nil {
		return &game.PlayerStats{UID: uid, Games: []game.GameStats{}}, nil
	}
	return m.stats, nil
}

func (m *mockRepo) GetTopScores(gameKey string, limit int) ([]game.LeaderboardEntry, error) {
	if m.topErr != nil {
		return nil, m.topErr
	}
	return m.top, nil
}

var errBoom = errors.New("boom")

type testServer struct {
	router   *gin.Engine
	repo     *mockRepo
	rooms    *room.Manager
	sessions *Sessions
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	repo := newMockRepo()
	sessions, err := NewSessions("test-secret", false)
	if err != nil {
		t.Fatalf("sessions: %v", err)
	}
	games := config.Default().Games
	rooms := room.NewManager(service.Factory(games), room.Options{
		TickHz:      60,
		BroadcastHz: 30,
		OnFinish:    service.ResultRecorder(repo, games),
	})
	t.Cleanup(rooms.Shutdown)
	handler := NewGameHandler(repo, rooms, nil)
	auth := NewAuthHandler(repo, sessions, nil)
	return &testServer{
		router:   NewRouter(handler, auth, sessions),
		repo:     repo,
		rooms:    rooms,
		sessions: sessions,
	}
}
