package room

import (
	"crypto/rand"
	"errors"
	"math/big"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ericogr/laro-arcade/internal/engine"
)

var ErrRoomNotFound = errors.New("room not found")

// Factory builds a fresh game for a room.
type Factory func(kind engine.Kind) (engine.Game, error)

type Options struct {
	TickHz      int
	BroadcastHz int
	// OnFinish receives every completed run from every room.
	OnFinish func(Result)
}

// Info is returned by the API for the room list.
type Info struct {
	Code    string `json:"code"`
	Game    string `json:"game"`
	Clients int    `json:"clients"`
}

// Manager holds the live rooms by code. Rooms are removed when their last
// client leaves or when they sit idle past the reaper timeout.
type Manager struct {
	mu      sync.RWMutex
	rooms   map[string]*Room
	factory Factory
	opts    Options
}

func NewManager(factory Factory, opts Options) *Manager {
	return &Manager{
		rooms:   make(map[string]*Room),
		factory: factory,
		opts:    opts,
	}
}

const (
	codeChars  = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength = 6
)

// CreateRoom builds a game of the given kind, starts its room under a fresh
// code and returns it.
func (m *Manager) CreateRoom(kind engine.Kind) (*Room, error) {
	g, err := m.factory(kind)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	code := generateCode(codeLength)
	for m.rooms[code] != nil {
		code = generateCode(codeLength)
	}
	r := New(code, g, m.opts.TickHz, m.opts.BroadcastHz)
	r.OnFinish = m.opts.OnFinish
	r.OnEmpty = m.removeRoom
	m.rooms[code] = r
	go r.Run()
	return r, nil
}

// Get looks a room up by code, case-insensitively.
func (m *Manager) Get(code string) (*Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return r, nil
}

func (m *Manager) removeRoom(code string) {
	m.mu.Lock()
	r, ok := m.rooms[code]
	delete(m.rooms, code)
	m.mu.Unlock()
	if ok {
		r.Stop()
	}
}

// List returns all live rooms ordered by code.
func (m *Manager) List() []Info {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Info, 0, len(m.rooms))
	for code, r := range m.rooms {
		out = append(out, Info{Code: code, Game: string(r.Kind), Clients: r.NumClients()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// ReapIdle stops rooms whose player has been inactive longer than timeout
// and returns their codes.
func (m *Manager) ReapIdle(now time.Time, timeout time.Duration) []string {
	m.mu.RLock()
	var idle []string
	for code, r := range m.rooms {
		if r.IdleFor(now) > timeout {
			idle = append(idle, code)
		}
	}
	m.mu.RUnlock()
	for _, code := range idle {
		m.removeRoom(code)
	}
	sort.Strings(idle)
	return idle
}

// Shutdown stops every room and waits for their loops to exit.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	rooms := make([]*Room, 0, len(m.rooms))
	for code, r := range m.rooms {
		rooms = append(rooms, r)
		delete(m.rooms, code)
	}
	m.mu.Unlock()
	for _, r := range rooms {
		r.Stop()
		<-r.Done()
	}
}

func generateCode(n int) string {
	b := make([]byte, n)
	max := big.NewInt(int64(len(codeChars)))
	for i := range b {
		idx, _ := rand.Int(rand.Reader, max)
		b[i] = codeChars[idx.Int64()]
	}
	return string(b)
}
