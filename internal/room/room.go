package room

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/engine"
	"github.com/ericogr/laro-arcade/internal/logging"
	"github.com/ericogr/laro-arcade/internal/protocol"
)

const (
	menuPhase     = "menu"
	defaultTickHz = 60
)

type client struct {
	conn Conn
	role string
	uid  string
	name string
}

// Room runs one game on its own goroutine. All game and client state is
// owned by Run; other goroutines talk to it through Submit.
type Room struct {
	Code string
	Kind engine.Kind

	// OnFinish is called on the room goroutine once per completed run.
	OnFinish func(Result)
	// OnEmpty is called when the last client leaves.
	OnEmpty func(code string)

	inbox          chan any
	tickHz         int
	broadcastEvery int
	game           engine.Game
	clients        map[string]*client
	playerID       string
	latest         engine.Input
	// pressed and released latch action edges seen between ticks so a
	// down/up pair inside one tick interval still reaches the game.
	pressed        bool
	released       bool
	nextID         int
	tick           int
	runTicks       int
	reported       bool

	lastActivity atomic.Int64
	numClients   atomic.Int32
	now          func() time.Time

	quit     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func New(code string, g engine.Game, tickHz, broadcastHz int) *Room {
	if tickHz <= 0 {
		tickHz = defaultTickHz
	}
	broadcastEvery := 1
	if broadcastHz > 0 && broadcastHz < tickHz {
		broadcastEvery = tickHz / broadcastHz
	}
	r := &Room{
		Code:           code,
		Kind:           g.Kind(),
		inbox:          make(chan any, 256),
		tickHz:         tickHz,
		broadcastEvery: broadcastEvery,
		game:           g,
		clients:        make(map[string]*client),
		nextID:         1,
		now:            time.Now,
		quit:           make(chan struct{}),
		done:           make(chan struct{}),
	}
	r.touch()
	return r
}

func (r *Room) TickHz() int { return r.tickHz }

// Submit queues a command for the room goroutine. It reports false once the
// room has stopped.
func (r *Room) Submit(cmd any) bool {
	select {
	case <-r.done:
		return false
	default:
	}
	select {
	case <-r.done:
		return false
	case r.inbox <- cmd:
		return true
	}
}

// Stop ends the room loop. Safe to call more than once and from the room goroutine.
func (r *Room) Stop() {
	r.stopOnce.Do(func() { close(r.quit) })
}

// Done is closed after Run returns.
func (r *Room) Done() <-chan struct{} { return r.done }

// NumClients returns the current number of connected clients.
func (r *Room) NumClients() int { return int(r.numClients.Load()) }

// IdleFor reports how long the room has gone without player activity.
func (r *Room) IdleFor(now time.Time) time.Duration {
	return now.Sub(time.Unix(0, r.lastActivity.Load()))
}

func (r *Room) touch() {
	r.lastActivity.Store(r.now().UnixNano())
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()
	defer close(r.done)
	defer r.closeAll()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.step()
		}
	}
}

func (r *Room) step() {
	wasOver := r.game.Over()
	r.game.Step(r.tickInput())
	r.tick++

	if wasOver && !r.game.Over() {
		r.runTicks = 0
		r.reported = false
	}
	if !r.game.Over() && r.game.Phase() != menuPhase {
		r.runTicks++
	}
	if r.game.Over() && !r.reported {
		r.reported = true
		r.finish()
	}
	if r.tick%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

// tickInput returns the input for the next Step. A press that was already
// released is held for this tick; a release followed by a new press is
// reported as released for this tick. The held state lands on the next one.
func (r *Room) tickInput() engine.Input {
	in := r.latest
	switch {
	case r.pressed && !in.Action:
		in.Action = true
	case r.released && in.Action:
		in.Action = false
	}
	r.pressed, r.released = false, false
	return in
}

func (r *Room) setInput(in engine.Input) {
	if in.Action && !r.latest.Action {
		r.pressed = true
	}
	if !in.Action && r.latest.Action {
		r.released = true
	}
	r.latest = in
}

func (r *Room) resetInput() {
	r.latest = engine.Input{}
	r.pressed, r.released = false, false
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		id := fmt.Sprintf("c%d", r.nextID)
		r.nextID++
		role := protocol.RoleSpectator
		if r.playerID == "" {
			role = protocol.RolePlayer
			r.playerID = id
			r.resetInput()
			r.touch()
		}
		r.clients[id] = &client{conn: c.Conn, role: role, uid: c.UID, name: c.Name}
		r.numClients.Store(int32(len(r.clients)))
		if c.Reply != nil {
			c.Reply <- JoinResult{ClientID: id, Role: role}
		}
		r.sendWelcome(id)
		r.sendStateTo(r.clients[id])
	case Input:
		if c.ClientID != r.playerID || r.playerID == "" {
			return
		}
		r.setInput(c.Input)
		r.touch()
	case Leave:
		r.removeClient(c.ClientID)
		if len(r.clients) == 0 && r.OnEmpty != nil {
			r.OnEmpty(r.Code)
		}
	}
}

func (r *Room) removeClient(id string) {
	c, ok := r.clients[id]
	if !ok {
		return
	}
	_ = c.conn.Close()
	delete(r.clients, id)
	r.numClients.Store(int32(len(r.clients)))
	if id == r.playerID {
		r.playerID = ""
		r.resetInput()
	}
}

func (r *Room) closeAll() {
	for id := range r.clients {
		r.removeClient(id)
	}
}

func (r *Room) finish() {
	res := Result{
		Room:       r.Code,
		Game:       r.Kind,
		Score:      r.game.Score(),
		Level:      r.game.Level(),
		Ticks:      r.runTicks,
		Outcome:    r.game.Phase(),
		FinishedAt: r.now(),
	}
	if p, ok := r.clients[r.playerID]; ok {
		res.UserUID = p.uid
		res.PlayerName = p.name
	}
	b, err := protocol.Encode(protocol.MsgFinished, protocol.Finished{
		Game:  string(res.Game),
		Score: res.Score,
		Level: res.Level,
		Ticks: res.Ticks,
	})
	if err == nil {
		r.broadcast(b)
	}
	logging.Info("run finished", logging.Fields{constants.LogFieldRoom: r.Code, constants.LogFieldGame: string(r.Kind), constants.LogFieldScore: res.Score, "outcome": res.Outcome})
	if r.OnFinish != nil {
		r.OnFinish(res)
	}
}

func (r *Room) snapshot() protocol.State {
	return protocol.State{
		Tick:  r.tick,
		Game:  string(r.Kind),
		Phase: r.game.Phase(),
		Score: r.game.Score(),
		Over:  r.game.Over(),
		View:  r.game.Snapshot(),
	}
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.snapshot())
	if err != nil {
		logging.Error("encode state failed", err, logging.Fields{constants.LogFieldRoom: r.Code})
		return
	}
	r.broadcast(b)
}

// broadcast sends b to every client, dropping clients whose send fails.
func (r *Room) broadcast(b []byte) {
	var failed []string
	for id, c := range r.clients {
		if err := c.conn.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
	if len(failed) > 0 && len(r.clients) == 0 && r.OnEmpty != nil {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) sendWelcome(id string) {
	c := r.clients[id]
	b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		Room:     r.Code,
		ClientID: id,
		Role:     c.role,
		Game:     string(r.Kind),
		TickHz:   r.tickHz,
	})
	if err != nil {
		return
	}
	_ = c.conn.Send(b)
}

func (r *Room) sendStateTo(c *client) {
	b, err := protocol.Encode(protocol.MsgState, r.snapshot())
	if err != nil {
		return
	}
	_ = c.conn.Send(b)
}
