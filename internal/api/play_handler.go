package api

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/ericogr/laro-arcade/internal/constants"
	"github.com/ericogr/laro-arcade/internal/engine"
	"github.com/ericogr/laro-arcade/internal/logging"
	"github.com/ericogr/laro-arcade/internal/protocol"
	"github.com/ericogr/laro-arcade/internal/room"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	wsReadLimit   = 4096
	wsPongWait    = 60 * time.Second
	wsPingPeriod  = 25 * time.Second
	wsWriteWait   = 10 * time.Second
	wsHelloWait   = 10 * time.Second
	wsSendBuffer  = 64
	anonymousName = "guest"
	maxPlayerName = 32
)

var (
	errConnClosed = errors.New("connection closed")
	errSlowClient = errors.New("client send buffer full")
)

// CreatePlay opens a new room for a game and returns its join code.
func (h *GameHandler) CreatePlay(c *gin.Context) {
	kind, err := engine.ParseKind(c.Param("game"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownGame})
		return
	}
	r, err := h.rooms.CreateRoom(kind)
	if err != nil {
		logging.Error("failed to create room", err, logging.Fields{constants.LogFieldGame: string(kind)})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateRoom})
		return
	}
	logging.Info("room created", logging.Fields{constants.LogFieldRoom: r.Code, constants.LogFieldGame: string(kind), constants.LogFieldUID: contextUID(c)})
	c.JSON(http.StatusCreated, gin.H{"code": r.Code, "game": kind})
}

// PlayWS upgrades to a websocket and attaches the client to a room. The first
// frame must be a hello; after that the client sends input frames and
// receives state frames until it disconnects.
func (h *GameHandler) PlayWS(c *gin.Context) {
	r, err := h.rooms.Get(c.Param("game"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRoomNotFound})
		return
	}
	if !websocket.IsWebSocketUpgrade(c.Request) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrWebsocketUpgradeRequired})
		return
	}
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader has already written the error response
		logging.Warn("websocket upgrade failed", err, logging.Fields{constants.LogFieldRoom: r.Code})
		return
	}

	conn := newWSConn(ws)
	go conn.writePump()
	defer conn.Close()

	ws.SetReadLimit(wsReadLimit)
	_ = ws.SetReadDeadline(time.Now().Add(wsHelloWait))
	hello, err := readHello(ws)
	if err != nil {
		sendError(conn, err.Error())
		return
	}
	_ = ws.SetReadDeadline(time.Now().Add(wsPongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	name := contextName(c)
	if name == "" {
		name = playerName(hello.Name)
	}
	reply := make(chan room.JoinResult, 1)
	if !r.Submit(room.Join{Conn: conn, UID: contextUID(c), Name: name, Reply: reply}) {
		sendError(conn, constants.ErrRoomNotFound)
		return
	}
	var joined room.JoinResult
	select {
	case joined = <-reply:
	case <-r.Done():
		sendError(conn, constants.ErrRoomNotFound)
		return
	}
	fields := logging.Fields{constants.LogFieldRoom: r.Code, constants.LogFieldClientID: joined.ClientID, constants.LogFieldRole: joined.Role}
	logging.Info("client joined", fields)
	defer logging.Info("client left", fields)

	for {
		_, b, err := ws.ReadMessage()
		if err != nil {
			r.Submit(room.Leave{ClientID: joined.ClientID})
			return
		}
		env, err := protocol.DecodeEnvelope(b)
		if err != nil {
			sendError(conn, err.Error())
			continue
		}
		switch env.T {
		case protocol.MsgInput:
			in, err := protocol.DecodePayload[protocol.Input](env)
			if err != nil {
				sendError(conn, err.Error())
				continue
			}
			_ = ws.SetReadDeadline(time.Now().Add(wsPongWait))
			if !r.Submit(room.Input{ClientID: joined.ClientID, Input: in}) {
				return
			}
		case protocol.MsgHello:
			// repeated hellos are harmless
		default:
			sendError(conn, "unknown message type "+env.T)
		}
	}
}

func readHello(ws *websocket.Conn) (protocol.Hello, error) {
	_, b, err := ws.ReadMessage()
	if err != nil {
		return protocol.Hello{}, err
	}
	env, err := protocol.DecodeEnvelope(b)
	if err != nil {
		return protocol.Hello{}, err
	}
	if env.T != protocol.MsgHello {
		return protocol.Hello{}, errors.New("expected hello")
	}
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		return protocol.Hello{}, err
	}
	if hello.V != protocol.Version {
		return protocol.Hello{}, errors.New("unsupported protocol version")
	}
	return hello, nil
}

func playerName(s string) string {
	r := []rune(s)
	if len(r) > maxPlayerName {
		r = r[:maxPlayerName]
	}
	if len(r) == 0 {
		return anonymousName
	}
	return string(r)
}

func sendError(conn *wsConn, msg string) {
	b, err := protocol.Encode(protocol.MsgError, protocol.Error{Message: msg})
	if err != nil {
		return
	}
	_ = conn.Send(b)
}

// wsConn adapts a websocket to room.Conn. Frames are queued and written by
// writePump so a slow browser never blocks the room goroutine.
type wsConn struct {
	ws        *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func newWSConn(ws *websocket.Conn) *wsConn {
	return &wsConn{ws: ws, send: make(chan []byte, wsSendBuffer), done: make(chan struct{})}
}

func (w *wsConn) Send(b []byte) error {
	select {
	case <-w.done:
		return errConnClosed
	default:
	}
	select {
	case w.send <- b:
		return nil
	default:
		return errSlowClient
	}
}

func (w *wsConn) Close() error {
	w.closeOnce.Do(func() { close(w.done) })
	return nil
}

func (w *wsConn) write(b []byte) error {
	_ = w.ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return w.ws.WriteMessage(websocket.TextMessage, b)
}

func (w *wsConn) writePump() {
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		_ = w.ws.Close()
	}()
	for {
		select {
		case b := <-w.send:
			if err := w.write(b); err != nil {
				w.Close()
				return
			}
		case <-ticker.C:
			_ = w.ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := w.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				w.Close()
				return
			}
		case <-w.done:
			// flush what is queued, then say goodbye
			for {
				select {
				case b := <-w.send:
					if err := w.write(b); err != nil {
						return
					}
				default:
					_ = w.ws.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
						time.Now().Add(wsWriteWait))
					return
				}
			}
		}
	}
}
