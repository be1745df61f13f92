package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"restaurant/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Terminals only ever send
	// control frames, so this stays small.
	maxMessageSize = 512

	// Outbound event buffer per terminal. When it fills the terminal is
	// considered dead and the connection is torn down.
	sendBufferSize = 32
)

var errSendBufferFull = errors.New("terminal send buffer is full")

// Client is one kitchen terminal attached over a websocket. It implements
// ports.KitchenConnection: the notifier hands it events, the write pump
// drains them to the wire.
type Client struct {
	tenantID string
	role     ports.TerminalRole
	conn     *websocket.Conn
	send     chan []byte
	done     chan struct{}
	logger   *slog.Logger
}

func newClient(conn *websocket.Conn, tenantID string, role ports.TerminalRole, logger *slog.Logger) *Client {
	return &Client{
		tenantID: tenantID,
		role:     role,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// Send queues an event for delivery. It never blocks: a terminal that
// cannot keep up gets the error and the notifier drops the event.
func (c *Client) Send(event ports.KitchenEvent) error {
	payload, err := json.Marshal(newEventMessage(event))
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return websocket.ErrCloseSent
	default:
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return errSendBufferFull
	}
}

// Close tears the connection down. Safe to call more than once; the write
// pump exits when the underlying connection dies.
func (c *Client) Close() error {
	return c.conn.Close()
}

// readPump discards inbound frames and watches for disconnects. The
// terminal protocol is push-only, so the read side exists solely to run
// the pong handler and notice the peer going away.
func (c *Client) readPump(onExit func()) {
	defer func() {
		onExit()
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Warn("terminal read failed",
					"tenant_id", c.tenantID, "role", string(c.role), "error", err)
			}
			return
		}
	}
}

// writePump drains the send channel to the peer and keeps the connection
// alive with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			return
		}
	}
}
