package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// client is one websocket connection, exposing the lobby's Conn
// capability. Writes are serialized because match resolution can
// answer both sides from a single read.
type client struct {
	id   uuid.UUID
	conn *websocket.Conn

	writeMu sync.Mutex
}

func newClient(conn *websocket.Conn) *client {
	return &client{id: uuid.New(), conn: conn}
}

func (c *client) ID() uuid.UUID { return c.id }

// Send delivers one text frame, best effort. The lobby and match
// layers never retry; a broken connection surfaces through the read
// loop instead.
func (c *client) Send(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}
