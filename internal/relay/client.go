package relay

import (
	"log"
	"time"

	"condotrack/internal/config"
	"condotrack/internal/service/presence"
	"condotrack/internal/util"

	"github.com/gorilla/websocket"
)

// Client wraps one persistent connection. All writes to the socket go through
// the send queue so the write pump is the only writer.
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient creates a client for an upgraded connection
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		ID:   util.ShortUUID(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, config.SendBufferSize),
	}
}

// Serve registers the client and starts its pumps
func (c *Client) Serve() {
	c.hub.Register(c)
	go c.writePump()
	go c.readPump()
}

// readPump reads inbound frames and dispatches events until the connection
// drops, then purges the client from all rooms.
func (c *Client) readPump() {
	defer func() {
		c.hub.Disconnect(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(config.MaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(config.PongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Connection %s read error: %v", c.ID, err)
			}
			return
		}

		env, err := DecodeEnvelope(raw)
		if err != nil {
			// Undecodable frame, drop it
			continue
		}

		switch env.Event {
		case EventJoinTrackerRoom:
			trackerID, err := env.JoinRoomID()
			if err != nil {
				continue
			}
			c.hub.Join(c, trackerID)

		case EventLocationUpdate:
			c.relayLocation(env)
		}
	}
}

// relayLocation fans the ping out to the tracker's room and stamps the
// tracker's liveness flag. The payload itself is not validated here.
func (c *Client) relayLocation(env *Envelope) {
	trackerID, err := env.LocationTrackerID()
	if err != nil || trackerID == "" {
		return
	}

	message, err := EncodeLocationUpdate(env.Data)
	if err != nil {
		return
	}

	c.hub.Broadcast(c, trackerID, message)

	go func() {
		if err := presence.GetPresenceService().Touch(trackerID); err != nil {
			log.Printf("Failed to update presence for tracker %s: %v", trackerID, err)
		}
	}()
}

// writePump drains the send queue to the socket and keeps the connection
// alive with periodic pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(config.PingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if !ok {
				// Hub closed the queue on disconnect
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(config.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
