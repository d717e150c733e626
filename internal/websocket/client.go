package websocket

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	// feedName tags every subscriber log line
	feedName = "liftlog.changes"

	// writeTimeout bounds a single event or ping write
	writeTimeout = 10 * time.Second

	// pongTimeout is how long a silent subscriber is kept before it is dropped
	pongTimeout = 60 * time.Second

	// pingInterval must stay below pongTimeout
	pingInterval = (pongTimeout * 9) / 10

	// inboundFrameLimit caps frames from subscribers; the feed is one-way, so
	// only control frames are expected
	inboundFrameLimit = 512

	// sendBuffer is how many serialized events may queue per subscriber
	sendBuffer = 256
)

// ErrFeedLagging is returned by Send when a subscriber's queue is full
var ErrFeedLagging = errors.New("subscriber is not keeping up with the change feed")

// Client is one subscriber of the change feed. It receives the workout.*,
// exercise.* and workout_exercise.* events the hub broadcasts; anything it
// sends back apart from control frames is read and dropped.
type Client struct {
	id          string
	conn        *websocket.Conn
	hub         *Hub
	queue       chan []byte
	connectedAt time.Time
	delivered   atomic.Int64

	mu        sync.RWMutex
	closed    bool
	closeOnce sync.Once
}

// NewClient wraps an upgraded connection as a feed subscriber
func NewClient(conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		id:          uuid.New().String(),
		conn:        conn,
		hub:         hub,
		queue:       make(chan []byte, sendBuffer),
		connectedAt: time.Now(),
	}
}

// ID returns the subscriber id used as the hub key
func (c *Client) ID() string {
	return c.id
}

// Delivered reports how many events were written to the connection
func (c *Client) Delivered() int64 {
	return c.delivered.Load()
}

// Send queues a serialized event. A slow subscriber gets ErrFeedLagging
// instead of blocking the broadcast.
func (c *Client) Send(data []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClientClosed
	}

	select {
	case c.queue <- data:
		return nil
	default:
		return ErrFeedLagging
	}
}

// Close stops the subscriber. It may be called from either loop or the hub.
func (c *Client) Close() error {
	var closeErr error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.queue)
		c.mu.Unlock()

		closeErr = c.conn.Close()
	})
	return closeErr
}

// Start runs the subscriber's delivery and read loops in their own goroutines
func (c *Client) Start() {
	go c.deliver()
	go c.drain()
}

// drain keeps the read side alive for pongs and close frames, then removes
// the subscriber from the hub once the peer goes away
func (c *Client) drain() {
	defer func() {
		c.hub.Unregister(c)
		c.Close()
		log.Info().
			Str("feed", feedName).
			Str("client_id", c.id).
			Int64("events_delivered", c.Delivered()).
			Dur("connected_for", time.Since(c.connectedAt)).
			Msg("Feed subscriber disconnected")
	}()

	c.conn.SetReadLimit(inboundFrameLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().
					Err(err).
					Str("feed", feedName).
					Str("client_id", c.id).
					Msg("Feed subscriber closed unexpectedly")
			}
			return
		}
	}
}

// deliver writes queued events in broadcast order and pings between them
func (c *Client) deliver() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.Close()
	}()

	for {
		select {
		case event, ok := <-c.queue:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, event); err != nil {
				log.Warn().
					Err(err).
					Str("feed", feedName).
					Str("client_id", c.id).
					Str("event_type", eventType(event)).
					Msg("Failed to deliver feed event")
				return
			}
			c.delivered.Add(1)

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// eventType pulls the "type" field out of a serialized Event for logging
func eventType(data []byte) string {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "unknown"
	}
	return head.Type
}
