// Package ws is the socket transport: it upgrades HTTP connections, pumps
// frames in both directions and hands every inbound event to the gateway.
package ws

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"
	"zenchat/contract"
	"zenchat/domain"
	"zenchat/domain/event"
	"zenchat/observability"
	"zenchat/sink"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
)

// Gateway is the realtime layer as seen by the transport.
type Gateway interface {
	Connect(sessionID domain.SessionID, authUserID domain.UserID, sink contract.EventSink) bool
	Disconnect(sessionID domain.SessionID) bool
	Handle(sessionID domain.SessionID, name event.Name, data json.RawMessage, ack *int64) bool
}

// Client is one socket session. readPump and writePump are its only two
// goroutines, the connection is never written from anywhere else.
type Client struct {
	conn      *websocket.Conn
	sessionID domain.SessionID
	sink      *sink.SessionSink
	gateway   Gateway
	limiter   *rateLimiter
	log       *slog.Logger
	metrics   *observability.Metrics
}

func (c *Client) readPump(onExit func()) {
	defer func() {
		c.gateway.Disconnect(c.sessionID)
		c.sink.Close()
		onExit()
	}()

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.Warn("Failed to set read deadline", "session_id", c.sessionID, "error", err)
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			c.logReadError(err)
			return
		}
		if !c.limiter.allow() {
			c.log.Debug("Rate limit exceeded, frame discarded", "session_id", c.sessionID)
			continue
		}
		frame, err := DecodeFrame(raw)
		if err != nil {
			c.metrics.IncrMalformed()
			c.log.Debug("Malformed frame ignored", "session_id", c.sessionID, "error", err)
			continue
		}
		if !c.gateway.Handle(c.sessionID, frame.Event, frame.Data, frame.Ack) {
			c.log.Debug("Realtime layer stopped, closing session", "session_id", c.sessionID)
			return
		}
	}
}

func (c *Client) logReadError(err error) {
	switch {
	case errors.Is(err, websocket.ErrReadLimit):
		c.log.Warn("Frame exceeded maximum size", "session_id", c.sessionID)
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived),
		errors.Is(err, io.EOF):
		c.log.Debug("Client disconnected", "session_id", c.sessionID)
	default:
		c.log.Debug("Socket read failed", "session_id", c.sessionID, "error", err)
	}
}

// writePump drains the session sink. It ends once the sink is closed or a
// write fails.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case e, ok := <-c.sink.Events():
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			data, err := EncodeEvent(e)
			if err != nil {
				c.log.Error("Failed to encode event", "session_id", c.sessionID, "event", e.Name, "error", err)
				continue
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.log.Debug("Socket write failed", "session_id", c.sessionID, "error", err)
				return
			}
		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
