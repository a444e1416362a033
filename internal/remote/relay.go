// Package remote delivers normalized pointer commands to a target machine.
package remote

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const relayWriteTimeout = 2 * time.Second

// RelaySink forwards commands to a remote agent over a websocket.
type RelaySink struct {
	writeMu sync.Mutex
	mu      sync.Mutex
	conn    *websocket.Conn
	closed  bool
	onClose func()
}

// DialRelay connects to an agent endpoint. token, when set, is sent as a bearer token.
// onClose runs once when the connection fails or is closed.
func DialRelay(ctx context.Context, url, token string, onClose func()) (*RelaySink, error) {
	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		return nil, fmt.Errorf("dial relay %s: %w", url, err)
	}
	r := &RelaySink{conn: conn, onClose: onClose}
	go r.watch()
	return r, nil
}

// SendMoveDelta forwards a move command.
func (r *RelaySink) SendMoveDelta(x, y float64) error {
	return r.send(Command{T: CmdMove, X: x, Y: y})
}

// SendClick forwards a click command.
func (r *RelaySink) SendClick(b Button) error {
	return r.send(Command{T: CmdClick, Button: b.String()})
}

// SendDoubleClick forwards a double click command.
func (r *RelaySink) SendDoubleClick() error {
	return r.send(Command{T: CmdDoubleClick})
}

// SendHold forwards a hold command.
func (r *RelaySink) SendHold() error {
	return r.send(Command{T: CmdHold})
}

// SendScroll forwards a scroll command.
func (r *RelaySink) SendScroll(x, y float64) error {
	return r.send(Command{T: CmdScroll, X: x, Y: y})
}

// SendText forwards typed text.
func (r *RelaySink) SendText(text string) error {
	if text == "" {
		return nil
	}
	return r.send(Command{T: CmdText, Text: text})
}

// SendKey forwards a special key.
func (r *RelaySink) SendKey(k Key) error {
	return r.send(Command{T: CmdKey, Key: k.String()})
}

// Close closes the connection.
func (r *RelaySink) Close() error {
	return r.shutdown()
}

// send writes a command frame; a failed write closes the relay and reports the sink unavailable.
func (r *RelaySink) send(cmd Command) error {
	r.mu.Lock()
	closed := r.closed
	r.mu.Unlock()
	if closed {
		return ErrSinkUnavailable
	}

	r.writeMu.Lock()
	_ = r.conn.SetWriteDeadline(time.Now().Add(relayWriteTimeout))
	err := r.conn.WriteJSON(cmd)
	r.writeMu.Unlock()
	if err != nil {
		log.Printf("relay: write failed: %v", err)
		_ = r.shutdown()
		return fmt.Errorf("relay write: %w: %w", ErrSinkUnavailable, err)
	}
	return nil
}

// watch drains control frames so close and ping are processed.
func (r *RelaySink) watch() {
	for {
		if _, _, err := r.conn.NextReader(); err != nil {
			log.Debugf("relay: connection ended: %v", err)
			_ = r.shutdown()
			return
		}
	}
}

// shutdown closes the socket once and fires onClose.
func (r *RelaySink) shutdown() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.mu.Unlock()

	err := r.conn.Close()
	if r.onClose != nil {
		r.onClose()
	}
	return err
}
