// Package control routes classified input gestures to remote pointer commands.
package control

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/deskpad/internal/remote"
	"github.com/frudas24/deskpad/internal/session"
	"github.com/frudas24/deskpad/internal/settings"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

const noticeWriteTimeout = 2 * time.Second

// Server handles websocket control input.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	session  *session.Session
	store    *settings.Store
	sinks    *remote.Registry
	device   string
	active   *wsConn
}

// wsConn is one accepted control connection.
type wsConn struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
}

// NewServer creates a control websocket server. device is the default target.
func NewServer(sess *session.Session, store *settings.Store, sinks *remote.Registry, device string) *Server {
	return &Server{
		session: sess,
		store:   store,
		sinks:   sinks,
		device:  device,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.IsAuthenticated() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &wsConn{id: uuid.NewString(), conn: conn}
	entry := log.WithField("session", c.id)
	s.acceptConn(c)
	defer s.cleanupConn(c)

	p := NewPipeline(PipelineOptions{
		Store:           s.store,
		Sinks:           s.sinks,
		Device:          s.device,
		InputEnabled:    s.session.InputEnabled,
		SetInputEnabled: s.session.SetInputEnabled,
		Notify:          c.writeNotice,
		Logger:          entry,
	})
	defer p.Close()
	s.session.Attach(c.id, p.Device())
	entry.Infof("control: connected from %s", r.RemoteAddr)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			entry.Debugf("control: read: %v", err)
			return
		}
		err := p.HandleMessage(msg)
		if msg.T == MsgHello {
			s.session.Attach(c.id, p.Device())
		}
		if err == nil {
			continue
		}
		if errors.Is(err, ErrSessionFinished) {
			entry.Infof("control: %v", err)
			return
		}
		entry.WithField("device", p.Device()).Warnf("control: %s: %v", msg.T, err)
	}
}

// acceptConn makes c the active connection and closes the one it replaces.
func (s *Server) acceptConn(c *wsConn) {
	s.mu.Lock()
	prev := s.active
	s.active = c
	s.mu.Unlock()
	if prev != nil {
		log.WithField("session", prev.id).Info("control: replaced by a newer connection")
		_ = prev.conn.Close()
	}
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(c *wsConn) {
	s.mu.Lock()
	if s.active == c {
		s.active = nil
	}
	s.mu.Unlock()
	s.session.Detach(c.id)
	_ = c.conn.Close()
}

// writeNotice sends a server notice to the client.
func (c *wsConn) writeNotice(n Notice) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(noticeWriteTimeout))
	return c.conn.WriteJSON(n)
}
