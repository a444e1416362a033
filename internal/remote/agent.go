// Package remote delivers normalized pointer commands to a target machine.
package remote

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Agent receives relay commands and applies them to a local sink.
type Agent struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	sink     Sink
	token    string
	conn     *websocket.Conn
}

// NewAgent returns an agent applying commands to sink. An empty token disables auth.
func NewAgent(sink Sink, token string) *Agent {
	return &Agent{
		sink:  sink,
		token: token,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the relay connection and applies commands until it closes.
func (a *Agent) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !a.authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	a.replaceConn(conn)
	defer a.cleanupConn(conn)

	log.Printf("agent: relay connected from %s", r.RemoteAddr)
	for {
		var cmd Command
		if err := conn.ReadJSON(&cmd); err != nil {
			log.Debugf("agent: read: %v", err)
			return
		}
		if err := Apply(a.sink, cmd); err != nil {
			log.Warnf("agent: apply %s: %v", cmd.T, err)
		}
	}
}

// authorized checks the bearer token.
func (a *Agent) authorized(r *http.Request) bool {
	if a.token == "" {
		return true
	}
	got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	return subtle.ConstantTimeCompare([]byte(got), []byte(a.token)) == 1
}

// replaceConn keeps a single relay; a new one closes the previous.
func (a *Agent) replaceConn(conn *websocket.Conn) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.conn != nil {
		_ = a.conn.Close()
	}
	a.conn = conn
}

// cleanupConn clears the active connection when closed.
func (a *Agent) cleanupConn(conn *websocket.Conn) {
	a.mu.Lock()
	if a.conn == conn {
		a.conn = nil
	}
	a.mu.Unlock()
	_ = conn.Close()
}
