// Package signaling negotiates the WebRTC input data channel over a websocket.
package signaling

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	pc "github.com/frudas24/deskpad/internal/webrtc"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/pion/webrtc/v3"
	log "github.com/sirupsen/logrus"
)

const writeTimeout = 2 * time.Second

// errPeerActive rejects a second client under PeerReject.
var errPeerActive = errors.New("input peer already connected")

// PeerPolicy controls how additional clients are handled.
type PeerPolicy int

const (
	// PeerReject rejects new connections when one is active.
	PeerReject PeerPolicy = iota
	// PeerReplace closes the active connection when a new one arrives.
	PeerReplace
)

// InputBinder attaches a negotiated input channel to a control pipeline and
// returns the device it targets. onFinish must run once when that pipeline finishes.
type InputBinder func(session string, dc *webrtc.DataChannel, onFinish func(error)) string

// Server negotiates one input peer at a time and ends the peer with its input session.
type Server struct {
	mu       sync.Mutex
	upgrader websocket.Upgrader
	endpoint *pc.Endpoint
	policy   PeerPolicy
	authFn   func() bool
	bind     InputBinder
	active   *peerSession
}

// peerSession is one signaling socket and the peer negotiated over it.
type peerSession struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex
	peer    *webrtc.PeerConnection
	log     *log.Entry
}

// NewServer creates a signaling server. bind may be nil, which leaves input channels unbound.
func NewServer(endpoint *pc.Endpoint, policy PeerPolicy, authFn func() bool, bind InputBinder) *Server {
	return &Server{
		endpoint: endpoint,
		policy:   policy,
		authFn:   authFn,
		bind:     bind,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// ServeHTTP upgrades the request and negotiates the input peer until the client leaves.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if s.authFn != nil && !s.authFn() {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	id := uuid.NewString()
	ps := &peerSession{id: id, conn: conn, log: log.WithFields(log.Fields{"session": id, "transport": "signaling"})}
	if err := s.accept(ps); err != nil {
		ps.reject(err.Error())
		return
	}
	defer s.release(ps)

	peer, err := s.endpoint.NewPeer(func(dc *webrtc.DataChannel) { s.bindInput(ps, dc) })
	if err != nil {
		ps.log.Warnf("signaling: new peer: %v", err)
		return
	}
	ps.peer = peer
	peer.OnICECandidate(func(c *webrtc.ICECandidate) {
		if c == nil {
			return
		}
		candidate := c.ToJSON()
		_ = ps.send(Message{T: MsgICE, Candidate: &candidate})
	})
	peer.OnConnectionStateChange(func(state webrtc.PeerConnectionState) {
		ps.log.Debugf("signaling: peer %s", state)
		if state == webrtc.PeerConnectionStateFailed {
			_ = ps.conn.Close()
		}
	})
	ps.log.Infof("signaling: connected from %s", r.RemoteAddr)

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			ps.log.Debugf("signaling: read: %v", err)
			return
		}
		if msg.T == MsgBye {
			ps.log.Info("signaling: client left")
			return
		}
		if err := s.handleMessage(ps, msg); err != nil {
			ps.log.Warnf("signaling: %s: %v", msg.T, err)
			return
		}
	}
}

// accept makes ps the active session or returns errPeerActive.
func (s *Server) accept(ps *peerSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prev := s.active; prev != nil {
		if s.policy != PeerReplace {
			return errPeerActive
		}
		prev.log.Info("signaling: replaced by a newer client")
		_ = prev.conn.Close()
	}
	s.active = ps
	return nil
}

// release clears ps and closes its peer and socket.
func (s *Server) release(ps *peerSession) {
	s.mu.Lock()
	if s.active == ps {
		s.active = nil
	}
	s.mu.Unlock()
	if ps.peer != nil {
		s.endpoint.ClosePeer(ps.peer)
	}
	_ = ps.conn.Close()
}

// bindInput hands the input channel to the binder and tells the client which device it drives.
func (s *Server) bindInput(ps *peerSession, dc *webrtc.DataChannel) {
	if s.bind == nil {
		ps.log.Debugf("signaling: no binder for channel %q", dc.Label())
		return
	}
	device := s.bind(ps.id, dc, func(cause error) {
		// Runs under the router lock and inside a data channel callback.
		go s.finish(ps, cause)
	})
	ps.log.WithField("device", device).Info("signaling: input channel bound")
	_ = ps.send(readyMessage(ps.id, device))
}

// finish reports the end of the input session and drops the client.
func (s *Server) finish(ps *peerSession, cause error) {
	ps.log.Infof("signaling: input session finished: %v", cause)
	if err := ps.send(finishMessage(ps.id, cause)); err != nil {
		ps.log.Debugf("signaling: finish: %v", err)
	}
	_ = ps.conn.Close()
}

// handleMessage dispatches client signaling messages.
func (s *Server) handleMessage(ps *peerSession, msg Message) error {
	switch msg.T {
	case MsgOffer:
		return s.handleOffer(ps, msg.SDP)
	case MsgICE:
		if msg.Candidate == nil {
			return nil
		}
		return ps.peer.AddICECandidate(*msg.Candidate)
	default:
		ps.log.Debugf("signaling: ignoring %q", msg.T)
		return nil
	}
}

// handleOffer applies the client offer and replies with a fully gathered answer.
func (s *Server) handleOffer(ps *peerSession, sdp string) error {
	if sdp == "" {
		return fmt.Errorf("empty offer")
	}
	if err := ps.peer.SetRemoteDescription(webrtc.SessionDescription{
		Type: webrtc.SDPTypeOffer,
		SDP:  sdp,
	}); err != nil {
		return err
	}
	answer, err := ps.peer.CreateAnswer(nil)
	if err != nil {
		return err
	}
	gatherComplete := webrtc.GatheringCompletePromise(ps.peer)
	if err := ps.peer.SetLocalDescription(answer); err != nil {
		return err
	}
	<-gatherComplete
	local := ps.peer.LocalDescription()
	if local == nil {
		return fmt.Errorf("missing local description")
	}
	return ps.send(Message{T: MsgAnswer, SDP: local.SDP, Session: ps.id})
}

// send writes one message with a deadline.
func (ps *peerSession) send(msg Message) error {
	ps.writeMu.Lock()
	defer ps.writeMu.Unlock()
	_ = ps.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return ps.conn.WriteJSON(msg)
}

// reject sends a policy violation close and closes the socket.
func (ps *peerSession) reject(reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = ps.conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(time.Second))
	_ = ps.conn.Close()
}
