// Package webrtc carries input messages over a WebRTC data channel.
package webrtc

import (
	"fmt"
	"sync"

	"github.com/pion/interceptor"
	"github.com/pion/webrtc/v3"
)

// Endpoint owns the WebRTC API and the single active peer connection.
type Endpoint struct {
	mu     sync.Mutex
	api    *webrtc.API
	config webrtc.Configuration
	peer   *webrtc.PeerConnection
}

// NewEndpoint initializes the WebRTC API with default codecs and interceptors.
func NewEndpoint(iceServers []string) (*Endpoint, error) {
	media := &webrtc.MediaEngine{}
	if err := media.RegisterDefaultCodecs(); err != nil {
		return nil, fmt.Errorf("register codecs: %w", err)
	}

	interceptors := &interceptor.Registry{}
	if err := webrtc.RegisterDefaultInterceptors(media, interceptors); err != nil {
		return nil, fmt.Errorf("register interceptors: %w", err)
	}

	api := webrtc.NewAPI(
		webrtc.WithMediaEngine(media),
		webrtc.WithInterceptorRegistry(interceptors),
	)

	cfg := webrtc.Configuration{}
	if len(iceServers) > 0 {
		cfg.ICEServers = []webrtc.ICEServer{{URLs: iceServers}}
	}
	return &Endpoint{api: api, config: cfg}, nil
}

// API returns the configured WebRTC API.
func (e *Endpoint) API() *webrtc.API {
	return e.api
}

// NewPeer creates a peer connection, closing the previous one.
// onInput runs for every data channel the client opens with InputLabel.
func (e *Endpoint) NewPeer(onInput func(*webrtc.DataChannel)) (*webrtc.PeerConnection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.peer != nil {
		_ = e.peer.Close()
		e.peer = nil
	}

	peer, err := e.api.NewPeerConnection(e.config)
	if err != nil {
		return nil, err
	}
	peer.OnDataChannel(func(dc *webrtc.DataChannel) {
		if dc.Label() != InputLabel || onInput == nil {
			return
		}
		onInput(dc)
	})

	e.peer = peer
	return peer, nil
}

// ClosePeer closes peer when it is still the active connection.
func (e *Endpoint) ClosePeer(peer *webrtc.PeerConnection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.peer != nil && (peer == nil || e.peer == peer) {
		_ = e.peer.Close()
		e.peer = nil
	}
}
