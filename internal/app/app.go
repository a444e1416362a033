// Package app wires HTTP, signaling, and the input pipeline together.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/frudas24/deskpad/internal/config"
	"github.com/frudas24/deskpad/internal/control"
	"github.com/frudas24/deskpad/internal/remote"
	"github.com/frudas24/deskpad/internal/session"
	"github.com/frudas24/deskpad/internal/settings"
	"github.com/frudas24/deskpad/internal/signaling"
	pc "github.com/frudas24/deskpad/internal/webrtc"
	"github.com/frudas24/deskpad/internal/wininput"
	"github.com/pion/webrtc/v3"
	log "github.com/sirupsen/logrus"
)

// RelayDevice is the registry id of the relay sink.
const RelayDevice = "relay"

// App coordinates the HTTP API, websocket servers, and remote sinks.
type App struct {
	mu        sync.Mutex
	cfg       config.Config
	session   *session.Session
	store     *settings.Store
	sinks     *remote.Registry
	endpoint  *pc.Endpoint
	signaling *signaling.Server
	control   *control.Server
	cancel    context.CancelFunc
	done      chan struct{}
}

// New creates a new application with its dependencies wired.
// A nil injector leaves the local device unregistered.
func New(cfg config.Config, sess *session.Session, store *settings.Store, injector wininput.Injector) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if store == nil {
		return nil, errors.New("settings store is required")
	}

	app := &App{
		cfg:     cfg,
		session: sess,
		store:   store,
		sinks:   remote.NewRegistry(),
	}
	if injector != nil {
		app.sinks.Register(control.DefaultDevice, remote.NewInjectorSink(injector))
	}

	app.control = control.NewServer(sess, store, app.sinks, cfg.Target)
	if cfg.WebRTCEnabled {
		endpoint, err := pc.NewEndpoint(nil)
		if err != nil {
			return nil, err
		}
		app.endpoint = endpoint
		app.signaling = signaling.NewServer(endpoint, signaling.PeerReplace, sess.IsAuthenticated, app.bindInput)
	}
	return app, nil
}

// Start launches background work: the relay connection when RELAY_URL is set.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return errors.New("app already started")
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})
	if a.cfg.RelayURL == "" {
		close(a.done)
		return nil
	}
	retry := time.Duration(a.cfg.RelayRetrySec) * time.Second
	go func() {
		defer close(a.done)
		a.keepRelay(ctx, retry)
	}()
	return nil
}

// Stop cancels background work and waits for it to end.
func (a *App) Stop() error {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel = nil
	a.mu.Unlock()
	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	if a.endpoint != nil {
		a.endpoint.ClosePeer(nil)
	}
	return nil
}

// Sinks returns the device registry.
func (a *App) Sinks() *remote.Registry {
	return a.sinks
}

// Signaling returns the signaling websocket handler, nil when WebRTC is disabled.
func (a *App) Signaling() *signaling.Server {
	return a.signaling
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}

// bindInput binds a negotiated input data channel to a pipeline and returns its device.
func (a *App) bindInput(id string, dc *webrtc.DataChannel, onFinish func(error)) string {
	entry := log.WithFields(log.Fields{"session": id, "transport": "datachannel"})
	p := pc.ServeInput(dc, control.PipelineOptions{
		Store:           a.store,
		Sinks:           a.sinks,
		Device:          a.cfg.Target,
		InputEnabled:    a.session.InputEnabled,
		SetInputEnabled: a.session.SetInputEnabled,
		OnFinish:        onFinish,
		Logger:          entry,
	})
	entry.WithField("device", p.Device()).Debugf("app: data channel %q bound", dc.Label())
	return p.Device()
}
