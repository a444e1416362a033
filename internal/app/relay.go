// Package app wires HTTP, signaling, and the input pipeline together.
package app

import (
	"context"
	"time"

	"github.com/frudas24/deskpad/internal/config"
	"github.com/frudas24/deskpad/internal/remote"
	log "github.com/sirupsen/logrus"
)

// keepRelay keeps the relay sink registered while the agent is reachable.
// A dropped relay is removed at once so sessions targeting it finish.
func (a *App) keepRelay(ctx context.Context, retry time.Duration) {
	entry := log.WithFields(log.Fields{"device": RelayDevice, "url": a.cfg.RelayURL})
	for {
		closed := make(chan struct{})
		sink, err := remote.DialRelay(ctx, a.cfg.RelayURL, a.relayToken(), func() { close(closed) })
		if err != nil {
			entry.Warnf("app: relay: %v", err)
		} else {
			a.sinks.Register(RelayDevice, sink)
			entry.Info("app: relay connected")
			select {
			case <-closed:
				entry.Warn("app: relay disconnected")
			case <-ctx.Done():
				_ = sink.Close()
			}
			a.sinks.Remove(RelayDevice, sink)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(retry):
		}
	}
}

// relayToken returns the bearer token presented to the agent.
func (a *App) relayToken() string {
	if a.cfg.PasswordMode == config.PasswordNone {
		return ""
	}
	return a.cfg.UIPassword
}
