// Package webrtc carries input messages over a WebRTC data channel.
package webrtc

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/frudas24/deskpad/internal/control"
	"github.com/google/uuid"
	"github.com/pion/webrtc/v3"
	log "github.com/sirupsen/logrus"
)

// InputLabel is the data channel label clients open for input messages.
const InputLabel = "input"

// ServeInput binds dc to a new control pipeline and returns it.
// The pipeline is closed with the channel; a finished session closes the channel.
func ServeInput(dc *webrtc.DataChannel, opts control.PipelineOptions) *control.Pipeline {
	if opts.Logger == nil {
		opts.Logger = log.WithFields(log.Fields{"session": uuid.NewString(), "transport": "datachannel"})
	}
	entry := opts.Logger
	opts.Notify = func(n control.Notice) error {
		raw, err := json.Marshal(n)
		if err != nil {
			return err
		}
		return dc.SendText(string(raw))
	}
	p := control.NewPipeline(opts)

	dc.OnOpen(func() {
		entry.Info("webrtc: input channel open")
	})
	dc.OnClose(func() {
		entry.Info("webrtc: input channel closed")
		p.Close()
	})
	dc.OnMessage(func(msg webrtc.DataChannelMessage) {
		err := handleFrame(p, msg.Data)
		if err == nil {
			return
		}
		if errors.Is(err, control.ErrSessionFinished) {
			entry.Infof("webrtc: %v", err)
			_ = dc.Close()
			return
		}
		entry.Warnf("webrtc: %v", err)
	})
	return p
}

// handleFrame decodes one JSON frame and applies it to p.
func handleFrame(p *control.Pipeline, data []byte) error {
	var msg control.Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return fmt.Errorf("decode input frame: %w", err)
	}
	return p.HandleMessage(msg)
}
