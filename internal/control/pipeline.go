// Package control routes classified input gestures to remote pointer commands.
package control

import (
	"strings"
	"sync"

	"github.com/frudas24/deskpad/internal/prefs"
	"github.com/frudas24/deskpad/internal/remote"
	"github.com/frudas24/deskpad/internal/settings"
	log "github.com/sirupsen/logrus"
)

// DefaultDevice is the registry id of the injector on this machine.
const DefaultDevice = "local"

// PipelineOptions configures one input connection.
// SetInputEnabled receives inputEnabled messages; nil ignores them.
// OnFinish runs once after the finish notice when the target device is gone.
type PipelineOptions struct {
	Store           *settings.Store
	Sinks           *remote.Registry
	Device          string
	InputEnabled    func() bool
	SetInputEnabled func(bool)
	Notify          func(Notice) error
	OnFinish        func(error)
	Logger          *log.Entry
}

// Pipeline binds one client connection to a router, a settings subscription and a target device.
type Pipeline struct {
	router          *Router
	sinks           *remote.Registry
	inputEnabled    func() bool
	setInputEnabled func(bool)
	notify          func(Notice) error
	onFinish        func(error)
	log             *log.Entry
	cancel          func()

	mu     sync.Mutex
	device string
}

// NewPipeline returns a pipeline whose configuration follows opts.Store.
func NewPipeline(opts PipelineOptions) *Pipeline {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	device := strings.TrimSpace(opts.Device)
	if device == "" {
		device = DefaultDevice
	}
	p := &Pipeline{
		sinks:           opts.Sinks,
		inputEnabled:    opts.InputEnabled,
		setInputEnabled: opts.SetInputEnabled,
		notify:          opts.Notify,
		onFinish:        opts.OnFinish,
		log:             logger,
		device:          device,
		cancel:          func() {},
	}

	var holder *prefs.Holder
	if opts.Store != nil {
		store := opts.Store
		holder = prefs.NewHolder(prefs.SourceFunc(func() prefs.Values { return store.Snapshot() }))
		p.cancel = store.OnChange(holder.MarkDirty)
	}
	p.router = NewRouter(RouterOptions{
		Prefs:    holder,
		Sink:     p.lookup,
		Gyro:     p,
		OnFinish: p.finished,
		Logger:   logger,
	})
	return p
}

// Router returns the router driven by this pipeline.
func (p *Pipeline) Router() *Router {
	return p.router
}

// Device returns the target device id.
func (p *Pipeline) Device() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.device
}

// HandleMessage applies one client message.
// It returns ErrSessionFinished once the target device is gone.
func (p *Pipeline) HandleMessage(msg Message) error {
	switch msg.T {
	case MsgHello:
		if dev := strings.TrimSpace(msg.Device); dev != "" {
			p.mu.Lock()
			p.device = dev
			p.mu.Unlock()
		}
		info := DeviceInfo{DPI: msg.DPI, HasGyro: msg.Gyro != nil && *msg.Gyro}
		p.log.WithField("device", p.Device()).Debugf("control: hello dpi=%.0f gyro=%t", info.DPI, info.HasGyro)
		if err := p.router.SetDevice(info); err != nil {
			return err
		}
		return p.router.Resume()
	case MsgPause:
		p.router.Pause()
		return nil
	case MsgResume:
		return p.router.Resume()
	case MsgInputEnabled:
		if msg.Enabled != nil && p.setInputEnabled != nil {
			p.setInputEnabled(*msg.Enabled)
		}
		return nil
	}

	ev, err := DecodeEvent(msg)
	if err != nil {
		return err
	}
	if _, up := ev.(TouchUp); !up && p.inputEnabled != nil && !p.inputEnabled() {
		return nil
	}
	return p.router.Handle(ev)
}

// SetGyroEnabled asks the client to start or stop streaming gyroscope samples.
func (p *Pipeline) SetGyroEnabled(enabled bool) error {
	if p.notify == nil {
		return nil
	}
	return p.notify(gyroNotice(enabled))
}

// Close releases the settings subscription.
func (p *Pipeline) Close() {
	p.cancel()
}

// lookup resolves the current target device.
func (p *Pipeline) lookup() (remote.Sink, error) {
	if p.sinks == nil {
		return nil, remote.ErrSinkUnavailable
	}
	return p.sinks.Lookup(p.Device())
}

// finished tells the client why the session ended, then runs the finish hook.
func (p *Pipeline) finished(err error) {
	if p.notify != nil {
		if nerr := p.notify(Notice{T: NoticeFinish, Reason: err.Error()}); nerr != nil {
			p.log.Debugf("control: finish notice: %v", nerr)
		}
	}
	if p.onFinish != nil {
		p.onFinish(err)
	}
}
