// Package control routes classified input gestures to remote pointer commands.
package control

import (
	"errors"
	"fmt"
	"sync"

	"github.com/frudas24/deskpad/internal/accel"
	"github.com/frudas24/deskpad/internal/pointer"
	"github.com/frudas24/deskpad/internal/prefs"
	"github.com/frudas24/deskpad/internal/remote"
	log "github.com/sirupsen/logrus"
)

// standardDPI is the density raw touch deltas are normalized to.
const standardDPI = 240.0

// ErrSessionFinished is returned once the remote target has disappeared.
// The router drops every later event.
var ErrSessionFinished = errors.New("control session finished")

// State is the drag state of the active gesture.
type State int

const (
	// StateIdle means no contact is down.
	StateIdle State = iota
	// StateDragging means a contact is moving the pointer.
	StateDragging
	// StateScrolling means the gesture was classified as a multi-finger scroll.
	StateScrolling
)

// String returns a readable state name.
func (s State) String() string {
	switch s {
	case StateDragging:
		return "dragging"
	case StateScrolling:
		return "scrolling"
	default:
		return "idle"
	}
}

// GyroListener subscribes or unsubscribes the gyroscope feed on the device.
type GyroListener interface {
	SetGyroEnabled(enabled bool) error
}

// DeviceInfo describes the touch surface sending events.
type DeviceInfo struct {
	// DPI is the horizontal density of the surface; <= 0 disables normalization.
	DPI float64
	// HasGyro reports whether the device can stream gyroscope samples.
	HasGyro bool
}

// RouterOptions wires a router to its collaborators.
type RouterOptions struct {
	Prefs    *prefs.Holder
	Sink     remote.Provider
	Gyro     GyroListener
	OnFinish func(err error)
	Logger   *log.Entry
}

// Router turns input events into remote commands for one input session.
type Router struct {
	mu       sync.Mutex
	prefs    *prefs.Holder
	sink     remote.Provider
	gyro     GyroListener
	onFinish func(error)
	log      *log.Entry

	cfg         prefs.Configuration
	cfgVersion  uint64
	profile     accel.Profile
	dragScroll  *pointer.ScrollAccumulator
	wheelScroll *pointer.ScrollAccumulator

	state         State
	prevX         float64
	prevY         float64
	dpiMultiplier float64
	hasGyro       bool
	gyroOn        bool
	resumed       bool
	finishErr     error
}

// NewRouter returns an idle router. The configuration is applied on the first event.
func NewRouter(opts RouterOptions) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Router{
		prefs:         opts.Prefs,
		sink:          opts.Sink,
		gyro:          opts.Gyro,
		onFinish:      opts.OnFinish,
		log:           logger,
		wheelScroll:   pointer.NewWheelScroll(),
		dpiMultiplier: 1,
	}
}

// State returns the current drag state.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Finished reports whether the session has ended.
func (r *Router) Finished() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.finishErr != nil
}

// Configuration returns the configuration currently applied.
func (r *Router) Configuration() prefs.Configuration {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applyConfig()
	return r.cfg
}

// SetDevice records the surface density and gyroscope availability.
func (r *Router) SetDevice(info DeviceInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finishErr != nil {
		return r.finishErr
	}
	r.dpiMultiplier = 1
	if info.DPI > 0 {
		r.dpiMultiplier = standardDPI / info.DPI
	}
	r.hasGyro = info.HasGyro
	r.applyConfig()
	r.syncGyro()
	return nil
}

// Resume applies the configuration and subscribes the gyroscope when allowed.
func (r *Router) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finishErr != nil {
		return r.finishErr
	}
	r.resumed = true
	r.applyConfig()
	r.syncGyro()
	return nil
}

// Pause unsubscribes the gyroscope until the next Resume.
func (r *Router) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resumed = false
	r.syncGyro()
}

// Handle routes one event. It returns ErrSessionFinished once the sink is gone.
func (r *Router) Handle(ev InputEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finishErr != nil {
		return r.finishErr
	}
	r.applyConfig()

	switch e := ev.(type) {
	case TouchDown:
		return r.touchDown(e)
	case TouchMove:
		return r.touchMove(e)
	case TouchUp:
		r.state = StateIdle
		return nil
	case DragScroll:
		return r.dragScrolled(e)
	case GenericScroll:
		if v, ok := r.wheelScroll.Accumulate(e.DistanceY); ok {
			return r.emit(func(s remote.Sink) error { return s.SendScroll(0, v) })
		}
		return nil
	case GyroTick:
		return r.gyroTick(e)
	case SingleTap:
		return r.tap(r.cfg.SingleTap)
	case DoubleFingerTap:
		return r.tap(r.cfg.DoubleTap)
	case TripleFingerTap:
		return r.tap(r.cfg.TripleTap)
	case DoubleTap:
		return r.emit(func(s remote.Sink) error { return s.SendDoubleClick() })
	case LongPress:
		return r.emit(func(s remote.Sink) error { return s.SendHold() })
	case ButtonPress:
		return r.emit(func(s remote.Sink) error { return s.SendClick(e.Button) })
	case TextInput:
		if e.Text == "" {
			return nil
		}
		return r.emit(func(s remote.Sink) error { return s.SendText(e.Text) })
	case KeyPress:
		return r.emit(func(s remote.Sink) error { return s.SendKey(e.Key) })
	case Fling:
		return nil
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

// touchDown starts a drag unless a scroll gesture owns the contacts.
func (r *Router) touchDown(e TouchDown) error {
	if r.state == StateScrolling {
		return nil
	}
	r.state = StateDragging
	r.prevX, r.prevY = e.X, e.Y
	return nil
}

// touchMove turns contact motion into an accelerated pointer delta.
func (r *Router) touchMove(e TouchMove) error {
	switch r.state {
	case StateScrolling:
		return nil
	case StateIdle:
		r.state = StateDragging
		r.prevX, r.prevY = e.X, e.Y
		return nil
	}

	sink, err := r.lookup()
	if err != nil {
		return err
	}
	scale := r.dpiMultiplier * r.cfg.Sensitivity
	dx := (e.X - r.prevX) * scale
	dy := (e.Y - r.prevY) * scale
	r.prevX, r.prevY = e.X, e.Y

	r.profile.TouchMoved(dx, dy, e.TimestampMs)
	d := r.profile.Commit()
	if d.IsZero() {
		return nil
	}
	return r.send(sink.SendMoveDelta(d.X, d.Y))
}

// dragScrolled accumulates a multi-finger scroll; single contacts stay pointer motion.
func (r *Router) dragScrolled(e DragScroll) error {
	if e.PointerCount <= 1 {
		return nil
	}
	r.state = StateScrolling
	v, ok := r.dragScroll.Accumulate(e.DistanceY)
	if !ok {
		return nil
	}
	return r.emit(func(s remote.Sink) error { return s.SendScroll(0, v) })
}

// gyroTick moves the pointer from a gyroscope reading while subscribed.
func (r *Router) gyroTick(e GyroTick) error {
	if !r.gyroOn {
		return nil
	}
	sink, err := r.lookup()
	if err != nil {
		return err
	}
	d := pointer.ComputeGyro(e.Sample, r.cfg.GyroSensitivity)
	if d.IsZero() {
		return nil
	}
	return r.send(sink.SendMoveDelta(d.X, d.Y))
}

// tap clicks the bound button; BindingNone swallows the gesture.
func (r *Router) tap(b prefs.ClickBinding) error {
	button, ok := b.Button()
	if !ok {
		return nil
	}
	return r.emit(func(s remote.Sink) error { return s.SendClick(button) })
}

// emit looks up the sink and runs fn against it.
func (r *Router) emit(fn func(remote.Sink) error) error {
	sink, err := r.lookup()
	if err != nil {
		return err
	}
	return r.send(fn(sink))
}

// lookup returns the sink or finishes the session when it is gone.
func (r *Router) lookup() (remote.Sink, error) {
	if r.sink == nil {
		return nil, r.finish(remote.ErrSinkUnavailable)
	}
	sink, err := r.sink()
	if err != nil {
		if errors.Is(err, remote.ErrSinkUnavailable) {
			return nil, r.finish(err)
		}
		return nil, err
	}
	return sink, nil
}

// send maps a sink error; an unavailable sink finishes the session.
func (r *Router) send(err error) error {
	if err != nil && errors.Is(err, remote.ErrSinkUnavailable) {
		return r.finish(err)
	}
	return err
}

// finish ends the session once and unsubscribes the gyroscope.
func (r *Router) finish(cause error) error {
	if r.finishErr != nil {
		return r.finishErr
	}
	r.finishErr = fmt.Errorf("%w: %w", ErrSessionFinished, cause)
	r.resumed = false
	r.syncGyro()
	r.log.Printf("control: session finished: %v", cause)
	if r.onFinish != nil {
		r.onFinish(r.finishErr)
	}
	return r.finishErr
}

// applyConfig swaps in a rebuilt configuration and the strategies derived from it.
func (r *Router) applyConfig() {
	if r.prefs == nil {
		if r.profile == nil {
			r.setConfig(prefs.Default())
		}
		return
	}
	cfg, version := r.prefs.Current()
	if r.profile != nil && version == r.cfgVersion {
		return
	}
	r.cfgVersion = version
	r.setConfig(cfg)
	r.syncGyro()
}

// setConfig installs cfg, recreates the acceleration profile and retunes the drag accumulator.
// Pending drag distance survives the rebuild.
func (r *Router) setConfig(cfg prefs.Configuration) {
	r.cfg = cfg
	r.profile = accel.ByName(cfg.AccelerationProfile)
	if r.dragScroll == nil {
		r.dragScroll = pointer.NewDragScroll(cfg.ScrollSensitivity, cfg.ScrollSign())
	} else {
		r.dragScroll.Configure(cfg.ScrollSensitivity, cfg.ScrollSign())
	}
	r.log.WithFields(log.Fields{
		"sensitivity": cfg.SensitivityName,
		"profile":     cfg.AccelerationProfile,
		"gyro":        cfg.GyroEnabled,
	}).Debug("control: configuration applied")
}

// syncGyro subscribes or unsubscribes the gyroscope to match the current state.
func (r *Router) syncGyro() {
	want := r.finishErr == nil && r.resumed && r.hasGyro && r.cfg.GyroEnabled
	if want == r.gyroOn {
		return
	}
	r.gyroOn = want
	if r.gyro == nil {
		return
	}
	if err := r.gyro.SetGyroEnabled(want); err != nil {
		r.log.Warnf("control: gyro subscribe=%t: %v", want, err)
	}
}
