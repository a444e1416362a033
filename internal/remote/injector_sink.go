// Package remote delivers normalized pointer commands to a target machine.
package remote

import (
	"fmt"
	"math"
	"sync"

	"github.com/frudas24/deskpad/internal/wininput"
)

// WheelStep is the wheel delta emitted per scroll unit, a third of a notch.
const WheelStep = wininput.WheelDelta / 3

// InjectorSink applies commands to the local desktop through an injector.
// Fractional motion and scroll are carried to the next command.
type InjectorSink struct {
	mu       sync.Mutex
	injector wininput.Injector
	remX     float64
	remY     float64
	remWheel float64
	remHWhl  float64
	holding  bool
}

// NewInjectorSink wraps an injector.
func NewInjectorSink(injector wininput.Injector) *InjectorSink {
	return &InjectorSink{injector: injector}
}

// SendMoveDelta moves the cursor by the integral part of the accumulated delta.
func (s *InjectorSink) SendMoveDelta(x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	dx := takeWhole(&s.remX, x)
	dy := takeWhole(&s.remY, y)
	if dx == 0 && dy == 0 {
		return nil
	}
	return s.injector.MoveRel(dx, dy)
}

// SendClick clicks b, releasing a pending hold first.
func (s *InjectorSink) SendClick(b Button) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.holding {
		s.holding = false
		if b == ButtonLeft {
			return s.injector.ButtonUp(wininput.Left)
		}
		if err := s.injector.ButtonUp(wininput.Left); err != nil {
			return err
		}
	}
	wb, err := injectorButton(b)
	if err != nil {
		return err
	}
	return s.injector.Click(wb)
}

// SendDoubleClick double clicks the left button.
func (s *InjectorSink) SendDoubleClick() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.holding {
		s.holding = false
		if err := s.injector.ButtonUp(wininput.Left); err != nil {
			return err
		}
	}
	return s.injector.DoubleClick()
}

// SendHold presses the left button until the next click.
func (s *InjectorSink) SendHold() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.holding {
		return nil
	}
	if err := s.injector.ButtonDown(wininput.Left); err != nil {
		return err
	}
	s.holding = true
	return nil
}

// SendScroll scrolls by whole wheel deltas; positive y scrolls content down.
func (s *InjectorSink) SendScroll(x, y float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := takeWhole(&s.remWheel, y*WheelStep)
	h := takeWhole(&s.remHWhl, x*WheelStep)
	if v != 0 {
		if err := s.injector.Wheel(-v); err != nil {
			return err
		}
	}
	if h != 0 {
		return s.injector.HWheel(h)
	}
	return nil
}

// SendText types text into the focused window.
func (s *InjectorSink) SendText(text string) error {
	if text == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.injector.TypeUnicode(text)
}

// SendKey presses a special key.
func (s *InjectorSink) SendKey(k Key) error {
	wk, err := injectorKey(k)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.injector.PressKey(wk)
}

// takeWhole adds v to rem and returns the integral part, keeping the fraction.
func takeWhole(rem *float64, v float64) int {
	*rem += v
	whole := math.Trunc(*rem)
	*rem -= whole
	return int(whole)
}

// injectorButton maps a remote button to the injector enum.
func injectorButton(b Button) (wininput.Button, error) {
	switch b {
	case ButtonLeft:
		return wininput.Left, nil
	case ButtonRight:
		return wininput.Right, nil
	case ButtonMiddle:
		return wininput.Middle, nil
	default:
		return 0, fmt.Errorf("unknown button %d", b)
	}
}

// injectorKey maps a remote key to the injector enum.
func injectorKey(k Key) (wininput.Key, error) {
	switch k {
	case KeyEnter:
		return wininput.KeyEnter, nil
	case KeyBackspace:
		return wininput.KeyBackspace, nil
	case KeyDelete:
		return wininput.KeyDelete, nil
	case KeyTab:
		return wininput.KeyTab, nil
	case KeyEscape:
		return wininput.KeyEscape, nil
	case KeyLeft:
		return wininput.KeyLeft, nil
	case KeyRight:
		return wininput.KeyRight, nil
	case KeyUp:
		return wininput.KeyUp, nil
	case KeyDown:
		return wininput.KeyDown, nil
	case KeyHome:
		return wininput.KeyHome, nil
	case KeyEnd:
		return wininput.KeyEnd, nil
	case KeySelectAll:
		return wininput.KeySelectAll, nil
	default:
		return 0, fmt.Errorf("unknown key %d", k)
	}
}
