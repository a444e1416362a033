// Package control routes classified input gestures to remote pointer commands.
package control

import (
	"fmt"

	"github.com/frudas24/deskpad/internal/pointer"
	"github.com/frudas24/deskpad/internal/remote"
)

// Message is a client -> server input payload.
type Message struct {
	T        string  `json:"t"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	DX       float64 `json:"dx,omitempty"`
	DY       float64 `json:"dy,omitempty"`
	Pointers int     `json:"pointers,omitempty"`
	TS       uint64  `json:"ts,omitempty"`
	RX       float64 `json:"rx,omitempty"`
	RY       float64 `json:"ry,omitempty"`
	RZ       float64 `json:"rz,omitempty"`
	Button   string  `json:"button,omitempty"`
	DPI      float64 `json:"dpi,omitempty"`
	Gyro     *bool   `json:"gyro,omitempty"`
	Device   string  `json:"device,omitempty"`
	Enabled  *bool   `json:"enabled,omitempty"`
	Text     string  `json:"text,omitempty"`
	Key      string  `json:"key,omitempty"`
}

// Notice is a server -> client payload.
type Notice struct {
	T       string `json:"t"`
	Enabled *bool  `json:"enabled,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// Message kinds handled by the pipeline rather than the router.
const (
	MsgHello        = "hello"
	MsgPause        = "pause"
	MsgResume       = "resume"
	MsgInputEnabled = "inputEnabled"
)

// Notice kinds.
const (
	NoticeGyro   = "gyro"
	NoticeFinish = "finish"
)

// gyroNotice asks the client to start or stop streaming gyroscope samples.
func gyroNotice(enabled bool) Notice {
	return Notice{T: NoticeGyro, Enabled: &enabled}
}

// DecodeEvent maps an input message to a router event.
func DecodeEvent(msg Message) (InputEvent, error) {
	switch msg.T {
	case "down":
		return TouchDown{X: msg.X, Y: msg.Y}, nil
	case "move":
		return TouchMove{X: msg.X, Y: msg.Y, TimestampMs: msg.TS}, nil
	case "up":
		return TouchUp{}, nil
	case "scroll":
		return DragScroll{DistanceX: msg.DX, DistanceY: msg.DY, PointerCount: msg.Pointers}, nil
	case "wheel":
		return GenericScroll{DistanceY: msg.DY}, nil
	case "gyro":
		return GyroTick{Sample: pointer.GyroSample{RateX: msg.RX, RateY: msg.RY, RateZ: msg.RZ}}, nil
	case "tap":
		return SingleTap{}, nil
	case "doubleTap":
		return DoubleTap{}, nil
	case "doubleFingerTap":
		return DoubleFingerTap{}, nil
	case "tripleFingerTap":
		return TripleFingerTap{}, nil
	case "longPress":
		return LongPress{}, nil
	case "fling":
		return Fling{}, nil
	case "button":
		b, err := remote.ParseButton(msg.Button)
		if err != nil {
			return nil, err
		}
		return ButtonPress{Button: b}, nil
	case "text":
		return TextInput{Text: msg.Text}, nil
	case "key":
		k, err := remote.ParseKey(msg.Key)
		if err != nil {
			return nil, err
		}
		return KeyPress{Key: k}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", msg.T)
	}
}
