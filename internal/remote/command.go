// Package remote delivers normalized pointer commands to a target machine.
package remote

import "fmt"

// Command kinds carried between relay and agent.
const (
	CmdMove        = "move"
	CmdClick       = "click"
	CmdDoubleClick = "doubleClick"
	CmdHold        = "hold"
	CmdScroll      = "scroll"
	CmdText        = "text"
	CmdKey         = "key"
)

// Command is a single pointer or keyboard command on the relay wire.
type Command struct {
	T      string  `json:"t"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Button string  `json:"button,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
}

// Apply executes cmd against sink.
func Apply(sink Sink, cmd Command) error {
	switch cmd.T {
	case CmdMove:
		return sink.SendMoveDelta(cmd.X, cmd.Y)
	case CmdClick:
		b, err := ParseButton(cmd.Button)
		if err != nil {
			return err
		}
		return sink.SendClick(b)
	case CmdDoubleClick:
		return sink.SendDoubleClick()
	case CmdHold:
		return sink.SendHold()
	case CmdScroll:
		return sink.SendScroll(cmd.X, cmd.Y)
	case CmdText:
		return sink.SendText(cmd.Text)
	case CmdKey:
		k, err := ParseKey(cmd.Key)
		if err != nil {
			return err
		}
		return sink.SendKey(k)
	default:
		return fmt.Errorf("unknown command %q", cmd.T)
	}
}
