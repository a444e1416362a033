// Package signaling negotiates the WebRTC input data channel over a websocket.
package signaling

import "github.com/pion/webrtc/v3"

// Message kinds. Offer, ice and bye come from the client; answer, ice, ready
// and finish come from the server.
const (
	MsgOffer  = "offer"
	MsgAnswer = "answer"
	MsgICE    = "ice"
	MsgReady  = "ready"
	MsgFinish = "finish"
	MsgBye    = "bye"
)

// Message is a websocket signaling payload.
// Session and Device describe the bound input session; Reason explains a finish.
type Message struct {
	T         string                   `json:"t"`
	SDP       string                   `json:"sdp,omitempty"`
	Candidate *webrtc.ICECandidateInit `json:"candidate,omitempty"`
	Session   string                   `json:"session,omitempty"`
	Device    string                   `json:"device,omitempty"`
	Reason    string                   `json:"reason,omitempty"`
}

// readyMessage announces that the input channel of session is bound to device.
func readyMessage(session, device string) Message {
	return Message{T: MsgReady, Session: session, Device: device}
}

// finishMessage tells the client why its input session ended.
func finishMessage(session string, cause error) Message {
	msg := Message{T: MsgFinish, Session: session}
	if cause != nil {
		msg.Reason = cause.Error()
	}
	return msg
}
