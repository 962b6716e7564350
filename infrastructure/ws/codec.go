package ws

import (
	"encoding/json"
	"fmt"
	"zenchat/domain/event"
	"zenchat/errors"
)

// Frame is one inbound text message:
//
//	{"event": "send-message", "data": {...}, "ack": 3}
type Frame struct {
	Event event.Name      `json:"event"`
	Data  json.RawMessage `json:"data"`
	Ack   *int64          `json:"ack,omitempty"`
}

type outboundFrame struct {
	Event event.Name `json:"event"`
	Data  any        `json:"data"`
}

type ackFrame struct {
	Ack  int64 `json:"ack"`
	Data any   `json:"data"`
}

// DecodeFrame parses an inbound frame. The payload stays raw, it is
// decoded by the handler of the event.
func DecodeFrame(raw []byte) (Frame, error) {
	var frame Frame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}
	if frame.Event == "" {
		return Frame{}, fmt.Errorf("%w: missing event name", errors.ErrInvalidRequest)
	}
	return frame, nil
}

// EncodeEvent serializes an outbound event, replies carry the ack id of
// the request instead of an event name.
func EncodeEvent(e event.Event) ([]byte, error) {
	if e.IsReply() {
		return json.Marshal(ackFrame{Ack: *e.Ack, Data: e.Payload})
	}
	return json.Marshal(outboundFrame{Event: e.Name, Data: e.Payload})
}
