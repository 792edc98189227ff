package message

import (
	"encoding/json"

	"pushgate/internal/errors"
)

// constructors maps the wire discriminant to a zero-value variant.
var constructors = map[string]func() Message{
	KindPush:      func() Message { return &PushMessage{} },
	KindLocalized: func() Message { return &LocalizedPushMessage{} },
}

// Marshal serializes a message into its flat wire form with a "kind"
// discriminant, so Unmarshal can restore the concrete variant.
func Marshal(m Message) ([]byte, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, errors.Wrap(err, "marshal message")
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, errors.Wrap(err, "flatten message")
	}
	kind, err := json.Marshal(m.Kind())
	if err != nil {
		return nil, errors.Wrap(err, "marshal message kind")
	}
	flat["kind"] = kind

	out, err := json.Marshal(flat)
	if err != nil {
		return nil, errors.Wrap(err, "marshal message envelope")
	}

	return out, nil
}

// Unmarshal restores a message from its wire form, dispatching on the
// "kind" discriminant.
func Unmarshal(data []byte) (Message, error) {
	var envelope struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, errors.Wrap(err, "decode message envelope")
	}

	construct, ok := constructors[envelope.Kind]
	if !ok {
		return nil, errors.Errorf("unknown message kind %q", envelope.Kind)
	}

	msg := construct()
	if err := json.Unmarshal(data, msg); err != nil {
		return nil, errors.Wrapf(err, "decode %s message", envelope.Kind)
	}

	return msg, nil
}
