package message

import (
	"firebase.google.com/go/v4/messaging"
)

// KindPush is the wire discriminant of PushMessage.
const KindPush = "push"

// PushMessage is the plain message variant: literal title and body plus an
// optional target link carried in the data payload.
type PushMessage struct {
	base

	Title string `json:"title"`
	Body  string `json:"body"`
	Link  string `json:"link,omitempty"`
}

// NewPushMessage creates a plain message with a fresh message identifier.
func NewPushMessage(title, body string) *PushMessage {
	return &PushMessage{
		base:  newBase(),
		Title: title,
		Body:  body,
	}
}

func (m *PushMessage) Kind() string { return KindPush }

// Render produces the platform payload without a recipient token.
func (m *PushMessage) Render() (*messaging.Message, error) {
	msg := m.renderCommon()
	if m.Link != "" {
		msg.Data["link"] = m.Link
	}
	msg.Notification = &messaging.Notification{
		Title: m.Title,
		Body:  m.Body,
	}

	return msg, nil
}
