// Package message contains the serializable push message models and their
// renderer. A message describes what to send and to whom; rendering produces
// the platform payload (Android, iOS and Web blocks) without a device token,
// which the fan-out resolver attaches per recipient.
package message

import (
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
)

// DefaultTopic is the effective topic used when a message targets users or
// raw device tokens without naming a topic.
const DefaultTopic = "default"

// Message is the shared contract of all push message variants.
type Message interface {
	// Kind is the wire discriminant of the concrete variant.
	Kind() string
	// ID is the message identifier, constant for the life of one logical
	// send and shared by all resulting delivery attempts.
	ID() uuid.UUID
	// Targets exposes the mutable targeting spec.
	Targets() *TargetSpec
	// Options exposes the mutable common rendering attributes.
	Options() *Options
	// Render produces the platform payload. It is a pure function of the
	// message state and never depends on a recipient.
	Render() (*messaging.Message, error)
}

// TargetSpec names the recipients of a message. Exactly one category
// determines the delivery set, chosen in the order users, topics, devices.
type TargetSpec struct {
	Topics  []string `json:"topics"`
	Devices []string `json:"devices"`
	Users   []string `json:"users"`
}

// Empty reports whether no target category is set.
func (t *TargetSpec) Empty() bool {
	return len(t.Users) == 0 && len(t.Topics) == 0 && len(t.Devices) == 0
}

// EffectiveTopic is the topic context used for user and device targeting:
// the first named topic, else DefaultTopic.
func (t *TargetSpec) EffectiveTopic() string {
	if len(t.Topics) > 0 {
		return t.Topics[0]
	}

	return DefaultTopic
}

// WebAction is one action button of a web push notification.
type WebAction struct {
	Title  string `json:"title"`
	Action string `json:"action"`
	Icon   string `json:"icon"`
}

// Options carries the rendering attributes shared by all message variants.
type Options struct {
	// Common
	CollapseID    string            `json:"collapse_id,omitempty"`    // Messages sharing this id collapse into one.
	BadgeCount    *int              `json:"badge_count,omitempty"`    // App icon badge; 0 removes the badge.
	DataAvailable bool              `json:"data_available,omitempty"` // Launch the app in background for a data download.
	Sound         string            `json:"sound,omitempty"`          // "default" or a sound file name in the app bundle.
	Data          map[string]string `json:"data,omitempty"`           // Custom string map appended to the message.
	Language      string            `json:"language,omitempty"`       // BCP 47 tag for the web notification, defaults to en.

	// Android
	AndroidIcon string     `json:"android_icon,omitempty"`
	Color       string     `json:"color,omitempty"` // CSS-style hex color.
	Expiration  *time.Time `json:"expiration,omitempty"`
	IsPriority  bool       `json:"is_priority,omitempty"`

	// Web
	WebIcon    string      `json:"web_icon,omitempty"`
	WebActions []WebAction `json:"web_actions,omitempty"`
}

func (o *Options) language() string {
	if o.Language == "" {
		return "en"
	}

	return o.Language
}

// base is the embedded common part of every message variant. Field tags
// define the flat wire form shared by all variants.
type base struct {
	MessageID uuid.UUID  `json:"uuid"`
	Spec      TargetSpec `json:"targets"`
	Opts      Options    `json:"options"`
}

func newBase() base {
	return base{MessageID: uuid.New()}
}

func (b *base) ID() uuid.UUID        { return b.MessageID }
func (b *base) Targets() *TargetSpec { return &b.Spec }
func (b *base) Options() *Options    { return &b.Opts }

// AddTopic appends a topic target.
func (b *base) AddTopic(name string) { b.Spec.Topics = append(b.Spec.Topics, name) }

// AddDevice appends a raw registration-token target.
func (b *base) AddDevice(token string) { b.Spec.Devices = append(b.Spec.Devices, token) }

// AddUser appends a user target.
func (b *base) AddUser(userID string) { b.Spec.Users = append(b.Spec.Users, userID) }

// renderCommon builds the platform blocks every variant shares: APNs aps
// dictionary, Android config and web push config, all without alert text.
func (b *base) renderCommon() *messaging.Message {
	opts := &b.Opts

	// Apple specific
	aps := &messaging.Aps{
		Badge:            opts.BadgeCount,
		Sound:            opts.Sound,
		ContentAvailable: opts.DataAvailable,
		ThreadID:         opts.CollapseID,
	}
	apns := &messaging.APNSConfig{
		Payload: &messaging.APNSPayload{Aps: aps},
	}

	// Android specific
	androidNotification := &messaging.AndroidNotification{
		Icon:              opts.AndroidIcon,
		Color:             opts.Color,
		NotificationCount: opts.BadgeCount,
	}
	applySound(androidNotification, opts.Sound)

	android := &messaging.AndroidConfig{
		CollapseKey:  opts.CollapseID,
		Priority:     androidPriority(opts.IsPriority),
		Notification: androidNotification,
	}
	if ttl, ok := opts.ttl(); ok {
		android.TTL = &ttl
	}

	// Web specific
	web := &messaging.WebpushConfig{
		Notification: &messaging.WebpushNotification{
			Icon:     opts.WebIcon,
			Language: opts.language(),
			Actions:  webActions(opts.WebActions),
		},
	}

	data := opts.Data
	if data == nil {
		data = map[string]string{}
	}

	return &messaging.Message{
		Data:    data,
		APNS:    apns,
		Android: android,
		Webpush: web,
	}
}

// ttl derives the Android/APNs time-to-live from the expiration timestamp.
// An absent or already passed expiration means "no expiration".
func (o *Options) ttl() (time.Duration, bool) {
	if o.Expiration == nil {
		return 0, false
	}
	ttl := time.Until(*o.Expiration)
	if ttl < 0 {
		ttl = 0
	}

	return ttl, true
}

func androidPriority(isPriority bool) string {
	if isPriority {
		return "high"
	}

	return "normal"
}

func applySound(n *messaging.AndroidNotification, sound string) {
	switch sound {
	case "":
	case "default":
		n.DefaultSound = true
	default:
		n.Sound = sound
	}
}

func webActions(actions []WebAction) []*messaging.WebpushNotificationAction {
	out := make([]*messaging.WebpushNotificationAction, 0, len(actions))
	for _, a := range actions {
		out = append(out, &messaging.WebpushNotificationAction{
			Action: a.Action,
			Title:  a.Title,
			Icon:   a.Icon,
		})
	}

	return out
}
