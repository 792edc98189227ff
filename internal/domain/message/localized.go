package message

import (
	"regexp"

	"firebase.google.com/go/v4/messaging"
	"golang.org/x/text/language"
	xmessage "golang.org/x/text/message"
)

// KindLocalized is the wire discriminant of LocalizedPushMessage.
const KindLocalized = "localized"

// LocalizedPushMessage is the localizable message variant: display strings
// are localization keys with Android/printf style placeholders, resolved on
// the receiving client. The web payload is formatted server-side since web
// push has no client-side localization tables.
type LocalizedPushMessage struct {
	base

	TitleLoc  string   `json:"title_loc"`
	TitleArgs []string `json:"title_args,omitempty"`
	BodyLoc   string   `json:"body_loc"`
	BodyArgs  []string `json:"body_args,omitempty"`
	Link      string   `json:"link,omitempty"`
	// ActionLoc is the APNs action item key; no action is shown when empty.
	ActionLoc string `json:"action_loc,omitempty"`
}

// NewLocalizedPushMessage creates a localized message with a fresh message identifier.
func NewLocalizedPushMessage(titleLoc, bodyLoc string, titleArgs, bodyArgs []string) *LocalizedPushMessage {
	return &LocalizedPushMessage{
		base:      newBase(),
		TitleLoc:  titleLoc,
		TitleArgs: titleArgs,
		BodyLoc:   bodyLoc,
		BodyArgs:  bodyArgs,
	}
}

func (m *LocalizedPushMessage) Kind() string { return KindLocalized }

var (
	appleLocPattern   = regexp.MustCompile(`%(([0-9]*)\$)? ?['#0-9.,+hl-]*[a-zA-Z@]`)
	indexedLocPattern = regexp.MustCompile(`%([0-9]+)\$ ?['#0-9.,+hl-]*[a-zA-Z@]`)
	bareLocPattern    = regexp.MustCompile(`% ?['#0-9.,+hl-]*[a-zA-Z@]`)
)

// appleLoc converts Android/printf style format specifiers into the simpler
// %n$@ specifiers Apple uses in Localizable.strings.
func appleLoc(loc string) string {
	return appleLocPattern.ReplaceAllString(loc, "%${1}@")
}

// webLoc converts Android/printf style format specifiers into Go's indexed
// string verbs so the key can be formatted with the positional arguments.
// All placeholders become string verbs; the arguments are strings on the wire.
func webLoc(loc string) string {
	loc = indexedLocPattern.ReplaceAllString(loc, "%[${1}]s")

	return bareLocPattern.ReplaceAllString(loc, "%s")
}

// Render produces the platform payload without a recipient token. Platform
// alert blocks are only created when the common renderer has not populated
// them, so shared fields are never clobbered.
func (m *LocalizedPushMessage) Render() (*messaging.Message, error) {
	msg := m.renderCommon()
	if m.Link != "" {
		msg.Data["link"] = m.Link
	}

	// Apple specific
	apns := msg.APNS
	if apns == nil {
		apns = &messaging.APNSConfig{}
		msg.APNS = apns
	}
	if apns.Payload == nil {
		apns.Payload = &messaging.APNSPayload{}
	}
	aps := apns.Payload.Aps
	if aps == nil {
		aps = &messaging.Aps{
			Badge:            m.Opts.BadgeCount,
			Sound:            m.Opts.Sound,
			ContentAvailable: m.Opts.DataAvailable,
			ThreadID:         m.Opts.CollapseID,
		}
		apns.Payload.Aps = aps
	}
	aps.Alert = &messaging.ApsAlert{
		LocKey:       appleLoc(m.BodyLoc),
		LocArgs:      m.BodyArgs,
		TitleLocKey:  appleLoc(m.TitleLoc),
		TitleLocArgs: m.TitleArgs,
		ActionLocKey: m.ActionLoc,
	}

	// Android specific
	android := msg.Android
	if android == nil {
		android = &messaging.AndroidConfig{
			CollapseKey: m.Opts.CollapseID,
			Priority:    androidPriority(m.Opts.IsPriority),
		}
		if ttl, ok := m.Opts.ttl(); ok {
			android.TTL = &ttl
		}
		msg.Android = android
	}
	androidNotification := &messaging.AndroidNotification{
		Icon:              m.Opts.AndroidIcon,
		Color:             m.Opts.Color,
		BodyLocKey:        m.BodyLoc,
		BodyLocArgs:       m.BodyArgs,
		TitleLocKey:       m.TitleLoc,
		TitleLocArgs:      m.TitleArgs,
		NotificationCount: m.Opts.BadgeCount,
	}
	applySound(androidNotification, m.Opts.Sound)
	android.Notification = androidNotification

	// Web specific
	web := msg.Webpush
	if web == nil {
		web = &messaging.WebpushConfig{}
		msg.Webpush = web
	}
	printer := xmessage.NewPrinter(language.Make(m.Opts.language()))
	web.Notification = &messaging.WebpushNotification{
		Title:    printer.Sprintf(webLoc(m.TitleLoc), anyArgs(m.TitleArgs)...),
		Body:     printer.Sprintf(webLoc(m.BodyLoc), anyArgs(m.BodyArgs)...),
		Icon:     m.Opts.WebIcon,
		Language: m.Opts.language(),
		Actions:  webActions(m.Opts.WebActions),
	}

	return msg, nil
}

func anyArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}

	return out
}
