package message

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushMessage_Render(t *testing.T) {
	msg := NewPushMessage("Dinner", "Your order is ready")
	msg.Link = "https://example.com/orders/42"
	msg.Opts.Sound = "default"
	msg.Opts.CollapseID = "order-42"
	badge := 3
	msg.Opts.BadgeCount = &badge
	msg.Opts.IsPriority = true

	payload, err := msg.Render()
	require.NoError(t, err)

	require.NotNil(t, payload.Notification)
	assert.Equal(t, "Dinner", payload.Notification.Title)
	assert.Equal(t, "Your order is ready", payload.Notification.Body)
	assert.Equal(t, "https://example.com/orders/42", payload.Data["link"])
	assert.Empty(t, payload.Token)

	require.NotNil(t, payload.APNS)
	aps := payload.APNS.Payload.Aps
	assert.Equal(t, &badge, aps.Badge)
	assert.Equal(t, "default", aps.Sound)
	assert.Equal(t, "order-42", aps.ThreadID)

	require.NotNil(t, payload.Android)
	assert.Equal(t, "high", payload.Android.Priority)
	assert.Equal(t, "order-42", payload.Android.CollapseKey)
	assert.True(t, payload.Android.Notification.DefaultSound)
	assert.Equal(t, &badge, payload.Android.Notification.NotificationCount)
}

func TestPushMessage_Render_Expiration(t *testing.T) {
	msg := NewPushMessage("t", "b")
	expiration := time.Now().Add(time.Hour)
	msg.Opts.Expiration = &expiration

	payload, err := msg.Render()
	require.NoError(t, err)

	require.NotNil(t, payload.Android.TTL)
	assert.InDelta(t, time.Hour, *payload.Android.TTL, float64(time.Minute))
}

func TestPushMessage_Render_PastExpirationClampsToZero(t *testing.T) {
	msg := NewPushMessage("t", "b")
	expiration := time.Now().Add(-time.Hour)
	msg.Opts.Expiration = &expiration

	payload, err := msg.Render()
	require.NoError(t, err)

	require.NotNil(t, payload.Android.TTL)
	assert.Equal(t, time.Duration(0), *payload.Android.TTL)
}

func TestLocalizedPushMessage_Render(t *testing.T) {
	msg := NewLocalizedPushMessage(
		"order_title",
		"order_ready_for %1$s at %2$s",
		nil,
		[]string{"Alice", "Noodle Bar"},
	)
	msg.ActionLoc = "order_view"
	msg.Opts.Language = "en"

	payload, err := msg.Render()
	require.NoError(t, err)

	alert := payload.APNS.Payload.Aps.Alert
	require.NotNil(t, alert)
	assert.Equal(t, "order_title", alert.TitleLocKey)
	assert.Equal(t, "order_ready_for %1@ at %2@", alert.LocKey)
	assert.Equal(t, []string{"Alice", "Noodle Bar"}, alert.LocArgs)
	assert.Equal(t, "order_view", alert.ActionLocKey)

	android := payload.Android.Notification
	assert.Equal(t, "order_ready_for %1$s at %2$s", android.BodyLocKey)
	assert.Equal(t, []string{"Alice", "Noodle Bar"}, android.BodyLocArgs)
	assert.Equal(t, "order_title", android.TitleLocKey)

	web := payload.Webpush.Notification
	assert.Equal(t, "order_title", web.Title)
	assert.Equal(t, "order_ready_for Alice at Noodle Bar", web.Body)
	assert.Equal(t, "en", web.Language)

	// Localized messages never carry a literal notification block.
	assert.Nil(t, payload.Notification)
}

func TestAppleLoc(t *testing.T) {
	assert.Equal(t, "hello %@", appleLoc("hello %s"))
	assert.Equal(t, "hello %1@ and %2@", appleLoc("hello %1$s and %2$s"))
	assert.Equal(t, "count %@", appleLoc("count %d"))
	assert.Equal(t, "width %@", appleLoc("width %-8.2f"))
	assert.Equal(t, "no placeholder", appleLoc("no placeholder"))
}

func TestWebLoc(t *testing.T) {
	assert.Equal(t, "hello %s", webLoc("hello %s"))
	assert.Equal(t, "hello %[2]s and %[1]s", webLoc("hello %2$s and %1$s"))
	assert.Equal(t, "count %s", webLoc("count %d"))
	assert.Equal(t, "no placeholder", webLoc("no placeholder"))
}

func TestTargetSpec_EffectiveTopic(t *testing.T) {
	spec := &TargetSpec{}
	assert.Equal(t, DefaultTopic, spec.EffectiveTopic())

	spec.Topics = []string{"news", "sports"}
	assert.Equal(t, "news", spec.EffectiveTopic())
}

func TestCodec_RoundTrip(t *testing.T) {
	original := NewPushMessage("Dinner", "Ready")
	original.Link = "https://example.com"
	original.AddUser("user-1")
	original.AddTopic("news")
	original.Opts.Sound = "chime"

	raw, err := Marshal(original)
	require.NoError(t, err)

	decoded, err := Unmarshal(raw)
	require.NoError(t, err)

	restored, ok := decoded.(*PushMessage)
	require.True(t, ok)
	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.Title, restored.Title)
	assert.Equal(t, original.Body, restored.Body)
	assert.Equal(t, original.Link, restored.Link)
	assert.Equal(t, original.Spec, restored.Spec)
	assert.Equal(t, original.Opts, restored.Opts)
}

func TestCodec_RoundTrip_Localized(t *testing.T) {
	original := NewLocalizedPushMessage("title_key", "body_key %1$s", nil, []string{"x"})
	original.AddDevice("token-a")

	raw, err := Marshal(original)
	require.NoError(t, err)

	decoded, err := Unmarshal(raw)
	require.NoError(t, err)

	restored, ok := decoded.(*LocalizedPushMessage)
	require.True(t, ok)
	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.BodyLoc, restored.BodyLoc)
	assert.Equal(t, original.BodyArgs, restored.BodyArgs)

	originalPayload, err := original.Render()
	require.NoError(t, err)
	restoredPayload, err := restored.Render()
	require.NoError(t, err)
	assert.Equal(t, originalPayload, restoredPayload)
}

func TestCodec_UnknownKind(t *testing.T) {
	_, err := Unmarshal([]byte(`{"kind":"carrier-pigeon"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
}
