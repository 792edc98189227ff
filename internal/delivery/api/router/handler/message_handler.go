package handler

import (
	"log/slog"
	"net/http"

	"pushgate/config"
	"pushgate/internal/delivery/api/middleware"
	"pushgate/internal/delivery/api/response"
	"pushgate/internal/dispatch"
	"pushgate/internal/domain/message"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	Config *config.Config
	Sender *dispatch.Sender
	Logger *slog.Logger
}

// MessageHandler holds dependencies for message submission handlers
type MessageHandler struct {
	defaultLanguage string
	sender          *dispatch.Sender
	logger          *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	defaultLanguage := ""
	if params.Config.Push != nil {
		defaultLanguage = params.Config.Push.DefaultLanguage
	}

	return &MessageHandler{
		defaultLanguage: defaultLanguage,
		sender:          params.Sender,
		logger:          params.Logger,
	}
}

// SendMessageRequest represents the request body for submitting a message.
// Plain messages carry title and body; localized messages carry localization
// keys resolved on the receiving device.
type SendMessageRequest struct {
	Kind string `json:"kind" validate:"required,oneof=push localized"`

	Title string `json:"title" validate:"required_if=Kind push"`
	Body  string `json:"body" validate:"required_if=Kind push"`

	TitleLoc  string   `json:"title_loc" validate:"required_if=Kind localized"`
	TitleArgs []string `json:"title_args"`
	BodyLoc   string   `json:"body_loc" validate:"required_if=Kind localized"`
	BodyArgs  []string `json:"body_args"`
	ActionLoc string   `json:"action_loc"`

	Link string `json:"link"`

	Targets message.TargetSpec `json:"targets"`
	Options *message.Options   `json:"options"`
}

// SendMessage handles message submission for asynchronous delivery
func (h *MessageHandler) SendMessage(c echo.Context) error {
	if _, ok := middleware.GetUserID(c); !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	msg := buildMessage(&req)
	if msg.Options().Language == "" {
		msg.Options().Language = h.defaultLanguage
	}

	if err := h.sender.Send(c.Request().Context(), msg); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, map[string]string{
		"message_id": msg.ID().String(),
	})
}

// buildMessage converts the request body into the matching message variant.
func buildMessage(req *SendMessageRequest) message.Message {
	var msg message.Message
	switch req.Kind {
	case message.KindLocalized:
		localized := message.NewLocalizedPushMessage(req.TitleLoc, req.BodyLoc, req.TitleArgs, req.BodyArgs)
		localized.Link = req.Link
		localized.ActionLoc = req.ActionLoc
		msg = localized
	default:
		plain := message.NewPushMessage(req.Title, req.Body)
		plain.Link = req.Link
		msg = plain
	}

	*msg.Targets() = req.Targets
	if req.Options != nil {
		*msg.Options() = *req.Options
	}

	return msg
}
