package telegram

import (
	"context"

	"github.com/gabapcia/transferwatch/internal/watchregistry"
)

// Ensure client implements the watchregistry.NotificationSink interface at compile time.
var _ watchregistry.NotificationSink = (*client)(nil)

type linkPreviewOptions struct {
	IsDisabled bool `json:"is_disabled"`
}

type sendMessageRequest struct {
	ChatID             int64              `json:"chat_id"`
	Text               string             `json:"text"`
	ParseMode          string             `json:"parse_mode"`
	LinkPreviewOptions linkPreviewOptions `json:"link_preview_options"`
}

// Send implements watchregistry.NotificationSink. text is sent with HTML
// markup and without link previews to the chat identified by owner.
func (c *client) Send(ctx context.Context, owner watchregistry.Owner, text string) error {
	_, err := c.post(ctx, c.sendClient, "sendMessage", sendMessageRequest{
		ChatID:             int64(owner),
		Text:               text,
		ParseMode:          "HTML",
		LinkPreviewOptions: linkPreviewOptions{IsDisabled: true},
	})
	return err
}
