package telegram

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/transferwatch/internal/handlers/bot"
)

// Ensure client implements the bot.UpdateSource interface at compile time.
var _ bot.UpdateSource = (*client)(nil)

type (
	// User is a Telegram user or bot account.
	User struct {
		ID       int64  `json:"id"`
		IsBot    bool   `json:"is_bot"`
		Username string `json:"username"`
	}

	// Chat is the conversation a message belongs to.
	Chat struct {
		ID   int64  `json:"id"`
		Type string `json:"type"`
	}

	// Message is an inbound chat message. Only text messages are relevant.
	Message struct {
		MessageID int64  `json:"message_id"`
		From      *User  `json:"from"`
		Chat      Chat   `json:"chat"`
		Text      string `json:"text"`
	}

	// Update is one entry returned by getUpdates.
	Update struct {
		UpdateID int64    `json:"update_id"`
		Message  *Message `json:"message"`
	}
)

type getUpdatesRequest struct {
	Offset         int64    `json:"offset"`
	Timeout        int      `json:"timeout"`
	AllowedUpdates []string `json:"allowed_updates"`
}

// toBotMessage converts an update for the command handler. Updates without
// a message keep their id so the offset still advances past them.
func (u Update) toBotMessage() bot.Message {
	m := bot.Message{UpdateID: u.UpdateID}
	if u.Message != nil {
		m.ChatID = u.Message.Chat.ID
		m.Text = u.Message.Text
	}
	return m
}

// GetUpdates long-polls for updates with an id of at least offset.
func (c *client) GetUpdates(ctx context.Context, offset int64) ([]Update, error) {
	data, err := c.call(ctx, "getUpdates", getUpdatesRequest{
		Offset:         offset,
		Timeout:        int(c.cfg.pollTimeout.Seconds()),
		AllowedUpdates: []string{"message"},
	})
	if err != nil {
		return nil, err
	}

	var updates []Update
	return updates, json.Unmarshal(data, &updates)
}

// Updates implements bot.UpdateSource.
func (c *client) Updates(ctx context.Context, offset int64) ([]bot.Message, error) {
	updates, err := c.GetUpdates(ctx, offset)
	if err != nil {
		return nil, err
	}

	messages := make([]bot.Message, len(updates))
	for i, u := range updates {
		messages[i] = u.toBotMessage()
	}
	return messages, nil
}

// Acknowledge implements bot.UpdateSource. It issues a getUpdates with a zero
// timeout, which confirms every update below offset without waiting.
func (c *client) Acknowledge(ctx context.Context, offset int64) error {
	_, err := c.call(ctx, "getUpdates", getUpdatesRequest{
		Offset:         offset,
		Timeout:        0,
		AllowedUpdates: []string{"message"},
	})
	return err
}

// GetMe returns the bot's own account.
func (c *client) GetMe(ctx context.Context) (User, error) {
	data, err := c.call(ctx, "getMe", struct{}{})
	if err != nil {
		return User{}, err
	}

	var me User
	return me, json.Unmarshal(data, &me)
}
