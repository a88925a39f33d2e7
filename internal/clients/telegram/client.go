package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	serviceName    = "telegram"
	defaultTimeout = 10 * time.Second
)

// Client sends bot messages to customers who opened the Mini App
type Client struct {
	bot       *tgbotapi.BotAPI
	webAppURL string
	logger    *observability.Logger
}

// NewClientWithEndpoint authenticates the bot token against the Bot API at
// endpoint, formatted like tgbotapi.APIEndpoint. Every Bot API call is
// bounded by timeout; a non-positive timeout means 10s.
func NewClientWithEndpoint(token, endpoint, webAppURL string, timeout time.Duration, logger *observability.Logger) (*Client, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Client{bot: bot, webAppURL: webAppURL, logger: logger}, nil
}

type sendResult struct {
	msg tgbotapi.Message
	err error
}

// SendMessage delivers text to a chat and returns the Telegram message id.
// When a web app URL is configured the message carries a button opening it.
// The Bot API library takes no context, so the call returns at ctx's
// deadline while the request itself ends at the client timeout.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if c.webAppURL != "" {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("Open loyalty card", c.webAppURL),
			),
		)
	}

	done := make(chan sendResult, 1)
	go func() {
		sent, err := c.bot.Send(msg)
		done <- sendResult{msg: sent, err: err}
	}()

	var sent tgbotapi.Message
	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case res := <-done:
		sent, err = res.msg, res.err
	}
	if err != nil {
		c.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "chat_id", Value: chatID},
		), "telegram send failed", err)
		return "", &domain.UpstreamTransportError{Service: serviceName, Err: err}
	}
	return strconv.Itoa(sent.MessageID), nil
}
