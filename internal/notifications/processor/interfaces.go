package processor

import (
	"context"

	"loyalty-server/internal/store"
)

type TelegramSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) (string, error)
}

type PhoneSender interface {
	SendSMS(ctx context.Context, phone, body string) (string, error)
	SendWhatsApp(ctx context.Context, phone, body string) (string, error)
}

type NotificationStore interface {
	GetAgentByID(ctx context.Context, agentID string) (store.Agent, error)
	ListActiveQueue(ctx context.Context, queueType string, limit, offset int) ([]store.QueueListItem, int, error)
}
