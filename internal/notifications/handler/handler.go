package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/notifications/processor"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Notifier interface {
	SendToCustomer(ctx context.Context, req processor.SendRequest) (processor.CustomerResult, error)
	BroadcastToQueue(ctx context.Context, req processor.BroadcastRequest) (processor.BroadcastResult, error)
}

type Handler struct {
	notifier Notifier
	logger   *observability.Logger
}

func New(notifier Notifier, logger *observability.Logger) Handler {
	return Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// SendRequest represents the HTTP request for notifying one customer
type SendRequest struct {
	AgentID  string   `json:"agent_id" binding:"required"`
	Message  string   `json:"message" binding:"required,max=4096"`
	Channels []string `json:"channels" binding:"required,min=1,dive,oneof=telegram sms whatsapp"`
}

// BroadcastRequest represents the HTTP request for notifying a whole queue
type BroadcastRequest struct {
	Message  string   `json:"message" binding:"required,max=4096"`
	Channels []string `json:"channels" binding:"required,min=1,dive,oneof=telegram sms whatsapp"`
}

// HandleSend notifies a single customer
func (h *Handler) HandleSend(c *gin.Context) {
	ctx := c.Request.Context()

	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: req.AgentID})

	result, err := h.notifier.SendToCustomer(ctx, processor.SendRequest{
		AgentID:  req.AgentID,
		Message:  req.Message,
		Channels: req.Channels,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleBroadcast notifies every active customer of a queue
func (h *Handler) HandleBroadcast(c *gin.Context) {
	ctx := c.Request.Context()
	queueType := c.Param("queue_type")
	ctx = observability.WithFields(ctx, observability.Field{Key: "queue_type", Value: queueType})

	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.notifier.BroadcastToQueue(ctx, processor.BroadcastRequest{
		QueueType: queueType,
		Message:   req.Message,
		Channels:  req.Channels,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
