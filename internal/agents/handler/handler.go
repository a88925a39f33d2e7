package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"loyalty-server/internal/agents/processor"
	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/gin-gonic/gin"
)

type AgentService interface {
	GetProfile(ctx context.Context, agentID string) (processor.Profile, error)
	LinkTelegram(ctx context.Context, agentID string, telegramID int64) (store.Agent, error)
}

type Handler struct {
	agents AgentService
	logger *observability.Logger
}

func New(agents AgentService, logger *observability.Logger) Handler {
	return Handler{
		agents: agents,
		logger: logger,
	}
}

// LinkTelegramRequest binds a Telegram user to a customer
type LinkTelegramRequest struct {
	TelegramID int64 `json:"telegram_id" binding:"required,gt=0"`
}

// HandleGetAgent returns the customer card with its active queues
func (h *Handler) HandleGetAgent(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	profile, err := h.agents.GetProfile(ctx, agentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// HandleLinkTelegram links a Telegram account so the customer can open the Mini App
func (h *Handler) HandleLinkTelegram(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	var req LinkTelegramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	agent, err := h.agents.LinkTelegram(ctx, agentID, req.TelegramID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, agent)
}
