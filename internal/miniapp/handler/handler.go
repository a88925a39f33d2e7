package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"net/http"
	"strconv"

	"loyalty-server/internal/apierrors"
	authhandler "loyalty-server/internal/auth/handler"
	"loyalty-server/internal/bonus/processor"
	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"
	"loyalty-server/internal/tiers"

	"github.com/gin-gonic/gin"
)

// Handler serves the customer-facing Telegram Mini App. Every route runs
// behind the initData middleware and acts on the linked customer only.
type Handler struct {
	agents   AgentResolver
	bonus    BonusService
	tiers    TierReader
	segments SegmentReader
	logger   *observability.Logger
}

func New(agents AgentResolver, bonus BonusService, tiers TierReader, segments SegmentReader, logger *observability.Logger) Handler {
	return Handler{
		agents:   agents,
		bonus:    bonus,
		tiers:    tiers,
		segments: segments,
		logger:   logger,
	}
}

// MeResponse is the loyalty card shown on the Mini App home screen
type MeResponse struct {
	tiers.AgentTier
	Segment *store.CustomerSegment `json:"segment,omitempty"`
}

// RedemptionRequest is a customer spending bonus against a check
type RedemptionRequest struct {
	Amount      int64 `json:"amount" binding:"required,gt=0"`
	CheckAmount int64 `json:"check_amount" binding:"required,gt=0"`
}

// HandleMe returns the balance, tier and segment of the signed-in customer
func (h *Handler) HandleMe(c *gin.Context) {
	agent, ok := h.resolve(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	tier, err := h.tiers.GetAgentTier(ctx, agent.AgentID)
	if err != nil && !domain.IsWarning(err) {
		apierrors.RespondWithError(c, err)
		return
	}
	resp := MeResponse{AgentTier: tier}

	seg, err := h.segments.GetSegment(ctx, agent.AgentID)
	var notFound *domain.NotFoundError
	switch {
	case err == nil:
		resp.Segment = &seg
	case errors.As(err, &notFound):
	default:
		h.logger.WarnWithError(ctx, "segment unavailable", err)
	}

	c.JSON(http.StatusOK, resp)
}

// HandleTransactions returns the customer's own ledger
func (h *Handler) HandleTransactions(c *gin.Context) {
	agent, ok := h.resolve(c)
	if !ok {
		return
	}

	limit, err := queryInt(c, "limit")
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "limit must be an integer"))
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "offset must be an integer"))
		return
	}

	page, err := h.bonus.ListTransactions(c.Request.Context(), processor.ListTransactionsRequest{
		AgentID: agent.AgentID,
		Type:    c.Query("type"),
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleRedeem spends bonus of the signed-in customer, capped by the check
func (h *Handler) HandleRedeem(c *gin.Context) {
	agent, ok := h.resolve(c)
	if !ok {
		return
	}

	var req RedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.bonus.Redeem(c.Request.Context(), processor.RedeemRequest{
		AgentID:     agent.AgentID,
		Amount:      req.Amount,
		CheckAmount: &req.CheckAmount,
		Description: "Mini App redemption",
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// resolve maps the Telegram user of the request to a customer, responding
// 404 when the account is not linked.
func (h *Handler) resolve(c *gin.Context) (store.Agent, bool) {
	user, ok := authhandler.TelegramUser(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("telegram session is missing"))
		return store.Agent{}, false
	}

	agent, err := h.agents.ResolveTelegram(c.Request.Context(), user.ID)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			apierrors.RespondWithError(c, apierrors.NotFound(apierrors.CodeNotFound, "telegram account is not linked to a customer"))
			return store.Agent{}, false
		}
		apierrors.RespondWithError(c, err)
		return store.Agent{}, false
	}

	c.Request = c.Request.WithContext(observability.WithFields(c.Request.Context(),
		observability.Field{Key: "agent_id", Value: agent.AgentID},
	))
	return agent, true
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
