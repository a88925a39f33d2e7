package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"net/http"
	"strconv"
	"time"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/bonus/processor"
	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	bonus  BonusService
	tiers  TierReader
	logger *observability.Logger
}

func New(bonus BonusService, tiers TierReader, logger *observability.Logger) Handler {
	return Handler{
		bonus:  bonus,
		tiers:  tiers,
		logger: logger,
	}
}

// AccrualRequest represents the HTTP request for a manual accrual
type AccrualRequest struct {
	Amount          int64   `json:"amount" binding:"required,gt=0"`
	Description     string  `json:"description" binding:"max=500"`
	RelatedDemandID *string `json:"related_demand_id,omitempty"`
}

// RedemptionRequest represents the HTTP request for spending bonus
type RedemptionRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	CheckAmount *int64 `json:"check_amount,omitempty" binding:"omitempty,gt=0"`
	Description string `json:"description" binding:"max=500"`
}

// PurchaseRequest represents an ERP demand pushed for accrual
type PurchaseRequest struct {
	DemandID string     `json:"demand_id" binding:"required,max=255"`
	Amount   int64      `json:"amount" binding:"gte=0"`
	Moment   *time.Time `json:"moment,omitempty"`
}

// HandleGetBalance returns the cached balance of an agent
func (h *Handler) HandleGetBalance(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	balance, err := h.bonus.GetBalance(ctx, agentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

// HandleVerifyBalance replays the ledger of an agent. A divergence is still a
// 200; the body carries consistent=false.
func (h *Handler) HandleVerifyBalance(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	result, err := h.bonus.VerifyBalance(ctx, agentID)
	if err != nil && !domain.IsWarning(err) {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetTier returns the loyalty tier view of an agent
func (h *Handler) HandleGetTier(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	tier, err := h.tiers.GetAgentTier(ctx, agentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, tier)
}

// HandleAccrue credits bonus to an agent
func (h *Handler) HandleAccrue(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	var req AccrualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.bonus.AppendTransaction(ctx, processor.AppendTransactionRequest{
		AgentID:         agentID,
		Type:            store.TransactionTypeAccrual,
		Amount:          req.Amount,
		Description:     req.Description,
		RelatedDemandID: req.RelatedDemandID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleRedeem debits bonus from an agent
func (h *Handler) HandleRedeem(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	var req RedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.bonus.Redeem(ctx, processor.RedeemRequest{
		AgentID:     agentID,
		Amount:      req.Amount,
		CheckAmount: req.CheckAmount,
		Description: req.Description,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleAccruePurchase applies a purchase to the agent's spend and bonus.
// Re-posting an applied demand returns 200 with duplicate=true.
func (h *Handler) HandleAccruePurchase(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	procReq := processor.AccruePurchaseRequest{
		AgentID:  agentID,
		DemandID: req.DemandID,
		Amount:   req.Amount,
	}
	if req.Moment != nil {
		procReq.Moment = *req.Moment
	}

	result, err := h.bonus.AccruePurchase(ctx, procReq)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, result)
}

// HandleListTransactions lists ledger entries, optionally filtered
func (h *Handler) HandleListTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	limit, offset, ok := paging(c)
	if !ok {
		return
	}

	page, err := h.bonus.ListTransactions(ctx, processor.ListTransactionsRequest{
		AgentID: c.Query("agent_id"),
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

// paging parses limit and offset query parameters, responding 400 on
// malformed input
func paging(c *gin.Context) (int, int, bool) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "limit must be an integer"))
		return 0, 0, false
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "offset must be an integer"))
		return 0, 0, false
	}
	return limit, offset, true
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
