package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strconv"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/contacts/processor"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type ContactService interface {
	RecordContact(ctx context.Context, req processor.RecordContactRequest) (processor.RecordContactResult, error)
	ListContacts(ctx context.Context, agentID string, limit, offset int) (processor.ContactPage, error)
}

type Handler struct {
	contacts ContactService
	logger   *observability.Logger
}

func New(contacts ContactService, logger *observability.Logger) Handler {
	return Handler{
		contacts: contacts,
		logger:   logger,
	}
}

// RecordContactRequest represents the HTTP request for logging an outreach attempt
type RecordContactRequest struct {
	AgentID     string `json:"agent_id" binding:"required"`
	QueueType   string `json:"queue_type" binding:"required,oneof=reactivation_high pre_to vip_frequent data_poor"`
	ContactType string `json:"contact_type" binding:"required,oneof=call message"`
	Result      string `json:"result" binding:"required,oneof=success no_answer not_interested callback pending"`
	Notes       string `json:"notes" binding:"max=2000"`
}

// HandleRecordContact logs a contact against the customer's active queue entry
func (h *Handler) HandleRecordContact(c *gin.Context) {
	ctx := c.Request.Context()

	var req RecordContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "agent_id", Value: req.AgentID},
		observability.Field{Key: "queue_type", Value: req.QueueType},
	)

	result, err := h.contacts.RecordContact(ctx, processor.RecordContactRequest{
		AgentID:     req.AgentID,
		QueueType:   req.QueueType,
		ContactType: req.ContactType,
		Result:      req.Result,
		Notes:       req.Notes,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleListContacts returns the contact history of an agent
func (h *Handler) HandleListContacts(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

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

	page, err := h.contacts.ListContacts(ctx, agentID, limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
