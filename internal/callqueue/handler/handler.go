package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"
	"strconv"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/callqueue/processor"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type QueueService interface {
	Reclassify(ctx context.Context) (processor.ReclassifyResult, error)
	ListQueue(ctx context.Context, queueType string, limit, offset int) (processor.QueuePage, error)
}

type Handler struct {
	queues QueueService
	logger *observability.Logger
}

func New(queues QueueService, logger *observability.Logger) Handler {
	return Handler{
		queues: queues,
		logger: logger,
	}
}

// HandleListQueue returns a page of a call queue in call order
func (h *Handler) HandleListQueue(c *gin.Context) {
	ctx := c.Request.Context()
	queueType := c.Param("queue_type")
	ctx = observability.WithFields(ctx, observability.Field{Key: "queue_type", Value: queueType})

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

	page, err := h.queues.ListQueue(ctx, queueType, limit, offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleReclassify rebuilds every call queue on demand
func (h *Handler) HandleReclassify(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.queues.Reclassify(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	h.logger.Info(ctx, "manual reclassification finished")
	c.JSON(http.StatusOK, result)
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
