package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"net/http"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/observability"
	"loyalty-server/internal/segments/processor"
	"loyalty-server/internal/store"

	"github.com/gin-gonic/gin"
)

type SegmentService interface {
	Recompute(ctx context.Context) (processor.RecomputeResult, error)
	GetSegment(ctx context.Context, agentID string) (store.CustomerSegment, error)
}

type Handler struct {
	segments SegmentService
	logger   *observability.Logger
}

func New(segments SegmentService, logger *observability.Logger) Handler {
	return Handler{
		segments: segments,
		logger:   logger,
	}
}

// HandleRecompute rebuilds RFM segments on demand
func (h *Handler) HandleRecompute(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.segments.Recompute(ctx)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetSegment returns the RFM segment of an agent
func (h *Handler) HandleGetSegment(c *gin.Context) {
	ctx := c.Request.Context()
	agentID := c.Param("agent_id")
	ctx = observability.WithFields(ctx, observability.Field{Key: "agent_id", Value: agentID})

	seg, err := h.segments.GetSegment(ctx, agentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, seg)
}
