package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=handler

import (
	"errors"
	"strings"

	"loyalty-server/internal/apierrors"
	"loyalty-server/internal/auth/processor"
	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	// InitDataHeader carries raw Telegram WebApp initData
	InitDataHeader = "X-Telegram-Init-Data"

	adminSubjectKey = "Admin-Subject"
	telegramUserKey = "Telegram-User"
)

type Handler struct {
	authProcessor TokenValidator
	logger        *observability.Logger
}

func New(authProcessor TokenValidator, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, logger: logger}
}

// HandleJWTMiddleware admits requests bearing a valid operator token
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Authorization token is missing or invalid"))
		c.Abort()
		return
	}

	claims, err := h.authProcessor.ValidateJWTToken(ctx, strings.TrimPrefix(tokenHeader, "Bearer "))
	if err != nil {
		if errors.Is(err, processor.ErrNotAdmin) {
			apierrors.RespondWithError(c, apierrors.Forbidden(err.Error()))
		} else {
			apierrors.RespondWithError(c, apierrors.Unauthorized(err.Error()))
		}
		c.Abort()
		return
	}

	c.Set(adminSubjectKey, claims.Subject)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "admin", Value: claims.Subject},
	))
	c.Next()
}

// HandleMiniAppMiddleware admits requests carrying signed Telegram initData,
// either in InitDataHeader or as "Authorization: tma <initData>".
func (h *Handler) HandleMiniAppMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	initData := c.GetHeader(InitDataHeader)
	if initData == "" {
		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "tma ") {
			initData = strings.TrimPrefix(auth, "tma ")
		}
	}

	session, err := h.authProcessor.ValidateInitData(ctx, initData)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.Unauthorized(err.Error()))
		c.Abort()
		return
	}

	c.Set(telegramUserKey, session.User)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "telegram_id", Value: session.User.ID},
	))
	c.Next()
}

// TelegramUser returns the Mini App user stored by HandleMiniAppMiddleware
func TelegramUser(c *gin.Context) (processor.TelegramUser, bool) {
	v, ok := c.Get(telegramUserKey)
	if !ok {
		return processor.TelegramUser{}, false
	}
	user, ok := v.(processor.TelegramUser)
	return user, ok
}

// AdminSubject returns the operator stored by HandleJWTMiddleware
func AdminSubject(c *gin.Context) string {
	return c.GetString(adminSubjectKey)
}
