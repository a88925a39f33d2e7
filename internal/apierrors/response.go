package apierrors

import (
	"errors"
	"net/http"

	"loyalty-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var logger = observability.NewLogger().Named("api")

// ErrorResponse is the body of every non-2xx API response. RequestID echoes
// the X-Request-ID header so operators can find the matching log lines.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respond(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: c.Writer.Header().Get(observability.RequestIDHeader),
	})
}

// RespondWithError maps err through MapError and sends the sanitized body.
// 5xx responses log the internal cause; 4xx only log the mapped code.
//
//	if err != nil {
//	    apierrors.RespondWithError(c, err)
//	    return
//	}
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := MapError(err)
	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
	)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "api error response", apiErr.Internal)
	} else {
		logger.Info(ctx, apiErr.Message)
	}

	respond(c, apiErr.StatusCode, apiErr.Code, apiErr.Message)
}

// RespondWithValidationError answers a failed c.ShouldBindJSON (or query
// binding) with 400 INVALID_INPUT.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.WarnWithError(ctx, "validation failed", err)
		respond(c, http.StatusBadRequest, CodeInvalidInput, buildValidationMessage(validationErrs))
		return
	}

	logger.WarnWithError(ctx, "request binding failed", err)
	respond(c, http.StatusBadRequest, CodeInvalidInput, "Invalid request format. Please check your JSON syntax.")
}
