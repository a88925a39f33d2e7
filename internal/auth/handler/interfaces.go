package handler

import (
	"context"

	"loyalty-server/internal/auth/processor"
)

type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
	ValidateInitData(ctx context.Context, initData string) (processor.MiniAppSession, error)
}
