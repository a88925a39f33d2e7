package processor

import (
	"errors"
	"time"

	"loyalty-server/internal/observability"
)

var (
	ErrInvalidJWTToken = errors.New("invalid jwt token")
	ErrParseJWTToken   = errors.New("failed to parse jwt token")
	ErrExpiredToken    = errors.New("token expired")
	ErrNotAdmin        = errors.New("token does not grant admin access")
	ErrFailedSign      = errors.New("failed to sign token")

	ErrMissingInitData = errors.New("telegram init data is missing")
	ErrInvalidInitData = errors.New("telegram init data signature is invalid")
	ErrExpiredInitData = errors.New("telegram init data is too old")
)

const (
	issuer    = "loyalty-server"
	RoleAdmin = "admin"
)

// AuthProcessor validates operator tokens and Telegram Mini App sessions
type AuthProcessor struct {
	jwtSecret      string
	botToken       string
	initDataMaxAge time.Duration
	logger         *observability.Logger
	now            func() time.Time
}

// New creates an AuthProcessor. botToken signs Mini App initData; maxAge
// bounds how old an initData payload may be, zero disables the check.
func New(jwtSecret, botToken string, maxAge time.Duration, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret:      jwtSecret,
		botToken:       botToken,
		initDataMaxAge: maxAge,
		logger:         logger,
		now:            time.Now,
	}
}
