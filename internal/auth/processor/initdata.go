package processor

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"loyalty-server/internal/observability"
)

// TelegramUser is the user object Telegram embeds in Mini App initData
type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// MiniAppSession is a verified initData payload
type MiniAppSession struct {
	User     TelegramUser
	AuthDate time.Time
}

// ValidateInitData verifies the Telegram WebApp signature of raw initData.
// The secret key is HMAC-SHA256("WebAppData", botToken) and the hash covers
// all other fields sorted by key and joined with newlines.
func (p *AuthProcessor) ValidateInitData(ctx context.Context, initData string) (MiniAppSession, error) {
	if initData == "" {
		return MiniAppSession{}, ErrMissingInitData
	}
	if p.botToken == "" {
		p.logger.Warn(ctx, "mini app login rejected, bot token not configured")
		return MiniAppSession{}, ErrInvalidInitData
	}
	values, err := url.ParseQuery(initData)
	if err != nil {
		p.logger.WarnWithError(ctx, "failed to parse init data", err)
		return MiniAppSession{}, ErrInvalidInitData
	}

	hash := values.Get("hash")
	if hash == "" {
		return MiniAppSession{}, ErrInvalidInitData
	}
	expected, err := hex.DecodeString(hash)
	if err != nil {
		return MiniAppSession{}, ErrInvalidInitData
	}
	if !hmac.Equal(p.initDataSignature(values), expected) {
		p.logger.Warn(ctx, "init data signature mismatch")
		return MiniAppSession{}, ErrInvalidInitData
	}

	authUnix, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return MiniAppSession{}, ErrInvalidInitData
	}
	authDate := time.Unix(authUnix, 0)
	if p.initDataMaxAge > 0 && p.now().Sub(authDate) > p.initDataMaxAge {
		return MiniAppSession{}, ErrExpiredInitData
	}

	var user TelegramUser
	if err := json.Unmarshal([]byte(values.Get("user")), &user); err != nil || user.ID == 0 {
		return MiniAppSession{}, ErrInvalidInitData
	}

	p.logger.Debug(observability.WithFields(ctx,
		observability.Field{Key: "telegram_id", Value: user.ID},
	), "mini app session verified")
	return MiniAppSession{User: user, AuthDate: authDate}, nil
}

// SignInitData produces the hash field Telegram would attach to values
func (p *AuthProcessor) SignInitData(values url.Values) string {
	return hex.EncodeToString(p.initDataSignature(values))
}

func (p *AuthProcessor) initDataSignature(values url.Values) []byte {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == "hash" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, values.Get(k)))
	}

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(p.botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(strings.Join(pairs, "\n")))
	return mac.Sum(nil)
}
