package moysklad

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"loyalty-server/internal/domain"
	"loyalty-server/internal/observability"

	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"github.com/sony/gobreaker"
)

const (
	serviceName      = "moysklad"
	defaultPageSize  = 100
	defaultCacheTTL  = 30 * time.Minute
	retryAfterHeader = "X-Lognex-Retry-After"
)

type Config struct {
	BaseURL  string
	Token    string
	Timeout  time.Duration
	PageSize int
	CacheTTL time.Duration
}

// Client reads shipments and counterparties from the MoySklad JSON API.
// Calls go through a circuit breaker; counterparties are cached.
type Client struct {
	http           *resty.Client
	breaker        *gobreaker.CircuitBreaker
	counterparties *cache.Cache
	pageSize       int
	metrics        *observability.Metrics
	logger         *observability.Logger
}

func NewClient(cfg Config, metrics *observability.Metrics, logger *observability.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.Token).
		SetHeader("Accept", "application/json;charset=utf-8").
		SetTimeout(timeout)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        serviceName,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound)
		},
	})

	return &Client{
		http:           httpClient,
		breaker:        breaker,
		counterparties: cache.New(ttl, 2*ttl),
		pageSize:       pageSize,
		metrics:        metrics,
		logger:         logger,
	}
}

// ListDemandsUpdatedSince returns every shipment updated at or after since,
// oldest update first
func (c *Client) ListDemandsUpdatedSince(ctx context.Context, since time.Time) ([]Demand, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "list_demands"},
		observability.Field{Key: "since", Value: since.Format(time.RFC3339)},
	)

	var demands []Demand
	for offset := 0; ; offset += c.pageSize {
		var page listResponse[Demand]
		err := c.get(ctx, "/entity/demand", map[string]string{
			"filter": "updated>=" + since.In(moscow).Format(time.DateTime),
			"order":  "updated,asc",
			"limit":  strconv.Itoa(c.pageSize),
			"offset": strconv.Itoa(offset),
		}, &page)
		if err != nil {
			return nil, err
		}
		demands = append(demands, page.Rows...)
		if len(page.Rows) < c.pageSize || offset+len(page.Rows) >= page.Meta.Size {
			break
		}
	}
	return demands, nil
}

// GetCounterparty returns a counterparty by id, served from cache when fresh
func (c *Client) GetCounterparty(ctx context.Context, id string) (Counterparty, error) {
	if cached, ok := c.counterparties.Get(id); ok {
		return cached.(Counterparty), nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "operation", Value: "get_counterparty"},
		observability.Field{Key: "counterparty_id", Value: id},
	)

	var cp Counterparty
	if err := c.get(ctx, "/entity/counterparty/"+id, nil, &cp); err != nil {
		return Counterparty{}, err
	}
	c.counterparties.SetDefault(id, cp)
	return cp, nil
}

func (c *Client) get(ctx context.Context, path string, query map[string]string, result any) error {
	_, err := c.breaker.Execute(func() (any, error) {
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParams(query).
			SetResult(result).
			SetError(&apiError{}).
			Get(path)
		if err != nil {
			return nil, err
		}
		return nil, statusError(resp)
	})
	if err == nil || errors.Is(err, ErrNotFound) {
		return err
	}

	c.metrics.RecordUpstreamError(serviceName)
	c.logger.Error(ctx, "moysklad request failed", err)
	return &domain.UpstreamTransportError{Service: serviceName, Err: err}
}

func statusError(resp *resty.Response) error {
	if !resp.IsError() {
		return nil
	}
	var msg string
	if apiErr, ok := resp.Error().(*apiError); ok {
		msg = apiErr.message()
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthError{StatusCode: resp.StatusCode(), Message: msg}
	case http.StatusTooManyRequests:
		retryAfter := time.Second
		if ms, err := strconv.Atoi(resp.Header().Get(retryAfterHeader)); err == nil {
			retryAfter = time.Duration(ms) * time.Millisecond
		}
		return &RateLimitError{RetryAfter: retryAfter}
	default:
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %s", resp.Status())
		}
		return &StatusError{StatusCode: resp.StatusCode(), Message: msg}
	}
}
