package ratelimit

import (
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Service keeps one token bucket per key. Idle buckets expire so memory
// stays bounded by the number of recently active keys.
type Service struct {
	rpm     int
	buckets *cache.Cache
	now     func() time.Time
}

// NewService creates a limiter allowing rpm requests per minute per key with
// a burst of rpm. A non-positive rpm disables limiting.
func NewService(rpm int) *Service {
	return &Service{
		rpm:     rpm,
		buckets: cache.New(10*time.Minute, 20*time.Minute),
		now:     time.Now,
	}
}

// Allow consumes one token for key
func (s *Service) Allow(key string) Result {
	if s.rpm <= 0 {
		return Result{Allowed: true}
	}

	limiter := s.bucket(key)
	now := s.now()
	reservation := limiter.ReserveN(now, 1)
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Result{Allowed: false, Limit: s.rpm, RetryAfter: delay}
	}

	return Result{
		Allowed:   true,
		Limit:     s.rpm,
		Remaining: int(limiter.TokensAt(now)),
	}
}

func (s *Service) bucket(key string) *rate.Limiter {
	if v, ok := s.buckets.Get(key); ok {
		s.buckets.SetDefault(key, v)
		return v.(*rate.Limiter)
	}
	limiter := rate.NewLimiter(rate.Limit(float64(s.rpm)/60), s.rpm)
	if err := s.buckets.Add(key, limiter, cache.DefaultExpiration); err != nil {
		// lost the race to a concurrent request
		if v, ok := s.buckets.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}
