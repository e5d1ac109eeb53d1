package webhook

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// PhoneLimiter throttles inbound messages per phone number so one noisy
// sender cannot starve the webhook. Limiters are created lazily.
type PhoneLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewPhoneLimiter allows perMinute messages with the given burst for
// each distinct phone number.
func NewPhoneLimiter(perMinute, burst int) *PhoneLimiter {
	return &PhoneLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    burst,
	}
}

// Allow reports whether a message from the phone may proceed.
func (l *PhoneLimiter) Allow(phone string) bool {
	l.mu.Lock()
	limiter, exists := l.limiters[phone]
	if !exists {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[phone] = limiter
	}
	l.mu.Unlock()

	return limiter.Allow()
}
