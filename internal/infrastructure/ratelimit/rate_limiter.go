package ratelimit

import (
	"sync"
	"time"
)

// TokenBucket paces calls to an external API. The ingestion tool uses one
// bucket refilling a single token per interval, which yields a fixed delay
// between catalog requests.
type TokenBucket struct {
	tokens     int
	maxTokens  int
	refillRate int
	refillTime time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
}

func NewTokenBucket(maxTokens, refillRate int, refillTime time.Duration) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		refillTime: refillTime,
		lastRefill: time.Now(),
	}
}

// Allow consumes a token if one is available. When it is not, the returned
// duration says how long until the next refill.
func (tb *TokenBucket) Allow() (bool, time.Duration) {
	tb.mutex.Lock()
	defer tb.mutex.Unlock()

	now := time.Now()

	elapsed := now.Sub(tb.lastRefill)
	tokensToAdd := int(elapsed/tb.refillTime) * tb.refillRate

	if tokensToAdd > 0 {
		tb.tokens += tokensToAdd
		if tb.tokens > tb.maxTokens {
			tb.tokens = tb.maxTokens
		}
		tb.lastRefill = now
	}

	if tb.tokens > 0 {
		tb.tokens--
		return true, 0
	}

	wait := tb.refillTime - now.Sub(tb.lastRefill)
	if wait < 0 {
		wait = 0
	}
	return false, wait
}

// Take blocks until a token is available.
func (tb *TokenBucket) Take() {
	for {
		ok, wait := tb.Allow()
		if ok {
			return
		}
		time.Sleep(wait)
	}
}
