package canvas

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the proactive throttle rate in requests per second.
	ProactiveRate = 10

	// MinRemaining is the bucket level below which requests pause.
	MinRemaining = 50.0

	// LowBucketPause is how long to pause while the bucket is nearly empty.
	// Canvas refills the bucket continuously, so a short pause is enough.
	LowBucketPause = 2 * time.Second

	// HeaderRateRemaining is the remaining quota header.
	HeaderRateRemaining = "X-Rate-Limit-Remaining"

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// initialRemaining is Canvas' default bucket size.
	initialRemaining = 700.0
)

// RateLimiter implements dual-strategy rate limiting for the Canvas API.
type RateLimiter struct {
	mu        sync.Mutex
	remaining float64       // From API header
	bucket    *rate.Limiter // Proactive throttling
	minBuffer float64       // Reserve quota
	pause     time.Duration
}

// NewRateLimiter creates a new rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		remaining: initialRemaining, // Assume full quota initially
		bucket:    rate.NewLimiter(rate.Limit(ProactiveRate), 1),
		minBuffer: MinRemaining,
		pause:     LowBucketPause,
	}
}

// Wait blocks until it's safe to make a request.
// It uses both proactive throttling and reactive quota checking.
func (r *RateLimiter) Wait(ctx context.Context) error {
	// 1. Check token bucket (proactive throttling)
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	// 2. Check API quota (reactive)
	r.mu.Lock()
	remaining := r.remaining
	r.mu.Unlock()

	if remaining < r.minBuffer {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.pause):
		}
	}

	return nil
}

// UpdateFromResponse updates quota state from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Canvas reports the remaining quota as a float, e.g. "699.92"
	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.ParseFloat(remaining, 64); err == nil {
			r.remaining = val
		}
	}
}

// CheckRateLimit checks if the response indicates throttling.
// Returns a RateLimitError if throttled, nil otherwise. The body of a
// 403 response is peeked to tell throttling from a permissions error, and
// is left readable for the caller.
func (r *RateLimiter) CheckRateLimit(resp *http.Response) error {
	if resp == nil {
		return nil
	}

	// Update state from headers
	r.UpdateFromResponse(resp)

	throttled := resp.StatusCode == http.StatusTooManyRequests
	if resp.StatusCode == http.StatusForbidden {
		throttled = r.Remaining() <= 0 || bodyMentionsRateLimit(resp)
	}
	if !throttled {
		return nil
	}

	rlErr := &RateLimitError{Remaining: r.Remaining()}
	if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
		if seconds, err := strconv.Atoi(retryAfter); err == nil {
			rlErr.RetryAt = time.Now().Add(time.Duration(seconds) * time.Second)
		}
	}
	return rlErr
}

// Remaining returns the current remaining quota.
func (r *RateLimiter) Remaining() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.remaining
}

// bodyMentionsRateLimit reads the body and restores it for later readers.
func bodyMentionsRateLimit(resp *http.Response) bool {
	if resp.Body == nil {
		return false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
	resp.Body = io.NopCloser(strings.NewReader(string(body)))
	if err != nil {
		return false
	}
	return strings.Contains(string(body), "Rate Limit Exceeded")
}
