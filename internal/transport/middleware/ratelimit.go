package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/habitflow-backend/pkg/ctxutil"
)

// RateLimiter counts requests per client IP in fixed windows.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

type window struct {
	reset time.Time
	count int
}

// NewRateLimiter creates a rate limiter that drops expired windows every
// cleanupInterval. Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. Safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows limit requests per window per client
// IP. A non-positive limit or window disables limiting. Every limited
// response carries RateLimit-Limit, RateLimit-Remaining and RateLimit-Reset.
func (rl *RateLimiter) Limit(limit int, period time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if limit <= 0 || period <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			remaining, reset := rl.take(requestIP(r), limit, period)

			h := w.Header()
			h.Set("RateLimit-Limit", strconv.Itoa(limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(max(remaining, 0)))
			h.Set("RateLimit-Reset", strconv.Itoa(seconds(reset)))

			if remaining < 0 {
				h.Set("Retry-After", strconv.Itoa(seconds(reset)))
				writeError(w, http.StatusTooManyRequests, "Too Many Requests",
					"Too many requests from this IP, please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// take counts one request for key and returns how many requests are left
// in the current window (negative once exceeded) and the time until the
// window resets.
func (rl *RateLimiter) take(key string, limit int, period time.Duration) (int, time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	win, ok := rl.windows[key]
	if !ok || !now.Before(win.reset) {
		win = &window{reset: now.Add(period)}
		rl.windows[key] = win
	}
	win.count++

	return limit - win.count, win.reset.Sub(now)
}

func requestIP(r *http.Request) string {
	if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
		return ip
	}
	return clientIP(r)
}

func seconds(d time.Duration) int {
	s := int(d / time.Second)
	if d%time.Second > 0 {
		s++
	}
	return s
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// sweep drops expired windows.
func (rl *RateLimiter) sweep() {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, win := range rl.windows {
		if !now.Before(win.reset) {
			delete(rl.windows, key)
		}
	}
}
