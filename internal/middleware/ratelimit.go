package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type windowEntry struct {
	mu       sync.Mutex
	requests []time.Time
	evicted  bool
}

// RateLimiter is a sliding-window limiter keyed by client address.
type RateLimiter struct {
	max    int
	window time.Duration
	store  sync.Map
	now    func() time.Time

	// trustProxy keys clients by the first X-Forwarded-For hop. Only safe
	// when a proxy in front of the server sets that header.
	trustProxy bool

	sweepMu   sync.Mutex
	lastSweep time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{max: max, window: window, now: time.Now}
}

// TrustProxy makes the limiter key clients by X-Forwarded-For.
func (rl *RateLimiter) TrustProxy(trust bool) *RateLimiter {
	rl.trustProxy = trust
	return rl
}

// allow reports whether key may proceed and, if not, how long until the
// oldest request leaves the window.
func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	now := rl.now()
	cutoff := now.Add(-rl.window)
	rl.sweep(now, cutoff)

	for {
		v, _ := rl.store.LoadOrStore(key, &windowEntry{})
		entry := v.(*windowEntry)

		entry.mu.Lock()
		if entry.evicted {
			entry.mu.Unlock()
			continue
		}

		filtered := entry.requests[:0]
		for _, t := range entry.requests {
			if t.After(cutoff) {
				filtered = append(filtered, t)
			}
		}
		entry.requests = filtered

		if len(entry.requests) >= rl.max {
			wait := entry.requests[0].Sub(cutoff)
			entry.mu.Unlock()
			return false, wait
		}

		entry.requests = append(entry.requests, now)
		entry.mu.Unlock()
		return true, 0
	}
}

// sweep drops keys with no request inside the window, at most once per
// window.
func (rl *RateLimiter) sweep(now, cutoff time.Time) {
	rl.sweepMu.Lock()
	if now.Sub(rl.lastSweep) < rl.window {
		rl.sweepMu.Unlock()
		return
	}
	rl.lastSweep = now
	rl.sweepMu.Unlock()

	rl.store.Range(func(k, v interface{}) bool {
		entry := v.(*windowEntry)
		entry.mu.Lock()
		n := len(entry.requests)
		if n == 0 || !entry.requests[n-1].After(cutoff) {
			entry.evicted = true
			rl.store.Delete(k)
		}
		entry.mu.Unlock()
		return true
	})
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := rl.allow(clientIP(r, rl.trustProxy))
		if !ok {
			secs := int(wait.Round(time.Second) / time.Second)
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			writeJSONError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP uses the first X-Forwarded-For hop when trustProxy is set and the
// header is present, the connection address otherwise.
func clientIP(r *http.Request, trustProxy bool) string {
	if fwd := r.Header.Get("X-Forwarded-For"); trustProxy && fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
