package http

import (
	"context"
	"log"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LimiterStore keeps one token bucket per client key and forgets keys idle
// for longer than its idle TTL.
type LimiterStore struct {
	mu           sync.Mutex
	entries      map[string]*limiterEntry
	rps          rate.Limit
	burst        int
	idleTTL      time.Duration
	cleanupEvery time.Duration
	now          func() time.Time
}

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// LimiterStoreOption configures a LimiterStore.
type LimiterStoreOption func(*LimiterStore)

// WithIdleTTL sets how long an unused limiter is kept.
func WithIdleTTL(d time.Duration) LimiterStoreOption {
	return func(s *LimiterStore) { s.idleTTL = d }
}

// WithCleanupEvery sets the sweep period of StartJanitor.
func WithCleanupEvery(d time.Duration) LimiterStoreOption {
	return func(s *LimiterStore) { s.cleanupEvery = d }
}

// NewLimiterStore creates a LimiterStore. A non-positive rps disables limiting.
func NewLimiterStore(rps float64, burst int, opts ...LimiterStoreOption) *LimiterStore {
	if burst < 1 {
		burst = 1
	}
	s := &LimiterStore{
		entries:      make(map[string]*limiterEntry),
		rps:          rate.Limit(rps),
		burst:        burst,
		idleTTL:      15 * time.Minute,
		cleanupEvery: 2 * time.Minute,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the limiter of key, creating it on first use.
func (s *LimiterStore) Get(key string) *rate.Limiter {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.entries[key]; ok {
		ent.lastSeen = now
		return ent.lim
	}
	lim := rate.NewLimiter(s.rps, s.burst)
	s.entries[key] = &limiterEntry{lim: lim, lastSeen: now}
	return lim
}

// Len returns the number of tracked keys.
func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Cleanup removes the limiters not used within the idle TTL.
func (s *LimiterStore) Cleanup() {
	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(s.entries, k)
		}
	}
}

// StartJanitor runs Cleanup every cleanup period until ctx is done.
func (s *LimiterStore) StartJanitor(ctx context.Context) {
	if s.cleanupEvery <= 0 || s.idleTTL <= 0 {
		return
	}

	t := time.NewTicker(s.cleanupEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Cleanup()
			}
		}
	}()
}

// RateLimit rejects requests above the per-client rate with 429 Too Many Requests.
// X-Forwarded-For is only used to identify the client when trustXFF is set.
func RateLimit(store *LimiterStore, trustXFF bool, logger *log.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if store.rps <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r, trustXFF)
			lim := store.Get(key)

			reservation := lim.Reserve()
			if delay := reservation.Delay(); delay > 0 {
				reservation.Cancel()
				logger.Printf("RateLimit: rejecting %s %s from %s", r.Method, r.URL.Path, key)

				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(delay)))
				errResp := ErrorResp{}
				errResp.Error.Code = TOOMANYREQUESTS
				errResp.Error.Message = "rate limit exceeded"
				respondError(w, errResp)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller by the remote host, or by the first
// X-Forwarded-For address when the proxy in front is trusted.
func clientKey(r *http.Request, trustXFF bool) string {
	if trustXFF {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

func retryAfterSeconds(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds())))
}
