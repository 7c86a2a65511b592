package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

type visitorLimiter struct {
	mu       sync.Mutex
	visitors map[string]*limiterEntry
	rps      float64
	burst    int
}

func getIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (v *visitorLimiter) allow(ip string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	le, ok := v.visitors[ip]
	if !ok {
		le = &limiterEntry{limiter: rate.NewLimiter(rate.Limit(v.rps), v.burst)}
		v.visitors[ip] = le
	}
	le.last = time.Now()
	return le.limiter.Allow()
}

func (v *visitorLimiter) gc() {
	for range time.Tick(5 * time.Minute) {
		v.mu.Lock()
		for k, e := range v.visitors {
			if time.Since(e.last) > 10*time.Minute {
				delete(v.visitors, k)
			}
		}
		v.mu.Unlock()
	}
}

// RateLimit applies a per-IP token bucket limiter.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	v := &visitorLimiter{visitors: map[string]*limiterEntry{}, rps: rps, burst: burst}
	go v.gc()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.allow(getIP(r)) {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
