package app

import (
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

// RouteRegistrar is implemented by every module handler set.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// RouterDeps carries what the router needs from the application.
type RouterDeps struct {
	Logger          *slog.Logger
	Metrics         http.Handler
	RateLimitPerSec float64
	RateLimitBurst  int
	Handlers        []RouteRegistrar
}

// NewRouter assembles the HTTP surface: module routes under /api, a health
// probe, and per-client rate limiting.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(newRateLimiter(deps.RateLimitPerSec, deps.RateLimitBurst).middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}

	r.Route("/api", func(api chi.Router) {
		for _, h := range deps.Handlers {
			h.Register(api)
		}
	})

	return r
}

// ipRateLimiter holds one token bucket per client IP. Entries live for the
// process lifetime; the expected client set is a handful of venue devices.
type ipRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perSec   rate.Limit
	burst    int
}

func newRateLimiter(perSec float64, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		perSec:   rate.Limit(perSec),
		burst:    burst,
	}
}

func (l *ipRateLimiter) limiterFor(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.perSec, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

func (l *ipRateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !l.limiterFor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
