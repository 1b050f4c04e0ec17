// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/samber/oops"
	"golang.org/x/time/rate"

	"github.com/gatekeeper/gatekeeper/internal/token"
)

type claimsKey struct{}

// ClaimsFromContext returns the verified access-token claims of the request.
func ClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*token.Claims)
	return claims, ok
}

// authenticate rejects requests without a valid bearer access token.
func authenticate(verifier TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				unauthorizedBearer(w, r)
				return
			}
			claims, err := verifier.Parse(raw)
			if err != nil {
				logger.DebugContext(r.Context(), "bearer token rejected",
					"request_id", middleware.GetReqID(r.Context()),
					"error", err)
				unauthorizedBearer(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

func unauthorizedBearer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	writeProblem(w, r, Problem{Status: http.StatusUnauthorized})
}

// requireRole rejects authenticated requests whose claims lack role.
func requireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				unauthorizedBearer(w, r)
				return
			}
			if !claims.HasRole(role) {
				writeProblem(w, r, Problem{Status: http.StatusForbidden})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// recoverer turns a panic into a logged 500 problem response.
func recoverer(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler { //nolint:errorlint // sentinel compared by identity, as net/http does
					panic(rec)
				}
				logger.ErrorContext(r.Context(), "panic serving request",
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec)
				writeInternalProblem(w, r)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// instrument records the latency and status of every request under its route
// pattern, so path parameters do not explode label cardinality.
func instrument(metrics Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			metrics.ObserveRequest(route, r.Method, status, time.Since(start))
		})
	}
}

// limitBody caps request bodies at maxBodyBytes.
func limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		next.ServeHTTP(w, r)
	})
}

// RateLimitConfig sets the per-client token bucket on the /auth routes.
// A non-positive RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64
	Burst int
	// TrustedProxies are the peers whose X-Forwarded-For is believed. Empty
	// means the limiter keys on the connection's remote address only.
	TrustedProxies []netip.Prefix
}

// ParseTrustedProxies reads CIDR prefixes or bare addresses.
func ParseTrustedProxies(values []string) ([]netip.Prefix, error) {
	out := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(v); err == nil {
			out = append(out, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(v)
		if err != nil {
			return nil, oops.Code("CONFIG_INVALID").
				With("field", "ratelimit.trusted_proxies").
				With("proxy", v).
				Errorf("trusted proxy must be an address or CIDR prefix")
		}
		addr = addr.Unmap()
		out = append(out, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return out, nil
}

// clientLimiter keeps one token bucket per client address. Buckets idle for
// longer than ttl are dropped on a later call.
type clientLimiter struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	ttl       time.Duration
	now       func() time.Time
	buckets   map[string]*bucket
	lastSweep time.Time
	trusted   []netip.Prefix
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(cfg RateLimitConfig, now func() time.Time) *clientLimiter {
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &clientLimiter{
		limit:     rate.Limit(cfg.RPS),
		burst:     burst,
		ttl:       5 * time.Minute,
		now:       now,
		buckets:   make(map[string]*bucket),
		lastSweep: now(),
		trusted:   cfg.TrustedProxies,
	}
}

func (l *clientLimiter) allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > l.ttl {
		for key, b := range l.buckets {
			if now.Sub(b.lastSeen) > l.ttl {
				delete(l.buckets, key)
			}
		}
		l.lastSweep = now
	}

	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[client] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

// rateLimit rejects clients that exceed their bucket with 429.
func rateLimit(limiter *clientLimiter, metrics Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.allow(clientAddr(r, limiter.trusted)) {
				next.ServeHTTP(w, r)
				return
			}
			metrics.RecordRateLimited(r.URL.Path)
			w.Header().Set("Retry-After", "1")
			writeProblem(w, r, Problem{Status: http.StatusTooManyRequests})
		})
	}
}

// clientAddr is the address the limiter keys on. X-Forwarded-For is read
// only when the peer is a trusted proxy, right to left, up to the first hop
// that is not itself trusted.
func clientAddr(r *http.Request, trusted []netip.Prefix) string {
	client := remoteHost(r.RemoteAddr)
	if !isTrusted(client, trusted) {
		return client
	}
	hops := strings.Split(strings.Join(r.Header.Values("X-Forwarded-For"), ","), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		addr, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
		if err != nil {
			return client
		}
		client = addr.Unmap().String()
		if !isTrusted(client, trusted) {
			return client
		}
	}
	return client
}

func remoteHost(remote string) string {
	host, _, err := net.SplitHostPort(remote)
	if err != nil {
		return remote
	}
	return host
}

func isTrusted(host string, trusted []netip.Prefix) bool {
	if len(trusted) == 0 {
		return false
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
