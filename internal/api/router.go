// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/samber/oops"

	"github.com/gatekeeper/gatekeeper/internal/auth"
)

// Deps are the collaborators the router dispatches to. Metrics, Logger and
// Clock are optional.
type Deps struct {
	Registrar     Registrar
	Authenticator Authenticator
	Profiles      Profiles
	Verifier      TokenVerifier
	Metrics       Metrics
	Logger        *slog.Logger
	RateLimit     RateLimitConfig
	Clock         func() time.Time
}

func (d *Deps) validate() error {
	switch {
	case d.Registrar == nil:
		return oops.Code("API_INVALID_DEPS").Errorf("registrar is required")
	case d.Authenticator == nil:
		return oops.Code("API_INVALID_DEPS").Errorf("authenticator is required")
	case d.Profiles == nil:
		return oops.Code("API_INVALID_DEPS").Errorf("profiles is required")
	case d.Verifier == nil:
		return oops.Code("API_INVALID_DEPS").Errorf("token verifier is required")
	}
	return nil
}

// NewRouter builds the HTTP handler for every route.
func NewRouter(deps Deps) (http.Handler, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if deps.Metrics == nil {
		deps.Metrics = noopMetrics{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	v, err := newValidator(requestTypes()...)
	if err != nil {
		return nil, err
	}

	h := &handlers{
		registrar: deps.Registrar,
		auth:      deps.Authenticator,
		profiles:  deps.Profiles,
		validator: v,
		metrics:   deps.Metrics,
		logger:    deps.Logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(instrument(deps.Metrics))
	r.Use(recoverer(deps.Logger))
	r.Use(limitBody)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, Problem{Status: http.StatusNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, Problem{Status: http.StatusMethodNotAllowed})
	})

	r.Route("/auth", func(r chi.Router) {
		if deps.RateLimit.RPS > 0 {
			r.Use(rateLimit(newClientLimiter(deps.RateLimit, deps.Clock), deps.Metrics))
		}
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authenticate(deps.Verifier, deps.Logger))
		r.Use(requireRole(auth.RoleMember))
		r.Get("/me", h.me)
		r.With(requireRole(auth.RoleAdmin)).Get("/{id}", h.getPrincipal)
	})

	return r, nil
}
