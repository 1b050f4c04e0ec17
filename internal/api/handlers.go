// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package api

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gatekeeper/gatekeeper/internal/auth"
	"github.com/gatekeeper/gatekeeper/internal/observability"
	"github.com/gatekeeper/gatekeeper/internal/token"
	"github.com/gatekeeper/gatekeeper/pkg/errutil"
)

// TokenResponse is the body returned by register, login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// PrincipalResponse is the body returned by the /users routes.
type PrincipalResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	CreatedAtUTC time.Time  `json:"createdAtUtc"`
	UpdatedAtUTC *time.Time `json:"updatedAtUtc"`
}

type invalidLoginResponse struct {
	Message string `json:"message"`
}

type handlers struct {
	registrar Registrar
	auth      Authenticator
	profiles  Profiles
	validator *validator
	metrics   Metrics
	logger    *slog.Logger
}

func tokenResponse(pair token.Pair) TokenResponse {
	return TokenResponse{AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}
}

func principalResponse(p *auth.Principal) PrincipalResponse {
	resp := PrincipalResponse{
		ID:           p.ID,
		Email:        p.Email,
		Name:         p.Name,
		CreatedAtUTC: p.CreatedAt.UTC(),
	}
	if p.UpdatedAt != nil {
		u := p.UpdatedAt.UTC()
		resp.UpdatedAtUTC = &u
	}
	return resp
}

// bind decodes and validates the body into dst. It writes the error response
// itself and returns false when the handler should stop.
func (h *handlers) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	fields, err := h.validator.decode(r, dst)
	switch {
	case errors.Is(err, errBodyTooLarge):
		writeProblem(w, r, Problem{Status: http.StatusRequestEntityTooLarge})
		return false
	case errors.Is(err, errMalformedBody):
		writeValidationProblem(w, r, map[string][]string{bodyField: {"The request body is not valid JSON."}})
		return false
	case err != nil:
		h.internalError(w, r, "request validation failed", err)
		return false
	case len(fields) > 0:
		writeValidationProblem(w, r, fields)
		return false
	}
	return true
}

func (h *handlers) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	errutil.LogErrorContext(r.Context(), h.logger, msg, err,
		"request_id", middleware.GetReqID(r.Context()),
		"path", r.URL.Path)
	writeInternalProblem(w, r)
}

func (h *handlers) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.bind(w, r, &req) {
		h.metrics.RecordAuth("register", observability.OutcomeRejected)
		return
	}
	if fields := checkRegister(&req); fields != nil {
		h.metrics.RecordAuth("register", observability.OutcomeRejected)
		writeValidationProblem(w, r, fields)
		return
	}

	pair, err := h.registrar.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if reasons, ok := auth.RegistrationReasons(err); ok {
			h.metrics.RecordAuth("register", observability.OutcomeRejected)
			writeProblem(w, r, Problem{
				Title:  "Bad Request",
				Status: http.StatusBadRequest,
				Detail: detailRegistrationFailed,
				Errors: reasonsToFieldErrors(reasons),
			})
			return
		}
		h.metrics.RecordAuth("register", observability.OutcomeError)
		h.internalError(w, r, "registration failed", err)
		return
	}

	h.metrics.RecordAuth("register", observability.OutcomeSuccess)
	writeJSON(w, http.StatusOK, tokenResponse(pair))
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.bind(w, r, &req) {
		h.metrics.RecordAuth("login", observability.OutcomeRejected)
		return
	}

	pair, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if auth.IsUnauthorized(err) {
			h.metrics.RecordAuth("login", observability.OutcomeUnauthorized)
			writeJSON(w, http.StatusUnauthorized, invalidLoginResponse{Message: messageInvalidLogin})
			return
		}
		h.metrics.RecordAuth("login", observability.OutcomeError)
		h.internalError(w, r, "login failed", err)
		return
	}

	h.metrics.RecordAuth("login", observability.OutcomeSuccess)
	writeJSON(w, http.StatusOK, tokenResponse(pair))
}

func (h *handlers) refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !h.bind(w, r, &req) {
		h.metrics.RecordAuth("refresh", observability.OutcomeRejected)
		return
	}

	pair, err := h.auth.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		if auth.IsUnauthorized(err) {
			h.metrics.RecordAuth("refresh", observability.OutcomeUnauthorized)
			writeProblem(w, r, Problem{Status: http.StatusUnauthorized})
			return
		}
		h.metrics.RecordAuth("refresh", observability.OutcomeError)
		h.internalError(w, r, "refresh failed", err)
		return
	}

	h.metrics.RecordAuth("refresh", observability.OutcomeSuccess)
	writeJSON(w, http.StatusOK, tokenResponse(pair))
}

func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		unauthorizedBearer(w, r)
		return
	}
	principal, err := h.profiles.Me(r.Context(), claims.Subject)
	h.writePrincipal(w, r, principal, err)
}

// getPrincipal serves a principal by id. Callers may only read their own.
func (h *handlers) getPrincipal(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		unauthorizedBearer(w, r)
		return
	}
	caller, err := h.profiles.Me(r.Context(), claims.Subject)
	switch {
	case errors.Is(err, auth.ErrNotFound):
		unauthorizedBearer(w, r)
		return
	case err != nil:
		h.internalError(w, r, "principal lookup failed", err)
		return
	}

	id := chi.URLParam(r, "id")
	if id != caller.ID {
		writeProblem(w, r, Problem{Status: http.StatusForbidden})
		return
	}
	principal, err := h.profiles.Get(r.Context(), id)
	h.writePrincipal(w, r, principal, err)
}

func (h *handlers) writePrincipal(w http.ResponseWriter, r *http.Request, principal *auth.Principal, err error) {
	switch {
	case errors.Is(err, auth.ErrNotFound):
		writeProblem(w, r, Problem{Status: http.StatusNotFound})
	case err != nil:
		h.internalError(w, r, "principal lookup failed", err)
	default:
		writeJSON(w, http.StatusOK, principalResponse(principal))
	}
}

// reasonsToFieldErrors renders registration reasons as problem-details
// errors, keyed by reason code.
func reasonsToFieldErrors(reasons map[string]string) map[string][]string {
	out := make(map[string][]string, len(reasons))
	for _, code := range slices.Sorted(maps.Keys(reasons)) {
		out[code] = []string{reasons[code]}
	}
	return out
}
