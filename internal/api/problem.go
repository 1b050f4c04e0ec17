// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Problem details titles and details shown to clients.
const (
	detailRegistrationFailed = "Unable to register user, please try again."
	detailInternal           = "An error occurred while processing your request. Please try again"
	detailValidation         = "One or more validation errors occurred."
	messageInvalidLogin      = "Invalid email or password."
)

// Problem is an RFC 9457 problem-details body.
type Problem struct {
	Type      string              `json:"type,omitempty"`
	Title     string              `json:"title"`
	Status    int                 `json:"status"`
	Detail    string              `json:"detail,omitempty"`
	Instance  string              `json:"instance,omitempty"`
	RequestID string              `json:"requestId,omitempty"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	//nolint:errcheck // client may have gone away
	json.NewEncoder(w).Encode(body)
}

func writeProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Title == "" {
		p.Title = http.StatusText(p.Status)
	}
	p.Instance = r.URL.Path
	p.RequestID = middleware.GetReqID(r.Context())

	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(p.Status)
	//nolint:errcheck // client may have gone away
	json.NewEncoder(w).Encode(p)
}

func writeValidationProblem(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	writeProblem(w, r, Problem{
		Title:  detailValidation,
		Status: http.StatusBadRequest,
		Errors: fieldErrors,
	})
}

func writeInternalProblem(w http.ResponseWriter, r *http.Request) {
	writeProblem(w, r, Problem{
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
		Detail: detailInternal,
	})
}
