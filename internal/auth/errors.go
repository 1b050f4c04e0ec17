// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/samber/oops"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned for every rejected login or refresh.
var ErrUnauthorized = errors.New("unauthorized")

// ErrTokenConflict is returned when a refresh token rotation finds the row
// already rotated by a concurrent caller.
var ErrTokenConflict = errors.New("refresh token rotated concurrently")

// Reason codes reported in a RegistrationError.
const (
	ReasonDuplicateEmail   = "DuplicateEmail"
	ReasonInvalidEmail     = "InvalidEmail"
	ReasonInvalidName      = "InvalidUserName"
	ReasonPasswordTooShort = "PasswordTooShort"
	ReasonPasswordTooLong  = "PasswordTooLong"
	ReasonInvalidRoleName  = "InvalidRoleName"
)

// RegistrationError reports why a credential or principal write was rejected.
// Reasons maps a reason code to a human readable description.
type RegistrationError struct {
	Reasons map[string]string
}

// NewRegistrationError returns a RegistrationError with a single reason.
func NewRegistrationError(code, description string) *RegistrationError {
	return &RegistrationError{Reasons: map[string]string{code: description}}
}

func (e *RegistrationError) Error() string {
	codes := slices.Sorted(maps.Keys(e.Reasons))
	var b strings.Builder
	b.WriteString("registration failed")
	for i, code := range codes {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(code)
		b.WriteString(": ")
		b.WriteString(e.Reasons[code])
	}
	return b.String()
}

// RegistrationReasons extracts the reason map from a registration failure.
func RegistrationReasons(err error) (map[string]string, bool) {
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		return nil, false
	}
	return maps.Clone(regErr.Reasons), true
}

// IsUnauthorized reports whether err is a login or refresh rejection.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// unauthorized builds the one rejection callers ever see for login and
// refresh. Causes are logged, never attached.
func unauthorized() error {
	return oops.Code("AUTH_UNAUTHORIZED").Wrap(ErrUnauthorized)
}

// registrationFailed tags a store rejection as a registration failure.
// Errors that carry no reasons are returned unchanged.
func registrationFailed(err error) error {
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		return err
	}
	return oops.Code("AUTH_REGISTRATION_FAILED").Wrap(regErr)
}
