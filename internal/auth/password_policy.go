// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"fmt"
	"unicode/utf8"
)

// Password length limits.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 128
)

// PasswordPolicy is the set of rules a new password must satisfy.
type PasswordPolicy struct {
	MinLength int
	MaxLength int
}

// DefaultPasswordPolicy returns the policy applied at registration.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: MinPasswordLength, MaxLength: MaxPasswordLength}
}

// Check returns the violated rules, or nil if password is acceptable.
func (p PasswordPolicy) Check(password string) *RegistrationError {
	n := utf8.RuneCountInString(password)
	switch {
	case n < p.MinLength:
		return NewRegistrationError(ReasonPasswordTooShort,
			fmt.Sprintf("Passwords must be at least %d characters.", p.MinLength))
	case p.MaxLength > 0 && n > p.MaxLength:
		return NewRegistrationError(ReasonPasswordTooLong,
			fmt.Sprintf("Passwords must be at most %d characters.", p.MaxLength))
	}
	return nil
}
