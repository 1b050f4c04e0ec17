// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package token

import (
	"log/slog"
	"strings"
	"time"

	"github.com/samber/oops"
)

// MinKeyLength is the shortest accepted HMAC-SHA-256 signing key, in bytes.
const MinKeyLength = 32

// Config holds the signing parameters shared by every issuance.
type Config struct {
	Issuer                     string
	Audience                   string
	Key                        string
	ExpiryInMinutes            int
	RefreshTokenExpirationDays int
}

// Validate reports the first problem that makes the configuration unusable.
func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Issuer) == "":
		return oops.Code("CONFIG_INVALID").With("field", "issuer").Errorf("jwt issuer is required")
	case strings.TrimSpace(c.Audience) == "":
		return oops.Code("CONFIG_INVALID").With("field", "audience").Errorf("jwt audience is required")
	case strings.TrimSpace(c.Key) == "":
		return oops.Code("CONFIG_INVALID").With("field", "key").Errorf("jwt signing key is required")
	case len(c.Key) < MinKeyLength:
		return oops.Code("CONFIG_INVALID").
			With("field", "key").
			With("min_length", MinKeyLength).
			Errorf("jwt signing key must be at least %d bytes", MinKeyLength)
	case c.ExpiryInMinutes <= 0:
		return oops.Code("CONFIG_INVALID").
			With("field", "expiry_in_minutes").
			Errorf("access token lifetime must be positive, got %d", c.ExpiryInMinutes)
	case c.RefreshTokenExpirationDays <= 0:
		return oops.Code("CONFIG_INVALID").
			With("field", "refresh_token_expiration_days").
			Errorf("refresh token lifetime must be positive, got %d", c.RefreshTokenExpirationDays)
	}
	return nil
}

// AccessTokenTTL is the configured access token lifetime.
func (c Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.ExpiryInMinutes) * time.Minute
}

// RefreshTokenTTL is the configured refresh token lifetime.
func (c Config) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenExpirationDays) * 24 * time.Hour
}

// LogValue implements slog.LogValuer. The signing key is never included.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("issuer", c.Issuer),
		slog.String("audience", c.Audience),
		slog.String("key", "[REDACTED]"),
		slog.Int("expiry_in_minutes", c.ExpiryInMinutes),
		slog.Int("refresh_token_expiration_days", c.RefreshTokenExpirationDays),
	)
}

// String keeps the key out of fmt output as well.
func (c Config) String() string {
	return "token.Config{Issuer:" + c.Issuer + " Audience:" + c.Audience + " Key:[REDACTED]}"
}
