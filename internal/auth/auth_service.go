// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"

	"github.com/gatekeeper/gatekeeper/internal/token"
)

// Rotation conflict handling: a refresh that loses the conditional update is
// re-run from a fresh lookup at most this many times.
const (
	rotationRetries = 2
	rotationBackoff = 5 * time.Millisecond
)

// Service provides login and refresh.
type Service struct {
	credentials CredentialStore
	tokens      RefreshTokenStore
	issuer      TokenIssuer
	logger      *slog.Logger
	now         func() time.Time
}

// NewAuthService creates a new Service.
func NewAuthService(credentials CredentialStore, tokens RefreshTokenStore, issuer TokenIssuer, opts ...ServiceOption) (*Service, error) {
	if credentials == nil {
		return nil, oops.Code("AUTH_SERVICE_INVALID").Errorf("credential store is required")
	}
	if tokens == nil {
		return nil, oops.Code("AUTH_SERVICE_INVALID").Errorf("refresh token store is required")
	}
	if issuer == nil {
		return nil, oops.Code("AUTH_SERVICE_INVALID").Errorf("token issuer is required")
	}
	o := defaultServiceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		return nil, oops.Code("AUTH_SERVICE_INVALID").Errorf("logger is required")
	}
	return &Service{
		credentials: credentials,
		tokens:      tokens,
		issuer:      issuer,
		logger:      o.logger,
		now:         o.now,
	}, nil
}

// Login verifies email and password and issues a new token pair with a new
// refresh token row. Other sessions of the same user are left alone.
// Unknown emails and wrong passwords produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (token.Pair, error) {
	return traced(ctx, "auth.login", func(ctx context.Context) (token.Pair, error) {
		return s.login(ctx, email, password)
	})
}

func (s *Service) login(ctx context.Context, email, password string) (token.Pair, error) {
	credential, err := s.credentials.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return token.Pair{}, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "find credential").
			Wrap(err)
	}

	// Always verify, against a dummy hash when the email is unknown, so both
	// rejections take the same time.
	valid, err := s.credentials.CheckPassword(ctx, credential, password)
	if err != nil {
		return token.Pair{}, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "verify password").
			Wrap(err)
	}
	if credential == nil {
		s.logger.InfoContext(ctx, "login rejected", "reason", "unknown_email")
		return token.Pair{}, unauthorized()
	}
	if !valid {
		s.logger.InfoContext(ctx, "login rejected",
			"reason", "bad_password",
			"credential_id", credential.ID.String())
		return token.Pair{}, unauthorized()
	}

	pair, err := s.issueFor(ctx, credential)
	if err != nil {
		return token.Pair{}, oops.Code("AUTH_LOGIN_FAILED").Wrap(err)
	}

	refresh, err := NewRefreshToken(credential.ID, pair.RefreshToken, pair.RefreshTokenExpiresAt)
	if err != nil {
		return token.Pair{}, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "build refresh token").
			Wrap(err)
	}
	if err := s.tokens.Create(ctx, refresh); err != nil {
		return token.Pair{}, oops.Code("AUTH_LOGIN_FAILED").
			With("operation", "persist refresh token").
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "login succeeded", "credential_id", credential.ID.String())
	return pair, nil
}

// Refresh exchanges a live refresh token for a new pair and rotates the
// stored row in place, invalidating the presented value. Unknown, expired and
// already rotated tokens produce the same error.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (token.Pair, error) {
	return traced(ctx, "auth.refresh", func(ctx context.Context) (token.Pair, error) {
		return s.refresh(ctx, refreshToken)
	})
}

func (s *Service) refresh(ctx context.Context, refreshToken string) (token.Pair, error) {
	if refreshToken == "" {
		s.logger.InfoContext(ctx, "refresh rejected", "reason", "empty_token")
		return token.Pair{}, unauthorized()
	}

	backoff := retry.WithMaxRetries(rotationRetries, retry.NewConstant(rotationBackoff))

	var pair token.Pair
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		p, err := s.refreshOnce(ctx, refreshToken)
		if errors.Is(err, ErrTokenConflict) {
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		pair = p
		return nil
	})
	if errors.Is(err, ErrTokenConflict) {
		s.logger.WarnContext(ctx, "refresh rejected", "reason", "rotation_conflict")
		return token.Pair{}, unauthorized()
	}
	if err != nil {
		return token.Pair{}, err
	}
	return pair, nil
}

// refreshOnce runs a single lookup, issue and conditional rotate. It returns
// ErrTokenConflict when another caller rotated the row first.
func (s *Service) refreshOnce(ctx context.Context, refreshToken string) (token.Pair, error) {
	stored, err := s.tokens.GetByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.InfoContext(ctx, "refresh rejected", "reason", "unknown_token")
			return token.Pair{}, unauthorized()
		}
		return token.Pair{}, oops.Code("AUTH_REFRESH_FAILED").
			With("operation", "find refresh token").
			Wrap(err)
	}
	if stored.IsExpiredAt(s.now()) {
		s.logger.InfoContext(ctx, "refresh rejected",
			"reason", "expired_token",
			"refresh_token_id", stored.ID.String())
		return token.Pair{}, unauthorized()
	}

	credential, err := s.credentials.FindByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.logger.InfoContext(ctx, "refresh rejected",
				"reason", "credential_missing",
				"refresh_token_id", stored.ID.String())
			return token.Pair{}, unauthorized()
		}
		return token.Pair{}, oops.Code("AUTH_REFRESH_FAILED").
			With("operation", "find credential").
			Wrap(err)
	}

	pair, err := s.issueFor(ctx, credential)
	if err != nil {
		return token.Pair{}, oops.Code("AUTH_REFRESH_FAILED").Wrap(err)
	}

	err = s.tokens.Rotate(ctx, stored.ID, refreshToken, pair.RefreshToken, pair.RefreshTokenExpiresAt)
	if err != nil {
		if errors.Is(err, ErrTokenConflict) {
			return token.Pair{}, err
		}
		return token.Pair{}, oops.Code("AUTH_REFRESH_FAILED").
			With("operation", "rotate refresh token").
			Wrap(err)
	}

	s.logger.InfoContext(ctx, "refresh token rotated",
		"credential_id", credential.ID.String(),
		"refresh_token_id", stored.ID.String())
	return pair, nil
}

// issueFor issues a pair carrying the credential's current roles.
func (s *Service) issueFor(ctx context.Context, credential *Credential) (token.Pair, error) {
	roles, err := s.credentials.Roles(ctx, credential.ID)
	if err != nil {
		return token.Pair{}, oops.With("operation", "load roles").
			With("credential_id", credential.ID.String()).
			Wrap(err)
	}
	pair, err := s.issuer.Issue(token.Request{
		UserID: credential.ID.String(),
		Email:  credential.Email,
		Roles:  roles,
	})
	if err != nil {
		return token.Pair{}, oops.With("operation", "issue tokens").Wrap(err)
	}
	return pair, nil
}

// credentialIDFromSubject parses the subject claim of an access token.
func credentialIDFromSubject(subject string) (ulid.ULID, error) {
	id, err := ulid.Parse(subject)
	if err != nil {
		return ulid.ULID{}, oops.Code("AUTH_INVALID_SUBJECT").With("subject", subject).Wrap(err)
	}
	return id, nil
}
