// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"go.opentelemetry.io/otel/attribute"

	"github.com/gatekeeper/gatekeeper/internal/token"
	"github.com/gatekeeper/gatekeeper/pkg/errutil"
)

// compensationTimeout bounds the undo writes of a failed registration.
const compensationTimeout = 10 * time.Second

// RegistrationService creates a credential, its default role, its principal
// and its first refresh token as one unit.
type RegistrationService struct {
	credentials CredentialStore
	principals  PrincipalStore
	tokens      RefreshTokenStore
	issuer      TokenIssuer
	tx          Transactor
	logger      *slog.Logger
	now         func() time.Time
}

// NewRegistrationService creates a RegistrationService.
func NewRegistrationService(
	credentials CredentialStore,
	principals PrincipalStore,
	tokens RefreshTokenStore,
	issuer TokenIssuer,
	opts ...ServiceOption,
) (*RegistrationService, error) {
	if credentials == nil {
		return nil, oops.Code("REGISTRATION_SERVICE_INVALID").Errorf("credential store is required")
	}
	if principals == nil {
		return nil, oops.Code("REGISTRATION_SERVICE_INVALID").Errorf("principal store is required")
	}
	if tokens == nil {
		return nil, oops.Code("REGISTRATION_SERVICE_INVALID").Errorf("refresh token store is required")
	}
	if issuer == nil {
		return nil, oops.Code("REGISTRATION_SERVICE_INVALID").Errorf("token issuer is required")
	}
	o := defaultServiceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		return nil, oops.Code("REGISTRATION_SERVICE_INVALID").Errorf("logger is required")
	}
	return &RegistrationService{
		credentials: credentials,
		principals:  principals,
		tokens:      tokens,
		issuer:      issuer,
		tx:          o.transactor,
		logger:      o.logger,
		now:         o.now,
	}, nil
}

// Register creates a new principal and returns its first token pair.
// On any failure nothing it wrote remains: the shared transaction is rolled
// back or, without one, each completed write is undone in reverse order.
func (s *RegistrationService) Register(ctx context.Context, name, email, password string) (token.Pair, error) {
	return traced(ctx, "auth.register", func(ctx context.Context) (token.Pair, error) {
		return s.registerAtomically(ctx, name, email, password)
	}, attribute.Bool("auth.shared_transaction", s.tx != nil))
}

func (s *RegistrationService) registerAtomically(ctx context.Context, name, email, password string) (token.Pair, error) {
	if s.tx != nil {
		var pair token.Pair
		err := s.tx.InTransaction(ctx, func(txCtx context.Context) error {
			var err error
			pair, err = s.register(txCtx, name, email, password, nil)
			return err
		})
		if err != nil {
			return token.Pair{}, err
		}
		return pair, nil
	}

	undo := &compensation{}
	pair, err := s.register(ctx, name, email, password, undo)
	if err != nil {
		undo.run(ctx, s.logger)
		return token.Pair{}, err
	}
	return pair, nil
}

// register performs the writes in dependency order. When undo is non-nil each
// completed write pushes its inverse.
func (s *RegistrationService) register(ctx context.Context, name, email, password string, undo *compensation) (token.Pair, error) {
	credential, err := s.credentials.Create(ctx, email, password)
	if err != nil {
		return token.Pair{}, s.fail("create credential", err)
	}
	undo.push("delete credential", func(ctx context.Context) error {
		return s.credentials.Delete(ctx, credential.ID)
	}, credential.ID)

	if err := s.credentials.AddToRole(ctx, credential.ID, DefaultRole); err != nil {
		return token.Pair{}, s.fail("assign default role", err)
	}

	principal, err := NewPrincipal(credential.ID, name, credential.Email, s.now())
	if err != nil {
		return token.Pair{}, s.fail("build principal", err)
	}
	if err := s.principals.Create(ctx, principal); err != nil {
		return token.Pair{}, s.fail("create principal", err)
	}
	undo.push("delete principal", func(ctx context.Context) error {
		return s.principals.DeleteByIdentityID(ctx, credential.ID)
	}, credential.ID)

	// The role write may not be readable yet, so the default role is named directly.
	pair, err := s.issuer.Issue(token.Request{
		UserID: credential.ID.String(),
		Email:  credential.Email,
		Roles:  []string{DefaultRole},
	})
	if err != nil {
		return token.Pair{}, s.fail("issue tokens", err)
	}

	refresh, err := NewRefreshToken(credential.ID, pair.RefreshToken, pair.RefreshTokenExpiresAt)
	if err != nil {
		return token.Pair{}, s.fail("build refresh token", err)
	}
	if err := s.tokens.Create(ctx, refresh); err != nil {
		return token.Pair{}, s.fail("persist refresh token", err)
	}

	s.logger.InfoContext(ctx, "principal registered",
		"credential_id", credential.ID.String(),
		"principal_id", principal.ID)
	return pair, nil
}

func (s *RegistrationService) fail(operation string, err error) error {
	if _, ok := RegistrationReasons(err); ok {
		return oops.With("operation", operation).Wrap(registrationFailed(err))
	}
	return oops.Code("AUTH_REGISTER_FAILED").With("operation", operation).Wrap(err)
}

type compensationStep struct {
	name         string
	credentialID ulid.ULID
	fn           func(ctx context.Context) error
}

// compensation is a stack of undo writes. A nil *compensation ignores pushes.
type compensation struct {
	steps []compensationStep
}

func (c *compensation) push(name string, fn func(ctx context.Context) error, credentialID ulid.ULID) {
	if c == nil {
		return
	}
	c.steps = append(c.steps, compensationStep{name: name, credentialID: credentialID, fn: fn})
}

// run executes the undo writes newest first. Each is attempted once; failures
// are logged and do not stop the remaining steps. The caller's cancellation is
// ignored so an aborted request still cleans up.
func (c *compensation) run(ctx context.Context, logger *slog.Logger) {
	if len(c.steps) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), compensationTimeout)
	defer cancel()

	for i := len(c.steps) - 1; i >= 0; i-- {
		step := c.steps[i]
		if err := step.fn(ctx); err != nil {
			errutil.LogError(logger, "registration compensation failed",
				oops.With("step", step.name).With("credential_id", step.credentialID.String()).Wrap(err))
			continue
		}
		logger.WarnContext(ctx, "registration compensated",
			"step", step.name,
			"credential_id", step.credentialID.String())
	}
}
