// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package main

import (
	"context"
	"log/slog"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/gatekeeper/gatekeeper/internal/api"
	"github.com/gatekeeper/gatekeeper/internal/auth"
	"github.com/gatekeeper/gatekeeper/internal/auth/postgres"
	"github.com/gatekeeper/gatekeeper/internal/token"
)

// Shutdown and probe timeouts.
const (
	shutdownTimeout = 10 * time.Second
	readinessPing   = 2 * time.Second
)

// defaultRoles are seeded at startup and by the seed command.
var defaultRoles = []string{auth.RoleMember, auth.RoleAdmin}

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the identity API",
		Long: `Start the HTTP API for registration, login, refresh and user lookup,
along with the metrics and health probe server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := configPath()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(path, cmd.Flags(), nil)
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cmd, cfg, nil)
		},
	}

	cmd.Flags().String("http-addr", defaultHTTPAddr, "API listen address")
	cmd.Flags().String("metrics-addr", defaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().Bool("auto-migrate", false, "apply pending migrations before serving")

	return cmd
}

// services are the coordinators the API dispatches to.
type services struct {
	credentials  *auth.CredentialService
	registration *auth.RegistrationService
	authn        *auth.Service
	profiles     *auth.ProfileService
	issuer       *token.Issuer
}

// newServices wires the stores and coordinators. Registration shares one
// transaction across both stores when they live in the same database and
// uses compensating deletes otherwise.
func newServices(identity, principalsDB Database, separate bool, cfg token.Config, logger *slog.Logger) (*services, error) {
	issuer, err := token.NewIssuer(cfg)
	if err != nil {
		return nil, err
	}

	credentials, err := auth.NewCredentialService(postgres.NewCredentialRepository(identity), auth.NewArgon2idHasher())
	if err != nil {
		return nil, err
	}
	principals := postgres.NewPrincipalRepository(principalsDB)
	tokens := postgres.NewRefreshTokenRepository(identity)

	regOpts := []auth.ServiceOption{auth.WithLogger(logger)}
	if !separate {
		regOpts = append(regOpts, auth.WithTransactor(postgres.NewTransactor(identity)))
	}

	registration, err := auth.NewRegistrationService(credentials, principals, tokens, issuer, regOpts...)
	if err != nil {
		return nil, err
	}
	authn, err := auth.NewAuthService(credentials, tokens, issuer, auth.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	profiles, err := auth.NewProfileService(principals)
	if err != nil {
		return nil, err
	}

	return &services{
		credentials:  credentials,
		registration: registration,
		authn:        authn,
		profiles:     profiles,
		issuer:       issuer,
	}, nil
}

// runServe starts the service with injectable dependencies and blocks until
// ctx is cancelled, a signal arrives or a server fails.
// If deps is nil, default implementations are used.
func runServe(ctx context.Context, cmd *cobra.Command, cfg *Config, deps *Deps) error {
	deps = deps.withDefaults()

	if err := cfg.Validate(); err != nil {
		return oops.With("operation", "validate configuration").Wrap(err)
	}

	logger, err := newLogger(cfg, deps)
	if err != nil {
		return err
	}
	logger.Info("starting gatekeeper", "version", version, "config", cfg)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	identity, err := deps.DatabaseOpener(ctx, cfg.Database.URL)
	if err != nil {
		return oops.With("operation", "connect identity database").Wrap(err)
	}
	defer identity.Close()

	principalsDB := identity
	separate := cfg.SeparatePrincipalDatabase()
	if separate {
		principalsDB, err = deps.DatabaseOpener(ctx, cfg.Database.PrincipalURL)
		if err != nil {
			return oops.With("operation", "connect principal database").Wrap(err)
		}
		defer principalsDB.Close()
		logger.Warn("principals are stored in a separate database; registration uses compensating deletes")
	}
	logger.Info("connected to database", "separate_principal_database", separate)

	if cfg.Migrate.Auto {
		targets, err := migrationTargets(cfg, schemaAll)
		if err != nil {
			return err
		}
		if err := migrateUp(deps, targets, logger); err != nil {
			return err
		}
	}

	svc, err := newServices(identity, principalsDB, separate, cfg.Token(), logger)
	if err != nil {
		return oops.With("operation", "create services").Wrap(err)
	}

	if cfg.Seed.Roles {
		created, err := svc.credentials.EnsureRoles(ctx, defaultRoles...)
		if err != nil {
			return oops.Code("SEED_FAILED").With("operation", "seed roles").Wrap(err)
		}
		if len(created) > 0 {
			logger.Info("seeded roles", "roles", created)
		}
	}

	var ready atomic.Bool
	readiness := func() bool {
		if !ready.Load() {
			return false
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), readinessPing)
		defer cancel()
		return identity.Ping(pingCtx) == nil
	}

	var (
		obsServer ObservabilityServer
		obsErrs   <-chan error
		metrics   api.Metrics
	)
	if cfg.Metrics.Addr != "" {
		obsServer = deps.ObservabilityServerFactory(cfg.Metrics.Addr, readiness)
		obsErrs, err = obsServer.Start()
		if err != nil {
			return oops.With("operation", "start observability server").Wrap(err)
		}
		metrics = obsServer.Metrics()
		logger.Info("observability server started", "addr", obsServer.Addr())
	}

	limits, err := cfg.RateLimiter()
	if err != nil {
		stopServers(logger, nil, obsServer)
		return err
	}
	router, err := api.NewRouter(api.Deps{
		Registrar:     svc.registration,
		Authenticator: svc.authn,
		Profiles:      svc.profiles,
		Verifier:      svc.issuer,
		Metrics:       metrics,
		Logger:        logger,
		RateLimit:     limits,
	})
	if err != nil {
		stopServers(logger, nil, obsServer)
		return oops.With("operation", "create router").Wrap(err)
	}

	apiServer := deps.APIServerFactory(cfg.HTTP.Addr, router)
	apiErrs, err := apiServer.Start()
	if err != nil {
		stopServers(logger, nil, obsServer)
		return oops.With("operation", "start api server").Wrap(err)
	}
	ready.Store(true)

	cmd.Println("gatekeeper started")
	logger.Info("gatekeeper ready", "addr", apiServer.Addr())

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err, ok := <-apiErrs:
		if ok && err != nil {
			runErr = oops.Code("API_SERVE_FAILED").Wrap(err)
		}
	case err, ok := <-obsErrs:
		if ok && err != nil {
			runErr = oops.Code("OBSERVABILITY_SERVE_FAILED").Wrap(err)
		}
	}

	ready.Store(false)
	stopServers(logger, apiServer, obsServer)
	logger.Info("shutdown complete")
	return runErr
}

// stopServers drains the API first so in-flight requests finish while the
// probes still answer.
func stopServers(logger *slog.Logger, apiServer APIServer, obsServer ObservabilityServer) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if apiServer != nil {
		if err := apiServer.Stop(ctx); err != nil {
			logger.Warn("error stopping api server", "error", err)
		}
	}
	if obsServer != nil {
		if err := obsServer.Stop(ctx); err != nil {
			logger.Warn("error stopping observability server", "error", err)
		}
	}
}
