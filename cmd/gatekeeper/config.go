// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package main

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/gatekeeper/gatekeeper/internal/api"
	"github.com/gatekeeper/gatekeeper/internal/logging"
	"github.com/gatekeeper/gatekeeper/internal/token"
)

// envPrefix namespaces every environment override, e.g. GATEKEEPER_JWT_KEY.
const envPrefix = "GATEKEEPER_"

// Default configuration values.
const (
	defaultHTTPAddr        = ":8080"
	defaultMetricsAddr     = ":9100"
	defaultLogFormat       = "json"
	defaultLogLevel        = "info"
	defaultExpiryMinutes   = 30
	defaultRefreshDays     = 7
	defaultRateLimitRPS    = 5.0
	defaultRateLimitBurst  = 10
	defaultSeedRolesAtBoot = true
)

// Config is the full process configuration. Values are layered: defaults,
// then the YAML file, then explicitly set flags, then environment variables.
type Config struct {
	JWT       JWTConfig       `koanf:"jwt" envPrefix:"JWT_"`
	Database  DatabaseConfig  `koanf:"database" envPrefix:"DATABASE_"`
	HTTP      HTTPConfig      `koanf:"http" envPrefix:"HTTP_"`
	Metrics   MetricsConfig   `koanf:"metrics" envPrefix:"METRICS_"`
	Log       LogConfig       `koanf:"log" envPrefix:"LOG_"`
	Migrate   MigrateConfig   `koanf:"migrate" envPrefix:"MIGRATE_"`
	Seed      SeedConfig      `koanf:"seed" envPrefix:"SEED_"`
	RateLimit RateLimitConfig `koanf:"ratelimit" envPrefix:"RATELIMIT_"`
}

// JWTConfig holds the token signing parameters.
type JWTConfig struct {
	Issuer                     string `koanf:"issuer" env:"ISSUER"`
	Audience                   string `koanf:"audience" env:"AUDIENCE"`
	Key                        string `koanf:"key" env:"KEY"`
	ExpiryInMinutes            int    `koanf:"expiry_in_minutes" env:"EXPIRY_IN_MINUTES"`
	RefreshTokenExpirationDays int    `koanf:"refresh_token_expiration_days" env:"REFRESH_TOKEN_EXPIRATION_DAYS"`
}

// DatabaseConfig locates the identity and principal databases.
type DatabaseConfig struct {
	URL string `koanf:"url" env:"URL"`
	// PrincipalURL is optional. When it names a different database,
	// registration falls back to compensating deletes.
	PrincipalURL string `koanf:"principal_url" env:"PRINCIPAL_URL"`
}

// HTTPConfig configures the API listener.
type HTTPConfig struct {
	Addr string `koanf:"addr" env:"ADDR"`
}

// MetricsConfig configures the metrics and probe listener. Empty disables it.
type MetricsConfig struct {
	Addr string `koanf:"addr" env:"ADDR"`
}

// LogConfig selects log output.
type LogConfig struct {
	Format string `koanf:"format" env:"FORMAT"`
	Level  string `koanf:"level" env:"LEVEL"`
}

// MigrateConfig controls migrations at serve startup.
type MigrateConfig struct {
	Auto bool `koanf:"auto" env:"AUTO"`
}

// SeedConfig controls role seeding at serve startup.
type SeedConfig struct {
	Roles bool `koanf:"roles" env:"ROLES"`
}

// RateLimitConfig bounds requests per client on the /auth routes.
type RateLimitConfig struct {
	RPS   float64 `koanf:"rps" env:"RPS"`
	Burst int     `koanf:"burst" env:"BURST"`
	// TrustedProxies lists the addresses or CIDR prefixes of reverse proxies
	// whose X-Forwarded-For header identifies the client.
	TrustedProxies []string `koanf:"trusted_proxies" env:"TRUSTED_PROXIES" envSeparator:","`
}

// flagKeys maps CLI flag names onto configuration keys. Flags not listed
// here are command options, not configuration.
var flagKeys = map[string]string{
	"log-format":   "log.format",
	"log-level":    "log.level",
	"http-addr":    "http.addr",
	"metrics-addr": "metrics.addr",
	"auto-migrate": "migrate.auto",
}

func defaults() map[string]any {
	return map[string]any{
		"jwt.expiry_in_minutes":             defaultExpiryMinutes,
		"jwt.refresh_token_expiration_days": defaultRefreshDays,
		"http.addr":                         defaultHTTPAddr,
		"metrics.addr":                      defaultMetricsAddr,
		"log.format":                        defaultLogFormat,
		"log.level":                         defaultLogLevel,
		"migrate.auto":                      false,
		"seed.roles":                        defaultSeedRolesAtBoot,
		"ratelimit.rps":                     defaultRateLimitRPS,
		"ratelimit.burst":                   defaultRateLimitBurst,
	}
}

// loadConfig layers the configuration sources. environ replaces the process
// environment when non-nil.
func loadConfig(path string, flags *pflag.FlagSet, environ map[string]string) (*Config, error) {
	k := koanf.New(".")

	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("key", key).Wrap(err)
		}
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("path", path).Wrap(err)
		}
	}

	if flags != nil {
		provider := posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, oops.Code("CONFIG_INVALID").With("source", "flags").Wrap(err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, oops.Code("CONFIG_INVALID").Wrap(err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix, Environment: environ}); err != nil {
		return nil, oops.Code("CONFIG_INVALID").With("source", "environment").Wrap(err)
	}

	return &cfg, nil
}

// Token returns the signing configuration.
func (c *Config) Token() token.Config {
	return token.Config{
		Issuer:                     c.JWT.Issuer,
		Audience:                   c.JWT.Audience,
		Key:                        c.JWT.Key,
		ExpiryInMinutes:            c.JWT.ExpiryInMinutes,
		RefreshTokenExpirationDays: c.JWT.RefreshTokenExpirationDays,
	}
}

// LogOptions returns the parsed logging options.
func (c *Config) LogOptions() (logging.Options, error) {
	format, err := logging.ParseFormat(c.Log.Format)
	if err != nil {
		return logging.Options{}, err
	}
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.Options{}, err
	}
	return logging.Options{Format: format, Level: level}, nil
}

// RateLimiter returns the API limiter settings.
func (c *Config) RateLimiter() (api.RateLimitConfig, error) {
	proxies, err := api.ParseTrustedProxies(c.RateLimit.TrustedProxies)
	if err != nil {
		return api.RateLimitConfig{}, err
	}
	return api.RateLimitConfig{RPS: c.RateLimit.RPS, Burst: c.RateLimit.Burst, TrustedProxies: proxies}, nil
}

// SeparatePrincipalDatabase reports whether principals live in a database of
// their own.
func (c *Config) SeparatePrincipalDatabase() bool {
	p := strings.TrimSpace(c.Database.PrincipalURL)
	return p != "" && p != strings.TrimSpace(c.Database.URL)
}

// PrincipalDatabaseURL is where principals are stored.
func (c *Config) PrincipalDatabaseURL() string {
	if c.SeparatePrincipalDatabase() {
		return c.Database.PrincipalURL
	}
	return c.Database.URL
}

// Validate checks the settings serve needs. It never echoes the signing key.
func (c *Config) Validate() error {
	if err := c.Token().Validate(); err != nil {
		return oops.With("section", "jwt").Wrap(err)
	}
	if err := c.ValidateDatabase(); err != nil {
		return err
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return oops.Code("CONFIG_INVALID").With("field", "http.addr").Errorf("http listen address is required")
	}
	if _, err := c.LogOptions(); err != nil {
		return err
	}
	if c.RateLimit.RPS < 0 {
		return oops.Code("CONFIG_INVALID").With("field", "ratelimit.rps").Errorf("rate limit must not be negative")
	}
	if c.RateLimit.RPS > 0 && c.RateLimit.Burst < 1 {
		return oops.Code("CONFIG_INVALID").With("field", "ratelimit.burst").Errorf("burst must be at least 1 when rate limiting")
	}
	if _, err := c.RateLimiter(); err != nil {
		return err
	}
	return nil
}

// ValidateDatabase checks only the database settings, for the maintenance
// commands that never sign tokens.
func (c *Config) ValidateDatabase() error {
	if strings.TrimSpace(c.Database.URL) == "" {
		return oops.Code("CONFIG_INVALID").
			With("field", "database.url").
			Errorf("database url is required (set %sDATABASE_URL)", envPrefix)
	}
	return nil
}

// LogValue implements slog.LogValuer. Secrets are redacted.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("jwt", c.Token()),
		slog.String("database_url", redactURL(c.Database.URL)),
		slog.String("principal_database_url", redactURL(c.Database.PrincipalURL)),
		slog.String("http_addr", c.HTTP.Addr),
		slog.String("metrics_addr", c.Metrics.Addr),
		slog.Bool("auto_migrate", c.Migrate.Auto),
		slog.Bool("seed_roles", c.Seed.Roles),
		slog.Float64("ratelimit_rps", c.RateLimit.RPS),
		slog.Int("ratelimit_burst", c.RateLimit.Burst),
		slog.Any("ratelimit_trusted_proxies", c.RateLimit.TrustedProxies),
	)
}

// redactURL hides the password of a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return logging.Redacted
	}
	return u.Redacted()
}
