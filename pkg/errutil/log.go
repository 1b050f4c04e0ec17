// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

// Package errutil logs and inspects samber/oops errors.
package errutil

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
)

// LogError logs err at Error level. oops errors contribute their code and
// context as separate attributes.
func LogError(logger *slog.Logger, msg string, err error, attrs ...any) {
	LogErrorContext(context.Background(), logger, msg, err, attrs...)
}

// LogErrorContext is LogError with a context, so trace ids are attached.
func LogErrorContext(ctx context.Context, logger *slog.Logger, msg string, err error, attrs ...any) {
	if logger == nil {
		logger = slog.Default()
	}
	all := make([]any, 0, len(attrs)+6)
	all = append(all, attrs...)
	if oopsErr, ok := oops.AsOops(err); ok {
		all = append(all, "error", oopsErr.Error())
		if code := oopsErr.Code(); code != nil {
			all = append(all, "code", code)
		}
		if c := oopsErr.Context(); len(c) > 0 {
			all = append(all, "context", c)
		}
	} else {
		all = append(all, "error", err)
	}
	logger.ErrorContext(ctx, msg, all...)
}

// Code returns the oops code of err, or "" when it has none.
func Code(err error) string {
	if oopsErr, ok := oops.AsOops(err); ok {
		if code, ok := oopsErr.Code().(string); ok {
			return code
		}
	}
	return ""
}
