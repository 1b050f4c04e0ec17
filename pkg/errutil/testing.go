// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package errutil

import (
	"testing"

	"github.com/samber/oops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertErrorCode asserts that err is an oops error with the given code.
func AssertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	assert.Equal(t, code, oopsErr.Code())
}

// AssertErrorContext asserts that err is an oops error with the given context key/value.
func AssertErrorContext(t *testing.T, err error, key string, value any) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	ctx := oopsErr.Context()
	assert.Contains(t, ctx, key)
	assert.Equal(t, value, ctx[key])
}

// AssertNoErrorContext asserts that err carries none of the given context keys.
func AssertNoErrorContext(t *testing.T, err error, keys ...string) {
	t.Helper()
	oopsErr, ok := oops.AsOops(err)
	require.True(t, ok, "expected oops error, got %T", err)
	ctx := oopsErr.Context()
	for _, key := range keys {
		assert.NotContains(t, ctx, key)
	}
}

// AssertSameShape asserts that a and b are indistinguishable to a caller:
// same code, same message and same context.
func AssertSameShape(t *testing.T, a, b error) {
	t.Helper()
	oa, ok := oops.AsOops(a)
	require.True(t, ok, "expected oops error, got %T", a)
	ob, ok := oops.AsOops(b)
	require.True(t, ok, "expected oops error, got %T", b)
	assert.Equal(t, oa.Code(), ob.Code(), "code")
	assert.Equal(t, a.Error(), b.Error(), "message")
	assert.Equal(t, oa.Context(), ob.Context(), "context")
}
