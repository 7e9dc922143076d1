// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// requirePanicIs runs fn and asserts it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", target)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

// mutation is one randomized write used by the round-trip properties.
// Fields are exported so gofuzz can populate them.
type mutation struct {
	Row, Col uint8
	Value    int16
}
