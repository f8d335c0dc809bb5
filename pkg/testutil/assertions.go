package testutil

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RequireNoError fails the test immediately if err is not nil.
func RequireNoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

// AssertErrorContains checks that err is non-nil and its message contains
// the expected substring.
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), expected)
}

// AssertDecimalEqual compares decimals by value, so 10 equals 10.00.
func AssertDecimalEqual(t *testing.T, expected, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, expected.Equal(actual), "expected %s, got %s", expected, actual)
}
