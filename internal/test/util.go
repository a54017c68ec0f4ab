package test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertEqualWithDiff fails with a line diff, which reads better than the
// quoted strings testify prints for multi-line output.
func AssertEqualWithDiff(t *testing.T, observed string, expected string) {
	t.Helper()
	if observed != expected {
		require.FailNow(t, "output mismatch", "%s", Diff(expected, observed))
	}
}
