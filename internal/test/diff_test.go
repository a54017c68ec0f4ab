package test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	require.Equal(t, " a\n-b\n+c\n d", Diff("a\nb\nd", "a\nc\nd"))
	require.Equal(t, " same", Diff("same", "same"))
	require.Equal(t, "-x\n+y", Diff("x", "y"))
}
