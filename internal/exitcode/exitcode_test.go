package exitcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webcarrot/tsemit/internal/errors"
	"github.com/webcarrot/tsemit/internal/exitcode"
)

func TestGet(t *testing.T) {
	base := exitcode.Set(errors.New(""), exitcode.OutputsGenerated)
	wrapped := errors.Wrap(base, "wrapping")

	testCases := map[string]struct {
		error
		int
	}{
		"nil":     {nil, exitcode.Success},
		"default": {errors.New(""), exitcode.OutputsSkipped},
		"set":     {exitcode.Set(errors.New(""), exitcode.InvalidArguments), exitcode.InvalidArguments},
		"wrapped": {wrapped, exitcode.OutputsGenerated},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.int, exitcode.Get(tc.error), "%v", tc.error)
		})
	}
}

func TestSet(t *testing.T) {
	t.Run("same-message", func(t *testing.T) {
		err := errors.New("hello")
		coder := exitcode.Set(err, 2)
		assert.Equal(t, err.Error(), coder.Error())
	})
	t.Run("keep-chain", func(t *testing.T) {
		err := errors.New("hello")
		coder := exitcode.Set(err, 3)
		assert.True(t, errors.Is(coder, err), "broken chain: %v is not %v", coder, err)
	})
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, exitcode.Set(nil, 3))
	})
}
