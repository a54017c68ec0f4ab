package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcarrot/tsemit/internal/helpers"
)

func TestBase64DataURL(t *testing.T) {
	url := helpers.EncodeStringAsBase64DataURL("application/json", `{"version":3}`)
	assert.Equal(t, "data:application/json;base64,eyJ2ZXJzaW9uIjozfQ==", url)

	mimeType, text, ok := helpers.DecodeBase64DataURL(url)
	require.True(t, ok)
	assert.Equal(t, "application/json", mimeType)
	assert.Equal(t, `{"version":3}`, text)

	_, _, ok = helpers.DecodeBase64DataURL("data:text/plain,abc")
	assert.False(t, ok)
}
