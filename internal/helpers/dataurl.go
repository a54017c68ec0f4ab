package helpers

import (
	"encoding/base64"
	"strings"
)

// Source map consumers only look for base64 payloads in a
// "sourceMappingURL" comment, so no shorter percent-escaped form is tried
func EncodeStringAsBase64DataURL(mimeType string, text string) string {
	sb := strings.Builder{}
	sb.WriteString("data:")
	sb.WriteString(mimeType)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString([]byte(text)))
	return sb.String()
}

// DecodeBase64DataURL returns the payload of a URL produced by
// EncodeStringAsBase64DataURL.
func DecodeBase64DataURL(url string) (mimeType string, text string, ok bool) {
	rest, found := strings.CutPrefix(url, "data:")
	if !found {
		return "", "", false
	}
	mimeType, payload, found := strings.Cut(rest, ";base64,")
	if !found {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", "", false
	}
	return mimeType, string(decoded), true
}
