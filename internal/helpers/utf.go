package helpers

import "unicode/utf8"

// DecodeWTF8Rune is utf8.DecodeRuneInString except that it also decodes
// unpaired surrogates. String literals can hold those, and they are encoded
// the way UTF-8 would encode any other code point in that range.
func DecodeWTF8Rune(s string) (rune, int) {
	c, width := utf8.DecodeRuneInString(s)
	if c == utf8.RuneError && width == 1 && len(s) >= 3 &&
		s[0] == 0xED && s[1]&0xE0 == 0xA0 && s[2]&0xC0 == 0x80 {
		return rune(s[0]&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F), 3
	}
	return c, width
}
