package helpers

const hexChars = "0123456789ABCDEF"

var shortEscapes = map[rune]string{
	'\b': "\\b",
	'\f': "\\f",
	'\n': "\\n",
	'\r': "\\r",
	'\t': "\\t",
	'\\': "\\\\",
}

// appendUnicodeEscape writes "c" as "\uXXXX", or as a surrogate pair of
// them when it is outside the basic multilingual plane.
func appendUnicodeEscape(bytes []byte, c rune) []byte {
	if c > 0xFFFF {
		c -= 0x10000
		bytes = appendUnicodeEscape(bytes, 0xD800+((c>>10)&0x3FF))
		c = 0xDC00 + (c & 0x3FF)
	}
	return append(bytes, '\\', 'u', hexChars[c>>12], hexChars[(c>>8)&15], hexChars[(c>>4)&15], hexChars[c&15])
}

func isSurrogate(c rune) bool {
	return c >= 0xD800 && c <= 0xDFFF
}

// QuoteForJSON returns "text" as a JSON string, quotes included. Unpaired
// surrogates and the byte order mark are always escaped.
func QuoteForJSON(text string, asciiOnly bool) []byte {
	bytes := make([]byte, 0, len(text)+2)
	bytes = append(bytes, '"')

	for i := 0; i < len(text); {
		c, width := DecodeWTF8Rune(text[i:])
		switch {
		case c == '"':
			bytes = append(bytes, '\\', '"')
		case shortEscapes[c] != "":
			bytes = append(bytes, shortEscapes[c]...)
		case c < 0x20 || c == '\uFEFF' || isSurrogate(c) || (asciiOnly && c > 0x7E):
			bytes = appendUnicodeEscape(bytes, c)
		default:
			bytes = append(bytes, text[i:i+width]...)
		}
		i += width
	}

	return append(bytes, '"')
}

func canEscapeWithoutChange(c rune, quoteChar byte, asciiOnly bool) bool {
	switch c {
	case '\\', '\u2028', '\u2029', '\u0085':
		return false
	case '"', '\'', '`':
		return c != rune(quoteChar)
	}
	if c < 0x20 {
		return false
	}
	return !asciiOnly || c <= 0x7F
}

// EscapeString escapes the contents of a string or template literal
// delimited by "quoteChar" without adding the delimiters. Control characters
// use their short escapes when one exists. With "asciiOnly" every character
// outside ASCII is written as one or two "\uXXXX" escapes.
func EscapeString(text string, quoteChar byte, asciiOnly bool) string {
	i := 0
	n := len(text)

	// Fast path: nothing to escape
	for i < n {
		c, width := DecodeWTF8Rune(text[i:])
		if !canEscapeWithoutChange(c, quoteChar, asciiOnly) {
			break
		}
		i += width
	}
	if i == n {
		return text
	}

	bytes := make([]byte, 0, n+8)
	bytes = append(bytes, text[:i]...)

	for i < n {
		c, width := DecodeWTF8Rune(text[i:])
		i += width

		if canEscapeWithoutChange(c, quoteChar, asciiOnly) {
			bytes = append(bytes, text[i-width:i]...)
			continue
		}

		switch c {
		case 0:
			// "\0" followed by a digit would be read as an octal escape
			if i < n && text[i] >= '0' && text[i] <= '9' {
				bytes = append(bytes, "\\x00"...)
			} else {
				bytes = append(bytes, "\\0"...)
			}
		case '\v':
			bytes = append(bytes, "\\v"...)
		case '"', '\'', '`':
			bytes = append(bytes, '\\', byte(c))
		default:
			if short, ok := shortEscapes[c]; ok {
				bytes = append(bytes, short...)
			} else {
				bytes = appendUnicodeEscape(bytes, c)
			}
		}
	}

	return string(bytes)
}
