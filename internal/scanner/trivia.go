package scanner

// This package answers the questions the printer asks about the original
// source text: where the next token starts, which comments sit in the trivia
// before or after a position, and what kind of comments they are. It never
// tokenizes anything beyond trivia.

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/webcarrot/tsemit/internal/ast"
)

type CommentRange struct {
	ast.TextRange
	Kind               ast.CommentKind
	HasTrailingNewLine bool
}

// See the "White Space Code Points" table in the ECMAScript standard
func IsWhiteSpaceSingleLine(c rune) bool {
	switch c {
	case
		'\u0009', // character tabulation
		'\u000B', // line tabulation
		'\u000C', // form feed
		'\u0020', // space
		'\u0085', // next line
		'\u00A0', // no-break space
		'\u1680', // ogham space mark
		'\u2000', // en quad
		'\u2001', // em quad
		'\u2002', // en space
		'\u2003', // em space
		'\u2004', // three-per-em space
		'\u2005', // four-per-em space
		'\u2006', // six-per-em space
		'\u2007', // figure space
		'\u2008', // punctuation space
		'\u2009', // thin space
		'\u200A', // hair space
		'\u200B', // zero width space
		'\u202F', // narrow no-break space
		'\u205F', // medium mathematical space
		'\u3000', // ideographic space
		'\uFEFF': // zero width non-breaking space
		return true
	}
	return false
}

func IsLineBreak(c rune) bool {
	switch c {
	case '\n', '\r', '\u2028', '\u2029':
		return true
	}
	return false
}

func IsWhiteSpaceLike(c rune) bool {
	return IsWhiteSpaceSingleLine(c) || IsLineBreak(c)
}

func runeAt(text string, pos int) (rune, int) {
	if pos < 0 || pos >= len(text) {
		return -1, 0
	}
	if c := text[pos]; c < utf8.RuneSelf {
		return rune(c), 1
	}
	return utf8.DecodeRuneInString(text[pos:])
}

func byteAt(text string, pos int) byte {
	if pos < 0 || pos >= len(text) {
		return 0
	}
	return text[pos]
}

// Shebang returns the "#!" line at the start of the text, without the line
// terminator, or "" if there is none.
func Shebang(text string) string {
	if !strings.HasPrefix(text, "#!") {
		return ""
	}
	end := 2
	for end < len(text) {
		if c, _ := runeAt(text, end); IsLineBreak(c) {
			break
		}
		end++
	}
	return text[:end]
}

// SkipTrivia returns the position of the first token at or after pos.
// Synthesized (negative) positions are returned unchanged.
func SkipTrivia(text string, pos int) int {
	return SkipTriviaEx(text, pos, false, false)
}

func SkipTriviaEx(text string, pos int, stopAfterLineBreak bool, stopAtComments bool) int {
	if pos < 0 {
		return pos
	}
	for pos < len(text) {
		switch text[pos] {
		case '\r':
			if byteAt(text, pos+1) == '\n' {
				pos++
			}
			fallthrough
		case '\n':
			pos++
			if stopAfterLineBreak {
				return pos
			}
			continue

		case '\t', '\v', '\f', ' ':
			pos++
			continue

		case '/':
			if stopAtComments {
				return pos
			}
			switch byteAt(text, pos+1) {
			case '/':
				pos += 2
				for pos < len(text) {
					if c, _ := runeAt(text, pos); IsLineBreak(c) {
						break
					}
					pos++
				}
				continue
			case '*':
				pos += 2
				for pos < len(text) {
					if text[pos] == '*' && byteAt(text, pos+1) == '/' {
						pos += 2
						break
					}
					pos++
				}
				continue
			}
			return pos

		case '#':
			if pos == 0 {
				if shebang := Shebang(text); shebang != "" {
					pos = len(shebang)
					continue
				}
			}
			return pos

		default:
			if c, width := runeAt(text, pos); c >= utf8.RuneSelf && IsWhiteSpaceLike(c) {
				pos += width
				continue
			}
			return pos
		}
	}
	return pos
}

// Comments in the trivia starting at "pos" are either leading comments of
// the next token or trailing comments of the previous one. Trailing comments
// are the ones on the same line as "pos". Leading comments are the rest, but
// at the start of the file everything counts as leading.
func iterateCommentRanges(text string, pos int, trailing bool, cb func(CommentRange) bool) {
	var pending CommentRange
	hasPending := false
	collecting := trailing

	if pos < 0 {
		return
	}
	if pos == 0 {
		collecting = true
		pos = len(Shebang(text))
	}

scan:
	for pos < len(text) {
		switch c := text[pos]; c {
		case '\r':
			if byteAt(text, pos+1) == '\n' {
				pos++
			}
			fallthrough
		case '\n':
			pos++
			if trailing {
				break scan
			}
			collecting = true
			if hasPending {
				pending.HasTrailingNewLine = true
			}
			continue

		case '\t', '\v', '\f', ' ':
			pos++
			continue

		case '/':
			next := byteAt(text, pos+1)
			if next != '/' && next != '*' {
				break scan
			}
			kind := ast.MultiLineComment
			if next == '/' {
				kind = ast.SingleLineComment
			}
			start := pos
			hasTrailingNewLine := false
			pos += 2
			if next == '/' {
				for pos < len(text) {
					if r, _ := runeAt(text, pos); IsLineBreak(r) {
						hasTrailingNewLine = true
						break
					}
					pos++
				}
			} else {
				for pos < len(text) {
					if text[pos] == '*' && byteAt(text, pos+1) == '/' {
						pos += 2
						break
					}
					pos++
				}
			}
			if collecting {
				if hasPending && !cb(pending) {
					return
				}
				pending = CommentRange{
					TextRange:          ast.TextRange{Pos: start, End: pos},
					Kind:               kind,
					HasTrailingNewLine: hasTrailingNewLine,
				}
				hasPending = true
			}
			continue

		default:
			if r, width := runeAt(text, pos); r >= utf8.RuneSelf && IsWhiteSpaceLike(r) {
				if hasPending && IsLineBreak(r) {
					pending.HasTrailingNewLine = true
				}
				pos += width
				continue
			}
			break scan
		}
	}

	if hasPending {
		cb(pending)
	}
}

// ForEachLeadingCommentRange calls cb for each leading comment until cb
// returns false.
func ForEachLeadingCommentRange(text string, pos int, cb func(CommentRange) bool) {
	iterateCommentRanges(text, pos, false, cb)
}

func ForEachTrailingCommentRange(text string, pos int, cb func(CommentRange) bool) {
	iterateCommentRanges(text, pos, true, cb)
}

func LeadingCommentRanges(text string, pos int) (result []CommentRange) {
	ForEachLeadingCommentRange(text, pos, func(c CommentRange) bool {
		result = append(result, c)
		return true
	})
	return
}

func TrailingCommentRanges(text string, pos int) (result []CommentRange) {
	ForEachTrailingCommentRange(text, pos, func(c CommentRange) bool {
		result = append(result, c)
		return true
	})
	return
}

// IsPinnedComment reports "/*!" comments, which survive comment removal.
func IsPinnedComment(text string, start int) bool {
	return byteAt(text, start+1) == '*' && byteAt(text, start+2) == '!'
}

// IsJSDocLikeText reports "/**" comments that are not the empty "/**/".
func IsJSDocLikeText(text string, start int) bool {
	return byteAt(text, start+1) == '*' && byteAt(text, start+2) == '*' && byteAt(text, start+3) != '/'
}

var (
	fullTripleSlashReferencePathRegEx = regexp.MustCompile(`^(///\s*<reference\s+path\s*=\s*)('|")(.+?)('|").*?/>`)
	fullTripleSlashReferenceTypeRegEx = regexp.MustCompile(`^(///\s*<reference\s+types\s*=\s*)('|")(.+?)('|").*?/>`)
	fullTripleSlashAMDReferenceRegEx  = regexp.MustCompile(`^(///\s*<amd-dependency\s+path\s*=\s*)('|")(.+?)('|").*?/>`)
	defaultLibReferenceRegEx          = regexp.MustCompile(`^(///\s*<reference\s+no-default-lib\s*=\s*)('|")(.+?)('|")\s*/>`)
	libReferenceRegEx                 = regexp.MustCompile(`^(///\s*<reference\s+lib\s*=\s*)('|")(.+?)('|").*?/>`)
)

// IsRecognizedTripleSlashComment reports "/// <reference ... />" and
// "/// <amd-dependency ... />" directives.
func IsRecognizedTripleSlashComment(text string, pos int, end int) bool {
	if pos < 0 || end > len(text) || end-pos < 3 || !strings.HasPrefix(text[pos:], "///") {
		return false
	}
	comment := text[pos:end]
	return fullTripleSlashReferencePathRegEx.MatchString(comment) ||
		fullTripleSlashAMDReferenceRegEx.MatchString(comment) ||
		fullTripleSlashReferenceTypeRegEx.MatchString(comment) ||
		libReferenceRegEx.MatchString(comment) ||
		defaultLibReferenceRegEx.MatchString(comment)
}
