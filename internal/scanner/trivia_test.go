package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webcarrot/tsemit/internal/ast"
)

func commentRange(pos int, end int, kind ast.CommentKind, hasTrailingNewLine bool) CommentRange {
	return CommentRange{TextRange: ast.TextRange{Pos: pos, End: end}, Kind: kind, HasTrailingNewLine: hasTrailingNewLine}
}

func TestLeadingCommentRanges(t *testing.T) {
	assert.Equal(t, []CommentRange{commentRange(0, 7, ast.MultiLineComment, false)},
		LeadingCommentRanges("/* a */ x", 0))

	assert.Equal(t, []CommentRange{
		commentRange(0, 4, ast.SingleLineComment, true),
		commentRange(5, 12, ast.MultiLineComment, true),
	}, LeadingCommentRanges("// a\n/* b */\nx", 0))

	// Comments on the same line as the previous token are trailing comments
	assert.Nil(t, LeadingCommentRanges("a /* c */ b", 1))

	assert.Equal(t, []CommentRange{commentRange(4, 11, ast.MultiLineComment, false)},
		LeadingCommentRanges("#!x\n/* a */ y", 0))

	assert.Nil(t, LeadingCommentRanges("/* a */", -1))
}

func TestTrailingCommentRanges(t *testing.T) {
	assert.Equal(t, []CommentRange{commentRange(2, 9, ast.MultiLineComment, false)},
		TrailingCommentRanges("a /* c */ b", 1))

	assert.Equal(t, []CommentRange{commentRange(2, 6, ast.SingleLineComment, true)},
		TrailingCommentRanges("a // c\n/* d */", 1))
}

func TestSkipTrivia(t *testing.T) {
	assert.Equal(t, 12, SkipTrivia("  /* x */\n  y", 0))
	assert.Equal(t, 0, SkipTrivia("y", 0))
	assert.Equal(t, -1, SkipTrivia("  y", -1))
}

func TestCommentKinds(t *testing.T) {
	assert.Equal(t, "#!/usr/bin/env node", Shebang("#!/usr/bin/env node\nx"))
	assert.Equal(t, "", Shebang("x"))

	assert.True(t, IsPinnedComment("/*! keep */", 0))
	assert.False(t, IsPinnedComment("/* drop */", 0))
	assert.True(t, IsJSDocLikeText("/** doc */", 0))
	assert.False(t, IsJSDocLikeText("/**/", 0))

	reference := `/// <reference path="a.ts" />`
	assert.True(t, IsRecognizedTripleSlashComment(reference, 0, len(reference)))
	assert.False(t, IsRecognizedTripleSlashComment("/// plain", 0, 9))
}
