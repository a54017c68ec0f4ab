package ast

// ListFormat describes how a list of sibling nodes is printed. The line,
// delimiter, and bracket bits each form a group that is decoded with its mask.
type ListFormat uint32

const (
	ListFormatNone ListFormat = 0

	// Line separators
	SingleLine    ListFormat = 0      // Prints the list on a single line (default).
	MultiLine     ListFormat = 1 << 0 // Prints the list on multiple lines.
	PreserveLines ListFormat = 1 << 1 // Prints the list using line preservation if possible.
	LinesMask                = SingleLine | MultiLine | PreserveLines

	// Delimiters
	NotDelimited       ListFormat = 0      // There is no delimiter between list items (default).
	BarDelimited       ListFormat = 1 << 2 // Each list item is space-and-bar (" |") delimited.
	AmpersandDelimited ListFormat = 1 << 3 // Each list item is space-and-ampersand (" &") delimited.
	CommaDelimited     ListFormat = 1 << 4 // Each list item is comma (",") delimited.
	AsteriskDelimited  ListFormat = 1 << 5 // Each list item is asterisk ("\n *") delimited, used with JSDoc.
	DelimitersMask                = BarDelimited | AmpersandDelimited | CommaDelimited | AsteriskDelimited

	AllowTrailingComma ListFormat = 1 << 6 // Write a trailing comma (",") if present.

	// Whitespace
	Indented             ListFormat = 1 << 7 // The list should be indented.
	SpaceBetweenBraces   ListFormat = 1 << 8 // Inserts a space after the opening brace and before the closing brace.
	SpaceBetweenSiblings ListFormat = 1 << 9 // Inserts a space between each sibling node.

	// Brackets/Braces
	Braces         ListFormat = 1 << 10 // The list is surrounded by "{" and "}".
	Parenthesis    ListFormat = 1 << 11 // The list is surrounded by "(" and ")".
	AngleBrackets  ListFormat = 1 << 12 // The list is surrounded by "<" and ">".
	SquareBrackets ListFormat = 1 << 13 // The list is surrounded by "[" and "]".
	BracketsMask              = Braces | Parenthesis | AngleBrackets | SquareBrackets

	OptionalIfUndefined ListFormat = 1 << 14 // Do not emit brackets if the list is undefined.
	OptionalIfEmpty     ListFormat = 1 << 15 // Do not emit brackets if the list is empty.
	Optional                       = OptionalIfUndefined | OptionalIfEmpty

	// Other
	PreferNewLine         ListFormat = 1 << 16 // Prefer adding a LineTerminator between synthesized nodes.
	NoTrailingNewLine     ListFormat = 1 << 17 // Do not emit a trailing NewLine for a MultiLine list.
	NoInterveningComments ListFormat = 1 << 18 // Do not emit comments between each node
	NoSpaceIfEmpty        ListFormat = 1 << 19 // If the literal is empty, do not add spaces between braces.
	SingleElement         ListFormat = 1 << 20

	// Precomputed Formats
	Modifiers                         = SingleLine | SpaceBetweenSiblings | NoInterveningComments
	HeritageClauses                   = SingleLine | SpaceBetweenSiblings
	SingleLineTypeLiteralMembers      = SingleLine | SpaceBetweenBraces | SpaceBetweenSiblings
	MultiLineTypeLiteralMembers       = MultiLine | Indented | OptionalIfEmpty
	TupleTypeElements                 = CommaDelimited | SpaceBetweenSiblings | SingleLine
	UnionTypeConstituents             = BarDelimited | SpaceBetweenSiblings | SingleLine
	IntersectionTypeConstituents      = AmpersandDelimited | SpaceBetweenSiblings | SingleLine
	ObjectBindingPatternElements      = SingleLine | AllowTrailingComma | SpaceBetweenBraces | CommaDelimited | SpaceBetweenSiblings | NoSpaceIfEmpty
	ArrayBindingPatternElements       = SingleLine | AllowTrailingComma | CommaDelimited | SpaceBetweenSiblings | NoSpaceIfEmpty
	ObjectLiteralExpressionProperties = PreserveLines | CommaDelimited | SpaceBetweenSiblings | SpaceBetweenBraces | Indented | Braces | NoSpaceIfEmpty
	ArrayLiteralExpressionElements    = PreserveLines | CommaDelimited | SpaceBetweenSiblings | AllowTrailingComma | Indented | SquareBrackets
	CommaListElements                 = CommaDelimited | SpaceBetweenSiblings | SingleLine
	CallExpressionArguments           = CommaDelimited | SpaceBetweenSiblings | SingleLine | Parenthesis
	NewExpressionArguments            = CommaDelimited | SpaceBetweenSiblings | SingleLine | Parenthesis | OptionalIfUndefined
	TemplateExpressionSpans           = SingleLine | NoInterveningComments
	SingleLineBlockStatements         = SpaceBetweenBraces | SpaceBetweenSiblings | SingleLine
	MultiLineBlockStatements          = Indented | MultiLine
	VariableDeclarationListFormat     = CommaDelimited | SpaceBetweenSiblings | SingleLine
	SingleLineFunctionBodyStatements  = SingleLine | SpaceBetweenSiblings | SpaceBetweenBraces
	MultiLineFunctionBodyStatements   = MultiLine
	ClassHeritageClauses              = SingleLine
	ClassMembers                      = Indented | MultiLine
	InterfaceMembers                  = Indented | MultiLine
	EnumMembers                       = CommaDelimited | Indented | MultiLine
	CaseBlockClauses                  = Indented | MultiLine
	NamedImportsOrExportsElements     = CommaDelimited | SpaceBetweenSiblings | AllowTrailingComma | SingleLine | SpaceBetweenBraces | NoSpaceIfEmpty
	JsxElementOrFragmentChildren      = SingleLine | NoInterveningComments
	JsxElementAttributes              = SingleLine | SpaceBetweenSiblings | NoInterveningComments
	CaseOrDefaultClauseStatements     = Indented | MultiLine | NoTrailingNewLine | OptionalIfEmpty
	HeritageClauseTypes               = CommaDelimited | SpaceBetweenSiblings | SingleLine
	SourceFileStatements              = MultiLine | NoTrailingNewLine
	Decorators                        = MultiLine | Optional
	TypeArguments                     = CommaDelimited | SpaceBetweenSiblings | SingleLine | AngleBrackets | Optional
	TypeParameters                    = CommaDelimited | SpaceBetweenSiblings | SingleLine | AngleBrackets | Optional
	Parameters                        = CommaDelimited | SpaceBetweenSiblings | SingleLine | Parenthesis
	IndexSignatureParameters          = CommaDelimited | SpaceBetweenSiblings | SingleLine | Indented | SquareBrackets
	JSDocComment                      = MultiLine | AsteriskDelimited
)

func (format ListFormat) Has(flags ListFormat) bool {
	return format&flags != 0
}

func (format ListFormat) OpeningBracket() string {
	switch format & BracketsMask {
	case Braces:
		return "{"
	case Parenthesis:
		return "("
	case AngleBrackets:
		return "<"
	case SquareBrackets:
		return "["
	}
	return ""
}

func (format ListFormat) ClosingBracket() string {
	switch format & BracketsMask {
	case Braces:
		return "}"
	case Parenthesis:
		return ")"
	case AngleBrackets:
		return ">"
	case SquareBrackets:
		return "]"
	}
	return ""
}
