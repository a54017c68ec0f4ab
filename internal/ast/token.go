package ast

// Token identifies a punctuator, operator, or keyword. The same enum is used
// for operator fields (binary, prefix and postfix expressions), for modifier
// and keyword nodes, and for the tokens the printer writes between children.
type Token uint8

const (
	TUnknown Token = iota

	// Punctuation
	TOpenBrace
	TCloseBrace
	TOpenParen
	TCloseParen
	TOpenBracket
	TCloseBracket
	TDot
	TDotDotDot
	TSemicolon
	TComma
	TLessThan
	TLessThanSlash
	TGreaterThan
	TLessThanEquals
	TGreaterThanEquals
	TEqualsEquals
	TExclamationEquals
	TEqualsEqualsEquals
	TExclamationEqualsEquals
	TEqualsGreaterThan
	TPlus
	TMinus
	TAsterisk
	TAsteriskAsterisk
	TSlash
	TPercent
	TPlusPlus
	TMinusMinus
	TLessThanLessThan
	TGreaterThanGreaterThan
	TGreaterThanGreaterThanGreaterThan
	TAmpersand
	TBar
	TCaret
	TExclamation
	TTilde
	TAmpersandAmpersand
	TBarBar
	TQuestion
	TColon
	TAt

	// Assignments
	TEquals
	TPlusEquals
	TMinusEquals
	TAsteriskEquals
	TAsteriskAsteriskEquals
	TSlashEquals
	TPercentEquals
	TLessThanLessThanEquals
	TGreaterThanGreaterThanEquals
	TGreaterThanGreaterThanGreaterThanEquals
	TAmpersandEquals
	TBarEquals
	TCaretEquals

	// Reserved words
	TBreak
	TCase
	TCatch
	TClass
	TConst
	TContinue
	TDebugger
	TDefault
	TDelete
	TDo
	TElse
	TEnum
	TExport
	TExtends
	TFalse
	TFinally
	TFor
	TFunction
	TIf
	TImport
	TIn
	TInstanceof
	TNew
	TNull
	TReturn
	TSuper
	TSwitch
	TThis
	TThrow
	TTrue
	TTry
	TTypeof
	TVar
	TVoid
	TWhile
	TWith

	// Strict mode reserved words
	TImplements
	TInterface
	TLet
	TPackage
	TPrivate
	TProtected
	TPublic
	TStatic
	TYield

	// Contextual keywords
	TAbstract
	TAs
	TAny
	TAsync
	TAwait
	TBoolean
	TConstructor
	TDeclare
	TGet
	TInfer
	TIs
	TKeyOf
	TModule
	TNamespace
	TNever
	TReadonly
	TRequire
	TNumber
	TObject
	TSet
	TString
	TSymbol
	TType
	TUndefined
	TUnique
	TUnknownKeyword
	TFrom
	TGlobal
	TBigInt
	TOf

	firstKeyword = TBreak
	lastKeyword  = TOf
)

var tokenToString = map[Token]string{
	TOpenBrace:                               "{",
	TCloseBrace:                              "}",
	TOpenParen:                               "(",
	TCloseParen:                              ")",
	TOpenBracket:                             "[",
	TCloseBracket:                            "]",
	TDot:                                     ".",
	TDotDotDot:                               "...",
	TSemicolon:                               ";",
	TComma:                                   ",",
	TLessThan:                                "<",
	TLessThanSlash:                           "</",
	TGreaterThan:                             ">",
	TLessThanEquals:                          "<=",
	TGreaterThanEquals:                       ">=",
	TEqualsEquals:                            "==",
	TExclamationEquals:                       "!=",
	TEqualsEqualsEquals:                      "===",
	TExclamationEqualsEquals:                 "!==",
	TEqualsGreaterThan:                       "=>",
	TPlus:                                    "+",
	TMinus:                                   "-",
	TAsterisk:                                "*",
	TAsteriskAsterisk:                        "**",
	TSlash:                                   "/",
	TPercent:                                 "%",
	TPlusPlus:                                "++",
	TMinusMinus:                              "--",
	TLessThanLessThan:                        "<<",
	TGreaterThanGreaterThan:                  ">>",
	TGreaterThanGreaterThanGreaterThan:       ">>>",
	TAmpersand:                               "&",
	TBar:                                     "|",
	TCaret:                                   "^",
	TExclamation:                             "!",
	TTilde:                                   "~",
	TAmpersandAmpersand:                      "&&",
	TBarBar:                                  "||",
	TQuestion:                                "?",
	TColon:                                   ":",
	TAt:                                      "@",
	TEquals:                                  "=",
	TPlusEquals:                              "+=",
	TMinusEquals:                             "-=",
	TAsteriskEquals:                          "*=",
	TAsteriskAsteriskEquals:                  "**=",
	TSlashEquals:                             "/=",
	TPercentEquals:                           "%=",
	TLessThanLessThanEquals:                  "<<=",
	TGreaterThanGreaterThanEquals:            ">>=",
	TGreaterThanGreaterThanGreaterThanEquals: ">>>=",
	TAmpersandEquals:                         "&=",
	TBarEquals:                               "|=",
	TCaretEquals:                             "^=",

	TBreak:      "break",
	TCase:       "case",
	TCatch:      "catch",
	TClass:      "class",
	TConst:      "const",
	TContinue:   "continue",
	TDebugger:   "debugger",
	TDefault:    "default",
	TDelete:     "delete",
	TDo:         "do",
	TElse:       "else",
	TEnum:       "enum",
	TExport:     "export",
	TExtends:    "extends",
	TFalse:      "false",
	TFinally:    "finally",
	TFor:        "for",
	TFunction:   "function",
	TIf:         "if",
	TImport:     "import",
	TIn:         "in",
	TInstanceof: "instanceof",
	TNew:        "new",
	TNull:       "null",
	TReturn:     "return",
	TSuper:      "super",
	TSwitch:     "switch",
	TThis:       "this",
	TThrow:      "throw",
	TTrue:       "true",
	TTry:        "try",
	TTypeof:     "typeof",
	TVar:        "var",
	TVoid:       "void",
	TWhile:      "while",
	TWith:       "with",

	TImplements: "implements",
	TInterface:  "interface",
	TLet:        "let",
	TPackage:    "package",
	TPrivate:    "private",
	TProtected:  "protected",
	TPublic:     "public",
	TStatic:     "static",
	TYield:      "yield",

	TAbstract:       "abstract",
	TAs:             "as",
	TAny:            "any",
	TAsync:          "async",
	TAwait:          "await",
	TBoolean:        "boolean",
	TConstructor:    "constructor",
	TDeclare:        "declare",
	TGet:            "get",
	TInfer:          "infer",
	TIs:             "is",
	TKeyOf:          "keyof",
	TModule:         "module",
	TNamespace:      "namespace",
	TNever:          "never",
	TReadonly:       "readonly",
	TRequire:        "require",
	TNumber:         "number",
	TObject:         "object",
	TSet:            "set",
	TString:         "string",
	TSymbol:         "symbol",
	TType:           "type",
	TUndefined:      "undefined",
	TUnique:         "unique",
	TUnknownKeyword: "unknown",
	TFrom:           "from",
	TGlobal:         "global",
	TBigInt:         "bigint",
	TOf:             "of",
}

var stringToToken map[string]Token

func init() {
	stringToToken = make(map[string]Token, len(tokenToString))
	for t, text := range tokenToString {
		stringToToken[text] = t
	}
}

func (t Token) String() string {
	return tokenToString[t]
}

// TokenFromString is the inverse of Token.String. It returns TUnknown for
// text that is not a token.
func TokenFromString(text string) Token {
	return stringToToken[text]
}

func (t Token) IsKeyword() bool {
	return t >= firstKeyword && t <= lastKeyword
}

func (t Token) IsPunctuation() bool {
	return t > TUnknown && t < firstKeyword
}

func (t Token) IsAssignment() bool {
	return t >= TEquals && t <= TCaretEquals
}
