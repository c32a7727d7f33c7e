package langparser

import "github.com/ara-lang/forest/internal/ast"

// tokenKind enumerates the lexical categories the scanner produces.
type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokVariable // $name
	tokInt
	tokFloat
	tokString
	tokKeyword

	// Punctuation and operators.
	tokLBrace
	tokRBrace
	tokLParen
	tokRParen
	tokLBracket
	tokRBracket
	tokSemi
	tokComma
	tokColon
	tokDoubleColon
	tokArrow           // ->
	tokNullsafeArrow   // ?->
	tokQuestion
	tokQuestionQuestion      // ??
	tokQuestionQuestionEqual // ??=
	tokQuestionColon         // ?:
	tokDot                   // .
	tokDotDot                // ..
	tokBackslash
	tokEllipsis // ...
	tokAmp

	tokAssign // =
	tokPlusEq
	tokMinusEq
	tokStarEq
	tokSlashEq
	tokDotEq
	tokPercentEq

	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokPercent
	tokStarStar

	tokEq // ==
	tokNotEq
	tokIdentical // ===
	tokNotIdentical
	tokLt
	tokLtEq
	tokGt
	tokGtEq
	tokSpaceship // <=>

	tokAndAnd // &&
	tokOrOr   // ||
	tokBang

	tokPipe // | (union type, bitwise or)
	tokCaret

	tokPlusPlus
	tokMinusMinus

	tokAt
)

type token struct {
	kind tokenKind
	text string
	r    ast.Range
}

// keywords recognized by the scanner; everything else lexes as tokIdent.
var keywords = map[string]bool{
	"namespace": true, "use": true, "function": true, "class": true,
	"interface": true, "enum": true, "type": true, "const": true,
	"extends": true, "implements": true, "as": true, "case": true,
	"if": true, "else": true, "elseif": true, "while": true, "do": true,
	"for": true, "foreach": true, "try": true, "catch": true, "finally": true,
	"return": true, "throw": true, "break": true, "continue": true,
	"using": true, "new": true, "clone": true, "await": true, "async": true,
	"isset": true, "unset": true, "instanceof": true, "is": true,
	"this": true, "parent": true, "self": true, "static": true,
	"exit": true, "true": true, "false": true, "null": true,
	"vec": true, "dict": true, "tuple": true, "yield": true,
	"public": true, "private": true, "protected": true, "readonly": true,
	"final": true, "abstract": true, "default": true,
}
