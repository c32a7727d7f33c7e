package langparser

import (
	"fmt"
	"strings"

	"github.com/ara-lang/forest/internal/ast"
)

// lexer turns source bytes into a flat token stream. It has no
// knowledge of grammar; syntax errors are raised by the parser, not
// here, except for malformed literals (unterminated strings) and bytes
// that start no known token.
type lexer struct {
	src []byte
	pos int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src}
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *lexer) byteAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentPart(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func (l *lexer) skipTrivia() {
	for l.pos < len(l.src) {
		b := l.peekByte()
		if isSpace(b) {
			l.pos++
			continue
		}
		if b == '/' && l.byteAt(1) == '/' {
			for l.pos < len(l.src) && l.peekByte() != '\n' {
				l.pos++
			}
			continue
		}
		if b == '/' && l.byteAt(1) == '*' {
			l.pos += 2
			for l.pos < len(l.src) && !(l.peekByte() == '*' && l.byteAt(1) == '/') {
				l.pos++
			}
			if l.pos < len(l.src) {
				l.pos += 2
			}
			continue
		}
		break
	}
}

// next returns the next token. At end of input it returns tokEOF
// repeatedly.
func (l *lexer) next() (token, error) {
	l.skipTrivia()
	start := l.pos
	if l.pos >= len(l.src) {
		return token{kind: tokEOF, r: ast.Range{Initial: start, Final: start}}, nil
	}

	b := l.peekByte()

	switch {
	case b == '$':
		l.pos++
		for isIdentPart(l.peekByte()) {
			l.pos++
		}
		return l.make(tokVariable, start), nil
	case isIdentStart(b):
		for isIdentPart(l.peekByte()) {
			l.pos++
		}
		text := string(l.src[start:l.pos])
		if keywords[strings.ToLower(text)] {
			return l.make(tokKeyword, start), nil
		}
		return l.make(tokIdent, start), nil
	case isDigit(b):
		return l.lexNumber(start)
	case b == '"' || b == '\'':
		return l.lexString(start, b)
	}

	return l.lexOperator(start)
}

func (l *lexer) make(kind tokenKind, start int) token {
	text := string(l.src[start:l.pos])
	return token{kind: kind, text: text, r: ast.Range{Initial: start, Final: l.pos}}
}

func (l *lexer) lexNumber(start int) (token, error) {
	isFloat := false
	for isDigit(l.peekByte()) {
		l.pos++
	}
	if l.peekByte() == '.' && isDigit(l.byteAt(1)) {
		isFloat = true
		l.pos++
		for isDigit(l.peekByte()) {
			l.pos++
		}
	}
	if isFloat {
		return l.make(tokFloat, start), nil
	}
	return l.make(tokInt, start), nil
}

func (l *lexer) lexString(start int, quote byte) (token, error) {
	l.pos++ // opening quote
	for l.pos < len(l.src) && l.peekByte() != quote {
		if l.peekByte() == '\\' && l.pos+1 < len(l.src) {
			l.pos++
		}
		l.pos++
	}
	if l.pos >= len(l.src) {
		return token{}, fmt.Errorf("unterminated string literal starting at byte %d", start)
	}
	l.pos++ // closing quote
	return l.make(tokString, start), nil
}

func (l *lexer) lexOperator(start int) (token, error) {
	three := string(peekN(l.src, l.pos, 3))
	switch three {
	case "===":
		l.pos += 3
		return l.make(tokIdentical, start), nil
	case "!==":
		l.pos += 3
		return l.make(tokNotIdentical, start), nil
	case "<=>":
		l.pos += 3
		return l.make(tokSpaceship, start), nil
	case "??=":
		l.pos += 3
		return l.make(tokQuestionQuestionEqual, start), nil
	case "...":
		l.pos += 3
		return l.make(tokEllipsis, start), nil
	case "**=":
		// treated as tokStarEq-adjacent; not separately needed today.
	}

	two := string(peekN(l.src, l.pos, 2))
	switch two {
	case "->":
		l.pos += 2
		return l.make(tokArrow, start), nil
	case "?-":
		if l.byteAt(2) == '>' {
			l.pos += 3
			return l.make(tokNullsafeArrow, start), nil
		}
	case "::":
		l.pos += 2
		return l.make(tokDoubleColon, start), nil
	case "??":
		l.pos += 2
		return l.make(tokQuestionQuestion, start), nil
	case "?:":
		l.pos += 2
		return l.make(tokQuestionColon, start), nil
	case "+=":
		l.pos += 2
		return l.make(tokPlusEq, start), nil
	case "-=":
		l.pos += 2
		return l.make(tokMinusEq, start), nil
	case "*=":
		l.pos += 2
		return l.make(tokStarEq, start), nil
	case "/=":
		l.pos += 2
		return l.make(tokSlashEq, start), nil
	case ".=":
		l.pos += 2
		return l.make(tokDotEq, start), nil
	case "%=":
		l.pos += 2
		return l.make(tokPercentEq, start), nil
	case "==":
		l.pos += 2
		return l.make(tokEq, start), nil
	case "!=":
		l.pos += 2
		return l.make(tokNotEq, start), nil
	case "<=":
		l.pos += 2
		return l.make(tokLtEq, start), nil
	case ">=":
		l.pos += 2
		return l.make(tokGtEq, start), nil
	case "&&":
		l.pos += 2
		return l.make(tokAndAnd, start), nil
	case "||":
		l.pos += 2
		return l.make(tokOrOr, start), nil
	case "++":
		l.pos += 2
		return l.make(tokPlusPlus, start), nil
	case "--":
		l.pos += 2
		return l.make(tokMinusMinus, start), nil
	case "**":
		l.pos += 2
		return l.make(tokStarStar, start), nil
	case "..":
		l.pos += 2
		return l.make(tokDotDot, start), nil
	}

	b := l.peekByte()
	single := map[byte]tokenKind{
		'{': tokLBrace, '}': tokRBrace, '(': tokLParen, ')': tokRParen,
		'[': tokLBracket, ']': tokRBracket, ';': tokSemi, ',': tokComma,
		':': tokColon, '\\': tokBackslash, '?': tokQuestion, '.': tokDot,
		'=': tokAssign, '+': tokPlus, '-': tokMinus, '*': tokStar,
		'/': tokSlash, '%': tokPercent, '<': tokLt, '>': tokGt,
		'!': tokBang, '|': tokPipe, '^': tokCaret, '&': tokAmp, '@': tokAt,
	}
	if kind, ok := single[b]; ok {
		l.pos++
		return l.make(kind, start), nil
	}

	return token{}, fmt.Errorf("unexpected byte %q at offset %d", b, start)
}

func peekN(src []byte, pos, n int) []byte {
	end := pos + n
	if end > len(src) {
		end = len(src)
	}
	return src[pos:end]
}
