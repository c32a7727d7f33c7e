// Package langparser is the external parser seam: it turns raw source
// bytes into an internal/ast.Tree, or a diagnostic report on a syntax
// error. Everything above this package (internal/cache,
// internal/pipeline) depends only on the Parser interface, never on
// this package's internals — this is where a real target-language
// grammar would plug in; this implementation is a complete,
// self-contained recursive-descent parser for it.
package langparser

import (
	"fmt"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/report"
)

// Parser is the interface internal/cache and internal/pipeline consume.
// Parse returns either a tree (success) or a report (syntax error),
// never both.
type Parser interface {
	Parse(origin string, content []byte) (*ast.Tree, *report.Report)
}

// RecursiveDescent is the production Parser.
type RecursiveDescent struct{}

func New() *RecursiveDescent {
	return &RecursiveDescent{}
}

func (RecursiveDescent) Parse(origin string, content []byte) (*ast.Tree, *report.Report) {
	toks, err := lexAll(content)
	if err != nil {
		return nil, syntaxErrorReport(origin, err.Error(), ast.Range{})
	}

	p := &parser{origin: origin, toks: toks}
	decls, perr := p.parseProgram()
	if perr != nil {
		return nil, syntaxErrorReport(origin, perr.Error(), p.errRange)
	}
	return ast.NewTree(origin, decls), nil
}

func syntaxErrorReport(origin, message string, r ast.Range) *report.Report {
	return report.New().WithIssue(issue.New("SyntaxError", issue.Error, message, origin, r))
}

func lexAll(content []byte) ([]token, error) {
	l := newLexer(content)
	var toks []token
	for {
		t, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, t)
		if t.kind == tokEOF {
			break
		}
	}
	return toks, nil
}

// parseError carries the range at which parsing failed, surfaced to
// the top-level Parse call via parser.errRange.
type parseError struct {
	msg string
}

func (e *parseError) Error() string { return e.msg }

type parser struct {
	origin   string
	toks     []token
	pos      int
	errRange ast.Range
}

func (p *parser) cur() token {
	if p.pos >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[idx]
}

func (p *parser) advance() token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) at(kind tokenKind) bool {
	return p.cur().kind == kind
}

func (p *parser) atKeyword(kw string) bool {
	return p.cur().kind == tokKeyword && p.cur().text == kw
}

func (p *parser) fail(format string, args ...interface{}) *parseError {
	p.errRange = p.cur().r
	return &parseError{msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expect(kind tokenKind, what string) (token, *parseError) {
	if !p.at(kind) {
		return token{}, p.fail("expected %s, found %q", what, p.cur().text)
	}
	return p.advance(), nil
}

func (p *parser) expectKeyword(kw string) *parseError {
	if !p.atKeyword(kw) {
		return p.fail("expected keyword %q, found %q", kw, p.cur().text)
	}
	p.advance()
	return nil
}

// identifier accepts either a plain identifier or a (non-reserved)
// keyword used as a name, since this language freely reuses words like
// "default" or "static" as property/method names.
func (p *parser) identifierNode() (*ast.Node, *parseError) {
	if p.at(tokIdent) || p.at(tokKeyword) {
		t := p.advance()
		n := ast.NewNode(ast.KindIdentifier, t.r)
		n.Text = t.text
		return n, nil
	}
	return nil, p.fail("expected identifier, found %q", p.cur().text)
}

// qualifiedNameNode parses Foo\Bar\Baz as a single identifier node
// whose Text is the full dotted (backslash) path.
func (p *parser) qualifiedNameNode() (*ast.Node, *parseError) {
	start := p.cur().r
	first, perr := p.identifierNode()
	if perr != nil {
		return nil, perr
	}
	text := first.Text
	end := first.Range.Final
	for p.at(tokBackslash) {
		p.advance()
		seg, perr := p.identifierNode()
		if perr != nil {
			return nil, perr
		}
		text += "\\" + seg.Text
		end = seg.Range.Final
	}
	n := ast.NewNode(ast.KindIdentifier, ast.Range{Initial: start.Initial, Final: end})
	n.Text = text
	return n, nil
}

func (p *parser) parseProgram() ([]*ast.Node, *parseError) {
	var decls []*ast.Node
	for !p.at(tokEOF) {
		d, err := p.parseTopLevel()
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}

func (p *parser) parseTopLevel() (*ast.Node, *parseError) {
	switch {
	case p.atKeyword("namespace"):
		return p.parseNamespace()
	case p.atKeyword("use"):
		return p.parseUse()
	case p.atKeyword("function"):
		return p.parseFunction()
	case p.atKeyword("type"):
		return p.parseTypeAlias()
	case p.atKeyword("const"):
		return p.parseConstant()
	case p.atKeyword("enum"):
		return p.parseEnum()
	case p.isClassOrInterfaceStart():
		return p.parseClassOrInterface()
	default:
		return nil, p.fail("expected a top-level declaration, found %q", p.cur().text)
	}
}

func (p *parser) isClassOrInterfaceStart() bool {
	i := 0
	for {
		t := p.peekAt(i)
		if t.kind != tokKeyword {
			return false
		}
		switch t.text {
		case "final", "abstract":
			i++
			continue
		case "class", "interface":
			return true
		default:
			return false
		}
	}
}

func (p *parser) parseNamespace() (*ast.Node, *parseError) {
	start := p.cur().r
	p.advance() // namespace
	name, perr := p.qualifiedNameNode()
	if perr != nil {
		return nil, perr
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindNamespace, ast.Range{Initial: start.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldName, name)
	return n, nil
}

func (p *parser) parseUse() (*ast.Node, *parseError) {
	start := p.cur().r
	p.advance() // use
	kind := ast.KindUseDefault
	if p.atKeyword("function") {
		p.advance()
		kind = ast.KindUseFunction
	} else if p.atKeyword("const") {
		p.advance()
		kind = ast.KindUseConstant
	}
	name, perr := p.qualifiedNameNode()
	if perr != nil {
		return nil, perr
	}
	var alias *ast.Node
	if p.atKeyword("as") {
		p.advance()
		alias, perr = p.identifierNode()
		if perr != nil {
			return nil, perr
		}
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(kind, ast.Range{Initial: start.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldName, name)
	n.SetField(ast.FieldAlias, alias)
	return n, nil
}

func (p *parser) parseTypeAlias() (*ast.Node, *parseError) {
	start := p.cur().r
	p.advance() // type
	name, perr := p.identifierNode()
	if perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokAssign, "'='"); perr != nil {
		return nil, perr
	}
	ty, perr := p.parseType()
	if perr != nil {
		return nil, perr
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindTypeAlias, ast.Range{Initial: start.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldName, name)
	n.SetField(ast.FieldType, ty)
	return n, nil
}

func (p *parser) parseConstant() (*ast.Node, *parseError) {
	start := p.cur().r
	p.advance() // const
	var items []*ast.Node
	for {
		var ty *ast.Node
		itemStart := p.cur().r
		if !p.isAssignAfterIdent() {
			var perr *parseError
			ty, perr = p.parseType()
			if perr != nil {
				return nil, perr
			}
		}
		name, perr := p.identifierNode()
		if perr != nil {
			return nil, perr
		}
		if _, perr = p.expect(tokAssign, "'='"); perr != nil {
			return nil, perr
		}
		val, perr := p.parseExpr()
		if perr != nil {
			return nil, perr
		}
		item := ast.NewNode(ast.KindConstantItem, ast.Range{Initial: itemStart.Initial, Final: val.Range.Final})
		item.SetField(ast.FieldName, name)
		item.SetField(ast.FieldType, ty)
		item.SetField(ast.FieldValue, val)
		items = append(items, item)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindConstant, ast.Range{Initial: start.Initial, Final: semi.r.Final})
	n.SetList(ast.ListMembers, items)
	return n, nil
}

// isAssignAfterIdent reports whether the current identifier is
// immediately followed by '=', meaning there is no type annotation.
func (p *parser) isAssignAfterIdent() bool {
	return p.at(tokIdent) && p.peekAt(1).kind == tokAssign
}
