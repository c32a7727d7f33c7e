package langparser

import "github.com/ara-lang/forest/internal/ast"

// standaloneTypeNames excludes "never": it is classified as
// KindBottomType below since it is also a bottom type, and the type
// definition sanity rule treats KindBottomType as standalone-like for
// the union/intersection/nullable-operand restriction.
var standaloneTypeNames = map[string]bool{
	"void": true, "mixed": true,
}

var scalarTypeNames = map[string]bool{
	"int": true, "float": true, "string": true, "bool": true,
}

var bottomTypeNames = map[string]bool{
	"never": true,
}

// parseType parses a (possibly nullable/union/intersection/generic)
// type reference.
func (p *parser) parseType() (*ast.Node, *parseError) {
	if p.at(tokQuestion) {
		start := p.advance()
		inner, perr := p.parseTypeAtom()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindNullableType, ast.Range{Initial: start.r.Initial, Final: inner.Range.Final})
		n.SetField(ast.FieldType, inner)
		return n, nil
	}

	first, perr := p.parseTypeAtom()
	if perr != nil {
		return nil, perr
	}

	if p.at(tokPipe) {
		elements := []*ast.Node{first}
		end := first.Range.Final
		for p.at(tokPipe) {
			p.advance()
			next, perr := p.parseTypeAtom()
			if perr != nil {
				return nil, perr
			}
			elements = append(elements, next)
			end = next.Range.Final
		}
		n := ast.NewNode(ast.KindUnionType, ast.Range{Initial: first.Range.Initial, Final: end})
		n.SetList(ast.ListElements, elements)
		return n, nil
	}

	if p.at(tokAmp) {
		elements := []*ast.Node{first}
		end := first.Range.Final
		for p.at(tokAmp) {
			p.advance()
			next, perr := p.parseTypeAtom()
			if perr != nil {
				return nil, perr
			}
			elements = append(elements, next)
			end = next.Range.Final
		}
		n := ast.NewNode(ast.KindIntersectionType, ast.Range{Initial: first.Range.Initial, Final: end})
		n.SetList(ast.ListElements, elements)
		return n, nil
	}

	return first, nil
}

func (p *parser) parseTypeAtom() (*ast.Node, *parseError) {
	if p.at(tokLParen) {
		start := p.advance()
		var elements []*ast.Node
		for !p.at(tokRParen) {
			el, perr := p.parseType()
			if perr != nil {
				return nil, perr
			}
			elements = append(elements, el)
			if p.at(tokComma) {
				p.advance()
				continue
			}
			break
		}
		closing, perr := p.expect(tokRParen, "')'")
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindTupleTypeElements, ast.Range{Initial: start.r.Initial, Final: closing.r.Final})
		n.SetList(ast.ListElements, elements)
		return n, nil
	}

	name, perr := p.qualifiedNameNode()
	if perr != nil {
		return nil, perr
	}
	lower := name.Text

	if p.at(tokLt) {
		p.advance()
		var args []*ast.Node
		for !p.at(tokGt) {
			a, perr := p.parseType()
			if perr != nil {
				return nil, perr
			}
			args = append(args, a)
			if p.at(tokComma) {
				p.advance()
				continue
			}
			break
		}
		closing, perr := p.expect(tokGt, "'>'")
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindGenericType, ast.Range{Initial: name.Range.Initial, Final: closing.r.Final})
		n.Text = lower
		n.SetList(ast.ListGenericArgs, args)
		return n, nil
	}

	switch {
	case standaloneTypeNames[lower]:
		n := ast.NewNode(ast.KindStandaloneType, name.Range)
		n.Text = lower
		return n, nil
	case scalarTypeNames[lower]:
		n := ast.NewNode(ast.KindScalarType, name.Range)
		n.Text = lower
		return n, nil
	case bottomTypeNames[lower]:
		n := ast.NewNode(ast.KindBottomType, name.Range)
		n.Text = lower
		return n, nil
	default:
		n := ast.NewNode(ast.KindNamedType, name.Range)
		n.Text = lower
		return n, nil
	}
}
