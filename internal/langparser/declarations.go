package langparser

import "github.com/ara-lang/forest/internal/ast"

func (p *parser) parseFunction() (*ast.Node, *parseError) {
	start := p.cur().r
	p.advance() // function
	name, perr := p.identifierNode()
	if perr != nil {
		return nil, perr
	}
	params, perr := p.parseParameterList()
	if perr != nil {
		return nil, perr
	}
	var retType *ast.Node
	if p.at(tokColon) {
		p.advance()
		retType, perr = p.parseType()
		if perr != nil {
			return nil, perr
		}
	}
	body, perr := p.parseBlock()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindFunction, ast.Range{Initial: start.Initial, Final: body.Range.Final})
	n.SetField(ast.FieldName, name)
	n.SetList(ast.ListParameters, params)
	n.SetField(ast.FieldReturnType, retType)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

// parseParameterList parses "(" param ("," param)* ")".
func (p *parser) parseParameterList() ([]*ast.Node, *parseError) {
	if _, perr := p.expect(tokLParen, "'('"); perr != nil {
		return nil, perr
	}
	var params []*ast.Node
	for !p.at(tokRParen) {
		param, perr := p.parseParameter()
		if perr != nil {
			return nil, perr
		}
		params = append(params, param)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	if _, perr := p.expect(tokRParen, "')'"); perr != nil {
		return nil, perr
	}
	return params, nil
}

func (p *parser) parseParameter() (*ast.Node, *parseError) {
	start := p.cur().r
	// visibility modifiers on constructor-promoted parameters are
	// accepted but not retained as separate fields; promotion is out of
	// scope for the lint rules this parser feeds.
	for p.atKeyword("public") || p.atKeyword("private") || p.atKeyword("protected") || p.atKeyword("readonly") {
		p.advance()
	}
	ty, perr := p.parseType()
	if perr != nil {
		return nil, perr
	}
	variadic := false
	if p.at(tokEllipsis) {
		p.advance()
		variadic = true
	}
	name, perr := p.expect(tokVariable, "a parameter variable")
	if perr != nil {
		return nil, perr
	}
	var def *ast.Node
	hasDefault := false
	if p.at(tokAssign) {
		p.advance()
		hasDefault = true
		def, perr = p.parseExpr()
		if perr != nil {
			return nil, perr
		}
	}
	end := name.r.Final
	if def != nil {
		end = def.Range.Final
	}
	nameNode := ast.NewNode(ast.KindIdentifier, name.r)
	nameNode.Text = name.text
	n := ast.NewNode(ast.KindParameter, ast.Range{Initial: start.Initial, Final: end})
	n.SetField(ast.FieldName, nameNode)
	n.SetField(ast.FieldType, ty)
	n.SetField(ast.FieldDefault, def)
	n.Flag = variadic
	n.Flag2 = hasDefault
	return n, nil
}

func (p *parser) isClassModifier() bool {
	return p.atKeyword("final") || p.atKeyword("abstract")
}

func (p *parser) parseClassOrInterface() (*ast.Node, *parseError) {
	start := p.cur().r
	for p.isClassModifier() {
		p.advance()
	}
	kind := ast.KindClass
	if p.atKeyword("interface") {
		kind = ast.KindInterface
	}
	p.advance() // class | interface
	name, perr := p.identifierNode()
	if perr != nil {
		return nil, perr
	}
	var extends []*ast.Node
	if p.atKeyword("extends") {
		p.advance()
		extends, perr = p.parseNameList()
		if perr != nil {
			return nil, perr
		}
	}
	var implements []*ast.Node
	if kind == ast.KindClass && p.atKeyword("implements") {
		p.advance()
		implements, perr = p.parseNameList()
		if perr != nil {
			return nil, perr
		}
	}
	members, end, perr := p.parseClassBody()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(kind, ast.Range{Initial: start.Initial, Final: end})
	n.SetField(ast.FieldName, name)
	n.SetList(ast.ListExtends, extends)
	n.SetList(ast.ListImplements, implements)
	n.SetList(ast.ListMembers, members)
	return n, nil
}

func (p *parser) parseNameList() ([]*ast.Node, *parseError) {
	var names []*ast.Node
	for {
		name, perr := p.qualifiedNameNode()
		if perr != nil {
			return nil, perr
		}
		names = append(names, name)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	return names, nil
}

func (p *parser) parseClassBody() ([]*ast.Node, int, *parseError) {
	if _, perr := p.expect(tokLBrace, "'{'"); perr != nil {
		return nil, 0, perr
	}
	var members []*ast.Node
	for !p.at(tokRBrace) {
		m, perr := p.parseClassMember()
		if perr != nil {
			return nil, 0, perr
		}
		members = append(members, m)
	}
	closing, perr := p.expect(tokRBrace, "'}'")
	if perr != nil {
		return nil, 0, perr
	}
	return members, closing.r.Final, nil
}

func (p *parser) parseClassMember() (*ast.Node, *parseError) {
	start := p.cur().r
	for p.atKeyword("public") || p.atKeyword("private") || p.atKeyword("protected") ||
		p.atKeyword("final") || p.atKeyword("abstract") || p.atKeyword("static") || p.atKeyword("readonly") {
		p.advance()
	}

	switch {
	case p.atKeyword("const"):
		return p.parseMemberConstant(start)
	case p.atKeyword("function"):
		return p.parseMethod(start)
	default:
		return p.parseProperty(start)
	}
}

func (p *parser) parseMemberConstant(start ast.Range) (*ast.Node, *parseError) {
	p.advance() // const
	var ty *ast.Node
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
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindConstantItem, ast.Range{Initial: start.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldName, name)
	n.SetField(ast.FieldType, ty)
	n.SetField(ast.FieldValue, val)
	return n, nil
}

func (p *parser) parseMethod(start ast.Range) (*ast.Node, *parseError) {
	p.advance() // function
	name, perr := p.identifierNode()
	if perr != nil {
		return nil, perr
	}
	params, perr := p.parseParameterList()
	if perr != nil {
		return nil, perr
	}
	var retType *ast.Node
	if p.at(tokColon) {
		p.advance()
		retType, perr = p.parseType()
		if perr != nil {
			return nil, perr
		}
	}
	var body *ast.Node
	end := name.Range.Final
	if p.at(tokSemi) {
		semi := p.advance()
		end = semi.r.Final
	} else {
		body, perr = p.parseBlock()
		if perr != nil {
			return nil, perr
		}
		end = body.Range.Final
	}
	n := ast.NewNode(ast.KindMethod, ast.Range{Initial: start.Initial, Final: end})
	n.SetField(ast.FieldName, name)
	n.SetList(ast.ListParameters, params)
	n.SetField(ast.FieldReturnType, retType)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseProperty(start ast.Range) (*ast.Node, *parseError) {
	ty, perr := p.parseType()
	if perr != nil {
		return nil, perr
	}
	nameTok, perr := p.expect(tokVariable, "a property variable")
	if perr != nil {
		return nil, perr
	}
	name := ast.NewNode(ast.KindIdentifier, nameTok.r)
	name.Text = nameTok.text
	var def *ast.Node
	if p.at(tokAssign) {
		p.advance()
		def, perr = p.parseExpr()
		if perr != nil {
			return nil, perr
		}
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindProperty, ast.Range{Initial: start.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldName, name)
	n.SetField(ast.FieldType, ty)
	n.SetField(ast.FieldDefault, def)
	return n, nil
}

func (p *parser) parseEnum() (*ast.Node, *parseError) {
	start := p.cur().r
	p.advance() // enum
	name, perr := p.identifierNode()
	if perr != nil {
		return nil, perr
	}
	kind := ast.KindUnitEnum
	var backing *ast.Node
	if p.at(tokColon) {
		p.advance()
		backing, perr = p.parseType()
		if perr != nil {
			return nil, perr
		}
		if backing.Text == "string" {
			kind = ast.KindStringBackedEnum
		} else {
			kind = ast.KindIntBackedEnum
		}
	}
	var implements []*ast.Node
	if p.atKeyword("implements") {
		p.advance()
		implements, perr = p.parseNameList()
		if perr != nil {
			return nil, perr
		}
	}
	if _, perr = p.expect(tokLBrace, "'{'"); perr != nil {
		return nil, perr
	}
	var cases []*ast.Node
	var members []*ast.Node
	for !p.at(tokRBrace) {
		if p.atKeyword("case") {
			c, perr := p.parseEnumCase()
			if perr != nil {
				return nil, perr
			}
			cases = append(cases, c)
			continue
		}
		m, perr := p.parseClassMember()
		if perr != nil {
			return nil, perr
		}
		members = append(members, m)
	}
	closing, perr := p.expect(tokRBrace, "'}'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(kind, ast.Range{Initial: start.Initial, Final: closing.r.Final})
	n.SetField(ast.FieldName, name)
	n.SetList(ast.ListImplements, implements)
	n.SetList(ast.ListCases, cases)
	n.SetList(ast.ListMembers, members)
	return n, nil
}

func (p *parser) parseEnumCase() (*ast.Node, *parseError) {
	start := p.cur().r
	p.advance() // case
	name, perr := p.identifierNode()
	if perr != nil {
		return nil, perr
	}
	var val *ast.Node
	if p.at(tokAssign) {
		p.advance()
		val, perr = p.parseExpr()
		if perr != nil {
			return nil, perr
		}
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindConstantItem, ast.Range{Initial: start.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldName, name)
	n.SetField(ast.FieldValue, val)
	return n, nil
}
