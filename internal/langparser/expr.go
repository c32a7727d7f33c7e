package langparser

import "github.com/ara-lang/forest/internal/ast"

// parseExpr parses a full expression at the lowest precedence
// (assignment).
func (p *parser) parseExpr() (*ast.Node, *parseError) {
	return p.parseAssignment()
}

var compoundAssignOps = map[tokenKind]string{
	tokPlusEq: "+=", tokMinusEq: "-=", tokStarEq: "*=", tokSlashEq: "/=",
	tokDotEq: ".=", tokPercentEq: "%=", tokQuestionQuestionEqual: "??=",
}

func (p *parser) parseAssignment() (*ast.Node, *parseError) {
	left, perr := p.parseTernary()
	if perr != nil {
		return nil, perr
	}
	if p.at(tokAssign) {
		p.advance()
		right, perr := p.parseAssignment()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindAssign, ast.Range{Initial: left.Range.Initial, Final: right.Range.Final})
		n.Text = "="
		n.SetField(ast.FieldTarget, left)
		n.SetField(ast.FieldValue, right)
		return n, nil
	}
	if op, ok := compoundAssignOps[p.cur().kind]; ok {
		p.advance()
		right, perr := p.parseAssignment()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindAssign, ast.Range{Initial: left.Range.Initial, Final: right.Range.Final})
		n.Text = op
		n.SetField(ast.FieldTarget, left)
		n.SetField(ast.FieldValue, right)
		return n, nil
	}
	return left, nil
}

func (p *parser) parseTernary() (*ast.Node, *parseError) {
	cond, perr := p.parseCoalesce()
	if perr != nil {
		return nil, perr
	}
	if p.at(tokQuestionColon) {
		p.advance()
		alt, perr := p.parseAssignment()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindShortTernary, ast.Range{Initial: cond.Range.Initial, Final: alt.Range.Final})
		n.SetField(ast.FieldCondition, cond)
		n.SetField(ast.FieldAlternative, alt)
		return n, nil
	}
	if p.at(tokQuestion) {
		p.advance()
		then, perr := p.parseAssignment()
		if perr != nil {
			return nil, perr
		}
		if _, perr = p.expect(tokColon, "':'"); perr != nil {
			return nil, perr
		}
		alt, perr := p.parseAssignment()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindTernary, ast.Range{Initial: cond.Range.Initial, Final: alt.Range.Final})
		n.SetField(ast.FieldCondition, cond)
		n.SetField(ast.FieldConsequence, then)
		n.SetField(ast.FieldAlternative, alt)
		return n, nil
	}
	return cond, nil
}

func (p *parser) parseCoalesce() (*ast.Node, *parseError) {
	left, perr := p.parseLogicalOr()
	if perr != nil {
		return nil, perr
	}
	if p.at(tokQuestionQuestion) {
		p.advance()
		right, perr := p.parseCoalesce()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindCoalesce, ast.Range{Initial: left.Range.Initial, Final: right.Range.Final})
		n.SetField(ast.FieldCondition, left)
		n.SetField(ast.FieldAlternative, right)
		return n, nil
	}
	return left, nil
}

func (p *parser) parseLogicalOr() (*ast.Node, *parseError) {
	left, perr := p.parseLogicalAnd()
	if perr != nil {
		return nil, perr
	}
	for p.at(tokOrOr) {
		p.advance()
		right, perr := p.parseLogicalAnd()
		if perr != nil {
			return nil, perr
		}
		left = binaryNode(left, right, "||")
	}
	return left, nil
}

func (p *parser) parseLogicalAnd() (*ast.Node, *parseError) {
	left, perr := p.parseEquality()
	if perr != nil {
		return nil, perr
	}
	for p.at(tokAndAnd) {
		p.advance()
		right, perr := p.parseEquality()
		if perr != nil {
			return nil, perr
		}
		left = binaryNode(left, right, "&&")
	}
	return left, nil
}

var equalityOps = map[tokenKind]string{
	tokEq: "==", tokNotEq: "!=", tokIdentical: "===", tokNotIdentical: "!==", tokSpaceship: "<=>",
}

func (p *parser) parseEquality() (*ast.Node, *parseError) {
	left, perr := p.parseRelational()
	if perr != nil {
		return nil, perr
	}
	for {
		op, ok := equalityOps[p.cur().kind]
		if !ok {
			break
		}
		p.advance()
		right, perr := p.parseRelational()
		if perr != nil {
			return nil, perr
		}
		left = binaryNode(left, right, op)
	}
	return left, nil
}

var relationalOps = map[tokenKind]string{
	tokLt: "<", tokLtEq: "<=", tokGt: ">", tokGtEq: ">=",
}

func (p *parser) parseRelational() (*ast.Node, *parseError) {
	left, perr := p.parseTypeTest()
	if perr != nil {
		return nil, perr
	}
	for {
		op, ok := relationalOps[p.cur().kind]
		if !ok {
			break
		}
		p.advance()
		right, perr := p.parseTypeTest()
		if perr != nil {
			return nil, perr
		}
		left = binaryNode(left, right, op)
	}
	return left, nil
}

func (p *parser) parseTypeTest() (*ast.Node, *parseError) {
	left, perr := p.parseRange()
	if perr != nil {
		return nil, perr
	}
	for p.atKeyword("instanceof") || p.atKeyword("is") || p.atKeyword("as") {
		kw := p.advance()
		ty, perr := p.parseType()
		if perr != nil {
			return nil, perr
		}
		var kind ast.Kind
		switch kw.text {
		case "instanceof":
			kind = ast.KindInstanceof
		case "is":
			kind = ast.KindIs
		default:
			kind = ast.KindAs
		}
		n := ast.NewNode(kind, ast.Range{Initial: left.Range.Initial, Final: ty.Range.Final})
		n.SetField(ast.FieldLeft, left)
		n.SetField(ast.FieldType, ty)
		left = n
	}
	return left, nil
}

func (p *parser) parseRange() (*ast.Node, *parseError) {
	left, perr := p.parseConcat()
	if perr != nil {
		return nil, perr
	}
	if p.at(tokDotDot) {
		p.advance()
		right, perr := p.parseConcat()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindRange, ast.Range{Initial: left.Range.Initial, Final: right.Range.Final})
		n.SetField(ast.FieldLeft, left)
		n.SetField(ast.FieldRight, right)
		return n, nil
	}
	return left, nil
}

func (p *parser) parseConcat() (*ast.Node, *parseError) {
	left, perr := p.parseAdditive()
	if perr != nil {
		return nil, perr
	}
	for p.at(tokDot) {
		p.advance()
		right, perr := p.parseAdditive()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindStringConcat, ast.Range{Initial: left.Range.Initial, Final: right.Range.Final})
		n.SetField(ast.FieldLeft, left)
		n.SetField(ast.FieldRight, right)
		left = n
	}
	return left, nil
}

func (p *parser) parseAdditive() (*ast.Node, *parseError) {
	left, perr := p.parseMultiplicative()
	if perr != nil {
		return nil, perr
	}
	for p.at(tokPlus) || p.at(tokMinus) {
		opTok := p.advance()
		right, perr := p.parseMultiplicative()
		if perr != nil {
			return nil, perr
		}
		left = binaryNode(left, right, opTok.text)
	}
	return left, nil
}

func (p *parser) parseMultiplicative() (*ast.Node, *parseError) {
	left, perr := p.parseExponent()
	if perr != nil {
		return nil, perr
	}
	for p.at(tokStar) || p.at(tokSlash) || p.at(tokPercent) {
		opTok := p.advance()
		right, perr := p.parseExponent()
		if perr != nil {
			return nil, perr
		}
		left = binaryNode(left, right, opTok.text)
	}
	return left, nil
}

func (p *parser) parseExponent() (*ast.Node, *parseError) {
	left, perr := p.parseUnary()
	if perr != nil {
		return nil, perr
	}
	if p.at(tokStarStar) {
		p.advance()
		right, perr := p.parseExponent() // right-associative
		if perr != nil {
			return nil, perr
		}
		left = binaryNode(left, right, "**")
	}
	return left, nil
}

func binaryNode(left, right *ast.Node, op string) *ast.Node {
	n := ast.NewNode(ast.KindBinary, ast.Range{Initial: left.Range.Initial, Final: right.Range.Final})
	n.Text = op
	n.SetField(ast.FieldLeft, left)
	n.SetField(ast.FieldRight, right)
	return n
}

var unaryPrefixOps = map[tokenKind]string{
	tokBang: "!", tokMinus: "-", tokPlus: "+",
}

func (p *parser) parseUnary() (*ast.Node, *parseError) {
	if op, ok := unaryPrefixOps[p.cur().kind]; ok {
		start := p.advance()
		operand, perr := p.parseUnary()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindUnary, ast.Range{Initial: start.r.Initial, Final: operand.Range.Final})
		n.Text = op
		n.SetField(ast.FieldOperand, operand)
		return n, nil
	}
	if p.at(tokPlusPlus) || p.at(tokMinusMinus) {
		start := p.advance()
		operand, perr := p.parseUnary()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindIncDec, ast.Range{Initial: start.r.Initial, Final: operand.Range.Final})
		n.Text = start.text
		n.Flag = true // prefix
		n.SetField(ast.FieldOperand, operand)
		return n, nil
	}
	if p.atKeyword("await") {
		start := p.advance()
		operand, perr := p.parseUnary()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindAwait, ast.Range{Initial: start.r.Initial, Final: operand.Range.Final})
		n.SetField(ast.FieldOperand, operand)
		return n, nil
	}
	if p.atKeyword("clone") {
		start := p.advance()
		operand, perr := p.parseUnary()
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindClone, ast.Range{Initial: start.r.Initial, Final: operand.Range.Final})
		n.SetField(ast.FieldOperand, operand)
		return n, nil
	}
	if p.atKeyword("yield") {
		start := p.advance()
		var val *ast.Node
		end := start.r.Final
		if p.exprCanStart() {
			var perr *parseError
			val, perr = p.parseAssignment()
			if perr != nil {
				return nil, perr
			}
			end = val.Range.Final
		}
		n := ast.NewNode(ast.KindYield, ast.Range{Initial: start.r.Initial, Final: end})
		n.SetField(ast.FieldValue, val)
		return n, nil
	}
	return p.parsePostfix()
}

// exprCanStart is a conservative check used only to decide whether a
// bare "yield;" has a following value expression.
func (p *parser) exprCanStart() bool {
	switch p.cur().kind {
	case tokSemi, tokRParen, tokRBrace, tokRBracket, tokComma, tokEOF:
		return false
	default:
		return true
	}
}

func (p *parser) parsePostfix() (*ast.Node, *parseError) {
	expr, perr := p.parsePrimary()
	if perr != nil {
		return nil, perr
	}
	for {
		switch {
		case p.at(tokPlusPlus) || p.at(tokMinusMinus):
			opTok := p.advance()
			n := ast.NewNode(ast.KindIncDec, ast.Range{Initial: expr.Range.Initial, Final: opTok.r.Final})
			n.Text = opTok.text
			n.Flag = false // postfix
			n.SetField(ast.FieldOperand, expr)
			expr = n
		case p.at(tokArrow) || p.at(tokNullsafeArrow):
			nullsafe := p.at(tokNullsafeArrow)
			p.advance()
			prop, perr := p.identifierNode()
			if perr != nil {
				return nil, perr
			}
			kind := ast.KindPropertyFetch
			if nullsafe {
				kind = ast.KindNullsafePropertyFetch
			}
			if p.at(tokLParen) {
				args, err := p.parseArgumentList()
				if err != nil {
					return nil, err
				}
				call := ast.NewNode(ast.KindCall, ast.Range{Initial: expr.Range.Initial, Final: args.end})
				fetch := ast.NewNode(kind, ast.Range{Initial: expr.Range.Initial, Final: prop.Range.Final})
				fetch.SetField(ast.FieldObject, expr)
				fetch.SetField(ast.FieldProperty, prop)
				call.SetField(ast.FieldCallee, fetch)
				call.SetList(ast.ListArguments, args.nodes)
				expr = call
				continue
			}
			n := ast.NewNode(kind, ast.Range{Initial: expr.Range.Initial, Final: prop.Range.Final})
			n.SetField(ast.FieldObject, expr)
			n.SetField(ast.FieldProperty, prop)
			expr = n
		case p.at(tokDoubleColon):
			p.advance()
			if p.at(tokVariable) {
				v := p.advance()
				propName := ast.NewNode(ast.KindIdentifier, v.r)
				propName.Text = v.text
				n := ast.NewNode(ast.KindStaticPropertyFetch, ast.Range{Initial: expr.Range.Initial, Final: v.r.Final})
				n.SetField(ast.FieldClassRef, expr)
				n.SetField(ast.FieldProperty, propName)
				expr = n
				continue
			}
			prop, perr := p.identifierNode()
			if perr != nil {
				return nil, perr
			}
			n := ast.NewNode(ast.KindClassConstFetch, ast.Range{Initial: expr.Range.Initial, Final: prop.Range.Final})
			n.SetField(ast.FieldClassRef, expr)
			n.SetField(ast.FieldProperty, prop)
			expr = n
		case p.at(tokLBracket):
			p.advance()
			if p.at(tokRBracket) {
				closing := p.advance()
				n := ast.NewNode(ast.KindArrayPush, ast.Range{Initial: expr.Range.Initial, Final: closing.r.Final})
				n.SetField(ast.FieldObject, expr)
				expr = n
				continue
			}
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			closing, err := p.expect(tokRBracket, "']'")
			if err != nil {
				return nil, err
			}
			n := ast.NewNode(ast.KindArrayAccess, ast.Range{Initial: expr.Range.Initial, Final: closing.r.Final})
			n.SetField(ast.FieldObject, expr)
			n.SetField(ast.FieldProperty, index)
			expr = n
		case p.at(tokLParen):
			args, err := p.parseArgumentList()
			if err != nil {
				return nil, err
			}
			n := ast.NewNode(ast.KindCall, ast.Range{Initial: expr.Range.Initial, Final: args.end})
			n.SetField(ast.FieldCallee, expr)
			n.SetList(ast.ListArguments, args.nodes)
			expr = n
		default:
			return expr, nil
		}
	}
}

type argList struct {
	nodes []*ast.Node
	end   int
}

func (p *parser) parseArgumentList() (argList, *parseError) {
	if _, perr := p.expect(tokLParen, "'('"); perr != nil {
		return argList{}, perr
	}
	var args []*ast.Node
	for !p.at(tokRParen) {
		a, perr := p.parseExpr()
		if perr != nil {
			return argList{}, perr
		}
		args = append(args, a)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	closing, perr := p.expect(tokRParen, "')'")
	if perr != nil {
		return argList{}, perr
	}
	return argList{nodes: args, end: closing.r.Final}, nil
}

func (p *parser) parsePrimary() (*ast.Node, *parseError) {
	switch {
	case p.at(tokVariable):
		t := p.advance()
		n := ast.NewNode(ast.KindVariable, t.r)
		n.Text = t.text
		return n, nil
	case p.at(tokInt) || p.at(tokFloat) || p.at(tokString):
		t := p.advance()
		n := ast.NewNode(ast.KindLiteral, t.r)
		n.Text = t.text
		return n, nil
	case p.atKeyword("true") || p.atKeyword("false") || p.atKeyword("null"):
		t := p.advance()
		n := ast.NewNode(ast.KindLiteral, t.r)
		n.Text = t.text
		return n, nil
	case p.atKeyword("this"):
		t := p.advance()
		return ast.NewNode(ast.KindThis, t.r), nil
	case p.atKeyword("parent"):
		t := p.advance()
		return ast.NewNode(ast.KindParent, t.r), nil
	case p.atKeyword("self"):
		t := p.advance()
		return ast.NewNode(ast.KindSelf, t.r), nil
	case p.atKeyword("static"):
		t := p.advance()
		return ast.NewNode(ast.KindStatic, t.r), nil
	case p.at(tokLParen):
		start := p.advance()
		inner, perr := p.parseExpr()
		if perr != nil {
			return nil, perr
		}
		closing, perr := p.expect(tokRParen, "')'")
		if perr != nil {
			return nil, perr
		}
		n := ast.NewNode(ast.KindParenthesized, ast.Range{Initial: start.r.Initial, Final: closing.r.Final})
		n.SetField(ast.FieldInner, inner)
		return n, nil
	case p.atKeyword("new"):
		return p.parseNew()
	case p.atKeyword("isset") || p.atKeyword("unset"):
		return p.parseIssetUnset()
	case p.atKeyword("exit"):
		return p.parseExit()
	case p.atKeyword("async"):
		return p.parseAsyncBlock()
	case p.atKeyword("function"):
		return p.parseAnonymousFunction()
	case p.atKeyword("vec"):
		return p.parseVecLike(ast.KindVec)
	case p.atKeyword("dict"):
		return p.parseDict()
	case p.atKeyword("tuple"):
		return p.parseVecLike(ast.KindTuple)
	default:
		if p.at(tokIdent) {
			return p.parseNameOrArrow()
		}
		return nil, p.fail("expected an expression, found %q", p.cur().text)
	}
}

func (p *parser) parseNameOrArrow() (*ast.Node, *parseError) {
	name, perr := p.qualifiedNameNode()
	if perr != nil {
		return nil, perr
	}
	if p.at(tokLParen) {
		args, perr := p.parseArgumentList()
		if perr != nil {
			return nil, perr
		}
		callee := ast.NewNode(ast.KindNamedType, name.Range)
		callee.Text = name.Text
		n := ast.NewNode(ast.KindCall, ast.Range{Initial: name.Range.Initial, Final: args.end})
		n.SetField(ast.FieldCallee, callee)
		n.SetList(ast.ListArguments, args.nodes)
		return n, nil
	}
	// A bare name used as a value is a class/interface/enum reference
	// (e.g. as the left operand of "::").
	n := ast.NewNode(ast.KindNamedType, name.Range)
	n.Text = name.Text
	return n, nil
}

func (p *parser) parseNew() (*ast.Node, *parseError) {
	start := p.advance() // new
	classRef, perr := p.qualifiedNameNode()
	if perr != nil {
		return nil, perr
	}
	refNode := ast.NewNode(ast.KindNamedType, classRef.Range)
	refNode.Text = classRef.Text
	args, perr := p.parseArgumentList()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindNew, ast.Range{Initial: start.r.Initial, Final: args.end})
	n.SetField(ast.FieldClassRef, refNode)
	n.SetList(ast.ListArguments, args.nodes)
	return n, nil
}

func (p *parser) parseIssetUnset() (*ast.Node, *parseError) {
	kw := p.advance()
	kind := ast.KindIsset
	if kw.text == "unset" {
		kind = ast.KindUnset
	}
	args, perr := p.parseArgumentList()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(kind, ast.Range{Initial: kw.r.Initial, Final: args.end})
	n.SetList(ast.ListArguments, args.nodes)
	return n, nil
}

func (p *parser) parseExit() (*ast.Node, *parseError) {
	start := p.advance() // exit
	var val *ast.Node
	end := start.r.Final
	if p.at(tokLParen) {
		p.advance()
		if !p.at(tokRParen) {
			var perr *parseError
			val, perr = p.parseExpr()
			if perr != nil {
				return nil, perr
			}
		}
		closing, perr := p.expect(tokRParen, "')'")
		if perr != nil {
			return nil, perr
		}
		end = closing.r.Final
	}
	n := ast.NewNode(ast.KindExit, ast.Range{Initial: start.r.Initial, Final: end})
	n.SetField(ast.FieldValue, val)
	return n, nil
}

func (p *parser) parseAsyncBlock() (*ast.Node, *parseError) {
	start := p.advance() // async
	body, perr := p.parseBlock()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindAsyncBlock, ast.Range{Initial: start.r.Initial, Final: body.Range.Final})
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseAnonymousFunction() (*ast.Node, *parseError) {
	start := p.advance() // function
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
	n := ast.NewNode(ast.KindAnonymousFunction, ast.Range{Initial: start.r.Initial, Final: body.Range.Final})
	n.SetList(ast.ListParameters, params)
	n.SetField(ast.FieldReturnType, retType)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseVecLike(kind ast.Kind) (*ast.Node, *parseError) {
	start := p.advance() // vec | tuple
	if _, perr := p.expect(tokLBracket, "'['"); perr != nil {
		return nil, perr
	}
	var elements []*ast.Node
	for !p.at(tokRBracket) {
		e, perr := p.parseExpr()
		if perr != nil {
			return nil, perr
		}
		elements = append(elements, e)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	closing, perr := p.expect(tokRBracket, "']'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(kind, ast.Range{Initial: start.r.Initial, Final: closing.r.Final})
	n.SetList(ast.ListElements, elements)
	return n, nil
}

func (p *parser) parseDict() (*ast.Node, *parseError) {
	start := p.advance() // dict
	if _, perr := p.expect(tokLBracket, "'['"); perr != nil {
		return nil, perr
	}
	var elements []*ast.Node
	for !p.at(tokRBracket) {
		key, perr := p.parseExpr()
		if perr != nil {
			return nil, perr
		}
		if _, perr = p.expect(tokColon, "':'"); perr != nil {
			return nil, perr
		}
		val, perr := p.parseExpr()
		if perr != nil {
			return nil, perr
		}
		pair := ast.NewNode(ast.KindAssign, ast.Range{Initial: key.Range.Initial, Final: val.Range.Final})
		pair.Text = ":"
		pair.SetField(ast.FieldTarget, key)
		pair.SetField(ast.FieldValue, val)
		elements = append(elements, pair)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	closing, perr := p.expect(tokRBracket, "']'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindDict, ast.Range{Initial: start.r.Initial, Final: closing.r.Final})
	n.SetList(ast.ListElements, elements)
	return n, nil
}
