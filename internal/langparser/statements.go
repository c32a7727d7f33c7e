package langparser

import "github.com/ara-lang/forest/internal/ast"

func (p *parser) parseBlock() (*ast.Node, *parseError) {
	start, perr := p.expect(tokLBrace, "'{'")
	if perr != nil {
		return nil, perr
	}
	var stmts []*ast.Node
	for !p.at(tokRBrace) {
		s, perr := p.parseStatement()
		if perr != nil {
			return nil, perr
		}
		stmts = append(stmts, s)
	}
	closing, perr := p.expect(tokRBrace, "'}'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindBlock, ast.Range{Initial: start.r.Initial, Final: closing.r.Final})
	n.SetList(ast.ListStatements, stmts)
	return n, nil
}

// parseStandaloneBlock parses a bare "{ ... }" appearing where a
// statement is expected but not attached to any control-flow keyword.
func (p *parser) parseStandaloneBlock() (*ast.Node, *parseError) {
	block, perr := p.parseBlock()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindStandaloneBlock, block.Range)
	n.SetList(ast.ListStatements, block.List(ast.ListStatements))
	return n, nil
}

func (p *parser) parseStatement() (*ast.Node, *parseError) {
	switch {
	case p.at(tokLBrace):
		return p.parseStandaloneBlock()
	case p.atKeyword("if"):
		return p.parseIf()
	case p.atKeyword("while"):
		return p.parseWhile()
	case p.atKeyword("do"):
		return p.parseDoWhile()
	case p.atKeyword("for"):
		return p.parseFor()
	case p.atKeyword("foreach"):
		return p.parseForeach()
	case p.atKeyword("try"):
		return p.parseTry()
	case p.atKeyword("return"):
		return p.parseReturn()
	case p.atKeyword("throw"):
		return p.parseThrow()
	case p.atKeyword("break"):
		return p.parseBreakContinue(ast.KindBreak)
	case p.atKeyword("continue"):
		return p.parseBreakContinue(ast.KindContinue)
	case p.atKeyword("using"):
		return p.parseUsing()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *parser) parseIf() (*ast.Node, *parseError) {
	start := p.advance() // if
	if _, perr := p.expect(tokLParen, "'('"); perr != nil {
		return nil, perr
	}
	cond, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokRParen, "')'"); perr != nil {
		return nil, perr
	}
	then, perr := p.parseControlledStatement()
	if perr != nil {
		return nil, perr
	}
	end := then.Range.Final
	var alt *ast.Node
	if p.atKeyword("elseif") {
		alt, perr = p.parseElseif()
		if perr != nil {
			return nil, perr
		}
		end = alt.Range.Final
	} else if p.atKeyword("else") {
		p.advance()
		alt, perr = p.parseControlledStatement()
		if perr != nil {
			return nil, perr
		}
		end = alt.Range.Final
	}
	n := ast.NewNode(ast.KindIf, ast.Range{Initial: start.r.Initial, Final: end})
	n.SetField(ast.FieldCondition, cond)
	n.SetField(ast.FieldConsequence, then)
	n.SetField(ast.FieldAlternative, alt)
	return n, nil
}

// parseElseif treats "elseif (...) { }" as sugar for a nested if,
// matching how the ancestry-based rules (return/unsafe-finally) expect
// to see an If node under FieldAlternative.
func (p *parser) parseElseif() (*ast.Node, *parseError) {
	return p.parseIf()
}

// parseControlledStatement parses the body of if/while/for/foreach: a
// block, a standalone block, or (rarely) a single statement.
func (p *parser) parseControlledStatement() (*ast.Node, *parseError) {
	if p.at(tokLBrace) {
		return p.parseBlock()
	}
	return p.parseStatement()
}

func (p *parser) parseWhile() (*ast.Node, *parseError) {
	start := p.advance() // while
	if _, perr := p.expect(tokLParen, "'('"); perr != nil {
		return nil, perr
	}
	cond, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokRParen, "')'"); perr != nil {
		return nil, perr
	}
	body, perr := p.parseControlledStatement()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindWhile, ast.Range{Initial: start.r.Initial, Final: body.Range.Final})
	n.SetField(ast.FieldCondition, cond)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseDoWhile() (*ast.Node, *parseError) {
	start := p.advance() // do
	body, perr := p.parseControlledStatement()
	if perr != nil {
		return nil, perr
	}
	if perr = p.expectKeyword("while"); perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokLParen, "'('"); perr != nil {
		return nil, perr
	}
	cond, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokRParen, "')'"); perr != nil {
		return nil, perr
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindDoWhile, ast.Range{Initial: start.r.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldCondition, cond)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseFor() (*ast.Node, *parseError) {
	start := p.advance() // for
	if _, perr := p.expect(tokLParen, "'('"); perr != nil {
		return nil, perr
	}
	init, perr := p.parseExprListUntil(tokSemi)
	if perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokSemi, "';'"); perr != nil {
		return nil, perr
	}
	var cond *ast.Node
	if !p.at(tokSemi) {
		cond, perr = p.parseExpr()
		if perr != nil {
			return nil, perr
		}
	}
	if _, perr = p.expect(tokSemi, "';'"); perr != nil {
		return nil, perr
	}
	update, perr := p.parseExprListUntil(tokRParen)
	if perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokRParen, "')'"); perr != nil {
		return nil, perr
	}
	body, perr := p.parseControlledStatement()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindFor, ast.Range{Initial: start.r.Initial, Final: body.Range.Final})
	n.SetList(ast.ListForInit, init)
	n.SetField(ast.FieldCondition, cond)
	n.SetList(ast.ListForUpdate, update)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseExprListUntil(stop tokenKind) ([]*ast.Node, *parseError) {
	var exprs []*ast.Node
	for !p.at(stop) {
		e, perr := p.parseExpr()
		if perr != nil {
			return nil, perr
		}
		exprs = append(exprs, e)
		if p.at(tokComma) {
			p.advance()
			continue
		}
		break
	}
	return exprs, nil
}

func (p *parser) parseForeach() (*ast.Node, *parseError) {
	start := p.advance() // foreach
	if _, perr := p.expect(tokLParen, "'('"); perr != nil {
		return nil, perr
	}
	collection, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	if perr = p.expectKeyword("as"); perr != nil {
		return nil, perr
	}
	first, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	var key, value *ast.Node
	if p.at(tokDoubleColon) {
		// "k::v" style key-value destructure marker, in place of "=>".
		p.advance()
		key = first
		value, perr = p.parseExpr()
		if perr != nil {
			return nil, perr
		}
	} else {
		value = first
	}
	if _, perr = p.expect(tokRParen, "')'"); perr != nil {
		return nil, perr
	}
	body, perr := p.parseControlledStatement()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindForeach, ast.Range{Initial: start.r.Initial, Final: body.Range.Final})
	n.SetField(ast.FieldCollection, collection)
	n.SetField(ast.FieldForeachKey, key)
	n.SetField(ast.FieldForeachValue, value)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseTry() (*ast.Node, *parseError) {
	start := p.advance() // try
	tryBlock, perr := p.parseBlock()
	if perr != nil {
		return nil, perr
	}
	var catches []*ast.Node
	for p.atKeyword("catch") {
		c, perr := p.parseCatch()
		if perr != nil {
			return nil, perr
		}
		catches = append(catches, c)
	}
	var finallyNode *ast.Node
	end := tryBlock.Range.Final
	if len(catches) > 0 {
		end = catches[len(catches)-1].Range.Final
	}
	if p.atKeyword("finally") {
		finallyNode, perr = p.parseFinally()
		if perr != nil {
			return nil, perr
		}
		end = finallyNode.Range.Final
	}
	n := ast.NewNode(ast.KindTry, ast.Range{Initial: start.r.Initial, Final: end})
	n.SetField(ast.FieldTry, tryBlock)
	n.SetList(ast.ListCatches, catches)
	n.SetField(ast.FieldFinally, finallyNode)
	return n, nil
}

func (p *parser) parseCatch() (*ast.Node, *parseError) {
	start := p.advance() // catch
	if _, perr := p.expect(tokLParen, "'('"); perr != nil {
		return nil, perr
	}
	ty, perr := p.parseType()
	if perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokVariable, "an exception variable"); perr != nil {
		return nil, perr
	}
	if _, perr = p.expect(tokRParen, "')'"); perr != nil {
		return nil, perr
	}
	body, perr := p.parseBlock()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindCatch, ast.Range{Initial: start.r.Initial, Final: body.Range.Final})
	n.SetField(ast.FieldType, ty)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseFinally() (*ast.Node, *parseError) {
	start := p.advance() // finally
	body, perr := p.parseBlock()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindFinally, ast.Range{Initial: start.r.Initial, Final: body.Range.Final})
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseReturn() (*ast.Node, *parseError) {
	start := p.advance() // return
	var val *ast.Node
	if !p.at(tokSemi) {
		var perr *parseError
		val, perr = p.parseExpr()
		if perr != nil {
			return nil, perr
		}
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindReturn, ast.Range{Initial: start.r.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldValue, val)
	return n, nil
}

func (p *parser) parseThrow() (*ast.Node, *parseError) {
	start := p.advance() // throw
	val, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindThrow, ast.Range{Initial: start.r.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldValue, val)
	return n, nil
}

func (p *parser) parseBreakContinue(kind ast.Kind) (*ast.Node, *parseError) {
	start := p.advance()
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	return ast.NewNode(kind, ast.Range{Initial: start.r.Initial, Final: semi.r.Final}), nil
}

func (p *parser) parseUsing() (*ast.Node, *parseError) {
	start := p.advance() // using
	val, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	body, perr := p.parseBlock()
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindUsing, ast.Range{Initial: start.r.Initial, Final: body.Range.Final})
	n.SetField(ast.FieldValue, val)
	n.SetField(ast.FieldBody, body)
	return n, nil
}

func (p *parser) parseExpressionStatement() (*ast.Node, *parseError) {
	expr, perr := p.parseExpr()
	if perr != nil {
		return nil, perr
	}
	semi, perr := p.expect(tokSemi, "';'")
	if perr != nil {
		return nil, perr
	}
	n := ast.NewNode(ast.KindExpressionStatement, ast.Range{Initial: expr.Range.Initial, Final: semi.r.Final})
	n.SetField(ast.FieldValue, expr)
	return n, nil
}
