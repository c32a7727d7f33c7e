package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// UnreachableCode flags every statement following one that
// unconditionally terminates control flow within the same block,
// grounded on the original analyzer's
// analyzer/visitor/unreachable_code.rs.
type UnreachableCode struct{}

func (UnreachableCode) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindBlock && node.Kind != ast.KindStandaloneBlock {
		return nil
	}
	stmts := node.List(ast.ListStatements)
	for i, stmt := range stmts {
		if !terminatesControlFlow(stmt) {
			continue
		}
		if i == len(stmts)-1 {
			return nil
		}
		return []issue.Issue{issue.New("UnreachableCode", issue.Error,
			"unreachable code", origin, ast.Range{Initial: stmts[i+1].Range.Initial, Final: stmts[len(stmts)-1].Range.Final})}
	}
	return nil
}

func terminatesControlFlow(stmt *ast.Node) bool {
	switch stmt.Kind {
	case ast.KindBreak, ast.KindContinue:
		return true
	case ast.KindReturn:
		return true
	case ast.KindExpressionStatement:
		value := stmt.Field(ast.FieldValue)
		if value == nil {
			return false
		}
		return value.Kind == ast.KindExit
	case ast.KindThrow:
		return true
	case ast.KindParenthesized:
		if inner := stmt.Field(ast.FieldInner); inner != nil {
			return terminatesControlFlow(inner)
		}
		return false
	case ast.KindBlock, ast.KindStandaloneBlock:
		stmts := stmt.List(ast.ListStatements)
		return len(stmts) > 0 && terminatesControlFlow(stmts[len(stmts)-1])
	case ast.KindUsing:
		body := stmt.Field(ast.FieldBody)
		if body == nil {
			return false
		}
		return terminatesControlFlow(body)
	default:
		return false
	}
}
