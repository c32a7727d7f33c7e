package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// DiscardOperation flags expression statements whose value is silently
// thrown away when the expression kind suggests that was a mistake,
// grounded on the original analyzer's
// analyzer/visitor/discard_operation.rs.
type DiscardOperation struct{}

func (DiscardOperation) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindExpressionStatement {
		return nil
	}
	value := node.Field(ast.FieldValue)
	if value == nil {
		return nil
	}
	return discardIssues(origin, value)
}

func discardIssues(origin string, expr *ast.Node) []issue.Issue {
	switch expr.Kind {
	case ast.KindParenthesized:
		if inner := expr.Field(ast.FieldInner); inner != nil {
			return discardIssues(origin, inner)
		}
		return nil

	case ast.KindCoalesce:
		var issues []issue.Issue
		if cond := expr.Field(ast.FieldCondition); cond != nil {
			issues = append(issues, discardIssues(origin, cond)...)
		}
		if alt := expr.Field(ast.FieldAlternative); alt != nil {
			issues = append(issues, discardIssues(origin, alt)...)
		}
		return issues

	case ast.KindLiteral, ast.KindBinary, ast.KindUnary, ast.KindInstanceof, ast.KindIs, ast.KindAs,
		ast.KindRange:
		return []issue.Issue{issue.New("DiscardedExpressionValue", issue.Warning,
			"result of this operation is discarded", origin, expr.Range)}

	case ast.KindClassConstFetch, ast.KindStaticPropertyFetch, ast.KindStaticMethodClosureCreation,
		ast.KindMethodClosureCreation, ast.KindPropertyFetch, ast.KindNullsafePropertyFetch,
		ast.KindClone, ast.KindStringConcat:
		return []issue.Issue{issue.New("DiscardedExpressionValue", issue.Warning,
			"this expression has no side effect and its value is discarded", origin, expr.Range)}

	case ast.KindNew:
		return []issue.Issue{issue.New("DiscardedClassInitialization", issue.Warning,
			"a newly constructed object is discarded immediately", origin, expr.Range).
			WithNote("constructed here", origin, expr.Range)}

	case ast.KindAsyncBlock:
		return []issue.Issue{issue.New("UnconsumedAsyncOperation", issue.Error,
			"the awaitable handle produced by this async block must be awaited or otherwise consumed",
			origin, expr.Range)}

	case ast.KindAnonymousFunction, ast.KindArrowFunction:
		return []issue.Issue{issue.New("DiscardedExpressionValue", issue.Warning,
			"this function expression is created and immediately discarded", origin, expr.Range)}

	default:
		return nil
	}
}
