package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// AssignToUnwriteable restricts an assignment's left-hand side to the
// shapes that can actually be written to, grounded on the original
// analyzer's analyzer/visitor/assign_to_unwriteable_expression.rs.
type AssignToUnwriteable struct{}

func (AssignToUnwriteable) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindAssign {
		return nil
	}
	target := node.Field(ast.FieldTarget)
	if target == nil || isWriteableTarget(target) {
		return nil
	}
	return []issue.Issue{issue.New("CannotAssignToUnwriteableExpression", issue.Error,
		"this expression cannot appear on the left-hand side of an assignment", origin, target.Range)}
}

func isWriteableTarget(target *ast.Node) bool {
	switch target.Kind {
	case ast.KindVariable, ast.KindPropertyFetch, ast.KindStaticPropertyFetch,
		ast.KindArrayAccess, ast.KindArrayPush:
		return true
	case ast.KindTuple:
		for _, el := range target.List(ast.ListElements) {
			if !isWriteableTarget(el) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
