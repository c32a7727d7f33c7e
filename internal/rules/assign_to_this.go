package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// AssignToThis flags an assignment whose target is $this, grounded on
// the original analyzer's analyzer/visitor/assign_to_this.rs.
type AssignToThis struct{}

func (AssignToThis) Visit(origin string, node *ast.Node, ancestry visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindAssign {
		return nil
	}
	target := node.Field(ast.FieldTarget)
	if target == nil || target.Kind != ast.KindThis {
		return nil
	}

	issue0 := issue.New("CannotAssignToThis", issue.Error, "$this cannot be assigned to", origin, node.Range)
	if header, ok := ancestry.Nearest(func(n *ast.Node) bool {
		return n.Kind == ast.KindFunction || n.Kind == ast.KindMethod
	}); ok {
		issue0 = issue0.WithNote("inside this declaration", origin, header.Range)
	}
	return []issue.Issue{issue0}
}
