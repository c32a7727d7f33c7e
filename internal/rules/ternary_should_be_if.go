package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// TernaryShouldBeIfStatement flags a ternary used purely for its
// control-flow effect, as a top-level expression statement, grounded
// on the original analyzer's
// analyzer/visitor/ternary_operation_should_be_an_if_statement.rs.
type TernaryShouldBeIfStatement struct{}

func (TernaryShouldBeIfStatement) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindExpressionStatement {
		return nil
	}
	value := node.Field(ast.FieldValue)
	if value == nil {
		return nil
	}
	if value.Kind != ast.KindTernary && value.Kind != ast.KindShortTernary {
		return nil
	}
	return []issue.Issue{issue.New("TernaryShouldBeIfStatement", issue.Error,
		"a ternary used only for its side effect should be an if statement", origin, value.Range)}
}
