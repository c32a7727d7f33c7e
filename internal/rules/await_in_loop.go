package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// AwaitInLoop flags an await expression reachable from an enclosing
// loop without crossing an inner function literal, throw, or return,
// grounded on the original analyzer's
// analyzer/visitor/await_in_loop.rs.
type AwaitInLoop struct{}

func (AwaitInLoop) Visit(origin string, node *ast.Node, ancestry visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindAwait {
		return nil
	}
	for i := len(ancestry) - 1; i >= 0; i-- {
		switch ancestry[i].Kind {
		case ast.KindAnonymousFunction, ast.KindArrowFunction, ast.KindThrow, ast.KindReturn:
			return nil
		case ast.KindWhile, ast.KindDoWhile, ast.KindFor, ast.KindForeach:
			return []issue.Issue{issue.New("AwaitInLoop", issue.Note,
				"awaiting inside a loop blocks each iteration; consider collecting the operations and awaiting them together",
				origin, node.Range)}
		}
	}
	return nil
}
