package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// StandaloneBlock flags a bare `{ ... }` statement not attached to any
// control-flow construct, grounded on the original analyzer's
// analyzer/visitor/standalone_block_statement.rs.
type StandaloneBlock struct{}

func (StandaloneBlock) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindStandaloneBlock {
		return nil
	}
	return []issue.Issue{issue.New("StandaloneBlock", issue.Error,
		"a bare block is not attached to any control-flow construct", origin, node.Range)}
}
