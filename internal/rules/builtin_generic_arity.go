package rules

import (
	"fmt"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

var builtinGenericArity = map[string]int{
	"vec": 1, "dict": 2, "iterable": 2, "class": 1, "interface": 1,
}

// BuiltinGenericArity checks a built-in generic type reference against
// its fixed arity, grounded on the original analyzer's
// analyzer/visitor/builtin_types_generic_arguments_count.rs.
type BuiltinGenericArity struct{}

func (BuiltinGenericArity) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindGenericType {
		return nil
	}
	want, ok := builtinGenericArity[node.Text]
	if !ok {
		return nil
	}
	args := node.List(ast.ListGenericArgs)
	if len(args) == want {
		return nil
	}

	var issues []issue.Issue
	if len(args) < want {
		issues = append(issues, issue.New("InvalidGenericArgumentsCount", issue.Error,
			fmt.Sprintf("%s expects %d type argument(s), got %d", node.Text, want, len(args)), origin, node.Range))
		return issues
	}
	for _, excess := range args[want:] {
		issues = append(issues, issue.New("InvalidGenericArgumentsCount", issue.Error,
			fmt.Sprintf("%s expects %d type argument(s), got %d", node.Text, want, len(args)), origin, excess.Range))
	}
	return issues
}
