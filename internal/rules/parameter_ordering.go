package rules

import (
	"fmt"
	"strings"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// ParameterOrdering enforces the four shape constraints on a single
// parameter list, grounded on the original analyzer's
// analyzer/visitor/required_parameter_after_optional.rs,
// parameters_after_variadic.rs, default_for_variadic.rs, and
// duplicate_parameter.rs, merged into one pass over the list.
type ParameterOrdering struct{}

func (ParameterOrdering) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	if node.Kind != ast.KindFunction && node.Kind != ast.KindMethod && node.Kind != ast.KindAnonymousFunction {
		return nil
	}
	params := node.List(ast.ListParameters)
	if len(params) == 0 {
		return nil
	}

	var issues []issue.Issue
	seenOptional := false
	seenVariadic := false
	names := map[string]*ast.Node{}

	for _, p := range params {
		pname := p.Field(ast.FieldName)

		if seenVariadic {
			issues = append(issues, issue.New("NoMoreParametersAfterVariadic", issue.Error,
				"no parameter may follow a variadic parameter", origin, p.Range))
		}
		if p.Flag { // variadic
			if p.Flag2 { // has default
				issues = append(issues, issue.New("VariadicParameterCannotBeOptional", issue.Error,
					"a variadic parameter cannot carry a default value", origin, p.Range))
			}
			seenVariadic = true
		} else if p.Flag2 {
			seenOptional = true
		} else if seenOptional {
			issues = append(issues, issue.New("RequiredParameterAfterOptional", issue.Error,
				"a required parameter cannot follow an optional parameter", origin, p.Range))
		}

		if pname != nil && pname.Text != "" {
			key := strings.ToLower(pname.Text)
			if prior, dup := names[key]; dup {
				issues = append(issues, issue.New("NoDuplicateParameter", issue.Error,
					fmt.Sprintf("parameter %q is already declared", pname.Text), origin, pname.Range).
					WithNote("previous declaration here", origin, prior.Range))
			} else {
				names[key] = pname
			}
		}
	}
	return issues
}
