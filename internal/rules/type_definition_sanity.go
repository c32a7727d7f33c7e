package rules

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// TypeDefinitionSanity forbids bottom, standalone, and scalar types
// from appearing in positions where they make no sense, grounded on
// the original analyzer's analyzer/visitor/type_definition_analyzer.rs. KindBottomType
// ("never") is treated as standalone-like here even though it carries
// its own Kind tag, matching the glossary's description of "never" as
// both a bottom type and a standalone type.
type TypeDefinitionSanity struct{}

func isStandaloneLike(n *ast.Node) bool {
	switch n.Kind {
	case ast.KindStandaloneType, ast.KindBottomType, ast.KindNullableType:
		return true
	default:
		return false
	}
}

func (TypeDefinitionSanity) Visit(origin string, node *ast.Node, _ visitor.Ancestry) []issue.Issue {
	var issues []issue.Issue

	switch node.Kind {
	case ast.KindTupleTypeElements:
		for _, el := range node.List(ast.ListElements) {
			if el.Kind == ast.KindBottomType {
				issues = append(issues, issue.New("BottomTypeNotAllowedHere", issue.Error,
					"a bottom type cannot appear as a tuple element", origin, el.Range))
			}
		}

	case ast.KindParameter:
		if t := node.Field(ast.FieldType); t != nil && t.Kind == ast.KindBottomType {
			issues = append(issues, issue.New("BottomTypeNotAllowedHere", issue.Error,
				"a bottom type cannot be used as a parameter type", origin, t.Range))
		}

	case ast.KindProperty:
		if t := node.Field(ast.FieldType); t != nil && t.Kind == ast.KindBottomType {
			issues = append(issues, issue.New("BottomTypeNotAllowedHere", issue.Error,
				"a bottom type cannot be used as a property type", origin, t.Range))
		}

	case ast.KindNullableType:
		if inner := node.Field(ast.FieldType); inner != nil && isStandaloneLike(inner) {
			issues = append(issues, issue.New("StandaloneTypeNotAllowedHere", issue.Error,
				"a standalone type cannot be the operand of ?", origin, inner.Range))
		}

	case ast.KindUnionType:
		for _, el := range node.List(ast.ListElements) {
			if isStandaloneLike(el) {
				issues = append(issues, issue.New("StandaloneTypeNotAllowedHere", issue.Error,
					"a standalone type cannot appear inside a union", origin, el.Range))
			}
		}

	case ast.KindIntersectionType:
		for _, el := range node.List(ast.ListElements) {
			if isStandaloneLike(el) {
				issues = append(issues, issue.New("StandaloneTypeNotAllowedHere", issue.Error,
					"a standalone type cannot appear inside an intersection", origin, el.Range))
			}
			if el.Kind == ast.KindScalarType {
				issues = append(issues, issue.New("ScalarTypeNotAllowedInIntersection", issue.Error,
					"a scalar type cannot appear inside an intersection", origin, el.Range))
			}
		}
	}

	return issues
}
