package rules

import (
	"fmt"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

// NamingConvention checks every declared name against the casing its
// kind prescribes, grounded on the original analyzer's
// analyzer/visitor/naming_convention.rs. Every violation is a note carrying a
// mechanically-converted suggestion.
type NamingConvention struct{}

func (NamingConvention) Visit(origin string, node *ast.Node, ancestry visitor.Ancestry) []issue.Issue {
	var name *ast.Node
	var want string
	var label string

	switch node.Kind {
	case ast.KindFunction:
		name, want, label = node.Field(ast.FieldName), "snake_case", "function"
	case ast.KindParameter:
		name, want, label = node.Field(ast.FieldName), "snake_case", "parameter"
	case ast.KindClass, ast.KindInterface, ast.KindUnitEnum, ast.KindStringBackedEnum,
		ast.KindIntBackedEnum, ast.KindTypeAlias:
		name, want, label = node.Field(ast.FieldName), "PascalCase", string(node.Kind)
	case ast.KindProperty, ast.KindMethod:
		name, want, label = node.Field(ast.FieldName), "camelCase", string(node.Kind)
	case ast.KindConstantItem:
		name, want, label = node.Field(ast.FieldName), "CONSTANT_CASE", "constant"
	default:
		return nil
	}
	if name == nil || name.Text == "" {
		return nil
	}

	var ok bool
	var suggestion string
	switch want {
	case "snake_case":
		ok, suggestion = isSnakeCase(name.Text), toSnakeCase(name.Text)
	case "PascalCase":
		ok, suggestion = isPascalCase(name.Text), toPascalCase(name.Text)
	case "camelCase":
		ok, suggestion = isCamelCase(name.Text), toCamelCase(name.Text)
	case "CONSTANT_CASE":
		ok, suggestion = isConstantCase(name.Text), toConstantCase(name.Text)
	}
	if ok || suggestion == name.Text {
		return nil
	}

	msg := fmt.Sprintf("%s name %q should be %s, e.g. %q", label, name.Text, want, suggestion)
	return []issue.Issue{issue.New("NamingConvention", issue.Note, msg, origin, name.Range)}
}
