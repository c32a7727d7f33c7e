// Package rules holds the independent AST checks that make up the
// bulk of the lint catalog, each implementing internal/visitor.Visitor.
// Every rule is grounded on a named check in the original analyzer's
// analyzer/visitor/ module, adapted to walk internal/ast.Node trees.
package rules

import "strings"

func isSnakeCase(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func isPascalCase(s string) bool {
	if s == "" || s[0] < 'A' || s[0] > 'Z' {
		return false
	}
	for _, r := range s {
		if r == '_' {
			return false
		}
	}
	return true
}

func isCamelCase(s string) bool {
	if s == "" || !(s[0] >= 'a' && s[0] <= 'z') {
		return false
	}
	for _, r := range s {
		if r == '_' {
			return false
		}
	}
	return true
}

func isConstantCase(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r == '_', r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return strings.ToUpper(s) == s
}

// toSnakeCase mechanically converts camelCase/PascalCase to snake_case.
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// toPascalCase mechanically converts snake_case/camelCase to PascalCase.
func toPascalCase(s string) string {
	parts := strings.Split(s, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// toCamelCase mechanically converts snake_case/PascalCase to camelCase.
func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return pascal
	}
	return strings.ToLower(pascal[:1]) + pascal[1:]
}

// toConstantCase mechanically converts camelCase/PascalCase/snake_case
// to CONSTANT_CASE.
func toConstantCase(s string) string {
	return strings.ToUpper(toSnakeCase(s))
}

var reservedTypeNames = map[string]bool{
	"iterable": true, "void": true, "never": true, "float": true,
	"bool": true, "int": true, "string": true, "object": true,
	"mixed": true, "nonnull": true, "resource": true,
}

// IsReservedTypeName reports whether name's lowercase form is one of
// the fixed built-in names that may not be redefined or imported.
func IsReservedTypeName(name string) bool {
	return reservedTypeNames[strings.ToLower(name)]
}
