// Package defs accumulates every declared name across a Forest into a
// single queryable store and resolves namespace/use/reserved-name and
// duplicate-definition diagnostics over it, grounded on the original
// analyzer's analyzer/visitor/definition_collector.rs and
// analyzer/code_info/definition_reference_collector.rs +
// definition_reference_storage.rs.
package defs

import "github.com/ara-lang/forest/internal/ast"

// Kind classifies a Definition the way spec §3's Definition Reference
// does; distinct from ast.Kind, which tags syntax shapes rather than
// declared-name categories.
type Kind uint8

const (
	KindNamespace Kind = iota
	KindUseType
	KindUseFunction
	KindUseConstant
	KindConstant
	KindFunction
	KindTypeAlias
	KindInterface
	KindClass
	KindUnitEnum
	KindStringBackedEnum
	KindIntBackedEnum
)

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindUseType:
		return "use (type)"
	case KindUseFunction:
		return "use (function)"
	case KindUseConstant:
		return "use (constant)"
	case KindConstant:
		return "constant"
	case KindFunction:
		return "function"
	case KindTypeAlias:
		return "type alias"
	case KindInterface:
		return "interface"
	case KindClass:
		return "class"
	case KindUnitEnum, KindStringBackedEnum, KindIntBackedEnum:
		return "enum"
	default:
		return "definition"
	}
}

// isTypeLike reports whether k names a type the reserved-name check
// applies to (classes, interfaces, enums, type aliases — not
// namespaces, functions, constants, or use imports of those).
func (k Kind) isTypeLike() bool {
	switch k {
	case KindTypeAlias, KindInterface, KindClass, KindUnitEnum, KindStringBackedEnum, KindIntBackedEnum:
		return true
	default:
		return false
	}
}

// Definition is one declared name, grounded on spec §3's Definition
// Reference. Node retains the declaring syntax node so the resolver can
// read use-declaration-specific fields (alias, imported namespace)
// without a second tree walk.
type Definition struct {
	UnqualifiedName string
	QualifiedName   string
	Kind            Kind
	Source          string
	Range           ast.Range
	Node            *ast.Node
}
