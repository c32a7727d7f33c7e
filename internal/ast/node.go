// Package ast defines the in-memory shape of a parsed Ara syntax tree.
//
// The node model follows the shape the external parser black box
// (internal/langparser) hands back: one generic node struct tagged with
// a Kind, carrying a small set of named/ordered child slots. This
// mirrors the way the teacher's tree-sitter layer represents every
// syntax shape through a single Node type distinguished by Kind() —
// convenient here because the rule catalog (internal/rules) only ever
// needs to ask "what kind is this, what are its named children, what
// byte range does it cover."
package ast

import (
	"bytes"
	"encoding/gob"
)

// Range is a half-open byte range [Initial, Final) into a Source's
// content.
type Range struct {
	Initial int
	Final   int
}

// Kind identifies the syntactic shape of a Node.
type Kind string

const (
	KindNamespace Kind = "namespace"

	KindUseDefault  Kind = "use_default"
	KindUseFunction Kind = "use_function"
	KindUseConstant Kind = "use_constant"

	KindFunction  Kind = "function"
	KindParameter Kind = "parameter"

	KindClass     Kind = "class"
	KindInterface Kind = "interface"

	KindUnitEnum         Kind = "unit_enum"
	KindStringBackedEnum Kind = "string_backed_enum"
	KindIntBackedEnum    Kind = "int_backed_enum"

	KindTypeAlias    Kind = "type_alias"
	KindConstant     Kind = "constant"
	KindConstantItem Kind = "constant_item"
	KindProperty     Kind = "property"
	KindMethod       Kind = "method"

	// Statements.
	KindBlock               Kind = "block"
	KindStandaloneBlock     Kind = "standalone_block"
	KindIf                  Kind = "if"
	KindWhile               Kind = "while"
	KindDoWhile             Kind = "do_while"
	KindFor                 Kind = "for"
	KindForeach             Kind = "foreach"
	KindTry                 Kind = "try"
	KindCatch               Kind = "catch"
	KindFinally             Kind = "finally"
	KindReturn              Kind = "return"
	KindThrow               Kind = "throw"
	KindBreak               Kind = "break"
	KindContinue            Kind = "continue"
	KindUsing               Kind = "using"
	KindExpressionStatement Kind = "expression_statement"

	// Expressions.
	KindVariable                    Kind = "variable"
	KindLiteral                     Kind = "literal"
	KindBinary                      Kind = "binary"
	KindUnary                       Kind = "unary"
	KindIncDec                      Kind = "inc_dec"
	KindAssign                      Kind = "assign"
	KindTernary                     Kind = "ternary"
	KindShortTernary                Kind = "short_ternary"
	KindCoalesce                    Kind = "coalesce"
	KindParenthesized               Kind = "parenthesized"
	KindCall                        Kind = "call"
	KindNew                         Kind = "new"
	KindClone                       Kind = "clone"
	KindPropertyFetch               Kind = "property_fetch"
	KindNullsafePropertyFetch       Kind = "nullsafe_property_fetch"
	KindStaticPropertyFetch         Kind = "static_property_fetch"
	KindClassConstFetch             Kind = "class_const_fetch"
	KindMethodClosureCreation       Kind = "method_closure_creation"
	KindStaticMethodClosureCreation Kind = "static_method_closure_creation"
	KindFunctionClosureCreation     Kind = "function_closure_creation"
	KindAnonymousFunction           Kind = "anonymous_function"
	KindArrowFunction               Kind = "arrow_function"
	KindAwait                       Kind = "await"
	KindAsyncBlock                  Kind = "async_block"
	KindArrayAccess                 Kind = "array_access"
	KindArrayPush                   Kind = "array_push"
	KindIsset                       Kind = "isset"
	KindUnset                       Kind = "unset"
	KindInstanceof                  Kind = "instanceof"
	KindIs                          Kind = "is"
	KindAs                          Kind = "as"
	KindThis                        Kind = "this"
	KindParent                      Kind = "parent"
	KindSelf                        Kind = "self"
	KindStatic                      Kind = "static"
	KindExit                        Kind = "exit"
	KindVec                         Kind = "vec"
	KindDict                        Kind = "dict"
	KindTuple                       Kind = "tuple"
	KindStringConcat                Kind = "string_concat"
	KindRange                       Kind = "range"
	KindMagicConstant               Kind = "magic_constant"
	KindYield                       Kind = "yield"

	// Types.
	// Identifier is a leaf name token; its own Range is what naming and
	// reserved-name diagnostics point at, distinct from the Range of the
	// declaration that owns it.
	KindIdentifier Kind = "identifier"

	KindNamedType         Kind = "named_type"
	KindNullableType      Kind = "nullable_type"
	KindUnionType         Kind = "union_type"
	KindIntersectionType  Kind = "intersection_type"
	KindGenericType       Kind = "generic_type"
	KindStandaloneType    Kind = "standalone_type"
	KindBottomType        Kind = "bottom_type"
	KindScalarType        Kind = "scalar_type"
	KindTupleTypeElements Kind = "tuple_type_elements"
)

// FieldKey names a single named child slot on a Node (e.g. a binary
// expression's "left" and "right" operands). Field keys are kind-
// specific; see the comment on each Kind constant's producing
// construction helper in internal/langparser for the fields it sets.
type FieldKey string

const (
	FieldName          FieldKey = "name"
	FieldAlias         FieldKey = "alias"
	FieldNamespace     FieldKey = "namespace"
	FieldType          FieldKey = "type"
	FieldReturnType    FieldKey = "return_type"
	FieldValue         FieldKey = "value"
	FieldDefault       FieldKey = "default"
	FieldCondition     FieldKey = "condition"
	FieldConsequence   FieldKey = "consequence"
	FieldAlternative   FieldKey = "alternative"
	FieldBody          FieldKey = "body"
	FieldInit          FieldKey = "init"
	FieldUpdate        FieldKey = "update"
	FieldLeft          FieldKey = "left"
	FieldRight         FieldKey = "right"
	FieldOperand       FieldKey = "operand"
	FieldTarget        FieldKey = "target"
	FieldCallee        FieldKey = "callee"
	FieldObject        FieldKey = "object"
	FieldProperty      FieldKey = "property"
	FieldClassRef      FieldKey = "class"
	FieldExtends       FieldKey = "extends"
	FieldTry           FieldKey = "try"
	FieldFinally       FieldKey = "finally"
	FieldExceptionVar  FieldKey = "exception_var"
	FieldInner         FieldKey = "inner"
	FieldForeachValue  FieldKey = "foreach_value"
	FieldForeachKey    FieldKey = "foreach_key"
	FieldCollection    FieldKey = "collection"
	FieldOperatorText  FieldKey = "operator" // informational; Node.Text already holds it
)

// ListKey names an ordered child slot that holds multiple nodes (e.g. a
// block's statements, a call's arguments).
type ListKey string

const (
	ListStatements  ListKey = "statements"
	ListParameters  ListKey = "parameters"
	ListArguments   ListKey = "arguments"
	ListCatches     ListKey = "catches"
	ListExtends     ListKey = "extends"
	ListImplements  ListKey = "implements"
	ListGenericArgs ListKey = "generic_args"
	ListElements    ListKey = "elements"
	ListMembers     ListKey = "members"
	ListCases       ListKey = "cases"
	ListForInit     ListKey = "for_init"
	ListForUpdate   ListKey = "for_update"
)

// Node is one syntax-tree node. Never mutated after construction.
type Node struct {
	Kind  Kind
	Range Range

	// Text carries an identifier, literal, or operator symbol payload,
	// depending on Kind (see internal/langparser for which kinds set it).
	Text string

	// Flag and Flag2 carry kind-specific booleans: e.g. for KindParameter,
	// Flag means "variadic" and Flag2 means "has default value"; for
	// KindUseDefault/Function/Constant, Flag distinguishes use-flavors is
	// not needed (Kind already encodes it). See doc comments at each call
	// site in internal/langparser.
	Flag  bool
	Flag2 bool

	fields map[FieldKey]*Node
	lists  map[ListKey][]*Node
}

// NewNode creates a Node of the given kind and range.
func NewNode(kind Kind, r Range) *Node {
	return &Node{Kind: kind, Range: r}
}

// SetField attaches a named single-child slot.
func (n *Node) SetField(key FieldKey, child *Node) *Node {
	if child == nil {
		return n
	}
	if n.fields == nil {
		n.fields = make(map[FieldKey]*Node)
	}
	n.fields[key] = child
	return n
}

// Field returns the named single-child slot, or nil if unset.
func (n *Node) Field(key FieldKey) *Node {
	if n == nil || n.fields == nil {
		return nil
	}
	return n.fields[key]
}

// SetList attaches an ordered multi-child slot.
func (n *Node) SetList(key ListKey, children []*Node) *Node {
	if n.lists == nil {
		n.lists = make(map[ListKey][]*Node)
	}
	n.lists[key] = children
	return n
}

// List returns the named ordered multi-child slot, or nil if unset.
func (n *Node) List(key ListKey) []*Node {
	if n == nil || n.lists == nil {
		return nil
	}
	return n.lists[key]
}

// Children returns every child of n in declaration order. The order is
// stable across calls and is what internal/visitor's pre-order walk
// recurses into.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}

	var out []*Node
	add := func(c *Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	addAll := func(cs []*Node) {
		for _, c := range cs {
			add(c)
		}
	}

	switch n.Kind {
	case KindNamespace:
		add(n.Field(FieldName))
	case KindUseDefault, KindUseFunction, KindUseConstant:
		add(n.Field(FieldAlias))
	case KindFunction:
		add(n.Field(FieldName))
		addAll(n.List(ListParameters))
		add(n.Field(FieldReturnType))
		add(n.Field(FieldBody))
	case KindParameter:
		add(n.Field(FieldName))
		add(n.Field(FieldType))
		add(n.Field(FieldDefault))
	case KindClass, KindInterface:
		add(n.Field(FieldName))
		addAll(n.List(ListExtends))
		addAll(n.List(ListImplements))
		addAll(n.List(ListMembers))
	case KindUnitEnum, KindStringBackedEnum, KindIntBackedEnum:
		add(n.Field(FieldName))
		addAll(n.List(ListImplements))
		addAll(n.List(ListCases))
		addAll(n.List(ListMembers))
	case KindTypeAlias:
		add(n.Field(FieldName))
		add(n.Field(FieldType))
	case KindConstant:
		addAll(n.List(ListMembers)) // constant items
	case KindConstantItem:
		add(n.Field(FieldName))
		add(n.Field(FieldType))
		add(n.Field(FieldValue))
	case KindProperty:
		add(n.Field(FieldName))
		add(n.Field(FieldType))
		add(n.Field(FieldDefault))
	case KindMethod:
		add(n.Field(FieldName))
		addAll(n.List(ListParameters))
		add(n.Field(FieldReturnType))
		add(n.Field(FieldBody))

	case KindBlock, KindStandaloneBlock:
		addAll(n.List(ListStatements))
	case KindIf:
		add(n.Field(FieldCondition))
		add(n.Field(FieldConsequence))
		add(n.Field(FieldAlternative))
	case KindWhile, KindDoWhile:
		add(n.Field(FieldCondition))
		add(n.Field(FieldBody))
	case KindFor:
		addAll(n.List(ListForInit))
		add(n.Field(FieldCondition))
		addAll(n.List(ListForUpdate))
		add(n.Field(FieldBody))
	case KindForeach:
		add(n.Field(FieldCollection))
		add(n.Field(FieldForeachKey))
		add(n.Field(FieldForeachValue))
		add(n.Field(FieldBody))
	case KindTry:
		add(n.Field(FieldTry))
		addAll(n.List(ListCatches))
		add(n.Field(FieldFinally))
	case KindCatch:
		add(n.Field(FieldType))
		add(n.Field(FieldBody))
	case KindFinally:
		add(n.Field(FieldBody))
	case KindReturn, KindThrow:
		add(n.Field(FieldValue))
	case KindBreak, KindContinue:
		// leaves
	case KindUsing:
		add(n.Field(FieldValue))
		add(n.Field(FieldBody))
	case KindExpressionStatement:
		add(n.Field(FieldValue))

	case KindVariable, KindLiteral, KindThis, KindParent, KindSelf, KindStatic, KindMagicConstant:
		// leaves
	case KindBinary:
		add(n.Field(FieldLeft))
		add(n.Field(FieldRight))
	case KindUnary, KindIncDec, KindAwait, KindClone:
		add(n.Field(FieldOperand))
	case KindAssign:
		add(n.Field(FieldTarget))
		add(n.Field(FieldValue))
	case KindTernary:
		add(n.Field(FieldCondition))
		add(n.Field(FieldConsequence))
		add(n.Field(FieldAlternative))
	case KindShortTernary, KindCoalesce:
		add(n.Field(FieldCondition))
		add(n.Field(FieldAlternative))
	case KindParenthesized:
		add(n.Field(FieldInner))
	case KindCall:
		add(n.Field(FieldCallee))
		addAll(n.List(ListArguments))
	case KindNew:
		add(n.Field(FieldClassRef))
		addAll(n.List(ListArguments))
	case KindPropertyFetch, KindNullsafePropertyFetch:
		add(n.Field(FieldObject))
		add(n.Field(FieldProperty))
	case KindStaticPropertyFetch, KindClassConstFetch, KindStaticMethodClosureCreation:
		add(n.Field(FieldClassRef))
		add(n.Field(FieldProperty))
	case KindMethodClosureCreation:
		add(n.Field(FieldObject))
		add(n.Field(FieldProperty))
	case KindFunctionClosureCreation:
		add(n.Field(FieldCallee))
	case KindAnonymousFunction:
		addAll(n.List(ListParameters))
		add(n.Field(FieldReturnType))
		add(n.Field(FieldBody))
	case KindArrowFunction:
		addAll(n.List(ListParameters))
		add(n.Field(FieldReturnType))
		add(n.Field(FieldValue))
	case KindAsyncBlock:
		add(n.Field(FieldBody))
	case KindArrayAccess:
		add(n.Field(FieldObject))
		add(n.Field(FieldProperty))
	case KindArrayPush:
		add(n.Field(FieldObject))
		add(n.Field(FieldValue))
	case KindIsset, KindUnset:
		addAll(n.List(ListArguments))
	case KindInstanceof, KindIs, KindAs:
		add(n.Field(FieldLeft))
		add(n.Field(FieldType))
	case KindExit:
		add(n.Field(FieldValue))
	case KindVec, KindTuple:
		addAll(n.List(ListElements))
	case KindDict:
		addAll(n.List(ListElements))
	case KindStringConcat, KindRange:
		add(n.Field(FieldLeft))
		add(n.Field(FieldRight))
	case KindYield:
		add(n.Field(FieldValue))

	case KindNamedType:
		addAll(n.List(ListGenericArgs))
	case KindNullableType:
		add(n.Field(FieldType))
	case KindUnionType, KindIntersectionType:
		addAll(n.List(ListElements))
	case KindGenericType:
		addAll(n.List(ListGenericArgs))
	case KindStandaloneType, KindBottomType, KindScalarType:
		// leaves
	case KindTupleTypeElements:
		addAll(n.List(ListElements))
	}

	return out
}

// wireNode is Node's gob-serializable shadow: Node keeps fields/lists
// unexported so construction always goes through SetField/SetList, but
// encoding/gob can only see exported fields, so GobEncode/GobDecode
// translate through this shape.
type wireNode struct {
	Kind   Kind
	Range  Range
	Text   string
	Flag   bool
	Flag2  bool
	Fields map[FieldKey]*Node
	Lists  map[ListKey][]*Node
}

func (n *Node) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	w := wireNode{
		Kind:   n.Kind,
		Range:  n.Range,
		Text:   n.Text,
		Flag:   n.Flag,
		Flag2:  n.Flag2,
		Fields: n.fields,
		Lists:  n.lists,
	}
	if err := gob.NewEncoder(&buf).Encode(&w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n *Node) GobDecode(data []byte) error {
	var w wireNode
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	n.Kind = w.Kind
	n.Range = w.Range
	n.Text = w.Text
	n.Flag = w.Flag
	n.Flag2 = w.Flag2
	n.fields = w.Fields
	n.lists = w.Lists
	return nil
}

// IsExpression reports whether n is one of the expression kinds (as
// opposed to a statement, declaration, or type).
func (n *Node) IsExpression() bool {
	switch n.Kind {
	case KindVariable, KindLiteral, KindBinary, KindUnary, KindIncDec, KindAssign,
		KindTernary, KindShortTernary, KindCoalesce, KindParenthesized, KindCall, KindNew,
		KindClone, KindPropertyFetch, KindNullsafePropertyFetch, KindStaticPropertyFetch,
		KindClassConstFetch, KindMethodClosureCreation, KindStaticMethodClosureCreation,
		KindFunctionClosureCreation, KindAnonymousFunction, KindArrowFunction, KindAwait,
		KindAsyncBlock, KindArrayAccess, KindArrayPush, KindIsset, KindUnset, KindInstanceof,
		KindIs, KindAs, KindThis, KindParent, KindSelf, KindStatic, KindExit, KindVec, KindDict,
		KindTuple, KindStringConcat, KindRange, KindMagicConstant, KindYield:
		return true
	default:
		return false
	}
}
