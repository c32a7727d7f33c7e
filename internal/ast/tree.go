package ast

// Tree is the parsed representation of one source file: a project-wide
// namespace of declarations, represented as an ordered list of
// top-level definition nodes (functions, classes, interfaces, enums,
// type aliases, constants, use declarations, namespace declarations).
//
// A Tree has no single synthetic "root node" — the rule visitors in
// internal/rules walk each top-level definition (and everything nested
// under it) in source order, which is exactly what a root-node's
// Children() would yield, without forcing every rule to special-case an
// invisible wrapper node.
type Tree struct {
	Source       string // the owning Source's origin
	Declarations []*Node
}

// NewTree builds a Tree for the given source origin.
func NewTree(source string, declarations []*Node) *Tree {
	return &Tree{Source: source, Declarations: declarations}
}

// SignedTree is a Tree paired with the content-hash signature that was
// computed when it was parsed. Persisted as one cache blob per source;
// see internal/cache and internal/treeblob.
type SignedTree struct {
	Signature uint64
	Tree      *Tree
}
