// Package visitor implements the pre-order ancestry-tracked tree walk
// that drives every rule in internal/rules, grounded on the original
// analyzer's Visitor trait and traverse function.
package visitor

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
)

// Ancestry is the stack of parent nodes leading from a tree's root to
// (but not including) the node currently being visited.
type Ancestry []*ast.Node

// Nearest returns the closest ancestor for which match returns true,
// searching outward from the bottom of the stack, and whether one was
// found.
func (a Ancestry) Nearest(match func(*ast.Node) bool) (*ast.Node, bool) {
	for i := len(a) - 1; i >= 0; i-- {
		if match(a[i]) {
			return a[i], true
		}
	}
	return nil, false
}

// Visitor is a single independent check over a shared tree. Visit is
// called once per node in pre-order, with ancestry excluding the node
// itself.
type Visitor interface {
	Visit(origin string, node *ast.Node, ancestry Ancestry) []issue.Issue
}

// Walk runs v in pre-order over every top-level declaration of tree,
// accumulating issues. Each top-level declaration starts from a fresh,
// empty ancestry stack.
func Walk(v Visitor, origin string, tree *ast.Tree) []issue.Issue {
	var issues []issue.Issue
	for _, decl := range tree.Declarations {
		ancestry := make(Ancestry, 0, 16)
		issues = append(issues, visitNode(v, origin, decl, ancestry)...)
	}
	return issues
}

func visitNode(v Visitor, origin string, node *ast.Node, ancestry Ancestry) []issue.Issue {
	issues := v.Visit(origin, node, ancestry)

	ancestry = append(ancestry, node)
	for _, child := range node.Children() {
		issues = append(issues, visitNode(v, origin, child, ancestry)...)
	}
	ancestry = ancestry[:len(ancestry)-1]

	return issues
}

// Driver runs a fixed list of visitors across every tree in a forest,
// applying the source-kind filter from spec §4.6: Definition sources
// keep only error-or-above issues.
type Driver struct {
	Visitors []Visitor
}

func NewDriver(visitors ...Visitor) *Driver {
	return &Driver{Visitors: visitors}
}

func (d *Driver) Run(forest *ast.Forest) []issue.Issue {
	var issues []issue.Issue
	for _, tree := range forest.Trees {
		source, ok := forest.SourceFor(tree.Source)
		if !ok {
			continue
		}
		for _, v := range d.Visitors {
			for _, i := range Walk(v, tree.Source, tree) {
				if source.Kind == ast.SourceDefinition && i.Severity <= issue.Warning {
					continue
				}
				issues = append(issues, i)
			}
		}
	}
	return issues
}
