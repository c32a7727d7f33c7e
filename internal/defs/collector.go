package defs

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/visitor"
)

var declarationKinds = map[ast.Kind]Kind{
	ast.KindNamespace:        KindNamespace,
	ast.KindUseDefault:       KindUseType,
	ast.KindUseFunction:      KindUseFunction,
	ast.KindUseConstant:      KindUseConstant,
	ast.KindFunction:         KindFunction,
	ast.KindTypeAlias:        KindTypeAlias,
	ast.KindInterface:        KindInterface,
	ast.KindClass:            KindClass,
	ast.KindUnitEnum:         KindUnitEnum,
	ast.KindStringBackedEnum: KindStringBackedEnum,
	ast.KindIntBackedEnum:    KindIntBackedEnum,
}

// Collector implements visitor.Visitor without raising any diagnostics
// of its own; as a side effect of the walk it accumulates one
// Definition per declaration-level node, in declaration order, per
// source.
type Collector struct {
	bySource map[string][]Definition
}

func NewCollector() *Collector {
	return &Collector{bySource: make(map[string][]Definition)}
}

// Definitions returns every collected definition for source, in the
// order they were declared.
func (c *Collector) Definitions(source string) []Definition {
	return c.bySource[source]
}

// Sources returns the list of origins the collector has seen anything
// for, in no particular order — callers should iterate the forest
// itself for a stable order.
func (c *Collector) Sources() []string {
	out := make([]string, 0, len(c.bySource))
	for s := range c.bySource {
		out = append(out, s)
	}
	return out
}

func (c *Collector) Visit(origin string, node *ast.Node, ancestry visitor.Ancestry) []issue.Issue {
	if dk, ok := declarationKinds[node.Kind]; ok && len(ancestry) == 0 {
		c.add(origin, dk, node)
		return nil
	}
	if node.Kind == ast.KindConstantItem && len(ancestry) > 0 && ancestry[len(ancestry)-1].Kind == ast.KindConstant {
		c.add(origin, KindConstant, node)
	}
	return nil
}

func (c *Collector) add(origin string, kind Kind, node *ast.Node) {
	name := node.Field(ast.FieldName)
	if name == nil {
		return
	}
	c.bySource[origin] = append(c.bySource[origin], Definition{
		UnqualifiedName: name.Text,
		Kind:            kind,
		Source:          origin,
		Range:           name.Range,
		Node:            node,
	})
}

// CollectForest runs a fresh Collector over every tree in forest and
// returns it.
func CollectForest(forest *ast.Forest) *Collector {
	c := NewCollector()
	for _, tree := range forest.Trees {
		visitor.Walk(c, tree.Source, tree)
	}
	return c
}
