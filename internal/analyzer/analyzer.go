// Package analyzer wires the parse, definition-resolution, and lint
// phases into the single entry point both cmd/forest and
// internal/mcpserver call, grounded on the original analyzer's
// Analyzer::analyze (analyzer/mod.rs): traverse every rule visitor over
// the parsed forest, collect definitions alongside them, resolve the
// definition forest, append the resolver's issues to the rule issues,
// then build the final report by applying the configured ignore list.
package analyzer

import (
	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/cache"
	"github.com/ara-lang/forest/internal/collector"
	"github.com/ara-lang/forest/internal/config"
	"github.com/ara-lang/forest/internal/contenthash"
	"github.com/ara-lang/forest/internal/defs"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/langparser"
	"github.com/ara-lang/forest/internal/pipeline"
	"github.com/ara-lang/forest/internal/report"
	"github.com/ara-lang/forest/internal/rules"
	"github.com/ara-lang/forest/internal/treeblob"
	"github.com/ara-lang/forest/internal/visitor"
)

// Result is the outcome of one full run: the parsed forest (nil if the
// parse phase itself failed) and the assembled diagnostic report.
type Result struct {
	Forest *ast.Forest
	Report *report.Report
}

// Run executes the full pipeline for cfg's project: parse, collect and
// resolve definitions, lint, then assemble a report with cfg's ignore
// list applied.
//
// If the parse phase itself reports an issue (a worker hit a parse
// error), that report is returned immediately and no lint phase runs,
// matching the original "first worker report wins" behavior.
func Run(cfg *config.Config) (*Result, error) {
	col := collector.New(cfg.Root, cfg.Source, cfg.Definitions)
	builder := cache.NewBuilder(cfg.Root, cfg.Cache, contenthash.New(), treeblob.New(), langparser.New())
	orch := pipeline.New(cfg.Root, cfg.Cache, cfg.Threads, col, builder)

	forest, parseReport, err := orch.Run()
	if err != nil {
		return nil, err
	}
	if parseReport != nil {
		return &Result{Forest: forest, Report: parseReport}, nil
	}

	issues := lint(forest)

	defCollector := defs.CollectForest(forest)
	_, resolveIssues := defs.Resolve(defCollector, sourceOrder(forest))
	issues = append(issues, resolveIssues...)

	return &Result{
		Forest: forest,
		Report: report.ApplyIgnoreList(issues, cfg.Analyzer.Ignore),
	}, nil
}

// sourceOrder returns forest's sources in their stable, sorted-by-origin
// order (internal/collector.Collect guarantees this), rather than the
// collector's own map-backed Sources(), so that resolution order — and
// therefore which of two colliding definitions is reported as the
// "previous" one — does not vary between runs of an unchanged project.
func sourceOrder(forest *ast.Forest) []string {
	out := make([]string, len(forest.Sources))
	for i, s := range forest.Sources {
		out[i] = s.Origin
	}
	return out
}

// lint runs every rule visitor over forest's trees and returns every
// issue raised, in no particular order (report.ApplyIgnoreList sorts).
func lint(forest *ast.Forest) []issue.Issue {
	driver := visitor.NewDriver(
		&rules.NamingConvention{},
		&rules.ParameterOrdering{},
		&rules.AwaitInLoop{},
		&rules.DiscardOperation{},
		&rules.TernaryShouldBeIfStatement{},
		&rules.OperationCannotBeUsedForReading{},
		&rules.UnreachableCode{},
		&rules.InvalidOperandForArithmetic{},
		&rules.ReturnFromConstructorVoidNever{},
		&rules.AssignToThis{},
		&rules.AssignToUnwriteable{},
		&rules.StandaloneBlock{},
		&rules.ThisSelfStaticParentScope{},
		&rules.UnsafeFinally{},
		&rules.BuiltinGenericArity{},
		&rules.TypeDefinitionSanity{},
	)
	return driver.Run(forest)
}
