package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/langparser"
	"github.com/ara-lang/forest/internal/rules"
	"github.com/ara-lang/forest/internal/visitor"
)

func parse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tree, rep := langparser.New().Parse("t.ara", []byte(src))
	require.Nil(t, rep, "unexpected parse report")
	require.NotNil(t, tree)
	return tree
}

func walk(t *testing.T, v visitor.Visitor, src string) []issue.Issue {
	t.Helper()
	tree := parse(t, src)
	return visitor.Walk(v, "t.ara", tree)
}

func codes(issues []issue.Issue) []string {
	out := make([]string, len(issues))
	for i, iss := range issues {
		out[i] = iss.Code
	}
	return out
}

func TestNamingConventionFlagsWrongCasing(t *testing.T) {
	issues := walk(t, rules.NamingConvention{}, `function DoThing(int $X): void { }`)
	require.NotEmpty(t, issues)
	for _, i := range issues {
		assert.Equal(t, "NamingConvention", i.Code)
		assert.Equal(t, issue.Note, i.Severity)
	}
}

func TestNamingConventionAcceptsConformingNames(t *testing.T) {
	issues := walk(t, rules.NamingConvention{}, `function do_thing(int $x): void { }`)
	assert.Empty(t, issues)
}

func TestParameterOrderingRequiredAfterOptional(t *testing.T) {
	issues := walk(t, rules.ParameterOrdering{}, `function f(int $a = 1, int $b): void { }`)
	require.Len(t, issues, 1)
	assert.Equal(t, "RequiredParameterAfterOptional", issues[0].Code)
}

func TestParameterOrderingDuplicateNameCaseInsensitive(t *testing.T) {
	issues := walk(t, rules.ParameterOrdering{}, `function f(int $a, int $A): void { }`)
	require.Len(t, issues, 1)
	assert.Equal(t, "NoDuplicateParameter", issues[0].Code)
}

func TestParameterOrderingVariadicCannotBeOptional(t *testing.T) {
	issues := walk(t, rules.ParameterOrdering{}, `function f(int ...$a = 1): void { }`)
	assert.Contains(t, codes(issues), "VariadicParameterCannotBeOptional")
}

func TestDiscardOperationFlagsNewWithNote(t *testing.T) {
	issues := walk(t, rules.DiscardOperation{}, `function f(): void { new Thing(); }`)
	require.Len(t, issues, 1)
	assert.Equal(t, "DiscardedClassInitialization", issues[0].Code)
	assert.NotEmpty(t, issues[0].Notes)
}

func TestDiscardOperationAsyncBlockIsError(t *testing.T) {
	issues := walk(t, rules.DiscardOperation{}, `function f(): void { async { 1; }; }`)
	// The discarded literal statement inside the block is reported too.
	require.Len(t, issues, 2)
	assert.Equal(t, "UnconsumedAsyncOperation", issues[0].Code)
	assert.Equal(t, issue.Error, issues[0].Severity)
}

func TestUnreachableCodeAfterReturn(t *testing.T) {
	issues := walk(t, rules.UnreachableCode{}, `function f(): void { return; $x = 1; $y = 2; }`)
	require.Len(t, issues, 1)
	assert.Equal(t, "UnreachableCode", issues[0].Code)
}

func TestUnreachableCodeLastStatementIsFine(t *testing.T) {
	issues := walk(t, rules.UnreachableCode{}, `function f(): void { $x = 1; return; }`)
	assert.Empty(t, issues)
}

func TestAssignToThisIsError(t *testing.T) {
	issues := walk(t, rules.AssignToThis{}, `class C { public function m(): void { $this = 1; } }`)
	require.Len(t, issues, 1)
	assert.Equal(t, "CannotAssignToThis", issues[0].Code)
}

func TestThisOutsideClassScopeIsError(t *testing.T) {
	issues := walk(t, rules.ThisSelfStaticParentScope{}, `function f(): void { $this; }`)
	require.Len(t, issues, 1)
	assert.Equal(t, "ThisUsedOutsideClassScope", issues[0].Code)
}

func TestThisInsideClassScopeIsFine(t *testing.T) {
	issues := walk(t, rules.ThisSelfStaticParentScope{}, `class C { public function m(): void { $this; } }`)
	assert.Empty(t, issues)
}

func TestBuiltinGenericArityTooManyArguments(t *testing.T) {
	issues := walk(t, rules.BuiltinGenericArity{}, `function f(vec<int, string> $x): void { }`)
	require.NotEmpty(t, issues)
	assert.Equal(t, "InvalidGenericArgumentsCount", issues[0].Code)
}

func TestBuiltinGenericArityCorrectIsFine(t *testing.T) {
	issues := walk(t, rules.BuiltinGenericArity{}, `function f(dict<string, int> $x): void { }`)
	assert.Empty(t, issues)
}

func TestStandaloneBlockIsError(t *testing.T) {
	issues := walk(t, rules.StandaloneBlock{}, `function f(): void { { $x = 1; } }`)
	require.Len(t, issues, 1)
	assert.Equal(t, "StandaloneBlock", issues[0].Code)
}
