package defs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/defs"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/langparser"
)

func resolveOne(t *testing.T, src string) ([]issue.Issue, *defs.Storage) {
	t.Helper()
	tree, rep := langparser.New().Parse("t.ara", []byte(src))
	require.Nil(t, rep, "unexpected parse report")

	forest := ast.NewForest(
		[]ast.Source{{Origin: "t.ara", Kind: ast.SourceScript}},
		[]*ast.Tree{tree},
	)
	c := defs.CollectForest(forest)
	storage, issues := defs.Resolve(c, c.Sources())
	return issues, storage
}

func codes(issues []issue.Issue) []string {
	out := make([]string, len(issues))
	for i, iss := range issues {
		out[i] = iss.Code
	}
	return out
}

func TestResolveFlagsReservedTypeName(t *testing.T) {
	issues, _ := resolveOne(t, `class Void { }`)
	require.Len(t, issues, 1)
	assert.Equal(t, "NameIsReservedTypeName", issues[0].Code)
	assert.Equal(t, issue.Error, issues[0].Severity)
}

func TestResolveFlagsDuplicateUseUnderAlias(t *testing.T) {
	issues, _ := resolveOne(t, `
namespace App;
use Foo\Bar as X;
use Foo\Bar as Y;
`)
	require.Contains(t, codes(issues), "DuplicateUseDefinitionUnderAlias")
	for _, i := range issues {
		if i.Code == "DuplicateUseDefinitionUnderAlias" {
			assert.Equal(t, issue.Warning, i.Severity)
		}
	}
}

func TestResolveFlagsRedundantUse(t *testing.T) {
	issues, _ := resolveOne(t, `
namespace Foo;
use Foo\Bar;
`)
	require.Contains(t, codes(issues), "RedundantUse")
	for _, i := range issues {
		if i.Code == "RedundantUse" {
			assert.Equal(t, issue.Note, i.Severity)
		}
	}
}

func TestResolveFlagsDuplicateItemDefinition(t *testing.T) {
	issues, _ := resolveOne(t, `
namespace App;
function thing(): void { }
function thing(): void { }
`)
	require.Contains(t, codes(issues), "DuplicateItemDefinition")
}

func TestResolveFlagsNameAlreadyInUse(t *testing.T) {
	issues, _ := resolveOne(t, `
namespace App;
use Foo\Thing;
class Thing { }
`)
	require.Contains(t, codes(issues), "NameAlreadyInUse")
}

func TestResolveFlagsRedundantAlias(t *testing.T) {
	issues, _ := resolveOne(t, `
namespace App;
use Foo\Bar as Bar;
`)
	require.Contains(t, codes(issues), "RedundantAlias")
}

func TestResolveAllowsSameNameAcrossCategories(t *testing.T) {
	issues, storage := resolveOne(t, `
namespace App;
function Thing(): void { }
const Thing = 1;
class Thing { }
`)
	assert.NotContains(t, codes(issues), "DuplicateItemDefinition")
	assert.NotContains(t, codes(issues), "NameAlreadyInUse")

	_, ok := storage.ByQualifiedName(defs.CategoryFunction, `App\Thing`)
	assert.True(t, ok)
	_, ok = storage.ByQualifiedName(defs.CategoryConstant, `App\Thing`)
	assert.True(t, ok)
	_, ok = storage.ByQualifiedName(defs.CategoryType, `App\Thing`)
	assert.True(t, ok)
}

func TestResolveQualifiesNamesUnderNamespace(t *testing.T) {
	issues, storage := resolveOne(t, `
namespace App\Models;
class User { }
`)
	assert.Empty(t, issues)
	def, ok := storage.ByQualifiedName(defs.CategoryType, `App\Models\User`)
	require.True(t, ok)
	assert.Equal(t, "User", def.UnqualifiedName)
}

func TestResolveAcceptsCleanUse(t *testing.T) {
	issues, storage := resolveOne(t, `
namespace App;
use Foo\Bar;
use Foo\Baz as Qux;
`)
	assert.Empty(t, issues)
	_, ok := storage.ByUnqualifiedNameInSource(defs.CategoryType, "t.ara", "Bar")
	assert.True(t, ok)
	_, ok = storage.ByUnqualifiedNameInSource(defs.CategoryType, "t.ara", "Qux")
	assert.True(t, ok)
}
