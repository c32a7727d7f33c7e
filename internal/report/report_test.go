package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/report"
)

func TestApplyIgnoreListDropsBelowError(t *testing.T) {
	issues := []issue.Issue{
		issue.New("RedundantUse", issue.Note, "redundant use", "a.ara", ast.Range{}),
		issue.New("UnreachableCode", issue.Error, "unreachable", "a.ara", ast.Range{}),
	}

	r := report.ApplyIgnoreList(issues, []string{"RedundantUse"})
	assert.Len(t, r.Issues, 1)
	assert.Equal(t, 1, r.IgnoredCount())
	assert.Equal(t, 0, r.AttemptedIgnoreErrors())
}

func TestApplyIgnoreListCannotSuppressErrors(t *testing.T) {
	issues := []issue.Issue{
		issue.New("UnreachableCode", issue.Error, "unreachable", "a.ara", ast.Range{}),
	}

	r := report.ApplyIgnoreList(issues, []string{"UnreachableCode"})
	assert.Len(t, r.Issues, 1)
	assert.Equal(t, 1, r.AttemptedIgnoreErrors())
	assert.True(t, r.HasErrorOrAbove())
}

func TestFooterReflectsCounts(t *testing.T) {
	issues := []issue.Issue{
		issue.New("A", issue.Note, "m", "a.ara", ast.Range{}),
		issue.New("B", issue.Warning, "m", "a.ara", ast.Range{}),
	}
	r := report.ApplyIgnoreList(issues, nil)
	assert.Contains(t, r.Footer(), "1 note(s), 1 warning(s), 0 error(s)")
}

func TestSortByOriginThenOffset(t *testing.T) {
	issues := []issue.Issue{
		issue.New("A", issue.Note, "m", "b.ara", ast.Range{Initial: 5}),
		issue.New("B", issue.Note, "m", "a.ara", ast.Range{Initial: 10}),
		issue.New("C", issue.Note, "m", "a.ara", ast.Range{Initial: 1}),
	}
	r := report.ApplyIgnoreList(issues, nil)
	assert.Equal(t, "C", r.Issues[0].Code)
	assert.Equal(t, "B", r.Issues[1].Code)
	assert.Equal(t, "A", r.Issues[2].Code)
}
