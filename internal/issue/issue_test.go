package issue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
)

func TestSeverityOrdering(t *testing.T) {
	assert.Less(t, issue.Note, issue.Warning)
	assert.Less(t, issue.Warning, issue.Error)
}

func TestWithNoteAppends(t *testing.T) {
	base := issue.New("unreachable-code", issue.Warning, "unreachable statement", "a.ara", ast.Range{Initial: 1, Final: 2})
	withNote := base.WithNote("previous return here", "a.ara", ast.Range{Initial: 0, Final: 1})

	assert.Empty(t, base.Notes)
	assert.Len(t, withNote.Notes, 1)
	assert.Equal(t, "previous return here", withNote.Notes[0].Message)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "note", issue.Note.String())
	assert.Equal(t, "warning", issue.Warning.String())
	assert.Equal(t, "error", issue.Error.String())
}
