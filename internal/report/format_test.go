package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
	"github.com/ara-lang/forest/internal/report"
)

func oneIssueReport() *report.Report {
	return report.FromIssues([]issue.Issue{
		issue.New("UnreachableCode", issue.Error, "unreachable statement", "a.ara", ast.Range{Initial: 0, Final: 3}),
	})
}

func TestFormatColorNeverOmitsEscapes(t *testing.T) {
	f := &report.Formatter{Color: report.ColorNever, Sources: map[string][]byte{"a.ara": []byte("foo")}}
	out := f.Format(oneIssueReport())
	assert.NotContains(t, out, "\x1b[")
}

func TestFormatColorAlwaysEmitsEscapes(t *testing.T) {
	f := &report.Formatter{Color: report.ColorAlways, Sources: map[string][]byte{"a.ara": []byte("foo")}}
	out := f.Format(oneIssueReport())
	assert.Contains(t, out, "\x1b[")
}

func TestFormatASCIIUsesPlainArrowAndBar(t *testing.T) {
	f := &report.Formatter{ASCII: true, Color: report.ColorNever, Sources: map[string][]byte{"a.ara": []byte("foo")}}
	out := f.Format(oneIssueReport())
	assert.Contains(t, out, "-->")
	assert.False(t, strings.Contains(out, "→"))
	assert.False(t, strings.Contains(out, "│"))
}

func TestFormatUnicodeIsDefault(t *testing.T) {
	f := &report.Formatter{Color: report.ColorNever, Sources: map[string][]byte{"a.ara": []byte("foo")}}
	out := f.Format(oneIssueReport())
	assert.Contains(t, out, "→")
	assert.Contains(t, out, "│")
}
