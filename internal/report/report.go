// Package report assembles and formats the final diagnostic output:
// filtering by an ignore-list, tallying severities, and rendering
// annotated source snippets, grounded on the original analyzer's
// ara_reporting crate.
package report

import (
	"fmt"
	"sort"

	"github.com/ara-lang/forest/internal/ast"
	"github.com/ara-lang/forest/internal/issue"
)

// Report is an ordered collection of issues plus the bookkeeping
// needed to render a summary footer.
type Report struct {
	Issues []issue.Issue

	ignoredCount        int
	attemptedIgnoreErrs int
}

// New returns an empty report.
func New() *Report {
	return &Report{}
}

// FromIssues builds a report directly from an unfiltered issue slice,
// for callers (like langparser) that have no ignore-list to apply.
func FromIssues(issues []issue.Issue) *Report {
	return &Report{Issues: issues}
}

// WithIssue appends a single issue and returns the receiver, mirroring
// the original's builder-style with_issue.
func (r *Report) WithIssue(i issue.Issue) *Report {
	r.Issues = append(r.Issues, i)
	return r
}

// FromError builds a single-issue report for a fatal non-parse error
// (I/O, InvalidPath, Encode, Log), so every failure mode renders
// through the same reporting path.
func FromError(err error) *Report {
	return New().WithIssue(issue.New("InternalError", issue.Error, err.Error(), "", ast.Range{}))
}

// IsEmpty reports whether there are no issues to show.
func (r *Report) IsEmpty() bool {
	return r == nil || len(r.Issues) == 0
}

// HasErrorOrAbove reports whether any retained issue meets or exceeds
// error severity — the pipeline's exit-gate condition.
func (r *Report) HasErrorOrAbove() bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity >= issue.Error {
			return true
		}
	}
	return false
}

// ApplyIgnoreList filters issues whose Code appears in ignore: below
// error severity they are dropped and counted; at or above error
// severity they are kept but counted as an attempted ignore of an
// error, matching spec behavior that errors cannot be silenced.
func ApplyIgnoreList(issues []issue.Issue, ignore []string) *Report {
	ignored := make(map[string]bool, len(ignore))
	for _, code := range ignore {
		ignored[code] = true
	}

	r := &Report{}
	for _, i := range issues {
		if ignored[i.Code] {
			if i.Severity < issue.Error {
				r.ignoredCount++
				continue
			}
			r.attemptedIgnoreErrs++
		}
		r.Issues = append(r.Issues, i)
	}
	sortByOriginThenOffset(r.Issues)
	return r
}

// sortByOriginThenOffset orders issues by source origin, then by the
// start of their range; severity is not compared.
func sortByOriginThenOffset(issues []issue.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Origin != issues[j].Origin {
			return issues[i].Origin < issues[j].Origin
		}
		return issues[i].Range.Initial < issues[j].Range.Initial
	})
}

// SeverityCounts tallies issues per severity, ascending.
func (r *Report) SeverityCounts() map[issue.Severity]int {
	counts := map[issue.Severity]int{}
	for _, i := range r.Issues {
		counts[i.Severity]++
	}
	return counts
}

// Footer renders the ascending-severity summary line plus ignored /
// attempted-to-ignore-error counts when non-zero, per spec §4.9.
func (r *Report) Footer() string {
	counts := r.SeverityCounts()
	line := fmt.Sprintf("%d note(s), %d warning(s), %d error(s)",
		counts[issue.Note], counts[issue.Warning], counts[issue.Error])
	if r.ignoredCount > 0 {
		line += fmt.Sprintf(", %d ignored", r.ignoredCount)
	}
	if r.attemptedIgnoreErrs > 0 {
		line += fmt.Sprintf(", %d attempted to ignore an error", r.attemptedIgnoreErrs)
	}
	return line
}

// IgnoredCount is the number of below-error issues dropped by the
// ignore list.
func (r *Report) IgnoredCount() int { return r.ignoredCount }

// AttemptedIgnoreErrors is the number of error-or-above issues whose
// code was listed in the ignore list but could not be suppressed.
func (r *Report) AttemptedIgnoreErrors() int { return r.attemptedIgnoreErrs }
