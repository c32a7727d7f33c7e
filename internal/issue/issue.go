// Package issue defines the diagnostic type every rule visitor and the
// definition resolver emit, and the severity ordering the report
// assembler (internal/report) sorts and filters by.
package issue

import "github.com/ara-lang/forest/internal/ast"

// Severity orders from least to most significant, matching
// spec.md §4.9's "ascending-severity order" footer requirement.
type Severity uint8

const (
	Note Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Issue is one diagnostic: a stable Code (the public API surfaced
// through config analyzer.ignore), a Severity, a human Message, the
// Source origin it was raised against, and the byte Range it annotates.
type Issue struct {
	Code     string
	Severity Severity
	Message  string
	Origin   string
	Range    ast.Range

	// Notes are secondary annotations attached to the same issue (e.g.
	// "previous definition here"), each with its own range.
	Notes []Annotation
}

// Annotation is a secondary note on an Issue, pointing at another
// location relevant to understanding it (a prior declaration, an
// enclosing function header, etc).
type Annotation struct {
	Message string
	Origin  string
	Range   ast.Range
}

// New builds an Issue with no secondary notes.
func New(code string, severity Severity, message, origin string, r ast.Range) Issue {
	return Issue{Code: code, Severity: severity, Message: message, Origin: origin, Range: r}
}

// WithNote returns a copy of i with an additional secondary annotation.
func (i Issue) WithNote(message, origin string, r ast.Range) Issue {
	i.Notes = append(i.Notes, Annotation{Message: message, Origin: origin, Range: r})
	return i
}
