package fhirmodels

import (
	"sync"

	"github.com/gofhir/models/r4"
)

// Result collects the issues found in one document. The decoder and the
// invariant checker each produce one; Merge folds them together.
type Result struct {
	// Valid is false once an error or fatal issue has been added.
	Valid bool `json:"valid"`

	Issues []Issue `json:"issues,omitempty"`

	// Source identifies the document, e.g. a file name or a Bundle fullUrl.
	Source string `json:"source,omitempty"`

	ResourceType string `json:"resourceType,omitempty"`

	mu sync.Mutex
}

// NewResult returns an empty, valid result.
func NewResult() *Result {
	return &Result{Valid: true}
}

// ResultFromError returns a result holding the issues of err. A nil err
// gives an empty, valid result.
func ResultFromError(err error) *Result {
	r := NewResult()
	r.AddIssues(IssuesFromError(err))
	return r
}

// AddIssue appends one issue. It is safe for concurrent use.
func (r *Result) AddIssue(issue Issue) {
	r.AddIssues([]Issue{issue})
}

// AddIssues appends issues in order. It is safe for concurrent use.
func (r *Result) AddIssues(issues []Issue) {
	if len(issues) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, is := range issues {
		if is.IsError() {
			r.Valid = false
		}
	}
	r.Issues = append(r.Issues, issues...)
}

// Merge appends the issues of other after those of r. Source and
// ResourceType are taken from other only where r leaves them empty.
func (r *Result) Merge(other *Result) {
	if other == nil || other == r {
		return
	}
	issues, source, rt := other.snapshot()
	r.AddIssues(issues)

	r.mu.Lock()
	if r.Source == "" {
		r.Source = source
	}
	if r.ResourceType == "" {
		r.ResourceType = rt
	}
	r.mu.Unlock()
}

func (r *Result) snapshot() ([]Issue, string, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Issue(nil), r.Issues...), r.Source, r.ResourceType
}

func (r *Result) count(match func(Issue) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, is := range r.Issues {
		if match(is) {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error or fatal issue was added.
func (r *Result) HasErrors() bool { return r.ErrorCount() > 0 }

// ErrorCount returns the number of error and fatal issues.
func (r *Result) ErrorCount() int { return r.count(Issue.IsError) }

// WarningCount returns the number of warning issues.
func (r *Result) WarningCount() int { return r.count(Issue.IsWarning) }

// OperationOutcome converts the result. A result without issues produces a
// single informational issue.
func (r *Result) OperationOutcome() *r4.OperationOutcome {
	issues, _, _ := r.snapshot()
	if len(issues) == 0 {
		issues = []Issue{IssueFromError(nil)}
	}
	return outcome(issues)
}
