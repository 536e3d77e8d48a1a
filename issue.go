package fhirmodels

import (
	"context"
	"errors"

	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/r4"
)

// IssueSeverity is OperationOutcome.issue.severity.
type IssueSeverity = r4.IssueSeverity

const (
	// SeverityFatal indicates the document could not be processed at all.
	SeverityFatal = r4.IssueSeverityFatal
	// SeverityError indicates the document is invalid.
	SeverityError = r4.IssueSeverityError
	// SeverityWarning indicates a potential problem that should be reviewed.
	SeverityWarning = r4.IssueSeverityWarning
	// SeverityInformation indicates informational feedback.
	SeverityInformation = r4.IssueSeverityInformation
)

// IssueType is OperationOutcome.issue.code.
type IssueType = r4.IssueType

// Issue types produced by this package.
const (
	IssueTypeInvalid       = r4.IssueTypeInvalid
	IssueTypeStructure     = r4.IssueTypeStructure
	IssueTypeRequired      = r4.IssueTypeRequired
	IssueTypeValue         = r4.IssueTypeValue
	IssueTypeInvariant     = r4.IssueTypeInvariant
	IssueTypeProcessing    = r4.IssueTypeProcessing
	IssueTypeCodeInvalid   = r4.IssueTypeCodeInvalid
	IssueTypeExtension     = r4.IssueTypeExtension
	IssueTypeNotSupported  = r4.IssueTypeNotSupported
	IssueTypeTimeout       = r4.IssueTypeTimeout
	IssueTypeInformational = r4.IssueTypeInformational
)

// Issue represents a single problem found in a document.
// It maps to OperationOutcome.issue in FHIR.
type Issue struct {
	// Severity of the issue (error, warning, information)
	Severity IssueSeverity `json:"severity"`

	// Code identifying the type of issue
	Code IssueType `json:"code"`

	// Diagnostics contains human-readable details about the issue
	Diagnostics string `json:"diagnostics,omitempty"`

	// Expression contains FHIRPath-like paths to the element(s) in error,
	// e.g. "Observation.value[x]"
	Expression []string `json:"expression,omitempty"`

	// Kind is the decode error kind, e.g. "AmbiguousChoice"
	Kind string `json:"kind,omitempty"`

	// ConstraintKey is the invariant key (e.g. "obs-6") for invariant failures
	ConstraintKey string `json:"constraintKey,omitempty"`
}

// IsError returns true if this is an error or fatal issue.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError || i.Severity == SeverityFatal
}

// IsWarning returns true if this is a warning.
func (i Issue) IsWarning() bool {
	return i.Severity == SeverityWarning
}

// String returns a human-readable representation of the issue.
func (i Issue) String() string {
	path := ""
	if len(i.Expression) > 0 {
		path = " at " + i.Expression[0]
	}
	return string(i.Severity) + ": " + i.Diagnostics + path
}

// R4 converts the issue to an OperationOutcome.issue element.
func (i Issue) R4() r4.OperationOutcomeIssue {
	out := r4.OperationOutcomeIssue{
		Severity: i.Severity,
		Code:     i.Code,
	}
	if i.Diagnostics != "" {
		out.Diagnostics = r4.Ptr(i.Diagnostics)
	}
	if len(i.Expression) > 0 {
		out.Expression = append([]string(nil), i.Expression...)
	}
	if i.ConstraintKey != "" {
		out.Details = &r4.CodeableConcept{
			Coding: []r4.Coding{{Code: r4.Ptr(i.ConstraintKey)}},
		}
	}
	return out
}

// IssueBuilder provides a fluent API for building issues.
type IssueBuilder struct {
	issue Issue
}

// NewIssue creates a new IssueBuilder.
func NewIssue(severity IssueSeverity, code IssueType) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			Severity: severity,
			Code:     code,
		},
	}
}

// Error creates an error issue.
func Error(code IssueType) *IssueBuilder {
	return NewIssue(SeverityError, code)
}

// Warning creates a warning issue.
func Warning(code IssueType) *IssueBuilder {
	return NewIssue(SeverityWarning, code)
}

// Info creates an informational issue.
func Info(code IssueType) *IssueBuilder {
	return NewIssue(SeverityInformation, code)
}

// Diagnostics sets the diagnostic message.
func (b *IssueBuilder) Diagnostics(msg string) *IssueBuilder {
	b.issue.Diagnostics = msg
	return b
}

// At sets the expression path.
func (b *IssueBuilder) At(path string) *IssueBuilder {
	b.issue.Expression = []string{path}
	return b
}

// AtPaths sets multiple expression paths.
func (b *IssueBuilder) AtPaths(paths ...string) *IssueBuilder {
	b.issue.Expression = paths
	return b
}

// Kind sets the decode error kind.
func (b *IssueBuilder) Kind(kind string) *IssueBuilder {
	b.issue.Kind = kind
	return b
}

// Constraint sets the constraint key.
func (b *IssueBuilder) Constraint(key string) *IssueBuilder {
	b.issue.ConstraintKey = key
	return b
}

// Build returns the constructed issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}

type errorKind struct {
	err      error
	name     string
	code     IssueType
	severity IssueSeverity
}

var errorKinds = []errorKind{
	{codec.ErrMissingRequiredField, "MissingRequiredField", IssueTypeRequired, SeverityError},
	{codec.ErrMissingRequiredChoice, "MissingRequiredChoice", IssueTypeRequired, SeverityError},
	{codec.ErrAmbiguousChoice, "AmbiguousChoice", IssueTypeStructure, SeverityError},
	{codec.ErrInvalidEnumValue, "InvalidEnumValue", IssueTypeCodeInvalid, SeverityError},
	{codec.ErrTypeMismatch, "TypeMismatch", IssueTypeValue, SeverityError},
	{codec.ErrUnknownResourceType, "UnknownResourceType", IssueTypeNotSupported, SeverityError},
	{codec.ErrMissingDiscriminator, "MissingDiscriminator", IssueTypeRequired, SeverityError},
	{codec.ErrUnknownElement, "UnknownElement", IssueTypeStructure, SeverityError},
	{codec.ErrUnrecognizedModifier, "UnrecognizedModifier", IssueTypeExtension, SeverityError},
	{codec.ErrMalformedJSON, "MalformedJSON", IssueTypeStructure, SeverityFatal},
}

func kindOf(err error) (errorKind, bool) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k, true
		}
	}
	return errorKind{}, false
}

// ErrorKind names the decode error kind of err, e.g. "AmbiguousChoice".
// It returns "" for nil and "Other" for errors that are not decode errors.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	if k, ok := kindOf(err); ok {
		return k.name
	}
	return "Other"
}

// ErrorKinds lists every name ErrorKind can return for a decode error.
func ErrorKinds() []string {
	out := make([]string, len(errorKinds))
	for i, k := range errorKinds {
		out[i] = k.name
	}
	return out
}

// IssueFromError maps err to a single issue. Decode errors keep their kind
// and location; context errors become timeout or processing issues.
func IssueFromError(err error) Issue {
	if err == nil {
		return Info(IssueTypeInformational).Diagnostics("All OK").Build()
	}
	if k, ok := kindOf(err); ok {
		b := NewIssue(k.severity, k.code).
			Diagnostics(err.Error()).
			Kind(k.name)
		if de, ok := codec.AsDecodeError(err); ok {
			if loc := de.Location(); loc != "" {
				b.At(loc)
			}
		}
		return b.Build()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewIssue(SeverityFatal, IssueTypeTimeout).Diagnostics(err.Error()).Build()
	}
	return NewIssue(SeverityFatal, IssueTypeProcessing).Diagnostics(err.Error()).Build()
}

// IssuesFromError maps err to issues, expanding errors joined with
// errors.Join.
func IssuesFromError(err error) []Issue {
	if err == nil {
		return nil
	}
	if _, ok := err.(*codec.DecodeError); !ok {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			var out []Issue
			for _, e := range joined.Unwrap() {
				out = append(out, IssuesFromError(e)...)
			}
			return out
		}
	}
	return []Issue{IssueFromError(err)}
}

// OperationOutcome builds an OperationOutcome describing err. A nil err
// produces a single informational issue.
func OperationOutcome(err error) *r4.OperationOutcome {
	issues := IssuesFromError(err)
	if len(issues) == 0 {
		issues = []Issue{IssueFromError(nil)}
	}
	return outcome(issues)
}

func outcome(issues []Issue) *r4.OperationOutcome {
	oo := &r4.OperationOutcome{Issue: make([]r4.OperationOutcomeIssue, len(issues))}
	for i, is := range issues {
		oo.Issue[i] = is.R4()
	}
	return oo
}
