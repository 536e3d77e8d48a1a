package fhirmodels

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gofhir/models/codec"
)

func TestIssue_IsError(t *testing.T) {
	tests := []struct {
		severity IssueSeverity
		want     bool
	}{
		{SeverityFatal, true},
		{SeverityError, true},
		{SeverityWarning, false},
		{SeverityInformation, false},
	}

	for _, tt := range tests {
		issue := Issue{Severity: tt.severity}
		if got := issue.IsError(); got != tt.want {
			t.Errorf("Issue{Severity: %s}.IsError() = %v; want %v", tt.severity, got, tt.want)
		}
		if got := issue.IsWarning(); got != (tt.severity == SeverityWarning) {
			t.Errorf("Issue{Severity: %s}.IsWarning() = %v", tt.severity, got)
		}
	}
}

func TestIssue_String(t *testing.T) {
	tests := []struct {
		issue Issue
		want  string
	}{
		{
			issue: Issue{Severity: SeverityError, Diagnostics: "Invalid value"},
			want:  "error: Invalid value",
		},
		{
			issue: Issue{
				Severity:    SeverityWarning,
				Diagnostics: "Unexpected code",
				Expression:  []string{"Patient.gender"},
			},
			want: "warning: Unexpected code at Patient.gender",
		},
		{
			issue: Issue{
				Severity:    SeverityInformation,
				Diagnostics: "All good",
				Expression:  []string{"Patient", "Patient.name"},
			},
			want: "information: All good at Patient",
		},
	}

	for _, tt := range tests {
		if got := tt.issue.String(); got != tt.want {
			t.Errorf("Issue.String() = %q; want %q", got, tt.want)
		}
	}
}

func TestIssueBuilder(t *testing.T) {
	issue := Error(IssueTypeInvariant).
		Diagnostics("dataAbsentReason SHALL only be present if value[x] is not present").
		AtPaths("Observation", "Observation.dataAbsentReason").
		Kind("Invariant").
		Constraint("obs-6").
		Build()

	if issue.Severity != SeverityError || issue.Code != IssueTypeInvariant {
		t.Errorf("Severity/Code = %s/%s", issue.Severity, issue.Code)
	}
	if len(issue.Expression) != 2 || issue.Expression[1] != "Observation.dataAbsentReason" {
		t.Errorf("Expression = %v", issue.Expression)
	}
	if issue.ConstraintKey != "obs-6" || issue.Kind != "Invariant" {
		t.Errorf("ConstraintKey/Kind = %q/%q", issue.ConstraintKey, issue.Kind)
	}

	if w := Warning(IssueTypeValue).At("Patient.birthDate").Build(); w.Severity != SeverityWarning {
		t.Errorf("Warning severity = %s", w.Severity)
	}
	if i := Info(IssueTypeInformational).Build(); i.Severity != SeverityInformation {
		t.Errorf("Info severity = %s", i.Severity)
	}
}

func TestIssue_R4(t *testing.T) {
	issue := Error(IssueTypeInvariant).
		Diagnostics("failed").
		At("Patient").
		Constraint("pat-1").
		Build()

	got := issue.R4()
	if got.Severity != SeverityError || got.Code != IssueTypeInvariant {
		t.Errorf("Severity/Code = %s/%s", got.Severity, got.Code)
	}
	if got.Diagnostics == nil || *got.Diagnostics != "failed" {
		t.Errorf("Diagnostics = %v", got.Diagnostics)
	}
	if len(got.Expression) != 1 || got.Expression[0] != "Patient" {
		t.Errorf("Expression = %v", got.Expression)
	}
	if got.Details == nil || *got.Details.Coding[0].Code != "pat-1" {
		t.Errorf("Details = %+v", got.Details)
	}

	bare := Issue{Severity: SeverityWarning, Code: IssueTypeValue}.R4()
	if bare.Diagnostics != nil || bare.Expression != nil || bare.Details != nil {
		t.Errorf("bare issue = %+v; want only severity and code", bare)
	}
}

func TestIssueFromError(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		kind     string
		code     IssueType
		severity IssueSeverity
		expr     string
	}{
		{
			name:     "missing required",
			doc:      `{"resourceType":"Observation","code":{"text":"x"}}`,
			kind:     "MissingRequiredField",
			code:     IssueTypeRequired,
			severity: SeverityError,
			expr:     "Observation.status",
		},
		{
			name:     "ambiguous choice",
			doc:      `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":"a","_valueBoolean":{"id":"b"}}`,
			kind:     "AmbiguousChoice",
			code:     IssueTypeStructure,
			severity: SeverityError,
			expr:     "Observation.value[x]",
		},
		{
			name:     "invalid enum",
			doc:      `{"resourceType":"Patient","gender":"robot"}`,
			kind:     "InvalidEnumValue",
			code:     IssueTypeCodeInvalid,
			severity: SeverityError,
			expr:     "Patient.gender",
		},
		{
			name:     "type mismatch",
			doc:      `{"resourceType":"Patient","active":"yes"}`,
			kind:     "TypeMismatch",
			code:     IssueTypeValue,
			severity: SeverityError,
			expr:     "Patient.active",
		},
		{
			name:     "unknown resource type",
			doc:      `{"resourceType":"DoesNotExist"}`,
			kind:     "UnknownResourceType",
			code:     IssueTypeNotSupported,
			severity: SeverityError,
			expr:     "resourceType",
		},
		{
			name:     "missing discriminator",
			doc:      `{}`,
			kind:     "MissingDiscriminator",
			code:     IssueTypeRequired,
			severity: SeverityError,
			expr:     "resourceType",
		},
		{
			name:     "malformed",
			doc:      `{"resourceType":`,
			kind:     "MalformedJSON",
			code:     IssueTypeStructure,
			severity: SeverityFatal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := ErrorKind(err); got != tt.kind {
				t.Errorf("ErrorKind() = %q; want %q", got, tt.kind)
			}

			issue := IssueFromError(err)
			if issue.Kind != tt.kind {
				t.Errorf("Kind = %q; want %q", issue.Kind, tt.kind)
			}
			if issue.Code != tt.code {
				t.Errorf("Code = %s; want %s", issue.Code, tt.code)
			}
			if issue.Severity != tt.severity {
				t.Errorf("Severity = %s; want %s", issue.Severity, tt.severity)
			}
			if tt.expr != "" && (len(issue.Expression) != 1 || issue.Expression[0] != tt.expr) {
				t.Errorf("Expression = %v; want [%s]", issue.Expression, tt.expr)
			}
			if issue.Diagnostics != err.Error() {
				t.Errorf("Diagnostics = %q; want %q", issue.Diagnostics, err.Error())
			}
		})
	}
}

func TestIssueFromError_Other(t *testing.T) {
	if got := IssueFromError(nil); got.Severity != SeverityInformation {
		t.Errorf("nil error severity = %s; want information", got.Severity)
	}

	timeout := IssueFromError(fmt.Errorf("decoding: %w", context.DeadlineExceeded))
	if timeout.Code != IssueTypeTimeout || timeout.Severity != SeverityFatal {
		t.Errorf("timeout issue = %+v", timeout)
	}

	other := IssueFromError(errors.New("disk on fire"))
	if other.Code != IssueTypeProcessing {
		t.Errorf("Code = %s; want processing", other.Code)
	}
	if ErrorKind(errors.New("x")) != "Other" || ErrorKind(nil) != "" {
		t.Error("ErrorKind of non-decode errors")
	}
}

func TestIssuesFromError_Joined(t *testing.T) {
	a := &codec.DecodeError{Kind: codec.ErrMissingRequiredField, Path: "Bundle.entry[0].resource", Field: "status"}
	b := &codec.DecodeError{Kind: codec.ErrInvalidEnumValue, Path: "Bundle.entry[1].resource", Field: "gender", Value: "robot"}

	issues := IssuesFromError(errors.Join(a, b))
	if len(issues) != 2 {
		t.Fatalf("len(issues) = %d; want 2", len(issues))
	}
	if issues[0].Expression[0] != "Bundle.entry[0].resource.status" {
		t.Errorf("issues[0].Expression = %v", issues[0].Expression)
	}
	if issues[1].Code != IssueTypeCodeInvalid {
		t.Errorf("issues[1].Code = %s", issues[1].Code)
	}
	if IssuesFromError(nil) != nil {
		t.Error("IssuesFromError(nil) should be nil")
	}
}

func TestOperationOutcome(t *testing.T) {
	_, err := Decode([]byte(`{"resourceType":"Patient","gender":"robot"}`))
	oo := OperationOutcome(err)
	if len(oo.Issue) != 1 {
		t.Fatalf("len(Issue) = %d; want 1", len(oo.Issue))
	}
	if oo.Issue[0].Code != IssueTypeCodeInvalid {
		t.Errorf("Code = %s", oo.Issue[0].Code)
	}

	// The outcome is itself a resource and round-trips through Decode.
	v, err := Decode(Encode(oo))
	if err != nil {
		t.Fatalf("Decode(outcome) error = %v", err)
	}
	if v.StructureName() != "OperationOutcome" {
		t.Errorf("StructureName() = %s", v.StructureName())
	}

	ok := OperationOutcome(nil)
	if len(ok.Issue) != 1 || ok.Issue[0].Code != IssueTypeInformational {
		t.Errorf("OperationOutcome(nil) = %+v", ok.Issue)
	}
}

func TestErrorKinds(t *testing.T) {
	kinds := ErrorKinds()
	if len(kinds) != 10 {
		t.Fatalf("len(ErrorKinds()) = %d; want 10", len(kinds))
	}
	if kinds[0] != "MissingRequiredField" || kinds[len(kinds)-1] != "MalformedJSON" {
		t.Errorf("ErrorKinds() = %v", kinds)
	}
}

func BenchmarkIssueFromError(b *testing.B) {
	err := &codec.DecodeError{Kind: codec.ErrAmbiguousChoice, Path: "Observation", Field: "value", Keys: []string{"valueString", "valueBoolean"}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IssueFromError(err)
	}
}
