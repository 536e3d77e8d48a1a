package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// OperationOutcome is a collection of error, warning or information messages.
type OperationOutcome struct {
	ID                *string
	Meta              *Meta
	ImplicitRules     *string
	ImplicitRulesExt  *Element
	Language          *string
	LanguageExt       *Element
	Text              *Narrative
	Contained         []Resource
	Extension         []Extension
	ModifierExtension []Extension

	Issue []OperationOutcomeIssue
}

func (OperationOutcome) StructureName() string { return "OperationOutcome" }

func (OperationOutcome) ResourceType() string { return "OperationOutcome" }

func (x OperationOutcome) ResourceID() *string { return x.ID }

func (x *OperationOutcome) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("OperationOutcome")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Text = codec.OptStruct[Narrative](o, "text")
	x.Contained = resourceList(o, "contained")
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Issue = reqList(o, "issue", codec.Structs[OperationOutcomeIssue](o, "issue"))
	return o.Done()
}

func (x OperationOutcome) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "OperationOutcome", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeOpt(e, "text", x.Text)
	codec.EncodeList(e, "contained", x.Contained)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "issue", x.Issue)
}

type OperationOutcomeIssue struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Severity       IssueSeverity
	SeverityExt    *Element
	Code           IssueType
	CodeExt        *Element
	Details        *CodeableConcept
	Diagnostics    *string
	DiagnosticsExt *Element
	Location       []string
	LocationExt    []*Element
	Expression     []string
	ExpressionExt  []*Element
}

func (OperationOutcomeIssue) StructureName() string { return "OperationOutcomeIssue" }

func (x *OperationOutcomeIssue) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Severity, x.SeverityExt = reqEnum[IssueSeverity](o, "severity")
	x.Code, x.CodeExt = reqEnum[IssueType](o, "code")
	x.Details = codec.OptStruct[CodeableConcept](o, "details")
	x.Diagnostics, x.DiagnosticsExt = optString(o, "diagnostics", primitive.String)
	x.Location, x.LocationExt = stringList(o, "location", primitive.String)
	x.Expression, x.ExpressionExt = stringList(o, "expression", primitive.String)
	return o.Done()
}

func (x OperationOutcomeIssue) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encEnum(e, "severity", x.Severity, x.SeverityExt)
	encEnum(e, "code", x.Code, x.CodeExt)
	codec.EncodeOpt(e, "details", x.Details)
	encString(e, "diagnostics", x.Diagnostics, x.DiagnosticsExt)
	encStrings(e, "location", x.Location, x.LocationExt)
	encStrings(e, "expression", x.Expression, x.ExpressionExt)
}
