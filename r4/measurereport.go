package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// MeasureReport holds the results of a measure evaluation.
type MeasureReport struct {
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

	Identifier          []Identifier
	Status              MeasureReportStatus
	StatusExt           *Element
	Type                MeasureReportType
	TypeExt             *Element
	Measure             string
	MeasureExt          *Element
	Subject             *Reference
	Date                *string
	DateExt             *Element
	Reporter            *Reference
	Period              Period
	ImprovementNotation *CodeableConcept
	Group               []MeasureReportGroup
	EvaluatedResource   []Reference
}

func (MeasureReport) StructureName() string { return "MeasureReport" }

func (MeasureReport) ResourceType() string { return "MeasureReport" }

func (x MeasureReport) ResourceID() *string { return x.ID }

func (x *MeasureReport) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("MeasureReport")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Text = codec.OptStruct[Narrative](o, "text")
	x.Contained = resourceList(o, "contained")
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Identifier = codec.Structs[Identifier](o, "identifier")
	x.Status, x.StatusExt = reqEnum[MeasureReportStatus](o, "status")
	x.Type, x.TypeExt = reqEnum[MeasureReportType](o, "type")
	x.Measure, x.MeasureExt = reqString(o, "measure", primitive.Canonical)
	x.Subject = codec.OptStruct[Reference](o, "subject")
	x.Date, x.DateExt = optString(o, "date", primitive.DateTime)
	x.Reporter = codec.OptStruct[Reference](o, "reporter")
	x.Period = codec.Struct[Period](o, "period")
	x.ImprovementNotation = codec.OptStruct[CodeableConcept](o, "improvementNotation")
	x.Group = codec.Structs[MeasureReportGroup](o, "group")
	x.EvaluatedResource = codec.Structs[Reference](o, "evaluatedResource")
	return o.Done()
}

func (x MeasureReport) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "MeasureReport", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeOpt(e, "text", x.Text)
	codec.EncodeList(e, "contained", x.Contained)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "identifier", x.Identifier)
	encEnum(e, "status", x.Status, x.StatusExt)
	encEnum(e, "type", x.Type, x.TypeExt)
	encReqString(e, "measure", x.Measure, x.MeasureExt)
	codec.EncodeOpt(e, "subject", x.Subject)
	encString(e, "date", x.Date, x.DateExt)
	codec.EncodeOpt(e, "reporter", x.Reporter)
	e.Object("period", x.Period)
	codec.EncodeOpt(e, "improvementNotation", x.ImprovementNotation)
	codec.EncodeList(e, "group", x.Group)
	codec.EncodeList(e, "evaluatedResource", x.EvaluatedResource)
}

type MeasureReportGroup struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Code         *CodeableConcept
	Population   []MeasureReportGroupPopulation
	MeasureScore *Quantity
	Stratifier   []MeasureReportGroupStratifier
}

func (MeasureReportGroup) StructureName() string { return "MeasureReportGroup" }

func (x *MeasureReportGroup) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Code = codec.OptStruct[CodeableConcept](o, "code")
	x.Population = codec.Structs[MeasureReportGroupPopulation](o, "population")
	x.MeasureScore = codec.OptStruct[Quantity](o, "measureScore")
	x.Stratifier = codec.Structs[MeasureReportGroupStratifier](o, "stratifier")
	return o.Done()
}

func (x MeasureReportGroup) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeOpt(e, "code", x.Code)
	codec.EncodeList(e, "population", x.Population)
	codec.EncodeOpt(e, "measureScore", x.MeasureScore)
	codec.EncodeList(e, "stratifier", x.Stratifier)
}

type MeasureReportGroupPopulation struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Code           *CodeableConcept
	Count          *int
	CountExt       *Element
	SubjectResults *Reference
}

func (MeasureReportGroupPopulation) StructureName() string { return "MeasureReportGroupPopulation" }

func (x *MeasureReportGroupPopulation) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Code = codec.OptStruct[CodeableConcept](o, "code")
	x.Count, x.CountExt = optInt(o, "count", primitive.Integer)
	x.SubjectResults = codec.OptStruct[Reference](o, "subjectResults")
	return o.Done()
}

func (x MeasureReportGroupPopulation) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeOpt(e, "code", x.Code)
	encInt(e, "count", x.Count, x.CountExt)
	codec.EncodeOpt(e, "subjectResults", x.SubjectResults)
}

type MeasureReportGroupStratifier struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Code    []CodeableConcept
	Stratum []MeasureReportGroupStratifierStratum
}

func (MeasureReportGroupStratifier) StructureName() string { return "MeasureReportGroupStratifier" }

func (x *MeasureReportGroupStratifier) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Code = codec.Structs[CodeableConcept](o, "code")
	x.Stratum = codec.Structs[MeasureReportGroupStratifierStratum](o, "stratum")
	return o.Done()
}

func (x MeasureReportGroupStratifier) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "code", x.Code)
	codec.EncodeList(e, "stratum", x.Stratum)
}

type MeasureReportGroupStratifierStratum struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Value        *CodeableConcept
	Component    []MeasureReportGroupStratifierStratumComponent
	Population   []MeasureReportGroupStratifierStratumPopulation
	MeasureScore *Quantity
}

func (MeasureReportGroupStratifierStratum) StructureName() string { return "MeasureReportGroupStratifierStratum" }

func (x *MeasureReportGroupStratifierStratum) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Value = codec.OptStruct[CodeableConcept](o, "value")
	x.Component = codec.Structs[MeasureReportGroupStratifierStratumComponent](o, "component")
	x.Population = codec.Structs[MeasureReportGroupStratifierStratumPopulation](o, "population")
	x.MeasureScore = codec.OptStruct[Quantity](o, "measureScore")
	return o.Done()
}

func (x MeasureReportGroupStratifierStratum) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeOpt(e, "value", x.Value)
	codec.EncodeList(e, "component", x.Component)
	codec.EncodeList(e, "population", x.Population)
	codec.EncodeOpt(e, "measureScore", x.MeasureScore)
}

type MeasureReportGroupStratifierStratumComponent struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Code  CodeableConcept
	Value CodeableConcept
}

func (MeasureReportGroupStratifierStratumComponent) StructureName() string { return "MeasureReportGroupStratifierStratumComponent" }

func (x *MeasureReportGroupStratifierStratumComponent) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Code = codec.Struct[CodeableConcept](o, "code")
	x.Value = codec.Struct[CodeableConcept](o, "value")
	return o.Done()
}

func (x MeasureReportGroupStratifierStratumComponent) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	e.Object("code", x.Code)
	e.Object("value", x.Value)
}

type MeasureReportGroupStratifierStratumPopulation struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Code           *CodeableConcept
	Count          *int
	CountExt       *Element
	SubjectResults *Reference
}

func (MeasureReportGroupStratifierStratumPopulation) StructureName() string { return "MeasureReportGroupStratifierStratumPopulation" }

func (x *MeasureReportGroupStratifierStratumPopulation) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Code = codec.OptStruct[CodeableConcept](o, "code")
	x.Count, x.CountExt = optInt(o, "count", primitive.Integer)
	x.SubjectResults = codec.OptStruct[Reference](o, "subjectResults")
	return o.Done()
}

func (x MeasureReportGroupStratifierStratumPopulation) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeOpt(e, "code", x.Code)
	encInt(e, "count", x.Count, x.CountExt)
	codec.EncodeOpt(e, "subjectResults", x.SubjectResults)
}
