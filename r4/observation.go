package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Observation is a measurement or simple assertion made about a subject.
type Observation struct {
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

	Identifier       []Identifier
	BasedOn          []Reference
	PartOf           []Reference
	Status           ObservationStatus
	StatusExt        *Element
	Category         []CodeableConcept
	Code             CodeableConcept
	Subject          *Reference
	Focus            []Reference
	Encounter        *Reference
	Effective        ObservationEffective
	Issued           *string
	IssuedExt        *Element
	Performer        []Reference
	Value            ObservationValue
	DataAbsentReason *CodeableConcept
	Interpretation   []CodeableConcept
	Note             []Annotation
	BodySite         *CodeableConcept
	Method           *CodeableConcept
	Specimen         *Reference
	Device           *Reference
	ReferenceRange   []ObservationReferenceRange
	HasMember        []Reference
	DerivedFrom      []Reference
	Component        []ObservationComponent
}

func (Observation) StructureName() string { return "Observation" }

func (Observation) ResourceType() string { return "Observation" }

func (x Observation) ResourceID() *string { return x.ID }

func (x *Observation) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("Observation")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Text = codec.OptStruct[Narrative](o, "text")
	x.Contained = resourceList(o, "contained")
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Identifier = codec.Structs[Identifier](o, "identifier")
	x.BasedOn = codec.Structs[Reference](o, "basedOn")
	x.PartOf = codec.Structs[Reference](o, "partOf")
	x.Status, x.StatusExt = reqEnum[ObservationStatus](o, "status")
	x.Category = codec.Structs[CodeableConcept](o, "category")
	x.Code = codec.Struct[CodeableConcept](o, "code")
	x.Subject = codec.OptStruct[Reference](o, "subject")
	x.Focus = codec.Structs[Reference](o, "focus")
	x.Encounter = codec.OptStruct[Reference](o, "encounter")
	x.Effective = codec.DecodeChoice[ObservationEffective](o, observationEffective)
	x.Issued, x.IssuedExt = optString(o, "issued", primitive.Instant)
	x.Performer = codec.Structs[Reference](o, "performer")
	x.Value = codec.DecodeChoice[ObservationValue](o, observationValue)
	x.DataAbsentReason = codec.OptStruct[CodeableConcept](o, "dataAbsentReason")
	x.Interpretation = codec.Structs[CodeableConcept](o, "interpretation")
	x.Note = codec.Structs[Annotation](o, "note")
	x.BodySite = codec.OptStruct[CodeableConcept](o, "bodySite")
	x.Method = codec.OptStruct[CodeableConcept](o, "method")
	x.Specimen = codec.OptStruct[Reference](o, "specimen")
	x.Device = codec.OptStruct[Reference](o, "device")
	x.ReferenceRange = codec.Structs[ObservationReferenceRange](o, "referenceRange")
	x.HasMember = codec.Structs[Reference](o, "hasMember")
	x.DerivedFrom = codec.Structs[Reference](o, "derivedFrom")
	x.Component = codec.Structs[ObservationComponent](o, "component")
	return o.Done()
}

func (x Observation) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "Observation", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeOpt(e, "text", x.Text)
	codec.EncodeList(e, "contained", x.Contained)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "identifier", x.Identifier)
	codec.EncodeList(e, "basedOn", x.BasedOn)
	codec.EncodeList(e, "partOf", x.PartOf)
	encEnum(e, "status", x.Status, x.StatusExt)
	codec.EncodeList(e, "category", x.Category)
	e.Object("code", x.Code)
	codec.EncodeOpt(e, "subject", x.Subject)
	codec.EncodeList(e, "focus", x.Focus)
	codec.EncodeOpt(e, "encounter", x.Encounter)
	e.Choice(observationEffective, x.Effective)
	encString(e, "issued", x.Issued, x.IssuedExt)
	codec.EncodeList(e, "performer", x.Performer)
	e.Choice(observationValue, x.Value)
	codec.EncodeOpt(e, "dataAbsentReason", x.DataAbsentReason)
	codec.EncodeList(e, "interpretation", x.Interpretation)
	codec.EncodeList(e, "note", x.Note)
	codec.EncodeOpt(e, "bodySite", x.BodySite)
	codec.EncodeOpt(e, "method", x.Method)
	codec.EncodeOpt(e, "specimen", x.Specimen)
	codec.EncodeOpt(e, "device", x.Device)
	codec.EncodeList(e, "referenceRange", x.ReferenceRange)
	codec.EncodeList(e, "hasMember", x.HasMember)
	codec.EncodeList(e, "derivedFrom", x.DerivedFrom)
	codec.EncodeList(e, "component", x.Component)
}

type ObservationReferenceRange struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Low       *Quantity
	High      *Quantity
	Type      *CodeableConcept
	AppliesTo []CodeableConcept
	Age       *Range
	Text      *string
	TextExt   *Element
}

func (ObservationReferenceRange) StructureName() string { return "ObservationReferenceRange" }

func (x *ObservationReferenceRange) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Low = codec.OptStruct[Quantity](o, "low")
	x.High = codec.OptStruct[Quantity](o, "high")
	x.Type = codec.OptStruct[CodeableConcept](o, "type")
	x.AppliesTo = codec.Structs[CodeableConcept](o, "appliesTo")
	x.Age = codec.OptStruct[Range](o, "age")
	x.Text, x.TextExt = optString(o, "text", primitive.String)
	return o.Done()
}

func (x ObservationReferenceRange) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeOpt(e, "low", x.Low)
	codec.EncodeOpt(e, "high", x.High)
	codec.EncodeOpt(e, "type", x.Type)
	codec.EncodeList(e, "appliesTo", x.AppliesTo)
	codec.EncodeOpt(e, "age", x.Age)
	encString(e, "text", x.Text, x.TextExt)
}

// ObservationComponent is one result of a multi-component observation such as blood pressure.
type ObservationComponent struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Code             CodeableConcept
	Value            ObservationValue
	DataAbsentReason *CodeableConcept
	Interpretation   []CodeableConcept
	ReferenceRange   []ObservationReferenceRange
}

func (ObservationComponent) StructureName() string { return "ObservationComponent" }

func (x *ObservationComponent) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Code = codec.Struct[CodeableConcept](o, "code")
	x.Value = codec.DecodeChoice[ObservationValue](o, observationComponentValue)
	x.DataAbsentReason = codec.OptStruct[CodeableConcept](o, "dataAbsentReason")
	x.Interpretation = codec.Structs[CodeableConcept](o, "interpretation")
	x.ReferenceRange = codec.Structs[ObservationReferenceRange](o, "referenceRange")
	return o.Done()
}

func (x ObservationComponent) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	e.Object("code", x.Code)
	e.Choice(observationComponentValue, x.Value)
	codec.EncodeOpt(e, "dataAbsentReason", x.DataAbsentReason)
	codec.EncodeList(e, "interpretation", x.Interpretation)
	codec.EncodeList(e, "referenceRange", x.ReferenceRange)
}
