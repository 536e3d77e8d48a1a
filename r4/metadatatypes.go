package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// ContactDetail names a contact party and their contact points.
type ContactDetail struct {
	ID        *string
	Extension []Extension

	Name    *string
	NameExt *Element
	Telecom []ContactPoint
}

func (ContactDetail) StructureName() string { return "ContactDetail" }

func (x *ContactDetail) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Name, x.NameExt = optString(o, "name", primitive.String)
	x.Telecom = codec.Structs[ContactPoint](o, "telecom")
	return o.Done()
}

func (x ContactDetail) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "name", x.Name, x.NameExt)
	codec.EncodeList(e, "telecom", x.Telecom)
}

type Contributor struct {
	ID        *string
	Extension []Extension

	Type    ContributorType
	TypeExt *Element
	Name    string
	NameExt *Element
	Contact []ContactDetail
}

func (Contributor) StructureName() string { return "Contributor" }

func (x *Contributor) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Type, x.TypeExt = reqEnum[ContributorType](o, "type")
	x.Name, x.NameExt = reqString(o, "name", primitive.String)
	x.Contact = codec.Structs[ContactDetail](o, "contact")
	return o.Done()
}

func (x Contributor) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encEnum(e, "type", x.Type, x.TypeExt)
	encReqString(e, "name", x.Name, x.NameExt)
	codec.EncodeList(e, "contact", x.Contact)
}

// DataRequirement describes a required data item for evaluation.
type DataRequirement struct {
	ID        *string
	Extension []Extension

	Type           string
	TypeExt        *Element
	Profile        []string
	ProfileExt     []*Element
	Subject        DataRequirementSubject
	MustSupport    []string
	MustSupportExt []*Element
	CodeFilter     []DataRequirementCodeFilter
	DateFilter     []DataRequirementDateFilter
	Limit          *int
	LimitExt       *Element
	Sort           []DataRequirementSort
}

func (DataRequirement) StructureName() string { return "DataRequirement" }

func (x *DataRequirement) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Type, x.TypeExt = reqString(o, "type", primitive.Code)
	x.Profile, x.ProfileExt = stringList(o, "profile", primitive.Canonical)
	x.Subject = codec.DecodeChoice[DataRequirementSubject](o, dataRequirementSubject)
	x.MustSupport, x.MustSupportExt = stringList(o, "mustSupport", primitive.String)
	x.CodeFilter = codec.Structs[DataRequirementCodeFilter](o, "codeFilter")
	x.DateFilter = codec.Structs[DataRequirementDateFilter](o, "dateFilter")
	x.Limit, x.LimitExt = optInt(o, "limit", primitive.PositiveInt)
	x.Sort = codec.Structs[DataRequirementSort](o, "sort")
	return o.Done()
}

func (x DataRequirement) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encReqString(e, "type", x.Type, x.TypeExt)
	encStrings(e, "profile", x.Profile, x.ProfileExt)
	e.Choice(dataRequirementSubject, x.Subject)
	encStrings(e, "mustSupport", x.MustSupport, x.MustSupportExt)
	codec.EncodeList(e, "codeFilter", x.CodeFilter)
	codec.EncodeList(e, "dateFilter", x.DateFilter)
	encInt(e, "limit", x.Limit, x.LimitExt)
	codec.EncodeList(e, "sort", x.Sort)
}

type DataRequirementCodeFilter struct {
	ID        *string
	Extension []Extension

	Path           *string
	PathExt        *Element
	SearchParam    *string
	SearchParamExt *Element
	ValueSet       *string
	ValueSetExt    *Element
	Code           []Coding
}

func (DataRequirementCodeFilter) StructureName() string { return "DataRequirementCodeFilter" }

func (x *DataRequirementCodeFilter) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Path, x.PathExt = optString(o, "path", primitive.String)
	x.SearchParam, x.SearchParamExt = optString(o, "searchParam", primitive.String)
	x.ValueSet, x.ValueSetExt = optString(o, "valueSet", primitive.Canonical)
	x.Code = codec.Structs[Coding](o, "code")
	return o.Done()
}

func (x DataRequirementCodeFilter) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "path", x.Path, x.PathExt)
	encString(e, "searchParam", x.SearchParam, x.SearchParamExt)
	encString(e, "valueSet", x.ValueSet, x.ValueSetExt)
	codec.EncodeList(e, "code", x.Code)
}

type DataRequirementDateFilter struct {
	ID        *string
	Extension []Extension

	Path           *string
	PathExt        *Element
	SearchParam    *string
	SearchParamExt *Element
	Value          DataRequirementDateFilterValue
}

func (DataRequirementDateFilter) StructureName() string { return "DataRequirementDateFilter" }

func (x *DataRequirementDateFilter) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Path, x.PathExt = optString(o, "path", primitive.String)
	x.SearchParam, x.SearchParamExt = optString(o, "searchParam", primitive.String)
	x.Value = codec.DecodeChoice[DataRequirementDateFilterValue](o, dataRequirementDateFilterValue)
	return o.Done()
}

func (x DataRequirementDateFilter) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "path", x.Path, x.PathExt)
	encString(e, "searchParam", x.SearchParam, x.SearchParamExt)
	e.Choice(dataRequirementDateFilterValue, x.Value)
}

type DataRequirementSort struct {
	ID        *string
	Extension []Extension

	Path         string
	PathExt      *Element
	Direction    SortDirection
	DirectionExt *Element
}

func (DataRequirementSort) StructureName() string { return "DataRequirementSort" }

func (x *DataRequirementSort) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Path, x.PathExt = reqString(o, "path", primitive.String)
	x.Direction, x.DirectionExt = reqEnum[SortDirection](o, "direction")
	return o.Done()
}

func (x DataRequirementSort) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encReqString(e, "path", x.Path, x.PathExt)
	encEnum(e, "direction", x.Direction, x.DirectionExt)
}

// Expression is an expression in a named language, such as FHIRPath or CQL.
type Expression struct {
	ID        *string
	Extension []Extension

	Description    *string
	DescriptionExt *Element
	Name           *string
	NameExt        *Element
	Language       string
	LanguageExt    *Element
	Expression     *string
	ExpressionExt  *Element
	Reference      *string
	ReferenceExt   *Element
}

func (Expression) StructureName() string { return "Expression" }

func (x *Expression) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Description, x.DescriptionExt = optString(o, "description", primitive.String)
	x.Name, x.NameExt = optString(o, "name", primitive.ID)
	x.Language, x.LanguageExt = reqString(o, "language", primitive.Code)
	x.Expression, x.ExpressionExt = optString(o, "expression", primitive.String)
	x.Reference, x.ReferenceExt = optString(o, "reference", primitive.URI)
	return o.Done()
}

func (x Expression) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "description", x.Description, x.DescriptionExt)
	encString(e, "name", x.Name, x.NameExt)
	encReqString(e, "language", x.Language, x.LanguageExt)
	encString(e, "expression", x.Expression, x.ExpressionExt)
	encString(e, "reference", x.Reference, x.ReferenceExt)
}

type ParameterDefinition struct {
	ID        *string
	Extension []Extension

	Name             *string
	NameExt          *Element
	Use              ParameterUse
	UseExt           *Element
	Min              *int
	MinExt           *Element
	Max              *string
	MaxExt           *Element
	Documentation    *string
	DocumentationExt *Element
	Type             string
	TypeExt          *Element
	Profile          *string
	ProfileExt       *Element
}

func (ParameterDefinition) StructureName() string { return "ParameterDefinition" }

func (x *ParameterDefinition) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Name, x.NameExt = optString(o, "name", primitive.Code)
	x.Use, x.UseExt = reqEnum[ParameterUse](o, "use")
	x.Min, x.MinExt = optInt(o, "min", primitive.Integer)
	x.Max, x.MaxExt = optString(o, "max", primitive.String)
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.String)
	x.Type, x.TypeExt = reqString(o, "type", primitive.Code)
	x.Profile, x.ProfileExt = optString(o, "profile", primitive.Canonical)
	return o.Done()
}

func (x ParameterDefinition) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "name", x.Name, x.NameExt)
	encEnum(e, "use", x.Use, x.UseExt)
	encInt(e, "min", x.Min, x.MinExt)
	encString(e, "max", x.Max, x.MaxExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
	encReqString(e, "type", x.Type, x.TypeExt)
	encString(e, "profile", x.Profile, x.ProfileExt)
}

type RelatedArtifact struct {
	ID        *string
	Extension []Extension

	Type        RelatedArtifactType
	TypeExt     *Element
	Label       *string
	LabelExt    *Element
	Display     *string
	DisplayExt  *Element
	Citation    *string
	CitationExt *Element
	URL         *string
	URLExt      *Element
	Document    *Attachment
	Resource    *string
	ResourceExt *Element
}

func (RelatedArtifact) StructureName() string { return "RelatedArtifact" }

func (x *RelatedArtifact) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Type, x.TypeExt = reqEnum[RelatedArtifactType](o, "type")
	x.Label, x.LabelExt = optString(o, "label", primitive.String)
	x.Display, x.DisplayExt = optString(o, "display", primitive.String)
	x.Citation, x.CitationExt = optString(o, "citation", primitive.Markdown)
	x.URL, x.URLExt = optString(o, "url", primitive.URL)
	x.Document = codec.OptStruct[Attachment](o, "document")
	x.Resource, x.ResourceExt = optString(o, "resource", primitive.Canonical)
	return o.Done()
}

func (x RelatedArtifact) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encEnum(e, "type", x.Type, x.TypeExt)
	encString(e, "label", x.Label, x.LabelExt)
	encString(e, "display", x.Display, x.DisplayExt)
	encString(e, "citation", x.Citation, x.CitationExt)
	encString(e, "url", x.URL, x.URLExt)
	codec.EncodeOpt(e, "document", x.Document)
	encString(e, "resource", x.Resource, x.ResourceExt)
}

// TriggerDefinition describes a triggering event for a knowledge artifact.
type TriggerDefinition struct {
	ID        *string
	Extension []Extension

	Type      TriggerType
	TypeExt   *Element
	Name      *string
	NameExt   *Element
	Timing    TriggerDefinitionTiming
	Data      []DataRequirement
	Condition *Expression
}

func (TriggerDefinition) StructureName() string { return "TriggerDefinition" }

func (x *TriggerDefinition) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Type, x.TypeExt = reqEnum[TriggerType](o, "type")
	x.Name, x.NameExt = optString(o, "name", primitive.String)
	x.Timing = codec.DecodeChoice[TriggerDefinitionTiming](o, triggerDefinitionTiming)
	x.Data = codec.Structs[DataRequirement](o, "data")
	x.Condition = codec.OptStruct[Expression](o, "condition")
	return o.Done()
}

func (x TriggerDefinition) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encEnum(e, "type", x.Type, x.TypeExt)
	encString(e, "name", x.Name, x.NameExt)
	e.Choice(triggerDefinitionTiming, x.Timing)
	codec.EncodeList(e, "data", x.Data)
	codec.EncodeOpt(e, "condition", x.Condition)
}

type UsageContext struct {
	ID        *string
	Extension []Extension

	Code  Coding
	Value UsageContextValue
}

func (UsageContext) StructureName() string { return "UsageContext" }

func (x *UsageContext) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Code = codec.Struct[Coding](o, "code")
	x.Value = codec.DecodeChoice[UsageContextValue](o, usageContextValue)
	return o.Done()
}

func (x UsageContext) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	e.Object("code", x.Code)
	e.Choice(usageContextValue, x.Value)
}
