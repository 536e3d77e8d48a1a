package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Meta is metadata about a resource.
type Meta struct {
	ID        *string
	Extension []Extension

	VersionID      *string
	VersionIDExt   *Element
	LastUpdated    *string
	LastUpdatedExt *Element
	Source         *string
	SourceExt      *Element
	Profile        []string
	ProfileExt     []*Element
	Security       []Coding
	Tag            []Coding
}

func (Meta) StructureName() string { return "Meta" }

func (x *Meta) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.VersionID, x.VersionIDExt = optString(o, "versionId", primitive.ID)
	x.LastUpdated, x.LastUpdatedExt = optString(o, "lastUpdated", primitive.Instant)
	x.Source, x.SourceExt = optString(o, "source", primitive.URI)
	x.Profile, x.ProfileExt = stringList(o, "profile", primitive.Canonical)
	x.Security = codec.Structs[Coding](o, "security")
	x.Tag = codec.Structs[Coding](o, "tag")
	return o.Done()
}

func (x Meta) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "versionId", x.VersionID, x.VersionIDExt)
	encString(e, "lastUpdated", x.LastUpdated, x.LastUpdatedExt)
	encString(e, "source", x.Source, x.SourceExt)
	encStrings(e, "profile", x.Profile, x.ProfileExt)
	codec.EncodeList(e, "security", x.Security)
	codec.EncodeList(e, "tag", x.Tag)
}

// Narrative is a human-readable summary of a resource.
type Narrative struct {
	ID        *string
	Extension []Extension

	Status    NarrativeStatus
	StatusExt *Element
	Div       string
}

func (Narrative) StructureName() string { return "Narrative" }

func (x *Narrative) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Status, x.StatusExt = reqEnum[NarrativeStatus](o, "status")
	x.Div = reqValue(o, "div", primitive.XHTML)
	return o.Done()
}

func (x Narrative) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encEnum(e, "status", x.Status, x.StatusExt)
	e.String("div", x.Div)
}

// Address is a postal or physical address.
type Address struct {
	ID        *string
	Extension []Extension

	Use           AddressUse
	UseExt        *Element
	Type          AddressType
	TypeExt       *Element
	Text          *string
	TextExt       *Element
	Line          []string
	LineExt       []*Element
	City          *string
	CityExt       *Element
	District      *string
	DistrictExt   *Element
	State         *string
	StateExt      *Element
	PostalCode    *string
	PostalCodeExt *Element
	Country       *string
	CountryExt    *Element
	Period        *Period
}

func (Address) StructureName() string { return "Address" }

func (x *Address) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Use, x.UseExt = optEnum[AddressUse](o, "use")
	x.Type, x.TypeExt = optEnum[AddressType](o, "type")
	x.Text, x.TextExt = optString(o, "text", primitive.String)
	x.Line, x.LineExt = stringList(o, "line", primitive.String)
	x.City, x.CityExt = optString(o, "city", primitive.String)
	x.District, x.DistrictExt = optString(o, "district", primitive.String)
	x.State, x.StateExt = optString(o, "state", primitive.String)
	x.PostalCode, x.PostalCodeExt = optString(o, "postalCode", primitive.String)
	x.Country, x.CountryExt = optString(o, "country", primitive.String)
	x.Period = codec.OptStruct[Period](o, "period")
	return o.Done()
}

func (x Address) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encEnum(e, "use", x.Use, x.UseExt)
	encEnum(e, "type", x.Type, x.TypeExt)
	encString(e, "text", x.Text, x.TextExt)
	encStrings(e, "line", x.Line, x.LineExt)
	encString(e, "city", x.City, x.CityExt)
	encString(e, "district", x.District, x.DistrictExt)
	encString(e, "state", x.State, x.StateExt)
	encString(e, "postalCode", x.PostalCode, x.PostalCodeExt)
	encString(e, "country", x.Country, x.CountryExt)
	codec.EncodeOpt(e, "period", x.Period)
}

// Annotation is a text note with attribution.
type Annotation struct {
	ID        *string
	Extension []Extension

	Author  AnnotationAuthor
	Time    *string
	TimeExt *Element
	Text    string
	TextExt *Element
}

func (Annotation) StructureName() string { return "Annotation" }

func (x *Annotation) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Author = codec.DecodeChoice[AnnotationAuthor](o, annotationAuthor)
	x.Time, x.TimeExt = optString(o, "time", primitive.DateTime)
	x.Text, x.TextExt = reqString(o, "text", primitive.Markdown)
	return o.Done()
}

func (x Annotation) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	e.Choice(annotationAuthor, x.Author)
	encString(e, "time", x.Time, x.TimeExt)
	encReqString(e, "text", x.Text, x.TextExt)
}

// Attachment is content in a format defined elsewhere, inline or by URL.
type Attachment struct {
	ID        *string
	Extension []Extension

	ContentType    *string
	ContentTypeExt *Element
	Language       *string
	LanguageExt    *Element
	Data           *string
	DataExt        *Element
	URL            *string
	URLExt         *Element
	Size           *int
	SizeExt        *Element
	Hash           *string
	HashExt        *Element
	Title          *string
	TitleExt       *Element
	Creation       *string
	CreationExt    *Element
}

func (Attachment) StructureName() string { return "Attachment" }

func (x *Attachment) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ContentType, x.ContentTypeExt = optString(o, "contentType", primitive.Code)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Data, x.DataExt = optString(o, "data", primitive.Base64Binary)
	x.URL, x.URLExt = optString(o, "url", primitive.URL)
	x.Size, x.SizeExt = optInt(o, "size", primitive.UnsignedInt)
	x.Hash, x.HashExt = optString(o, "hash", primitive.Base64Binary)
	x.Title, x.TitleExt = optString(o, "title", primitive.String)
	x.Creation, x.CreationExt = optString(o, "creation", primitive.DateTime)
	return o.Done()
}

func (x Attachment) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "contentType", x.ContentType, x.ContentTypeExt)
	encString(e, "language", x.Language, x.LanguageExt)
	encString(e, "data", x.Data, x.DataExt)
	encString(e, "url", x.URL, x.URLExt)
	encInt(e, "size", x.Size, x.SizeExt)
	encString(e, "hash", x.Hash, x.HashExt)
	encString(e, "title", x.Title, x.TitleExt)
	encString(e, "creation", x.Creation, x.CreationExt)
}

// CodeableConcept is a concept given by codes and/or text.
type CodeableConcept struct {
	ID        *string
	Extension []Extension

	Coding  []Coding
	Text    *string
	TextExt *Element
}

func (CodeableConcept) StructureName() string { return "CodeableConcept" }

func (x *CodeableConcept) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Coding = codec.Structs[Coding](o, "coding")
	x.Text, x.TextExt = optString(o, "text", primitive.String)
	return o.Done()
}

func (x CodeableConcept) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "coding", x.Coding)
	encString(e, "text", x.Text, x.TextExt)
}

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	ID        *string
	Extension []Extension

	System          *string
	SystemExt       *Element
	Version         *string
	VersionExt      *Element
	Code            *string
	CodeExt         *Element
	Display         *string
	DisplayExt      *Element
	UserSelected    *bool
	UserSelectedExt *Element
}

func (Coding) StructureName() string { return "Coding" }

func (x *Coding) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.System, x.SystemExt = optString(o, "system", primitive.URI)
	x.Version, x.VersionExt = optString(o, "version", primitive.String)
	x.Code, x.CodeExt = optString(o, "code", primitive.Code)
	x.Display, x.DisplayExt = optString(o, "display", primitive.String)
	x.UserSelected, x.UserSelectedExt = optBool(o, "userSelected")
	return o.Done()
}

func (x Coding) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "system", x.System, x.SystemExt)
	encString(e, "version", x.Version, x.VersionExt)
	encString(e, "code", x.Code, x.CodeExt)
	encString(e, "display", x.Display, x.DisplayExt)
	encBool(e, "userSelected", x.UserSelected, x.UserSelectedExt)
}

// ContactPoint is a technology mediated contact detail such as a phone number or email address.
type ContactPoint struct {
	ID        *string
	Extension []Extension

	System    ContactPointSystem
	SystemExt *Element
	Value     *string
	ValueExt  *Element
	Use       ContactPointUse
	UseExt    *Element
	Rank      *int
	RankExt   *Element
	Period    *Period
}

func (ContactPoint) StructureName() string { return "ContactPoint" }

func (x *ContactPoint) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.System, x.SystemExt = optEnum[ContactPointSystem](o, "system")
	x.Value, x.ValueExt = optString(o, "value", primitive.String)
	x.Use, x.UseExt = optEnum[ContactPointUse](o, "use")
	x.Rank, x.RankExt = optInt(o, "rank", primitive.PositiveInt)
	x.Period = codec.OptStruct[Period](o, "period")
	return o.Done()
}

func (x ContactPoint) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encEnum(e, "system", x.System, x.SystemExt)
	encString(e, "value", x.Value, x.ValueExt)
	encEnum(e, "use", x.Use, x.UseExt)
	encInt(e, "rank", x.Rank, x.RankExt)
	codec.EncodeOpt(e, "period", x.Period)
}

// HumanName is the name of a person.
type HumanName struct {
	ID        *string
	Extension []Extension

	Use       NameUse
	UseExt    *Element
	Text      *string
	TextExt   *Element
	Family    *string
	FamilyExt *Element
	Given     []string
	GivenExt  []*Element
	Prefix    []string
	PrefixExt []*Element
	Suffix    []string
	SuffixExt []*Element
	Period    *Period
}

func (HumanName) StructureName() string { return "HumanName" }

func (x *HumanName) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Use, x.UseExt = optEnum[NameUse](o, "use")
	x.Text, x.TextExt = optString(o, "text", primitive.String)
	x.Family, x.FamilyExt = optString(o, "family", primitive.String)
	x.Given, x.GivenExt = stringList(o, "given", primitive.String)
	x.Prefix, x.PrefixExt = stringList(o, "prefix", primitive.String)
	x.Suffix, x.SuffixExt = stringList(o, "suffix", primitive.String)
	x.Period = codec.OptStruct[Period](o, "period")
	return o.Done()
}

func (x HumanName) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encEnum(e, "use", x.Use, x.UseExt)
	encString(e, "text", x.Text, x.TextExt)
	encString(e, "family", x.Family, x.FamilyExt)
	encStrings(e, "given", x.Given, x.GivenExt)
	encStrings(e, "prefix", x.Prefix, x.PrefixExt)
	encStrings(e, "suffix", x.Suffix, x.SuffixExt)
	codec.EncodeOpt(e, "period", x.Period)
}

// Identifier is a business identifier, unique within its system.
type Identifier struct {
	ID        *string
	Extension []Extension

	Use       IdentifierUse
	UseExt    *Element
	Type      *CodeableConcept
	System    *string
	SystemExt *Element
	Value     *string
	ValueExt  *Element
	Period    *Period
	Assigner  *Reference
}

func (Identifier) StructureName() string { return "Identifier" }

func (x *Identifier) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Use, x.UseExt = optEnum[IdentifierUse](o, "use")
	x.Type = codec.OptStruct[CodeableConcept](o, "type")
	x.System, x.SystemExt = optString(o, "system", primitive.URI)
	x.Value, x.ValueExt = optString(o, "value", primitive.String)
	x.Period = codec.OptStruct[Period](o, "period")
	x.Assigner = codec.OptStruct[Reference](o, "assigner")
	return o.Done()
}

func (x Identifier) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encEnum(e, "use", x.Use, x.UseExt)
	codec.EncodeOpt(e, "type", x.Type)
	encString(e, "system", x.System, x.SystemExt)
	encString(e, "value", x.Value, x.ValueExt)
	codec.EncodeOpt(e, "period", x.Period)
	codec.EncodeOpt(e, "assigner", x.Assigner)
}

// Money is an amount of economic utility in some recognized currency.
type Money struct {
	ID        *string
	Extension []Extension

	Value       *primitive.Decimal
	ValueExt    *Element
	Currency    *string
	CurrencyExt *Element
}

func (Money) StructureName() string { return "Money" }

func (x *Money) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Value, x.ValueExt = optDecimal(o, "value")
	x.Currency, x.CurrencyExt = optString(o, "currency", primitive.Code)
	return o.Done()
}

func (x Money) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encDecimal(e, "value", x.Value, x.ValueExt)
	encString(e, "currency", x.Currency, x.CurrencyExt)
}

// Period is a time range defined by start and end date/time.
type Period struct {
	ID        *string
	Extension []Extension

	Start    *string
	StartExt *Element
	End      *string
	EndExt   *Element
}

func (Period) StructureName() string { return "Period" }

func (x *Period) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Start, x.StartExt = optString(o, "start", primitive.DateTime)
	x.End, x.EndExt = optString(o, "end", primitive.DateTime)
	return o.Done()
}

func (x Period) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "start", x.Start, x.StartExt)
	encString(e, "end", x.End, x.EndExt)
}

// Quantity is a measured amount, or an amount that can potentially be measured.
type Quantity struct {
	ID        *string
	Extension []Extension

	Value         *primitive.Decimal
	ValueExt      *Element
	Comparator    QuantityComparator
	ComparatorExt *Element
	Unit          *string
	UnitExt       *Element
	System        *string
	SystemExt     *Element
	Code          *string
	CodeExt       *Element
}

func (Quantity) StructureName() string { return "Quantity" }

func (x *Quantity) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Value, x.ValueExt = optDecimal(o, "value")
	x.Comparator, x.ComparatorExt = optEnum[QuantityComparator](o, "comparator")
	x.Unit, x.UnitExt = optString(o, "unit", primitive.String)
	x.System, x.SystemExt = optString(o, "system", primitive.URI)
	x.Code, x.CodeExt = optString(o, "code", primitive.Code)
	return o.Done()
}

func (x Quantity) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encDecimal(e, "value", x.Value, x.ValueExt)
	encEnum(e, "comparator", x.Comparator, x.ComparatorExt)
	encString(e, "unit", x.Unit, x.UnitExt)
	encString(e, "system", x.System, x.SystemExt)
	encString(e, "code", x.Code, x.CodeExt)
}

// Range is a set of ordered Quantities defined by a low and high limit.
type Range struct {
	ID        *string
	Extension []Extension

	Low  *Quantity
	High *Quantity
}

func (Range) StructureName() string { return "Range" }

func (x *Range) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Low = codec.OptStruct[Quantity](o, "low")
	x.High = codec.OptStruct[Quantity](o, "high")
	return o.Done()
}

func (x Range) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeOpt(e, "low", x.Low)
	codec.EncodeOpt(e, "high", x.High)
}

// Ratio is a relationship of two Quantity values expressed as a numerator and a denominator.
type Ratio struct {
	ID        *string
	Extension []Extension

	Numerator   *Quantity
	Denominator *Quantity
}

func (Ratio) StructureName() string { return "Ratio" }

func (x *Ratio) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Numerator = codec.OptStruct[Quantity](o, "numerator")
	x.Denominator = codec.OptStruct[Quantity](o, "denominator")
	return o.Done()
}

func (x Ratio) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeOpt(e, "numerator", x.Numerator)
	codec.EncodeOpt(e, "denominator", x.Denominator)
}

// Reference is a reference from one resource to another.
type Reference struct {
	ID        *string
	Extension []Extension

	Reference    *string
	ReferenceExt *Element
	Type         *string
	TypeExt      *Element
	Identifier   *Identifier
	Display      *string
	DisplayExt   *Element
}

func (Reference) StructureName() string { return "Reference" }

func (x *Reference) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Reference, x.ReferenceExt = optString(o, "reference", primitive.String)
	x.Type, x.TypeExt = optString(o, "type", primitive.URI)
	x.Identifier = codec.OptStruct[Identifier](o, "identifier")
	x.Display, x.DisplayExt = optString(o, "display", primitive.String)
	return o.Done()
}

func (x Reference) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	encString(e, "reference", x.Reference, x.ReferenceExt)
	encString(e, "type", x.Type, x.TypeExt)
	codec.EncodeOpt(e, "identifier", x.Identifier)
	encString(e, "display", x.Display, x.DisplayExt)
}

type SampledData struct {
	ID        *string
	Extension []Extension

	Origin        Quantity
	Period        *primitive.Decimal
	PeriodExt     *Element
	Factor        *primitive.Decimal
	FactorExt     *Element
	LowerLimit    *primitive.Decimal
	LowerLimitExt *Element
	UpperLimit    *primitive.Decimal
	UpperLimitExt *Element
	Dimensions    *int
	DimensionsExt *Element
	Data          *string
	DataExt       *Element
}

func (SampledData) StructureName() string { return "SampledData" }

func (x *SampledData) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Origin = codec.Struct[Quantity](o, "origin")
	x.Period, x.PeriodExt = reqDecimal(o, "period")
	x.Factor, x.FactorExt = optDecimal(o, "factor")
	x.LowerLimit, x.LowerLimitExt = optDecimal(o, "lowerLimit")
	x.UpperLimit, x.UpperLimitExt = optDecimal(o, "upperLimit")
	x.Dimensions, x.DimensionsExt = reqInt(o, "dimensions", primitive.PositiveInt)
	x.Data, x.DataExt = optString(o, "data", primitive.String)
	return o.Done()
}

func (x SampledData) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	e.Object("origin", x.Origin)
	encDecimal(e, "period", x.Period, x.PeriodExt)
	encDecimal(e, "factor", x.Factor, x.FactorExt)
	encDecimal(e, "lowerLimit", x.LowerLimit, x.LowerLimitExt)
	encDecimal(e, "upperLimit", x.UpperLimit, x.UpperLimitExt)
	encInt(e, "dimensions", x.Dimensions, x.DimensionsExt)
	encString(e, "data", x.Data, x.DataExt)
}

// Signature is a digital or electronic signature over a resource.
type Signature struct {
	ID        *string
	Extension []Extension

	Type            []Coding
	When            string
	WhenExt         *Element
	Who             Reference
	OnBehalfOf      *Reference
	TargetFormat    *string
	TargetFormatExt *Element
	SigFormat       *string
	SigFormatExt    *Element
	Data            *string
	DataExt         *Element
}

func (Signature) StructureName() string { return "Signature" }

func (x *Signature) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Type = reqList(o, "type", codec.Structs[Coding](o, "type"))
	x.When, x.WhenExt = reqString(o, "when", primitive.Instant)
	x.Who = codec.Struct[Reference](o, "who")
	x.OnBehalfOf = codec.OptStruct[Reference](o, "onBehalfOf")
	x.TargetFormat, x.TargetFormatExt = optString(o, "targetFormat", primitive.Code)
	x.SigFormat, x.SigFormatExt = optString(o, "sigFormat", primitive.Code)
	x.Data, x.DataExt = optString(o, "data", primitive.Base64Binary)
	return o.Done()
}

func (x Signature) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "type", x.Type)
	encReqString(e, "when", x.When, x.WhenExt)
	e.Object("who", x.Who)
	codec.EncodeOpt(e, "onBehalfOf", x.OnBehalfOf)
	encString(e, "targetFormat", x.TargetFormat, x.TargetFormatExt)
	encString(e, "sigFormat", x.SigFormat, x.SigFormatExt)
	encString(e, "data", x.Data, x.DataExt)
}
