package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Each choice group is a sealed interface. Only the variant types listed in
// the group's table implement it, so a field can hold at most one variant and
// code outside this package cannot add new ones.

// AnyValue is the value[x] of Extension and Parameters.parameter: any FHIR data type.
// Variants: *Base64Binary, *Boolean, *Canonical, *Code, *Date, *DateTime, *Decimal, *ID, *Instant, *Integer, *Markdown, *OID, *PositiveInt, *String, *Time, *UnsignedInt, *URI, *URL, *UUID, *Address, *Age, *Annotation, *Attachment, *CodeableConcept, *Coding, *ContactPoint, *Count, *Distance, *Duration, *HumanName, *Identifier, *Money, *Period, *Quantity, *Range, *Ratio, *Reference, *SampledData, *Signature, *Timing, *ContactDetail, *Contributor, *DataRequirement, *Expression, *ParameterDefinition, *RelatedArtifact, *TriggerDefinition, *UsageContext, *Dosage, *Meta.
type AnyValue interface {
	codec.ChoiceValue
	isAnyValue()
}

// ObservationValue is Observation.value[x] and Observation.component.value[x].
// Variants: *Quantity, *CodeableConcept, *String, *Boolean, *Integer, *Range, *Ratio, *SampledData, *Time, *DateTime, *Period.
type ObservationValue interface {
	codec.ChoiceValue
	isObservationValue()
}

// ObservationEffective is Observation.effective[x].
// Variants: *DateTime, *Period, *Timing, *Instant.
type ObservationEffective interface {
	codec.ChoiceValue
	isObservationEffective()
}

// PatientDeceased is Patient.deceased[x].
// Variants: *Boolean, *DateTime.
type PatientDeceased interface {
	codec.ChoiceValue
	isPatientDeceased()
}

// PatientMultipleBirth is Patient.multipleBirth[x].
// Variants: *Boolean, *Integer.
type PatientMultipleBirth interface {
	codec.ChoiceValue
	isPatientMultipleBirth()
}

// CommunicationPayloadContent is Communication.payload.content[x].
// Variants: *String, *Attachment, *Reference.
type CommunicationPayloadContent interface {
	codec.ChoiceValue
	isCommunicationPayloadContent()
}

// AnnotationAuthor is Annotation.author[x].
// Variants: *Reference, *String.
type AnnotationAuthor interface {
	codec.ChoiceValue
	isAnnotationAuthor()
}

// DosageAsNeeded is Dosage.asNeeded[x].
// Variants: *Boolean, *CodeableConcept.
type DosageAsNeeded interface {
	codec.ChoiceValue
	isDosageAsNeeded()
}

// DosageDoseAndRateDose is Dosage.doseAndRate.dose[x].
// Variants: *Range, *Quantity.
type DosageDoseAndRateDose interface {
	codec.ChoiceValue
	isDosageDoseAndRateDose()
}

// DosageDoseAndRateRate is Dosage.doseAndRate.rate[x].
// Variants: *Ratio, *Range, *Quantity.
type DosageDoseAndRateRate interface {
	codec.ChoiceValue
	isDosageDoseAndRateRate()
}

// TimingRepeatBounds is Timing.repeat.bounds[x].
// Variants: *Duration, *Range, *Period.
type TimingRepeatBounds interface {
	codec.ChoiceValue
	isTimingRepeatBounds()
}

// DataRequirementSubject is DataRequirement.subject[x].
// Variants: *CodeableConcept, *Reference.
type DataRequirementSubject interface {
	codec.ChoiceValue
	isDataRequirementSubject()
}

// DataRequirementDateFilterValue is DataRequirement.dateFilter.value[x].
// Variants: *DateTime, *Period, *Duration.
type DataRequirementDateFilterValue interface {
	codec.ChoiceValue
	isDataRequirementDateFilterValue()
}

// TriggerDefinitionTiming is TriggerDefinition.timing[x].
// Variants: *Timing, *Reference, *Date, *DateTime.
type TriggerDefinitionTiming interface {
	codec.ChoiceValue
	isTriggerDefinitionTiming()
}

// UsageContextValue is UsageContext.value[x].
// Variants: *CodeableConcept, *Quantity, *Range, *Reference.
type UsageContextValue interface {
	codec.ChoiceValue
	isUsageContextValue()
}

// Primitive variants carry an optional value and the extensions of the
// "_" sibling member; either may be absent, not both.
type (
	Base64Binary struct {
		Value *string
		Ext   *Element
	}

	Boolean struct {
		Value *bool
		Ext   *Element
	}

	Canonical struct {
		Value *string
		Ext   *Element
	}

	Code struct {
		Value *string
		Ext   *Element
	}

	Date struct {
		Value *string
		Ext   *Element
	}

	DateTime struct {
		Value *string
		Ext   *Element
	}

	Decimal struct {
		Value *primitive.Decimal
		Ext   *Element
	}

	ID struct {
		Value *string
		Ext   *Element
	}

	Instant struct {
		Value *string
		Ext   *Element
	}

	Integer struct {
		Value *int
		Ext   *Element
	}

	Markdown struct {
		Value *string
		Ext   *Element
	}

	OID struct {
		Value *string
		Ext   *Element
	}

	PositiveInt struct {
		Value *int
		Ext   *Element
	}

	String struct {
		Value *string
		Ext   *Element
	}

	Time struct {
		Value *string
		Ext   *Element
	}

	UnsignedInt struct {
		Value *int
		Ext   *Element
	}

	URI struct {
		Value *string
		Ext   *Element
	}

	URL struct {
		Value *string
		Ext   *Element
	}

	UUID struct {
		Value *string
		Ext   *Element
	}
)

func (*Base64Binary) ChoiceSuffix() string { return "Base64Binary" }

func (v *Base64Binary) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*Base64Binary) isAnyValue() {}

func (*Boolean) ChoiceSuffix() string { return "Boolean" }

func (v *Boolean) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encBool(e, key, v.Value, v.Ext)
}

func (*Boolean) isAnyValue() {}
func (*Boolean) isObservationValue() {}
func (*Boolean) isPatientDeceased() {}
func (*Boolean) isPatientMultipleBirth() {}
func (*Boolean) isDosageAsNeeded() {}

func (*Canonical) ChoiceSuffix() string { return "Canonical" }

func (v *Canonical) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*Canonical) isAnyValue() {}

func (*Code) ChoiceSuffix() string { return "Code" }

func (v *Code) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*Code) isAnyValue() {}

func (*Date) ChoiceSuffix() string { return "Date" }

func (v *Date) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*Date) isAnyValue() {}
func (*Date) isTriggerDefinitionTiming() {}

func (*DateTime) ChoiceSuffix() string { return "DateTime" }

func (v *DateTime) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*DateTime) isAnyValue() {}
func (*DateTime) isObservationValue() {}
func (*DateTime) isObservationEffective() {}
func (*DateTime) isPatientDeceased() {}
func (*DateTime) isDataRequirementDateFilterValue() {}
func (*DateTime) isTriggerDefinitionTiming() {}

func (*Decimal) ChoiceSuffix() string { return "Decimal" }

func (v *Decimal) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encDecimal(e, key, v.Value, v.Ext)
}

func (*Decimal) isAnyValue() {}

func (*ID) ChoiceSuffix() string { return "Id" }

func (v *ID) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*ID) isAnyValue() {}

func (*Instant) ChoiceSuffix() string { return "Instant" }

func (v *Instant) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*Instant) isAnyValue() {}
func (*Instant) isObservationEffective() {}

func (*Integer) ChoiceSuffix() string { return "Integer" }

func (v *Integer) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encInt(e, key, v.Value, v.Ext)
}

func (*Integer) isAnyValue() {}
func (*Integer) isObservationValue() {}
func (*Integer) isPatientMultipleBirth() {}

func (*Markdown) ChoiceSuffix() string { return "Markdown" }

func (v *Markdown) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*Markdown) isAnyValue() {}

func (*OID) ChoiceSuffix() string { return "Oid" }

func (v *OID) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*OID) isAnyValue() {}

func (*PositiveInt) ChoiceSuffix() string { return "PositiveInt" }

func (v *PositiveInt) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encInt(e, key, v.Value, v.Ext)
}

func (*PositiveInt) isAnyValue() {}

func (*String) ChoiceSuffix() string { return "String" }

func (v *String) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*String) isAnyValue() {}
func (*String) isObservationValue() {}
func (*String) isCommunicationPayloadContent() {}
func (*String) isAnnotationAuthor() {}

func (*Time) ChoiceSuffix() string { return "Time" }

func (v *Time) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*Time) isAnyValue() {}
func (*Time) isObservationValue() {}

func (*UnsignedInt) ChoiceSuffix() string { return "UnsignedInt" }

func (v *UnsignedInt) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encInt(e, key, v.Value, v.Ext)
}

func (*UnsignedInt) isAnyValue() {}

func (*URI) ChoiceSuffix() string { return "Uri" }

func (v *URI) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*URI) isAnyValue() {}

func (*URL) ChoiceSuffix() string { return "Url" }

func (v *URL) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*URL) isAnyValue() {}

func (*UUID) ChoiceSuffix() string { return "Uuid" }

func (v *UUID) EncodeChoice(e *codec.ObjectEncoder, key string) {
	encString(e, key, v.Value, v.Ext)
}

func (*UUID) isAnyValue() {}

func (*Address) ChoiceSuffix() string { return "Address" }

func (x *Address) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Address) isAnyValue() {}

func (*Age) ChoiceSuffix() string { return "Age" }

func (x *Age) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Age) isAnyValue() {}

func (*Annotation) ChoiceSuffix() string { return "Annotation" }

func (x *Annotation) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Annotation) isAnyValue() {}

func (*Attachment) ChoiceSuffix() string { return "Attachment" }

func (x *Attachment) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Attachment) isAnyValue() {}
func (*Attachment) isCommunicationPayloadContent() {}

func (*CodeableConcept) ChoiceSuffix() string { return "CodeableConcept" }

func (x *CodeableConcept) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*CodeableConcept) isAnyValue() {}
func (*CodeableConcept) isObservationValue() {}
func (*CodeableConcept) isDosageAsNeeded() {}
func (*CodeableConcept) isDataRequirementSubject() {}
func (*CodeableConcept) isUsageContextValue() {}

func (*Coding) ChoiceSuffix() string { return "Coding" }

func (x *Coding) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Coding) isAnyValue() {}

func (*ContactPoint) ChoiceSuffix() string { return "ContactPoint" }

func (x *ContactPoint) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*ContactPoint) isAnyValue() {}

func (*Count) ChoiceSuffix() string { return "Count" }

func (x *Count) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Count) isAnyValue() {}

func (*Distance) ChoiceSuffix() string { return "Distance" }

func (x *Distance) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Distance) isAnyValue() {}

func (*Duration) ChoiceSuffix() string { return "Duration" }

func (x *Duration) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Duration) isAnyValue() {}
func (*Duration) isTimingRepeatBounds() {}
func (*Duration) isDataRequirementDateFilterValue() {}

func (*HumanName) ChoiceSuffix() string { return "HumanName" }

func (x *HumanName) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*HumanName) isAnyValue() {}

func (*Identifier) ChoiceSuffix() string { return "Identifier" }

func (x *Identifier) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Identifier) isAnyValue() {}

func (*Money) ChoiceSuffix() string { return "Money" }

func (x *Money) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Money) isAnyValue() {}

func (*Period) ChoiceSuffix() string { return "Period" }

func (x *Period) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Period) isAnyValue() {}
func (*Period) isObservationValue() {}
func (*Period) isObservationEffective() {}
func (*Period) isTimingRepeatBounds() {}
func (*Period) isDataRequirementDateFilterValue() {}

func (*Quantity) ChoiceSuffix() string { return "Quantity" }

func (x *Quantity) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Quantity) isAnyValue() {}
func (*Quantity) isObservationValue() {}
func (*Quantity) isDosageDoseAndRateDose() {}
func (*Quantity) isDosageDoseAndRateRate() {}
func (*Quantity) isUsageContextValue() {}

func (*Range) ChoiceSuffix() string { return "Range" }

func (x *Range) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Range) isAnyValue() {}
func (*Range) isObservationValue() {}
func (*Range) isDosageDoseAndRateDose() {}
func (*Range) isDosageDoseAndRateRate() {}
func (*Range) isTimingRepeatBounds() {}
func (*Range) isUsageContextValue() {}

func (*Ratio) ChoiceSuffix() string { return "Ratio" }

func (x *Ratio) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Ratio) isAnyValue() {}
func (*Ratio) isObservationValue() {}
func (*Ratio) isDosageDoseAndRateRate() {}

func (*Reference) ChoiceSuffix() string { return "Reference" }

func (x *Reference) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Reference) isAnyValue() {}
func (*Reference) isCommunicationPayloadContent() {}
func (*Reference) isAnnotationAuthor() {}
func (*Reference) isDataRequirementSubject() {}
func (*Reference) isTriggerDefinitionTiming() {}
func (*Reference) isUsageContextValue() {}

func (*SampledData) ChoiceSuffix() string { return "SampledData" }

func (x *SampledData) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*SampledData) isAnyValue() {}
func (*SampledData) isObservationValue() {}

func (*Signature) ChoiceSuffix() string { return "Signature" }

func (x *Signature) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Signature) isAnyValue() {}

func (*Timing) ChoiceSuffix() string { return "Timing" }

func (x *Timing) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Timing) isAnyValue() {}
func (*Timing) isObservationEffective() {}
func (*Timing) isTriggerDefinitionTiming() {}

func (*ContactDetail) ChoiceSuffix() string { return "ContactDetail" }

func (x *ContactDetail) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*ContactDetail) isAnyValue() {}

func (*Contributor) ChoiceSuffix() string { return "Contributor" }

func (x *Contributor) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Contributor) isAnyValue() {}

func (*DataRequirement) ChoiceSuffix() string { return "DataRequirement" }

func (x *DataRequirement) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*DataRequirement) isAnyValue() {}

func (*Expression) ChoiceSuffix() string { return "Expression" }

func (x *Expression) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Expression) isAnyValue() {}

func (*ParameterDefinition) ChoiceSuffix() string { return "ParameterDefinition" }

func (x *ParameterDefinition) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*ParameterDefinition) isAnyValue() {}

func (*RelatedArtifact) ChoiceSuffix() string { return "RelatedArtifact" }

func (x *RelatedArtifact) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*RelatedArtifact) isAnyValue() {}

func (*TriggerDefinition) ChoiceSuffix() string { return "TriggerDefinition" }

func (x *TriggerDefinition) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*TriggerDefinition) isAnyValue() {}

func (*UsageContext) ChoiceSuffix() string { return "UsageContext" }

func (x *UsageContext) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*UsageContext) isAnyValue() {}

func (*Dosage) ChoiceSuffix() string { return "Dosage" }

func (x *Dosage) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Dosage) isAnyValue() {}

func (*Meta) ChoiceSuffix() string { return "Meta" }

func (x *Meta) EncodeChoice(e *codec.ObjectEncoder, key string) { e.Object(key, *x) }

func (*Meta) isAnyValue() {}

func stringChoice(suffix string, kind primitive.Kind, wrap func(*string, *Element) codec.ChoiceValue) codec.ChoiceType {
	return codec.ChoiceType{
		Suffix:    suffix,
		Primitive: true,
		Decode: func(o *codec.Object, key string) codec.ChoiceValue {
			return wrap(optString(o, key, kind))
		},
	}
}

func intChoice(suffix string, kind primitive.Kind, wrap func(*int, *Element) codec.ChoiceValue) codec.ChoiceType {
	return codec.ChoiceType{
		Suffix:    suffix,
		Primitive: true,
		Decode: func(o *codec.Object, key string) codec.ChoiceValue {
			return wrap(optInt(o, key, kind))
		},
	}
}

func complexChoice[T any, PT interface {
	*T
	codec.Decodable
	codec.ChoiceValue
}](suffix string) codec.ChoiceType {
	return codec.ChoiceType{
		Suffix: suffix,
		Decode: func(o *codec.Object, key string) codec.ChoiceValue {
			v := codec.OptStruct[T, PT](o, key)
			if v == nil {
				return nil
			}
			return PT(v)
		},
	}
}

var (
	choiceBase64Binary = stringChoice("Base64Binary", primitive.Base64Binary, func(v *string, ext *Element) codec.ChoiceValue {
		return &Base64Binary{Value: v, Ext: ext}
	})
	choiceBoolean = codec.ChoiceType{Suffix: "Boolean", Primitive: true, Decode: func(o *codec.Object, key string) codec.ChoiceValue {
		v, ext := optBool(o, key)
		return &Boolean{Value: v, Ext: ext}
	}}
	choiceCanonical = stringChoice("Canonical", primitive.Canonical, func(v *string, ext *Element) codec.ChoiceValue {
		return &Canonical{Value: v, Ext: ext}
	})
	choiceCode = stringChoice("Code", primitive.Code, func(v *string, ext *Element) codec.ChoiceValue {
		return &Code{Value: v, Ext: ext}
	})
	choiceDate = stringChoice("Date", primitive.Date, func(v *string, ext *Element) codec.ChoiceValue {
		return &Date{Value: v, Ext: ext}
	})
	choiceDateTime = stringChoice("DateTime", primitive.DateTime, func(v *string, ext *Element) codec.ChoiceValue {
		return &DateTime{Value: v, Ext: ext}
	})
	choiceDecimal = codec.ChoiceType{Suffix: "Decimal", Primitive: true, Decode: func(o *codec.Object, key string) codec.ChoiceValue {
		v, ext := optDecimal(o, key)
		return &Decimal{Value: v, Ext: ext}
	}}
	choiceID = stringChoice("Id", primitive.ID, func(v *string, ext *Element) codec.ChoiceValue {
		return &ID{Value: v, Ext: ext}
	})
	choiceInstant = stringChoice("Instant", primitive.Instant, func(v *string, ext *Element) codec.ChoiceValue {
		return &Instant{Value: v, Ext: ext}
	})
	choiceInteger = intChoice("Integer", primitive.Integer, func(v *int, ext *Element) codec.ChoiceValue {
		return &Integer{Value: v, Ext: ext}
	})
	choiceMarkdown = stringChoice("Markdown", primitive.Markdown, func(v *string, ext *Element) codec.ChoiceValue {
		return &Markdown{Value: v, Ext: ext}
	})
	choiceOID = stringChoice("Oid", primitive.OID, func(v *string, ext *Element) codec.ChoiceValue {
		return &OID{Value: v, Ext: ext}
	})
	choicePositiveInt = intChoice("PositiveInt", primitive.PositiveInt, func(v *int, ext *Element) codec.ChoiceValue {
		return &PositiveInt{Value: v, Ext: ext}
	})
	choiceString = stringChoice("String", primitive.String, func(v *string, ext *Element) codec.ChoiceValue {
		return &String{Value: v, Ext: ext}
	})
	choiceTime = stringChoice("Time", primitive.Time, func(v *string, ext *Element) codec.ChoiceValue {
		return &Time{Value: v, Ext: ext}
	})
	choiceUnsignedInt = intChoice("UnsignedInt", primitive.UnsignedInt, func(v *int, ext *Element) codec.ChoiceValue {
		return &UnsignedInt{Value: v, Ext: ext}
	})
	choiceURI = stringChoice("Uri", primitive.URI, func(v *string, ext *Element) codec.ChoiceValue {
		return &URI{Value: v, Ext: ext}
	})
	choiceURL = stringChoice("Url", primitive.URL, func(v *string, ext *Element) codec.ChoiceValue {
		return &URL{Value: v, Ext: ext}
	})
	choiceUUID = stringChoice("Uuid", primitive.UUID, func(v *string, ext *Element) codec.ChoiceValue {
		return &UUID{Value: v, Ext: ext}
	})
	choiceAddress             = complexChoice[Address]("Address")
	choiceAge                 = complexChoice[Age]("Age")
	choiceAnnotation          = complexChoice[Annotation]("Annotation")
	choiceAttachment          = complexChoice[Attachment]("Attachment")
	choiceCodeableConcept     = complexChoice[CodeableConcept]("CodeableConcept")
	choiceCoding              = complexChoice[Coding]("Coding")
	choiceContactPoint        = complexChoice[ContactPoint]("ContactPoint")
	choiceCount               = complexChoice[Count]("Count")
	choiceDistance            = complexChoice[Distance]("Distance")
	choiceDuration            = complexChoice[Duration]("Duration")
	choiceHumanName           = complexChoice[HumanName]("HumanName")
	choiceIdentifier          = complexChoice[Identifier]("Identifier")
	choiceMoney               = complexChoice[Money]("Money")
	choicePeriod              = complexChoice[Period]("Period")
	choiceQuantity            = complexChoice[Quantity]("Quantity")
	choiceRange               = complexChoice[Range]("Range")
	choiceRatio               = complexChoice[Ratio]("Ratio")
	choiceReference           = complexChoice[Reference]("Reference")
	choiceSampledData         = complexChoice[SampledData]("SampledData")
	choiceSignature           = complexChoice[Signature]("Signature")
	choiceTiming              = complexChoice[Timing]("Timing")
	choiceContactDetail       = complexChoice[ContactDetail]("ContactDetail")
	choiceContributor         = complexChoice[Contributor]("Contributor")
	choiceDataRequirement     = complexChoice[DataRequirement]("DataRequirement")
	choiceExpression          = complexChoice[Expression]("Expression")
	choiceParameterDefinition = complexChoice[ParameterDefinition]("ParameterDefinition")
	choiceRelatedArtifact     = complexChoice[RelatedArtifact]("RelatedArtifact")
	choiceTriggerDefinition   = complexChoice[TriggerDefinition]("TriggerDefinition")
	choiceUsageContext        = complexChoice[UsageContext]("UsageContext")
	choiceDosage              = complexChoice[Dosage]("Dosage")
	choiceMeta                = complexChoice[Meta]("Meta")
)

// Choice group tables. The Types are filled in init so that decoders can
// refer to the groups without forming an initialization cycle.
var (
	extensionValue                 = &codec.ChoiceGroup{Name: "value"}
	parametersParameterValue       = &codec.ChoiceGroup{Name: "value"}
	observationValue               = &codec.ChoiceGroup{Name: "value"}
	observationComponentValue      = &codec.ChoiceGroup{Name: "value"}
	observationEffective           = &codec.ChoiceGroup{Name: "effective"}
	patientDeceased                = &codec.ChoiceGroup{Name: "deceased"}
	patientMultipleBirth           = &codec.ChoiceGroup{Name: "multipleBirth"}
	communicationPayloadContent    = &codec.ChoiceGroup{Name: "content", Required: true}
	annotationAuthor               = &codec.ChoiceGroup{Name: "author"}
	dosageAsNeeded                 = &codec.ChoiceGroup{Name: "asNeeded"}
	dosageDoseAndRateDose          = &codec.ChoiceGroup{Name: "dose"}
	dosageDoseAndRateRate          = &codec.ChoiceGroup{Name: "rate"}
	timingRepeatBounds             = &codec.ChoiceGroup{Name: "bounds"}
	dataRequirementSubject         = &codec.ChoiceGroup{Name: "subject"}
	dataRequirementDateFilterValue = &codec.ChoiceGroup{Name: "value"}
	triggerDefinitionTiming        = &codec.ChoiceGroup{Name: "timing"}
	usageContextValue              = &codec.ChoiceGroup{Name: "value", Required: true}
)

func init() {
	anyValueTypes := []codec.ChoiceType{
		choiceBase64Binary, choiceBoolean, choiceCanonical, choiceCode,
		choiceDate, choiceDateTime, choiceDecimal, choiceID,
		choiceInstant, choiceInteger, choiceMarkdown, choiceOID,
		choicePositiveInt, choiceString, choiceTime, choiceUnsignedInt,
		choiceURI, choiceURL, choiceUUID, choiceAddress,
		choiceAge, choiceAnnotation, choiceAttachment, choiceCodeableConcept,
		choiceCoding, choiceContactPoint, choiceCount, choiceDistance,
		choiceDuration, choiceHumanName, choiceIdentifier, choiceMoney,
		choicePeriod, choiceQuantity, choiceRange, choiceRatio,
		choiceReference, choiceSampledData, choiceSignature, choiceTiming,
		choiceContactDetail, choiceContributor, choiceDataRequirement, choiceExpression,
		choiceParameterDefinition, choiceRelatedArtifact, choiceTriggerDefinition, choiceUsageContext,
		choiceDosage, choiceMeta,
	}
	observationValueTypes := []codec.ChoiceType{choiceQuantity, choiceCodeableConcept, choiceString, choiceBoolean, choiceInteger, choiceRange, choiceRatio, choiceSampledData, choiceTime, choiceDateTime, choicePeriod}

	extensionValue.Types = anyValueTypes
	parametersParameterValue.Types = anyValueTypes
	observationValue.Types = observationValueTypes
	observationComponentValue.Types = observationValueTypes
	observationEffective.Types = []codec.ChoiceType{choiceDateTime, choicePeriod, choiceTiming, choiceInstant}
	patientDeceased.Types = []codec.ChoiceType{choiceBoolean, choiceDateTime}
	patientMultipleBirth.Types = []codec.ChoiceType{choiceBoolean, choiceInteger}
	communicationPayloadContent.Types = []codec.ChoiceType{choiceString, choiceAttachment, choiceReference}
	annotationAuthor.Types = []codec.ChoiceType{choiceReference, choiceString}
	dosageAsNeeded.Types = []codec.ChoiceType{choiceBoolean, choiceCodeableConcept}
	dosageDoseAndRateDose.Types = []codec.ChoiceType{choiceRange, choiceQuantity}
	dosageDoseAndRateRate.Types = []codec.ChoiceType{choiceRatio, choiceRange, choiceQuantity}
	timingRepeatBounds.Types = []codec.ChoiceType{choiceDuration, choiceRange, choicePeriod}
	dataRequirementSubject.Types = []codec.ChoiceType{choiceCodeableConcept, choiceReference}
	dataRequirementDateFilterValue.Types = []codec.ChoiceType{choiceDateTime, choicePeriod, choiceDuration}
	triggerDefinitionTiming.Types = []codec.ChoiceType{choiceTiming, choiceReference, choiceDate, choiceDateTime}
	usageContextValue.Types = []codec.ChoiceType{choiceCodeableConcept, choiceQuantity, choiceRange, choiceReference}
}

// choiceGroups maps FHIR element paths to group tables, for Definitions.
var choiceGroups = map[string]*codec.ChoiceGroup{
	"Extension.value[x]":                  extensionValue,
	"Parameters.parameter.value[x]":       parametersParameterValue,
	"Observation.value[x]":                observationValue,
	"Observation.component.value[x]":      observationComponentValue,
	"Observation.effective[x]":            observationEffective,
	"Patient.deceased[x]":                 patientDeceased,
	"Patient.multipleBirth[x]":            patientMultipleBirth,
	"Communication.payload.content[x]":    communicationPayloadContent,
	"Annotation.author[x]":                annotationAuthor,
	"Dosage.asNeeded[x]":                  dosageAsNeeded,
	"Dosage.doseAndRate.dose[x]":          dosageDoseAndRateDose,
	"Dosage.doseAndRate.rate[x]":          dosageDoseAndRateRate,
	"Timing.repeat.bounds[x]":             timingRepeatBounds,
	"DataRequirement.subject[x]":          dataRequirementSubject,
	"DataRequirement.dateFilter.value[x]": dataRequirementDateFilterValue,
	"TriggerDefinition.timing[x]":         triggerDefinitionTiming,
	"UsageContext.value[x]":               usageContextValue,
}
