package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Timing describes an event that may occur multiple times.
type Timing struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Event    []string
	EventExt []*Element
	Repeat   *TimingRepeat
	Code     *CodeableConcept
}

func (Timing) StructureName() string { return "Timing" }

func (x *Timing) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Event, x.EventExt = stringList(o, "event", primitive.DateTime)
	x.Repeat = codec.OptStruct[TimingRepeat](o, "repeat")
	x.Code = codec.OptStruct[CodeableConcept](o, "code")
	return o.Done()
}

func (x Timing) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encStrings(e, "event", x.Event, x.EventExt)
	codec.EncodeOpt(e, "repeat", x.Repeat)
	codec.EncodeOpt(e, "code", x.Code)
}

type TimingRepeat struct {
	ID        *string
	Extension []Extension

	Bounds          TimingRepeatBounds
	Count           *int
	CountExt        *Element
	CountMax        *int
	CountMaxExt     *Element
	Duration        *primitive.Decimal
	DurationExt     *Element
	DurationMax     *primitive.Decimal
	DurationMaxExt  *Element
	DurationUnit    UnitsOfTime
	DurationUnitExt *Element
	Frequency       *int
	FrequencyExt    *Element
	FrequencyMax    *int
	FrequencyMaxExt *Element
	Period          *primitive.Decimal
	PeriodExt       *Element
	PeriodMax       *primitive.Decimal
	PeriodMaxExt    *Element
	PeriodUnit      UnitsOfTime
	PeriodUnitExt   *Element
	DayOfWeek       []DaysOfWeek
	DayOfWeekExt    []*Element
	TimeOfDay       []string
	TimeOfDayExt    []*Element
	When            []EventTiming
	WhenExt         []*Element
	Offset          *int
	OffsetExt       *Element
}

func (TimingRepeat) StructureName() string { return "TimingRepeat" }

func (x *TimingRepeat) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Bounds = codec.DecodeChoice[TimingRepeatBounds](o, timingRepeatBounds)
	x.Count, x.CountExt = optInt(o, "count", primitive.PositiveInt)
	x.CountMax, x.CountMaxExt = optInt(o, "countMax", primitive.PositiveInt)
	x.Duration, x.DurationExt = optDecimal(o, "duration")
	x.DurationMax, x.DurationMaxExt = optDecimal(o, "durationMax")
	x.DurationUnit, x.DurationUnitExt = optEnum[UnitsOfTime](o, "durationUnit")
	x.Frequency, x.FrequencyExt = optInt(o, "frequency", primitive.PositiveInt)
	x.FrequencyMax, x.FrequencyMaxExt = optInt(o, "frequencyMax", primitive.PositiveInt)
	x.Period, x.PeriodExt = optDecimal(o, "period")
	x.PeriodMax, x.PeriodMaxExt = optDecimal(o, "periodMax")
	x.PeriodUnit, x.PeriodUnitExt = optEnum[UnitsOfTime](o, "periodUnit")
	x.DayOfWeek, x.DayOfWeekExt = enumList[DaysOfWeek](o, "dayOfWeek")
	x.TimeOfDay, x.TimeOfDayExt = stringList(o, "timeOfDay", primitive.Time)
	x.When, x.WhenExt = enumList[EventTiming](o, "when")
	x.Offset, x.OffsetExt = optInt(o, "offset", primitive.UnsignedInt)
	return o.Done()
}

func (x TimingRepeat) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	e.Choice(timingRepeatBounds, x.Bounds)
	encInt(e, "count", x.Count, x.CountExt)
	encInt(e, "countMax", x.CountMax, x.CountMaxExt)
	encDecimal(e, "duration", x.Duration, x.DurationExt)
	encDecimal(e, "durationMax", x.DurationMax, x.DurationMaxExt)
	encEnum(e, "durationUnit", x.DurationUnit, x.DurationUnitExt)
	encInt(e, "frequency", x.Frequency, x.FrequencyExt)
	encInt(e, "frequencyMax", x.FrequencyMax, x.FrequencyMaxExt)
	encDecimal(e, "period", x.Period, x.PeriodExt)
	encDecimal(e, "periodMax", x.PeriodMax, x.PeriodMaxExt)
	encEnum(e, "periodUnit", x.PeriodUnit, x.PeriodUnitExt)
	encEnumList(e, "dayOfWeek", x.DayOfWeek, x.DayOfWeekExt)
	encStrings(e, "timeOfDay", x.TimeOfDay, x.TimeOfDayExt)
	encEnumList(e, "when", x.When, x.WhenExt)
	encInt(e, "offset", x.Offset, x.OffsetExt)
}

// Dosage is how a medication is, was or should be taken.
type Dosage struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Sequence                 *int
	SequenceExt              *Element
	Text                     *string
	TextExt                  *Element
	AdditionalInstruction    []CodeableConcept
	PatientInstruction       *string
	PatientInstructionExt    *Element
	Timing                   *Timing
	AsNeeded                 DosageAsNeeded
	Site                     *CodeableConcept
	Route                    *CodeableConcept
	Method                   *CodeableConcept
	DoseAndRate              []DosageDoseAndRate
	MaxDosePerPeriod         *Ratio
	MaxDosePerAdministration *Quantity
	MaxDosePerLifetime       *Quantity
}

func (Dosage) StructureName() string { return "Dosage" }

func (x *Dosage) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Sequence, x.SequenceExt = optInt(o, "sequence", primitive.Integer)
	x.Text, x.TextExt = optString(o, "text", primitive.String)
	x.AdditionalInstruction = codec.Structs[CodeableConcept](o, "additionalInstruction")
	x.PatientInstruction, x.PatientInstructionExt = optString(o, "patientInstruction", primitive.String)
	x.Timing = codec.OptStruct[Timing](o, "timing")
	x.AsNeeded = codec.DecodeChoice[DosageAsNeeded](o, dosageAsNeeded)
	x.Site = codec.OptStruct[CodeableConcept](o, "site")
	x.Route = codec.OptStruct[CodeableConcept](o, "route")
	x.Method = codec.OptStruct[CodeableConcept](o, "method")
	x.DoseAndRate = codec.Structs[DosageDoseAndRate](o, "doseAndRate")
	x.MaxDosePerPeriod = codec.OptStruct[Ratio](o, "maxDosePerPeriod")
	x.MaxDosePerAdministration = codec.OptStruct[Quantity](o, "maxDosePerAdministration")
	x.MaxDosePerLifetime = codec.OptStruct[Quantity](o, "maxDosePerLifetime")
	return o.Done()
}

func (x Dosage) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encInt(e, "sequence", x.Sequence, x.SequenceExt)
	encString(e, "text", x.Text, x.TextExt)
	codec.EncodeList(e, "additionalInstruction", x.AdditionalInstruction)
	encString(e, "patientInstruction", x.PatientInstruction, x.PatientInstructionExt)
	codec.EncodeOpt(e, "timing", x.Timing)
	e.Choice(dosageAsNeeded, x.AsNeeded)
	codec.EncodeOpt(e, "site", x.Site)
	codec.EncodeOpt(e, "route", x.Route)
	codec.EncodeOpt(e, "method", x.Method)
	codec.EncodeList(e, "doseAndRate", x.DoseAndRate)
	codec.EncodeOpt(e, "maxDosePerPeriod", x.MaxDosePerPeriod)
	codec.EncodeOpt(e, "maxDosePerAdministration", x.MaxDosePerAdministration)
	codec.EncodeOpt(e, "maxDosePerLifetime", x.MaxDosePerLifetime)
}

type DosageDoseAndRate struct {
	ID        *string
	Extension []Extension

	Type *CodeableConcept
	Dose DosageDoseAndRateDose
	Rate DosageDoseAndRateRate
}

func (DosageDoseAndRate) StructureName() string { return "DosageDoseAndRate" }

func (x *DosageDoseAndRate) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.Type = codec.OptStruct[CodeableConcept](o, "type")
	x.Dose = codec.DecodeChoice[DosageDoseAndRateDose](o, dosageDoseAndRateDose)
	x.Rate = codec.DecodeChoice[DosageDoseAndRateRate](o, dosageDoseAndRateRate)
	return o.Done()
}

func (x DosageDoseAndRate) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeOpt(e, "type", x.Type)
	e.Choice(dosageDoseAndRateDose, x.Dose)
	e.Choice(dosageDoseAndRateRate, x.Rate)
}
