package r4

// Closed value sets with a required binding. The zero value of each type is
// the absent code; decoding any other literal outside the set fails with
// codec.ErrInvalidEnumValue.

// AdministrativeGender is the gender of a person used for administrative purposes.
// See http://hl7.org/fhir/administrative-gender.
type AdministrativeGender string

const (
	AdministrativeGenderMale    AdministrativeGender = "male"
	AdministrativeGenderFemale  AdministrativeGender = "female"
	AdministrativeGenderOther   AdministrativeGender = "other"
	AdministrativeGenderUnknown AdministrativeGender = "unknown"
)

func (c AdministrativeGender) IsValid() bool {
	switch c {
	case AdministrativeGenderMale, AdministrativeGenderFemale, AdministrativeGenderOther,
		AdministrativeGenderUnknown:
		return true
	}
	return false
}

// AdministrativeGenderValues lists the AdministrativeGender codes in definition order.
func AdministrativeGenderValues() []AdministrativeGender {
	return []AdministrativeGender{
		AdministrativeGenderMale, AdministrativeGenderFemale, AdministrativeGenderOther,
		AdministrativeGenderUnknown,
	}
}

// LinkType is the type of link between two patient resources.
// See http://hl7.org/fhir/link-type.
type LinkType string

const (
	LinkTypeReplacedBy LinkType = "replaced-by"
	LinkTypeReplaces   LinkType = "replaces"
	LinkTypeRefer      LinkType = "refer"
	LinkTypeSeealso    LinkType = "seealso"
)

func (c LinkType) IsValid() bool {
	switch c {
	case LinkTypeReplacedBy, LinkTypeReplaces, LinkTypeRefer, LinkTypeSeealso:
		return true
	}
	return false
}

// LinkTypeValues lists the LinkType codes in definition order.
func LinkTypeValues() []LinkType {
	return []LinkType{
		LinkTypeReplacedBy, LinkTypeReplaces, LinkTypeRefer, LinkTypeSeealso,
	}
}

// ObservationStatus is the status of an observation.
// See http://hl7.org/fhir/observation-status.
type ObservationStatus string

const (
	ObservationStatusRegistered     ObservationStatus = "registered"
	ObservationStatusPreliminary    ObservationStatus = "preliminary"
	ObservationStatusFinal          ObservationStatus = "final"
	ObservationStatusAmended        ObservationStatus = "amended"
	ObservationStatusCorrected      ObservationStatus = "corrected"
	ObservationStatusCancelled      ObservationStatus = "cancelled"
	ObservationStatusEnteredInError ObservationStatus = "entered-in-error"
	ObservationStatusUnknown        ObservationStatus = "unknown"
)

func (c ObservationStatus) IsValid() bool {
	switch c {
	case ObservationStatusRegistered, ObservationStatusPreliminary, ObservationStatusFinal,
		ObservationStatusAmended, ObservationStatusCorrected, ObservationStatusCancelled,
		ObservationStatusEnteredInError, ObservationStatusUnknown:
		return true
	}
	return false
}

// ObservationStatusValues lists the ObservationStatus codes in definition order.
func ObservationStatusValues() []ObservationStatus {
	return []ObservationStatus{
		ObservationStatusRegistered, ObservationStatusPreliminary, ObservationStatusFinal,
		ObservationStatusAmended, ObservationStatusCorrected, ObservationStatusCancelled,
		ObservationStatusEnteredInError, ObservationStatusUnknown,
	}
}

// QuantityComparator says how a Quantity value should be understood.
// See http://hl7.org/fhir/quantity-comparator.
type QuantityComparator string

const (
	QuantityComparatorLessThan       QuantityComparator = "<"
	QuantityComparatorLessOrEqual    QuantityComparator = "<="
	QuantityComparatorGreaterOrEqual QuantityComparator = ">="
	QuantityComparatorGreaterThan    QuantityComparator = ">"
)

func (c QuantityComparator) IsValid() bool {
	switch c {
	case QuantityComparatorLessThan, QuantityComparatorLessOrEqual, QuantityComparatorGreaterOrEqual,
		QuantityComparatorGreaterThan:
		return true
	}
	return false
}

// QuantityComparatorValues lists the QuantityComparator codes in definition order.
func QuantityComparatorValues() []QuantityComparator {
	return []QuantityComparator{
		QuantityComparatorLessThan, QuantityComparatorLessOrEqual, QuantityComparatorGreaterOrEqual,
		QuantityComparatorGreaterThan,
	}
}

// AddressUse codes from http://hl7.org/fhir/address-use.
type AddressUse string

const (
	AddressUseHome    AddressUse = "home"
	AddressUseWork    AddressUse = "work"
	AddressUseTemp    AddressUse = "temp"
	AddressUseOld     AddressUse = "old"
	AddressUseBilling AddressUse = "billing"
)

func (c AddressUse) IsValid() bool {
	switch c {
	case AddressUseHome, AddressUseWork, AddressUseTemp, AddressUseOld, AddressUseBilling:
		return true
	}
	return false
}

// AddressUseValues lists the AddressUse codes in definition order.
func AddressUseValues() []AddressUse {
	return []AddressUse{
		AddressUseHome, AddressUseWork, AddressUseTemp, AddressUseOld, AddressUseBilling,
	}
}

// AddressType codes from http://hl7.org/fhir/address-type.
type AddressType string

const (
	AddressTypePostal   AddressType = "postal"
	AddressTypePhysical AddressType = "physical"
	AddressTypeBoth     AddressType = "both"
)

func (c AddressType) IsValid() bool {
	switch c {
	case AddressTypePostal, AddressTypePhysical, AddressTypeBoth:
		return true
	}
	return false
}

// AddressTypeValues lists the AddressType codes in definition order.
func AddressTypeValues() []AddressType {
	return []AddressType{
		AddressTypePostal, AddressTypePhysical, AddressTypeBoth,
	}
}

// ContactPointSystem codes from http://hl7.org/fhir/contact-point-system.
type ContactPointSystem string

const (
	ContactPointSystemPhone ContactPointSystem = "phone"
	ContactPointSystemFax   ContactPointSystem = "fax"
	ContactPointSystemEmail ContactPointSystem = "email"
	ContactPointSystemPager ContactPointSystem = "pager"
	ContactPointSystemUrl   ContactPointSystem = "url"
	ContactPointSystemSms   ContactPointSystem = "sms"
	ContactPointSystemOther ContactPointSystem = "other"
)

func (c ContactPointSystem) IsValid() bool {
	switch c {
	case ContactPointSystemPhone, ContactPointSystemFax, ContactPointSystemEmail,
		ContactPointSystemPager, ContactPointSystemUrl, ContactPointSystemSms, ContactPointSystemOther:
		return true
	}
	return false
}

// ContactPointSystemValues lists the ContactPointSystem codes in definition order.
func ContactPointSystemValues() []ContactPointSystem {
	return []ContactPointSystem{
		ContactPointSystemPhone, ContactPointSystemFax, ContactPointSystemEmail,
		ContactPointSystemPager, ContactPointSystemUrl, ContactPointSystemSms, ContactPointSystemOther,
	}
}

// ContactPointUse codes from http://hl7.org/fhir/contact-point-use.
type ContactPointUse string

const (
	ContactPointUseHome   ContactPointUse = "home"
	ContactPointUseWork   ContactPointUse = "work"
	ContactPointUseTemp   ContactPointUse = "temp"
	ContactPointUseOld    ContactPointUse = "old"
	ContactPointUseMobile ContactPointUse = "mobile"
)

func (c ContactPointUse) IsValid() bool {
	switch c {
	case ContactPointUseHome, ContactPointUseWork, ContactPointUseTemp, ContactPointUseOld,
		ContactPointUseMobile:
		return true
	}
	return false
}

// ContactPointUseValues lists the ContactPointUse codes in definition order.
func ContactPointUseValues() []ContactPointUse {
	return []ContactPointUse{
		ContactPointUseHome, ContactPointUseWork, ContactPointUseTemp, ContactPointUseOld,
		ContactPointUseMobile,
	}
}

// NameUse codes from http://hl7.org/fhir/name-use.
type NameUse string

const (
	NameUseUsual     NameUse = "usual"
	NameUseOfficial  NameUse = "official"
	NameUseTemp      NameUse = "temp"
	NameUseNickname  NameUse = "nickname"
	NameUseAnonymous NameUse = "anonymous"
	NameUseOld       NameUse = "old"
	NameUseMaiden    NameUse = "maiden"
)

func (c NameUse) IsValid() bool {
	switch c {
	case NameUseUsual, NameUseOfficial, NameUseTemp, NameUseNickname, NameUseAnonymous,
		NameUseOld, NameUseMaiden:
		return true
	}
	return false
}

// NameUseValues lists the NameUse codes in definition order.
func NameUseValues() []NameUse {
	return []NameUse{
		NameUseUsual, NameUseOfficial, NameUseTemp, NameUseNickname, NameUseAnonymous,
		NameUseOld, NameUseMaiden,
	}
}

// IdentifierUse codes from http://hl7.org/fhir/identifier-use.
type IdentifierUse string

const (
	IdentifierUseUsual     IdentifierUse = "usual"
	IdentifierUseOfficial  IdentifierUse = "official"
	IdentifierUseTemp      IdentifierUse = "temp"
	IdentifierUseSecondary IdentifierUse = "secondary"
	IdentifierUseOld       IdentifierUse = "old"
)

func (c IdentifierUse) IsValid() bool {
	switch c {
	case IdentifierUseUsual, IdentifierUseOfficial, IdentifierUseTemp, IdentifierUseSecondary,
		IdentifierUseOld:
		return true
	}
	return false
}

// IdentifierUseValues lists the IdentifierUse codes in definition order.
func IdentifierUseValues() []IdentifierUse {
	return []IdentifierUse{
		IdentifierUseUsual, IdentifierUseOfficial, IdentifierUseTemp, IdentifierUseSecondary,
		IdentifierUseOld,
	}
}

// NarrativeStatus is the status of a resource narrative.
// See http://hl7.org/fhir/narrative-status.
type NarrativeStatus string

const (
	NarrativeStatusGenerated  NarrativeStatus = "generated"
	NarrativeStatusExtensions NarrativeStatus = "extensions"
	NarrativeStatusAdditional NarrativeStatus = "additional"
	NarrativeStatusEmpty      NarrativeStatus = "empty"
)

func (c NarrativeStatus) IsValid() bool {
	switch c {
	case NarrativeStatusGenerated, NarrativeStatusExtensions, NarrativeStatusAdditional,
		NarrativeStatusEmpty:
		return true
	}
	return false
}

// NarrativeStatusValues lists the NarrativeStatus codes in definition order.
func NarrativeStatusValues() []NarrativeStatus {
	return []NarrativeStatus{
		NarrativeStatusGenerated, NarrativeStatusExtensions, NarrativeStatusAdditional,
		NarrativeStatusEmpty,
	}
}

// ContributorType codes from http://hl7.org/fhir/contributor-type.
type ContributorType string

const (
	ContributorTypeAuthor   ContributorType = "author"
	ContributorTypeEditor   ContributorType = "editor"
	ContributorTypeReviewer ContributorType = "reviewer"
	ContributorTypeEndorser ContributorType = "endorser"
)

func (c ContributorType) IsValid() bool {
	switch c {
	case ContributorTypeAuthor, ContributorTypeEditor, ContributorTypeReviewer, ContributorTypeEndorser:
		return true
	}
	return false
}

// ContributorTypeValues lists the ContributorType codes in definition order.
func ContributorTypeValues() []ContributorType {
	return []ContributorType{
		ContributorTypeAuthor, ContributorTypeEditor, ContributorTypeReviewer, ContributorTypeEndorser,
	}
}

// SortDirection codes from http://hl7.org/fhir/sort-direction.
type SortDirection string

const (
	SortDirectionAscending  SortDirection = "ascending"
	SortDirectionDescending SortDirection = "descending"
)

func (c SortDirection) IsValid() bool {
	switch c {
	case SortDirectionAscending, SortDirectionDescending:
		return true
	}
	return false
}

// SortDirectionValues lists the SortDirection codes in definition order.
func SortDirectionValues() []SortDirection {
	return []SortDirection{
		SortDirectionAscending, SortDirectionDescending,
	}
}

// ParameterUse codes from http://hl7.org/fhir/operation-parameter-use.
type ParameterUse string

const (
	ParameterUseIn  ParameterUse = "in"
	ParameterUseOut ParameterUse = "out"
)

func (c ParameterUse) IsValid() bool {
	switch c {
	case ParameterUseIn, ParameterUseOut:
		return true
	}
	return false
}

// ParameterUseValues lists the ParameterUse codes in definition order.
func ParameterUseValues() []ParameterUse {
	return []ParameterUse{
		ParameterUseIn, ParameterUseOut,
	}
}

// RelatedArtifactType codes from http://hl7.org/fhir/related-artifact-type.
type RelatedArtifactType string

const (
	RelatedArtifactTypeDocumentation RelatedArtifactType = "documentation"
	RelatedArtifactTypeJustification RelatedArtifactType = "justification"
	RelatedArtifactTypeCitation      RelatedArtifactType = "citation"
	RelatedArtifactTypePredecessor   RelatedArtifactType = "predecessor"
	RelatedArtifactTypeSuccessor     RelatedArtifactType = "successor"
	RelatedArtifactTypeDerivedFrom   RelatedArtifactType = "derived-from"
	RelatedArtifactTypeDependsOn     RelatedArtifactType = "depends-on"
	RelatedArtifactTypeComposedOf    RelatedArtifactType = "composed-of"
)

func (c RelatedArtifactType) IsValid() bool {
	switch c {
	case RelatedArtifactTypeDocumentation, RelatedArtifactTypeJustification, RelatedArtifactTypeCitation,
		RelatedArtifactTypePredecessor, RelatedArtifactTypeSuccessor, RelatedArtifactTypeDerivedFrom,
		RelatedArtifactTypeDependsOn, RelatedArtifactTypeComposedOf:
		return true
	}
	return false
}

// RelatedArtifactTypeValues lists the RelatedArtifactType codes in definition order.
func RelatedArtifactTypeValues() []RelatedArtifactType {
	return []RelatedArtifactType{
		RelatedArtifactTypeDocumentation, RelatedArtifactTypeJustification, RelatedArtifactTypeCitation,
		RelatedArtifactTypePredecessor, RelatedArtifactTypeSuccessor, RelatedArtifactTypeDerivedFrom,
		RelatedArtifactTypeDependsOn, RelatedArtifactTypeComposedOf,
	}
}

// TriggerType codes from http://hl7.org/fhir/trigger-type.
type TriggerType string

const (
	TriggerTypeNamedEvent      TriggerType = "named-event"
	TriggerTypePeriodic        TriggerType = "periodic"
	TriggerTypeDataChanged     TriggerType = "data-changed"
	TriggerTypeDataAdded       TriggerType = "data-added"
	TriggerTypeDataModified    TriggerType = "data-modified"
	TriggerTypeDataRemoved     TriggerType = "data-removed"
	TriggerTypeDataAccessed    TriggerType = "data-accessed"
	TriggerTypeDataAccessEnded TriggerType = "data-access-ended"
)

func (c TriggerType) IsValid() bool {
	switch c {
	case TriggerTypeNamedEvent, TriggerTypePeriodic, TriggerTypeDataChanged, TriggerTypeDataAdded,
		TriggerTypeDataModified, TriggerTypeDataRemoved, TriggerTypeDataAccessed,
		TriggerTypeDataAccessEnded:
		return true
	}
	return false
}

// TriggerTypeValues lists the TriggerType codes in definition order.
func TriggerTypeValues() []TriggerType {
	return []TriggerType{
		TriggerTypeNamedEvent, TriggerTypePeriodic, TriggerTypeDataChanged, TriggerTypeDataAdded,
		TriggerTypeDataModified, TriggerTypeDataRemoved, TriggerTypeDataAccessed,
		TriggerTypeDataAccessEnded,
	}
}

// UnitsOfTime is a unit of time from UCUM.
// See http://unitsofmeasure.org.
type UnitsOfTime string

const (
	UnitsOfTimeS   UnitsOfTime = "s"
	UnitsOfTimeMin UnitsOfTime = "min"
	UnitsOfTimeH   UnitsOfTime = "h"
	UnitsOfTimeD   UnitsOfTime = "d"
	UnitsOfTimeWk  UnitsOfTime = "wk"
	UnitsOfTimeMo  UnitsOfTime = "mo"
	UnitsOfTimeA   UnitsOfTime = "a"
)

func (c UnitsOfTime) IsValid() bool {
	switch c {
	case UnitsOfTimeS, UnitsOfTimeMin, UnitsOfTimeH, UnitsOfTimeD, UnitsOfTimeWk,
		UnitsOfTimeMo, UnitsOfTimeA:
		return true
	}
	return false
}

// UnitsOfTimeValues lists the UnitsOfTime codes in definition order.
func UnitsOfTimeValues() []UnitsOfTime {
	return []UnitsOfTime{
		UnitsOfTimeS, UnitsOfTimeMin, UnitsOfTimeH, UnitsOfTimeD, UnitsOfTimeWk,
		UnitsOfTimeMo, UnitsOfTimeA,
	}
}

// DaysOfWeek codes from http://hl7.org/fhir/days-of-week.
type DaysOfWeek string

const (
	DaysOfWeekMon DaysOfWeek = "mon"
	DaysOfWeekTue DaysOfWeek = "tue"
	DaysOfWeekWed DaysOfWeek = "wed"
	DaysOfWeekThu DaysOfWeek = "thu"
	DaysOfWeekFri DaysOfWeek = "fri"
	DaysOfWeekSat DaysOfWeek = "sat"
	DaysOfWeekSun DaysOfWeek = "sun"
)

func (c DaysOfWeek) IsValid() bool {
	switch c {
	case DaysOfWeekMon, DaysOfWeekTue, DaysOfWeekWed, DaysOfWeekThu, DaysOfWeekFri,
		DaysOfWeekSat, DaysOfWeekSun:
		return true
	}
	return false
}

// DaysOfWeekValues lists the DaysOfWeek codes in definition order.
func DaysOfWeekValues() []DaysOfWeek {
	return []DaysOfWeek{
		DaysOfWeekMon, DaysOfWeekTue, DaysOfWeekWed, DaysOfWeekThu, DaysOfWeekFri,
		DaysOfWeekSat, DaysOfWeekSun,
	}
}

// EventTiming is a real world event a schedule relates to.
// See http://hl7.org/fhir/event-timing.
type EventTiming string

const (
	EventTimingMORN      EventTiming = "MORN"
	EventTimingMORNEarly EventTiming = "MORN.early"
	EventTimingMORNLate  EventTiming = "MORN.late"
	EventTimingNOON      EventTiming = "NOON"
	EventTimingAFT       EventTiming = "AFT"
	EventTimingAFTEarly  EventTiming = "AFT.early"
	EventTimingAFTLate   EventTiming = "AFT.late"
	EventTimingEVE       EventTiming = "EVE"
	EventTimingEVEEarly  EventTiming = "EVE.early"
	EventTimingEVELate   EventTiming = "EVE.late"
	EventTimingNIGHT     EventTiming = "NIGHT"
	EventTimingPHS       EventTiming = "PHS"
	EventTimingHS        EventTiming = "HS"
	EventTimingWAKE      EventTiming = "WAKE"
	EventTimingC         EventTiming = "C"
	EventTimingCM        EventTiming = "CM"
	EventTimingCD        EventTiming = "CD"
	EventTimingCV        EventTiming = "CV"
	EventTimingAC        EventTiming = "AC"
	EventTimingACM       EventTiming = "ACM"
	EventTimingACD       EventTiming = "ACD"
	EventTimingACV       EventTiming = "ACV"
	EventTimingPC        EventTiming = "PC"
	EventTimingPCM       EventTiming = "PCM"
	EventTimingPCD       EventTiming = "PCD"
	EventTimingPCV       EventTiming = "PCV"
)

func (c EventTiming) IsValid() bool {
	switch c {
	case EventTimingMORN, EventTimingMORNEarly, EventTimingMORNLate, EventTimingNOON,
		EventTimingAFT, EventTimingAFTEarly, EventTimingAFTLate, EventTimingEVE,
		EventTimingEVEEarly, EventTimingEVELate, EventTimingNIGHT, EventTimingPHS,
		EventTimingHS, EventTimingWAKE, EventTimingC, EventTimingCM, EventTimingCD,
		EventTimingCV, EventTimingAC, EventTimingACM, EventTimingACD, EventTimingACV,
		EventTimingPC, EventTimingPCM, EventTimingPCD, EventTimingPCV:
		return true
	}
	return false
}

// EventTimingValues lists the EventTiming codes in definition order.
func EventTimingValues() []EventTiming {
	return []EventTiming{
		EventTimingMORN, EventTimingMORNEarly, EventTimingMORNLate, EventTimingNOON,
		EventTimingAFT, EventTimingAFTEarly, EventTimingAFTLate, EventTimingEVE,
		EventTimingEVEEarly, EventTimingEVELate, EventTimingNIGHT, EventTimingPHS,
		EventTimingHS, EventTimingWAKE, EventTimingC, EventTimingCM, EventTimingCD,
		EventTimingCV, EventTimingAC, EventTimingACM, EventTimingACD, EventTimingACV,
		EventTimingPC, EventTimingPCM, EventTimingPCD, EventTimingPCV,
	}
}

// EventStatus is the lifecycle stage of an event.
// See http://hl7.org/fhir/event-status.
type EventStatus string

const (
	EventStatusPreparation    EventStatus = "preparation"
	EventStatusInProgress     EventStatus = "in-progress"
	EventStatusNotDone        EventStatus = "not-done"
	EventStatusOnHold         EventStatus = "on-hold"
	EventStatusStopped        EventStatus = "stopped"
	EventStatusCompleted      EventStatus = "completed"
	EventStatusEnteredInError EventStatus = "entered-in-error"
	EventStatusUnknown        EventStatus = "unknown"
)

func (c EventStatus) IsValid() bool {
	switch c {
	case EventStatusPreparation, EventStatusInProgress, EventStatusNotDone, EventStatusOnHold,
		EventStatusStopped, EventStatusCompleted, EventStatusEnteredInError, EventStatusUnknown:
		return true
	}
	return false
}

// EventStatusValues lists the EventStatus codes in definition order.
func EventStatusValues() []EventStatus {
	return []EventStatus{
		EventStatusPreparation, EventStatusInProgress, EventStatusNotDone, EventStatusOnHold,
		EventStatusStopped, EventStatusCompleted, EventStatusEnteredInError, EventStatusUnknown,
	}
}

// RequestPriority codes from http://hl7.org/fhir/request-priority.
type RequestPriority string

const (
	RequestPriorityRoutine RequestPriority = "routine"
	RequestPriorityUrgent  RequestPriority = "urgent"
	RequestPriorityAsap    RequestPriority = "asap"
	RequestPriorityStat    RequestPriority = "stat"
)

func (c RequestPriority) IsValid() bool {
	switch c {
	case RequestPriorityRoutine, RequestPriorityUrgent, RequestPriorityAsap, RequestPriorityStat:
		return true
	}
	return false
}

// RequestPriorityValues lists the RequestPriority codes in definition order.
func RequestPriorityValues() []RequestPriority {
	return []RequestPriority{
		RequestPriorityRoutine, RequestPriorityUrgent, RequestPriorityAsap, RequestPriorityStat,
	}
}

// PublicationStatus is the lifecycle status of a conformance artifact.
// See http://hl7.org/fhir/publication-status.
type PublicationStatus string

const (
	PublicationStatusDraft   PublicationStatus = "draft"
	PublicationStatusActive  PublicationStatus = "active"
	PublicationStatusRetired PublicationStatus = "retired"
	PublicationStatusUnknown PublicationStatus = "unknown"
)

func (c PublicationStatus) IsValid() bool {
	switch c {
	case PublicationStatusDraft, PublicationStatusActive, PublicationStatusRetired,
		PublicationStatusUnknown:
		return true
	}
	return false
}

// PublicationStatusValues lists the PublicationStatus codes in definition order.
func PublicationStatusValues() []PublicationStatus {
	return []PublicationStatus{
		PublicationStatusDraft, PublicationStatusActive, PublicationStatusRetired,
		PublicationStatusUnknown,
	}
}

// CapabilityStatementKind codes from http://hl7.org/fhir/capability-statement-kind.
type CapabilityStatementKind string

const (
	CapabilityStatementKindInstance     CapabilityStatementKind = "instance"
	CapabilityStatementKindCapability   CapabilityStatementKind = "capability"
	CapabilityStatementKindRequirements CapabilityStatementKind = "requirements"
)

func (c CapabilityStatementKind) IsValid() bool {
	switch c {
	case CapabilityStatementKindInstance, CapabilityStatementKindCapability, CapabilityStatementKindRequirements:
		return true
	}
	return false
}

// CapabilityStatementKindValues lists the CapabilityStatementKind codes in definition order.
func CapabilityStatementKindValues() []CapabilityStatementKind {
	return []CapabilityStatementKind{
		CapabilityStatementKindInstance, CapabilityStatementKindCapability, CapabilityStatementKindRequirements,
	}
}

// FHIRVersion lists the published FHIR versions.
// See http://hl7.org/fhir/FHIR-version.
type FHIRVersion string

const (
	FHIRVersion0_01   FHIRVersion = "0.01"
	FHIRVersion0_05   FHIRVersion = "0.05"
	FHIRVersion0_06   FHIRVersion = "0.06"
	FHIRVersion0_11   FHIRVersion = "0.11"
	FHIRVersion0_0_80 FHIRVersion = "0.0.80"
	FHIRVersion0_0_81 FHIRVersion = "0.0.81"
	FHIRVersion0_0_82 FHIRVersion = "0.0.82"
	FHIRVersion0_4_0  FHIRVersion = "0.4.0"
	FHIRVersion0_5_0  FHIRVersion = "0.5.0"
	FHIRVersion1_0_0  FHIRVersion = "1.0.0"
	FHIRVersion1_0_1  FHIRVersion = "1.0.1"
	FHIRVersion1_0_2  FHIRVersion = "1.0.2"
	FHIRVersion1_1_0  FHIRVersion = "1.1.0"
	FHIRVersion1_4_0  FHIRVersion = "1.4.0"
	FHIRVersion1_6_0  FHIRVersion = "1.6.0"
	FHIRVersion1_8_0  FHIRVersion = "1.8.0"
	FHIRVersion3_0_0  FHIRVersion = "3.0.0"
	FHIRVersion3_0_1  FHIRVersion = "3.0.1"
	FHIRVersion3_3_0  FHIRVersion = "3.3.0"
	FHIRVersion3_5_0  FHIRVersion = "3.5.0"
	FHIRVersion4_0_0  FHIRVersion = "4.0.0"
	FHIRVersion4_0_1  FHIRVersion = "4.0.1"
)

func (c FHIRVersion) IsValid() bool {
	switch c {
	case FHIRVersion0_01, FHIRVersion0_05, FHIRVersion0_06, FHIRVersion0_11, FHIRVersion0_0_80,
		FHIRVersion0_0_81, FHIRVersion0_0_82, FHIRVersion0_4_0, FHIRVersion0_5_0,
		FHIRVersion1_0_0, FHIRVersion1_0_1, FHIRVersion1_0_2, FHIRVersion1_1_0, FHIRVersion1_4_0,
		FHIRVersion1_6_0, FHIRVersion1_8_0, FHIRVersion3_0_0, FHIRVersion3_0_1, FHIRVersion3_3_0,
		FHIRVersion3_5_0, FHIRVersion4_0_0, FHIRVersion4_0_1:
		return true
	}
	return false
}

// FHIRVersionValues lists the FHIRVersion codes in definition order.
func FHIRVersionValues() []FHIRVersion {
	return []FHIRVersion{
		FHIRVersion0_01, FHIRVersion0_05, FHIRVersion0_06, FHIRVersion0_11, FHIRVersion0_0_80,
		FHIRVersion0_0_81, FHIRVersion0_0_82, FHIRVersion0_4_0, FHIRVersion0_5_0,
		FHIRVersion1_0_0, FHIRVersion1_0_1, FHIRVersion1_0_2, FHIRVersion1_1_0, FHIRVersion1_4_0,
		FHIRVersion1_6_0, FHIRVersion1_8_0, FHIRVersion3_0_0, FHIRVersion3_0_1, FHIRVersion3_3_0,
		FHIRVersion3_5_0, FHIRVersion4_0_0, FHIRVersion4_0_1,
	}
}

// RestfulCapabilityMode codes from http://hl7.org/fhir/restful-capability-mode.
type RestfulCapabilityMode string

const (
	RestfulCapabilityModeClient RestfulCapabilityMode = "client"
	RestfulCapabilityModeServer RestfulCapabilityMode = "server"
)

func (c RestfulCapabilityMode) IsValid() bool {
	switch c {
	case RestfulCapabilityModeClient, RestfulCapabilityModeServer:
		return true
	}
	return false
}

// RestfulCapabilityModeValues lists the RestfulCapabilityMode codes in definition order.
func RestfulCapabilityModeValues() []RestfulCapabilityMode {
	return []RestfulCapabilityMode{
		RestfulCapabilityModeClient, RestfulCapabilityModeServer,
	}
}

// TypeRestfulInteraction is an operation supported by REST at the type or instance level.
// See http://hl7.org/fhir/restful-interaction.
type TypeRestfulInteraction string

const (
	TypeRestfulInteractionRead            TypeRestfulInteraction = "read"
	TypeRestfulInteractionVread           TypeRestfulInteraction = "vread"
	TypeRestfulInteractionUpdate          TypeRestfulInteraction = "update"
	TypeRestfulInteractionPatch           TypeRestfulInteraction = "patch"
	TypeRestfulInteractionDelete          TypeRestfulInteraction = "delete"
	TypeRestfulInteractionHistoryInstance TypeRestfulInteraction = "history-instance"
	TypeRestfulInteractionHistoryType     TypeRestfulInteraction = "history-type"
	TypeRestfulInteractionCreate          TypeRestfulInteraction = "create"
	TypeRestfulInteractionSearchType      TypeRestfulInteraction = "search-type"
)

func (c TypeRestfulInteraction) IsValid() bool {
	switch c {
	case TypeRestfulInteractionRead, TypeRestfulInteractionVread, TypeRestfulInteractionUpdate,
		TypeRestfulInteractionPatch, TypeRestfulInteractionDelete, TypeRestfulInteractionHistoryInstance,
		TypeRestfulInteractionHistoryType, TypeRestfulInteractionCreate, TypeRestfulInteractionSearchType:
		return true
	}
	return false
}

// TypeRestfulInteractionValues lists the TypeRestfulInteraction codes in definition order.
func TypeRestfulInteractionValues() []TypeRestfulInteraction {
	return []TypeRestfulInteraction{
		TypeRestfulInteractionRead, TypeRestfulInteractionVread, TypeRestfulInteractionUpdate,
		TypeRestfulInteractionPatch, TypeRestfulInteractionDelete, TypeRestfulInteractionHistoryInstance,
		TypeRestfulInteractionHistoryType, TypeRestfulInteractionCreate, TypeRestfulInteractionSearchType,
	}
}

// SystemRestfulInteraction is an operation supported by REST at the system level.
// See http://hl7.org/fhir/restful-interaction.
type SystemRestfulInteraction string

const (
	SystemRestfulInteractionTransaction   SystemRestfulInteraction = "transaction"
	SystemRestfulInteractionBatch         SystemRestfulInteraction = "batch"
	SystemRestfulInteractionSearchSystem  SystemRestfulInteraction = "search-system"
	SystemRestfulInteractionHistorySystem SystemRestfulInteraction = "history-system"
)

func (c SystemRestfulInteraction) IsValid() bool {
	switch c {
	case SystemRestfulInteractionTransaction, SystemRestfulInteractionBatch, SystemRestfulInteractionSearchSystem,
		SystemRestfulInteractionHistorySystem:
		return true
	}
	return false
}

// SystemRestfulInteractionValues lists the SystemRestfulInteraction codes in definition order.
func SystemRestfulInteractionValues() []SystemRestfulInteraction {
	return []SystemRestfulInteraction{
		SystemRestfulInteractionTransaction, SystemRestfulInteractionBatch, SystemRestfulInteractionSearchSystem,
		SystemRestfulInteractionHistorySystem,
	}
}

// ResourceVersionPolicy codes from http://hl7.org/fhir/versioning-policy.
type ResourceVersionPolicy string

const (
	ResourceVersionPolicyNoVersion       ResourceVersionPolicy = "no-version"
	ResourceVersionPolicyVersioned       ResourceVersionPolicy = "versioned"
	ResourceVersionPolicyVersionedUpdate ResourceVersionPolicy = "versioned-update"
)

func (c ResourceVersionPolicy) IsValid() bool {
	switch c {
	case ResourceVersionPolicyNoVersion, ResourceVersionPolicyVersioned, ResourceVersionPolicyVersionedUpdate:
		return true
	}
	return false
}

// ResourceVersionPolicyValues lists the ResourceVersionPolicy codes in definition order.
func ResourceVersionPolicyValues() []ResourceVersionPolicy {
	return []ResourceVersionPolicy{
		ResourceVersionPolicyNoVersion, ResourceVersionPolicyVersioned, ResourceVersionPolicyVersionedUpdate,
	}
}

// ConditionalReadStatus codes from http://hl7.org/fhir/conditional-read-status.
type ConditionalReadStatus string

const (
	ConditionalReadStatusNotSupported  ConditionalReadStatus = "not-supported"
	ConditionalReadStatusModifiedSince ConditionalReadStatus = "modified-since"
	ConditionalReadStatusNotMatch      ConditionalReadStatus = "not-match"
	ConditionalReadStatusFullSupport   ConditionalReadStatus = "full-support"
)

func (c ConditionalReadStatus) IsValid() bool {
	switch c {
	case ConditionalReadStatusNotSupported, ConditionalReadStatusModifiedSince, ConditionalReadStatusNotMatch,
		ConditionalReadStatusFullSupport:
		return true
	}
	return false
}

// ConditionalReadStatusValues lists the ConditionalReadStatus codes in definition order.
func ConditionalReadStatusValues() []ConditionalReadStatus {
	return []ConditionalReadStatus{
		ConditionalReadStatusNotSupported, ConditionalReadStatusModifiedSince, ConditionalReadStatusNotMatch,
		ConditionalReadStatusFullSupport,
	}
}

// ConditionalDeleteStatus codes from http://hl7.org/fhir/conditional-delete-status.
type ConditionalDeleteStatus string

const (
	ConditionalDeleteStatusNotSupported ConditionalDeleteStatus = "not-supported"
	ConditionalDeleteStatusSingle       ConditionalDeleteStatus = "single"
	ConditionalDeleteStatusMultiple     ConditionalDeleteStatus = "multiple"
)

func (c ConditionalDeleteStatus) IsValid() bool {
	switch c {
	case ConditionalDeleteStatusNotSupported, ConditionalDeleteStatusSingle, ConditionalDeleteStatusMultiple:
		return true
	}
	return false
}

// ConditionalDeleteStatusValues lists the ConditionalDeleteStatus codes in definition order.
func ConditionalDeleteStatusValues() []ConditionalDeleteStatus {
	return []ConditionalDeleteStatus{
		ConditionalDeleteStatusNotSupported, ConditionalDeleteStatusSingle, ConditionalDeleteStatusMultiple,
	}
}

// ReferenceHandlingPolicy codes from http://hl7.org/fhir/reference-handling-policy.
type ReferenceHandlingPolicy string

const (
	ReferenceHandlingPolicyLiteral  ReferenceHandlingPolicy = "literal"
	ReferenceHandlingPolicyLogical  ReferenceHandlingPolicy = "logical"
	ReferenceHandlingPolicyResolves ReferenceHandlingPolicy = "resolves"
	ReferenceHandlingPolicyEnforced ReferenceHandlingPolicy = "enforced"
	ReferenceHandlingPolicyLocal    ReferenceHandlingPolicy = "local"
)

func (c ReferenceHandlingPolicy) IsValid() bool {
	switch c {
	case ReferenceHandlingPolicyLiteral, ReferenceHandlingPolicyLogical, ReferenceHandlingPolicyResolves,
		ReferenceHandlingPolicyEnforced, ReferenceHandlingPolicyLocal:
		return true
	}
	return false
}

// ReferenceHandlingPolicyValues lists the ReferenceHandlingPolicy codes in definition order.
func ReferenceHandlingPolicyValues() []ReferenceHandlingPolicy {
	return []ReferenceHandlingPolicy{
		ReferenceHandlingPolicyLiteral, ReferenceHandlingPolicyLogical, ReferenceHandlingPolicyResolves,
		ReferenceHandlingPolicyEnforced, ReferenceHandlingPolicyLocal,
	}
}

// SearchParamType codes from http://hl7.org/fhir/search-param-type.
type SearchParamType string

const (
	SearchParamTypeNumber    SearchParamType = "number"
	SearchParamTypeDate      SearchParamType = "date"
	SearchParamTypeString    SearchParamType = "string"
	SearchParamTypeToken     SearchParamType = "token"
	SearchParamTypeReference SearchParamType = "reference"
	SearchParamTypeComposite SearchParamType = "composite"
	SearchParamTypeQuantity  SearchParamType = "quantity"
	SearchParamTypeUri       SearchParamType = "uri"
	SearchParamTypeSpecial   SearchParamType = "special"
)

func (c SearchParamType) IsValid() bool {
	switch c {
	case SearchParamTypeNumber, SearchParamTypeDate, SearchParamTypeString, SearchParamTypeToken,
		SearchParamTypeReference, SearchParamTypeComposite, SearchParamTypeQuantity,
		SearchParamTypeUri, SearchParamTypeSpecial:
		return true
	}
	return false
}

// SearchParamTypeValues lists the SearchParamType codes in definition order.
func SearchParamTypeValues() []SearchParamType {
	return []SearchParamType{
		SearchParamTypeNumber, SearchParamTypeDate, SearchParamTypeString, SearchParamTypeToken,
		SearchParamTypeReference, SearchParamTypeComposite, SearchParamTypeQuantity,
		SearchParamTypeUri, SearchParamTypeSpecial,
	}
}

// EventCapabilityMode codes from http://hl7.org/fhir/event-capability-mode.
type EventCapabilityMode string

const (
	EventCapabilityModeSender   EventCapabilityMode = "sender"
	EventCapabilityModeReceiver EventCapabilityMode = "receiver"
)

func (c EventCapabilityMode) IsValid() bool {
	switch c {
	case EventCapabilityModeSender, EventCapabilityModeReceiver:
		return true
	}
	return false
}

// EventCapabilityModeValues lists the EventCapabilityMode codes in definition order.
func EventCapabilityModeValues() []EventCapabilityMode {
	return []EventCapabilityMode{
		EventCapabilityModeSender, EventCapabilityModeReceiver,
	}
}

// DocumentMode codes from http://hl7.org/fhir/document-mode.
type DocumentMode string

const (
	DocumentModeProducer DocumentMode = "producer"
	DocumentModeConsumer DocumentMode = "consumer"
)

func (c DocumentMode) IsValid() bool {
	switch c {
	case DocumentModeProducer, DocumentModeConsumer:
		return true
	}
	return false
}

// DocumentModeValues lists the DocumentMode codes in definition order.
func DocumentModeValues() []DocumentMode {
	return []DocumentMode{
		DocumentModeProducer, DocumentModeConsumer,
	}
}

// MeasureReportStatus codes from http://hl7.org/fhir/measure-report-status.
type MeasureReportStatus string

const (
	MeasureReportStatusComplete MeasureReportStatus = "complete"
	MeasureReportStatusPending  MeasureReportStatus = "pending"
	MeasureReportStatusError    MeasureReportStatus = "error"
)

func (c MeasureReportStatus) IsValid() bool {
	switch c {
	case MeasureReportStatusComplete, MeasureReportStatusPending, MeasureReportStatusError:
		return true
	}
	return false
}

// MeasureReportStatusValues lists the MeasureReportStatus codes in definition order.
func MeasureReportStatusValues() []MeasureReportStatus {
	return []MeasureReportStatus{
		MeasureReportStatusComplete, MeasureReportStatusPending, MeasureReportStatusError,
	}
}

// MeasureReportType codes from http://hl7.org/fhir/measure-report-type.
type MeasureReportType string

const (
	MeasureReportTypeIndividual     MeasureReportType = "individual"
	MeasureReportTypeSubjectList    MeasureReportType = "subject-list"
	MeasureReportTypeSummary        MeasureReportType = "summary"
	MeasureReportTypeDataCollection MeasureReportType = "data-collection"
)

func (c MeasureReportType) IsValid() bool {
	switch c {
	case MeasureReportTypeIndividual, MeasureReportTypeSubjectList, MeasureReportTypeSummary,
		MeasureReportTypeDataCollection:
		return true
	}
	return false
}

// MeasureReportTypeValues lists the MeasureReportType codes in definition order.
func MeasureReportTypeValues() []MeasureReportType {
	return []MeasureReportType{
		MeasureReportTypeIndividual, MeasureReportTypeSubjectList, MeasureReportTypeSummary,
		MeasureReportTypeDataCollection,
	}
}

// BundleType indicates the purpose of a bundle.
// See http://hl7.org/fhir/bundle-type.
type BundleType string

const (
	BundleTypeDocument            BundleType = "document"
	BundleTypeMessage             BundleType = "message"
	BundleTypeTransaction         BundleType = "transaction"
	BundleTypeTransactionResponse BundleType = "transaction-response"
	BundleTypeBatch               BundleType = "batch"
	BundleTypeBatchResponse       BundleType = "batch-response"
	BundleTypeHistory             BundleType = "history"
	BundleTypeSearchset           BundleType = "searchset"
	BundleTypeCollection          BundleType = "collection"
)

func (c BundleType) IsValid() bool {
	switch c {
	case BundleTypeDocument, BundleTypeMessage, BundleTypeTransaction, BundleTypeTransactionResponse,
		BundleTypeBatch, BundleTypeBatchResponse, BundleTypeHistory, BundleTypeSearchset,
		BundleTypeCollection:
		return true
	}
	return false
}

// BundleTypeValues lists the BundleType codes in definition order.
func BundleTypeValues() []BundleType {
	return []BundleType{
		BundleTypeDocument, BundleTypeMessage, BundleTypeTransaction, BundleTypeTransactionResponse,
		BundleTypeBatch, BundleTypeBatchResponse, BundleTypeHistory, BundleTypeSearchset,
		BundleTypeCollection,
	}
}

// SearchEntryMode codes from http://hl7.org/fhir/search-entry-mode.
type SearchEntryMode string

const (
	SearchEntryModeMatch   SearchEntryMode = "match"
	SearchEntryModeInclude SearchEntryMode = "include"
	SearchEntryModeOutcome SearchEntryMode = "outcome"
)

func (c SearchEntryMode) IsValid() bool {
	switch c {
	case SearchEntryModeMatch, SearchEntryModeInclude, SearchEntryModeOutcome:
		return true
	}
	return false
}

// SearchEntryModeValues lists the SearchEntryMode codes in definition order.
func SearchEntryModeValues() []SearchEntryMode {
	return []SearchEntryMode{
		SearchEntryModeMatch, SearchEntryModeInclude, SearchEntryModeOutcome,
	}
}

// HTTPVerb codes from http://hl7.org/fhir/http-verb.
type HTTPVerb string

const (
	HTTPVerbGET    HTTPVerb = "GET"
	HTTPVerbHEAD   HTTPVerb = "HEAD"
	HTTPVerbPOST   HTTPVerb = "POST"
	HTTPVerbPUT    HTTPVerb = "PUT"
	HTTPVerbDELETE HTTPVerb = "DELETE"
	HTTPVerbPATCH  HTTPVerb = "PATCH"
)

func (c HTTPVerb) IsValid() bool {
	switch c {
	case HTTPVerbGET, HTTPVerbHEAD, HTTPVerbPOST, HTTPVerbPUT, HTTPVerbDELETE, HTTPVerbPATCH:
		return true
	}
	return false
}

// HTTPVerbValues lists the HTTPVerb codes in definition order.
func HTTPVerbValues() []HTTPVerb {
	return []HTTPVerb{
		HTTPVerbGET, HTTPVerbHEAD, HTTPVerbPOST, HTTPVerbPUT, HTTPVerbDELETE, HTTPVerbPATCH,
	}
}

// IssueSeverity says how an issue affects the success of the action.
// See http://hl7.org/fhir/issue-severity.
type IssueSeverity string

const (
	IssueSeverityFatal       IssueSeverity = "fatal"
	IssueSeverityError       IssueSeverity = "error"
	IssueSeverityWarning     IssueSeverity = "warning"
	IssueSeverityInformation IssueSeverity = "information"
)

func (c IssueSeverity) IsValid() bool {
	switch c {
	case IssueSeverityFatal, IssueSeverityError, IssueSeverityWarning, IssueSeverityInformation:
		return true
	}
	return false
}

// IssueSeverityValues lists the IssueSeverity codes in definition order.
func IssueSeverityValues() []IssueSeverity {
	return []IssueSeverity{
		IssueSeverityFatal, IssueSeverityError, IssueSeverityWarning, IssueSeverityInformation,
	}
}

// IssueType describes the type of an issue.
// See http://hl7.org/fhir/issue-type.
type IssueType string

const (
	IssueTypeInvalid         IssueType = "invalid"
	IssueTypeStructure       IssueType = "structure"
	IssueTypeRequired        IssueType = "required"
	IssueTypeValue           IssueType = "value"
	IssueTypeInvariant       IssueType = "invariant"
	IssueTypeSecurity        IssueType = "security"
	IssueTypeLogin           IssueType = "login"
	IssueTypeUnknown         IssueType = "unknown"
	IssueTypeExpired         IssueType = "expired"
	IssueTypeForbidden       IssueType = "forbidden"
	IssueTypeSuppressed      IssueType = "suppressed"
	IssueTypeProcessing      IssueType = "processing"
	IssueTypeNotSupported    IssueType = "not-supported"
	IssueTypeDuplicate       IssueType = "duplicate"
	IssueTypeMultipleMatches IssueType = "multiple-matches"
	IssueTypeNotFound        IssueType = "not-found"
	IssueTypeDeleted         IssueType = "deleted"
	IssueTypeTooLong         IssueType = "too-long"
	IssueTypeCodeInvalid     IssueType = "code-invalid"
	IssueTypeExtension       IssueType = "extension"
	IssueTypeTooCostly       IssueType = "too-costly"
	IssueTypeBusinessRule    IssueType = "business-rule"
	IssueTypeConflict        IssueType = "conflict"
	IssueTypeTransient       IssueType = "transient"
	IssueTypeLockError       IssueType = "lock-error"
	IssueTypeNoStore         IssueType = "no-store"
	IssueTypeException       IssueType = "exception"
	IssueTypeTimeout         IssueType = "timeout"
	IssueTypeIncomplete      IssueType = "incomplete"
	IssueTypeThrottled       IssueType = "throttled"
	IssueTypeInformational   IssueType = "informational"
)

func (c IssueType) IsValid() bool {
	switch c {
	case IssueTypeInvalid, IssueTypeStructure, IssueTypeRequired, IssueTypeValue,
		IssueTypeInvariant, IssueTypeSecurity, IssueTypeLogin, IssueTypeUnknown,
		IssueTypeExpired, IssueTypeForbidden, IssueTypeSuppressed, IssueTypeProcessing,
		IssueTypeNotSupported, IssueTypeDuplicate, IssueTypeMultipleMatches, IssueTypeNotFound,
		IssueTypeDeleted, IssueTypeTooLong, IssueTypeCodeInvalid, IssueTypeExtension,
		IssueTypeTooCostly, IssueTypeBusinessRule, IssueTypeConflict, IssueTypeTransient,
		IssueTypeLockError, IssueTypeNoStore, IssueTypeException, IssueTypeTimeout,
		IssueTypeIncomplete, IssueTypeThrottled, IssueTypeInformational:
		return true
	}
	return false
}

// IssueTypeValues lists the IssueType codes in definition order.
func IssueTypeValues() []IssueType {
	return []IssueType{
		IssueTypeInvalid, IssueTypeStructure, IssueTypeRequired, IssueTypeValue,
		IssueTypeInvariant, IssueTypeSecurity, IssueTypeLogin, IssueTypeUnknown,
		IssueTypeExpired, IssueTypeForbidden, IssueTypeSuppressed, IssueTypeProcessing,
		IssueTypeNotSupported, IssueTypeDuplicate, IssueTypeMultipleMatches, IssueTypeNotFound,
		IssueTypeDeleted, IssueTypeTooLong, IssueTypeCodeInvalid, IssueTypeExtension,
		IssueTypeTooCostly, IssueTypeBusinessRule, IssueTypeConflict, IssueTypeTransient,
		IssueTypeLockError, IssueTypeNoStore, IssueTypeException, IssueTypeTimeout,
		IssueTypeIncomplete, IssueTypeThrottled, IssueTypeInformational,
	}
}
