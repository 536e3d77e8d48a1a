package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Patient holds demographics about an individual receiving care.
type Patient struct {
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

	Identifier           []Identifier
	Active               *bool
	ActiveExt            *Element
	Name                 []HumanName
	Telecom              []ContactPoint
	Gender               AdministrativeGender
	GenderExt            *Element
	BirthDate            *string
	BirthDateExt         *Element
	Deceased             PatientDeceased
	Address              []Address
	MaritalStatus        *CodeableConcept
	MultipleBirth        PatientMultipleBirth
	Photo                []Attachment
	Contact              []PatientContact
	Communication        []PatientCommunication
	GeneralPractitioner  []Reference
	ManagingOrganization *Reference
	Link                 []PatientLink
}

func (Patient) StructureName() string { return "Patient" }

func (Patient) ResourceType() string { return "Patient" }

func (x Patient) ResourceID() *string { return x.ID }

func (x *Patient) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("Patient")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Text = codec.OptStruct[Narrative](o, "text")
	x.Contained = resourceList(o, "contained")
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Identifier = codec.Structs[Identifier](o, "identifier")
	x.Active, x.ActiveExt = optBool(o, "active")
	x.Name = codec.Structs[HumanName](o, "name")
	x.Telecom = codec.Structs[ContactPoint](o, "telecom")
	x.Gender, x.GenderExt = optEnum[AdministrativeGender](o, "gender")
	x.BirthDate, x.BirthDateExt = optString(o, "birthDate", primitive.Date)
	x.Deceased = codec.DecodeChoice[PatientDeceased](o, patientDeceased)
	x.Address = codec.Structs[Address](o, "address")
	x.MaritalStatus = codec.OptStruct[CodeableConcept](o, "maritalStatus")
	x.MultipleBirth = codec.DecodeChoice[PatientMultipleBirth](o, patientMultipleBirth)
	x.Photo = codec.Structs[Attachment](o, "photo")
	x.Contact = codec.Structs[PatientContact](o, "contact")
	x.Communication = codec.Structs[PatientCommunication](o, "communication")
	x.GeneralPractitioner = codec.Structs[Reference](o, "generalPractitioner")
	x.ManagingOrganization = codec.OptStruct[Reference](o, "managingOrganization")
	x.Link = codec.Structs[PatientLink](o, "link")
	return o.Done()
}

func (x Patient) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "Patient", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeOpt(e, "text", x.Text)
	codec.EncodeList(e, "contained", x.Contained)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "identifier", x.Identifier)
	encBool(e, "active", x.Active, x.ActiveExt)
	codec.EncodeList(e, "name", x.Name)
	codec.EncodeList(e, "telecom", x.Telecom)
	encEnum(e, "gender", x.Gender, x.GenderExt)
	encString(e, "birthDate", x.BirthDate, x.BirthDateExt)
	e.Choice(patientDeceased, x.Deceased)
	codec.EncodeList(e, "address", x.Address)
	codec.EncodeOpt(e, "maritalStatus", x.MaritalStatus)
	e.Choice(patientMultipleBirth, x.MultipleBirth)
	codec.EncodeList(e, "photo", x.Photo)
	codec.EncodeList(e, "contact", x.Contact)
	codec.EncodeList(e, "communication", x.Communication)
	codec.EncodeList(e, "generalPractitioner", x.GeneralPractitioner)
	codec.EncodeOpt(e, "managingOrganization", x.ManagingOrganization)
	codec.EncodeList(e, "link", x.Link)
}

// PatientContact is a contact party (guardian, partner, friend) for the patient.
type PatientContact struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Relationship []CodeableConcept
	Name         *HumanName
	Telecom      []ContactPoint
	Address      *Address
	Gender       AdministrativeGender
	GenderExt    *Element
	Organization *Reference
	Period       *Period
}

func (PatientContact) StructureName() string { return "PatientContact" }

func (x *PatientContact) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Relationship = codec.Structs[CodeableConcept](o, "relationship")
	x.Name = codec.OptStruct[HumanName](o, "name")
	x.Telecom = codec.Structs[ContactPoint](o, "telecom")
	x.Address = codec.OptStruct[Address](o, "address")
	x.Gender, x.GenderExt = optEnum[AdministrativeGender](o, "gender")
	x.Organization = codec.OptStruct[Reference](o, "organization")
	x.Period = codec.OptStruct[Period](o, "period")
	return o.Done()
}

func (x PatientContact) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "relationship", x.Relationship)
	codec.EncodeOpt(e, "name", x.Name)
	codec.EncodeList(e, "telecom", x.Telecom)
	codec.EncodeOpt(e, "address", x.Address)
	encEnum(e, "gender", x.Gender, x.GenderExt)
	codec.EncodeOpt(e, "organization", x.Organization)
	codec.EncodeOpt(e, "period", x.Period)
}

type PatientCommunication struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Language     CodeableConcept
	Preferred    *bool
	PreferredExt *Element
}

func (PatientCommunication) StructureName() string { return "PatientCommunication" }

func (x *PatientCommunication) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Language = codec.Struct[CodeableConcept](o, "language")
	x.Preferred, x.PreferredExt = optBool(o, "preferred")
	return o.Done()
}

func (x PatientCommunication) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	e.Object("language", x.Language)
	encBool(e, "preferred", x.Preferred, x.PreferredExt)
}

// PatientLink links to another patient resource that concerns the same person.
type PatientLink struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Other   Reference
	Type    LinkType
	TypeExt *Element
}

func (PatientLink) StructureName() string { return "PatientLink" }

func (x *PatientLink) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Other = codec.Struct[Reference](o, "other")
	x.Type, x.TypeExt = reqEnum[LinkType](o, "type")
	return o.Done()
}

func (x PatientLink) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	e.Object("other", x.Other)
	encEnum(e, "type", x.Type, x.TypeExt)
}
