package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// CapabilityStatement describes the behavior of a FHIR server or client.
type CapabilityStatement struct {
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

	URL                    *string
	URLExt                 *Element
	Version                *string
	VersionExt             *Element
	Name                   *string
	NameExt                *Element
	Title                  *string
	TitleExt               *Element
	Status                 PublicationStatus
	StatusExt              *Element
	Experimental           *bool
	ExperimentalExt        *Element
	Date                   string
	DateExt                *Element
	Publisher              *string
	PublisherExt           *Element
	Contact                []ContactDetail
	Description            *string
	DescriptionExt         *Element
	UseContext             []UsageContext
	Jurisdiction           []CodeableConcept
	Purpose                *string
	PurposeExt             *Element
	Copyright              *string
	CopyrightExt           *Element
	Kind                   CapabilityStatementKind
	KindExt                *Element
	Instantiates           []string
	InstantiatesExt        []*Element
	Imports                []string
	ImportsExt             []*Element
	Software               *CapabilityStatementSoftware
	Implementation         *CapabilityStatementImplementation
	FHIRVersion            FHIRVersion
	FHIRVersionExt         *Element
	Format                 []string
	FormatExt              []*Element
	PatchFormat            []string
	PatchFormatExt         []*Element
	ImplementationGuide    []string
	ImplementationGuideExt []*Element
	Rest                   []CapabilityStatementRest
	Messaging              []CapabilityStatementMessaging
	Document               []CapabilityStatementDocument
}

func (CapabilityStatement) StructureName() string { return "CapabilityStatement" }

func (CapabilityStatement) ResourceType() string { return "CapabilityStatement" }

func (x CapabilityStatement) ResourceID() *string { return x.ID }

func (x *CapabilityStatement) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("CapabilityStatement")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Text = codec.OptStruct[Narrative](o, "text")
	x.Contained = resourceList(o, "contained")
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.URL, x.URLExt = optString(o, "url", primitive.URI)
	x.Version, x.VersionExt = optString(o, "version", primitive.String)
	x.Name, x.NameExt = optString(o, "name", primitive.String)
	x.Title, x.TitleExt = optString(o, "title", primitive.String)
	x.Status, x.StatusExt = reqEnum[PublicationStatus](o, "status")
	x.Experimental, x.ExperimentalExt = optBool(o, "experimental")
	x.Date, x.DateExt = reqString(o, "date", primitive.DateTime)
	x.Publisher, x.PublisherExt = optString(o, "publisher", primitive.String)
	x.Contact = codec.Structs[ContactDetail](o, "contact")
	x.Description, x.DescriptionExt = optString(o, "description", primitive.Markdown)
	x.UseContext = codec.Structs[UsageContext](o, "useContext")
	x.Jurisdiction = codec.Structs[CodeableConcept](o, "jurisdiction")
	x.Purpose, x.PurposeExt = optString(o, "purpose", primitive.Markdown)
	x.Copyright, x.CopyrightExt = optString(o, "copyright", primitive.Markdown)
	x.Kind, x.KindExt = reqEnum[CapabilityStatementKind](o, "kind")
	x.Instantiates, x.InstantiatesExt = stringList(o, "instantiates", primitive.Canonical)
	x.Imports, x.ImportsExt = stringList(o, "imports", primitive.Canonical)
	x.Software = codec.OptStruct[CapabilityStatementSoftware](o, "software")
	x.Implementation = codec.OptStruct[CapabilityStatementImplementation](o, "implementation")
	x.FHIRVersion, x.FHIRVersionExt = reqEnum[FHIRVersion](o, "fhirVersion")
	x.Format, x.FormatExt = reqStringList(o, "format", primitive.Code)
	x.PatchFormat, x.PatchFormatExt = stringList(o, "patchFormat", primitive.Code)
	x.ImplementationGuide, x.ImplementationGuideExt = stringList(o, "implementationGuide", primitive.Canonical)
	x.Rest = codec.Structs[CapabilityStatementRest](o, "rest")
	x.Messaging = codec.Structs[CapabilityStatementMessaging](o, "messaging")
	x.Document = codec.Structs[CapabilityStatementDocument](o, "document")
	return o.Done()
}

func (x CapabilityStatement) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "CapabilityStatement", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeOpt(e, "text", x.Text)
	codec.EncodeList(e, "contained", x.Contained)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encString(e, "url", x.URL, x.URLExt)
	encString(e, "version", x.Version, x.VersionExt)
	encString(e, "name", x.Name, x.NameExt)
	encString(e, "title", x.Title, x.TitleExt)
	encEnum(e, "status", x.Status, x.StatusExt)
	encBool(e, "experimental", x.Experimental, x.ExperimentalExt)
	encReqString(e, "date", x.Date, x.DateExt)
	encString(e, "publisher", x.Publisher, x.PublisherExt)
	codec.EncodeList(e, "contact", x.Contact)
	encString(e, "description", x.Description, x.DescriptionExt)
	codec.EncodeList(e, "useContext", x.UseContext)
	codec.EncodeList(e, "jurisdiction", x.Jurisdiction)
	encString(e, "purpose", x.Purpose, x.PurposeExt)
	encString(e, "copyright", x.Copyright, x.CopyrightExt)
	encEnum(e, "kind", x.Kind, x.KindExt)
	encStrings(e, "instantiates", x.Instantiates, x.InstantiatesExt)
	encStrings(e, "imports", x.Imports, x.ImportsExt)
	codec.EncodeOpt(e, "software", x.Software)
	codec.EncodeOpt(e, "implementation", x.Implementation)
	encEnum(e, "fhirVersion", x.FHIRVersion, x.FHIRVersionExt)
	encStrings(e, "format", x.Format, x.FormatExt)
	encStrings(e, "patchFormat", x.PatchFormat, x.PatchFormatExt)
	encStrings(e, "implementationGuide", x.ImplementationGuide, x.ImplementationGuideExt)
	codec.EncodeList(e, "rest", x.Rest)
	codec.EncodeList(e, "messaging", x.Messaging)
	codec.EncodeList(e, "document", x.Document)
}

type CapabilityStatementSoftware struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Name           string
	NameExt        *Element
	Version        *string
	VersionExt     *Element
	ReleaseDate    *string
	ReleaseDateExt *Element
}

func (CapabilityStatementSoftware) StructureName() string { return "CapabilityStatementSoftware" }

func (x *CapabilityStatementSoftware) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Name, x.NameExt = reqString(o, "name", primitive.String)
	x.Version, x.VersionExt = optString(o, "version", primitive.String)
	x.ReleaseDate, x.ReleaseDateExt = optString(o, "releaseDate", primitive.DateTime)
	return o.Done()
}

func (x CapabilityStatementSoftware) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encReqString(e, "name", x.Name, x.NameExt)
	encString(e, "version", x.Version, x.VersionExt)
	encString(e, "releaseDate", x.ReleaseDate, x.ReleaseDateExt)
}

type CapabilityStatementImplementation struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Description    string
	DescriptionExt *Element
	URL            *string
	URLExt         *Element
	Custodian      *Reference
}

func (CapabilityStatementImplementation) StructureName() string { return "CapabilityStatementImplementation" }

func (x *CapabilityStatementImplementation) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Description, x.DescriptionExt = reqString(o, "description", primitive.String)
	x.URL, x.URLExt = optString(o, "url", primitive.URL)
	x.Custodian = codec.OptStruct[Reference](o, "custodian")
	return o.Done()
}

func (x CapabilityStatementImplementation) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encReqString(e, "description", x.Description, x.DescriptionExt)
	encString(e, "url", x.URL, x.URLExt)
	codec.EncodeOpt(e, "custodian", x.Custodian)
}

// CapabilityStatementRest is one RESTful endpoint mode (client or server).
type CapabilityStatementRest struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Mode             RestfulCapabilityMode
	ModeExt          *Element
	Documentation    *string
	DocumentationExt *Element
	Security         *CapabilityStatementRestSecurity
	Resource         []CapabilityStatementRestResource
	Interaction      []CapabilityStatementRestInteraction
	SearchParam      []CapabilityStatementRestResourceSearchParam
	Operation        []CapabilityStatementRestResourceOperation
	Compartment      []string
	CompartmentExt   []*Element
}

func (CapabilityStatementRest) StructureName() string { return "CapabilityStatementRest" }

func (x *CapabilityStatementRest) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Mode, x.ModeExt = reqEnum[RestfulCapabilityMode](o, "mode")
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.Markdown)
	x.Security = codec.OptStruct[CapabilityStatementRestSecurity](o, "security")
	x.Resource = codec.Structs[CapabilityStatementRestResource](o, "resource")
	x.Interaction = codec.Structs[CapabilityStatementRestInteraction](o, "interaction")
	x.SearchParam = codec.Structs[CapabilityStatementRestResourceSearchParam](o, "searchParam")
	x.Operation = codec.Structs[CapabilityStatementRestResourceOperation](o, "operation")
	x.Compartment, x.CompartmentExt = stringList(o, "compartment", primitive.Canonical)
	return o.Done()
}

func (x CapabilityStatementRest) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encEnum(e, "mode", x.Mode, x.ModeExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
	codec.EncodeOpt(e, "security", x.Security)
	codec.EncodeList(e, "resource", x.Resource)
	codec.EncodeList(e, "interaction", x.Interaction)
	codec.EncodeList(e, "searchParam", x.SearchParam)
	codec.EncodeList(e, "operation", x.Operation)
	encStrings(e, "compartment", x.Compartment, x.CompartmentExt)
}

type CapabilityStatementRestSecurity struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Cors           *bool
	CorsExt        *Element
	Service        []CodeableConcept
	Description    *string
	DescriptionExt *Element
}

func (CapabilityStatementRestSecurity) StructureName() string { return "CapabilityStatementRestSecurity" }

func (x *CapabilityStatementRestSecurity) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Cors, x.CorsExt = optBool(o, "cors")
	x.Service = codec.Structs[CodeableConcept](o, "service")
	x.Description, x.DescriptionExt = optString(o, "description", primitive.Markdown)
	return o.Done()
}

func (x CapabilityStatementRestSecurity) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encBool(e, "cors", x.Cors, x.CorsExt)
	codec.EncodeList(e, "service", x.Service)
	encString(e, "description", x.Description, x.DescriptionExt)
}

// CapabilityStatementRestResource is the support for one resource type.
type CapabilityStatementRestResource struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Type                 string
	TypeExt              *Element
	Profile              *string
	ProfileExt           *Element
	SupportedProfile     []string
	SupportedProfileExt  []*Element
	Documentation        *string
	DocumentationExt     *Element
	Interaction          []CapabilityStatementRestResourceInteraction
	Versioning           ResourceVersionPolicy
	VersioningExt        *Element
	ReadHistory          *bool
	ReadHistoryExt       *Element
	UpdateCreate         *bool
	UpdateCreateExt      *Element
	ConditionalCreate    *bool
	ConditionalCreateExt *Element
	ConditionalRead      ConditionalReadStatus
	ConditionalReadExt   *Element
	ConditionalUpdate    *bool
	ConditionalUpdateExt *Element
	ConditionalDelete    ConditionalDeleteStatus
	ConditionalDeleteExt *Element
	ReferencePolicy      []ReferenceHandlingPolicy
	ReferencePolicyExt   []*Element
	SearchInclude        []string
	SearchIncludeExt     []*Element
	SearchRevInclude     []string
	SearchRevIncludeExt  []*Element
	SearchParam          []CapabilityStatementRestResourceSearchParam
	Operation            []CapabilityStatementRestResourceOperation
}

func (CapabilityStatementRestResource) StructureName() string { return "CapabilityStatementRestResource" }

func (x *CapabilityStatementRestResource) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Type, x.TypeExt = reqString(o, "type", primitive.Code)
	x.Profile, x.ProfileExt = optString(o, "profile", primitive.Canonical)
	x.SupportedProfile, x.SupportedProfileExt = stringList(o, "supportedProfile", primitive.Canonical)
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.Markdown)
	x.Interaction = codec.Structs[CapabilityStatementRestResourceInteraction](o, "interaction")
	x.Versioning, x.VersioningExt = optEnum[ResourceVersionPolicy](o, "versioning")
	x.ReadHistory, x.ReadHistoryExt = optBool(o, "readHistory")
	x.UpdateCreate, x.UpdateCreateExt = optBool(o, "updateCreate")
	x.ConditionalCreate, x.ConditionalCreateExt = optBool(o, "conditionalCreate")
	x.ConditionalRead, x.ConditionalReadExt = optEnum[ConditionalReadStatus](o, "conditionalRead")
	x.ConditionalUpdate, x.ConditionalUpdateExt = optBool(o, "conditionalUpdate")
	x.ConditionalDelete, x.ConditionalDeleteExt = optEnum[ConditionalDeleteStatus](o, "conditionalDelete")
	x.ReferencePolicy, x.ReferencePolicyExt = enumList[ReferenceHandlingPolicy](o, "referencePolicy")
	x.SearchInclude, x.SearchIncludeExt = stringList(o, "searchInclude", primitive.String)
	x.SearchRevInclude, x.SearchRevIncludeExt = stringList(o, "searchRevInclude", primitive.String)
	x.SearchParam = codec.Structs[CapabilityStatementRestResourceSearchParam](o, "searchParam")
	x.Operation = codec.Structs[CapabilityStatementRestResourceOperation](o, "operation")
	return o.Done()
}

func (x CapabilityStatementRestResource) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encReqString(e, "type", x.Type, x.TypeExt)
	encString(e, "profile", x.Profile, x.ProfileExt)
	encStrings(e, "supportedProfile", x.SupportedProfile, x.SupportedProfileExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
	codec.EncodeList(e, "interaction", x.Interaction)
	encEnum(e, "versioning", x.Versioning, x.VersioningExt)
	encBool(e, "readHistory", x.ReadHistory, x.ReadHistoryExt)
	encBool(e, "updateCreate", x.UpdateCreate, x.UpdateCreateExt)
	encBool(e, "conditionalCreate", x.ConditionalCreate, x.ConditionalCreateExt)
	encEnum(e, "conditionalRead", x.ConditionalRead, x.ConditionalReadExt)
	encBool(e, "conditionalUpdate", x.ConditionalUpdate, x.ConditionalUpdateExt)
	encEnum(e, "conditionalDelete", x.ConditionalDelete, x.ConditionalDeleteExt)
	encEnumList(e, "referencePolicy", x.ReferencePolicy, x.ReferencePolicyExt)
	encStrings(e, "searchInclude", x.SearchInclude, x.SearchIncludeExt)
	encStrings(e, "searchRevInclude", x.SearchRevInclude, x.SearchRevIncludeExt)
	codec.EncodeList(e, "searchParam", x.SearchParam)
	codec.EncodeList(e, "operation", x.Operation)
}

// CapabilityStatementRestResourceInteraction is a RESTful operation supported on a resource type.
type CapabilityStatementRestResourceInteraction struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Code             TypeRestfulInteraction
	CodeExt          *Element
	Documentation    *string
	DocumentationExt *Element
}

func (CapabilityStatementRestResourceInteraction) StructureName() string { return "CapabilityStatementRestResourceInteraction" }

func (x *CapabilityStatementRestResourceInteraction) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Code, x.CodeExt = reqEnum[TypeRestfulInteraction](o, "code")
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.Markdown)
	return o.Done()
}

func (x CapabilityStatementRestResourceInteraction) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encEnum(e, "code", x.Code, x.CodeExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
}

type CapabilityStatementRestResourceSearchParam struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Name             string
	NameExt          *Element
	Definition       *string
	DefinitionExt    *Element
	Type             SearchParamType
	TypeExt          *Element
	Documentation    *string
	DocumentationExt *Element
}

func (CapabilityStatementRestResourceSearchParam) StructureName() string { return "CapabilityStatementRestResourceSearchParam" }

func (x *CapabilityStatementRestResourceSearchParam) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Name, x.NameExt = reqString(o, "name", primitive.String)
	x.Definition, x.DefinitionExt = optString(o, "definition", primitive.Canonical)
	x.Type, x.TypeExt = reqEnum[SearchParamType](o, "type")
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.Markdown)
	return o.Done()
}

func (x CapabilityStatementRestResourceSearchParam) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encReqString(e, "name", x.Name, x.NameExt)
	encString(e, "definition", x.Definition, x.DefinitionExt)
	encEnum(e, "type", x.Type, x.TypeExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
}

type CapabilityStatementRestResourceOperation struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Name             string
	NameExt          *Element
	Definition       string
	DefinitionExt    *Element
	Documentation    *string
	DocumentationExt *Element
}

func (CapabilityStatementRestResourceOperation) StructureName() string { return "CapabilityStatementRestResourceOperation" }

func (x *CapabilityStatementRestResourceOperation) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Name, x.NameExt = reqString(o, "name", primitive.String)
	x.Definition, x.DefinitionExt = reqString(o, "definition", primitive.Canonical)
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.Markdown)
	return o.Done()
}

func (x CapabilityStatementRestResourceOperation) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encReqString(e, "name", x.Name, x.NameExt)
	encReqString(e, "definition", x.Definition, x.DefinitionExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
}

type CapabilityStatementRestInteraction struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Code             SystemRestfulInteraction
	CodeExt          *Element
	Documentation    *string
	DocumentationExt *Element
}

func (CapabilityStatementRestInteraction) StructureName() string { return "CapabilityStatementRestInteraction" }

func (x *CapabilityStatementRestInteraction) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Code, x.CodeExt = reqEnum[SystemRestfulInteraction](o, "code")
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.Markdown)
	return o.Done()
}

func (x CapabilityStatementRestInteraction) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encEnum(e, "code", x.Code, x.CodeExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
}

type CapabilityStatementMessaging struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Endpoint         []CapabilityStatementMessagingEndpoint
	ReliableCache    *int
	ReliableCacheExt *Element
	Documentation    *string
	DocumentationExt *Element
	SupportedMessage []CapabilityStatementMessagingSupportedMessage
}

func (CapabilityStatementMessaging) StructureName() string { return "CapabilityStatementMessaging" }

func (x *CapabilityStatementMessaging) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Endpoint = codec.Structs[CapabilityStatementMessagingEndpoint](o, "endpoint")
	x.ReliableCache, x.ReliableCacheExt = optInt(o, "reliableCache", primitive.UnsignedInt)
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.Markdown)
	x.SupportedMessage = codec.Structs[CapabilityStatementMessagingSupportedMessage](o, "supportedMessage")
	return o.Done()
}

func (x CapabilityStatementMessaging) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "endpoint", x.Endpoint)
	encInt(e, "reliableCache", x.ReliableCache, x.ReliableCacheExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
	codec.EncodeList(e, "supportedMessage", x.SupportedMessage)
}

type CapabilityStatementMessagingEndpoint struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Protocol   Coding
	Address    string
	AddressExt *Element
}

func (CapabilityStatementMessagingEndpoint) StructureName() string { return "CapabilityStatementMessagingEndpoint" }

func (x *CapabilityStatementMessagingEndpoint) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Protocol = codec.Struct[Coding](o, "protocol")
	x.Address, x.AddressExt = reqString(o, "address", primitive.URL)
	return o.Done()
}

func (x CapabilityStatementMessagingEndpoint) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	e.Object("protocol", x.Protocol)
	encReqString(e, "address", x.Address, x.AddressExt)
}

type CapabilityStatementMessagingSupportedMessage struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Mode          EventCapabilityMode
	ModeExt       *Element
	Definition    string
	DefinitionExt *Element
}

func (CapabilityStatementMessagingSupportedMessage) StructureName() string { return "CapabilityStatementMessagingSupportedMessage" }

func (x *CapabilityStatementMessagingSupportedMessage) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Mode, x.ModeExt = reqEnum[EventCapabilityMode](o, "mode")
	x.Definition, x.DefinitionExt = reqString(o, "definition", primitive.Canonical)
	return o.Done()
}

func (x CapabilityStatementMessagingSupportedMessage) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encEnum(e, "mode", x.Mode, x.ModeExt)
	encReqString(e, "definition", x.Definition, x.DefinitionExt)
}

type CapabilityStatementDocument struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Mode             DocumentMode
	ModeExt          *Element
	Documentation    *string
	DocumentationExt *Element
	Profile          string
	ProfileExt       *Element
}

func (CapabilityStatementDocument) StructureName() string { return "CapabilityStatementDocument" }

func (x *CapabilityStatementDocument) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Mode, x.ModeExt = reqEnum[DocumentMode](o, "mode")
	x.Documentation, x.DocumentationExt = optString(o, "documentation", primitive.Markdown)
	x.Profile, x.ProfileExt = reqString(o, "profile", primitive.Canonical)
	return o.Done()
}

func (x CapabilityStatementDocument) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encEnum(e, "mode", x.Mode, x.ModeExt)
	encString(e, "documentation", x.Documentation, x.DocumentationExt)
	encReqString(e, "profile", x.Profile, x.ProfileExt)
}
