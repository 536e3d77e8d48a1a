package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Basic is a resource for concepts not yet defined in FHIR.
type Basic struct {
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

	Identifier []Identifier
	Code       CodeableConcept
	Subject    *Reference
	Created    *string
	CreatedExt *Element
	Author     *Reference
}

func (Basic) StructureName() string { return "Basic" }

func (Basic) ResourceType() string { return "Basic" }

func (x Basic) ResourceID() *string { return x.ID }

func (x *Basic) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("Basic")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Text = codec.OptStruct[Narrative](o, "text")
	x.Contained = resourceList(o, "contained")
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Identifier = codec.Structs[Identifier](o, "identifier")
	x.Code = codec.Struct[CodeableConcept](o, "code")
	x.Subject = codec.OptStruct[Reference](o, "subject")
	x.Created, x.CreatedExt = optString(o, "created", primitive.Date)
	x.Author = codec.OptStruct[Reference](o, "author")
	return o.Done()
}

func (x Basic) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "Basic", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeOpt(e, "text", x.Text)
	codec.EncodeList(e, "contained", x.Contained)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "identifier", x.Identifier)
	e.Object("code", x.Code)
	codec.EncodeOpt(e, "subject", x.Subject)
	encString(e, "created", x.Created, x.CreatedExt)
	codec.EncodeOpt(e, "author", x.Author)
}
