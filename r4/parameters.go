package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Parameters is the input or output of an operation.
type Parameters struct {
	ID               *string
	Meta             *Meta
	ImplicitRules    *string
	ImplicitRulesExt *Element
	Language         *string
	LanguageExt      *Element

	Parameter []ParametersParameter
}

func (Parameters) StructureName() string { return "Parameters" }

func (Parameters) ResourceType() string { return "Parameters" }

func (x Parameters) ResourceID() *string { return x.ID }

func (x *Parameters) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("Parameters")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Parameter = codec.Structs[ParametersParameter](o, "parameter")
	return o.Done()
}

func (x Parameters) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "Parameters", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeList(e, "parameter", x.Parameter)
}

// ParametersParameter is one named parameter. It carries a value, a resource or parts, never more than one.
type ParametersParameter struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Name     string
	NameExt  *Element
	Value    AnyValue
	Resource Resource
	Part     []ParametersParameter
}

func (ParametersParameter) StructureName() string { return "ParametersParameter" }

func (x *ParametersParameter) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Name, x.NameExt = reqString(o, "name", primitive.String)
	x.Value = codec.DecodeChoice[AnyValue](o, parametersParameterValue)
	x.Resource = optResource(o, "resource")
	x.Part = codec.Structs[ParametersParameter](o, "part")
	return o.Done()
}

func (x ParametersParameter) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encReqString(e, "name", x.Name, x.NameExt)
	e.Choice(parametersParameterValue, x.Value)
	encResource(e, "resource", x.Resource)
	codec.EncodeList(e, "part", x.Part)
}
