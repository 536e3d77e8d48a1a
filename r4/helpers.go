package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Ptr returns a pointer to v. It is handy for optional fields:
//
//	name := r4.HumanName{Family: r4.Ptr("Chalmers")}
func Ptr[T any](v T) *T {
	return &v
}

func primitiveExt(o *codec.Object, key string) *Element {
	return codec.OptStruct[Element](o, "_"+key)
}

func elementID(o *codec.Object) *string {
	if s, ok := o.String("id", primitive.String); ok {
		return &s
	}
	return nil
}

func extensions(o *codec.Object) []Extension {
	return codec.Structs[Extension](o, "extension")
}

func modifierExtensions(o *codec.Object) []Extension {
	mods := codec.Structs[Extension](o, "modifierExtension")
	if len(mods) > 0 {
		urls := make([]string, len(mods))
		for i := range mods {
			urls[i] = mods[i].URL
		}
		o.CheckModifiers("modifierExtension", urls)
	}
	return mods
}

func optString(o *codec.Object, key string, kind primitive.Kind) (*string, *Element) {
	var v *string
	if s, ok := o.String(key, kind); ok {
		v = &s
	}
	return v, primitiveExt(o, key)
}

// reqString reads a 1..1 primitive. The extension sibling alone satisfies the
// cardinality.
func reqString(o *codec.Object, key string, kind primitive.Kind) (string, *Element) {
	s, _ := o.String(key, kind)
	ext := primitiveExt(o, key)
	o.Require(key, s != "" || ext != nil)
	return s, ext
}

// reqValue reads a 1..1 primitive that has no extension sibling, such as
// Extension.url and Narrative.div.
func reqValue(o *codec.Object, key string, kind primitive.Kind) string {
	s, ok := o.String(key, kind)
	o.Require(key, ok)
	return s
}

func optBool(o *codec.Object, key string) (*bool, *Element) {
	var v *bool
	if b, ok := o.Bool(key); ok {
		v = &b
	}
	return v, primitiveExt(o, key)
}

func optInt(o *codec.Object, key string, kind primitive.Kind) (*int, *Element) {
	var v *int
	if n, ok := o.Int(key, kind); ok {
		v = &n
	}
	return v, primitiveExt(o, key)
}

func reqInt(o *codec.Object, key string, kind primitive.Kind) (*int, *Element) {
	v, ext := optInt(o, key, kind)
	o.Require(key, v != nil || ext != nil)
	return v, ext
}

func optDecimal(o *codec.Object, key string) (*primitive.Decimal, *Element) {
	var v *primitive.Decimal
	if d, ok := o.Decimal(key); ok {
		v = &d
	}
	return v, primitiveExt(o, key)
}

func reqDecimal(o *codec.Object, key string) (*primitive.Decimal, *Element) {
	v, ext := optDecimal(o, key)
	o.Require(key, v != nil || ext != nil)
	return v, ext
}

func optEnum[T codec.Enumerated](o *codec.Object, key string) (T, *Element) {
	v, _ := codec.Enum[T](o, key)
	return v, primitiveExt(o, key)
}

func reqEnum[T codec.Enumerated](o *codec.Object, key string) (T, *Element) {
	v, ext := optEnum[T](o, key)
	o.Require(key, v != "" || ext != nil)
	return v, ext
}

func enumList[T codec.Enumerated](o *codec.Object, key string) ([]T, []*Element) {
	return codec.Enums[T](o, key), codec.PrimitiveExts[Element](o, "_"+key)
}

func stringList(o *codec.Object, key string, kind primitive.Kind) ([]string, []*Element) {
	v, _ := o.Strings(key, kind)
	return v, codec.PrimitiveExts[Element](o, "_"+key)
}

func reqStringList(o *codec.Object, key string, kind primitive.Kind) ([]string, []*Element) {
	v, ext := stringList(o, key, kind)
	o.Require(key, len(v) > 0 || len(ext) > 0)
	return v, ext
}

// reqList enforces a 1..* cardinality on a decoded array.
func reqList[T any](o *codec.Object, key string, list []T) []T {
	o.Require(key, len(list) > 0)
	return list
}

func encString(e *codec.ObjectEncoder, key string, v *string, ext *Element) {
	e.OptString(key, v)
	codec.EncodeOpt(e, "_"+key, ext)
}

func encReqString(e *codec.ObjectEncoder, key, v string, ext *Element) {
	if v != "" {
		e.String(key, v)
	}
	codec.EncodeOpt(e, "_"+key, ext)
}

func encBool(e *codec.ObjectEncoder, key string, v *bool, ext *Element) {
	e.OptBool(key, v)
	codec.EncodeOpt(e, "_"+key, ext)
}

func encInt(e *codec.ObjectEncoder, key string, v *int, ext *Element) {
	e.OptInt(key, v)
	codec.EncodeOpt(e, "_"+key, ext)
}

func encDecimal(e *codec.ObjectEncoder, key string, v *primitive.Decimal, ext *Element) {
	e.OptDecimal(key, v)
	codec.EncodeOpt(e, "_"+key, ext)
}

func encEnum[T ~string](e *codec.ObjectEncoder, key string, v T, ext *Element) {
	if v != "" {
		e.String(key, string(v))
	}
	codec.EncodeOpt(e, "_"+key, ext)
}

func encEnumList[T ~string](e *codec.ObjectEncoder, key string, v []T, ext []*Element) {
	codec.EncodeEnums(e, key, v)
	codec.EncodeSparse(e, "_"+key, ext)
}

func encStrings(e *codec.ObjectEncoder, key string, v []string, ext []*Element) {
	e.Strings(key, v)
	codec.EncodeSparse(e, "_"+key, ext)
}

func encResourceHeader(e *codec.ObjectEncoder, resourceType string, id *string, meta *Meta,
	implicitRules *string, implicitRulesExt *Element, language *string, languageExt *Element) {
	e.String(codec.DiscriminatorKey, resourceType)
	e.OptString("id", id)
	codec.EncodeOpt(e, "meta", meta)
	encString(e, "implicitRules", implicitRules, implicitRulesExt)
	encString(e, "language", language, languageExt)
}
