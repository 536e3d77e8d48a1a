package r4_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/r4"
)

func TestExtensionPreservesUnknownURL(t *testing.T) {
	doc := `{"url":"http://example.org/fhir/StructureDefinition/anything","extension":[{"url":"nested","valueInteger":3}]}`
	var ext r4.Extension
	require.NoError(t, codec.UnmarshalInto([]byte(doc), &ext, nil))

	assert.Nil(t, ext.Value)
	require.Len(t, ext.Extension, 1)
	n := ext.Extension[0].Value.(*r4.Integer)
	assert.Equal(t, 3, *n.Value)
	assert.JSONEq(t, doc, string(codec.Marshal(ext)))
}

func TestExtensionRequiresURL(t *testing.T) {
	var ext r4.Extension
	err := codec.UnmarshalInto([]byte(`{"valueString":"x"}`), &ext, nil)
	require.ErrorIs(t, err, codec.ErrMissingRequiredField)
	de, _ := codec.AsDecodeError(err)
	assert.Equal(t, "url", de.Field)
}

func TestExtensionValueAmbiguous(t *testing.T) {
	var ext r4.Extension
	err := codec.UnmarshalInto([]byte(`{"url":"u","valueString":"x","valueCode":"y"}`), &ext, nil)
	require.ErrorIs(t, err, codec.ErrAmbiguousChoice)
}

func TestExtensionsByURL(t *testing.T) {
	list := []r4.Extension{
		{URL: "a", Value: &r4.String{Value: r4.Ptr("1")}},
		{URL: "b"},
		{URL: "a", Value: &r4.String{Value: r4.Ptr("2")}},
	}
	found := r4.Extensions(list, "a")
	require.Len(t, found, 2)
	assert.Equal(t, "2", *found[1].Value.(*r4.String).Value)
	assert.Empty(t, r4.Extensions(list, "c"))
}

func TestPrimitiveExtensionOnly(t *testing.T) {
	doc := `{"resourceType":"Patient","_gender":{"extension":[{"url":"http://example.org/reason","valueCode":"asked-declined"}]}}`
	v, err := codec.Dispatch([]byte(doc), r4.Lookup, nil)
	require.NoError(t, err)

	p := v.(*r4.Patient)
	assert.Empty(t, p.Gender)
	require.NotNil(t, p.GenderExt)
	assert.JSONEq(t, doc, string(codec.Marshal(p)))
}

func TestRequiredPrimitiveSatisfiedByExtension(t *testing.T) {
	var in r4.CapabilityStatementRestResourceInteraction
	doc := `{"_code":{"extension":[{"url":"http://example.org/absent","valueCode":"masked"}]}}`
	require.NoError(t, codec.UnmarshalInto([]byte(doc), &in, nil))
	assert.Empty(t, in.Code)
	assert.JSONEq(t, doc, string(codec.Marshal(in)))
}

func TestSparsePrimitiveArray(t *testing.T) {
	doc := `{"family":"Chalmers","given":["Peter",null,"James"],"_given":[null,{"id":"g2","extension":[{"url":"http://example.org/initial","valueBoolean":true}]},null]}`
	var name r4.HumanName
	require.NoError(t, codec.UnmarshalInto([]byte(doc), &name, nil))

	assert.Equal(t, []string{"Peter", "", "James"}, name.Given)
	require.Len(t, name.GivenExt, 3)
	assert.Nil(t, name.GivenExt[0])
	assert.Equal(t, "g2", *name.GivenExt[1].ID)
	assert.Nil(t, name.GivenExt[2])
	assert.JSONEq(t, doc, string(codec.Marshal(name)))
}

func TestSparseArrayRejectsWrongEntry(t *testing.T) {
	var name r4.HumanName
	err := codec.UnmarshalInto([]byte(`{"given":["Peter",7]}`), &name, nil)
	require.ErrorIs(t, err, codec.ErrTypeMismatch)
}

func TestModifierExtensionCheck(t *testing.T) {
	const url = "http://example.org/do-not-use/fhir-extensions/referral#requestingPractitioner"

	_, err := codec.Dispatch([]byte(basic), r4.Lookup, nil)
	require.NoError(t, err)

	strict := &codec.Options{CheckModifierExtensions: true}
	_, err = codec.Dispatch([]byte(basic), r4.Lookup, strict)
	require.ErrorIs(t, err, codec.ErrUnrecognizedModifier)
	de, _ := codec.AsDecodeError(err)
	assert.Equal(t, url, de.Value)
	assert.Equal(t, "modifierExtension", de.Field)

	strict.UnderstoodModifiers = map[string]struct{}{url: {}}
	_, err = codec.Dispatch([]byte(basic), r4.Lookup, strict)
	require.NoError(t, err)
}

func TestContainedReference(t *testing.T) {
	v, err := codec.Dispatch([]byte(measureReport), r4.Lookup, nil)
	require.NoError(t, err)
	mr := v.(*r4.MeasureReport)

	ref := mr.EvaluatedResource[0].Reference
	found, ok := r4.Contained(mr.Contained, *ref)
	require.True(t, ok)
	assert.Equal(t, "Basic", found.ResourceType())

	_, ok = r4.Contained(mr.Contained, "#missing")
	assert.False(t, ok)
}

func TestQuantityProfiles(t *testing.T) {
	doc := `{"value":42,"unit":"yr","system":"http://unitsofmeasure.org","code":"a"}`
	var age r4.Age
	require.NoError(t, codec.UnmarshalInto([]byte(doc), &age, nil))
	assert.Equal(t, "yr", *age.Unit)
	assert.Equal(t, "Age", age.StructureName())
	assert.JSONEq(t, doc, string(codec.Marshal(age)))

	var d r4.Distance
	err := codec.UnmarshalInto([]byte(`{"comparator":"~"}`), &d, nil)
	require.ErrorIs(t, err, codec.ErrInvalidEnumValue)
}

func TestReferenceIdentifierNesting(t *testing.T) {
	doc := `{"reference":"Patient/1","type":"Patient","identifier":{"system":"http://example.org/mrn","value":"123","assigner":{"display":"Acme"}},"display":"Peter"}`
	var ref r4.Reference
	require.NoError(t, codec.UnmarshalInto([]byte(doc), &ref, nil))
	require.NotNil(t, ref.Identifier)
	require.NotNil(t, ref.Identifier.Assigner)
	assert.Equal(t, "Acme", *ref.Identifier.Assigner.Display)
	assert.JSONEq(t, doc, string(codec.Marshal(ref)))
}
