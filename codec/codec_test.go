package codec

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/models/primitive"
)

type testKind string

func (k testKind) IsValid() bool {
	switch k {
	case "read", "vread", "update":
		return true
	}
	return false
}

type testExt struct {
	ID  *string
	URL string
}

func (*testExt) StructureName() string { return "Element" }

func (x *testExt) DecodeFHIR(o *Object) error {
	if s, ok := o.String("id", primitive.String); ok {
		x.ID = &s
	}
	if s, ok := o.String("url", primitive.URI); ok {
		x.URL = s
	}
	return o.Done()
}

func (x testExt) EncodeFHIR(e *ObjectEncoder) {
	e.OptString("id", x.ID)
	if x.URL != "" {
		e.String("url", x.URL)
	}
}

type testString struct {
	Value *string
	Ext   *testExt
}

func (*testString) ChoiceSuffix() string { return "String" }

func (v *testString) EncodeChoice(e *ObjectEncoder, key string) {
	e.OptString(key, v.Value)
	EncodeOpt(e, "_"+key, v.Ext)
}

type testAttachment struct {
	Title *string
}

func (*testAttachment) ChoiceSuffix() string { return "Attachment" }

func (v *testAttachment) EncodeChoice(e *ObjectEncoder, key string) {
	e.Object(key, *v)
}

func (*testAttachment) StructureName() string { return "Attachment" }

func (v *testAttachment) DecodeFHIR(o *Object) error {
	if s, ok := o.String("title", primitive.String); ok {
		v.Title = &s
	}
	return o.Done()
}

func (v testAttachment) EncodeFHIR(e *ObjectEncoder) {
	e.OptString("title", v.Title)
}

func newContentGroup(required bool) *ChoiceGroup {
	return &ChoiceGroup{
		Name:     "content",
		Required: required,
		Types: []ChoiceType{
			{Suffix: "String", Primitive: true, Decode: func(o *Object, key string) ChoiceValue {
				v := &testString{}
				if s, ok := o.String(key, primitive.String); ok {
					v.Value = &s
				}
				v.Ext = OptStruct[testExt](o, "_"+key)
				return v
			}},
			{Suffix: "Attachment", Decode: func(o *Object, key string) ChoiceValue {
				return OptStruct[testAttachment](o, key)
			}},
		},
	}
}

type testPayload struct {
	Kind     testKind
	Content  ChoiceValue
	Given    []string
	GivenExt []*testExt
	Items    []testExt
}

var testContent = newContentGroup(true)

func (*testPayload) StructureName() string { return "Payload" }

func (p *testPayload) DecodeFHIR(o *Object) error {
	if k, ok := Enum[testKind](o, "kind"); ok {
		p.Kind = k
	}
	p.Content = o.Choice(testContent)
	p.Given, _ = o.Strings("given", primitive.String)
	p.GivenExt = PrimitiveExts[testExt](o, "_given")
	p.Items = Structs[testExt](o, "item")
	return o.Done()
}

func (p testPayload) EncodeFHIR(e *ObjectEncoder) {
	if p.Kind != "" {
		e.String("kind", string(p.Kind))
	}
	e.Choice(testContent, p.Content)
	e.Strings("given", p.Given)
	EncodeSparse(e, "_given", p.GivenExt)
	EncodeList(e, "item", p.Items)
}

func decodePayload(t *testing.T, doc string, opts *Options) (*testPayload, error) {
	t.Helper()
	var p testPayload
	err := UnmarshalInto([]byte(doc), &p, opts)
	return &p, err
}

func TestChoiceSingleVariant(t *testing.T) {
	p, err := decodePayload(t, `{"contentString":"hello"}`, nil)
	require.NoError(t, err)
	v, ok := p.Content.(*testString)
	require.True(t, ok)
	assert.Equal(t, "hello", *v.Value)
	assert.JSONEq(t, `{"contentString":"hello"}`, string(Marshal(*p)))
}

func TestChoiceAmbiguous(t *testing.T) {
	_, err := decodePayload(t, `{"contentString":"hello","contentAttachment":{}}`, nil)
	require.ErrorIs(t, err, ErrAmbiguousChoice)
	de, ok := AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "content", de.Field)
	assert.Equal(t, []string{"contentString", "contentAttachment"}, de.Keys)
	assert.Equal(t, "Payload.content[x]", de.Location())
}

func TestChoiceAmbiguousWithExtensionSibling(t *testing.T) {
	_, err := decodePayload(t, `{"_contentString":{"id":"a"},"contentAttachment":{}}`, nil)
	require.ErrorIs(t, err, ErrAmbiguousChoice)
}

func TestChoiceMissingRequired(t *testing.T) {
	_, err := decodePayload(t, `{"kind":"read"}`, nil)
	require.ErrorIs(t, err, ErrMissingRequiredChoice)
	de, _ := AsDecodeError(err)
	assert.Equal(t, "content", de.Field)
}

func TestChoiceExtensionOnly(t *testing.T) {
	doc := `{"_contentString":{"id":"x1"}}`
	p, err := decodePayload(t, doc, nil)
	require.NoError(t, err)
	v := p.Content.(*testString)
	assert.Nil(t, v.Value)
	require.NotNil(t, v.Ext)
	assert.JSONEq(t, doc, string(Marshal(*p)))
}

func TestEncodeChoiceContract(t *testing.T) {
	assert.Panics(t, func() {
		Marshal(testPayload{})
	})
	var typedNil *testString
	assert.Panics(t, func() {
		Marshal(testPayload{Content: typedNil})
	})
	optional := newContentGroup(false)
	assert.NotPanics(t, func() {
		e := ObjectEncoder{first: true}
		e.Choice(optional, nil)
		assert.Empty(t, e.buf)
	})
}

func TestEnum(t *testing.T) {
	p, err := decodePayload(t, `{"kind":"vread","contentString":"x"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, testKind("vread"), p.Kind)

	_, err = decodePayload(t, `{"kind":"bogus","contentString":"x"}`, nil)
	require.ErrorIs(t, err, ErrInvalidEnumValue)
	de, _ := AsDecodeError(err)
	assert.Equal(t, "kind", de.Field)
	assert.Equal(t, "bogus", de.Value)
}

func TestEnumClosure(t *testing.T) {
	for _, literal := range []string{"bogus", "READ", " read", "read ", "re  ad", ""} {
		doc := `{"kind":` + strconv.Quote(literal) + `,"contentString":"x"}`
		_, err := decodePayload(t, doc, nil)
		require.ErrorIs(t, err, ErrInvalidEnumValue, literal)
		de, _ := AsDecodeError(err)
		assert.Equal(t, "kind", de.Field)
		assert.Equal(t, literal, de.Value)
	}

	_, err := decodePayload(t, `{"kind":7,"contentString":"x"}`, nil)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestEnumsClosure(t *testing.T) {
	o, err := NewObject([]byte(`{"kinds":["read",null,"update"]}`), "Test", "Test", nil)
	require.NoError(t, err)
	assert.Equal(t, []testKind{"read", "", "update"}, Enums[testKind](o, "kinds"))
	require.NoError(t, o.Done())

	for _, doc := range []string{`{"kinds":["read",""]}`, `{"kinds":[" update"]}`} {
		o, err := NewObject([]byte(doc), "Test", "Test", nil)
		require.NoError(t, err)
		assert.Nil(t, Enums[testKind](o, "kinds"))
		assert.ErrorIs(t, o.Done(), ErrInvalidEnumValue, doc)
	}
}

func TestChoiceVariantOutsideTable(t *testing.T) {
	for _, doc := range []string{
		`{"contentBoolean":true}`,
		`{"contentString":"x","contentBoolean":true}`,
		`{"_contentCode":{"id":"a"}}`,
	} {
		_, err := decodePayload(t, doc, nil)
		require.ErrorIs(t, err, ErrTypeMismatch, doc)
		de, _ := AsDecodeError(err)
		assert.Equal(t, "content", de.Field)
		assert.Equal(t, "Payload.content[x]", de.Location())
		assert.Equal(t, "one of String, Attachment", de.Expected)
	}

	_, err := decodePayload(t, `{"contentString":"x","contents":1,"contentment":true}`, nil)
	require.NoError(t, err, "members that only share the prefix are not variants")

	_, err = decodePayload(t, `{"contentString":"x","contentBoolean":true,"contentDate":"2020"}`, nil)
	assert.EqualError(t, err,
		`fhir: Payload.content: type mismatch "contentBoolean", expected one of String, Attachment (at Payload)`)
}

func TestTypeMismatch(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"number for string", `{"contentString":1}`},
		{"string for object", `{"contentAttachment":"x"}`},
		{"object for array", `{"contentString":"x","item":{}}`},
		{"null inside object array", `{"contentString":"x","item":[null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodePayload(t, tt.doc, nil)
			assert.ErrorIs(t, err, ErrTypeMismatch)
		})
	}
}

func TestDecodeIsAtomic(t *testing.T) {
	hello := "before"
	p := testPayload{Content: &testString{Value: &hello}}
	err := UnmarshalInto([]byte(`{"contentString":"x","kind":"bogus"}`), &p, nil)
	require.Error(t, err)
	assert.Equal(t, "before", *p.Content.(*testString).Value)
}

func TestSparsePrimitiveArrays(t *testing.T) {
	doc := `{"contentString":"x","given":["a",null,"c"],"_given":[null,{"id":"g2"},null]}`
	p, err := decodePayload(t, doc, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "", "c"}, p.Given)
	require.Len(t, p.GivenExt, 3)
	assert.Nil(t, p.GivenExt[0])
	assert.Equal(t, "g2", *p.GivenExt[1].ID)
	assert.JSONEq(t, doc, string(Marshal(*p)))
}

func TestEmptyArraysRoundTrip(t *testing.T) {
	doc := `{"contentString":"x","item":[]}`
	p, err := decodePayload(t, doc, nil)
	require.NoError(t, err)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
	assert.JSONEq(t, doc, string(Marshal(*p)))

	p, err = decodePayload(t, `{"contentString":"x"}`, nil)
	require.NoError(t, err)
	assert.Nil(t, p.Items)
}

func TestNullMembersAreAbsent(t *testing.T) {
	p, err := decodePayload(t, `{"contentString":"x","kind":null,"item":null}`, nil)
	require.NoError(t, err)
	assert.Empty(t, p.Kind)
	assert.Nil(t, p.Items)
}

func TestStrictMode(t *testing.T) {
	doc := `{"contentString":"x","zeta":1,"alpha":true}`
	_, err := decodePayload(t, doc, nil)
	require.NoError(t, err)

	_, err = decodePayload(t, doc, &Options{DisallowUnknownElements: true})
	require.ErrorIs(t, err, ErrUnknownElement)
	de, _ := AsDecodeError(err)
	assert.Equal(t, "alpha", de.Field)
	assert.Equal(t, []string{"alpha", "zeta"}, de.Keys)
}

func TestNestedErrorPath(t *testing.T) {
	_, err := decodePayload(t, `{"contentString":"x","item":[{"url":"a"},{"url":"has space"}]}`, nil)
	require.ErrorIs(t, err, ErrTypeMismatch)
	de, _ := AsDecodeError(err)
	assert.Equal(t, "Payload.item[1]", de.Path)
	assert.Equal(t, "url", de.Field)
	assert.Equal(t, "Element", de.Structure)
}

func TestMalformedInput(t *testing.T) {
	for _, doc := range []string{``, `{"a":`, `[1]`} {
		_, err := decodePayload(t, doc, nil)
		require.Error(t, err, doc)
		_, ok := AsDecodeError(err)
		assert.True(t, ok)
	}
}

func TestDispatch(t *testing.T) {
	lookup := func(name string) (Decodable, bool) {
		if name == "Payload" {
			return &testPayload{}, true
		}
		return nil, false
	}

	v, err := Dispatch([]byte(`{"resourceType":"Payload","contentString":"x"}`), lookup, nil)
	require.NoError(t, err)
	assert.IsType(t, &testPayload{}, v)

	_, err = Dispatch([]byte(`{"resourceType":"DoesNotExist"}`), lookup, nil)
	require.ErrorIs(t, err, ErrUnknownResourceType)
	de, _ := AsDecodeError(err)
	assert.Equal(t, "DoesNotExist", de.Value)

	_, err = Dispatch([]byte(`{}`), lookup, nil)
	require.ErrorIs(t, err, ErrMissingDiscriminator)
}

func TestModifierCheck(t *testing.T) {
	o, err := NewObject([]byte(`{}`), "Test", "Test", &Options{
		CheckModifierExtensions: true,
		UnderstoodModifiers:     map[string]struct{}{"http://known": {}},
	})
	require.NoError(t, err)
	o.CheckModifiers("modifierExtension", []string{"http://known"})
	require.NoError(t, o.Err())
	o.CheckModifiers("modifierExtension", []string{"http://known", "http://other"})
	err = o.Done()
	require.ErrorIs(t, err, ErrUnrecognizedModifier)
	de, _ := AsDecodeError(err)
	assert.Equal(t, "http://other", de.Value)
}

func TestStringEscaping(t *testing.T) {
	s := `<div xmlns="http://www.w3.org/1999/xhtml">a & "b"</div>`
	out := Marshal(testExt{ID: &s})
	assert.Contains(t, string(out), "<div")
	assert.NotContains(t, string(out), `\u003c`)
	assert.NotContains(t, string(out), `\u0026`)
	assert.JSONEq(t, `{"id":"<div xmlns=\"http://www.w3.org/1999/xhtml\">a & \"b\"</div>"}`, string(out))
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{
		Kind:      ErrInvalidEnumValue,
		Structure: "CapabilityStatementRestResourceInteraction",
		Path:      "CapabilityStatement.rest[0].resource[0].interaction[0]",
		Field:     "code",
		Value:     "bogus",
	}
	assert.Equal(t,
		`fhir: CapabilityStatementRestResourceInteraction.code: invalid enum value "bogus" (at CapabilityStatement.rest[0].resource[0].interaction[0])`,
		err.Error())
	assert.True(t, errors.Is(err, ErrInvalidEnumValue))
}
