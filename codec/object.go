package codec

import (
	"bytes"
	"sort"

	"github.com/goccy/go-json"

	"github.com/gofhir/models/pool"
	"github.com/gofhir/models/primitive"
)

// DiscriminatorKey is the member carrying a resource's type name.
const DiscriminatorKey = "resourceType"

var usedPool = pool.NewMapPool[string, struct{}](16)

// Object is one JSON object being decoded into a structure. Getters record
// the first failure and turn into no-ops afterwards; DecodeFHIR
// implementations call them in sequence and return Done().
type Object struct {
	opts   *Options
	name   string
	path   string
	fields map[string]json.RawMessage
	used   map[string]struct{}
	err    error
}

var defaultOptions = &Options{}

// NewObject parses data as a JSON object. name is the structure the object
// is decoded as and path its location in the document.
func NewObject(data []byte, name, path string, opts *Options) (*Object, error) {
	if opts == nil {
		opts = defaultOptions
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, &DecodeError{Kind: ErrMalformedJSON, Structure: name, Path: path, Err: errEmptyDocument}
	}
	if data[0] != '{' {
		return nil, &DecodeError{Kind: ErrTypeMismatch, Structure: name, Path: path, Expected: "object"}
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &DecodeError{Kind: ErrMalformedJSON, Structure: name, Path: path, Err: err}
	}
	return newObject(fields, name, path, opts), nil
}

func newObject(fields map[string]json.RawMessage, name, path string, opts *Options) *Object {
	// null members carry no value in FHIR JSON; treat them as absent
	for k, v := range fields {
		if isNull(v) {
			delete(fields, k)
		}
	}
	return &Object{
		opts:   opts,
		name:   name,
		path:   path,
		fields: fields,
		used:   usedPool.Acquire(),
	}
}

// Name returns the structure name the object is decoded as.
func (o *Object) Name() string { return o.name }

// Path returns the instance path of the object.
func (o *Object) Path() string { return o.path }

// Options returns the decode options in effect.
func (o *Object) Options() *Options { return o.opts }

// Err returns the first failure recorded so far.
func (o *Object) Err() error { return o.err }

// Has reports whether a non-null member is present.
func (o *Object) Has(key string) bool {
	_, ok := o.fields[key]
	return ok
}

// Keys returns the member names in sorted order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.fields))
	for k := range o.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Fail records err unless a failure was already recorded.
func (o *Object) Fail(err error) {
	if o.err == nil && err != nil {
		o.err = err
	}
}

func (o *Object) fail(kind error, field string) *DecodeError {
	de := &DecodeError{Kind: kind, Structure: o.name, Path: o.path, Field: field}
	o.Fail(de)
	return de
}

// Missing records a MissingRequiredField failure for key.
func (o *Object) Missing(key string) {
	o.fail(ErrMissingRequiredField, key)
}

func (o *Object) mismatch(key, expected string) {
	de := o.fail(ErrTypeMismatch, key)
	de.Expected = expected
}

func (o *Object) take(key string) (json.RawMessage, bool) {
	if o.err != nil {
		return nil, false
	}
	raw, ok := o.fields[key]
	if ok && o.used != nil {
		o.used[key] = struct{}{}
	}
	return raw, ok
}

// Done finishes the object: in strict mode any member no getter asked for is
// reported as ErrUnknownElement. It returns the first recorded failure.
func (o *Object) Done() error {
	if o.err == nil && o.opts.DisallowUnknownElements {
		var unknown []string
		for k := range o.fields {
			if _, ok := o.used[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			de := o.fail(ErrUnknownElement, unknown[0])
			de.Keys = unknown
		}
	}
	usedPool.Release(o.used)
	o.used = nil
	return o.err
}

// Decode runs v's decoder over the object.
func (o *Object) Decode(v Decodable) error {
	o.name = v.StructureName()
	return v.DecodeFHIR(o)
}

// String reads a string-carried primitive and checks its lexical form.
func (o *Object) String(key string, kind primitive.Kind) (string, bool) {
	raw, ok := o.take(key)
	if !ok {
		return "", false
	}
	s, ok := o.decodeString(key, raw, kind)
	return s, ok
}

func (o *Object) decodeString(key string, raw json.RawMessage, kind primitive.Kind) (string, bool) {
	s, ok := o.literal(key, raw, kind)
	if !ok {
		return "", false
	}
	if !primitive.ValidString(kind, s) {
		o.mismatch(key, kind.String())
		return "", false
	}
	return s, true
}

// literal unquotes a JSON string without checking its lexical form.
func (o *Object) literal(key string, raw json.RawMessage, kind primitive.Kind) (string, bool) {
	if jsonKind(raw) != '"' {
		o.mismatch(key, kind.String())
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		de := o.fail(ErrMalformedJSON, key)
		de.Err = err
		return "", false
	}
	return s, true
}

// Bool reads a boolean.
func (o *Object) Bool(key string) (bool, bool) {
	raw, ok := o.take(key)
	if !ok {
		return false, false
	}
	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	o.mismatch(key, primitive.Boolean.String())
	return false, false
}

// Int reads an integer, positiveInt or unsignedInt.
func (o *Object) Int(key string, kind primitive.Kind) (int, bool) {
	raw, ok := o.take(key)
	if !ok {
		return 0, false
	}
	n, ok := primitive.ParseInteger(kind, string(bytes.TrimSpace(raw)))
	if !ok {
		o.mismatch(key, kind.String())
		return 0, false
	}
	return n, true
}

// Decimal reads a decimal, preserving its literal form.
func (o *Object) Decimal(key string) (primitive.Decimal, bool) {
	raw, ok := o.take(key)
	if !ok {
		return primitive.Decimal{}, false
	}
	d, err := primitive.ParseDecimal(string(bytes.TrimSpace(raw)))
	if err != nil {
		o.mismatch(key, primitive.DecimalKind.String())
		return primitive.Decimal{}, false
	}
	return d, true
}

// Strings reads a repeating string-carried primitive. null entries, which
// stand in for values that only carry extensions, decode as "". An empty
// JSON array yields an empty non-nil slice.
func (o *Object) Strings(key string, kind primitive.Kind) ([]string, bool) {
	items, ok := o.array(key)
	if !ok {
		return nil, false
	}
	out := make([]string, len(items))
	for i, item := range items {
		if isNull(item) {
			continue
		}
		s, ok := o.decodeString(key, item, kind)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}

func (o *Object) array(key string) ([]json.RawMessage, bool) {
	raw, ok := o.take(key)
	if !ok {
		return nil, false
	}
	if jsonKind(raw) != '[' {
		o.mismatch(key, "array")
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		de := o.fail(ErrMalformedJSON, key)
		de.Err = err
		return nil, false
	}
	if items == nil {
		items = []json.RawMessage{}
	}
	return items, true
}

// Child returns the nested object stored under key, or nil when absent.
func (o *Object) Child(key string) *Object {
	raw, ok := o.take(key)
	if !ok {
		return nil
	}
	return o.child(key, raw, pool.MemberPath(o.path, key))
}

func (o *Object) child(key string, raw json.RawMessage, path string) *Object {
	if jsonKind(raw) != '{' {
		o.mismatch(key, "object")
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		de := o.fail(ErrMalformedJSON, key)
		de.Err = err
		return nil
	}
	return newObject(fields, "", path, o.opts)
}

// Children returns the objects of an array member. A null entry yields a nil
// element; callers decide whether holes are allowed. The boolean is false
// when the member is absent or malformed.
func (o *Object) Children(key string) ([]*Object, bool) {
	items, ok := o.array(key)
	if !ok {
		return nil, false
	}
	out := make([]*Object, len(items))
	for i, item := range items {
		if isNull(item) {
			continue
		}
		c := o.child(key, item, pool.ElementPath(o.path, key, i))
		if c == nil {
			return nil, false
		}
		out[i] = c
	}
	return out, true
}

// Discriminator consumes the resourceType member. A missing member records
// ErrMissingDiscriminator.
func (o *Object) Discriminator() (string, bool) {
	raw, ok := o.take(DiscriminatorKey)
	if !ok {
		if o.err == nil {
			o.fail(ErrMissingDiscriminator, DiscriminatorKey)
		}
		return "", false
	}
	if jsonKind(raw) != '"' {
		o.mismatch(DiscriminatorKey, "string")
		return "", false
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		de := o.fail(ErrMalformedJSON, DiscriminatorKey)
		de.Err = err
		return "", false
	}
	return name, true
}

// ExpectResourceType checks that a resourceType member, if present, names
// the structure being decoded.
func (o *Object) ExpectResourceType(name string) {
	if !o.Has(DiscriminatorKey) {
		return
	}
	got, ok := o.Discriminator()
	if ok && got != name {
		de := o.fail(ErrTypeMismatch, DiscriminatorKey)
		de.Expected = name
		de.Value = got
	}
}

// CheckModifiers enforces modifier extension processing rules for the urls
// found under key.
func (o *Object) CheckModifiers(key string, urls []string) {
	if o.err != nil || !o.opts.CheckModifierExtensions {
		return
	}
	for _, url := range urls {
		if !o.opts.Understands(url) {
			de := o.fail(ErrUnrecognizedModifier, key)
			de.Value = url
			return
		}
	}
}

// jsonKind returns the first significant byte of a raw value.
func jsonKind(raw json.RawMessage) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
