package codec

import "github.com/gofhir/models/primitive"

// Enumerated is a closed set of code literals.
type Enumerated interface {
	~string
	IsValid() bool
}

// Require records a MissingRequiredField failure for key unless present.
func (o *Object) Require(key string, present bool) {
	if !present && o.err == nil {
		o.Missing(key)
	}
}

// Enum reads a code and rejects literals outside T's value set. Membership
// is checked on the raw literal, so malformed codes such as " read" or ""
// are reported as InvalidEnumValue too.
func Enum[T Enumerated](o *Object, key string) (T, bool) {
	var zero T
	raw, ok := o.take(key)
	if !ok {
		return zero, false
	}
	s, ok := o.literal(key, raw, primitive.Code)
	if !ok {
		return zero, false
	}
	v := T(s)
	if !v.IsValid() {
		de := o.fail(ErrInvalidEnumValue, key)
		de.Value = s
		return zero, false
	}
	return v, true
}

// Enums reads a repeating code. null entries decode as "".
func Enums[T Enumerated](o *Object, key string) []T {
	items, ok := o.array(key)
	if !ok {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		if isNull(item) {
			continue
		}
		s, ok := o.literal(key, item, primitive.Code)
		if !ok {
			return nil
		}
		v := T(s)
		if !v.IsValid() {
			de := o.fail(ErrInvalidEnumValue, key)
			de.Value = s
			return nil
		}
		out[i] = v
	}
	return out
}

func decodeChild[T any, PT interface {
	*T
	Decodable
}](o *Object, c *Object) (T, bool) {
	var v T
	c.name = PT(&v).StructureName()
	if err := PT(&v).DecodeFHIR(c); err != nil {
		o.Fail(err)
		return v, false
	}
	return v, true
}

// OptStruct decodes an optional nested structure.
func OptStruct[T any, PT interface {
	*T
	Decodable
}](o *Object, key string) *T {
	c := o.Child(key)
	if c == nil {
		return nil
	}
	v, ok := decodeChild[T, PT](o, c)
	if !ok {
		return nil
	}
	return &v
}

// Struct decodes a required nested structure.
func Struct[T any, PT interface {
	*T
	Decodable
}](o *Object, key string) T {
	p := OptStruct[T, PT](o, key)
	if p == nil {
		o.Require(key, false)
		var zero T
		return zero
	}
	return *p
}

// Structs decodes an array of structures, preserving order. An empty JSON
// array yields an empty non-nil slice.
func Structs[T any, PT interface {
	*T
	Decodable
}](o *Object, key string) []T {
	children, ok := o.Children(key)
	if !ok {
		return nil
	}
	out := make([]T, len(children))
	for i, c := range children {
		if c == nil {
			o.mismatch(key, "object")
			return nil
		}
		v, ok := decodeChild[T, PT](o, c)
		if !ok {
			return nil
		}
		out[i] = v
	}
	return out
}

// PrimitiveExts decodes the "_f" array paired with a repeating primitive.
// null entries stay nil.
func PrimitiveExts[T any, PT interface {
	*T
	Decodable
}](o *Object, key string) []*T {
	children, ok := o.Children(key)
	if !ok {
		return nil
	}
	out := make([]*T, len(children))
	for i, c := range children {
		if c == nil {
			continue
		}
		v, ok := decodeChild[T, PT](o, c)
		if !ok {
			return nil
		}
		out[i] = &v
	}
	return out
}
