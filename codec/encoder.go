package codec

import (
	"strconv"

	"github.com/goccy/go-json"

	"github.com/gofhir/models/primitive"
)

// ObjectEncoder appends the members of one JSON object. Members are written
// in call order; structures call it in their table order.
type ObjectEncoder struct {
	buf   []byte
	first bool
}

func (e *ObjectEncoder) key(k string) {
	if !e.first {
		e.buf = append(e.buf, ',')
	}
	e.first = false
	e.buf = appendString(e.buf, k)
	e.buf = append(e.buf, ':')
}

func appendString(buf []byte, s string) []byte {
	b, err := json.MarshalWithOption(s, json.DisableHTMLEscape())
	if err != nil {
		// strings always marshal; keep the output well formed regardless
		return append(buf, strconv.Quote(s)...)
	}
	return append(buf, b...)
}

// String writes a string member.
func (e *ObjectEncoder) String(key, s string) {
	e.key(key)
	e.buf = appendString(e.buf, s)
}

// OptString writes a string member when s is set.
func (e *ObjectEncoder) OptString(key string, s *string) {
	if s != nil {
		e.String(key, *s)
	}
}

// Bool writes a boolean member.
func (e *ObjectEncoder) Bool(key string, b bool) {
	e.key(key)
	e.buf = strconv.AppendBool(e.buf, b)
}

// OptBool writes a boolean member when b is set.
func (e *ObjectEncoder) OptBool(key string, b *bool) {
	if b != nil {
		e.Bool(key, *b)
	}
}

// Int writes an integer member.
func (e *ObjectEncoder) Int(key string, n int) {
	e.key(key)
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// OptInt writes an integer member when n is set.
func (e *ObjectEncoder) OptInt(key string, n *int) {
	if n != nil {
		e.Int(key, *n)
	}
}

// Decimal writes a decimal member using its preserved literal.
func (e *ObjectEncoder) Decimal(key string, d primitive.Decimal) {
	e.key(key)
	e.buf = append(e.buf, d.String()...)
}

// OptDecimal writes a decimal member when d is set.
func (e *ObjectEncoder) OptDecimal(key string, d *primitive.Decimal) {
	if d != nil {
		e.Decimal(key, *d)
	}
}

// Raw writes a member whose value is already encoded JSON.
func (e *ObjectEncoder) Raw(key string, raw []byte) {
	e.key(key)
	e.buf = append(e.buf, raw...)
}

// Object writes a nested structure.
func (e *ObjectEncoder) Object(key string, v Encodable) {
	e.key(key)
	e.appendObject(v)
}

func (e *ObjectEncoder) appendObject(v Encodable) {
	child := ObjectEncoder{buf: append(e.buf, '{'), first: true}
	v.EncodeFHIR(&child)
	e.buf = append(child.buf, '}')
}

// Strings writes a repeating string-carried primitive. "" entries are written
// as null, the placeholder for values that only carry extensions. A nil
// slice writes nothing; an empty one writes [].
func (e *ObjectEncoder) Strings(key string, list []string) {
	if list == nil {
		return
	}
	e.key(key)
	e.buf = append(e.buf, '[')
	for i, s := range list {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		if s == "" {
			e.buf = append(e.buf, "null"...)
			continue
		}
		e.buf = appendString(e.buf, s)
	}
	e.buf = append(e.buf, ']')
}

// EncodeOpt writes a nested structure when v is set.
func EncodeOpt[T any, PT interface {
	*T
	Encodable
}](e *ObjectEncoder, key string, v *T) {
	if v != nil {
		e.Object(key, PT(v))
	}
}

// EncodeList writes an array of structures. A nil slice writes nothing; an
// empty one writes [].
func EncodeList[E Encodable](e *ObjectEncoder, key string, list []E) {
	if list == nil {
		return
	}
	e.key(key)
	e.buf = append(e.buf, '[')
	for i := range list {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.appendObject(list[i])
	}
	e.buf = append(e.buf, ']')
}

// EncodeSparse writes the "_f" array paired with a repeating primitive; nil
// entries are written as null.
func EncodeSparse[T any, PT interface {
	*T
	Encodable
}](e *ObjectEncoder, key string, list []*T) {
	if list == nil {
		return
	}
	e.key(key)
	e.buf = append(e.buf, '[')
	for i, v := range list {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		if v == nil {
			e.buf = append(e.buf, "null"...)
			continue
		}
		e.appendObject(PT(v))
	}
	e.buf = append(e.buf, ']')
}

// EncodeEnums writes a repeating code.
func EncodeEnums[T ~string](e *ObjectEncoder, key string, list []T) {
	if list == nil {
		return
	}
	s := make([]string, len(list))
	for i, v := range list {
		s[i] = string(v)
	}
	e.Strings(key, s)
}
