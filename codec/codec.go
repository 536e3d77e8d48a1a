// Package codec is the runtime shared by every FHIR structure: a decoder over
// one JSON object at a time, an encoder that writes members in table order,
// and the choice-group ([x]) handling that maps a flat set of suffixed keys
// to a single tagged variant and back.
//
// Structures implement Decodable and Encodable by hand-written field tables;
// the helpers here keep those tables short and uniform.
package codec

import (
	"github.com/gofhir/models/pool"
)

// Decodable is a structure that can be populated from a JSON object.
type Decodable interface {
	// StructureName returns the FHIR name of the structure, e.g. "Money" or
	// "CommunicationPayload".
	StructureName() string

	// DecodeFHIR reads the structure's members from o and returns o.Done().
	DecodeFHIR(o *Object) error
}

// Encodable is a structure that can write its members into a JSON object.
type Encodable interface {
	EncodeFHIR(e *ObjectEncoder)
}

// Lookup maps a resourceType discriminator to a fresh, empty structure.
type Lookup func(resourceType string) (Decodable, bool)

// Unmarshal decodes data into v. v is left untouched on failure only if it
// was empty; use UnmarshalInto for atomic replacement.
func Unmarshal(data []byte, v Decodable, opts *Options) error {
	name := v.StructureName()
	o, err := NewObject(data, name, name, opts)
	if err != nil {
		return err
	}
	return v.DecodeFHIR(o)
}

// UnmarshalInto decodes data into a fresh T and stores it in dst only when
// decoding succeeds.
func UnmarshalInto[T any, PT interface {
	*T
	Decodable
}](data []byte, dst PT, opts *Options) error {
	var tmp T
	if err := Unmarshal(data, PT(&tmp), opts); err != nil {
		return err
	}
	*dst = tmp
	return nil
}

// Dispatch decodes a document whose concrete structure is named by its
// resourceType member.
func Dispatch(data []byte, lookup Lookup, opts *Options) (Decodable, error) {
	o, err := NewObject(data, "", "", opts)
	if err != nil {
		return nil, err
	}
	return o.Dispatch(lookup)
}

// Dispatch decodes the object by its resourceType member. The instance path
// of a top-level object becomes the resource type name.
func (o *Object) Dispatch(lookup Lookup) (Decodable, error) {
	name, ok := o.Discriminator()
	if !ok {
		return nil, o.Done()
	}
	v, ok := lookup(name)
	if !ok {
		de := o.fail(ErrUnknownResourceType, DiscriminatorKey)
		de.Value = name
		return nil, o.Done()
	}
	if o.path == "" {
		o.path = name
	}
	o.name = v.StructureName()
	if err := v.DecodeFHIR(o); err != nil {
		return nil, err
	}
	return v, nil
}

// Marshal encodes v as a JSON object.
func Marshal(v Encodable) []byte {
	return marshal("", v)
}

// MarshalAs encodes v with a leading resourceType member. It is used for
// structures that do not write their own discriminator, such as data types
// passed through the dispatcher.
func MarshalAs(resourceType string, v Encodable) []byte {
	return marshal(resourceType, v)
}

func marshal(resourceType string, v Encodable) []byte {
	bp := pool.AcquireByteSlice()
	defer pool.ReleaseByteSlice(bp)

	e := ObjectEncoder{buf: append((*bp)[:0], '{'), first: true}
	if resourceType != "" {
		e.String(DiscriminatorKey, resourceType)
	}
	v.EncodeFHIR(&e)
	e.buf = append(e.buf, '}')

	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	*bp = e.buf
	return out
}
