package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Structure is any resource, data type or backbone element of this package.
type Structure interface {
	codec.Decodable
	codec.Encodable
}

// Resource is a top-level structure identified by its resourceType.
// Implementations are pointers to the resource structs, e.g. *Patient.
type Resource interface {
	Structure
	ResourceType() string
	ResourceID() *string
}

func resourceID(o *codec.Object) *string {
	if s, ok := o.String("id", primitive.ID); ok {
		return &s
	}
	return nil
}

func lookupResource(name string) (codec.Decodable, bool) {
	v, ok := New(name)
	if !ok {
		return nil, false
	}
	r, ok := v.(Resource)
	if !ok {
		return nil, false
	}
	return r, true
}

// optResource decodes an inline resource such as Bundle.entry.resource.
func optResource(o *codec.Object, key string) Resource {
	c := o.Child(key)
	if c == nil {
		return nil
	}
	v, err := c.Dispatch(lookupResource)
	if err != nil {
		o.Fail(err)
		return nil
	}
	return v.(Resource)
}

func resourceList(o *codec.Object, key string) []Resource {
	children, ok := o.Children(key)
	if !ok {
		return nil
	}
	out := make([]Resource, len(children))
	for i, c := range children {
		if c == nil {
			o.Fail(&codec.DecodeError{
				Kind:      codec.ErrTypeMismatch,
				Structure: o.Name(),
				Path:      o.Path(),
				Field:     key,
				Expected:  "Resource",
			})
			return nil
		}
		v, err := c.Dispatch(lookupResource)
		if err != nil {
			o.Fail(err)
			return nil
		}
		out[i] = v.(Resource)
	}
	return out
}

func encResource(e *codec.ObjectEncoder, key string, r Resource) {
	if r != nil {
		e.Object(key, r)
	}
}

// Contained returns the contained resource whose id matches ref, which may
// carry the leading '#' of a local reference.
func Contained(list []Resource, ref string) (Resource, bool) {
	if len(ref) > 0 && ref[0] == '#' {
		ref = ref[1:]
	}
	for _, r := range list {
		if id := r.ResourceID(); id != nil && *id == ref {
			return r, true
		}
	}
	return nil, false
}
