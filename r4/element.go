package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Element is the base content of every structure. On its own it is the type
// of primitive extension siblings: "_birthDate": {"id": "...", "extension": [...]}.
type Element struct {
	ID        *string
	Extension []Extension
}

func (Element) StructureName() string { return "Element" }

func (x *Element) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	return o.Done()
}

func (x Element) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
}

// Extension carries additional content identified by URL. Extensions with
// URLs this package knows nothing about decode and encode like any other,
// so documents round-trip without loss.
type Extension struct {
	ID        *string
	Extension []Extension
	URL       string
	Value     AnyValue
}

func (Extension) StructureName() string { return "Extension" }

func (x *Extension) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.URL = reqValue(o, "url", primitive.URI)
	x.Value = codec.DecodeChoice[AnyValue](o, extensionValue)
	return o.Done()
}

func (x Extension) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	e.String("url", x.URL)
	e.Choice(extensionValue, x.Value)
}

// Extensions returns the entries of list with the given URL.
func Extensions(list []Extension, url string) []Extension {
	var out []Extension
	for _, ext := range list {
		if ext.URL == url {
			out = append(out, ext)
		}
	}
	return out
}

// Age is a duration of time during which an organism has existed.
type Age Quantity

func (Age) StructureName() string { return "Age" }

func (x *Age) DecodeFHIR(o *codec.Object) error { return (*Quantity)(x).DecodeFHIR(o) }

func (x Age) EncodeFHIR(e *codec.ObjectEncoder) { Quantity(x).EncodeFHIR(e) }

// Count is a measured amount of discrete items.
type Count Quantity

func (Count) StructureName() string { return "Count" }

func (x *Count) DecodeFHIR(o *codec.Object) error { return (*Quantity)(x).DecodeFHIR(o) }

func (x Count) EncodeFHIR(e *codec.ObjectEncoder) { Quantity(x).EncodeFHIR(e) }

// Distance is a length, expressed as a Quantity.
type Distance Quantity

func (Distance) StructureName() string { return "Distance" }

func (x *Distance) DecodeFHIR(o *codec.Object) error { return (*Quantity)(x).DecodeFHIR(o) }

func (x Distance) EncodeFHIR(e *codec.ObjectEncoder) { Quantity(x).EncodeFHIR(e) }

// Duration is a length of time.
type Duration Quantity

func (Duration) StructureName() string { return "Duration" }

func (x *Duration) DecodeFHIR(o *codec.Object) error { return (*Quantity)(x).DecodeFHIR(o) }

func (x Duration) EncodeFHIR(e *codec.ObjectEncoder) { Quantity(x).EncodeFHIR(e) }
