package fhirmodels

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/buger/jsonparser"
	"github.com/google/uuid"

	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/r4"
)

// Decoder decodes FHIR JSON documents with a fixed set of options.
// A Decoder is safe for concurrent use.
type Decoder struct {
	opts   *Options
	codec  *codec.Options
	lookup codec.Lookup
}

// NewDecoder creates a Decoder. It fails only for an unsupported version.
func NewDecoder(opts ...Option) (*Decoder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	cfg, err := getVersionConfig(o.Version)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		opts:   o,
		codec:  o.codecOptions(),
		lookup: cfg.lookup,
	}, nil
}

// Options returns the decoder's options. The result must not be modified.
func (d *Decoder) Options() *Options {
	return d.opts
}

// CodecOptions returns the options passed to the codec for every document.
func (d *Decoder) CodecOptions() *codec.Options {
	return d.codec
}

// Decode reads the resourceType of data and decodes it into the matching
// resource or data type.
func (d *Decoder) Decode(ctx context.Context, data []byte) (r4.Structure, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	v, err := codec.Dispatch(data, d.lookup, d.codec)
	var name string
	if v != nil {
		name = v.StructureName()
	} else {
		name, _ = ResourceType(data)
	}
	d.recordDecode(name, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return v.(r4.Structure), nil
}

// Encode writes v as a JSON document with resourceType first.
func (d *Decoder) Encode(v r4.Structure) []byte {
	start := time.Now()
	out := Encode(v)
	if m := d.opts.Metrics; m != nil {
		m.RecordEncode(time.Since(start))
	}
	return out
}

func (d *Decoder) recordDecode(resourceType string, elapsed time.Duration, err error) {
	if m := d.opts.Metrics; m != nil {
		m.RecordDecode(resourceType, elapsed, err)
	}
	if err == nil {
		return
	}
	zl := d.opts.Logger.Zerolog()
	ev := zl.Debug().
		Str("resourceType", resourceType).
		Str("kind", ErrorKind(err)).
		Dur("elapsed", elapsed)
	if de, ok := codec.AsDecodeError(err); ok {
		ev = ev.Str("location", de.Location())
	}
	ev.Msg("decode failed")
}

var (
	defaultDecoderOnce sync.Once
	defaultDecoder     *Decoder
)

// DefaultDecoder returns the shared decoder with default options.
func DefaultDecoder() *Decoder {
	defaultDecoderOnce.Do(func() {
		defaultDecoder, _ = NewDecoder()
	})
	return defaultDecoder
}

// Decode decodes data with the default decoder.
func Decode(data []byte) (r4.Structure, error) {
	return DefaultDecoder().Decode(context.Background(), data)
}

// DecodeResource decodes data and requires the result to be a resource.
func DecodeResource(ctx context.Context, d *Decoder, data []byte) (r4.Resource, error) {
	if d == nil {
		d = DefaultDecoder()
	}
	v, err := d.Decode(ctx, data)
	if err != nil {
		return nil, err
	}
	r, ok := v.(r4.Resource)
	if !ok {
		return nil, &codec.DecodeError{
			Kind:  codec.ErrUnknownResourceType,
			Path:  v.StructureName(),
			Field: codec.DiscriminatorKey,
			Value: v.StructureName(),
		}
	}
	return r, nil
}

// DecodeAs decodes data into a structure of a statically known type, such
// as a backbone element that has no discriminator. A resourceType member,
// if present, must match. A nil d uses the default decoder.
func DecodeAs[T any, PT interface {
	*T
	codec.Decodable
}](d *Decoder, data []byte) (*T, error) {
	if d == nil {
		d = DefaultDecoder()
	}
	var out T
	start := time.Now()
	err := codec.UnmarshalInto[T, PT](data, PT(&out), d.codec)
	d.recordDecode(PT(&out).StructureName(), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Encode writes v as a JSON document. Resources write their own
// resourceType; data types get one named after the structure, so the
// output can be read back by Decode.
func Encode(v r4.Structure) []byte {
	if _, ok := v.(r4.Resource); ok {
		return codec.Marshal(v)
	}
	return codec.MarshalAs(v.StructureName(), v)
}

// EncodeFragment writes v without a resourceType member.
func EncodeFragment(v codec.Encodable) []byte {
	return codec.Marshal(v)
}

// ResourceType reads the resourceType member of data without decoding the
// rest of the document.
func ResourceType(data []byte) (string, error) {
	raw, typ, _, err := jsonparser.Get(data, codec.DiscriminatorKey)
	switch {
	case errors.Is(err, jsonparser.KeyPathNotFoundError):
		return "", &codec.DecodeError{Kind: codec.ErrMissingDiscriminator, Field: codec.DiscriminatorKey}
	case err != nil:
		return "", &codec.DecodeError{Kind: codec.ErrMalformedJSON, Field: codec.DiscriminatorKey, Err: err}
	case typ != jsonparser.String:
		return "", &codec.DecodeError{Kind: codec.ErrTypeMismatch, Field: codec.DiscriminatorKey, Expected: "string"}
	}
	name, err := jsonparser.ParseString(raw)
	if err != nil {
		return "", &codec.DecodeError{Kind: codec.ErrMalformedJSON, Field: codec.DiscriminatorKey, Err: err}
	}
	return name, nil
}

// NewCollectionBundle wraps resources in a Bundle of type collection. Each
// entry gets a urn:uuid fullUrl.
func NewCollectionBundle(resources ...r4.Resource) *r4.Bundle {
	b := &r4.Bundle{
		Type:  r4.BundleTypeCollection,
		Entry: make([]r4.BundleEntry, len(resources)),
	}
	for i, res := range resources {
		b.Entry[i] = r4.BundleEntry{
			FullURL:  r4.Ptr("urn:uuid:" + uuid.NewString()),
			Resource: res,
		}
	}
	return b
}
