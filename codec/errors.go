package codec

import (
	"errors"
	"strings"
)

// Error kinds. A *DecodeError always wraps exactly one of these, so callers
// can classify failures with errors.Is.
var (
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrMissingRequiredChoice = errors.New("missing required choice")
	ErrAmbiguousChoice       = errors.New("ambiguous choice")
	ErrInvalidEnumValue      = errors.New("invalid enum value")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrUnknownResourceType   = errors.New("unknown resource type")
	ErrMissingDiscriminator  = errors.New("missing resourceType")
	ErrUnknownElement        = errors.New("unknown element")
	ErrUnrecognizedModifier  = errors.New("unrecognized modifier extension")
	ErrMalformedJSON         = errors.New("malformed JSON")
)

var errEmptyDocument = errors.New("empty document")

// DecodeError describes a structural failure while decoding a document.
type DecodeError struct {
	// Kind is one of the Err* sentinels above.
	Kind error

	// Structure is the name of the structure being decoded, e.g.
	// "CapabilityStatementRestResourceInteraction".
	Structure string

	// Path locates the offending object in the document, e.g.
	// "CapabilityStatement.rest[0].resource[1].interaction[0]".
	Path string

	// Field is the member or choice group name.
	Field string

	// Value is the rejected literal (InvalidEnumValue), the unknown
	// resource type name (UnknownResourceType) or the offending member or
	// type name (TypeMismatch).
	Value string

	// Keys lists the conflicting members of an ambiguous choice, in table
	// order, or the members of a choice group whose type is not in its table.
	Keys []string

	// Expected names the expected JSON or FHIR type (TypeMismatch).
	Expected string

	// Err is an optional underlying cause.
	Err error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("fhir: ")
	if e.Structure != "" {
		b.WriteString(e.Structure)
		if e.Field != "" {
			b.WriteByte('.')
		}
	}
	b.WriteString(e.Field)
	if e.Structure != "" || e.Field != "" {
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())

	switch {
	case errors.Is(e.Kind, ErrInvalidEnumValue), errors.Is(e.Kind, ErrUnknownResourceType),
		errors.Is(e.Kind, ErrUnrecognizedModifier):
		b.WriteString(" \"")
		b.WriteString(e.Value)
		b.WriteByte('"')
	case errors.Is(e.Kind, ErrAmbiguousChoice):
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Keys, ", "))
		b.WriteByte(']')
	case errors.Is(e.Kind, ErrTypeMismatch):
		if e.Value != "" {
			b.WriteString(" \"")
			b.WriteString(e.Value)
			b.WriteByte('"')
		}
		if e.Expected != "" {
			b.WriteString(", expected ")
			b.WriteString(e.Expected)
		}
	}

	if e.Path != "" {
		b.WriteString(" (at ")
		b.WriteString(e.Path)
		b.WriteByte(')')
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the underlying cause.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Location returns the instance path of the failing member, e.g.
// "Communication.payload[0].content[x]".
func (e *DecodeError) Location() string {
	field := e.Field
	if errors.Is(e.Kind, ErrAmbiguousChoice) || errors.Is(e.Kind, ErrMissingRequiredChoice) ||
		(errors.Is(e.Kind, ErrTypeMismatch) && len(e.Keys) > 0) {
		field += "[x]"
	}
	switch {
	case e.Path == "":
		return field
	case field == "":
		return e.Path
	default:
		return e.Path + "." + field
	}
}

// AsDecodeError extracts the *DecodeError from err, if any.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
