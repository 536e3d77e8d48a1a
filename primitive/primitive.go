// Package primitive describes the FHIR primitive data types as they appear in
// JSON: which JSON kind carries them and which lexical form they must follow.
package primitive

import (
	"regexp"
	"strconv"
)

// Kind identifies a FHIR primitive type.
type Kind int

// Primitive kinds.
const (
	String Kind = iota
	Code
	ID
	URI
	URL
	Canonical
	OID
	UUID
	Markdown
	Base64Binary
	Date
	DateTime
	Instant
	Time
	XHTML
	Boolean
	Integer
	PositiveInt
	UnsignedInt
	DecimalKind
)

var kindNames = [...]string{
	String:       "string",
	Code:         "code",
	ID:           "id",
	URI:          "uri",
	URL:          "url",
	Canonical:    "canonical",
	OID:          "oid",
	UUID:         "uuid",
	Markdown:     "markdown",
	Base64Binary: "base64Binary",
	Date:         "date",
	DateTime:     "dateTime",
	Instant:      "instant",
	Time:         "time",
	XHTML:        "xhtml",
	Boolean:      "boolean",
	Integer:      "integer",
	PositiveInt:  "positiveInt",
	UnsignedInt:  "unsignedInt",
	DecimalKind:  "decimal",
}

// String returns the FHIR type code of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsString reports whether the kind is carried by a JSON string.
func (k Kind) IsString() bool {
	return k <= XHTML
}

// IsNumber reports whether the kind is carried by a JSON number.
func (k Kind) IsNumber() bool {
	return k >= Integer
}

// Regular expressions from the FHIR R4 primitive type definitions.
var patterns = map[Kind]*regexp.Regexp{
	Code:         regexp.MustCompile(`^[^\s]+( [^\s]+)*$`),
	ID:           regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`),
	URI:          regexp.MustCompile(`^\S*$`),
	URL:          regexp.MustCompile(`^\S*$`),
	Canonical:    regexp.MustCompile(`^\S*$`),
	OID:          regexp.MustCompile(`^urn:oid:[0-2](\.(0|[1-9][0-9]*))+$`),
	UUID:         regexp.MustCompile(`^urn:uuid:[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`),
	Base64Binary: regexp.MustCompile(`^(\s*([0-9a-zA-Z+/=]){4}\s*)+$`),
	Date:         regexp.MustCompile(`^([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1]))?)?$`),
	DateTime:     regexp.MustCompile(`^([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1])(T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00)))?)?)?$`),
	Instant:      regexp.MustCompile(`^([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00))$`),
	Time:         regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?$`),
}

// ValidString reports whether s is a valid lexical value for a string-carried
// kind. Empty strings are never valid.
func ValidString(k Kind, s string) bool {
	if s == "" {
		return false
	}
	re, ok := patterns[k]
	if !ok {
		return true
	}
	return re.MatchString(s)
}

// ParseInteger parses a JSON number literal as an integer of the given kind,
// enforcing the range of positiveInt and unsignedInt.
func ParseInteger(k Kind, literal string) (int, bool) {
	n, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return 0, false
	}
	switch k {
	case PositiveInt:
		if n < 1 {
			return 0, false
		}
	case UnsignedInt:
		if n < 0 {
			return 0, false
		}
	}
	return int(n), true
}
