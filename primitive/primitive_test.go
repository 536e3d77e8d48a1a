package primitive

import (
	"testing"
)

func TestValidString(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		value string
		want  bool
	}{
		{"empty string", String, "", false},
		{"plain string", String, "Smith", true},
		{"code", Code, "read", true},
		{"code with leading space", Code, " read", false},
		{"id", ID, "example-1.a", true},
		{"id too long", ID, "a123456789012345678901234567890123456789012345678901234567890123456", false},
		{"uri without spaces", URI, "http://hl7.org/fhir", true},
		{"uri with space", URI, "http://hl7.org/ fhir", false},
		{"oid", OID, "urn:oid:1.2.3.4", true},
		{"bad oid", OID, "1.2.3.4", false},
		{"uuid", UUID, "urn:uuid:c757873d-ec9a-4326-a141-556f43239520", true},
		{"year", Date, "2024", true},
		{"year-month", Date, "2024-02", true},
		{"full date", Date, "2024-02-29", true},
		{"bad month", Date, "2024-13", false},
		{"dateTime with zone", DateTime, "2015-02-07T13:28:17-05:00", true},
		{"dateTime without zone", DateTime, "2015-02-07T13:28:17", false},
		{"instant", Instant, "2015-02-07T13:28:17.239+02:00", true},
		{"instant without time", Instant, "2015-02-07", false},
		{"time", Time, "13:28:17", true},
		{"bad time", Time, "25:00:00", false},
		{"base64", Base64Binary, "aGVsbG8=", true},
		{"markdown", Markdown, "# title", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidString(tt.kind, tt.value); got != tt.want {
				t.Errorf("ValidString(%s, %q) = %v; want %v", tt.kind, tt.value, got, tt.want)
			}
		})
	}
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		kind    Kind
		literal string
		want    int
		ok      bool
	}{
		{Integer, "-3", -3, true},
		{Integer, "1.0", 0, false},
		{PositiveInt, "0", 0, false},
		{PositiveInt, "4", 4, true},
		{UnsignedInt, "0", 0, true},
		{UnsignedInt, "-1", 0, false},
		{Integer, "2147483648", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseInteger(tt.kind, tt.literal)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseInteger(%s, %q) = %d, %v; want %d, %v", tt.kind, tt.literal, got, ok, tt.want, tt.ok)
		}
	}
}

func TestKind_String(t *testing.T) {
	if DateTime.String() != "dateTime" {
		t.Errorf("DateTime.String() = %q", DateTime.String())
	}
	if !Base64Binary.IsString() || Boolean.IsString() {
		t.Error("IsString misclassifies kinds")
	}
	if !DecimalKind.IsNumber() || Code.IsNumber() {
		t.Error("IsNumber misclassifies kinds")
	}
}

func TestDecimal_PreservesLiteral(t *testing.T) {
	d, err := ParseDecimal("1.50")
	if err != nil {
		t.Fatalf("ParseDecimal: %v", err)
	}
	if d.String() != "1.50" {
		t.Errorf("String() = %q; want 1.50", d.String())
	}
	if !d.Equal(MustDecimal("1.5")) {
		t.Error("1.50 should equal 1.5 numerically")
	}
	out, _ := d.MarshalJSON()
	if string(out) != "1.50" {
		t.Errorf("MarshalJSON = %s; want 1.50", out)
	}
}

func TestDecimal_Invalid(t *testing.T) {
	for _, literal := range []string{"", "01", "1.", "abc", "\"1\""} {
		if _, err := ParseDecimal(literal); err == nil {
			t.Errorf("ParseDecimal(%q) expected error", literal)
		}
	}
}

func TestDecimalFromFloat(t *testing.T) {
	d := DecimalFromFloat(10.5)
	if d.String() != "10.5" {
		t.Errorf("String() = %q; want 10.5", d.String())
	}
	if d.Float64() != 10.5 {
		t.Errorf("Float64() = %v; want 10.5", d.Float64())
	}
}
