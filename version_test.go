package fhirmodels

import (
	"errors"
	"testing"
)

func TestFHIRVersion_String(t *testing.T) {
	tests := []struct {
		version FHIRVersion
		want    string
	}{
		{R4, "R4"},
		{R4B, "R4B"},
		{R5, "R5"},
	}

	for _, tt := range tests {
		if got := tt.version.String(); got != tt.want {
			t.Errorf("%v.String() = %q; want %q", tt.version, got, tt.want)
		}
	}
}

func TestFHIRVersion_IsValid(t *testing.T) {
	tests := []struct {
		version   FHIRVersion
		valid     bool
		supported bool
	}{
		{R4, true, true},
		{R4B, true, false},
		{R5, true, false},
		{"R3", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := tt.version.IsValid(); got != tt.valid {
			t.Errorf("%v.IsValid() = %v; want %v", tt.version, got, tt.valid)
		}
		if got := tt.version.IsSupported(); got != tt.supported {
			t.Errorf("%v.IsSupported() = %v; want %v", tt.version, got, tt.supported)
		}
	}
}

func TestGetVersionConfig_R4(t *testing.T) {
	cfg, err := getVersionConfig(R4)
	if err != nil {
		t.Fatalf("getVersionConfig(R4) error = %v", err)
	}
	if cfg.CorePackageName != "hl7.fhir.r4.core" {
		t.Errorf("CorePackageName = %q; want %q", cfg.CorePackageName, "hl7.fhir.r4.core")
	}
	if cfg.FHIRVersionString != "4.0.1" {
		t.Errorf("FHIRVersionString = %q; want %q", cfg.FHIRVersionString, "4.0.1")
	}
	if _, ok := cfg.lookup("Patient"); !ok {
		t.Error("R4 lookup should resolve Patient")
	}
	if R4.FHIRVersionString() != "4.0.1" {
		t.Errorf("R4.FHIRVersionString() = %q", R4.FHIRVersionString())
	}
}

func TestGetVersionConfig_Unsupported(t *testing.T) {
	for _, v := range []FHIRVersion{R4B, R5, "R3"} {
		_, err := getVersionConfig(v)
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("getVersionConfig(%s) error = %v; want ErrUnsupportedVersion", v, err)
		}
		if v.FHIRVersionString() != "" {
			t.Errorf("%s.FHIRVersionString() = %q; want empty", v, v.FHIRVersionString())
		}
	}
}

func TestNewDecoder_Version(t *testing.T) {
	if _, err := NewDecoder(WithVersion(R5)); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("NewDecoder(R5) error = %v; want ErrUnsupportedVersion", err)
	}
	if _, err := NewDecoder(WithVersion(R4)); err != nil {
		t.Errorf("NewDecoder(R4) error = %v", err)
	}
}
