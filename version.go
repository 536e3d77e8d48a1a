package fhirmodels

import (
	"errors"
	"fmt"

	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/r4"
)

// FHIRVersion represents a FHIR specification version.
type FHIRVersion string

// Known FHIR versions. Only R4 has structures in this module.
const (
	// R4 is FHIR Release 4 (4.0.1)
	R4 FHIRVersion = "R4"
	// R4B is FHIR Release 4B (4.3.0)
	R4B FHIRVersion = "R4B"
	// R5 is FHIR Release 5 (5.0.0)
	R5 FHIRVersion = "R5"
)

// ErrUnsupportedVersion is returned when no structures exist for a version.
var ErrUnsupportedVersion = errors.New("unsupported FHIR version")

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a known FHIR version name.
func (v FHIRVersion) IsValid() bool {
	switch v {
	case R4, R4B, R5:
		return true
	default:
		return false
	}
}

// IsSupported returns true if structures exist for this version.
func (v FHIRVersion) IsSupported() bool {
	_, ok := versionConfigs[v]
	return ok
}

// versionConfig holds version-specific configuration.
type versionConfig struct {
	// CorePackage is the FHIR core package the structures were checked against.
	CorePackageName    string
	CorePackageVersion string

	// FHIRVersionString is the version string used in StructureDefinitions
	// and CapabilityStatement.fhirVersion.
	FHIRVersionString string

	lookup codec.Lookup
}

var versionConfigs = map[FHIRVersion]versionConfig{
	R4: {
		CorePackageName:    "hl7.fhir.r4.core",
		CorePackageVersion: "4.0.1",
		FHIRVersionString:  "4.0.1",
		lookup:             r4.Lookup,
	},
}

func getVersionConfig(v FHIRVersion) (versionConfig, error) {
	cfg, ok := versionConfigs[v]
	if !ok {
		return versionConfig{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	return cfg, nil
}

// FHIRVersionString returns the semantic version of v, e.g. "4.0.1", or ""
// when v is not supported.
func (v FHIRVersion) FHIRVersionString() string {
	return versionConfigs[v].FHIRVersionString
}
