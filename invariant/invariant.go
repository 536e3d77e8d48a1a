// Package invariant checks FHIRPath invariants over encoded resources.
//
// It is an opt-in pass that runs after decoding: the decoder guarantees
// structure (cardinality, choice groups, closed codes) while invariants
// express cross-element rules such as "dataAbsentReason SHALL only be
// present if value[x] is not present".
package invariant

import (
	"strings"

	fhir "github.com/gofhir/fhir/r4"

	fm "github.com/gofhir/models"
)

// Context values with a special meaning.
const (
	// AnyResource applies an invariant to every resource type.
	AnyResource = ""

	// DomainResource applies an invariant to every resource type except
	// Bundle, Parameters and Binary.
	DomainResource = "DomainResource"
)

// Invariant is a FHIRPath rule evaluated at the root of a resource.
type Invariant struct {
	// Key identifies the rule, e.g. "obs-6"
	Key string

	// Severity of a violation: error or warning
	Severity fm.IssueSeverity

	// Human is the rule in plain words
	Human string

	// Expression is evaluated with the resource as focus; the rule holds
	// when the result is true or empty
	Expression string

	// Context is the resource type the rule applies to, AnyResource or
	// DomainResource
	Context string

	// Path is the element the rule is defined on, used as issue location.
	// Empty means the resource itself.
	Path string
}

// AppliesTo reports whether the invariant is checked for resourceType.
func (inv Invariant) AppliesTo(resourceType string) bool {
	switch inv.Context {
	case AnyResource:
		return true
	case DomainResource:
		switch resourceType {
		case "Bundle", "Parameters", "Binary":
			return false
		}
		return true
	}
	return inv.Context == resourceType
}

func (inv Invariant) location(resourceType string) string {
	if inv.Path != "" {
		return inv.Path
	}
	return resourceType
}

func (inv Invariant) severity() fm.IssueSeverity {
	if inv.Severity == "" {
		return fm.SeverityError
	}
	return inv.Severity
}

// Builtins returns the R4 core invariants known to this package. Element
// level rules are lifted to the resource root with all().
func Builtins() []Invariant {
	return []Invariant{
		{
			Key:        "ext-1",
			Severity:   fm.SeverityError,
			Human:      "Must have either extensions or value[x], not both",
			Expression: "(extension | modifierExtension | descendants().extension | descendants().modifierExtension).all(extension.exists() != value.exists())",
		},
		{
			Key:        "dom-2",
			Severity:   fm.SeverityError,
			Human:      "If the resource is contained in another resource, it SHALL NOT contain nested Resources",
			Expression: "contained.contained.empty()",
			Context:    DomainResource,
		},
		{
			Key:        "dom-4",
			Severity:   fm.SeverityError,
			Human:      "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated",
			Expression: "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()",
			Context:    DomainResource,
		},
		{
			Key:        "dom-6",
			Severity:   fm.SeverityWarning,
			Human:      "A resource should have narrative for robust management",
			Expression: "text.`div`.exists()",
			Context:    DomainResource,
		},
		{
			Key:        "obs-6",
			Severity:   fm.SeverityError,
			Human:      "dataAbsentReason SHALL only be present if Observation.value[x] is not present",
			Expression: "dataAbsentReason.empty() or value.empty()",
			Context:    "Observation",
		},
		{
			Key:        "obs-7",
			Severity:   fm.SeverityError,
			Human:      "If Observation.code is the same as an Observation.component.code then the value element associated with the code SHALL NOT be present",
			Expression: "value.empty() or component.code.where(coding.intersect(%resource.code.coding).exists()).empty()",
			Context:    "Observation",
		},
		{
			Key:        "obs-3",
			Severity:   fm.SeverityError,
			Human:      "Must have at least a low or a high or text",
			Expression: "referenceRange.all(low.exists() or high.exists() or text.exists())",
			Context:    "Observation",
			Path:       "Observation.referenceRange",
		},
		{
			Key:        "pat-1",
			Severity:   fm.SeverityError,
			Human:      "SHALL at least contain a contact's details or a reference to an organization",
			Expression: "contact.all(name.exists() or telecom.exists() or address.exists() or organization.exists())",
			Context:    "Patient",
			Path:       "Patient.contact",
		},
		{
			Key:        "bdl-1",
			Severity:   fm.SeverityError,
			Human:      "total only when a search or history",
			Expression: "total.empty() or (type = 'searchset') or (type = 'history')",
			Context:    "Bundle",
		},
		{
			Key:        "bdl-2",
			Severity:   fm.SeverityError,
			Human:      "entry.search only when a search",
			Expression: "entry.search.empty() or (type = 'searchset')",
			Context:    "Bundle",
		},
		{
			Key:        "bdl-3",
			Severity:   fm.SeverityError,
			Human:      "entry.request mandatory for batch/transaction/history, otherwise prohibited",
			Expression: "entry.all(request.exists() = (%resource.type = 'batch' or %resource.type = 'transaction' or %resource.type = 'history'))",
			Context:    "Bundle",
		},
		{
			Key:        "bdl-4",
			Severity:   fm.SeverityError,
			Human:      "entry.response mandatory for batch-response/transaction-response/history, otherwise prohibited",
			Expression: "entry.all(response.exists() = (%resource.type = 'batch-response' or %resource.type = 'transaction-response' or %resource.type = 'history'))",
			Context:    "Bundle",
		},
		{
			Key:        "cpb-1",
			Severity:   fm.SeverityError,
			Human:      "A Capability Statement SHALL have at least one of REST, messaging or document element.",
			Expression: "rest.exists() or messaging.exists() or document.exists()",
			Context:    "CapabilityStatement",
		},
		{
			Key:        "mrp-1",
			Severity:   fm.SeverityError,
			Human:      "Measure Reports used for data collection SHALL NOT communicate group and score information",
			Expression: "(type != 'data-collection') or group.exists().not()",
			Context:    "MeasureReport",
		},
		{
			Key:        "mrp-2",
			Severity:   fm.SeverityError,
			Human:      "Stratifiers SHALL be either a single criteria or a set of criteria components",
			Expression: "group.stratifier.stratum.all(value.exists() xor component.exists())",
			Context:    "MeasureReport",
			Path:       "MeasureReport.group.stratifier.stratum",
		},
		{
			Key:        "inv-1",
			Severity:   fm.SeverityError,
			Human:      "A parameter must have one and only one of (value, resource, part)",
			Expression: "parameter.all((part.exists() and value.empty() and resource.empty()) or (part.empty() and (value.exists() xor resource.exists())))",
			Context:    "Parameters",
			Path:       "Parameters.parameter",
		},
	}
}

// FromStructureDefinition extracts the invariants of a StructureDefinition.
// Constraints on nested elements are lifted to the resource root. The
// generic element and extension rules (ele-*, ext-*) are left to Builtins.
func FromStructureDefinition(sd *fhir.StructureDefinition) []Invariant {
	if sd == nil || sd.Type == nil {
		return nil
	}
	typeName := *sd.Type

	var elements []fhir.ElementDefinition
	switch {
	case sd.Snapshot != nil:
		elements = sd.Snapshot.Element
	case sd.Differential != nil:
		elements = sd.Differential.Element
	}

	type seenKey struct{ key, path string }
	seen := make(map[seenKey]bool)

	var out []Invariant
	for i := range elements {
		el := &elements[i]
		path := deref(el.Path)
		for j := range el.Constraint {
			c := &el.Constraint[j]
			key, expr := deref(c.Key), deref(c.Expression)
			if key == "" || expr == "" || strings.HasPrefix(key, "ele-") || strings.HasPrefix(key, "ext-") {
				continue
			}
			if seen[seenKey{key, path}] {
				continue
			}
			seen[seenKey{key, path}] = true

			inv := Invariant{
				Key:        key,
				Severity:   fm.SeverityError,
				Human:      deref(c.Human),
				Expression: lift(typeName, path, expr),
				Context:    typeName,
			}
			if path != typeName {
				inv.Path = path
			}
			if c.Severity != nil && string(*c.Severity) == "warning" {
				inv.Severity = fm.SeverityWarning
			}
			out = append(out, inv)
		}
	}
	return out
}

// lift rewrites an expression defined on path so it can be evaluated at the
// root of typeName: "Patient.contact" with e turns into "contact.all(e)".
func lift(typeName, path, expr string) string {
	rel := strings.TrimPrefix(strings.TrimPrefix(path, typeName), ".")
	if rel == "" {
		return expr
	}
	return strings.ReplaceAll(rel, "[x]", "") + ".all(" + expr + ")"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
