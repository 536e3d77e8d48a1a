package conformance

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	fhir "github.com/gofhir/fhir/r4"

	"github.com/gofhir/models/r4"
)

// FindingKind classifies a difference between a StructureDefinition and
// the r4 tables.
type FindingKind string

const (
	// KindMin is a differing minimum cardinality.
	KindMin FindingKind = "min"
	// KindMax is a differing maximum cardinality.
	KindMax FindingKind = "max"
	// KindChoiceTypes is a choice element with a different type list.
	KindChoiceTypes FindingKind = "choice-types"
	// KindMissingElement is an element of a modeled structure that r4 does
	// not declare.
	KindMissingElement FindingKind = "missing-element"
)

// Finding is one difference between the package and the r4 tables.
type Finding struct {
	// Structure is the r4 structure name, e.g. "ObservationComponent"
	Structure string
	// Path is the element path in the StructureDefinition
	Path string
	Kind FindingKind
	// Want is the value from the StructureDefinition, Got the r4 value
	Want string
	Got  string
}

func (f Finding) String() string {
	if f.Kind == KindMissingElement {
		return fmt.Sprintf("%s: %s not modeled", f.Path, f.Kind)
	}
	return fmt.Sprintf("%s: %s is %s, want %s", f.Path, f.Kind, f.Got, f.Want)
}

// Report is the outcome of Check.
type Report struct {
	Findings []Finding

	// Structures counts the StructureDefinitions compared
	Structures int

	// Elements counts the elements compared
	Elements int

	// Skipped lists the URLs of StructureDefinitions that were not
	// compared: profiles outside the core, or types r4 does not model
	Skipped []string
}

// OK reports whether no differences were found.
func (r Report) OK() bool {
	return len(r.Findings) == 0
}

// Check compares every StructureDefinition of pkg with the r4 tables.
func Check(pkg *Package) Report {
	index := definitionsByPath()

	var report Report
	for _, sd := range pkg.Definitions() {
		findings, elements, ok := checkDefinition(sd, index)
		if !ok {
			report.Skipped = append(report.Skipped, deref(sd.Url))
			continue
		}
		report.Structures++
		report.Elements += elements
		report.Findings = append(report.Findings, findings...)
	}
	return report
}

func definitionsByPath() map[string]r4.Definition {
	defs := r4.Definitions()
	index := make(map[string]r4.Definition, len(defs))
	for _, def := range defs {
		index[def.Path] = def
	}
	return index
}

// checkDefinition compares one snapshot. Profiled data types such as Age
// have snapshot paths rooted at their base type ("Quantity.value") which are
// rebased onto the profile name.
func checkDefinition(sd *fhir.StructureDefinition, index map[string]r4.Definition) ([]Finding, int, bool) {
	url := deref(sd.Url)
	if !strings.HasPrefix(url, CoreBase) || sd.Type == nil || sd.Snapshot == nil {
		return nil, 0, false
	}
	root := *sd.Type
	local := strings.TrimPrefix(url, CoreBase)
	if _, ok := index[local]; !ok {
		return nil, 0, false
	}

	var (
		findings []Finding
		elements int
	)
	for i := range sd.Snapshot.Element {
		el := &sd.Snapshot.Element[i]
		path := deref(el.Path)
		if el.SliceName != nil || !strings.HasPrefix(path, root+".") {
			continue
		}
		path = local + strings.TrimPrefix(path, root)

		dot := strings.LastIndexByte(path, '.')
		parent, name := path[:dot], path[dot+1:]
		def, ok := index[parent]
		if !ok {
			continue
		}
		elements++

		got, ok := def.Element(name)
		if !ok {
			findings = append(findings, Finding{Structure: def.Name, Path: path, Kind: KindMissingElement})
			continue
		}

		if el.Min != nil && int(*el.Min) != got.Min {
			findings = append(findings, Finding{
				Structure: def.Name, Path: path, Kind: KindMin,
				Want: strconv.Itoa(int(*el.Min)), Got: strconv.Itoa(got.Min),
			})
		}
		if el.Max != nil && *el.Max != got.Max {
			findings = append(findings, Finding{
				Structure: def.Name, Path: path, Kind: KindMax,
				Want: *el.Max, Got: got.Max,
			})
		}
		if got.Choice != nil {
			want, have := typeCodes(el.Type), sortedCopy(got.Types)
			if want != strings.Join(have, "|") {
				findings = append(findings, Finding{
					Structure: def.Name, Path: path, Kind: KindChoiceTypes,
					Want: want, Got: strings.Join(have, "|"),
				})
			}
		}
	}
	return findings, elements, true
}

func typeCodes(types []fhir.ElementDefinitionType) string {
	codes := make([]string, 0, len(types))
	for i := range types {
		if types[i].Code != nil {
			codes = append(codes, *types[i].Code)
		}
	}
	sort.Strings(codes)
	return strings.Join(codes, "|")
}

func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
