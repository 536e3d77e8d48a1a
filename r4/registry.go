package r4

import (
	"sort"
	"strings"
	"sync"

	"github.com/gofhir/models/codec"
)

// DefinitionKind classifies a structure.
type DefinitionKind int

const (
	KindDataType DefinitionKind = iota
	KindBackbone
	KindResource
)

func (k DefinitionKind) String() string {
	switch k {
	case KindDataType:
		return "datatype"
	case KindBackbone:
		return "backbone"
	case KindResource:
		return "resource"
	}
	return "unknown"
}

// Definition describes the field table of one structure.
type Definition struct {
	// Name is the Go type name, also returned by StructureName.
	Name string

	// Path is the FHIR element path, e.g. "CapabilityStatement.rest.resource".
	Path string

	Kind     DefinitionKind
	Elements []ElementDefinition
}

// ElementDefinition describes one member of a structure. Choice groups are
// named with their "[x]" suffix and carry their table.
type ElementDefinition struct {
	Name   string
	Min    int
	Max    string
	Types  []string
	Choice *codec.ChoiceGroup
}

// Element returns the element with the given name.
func (d Definition) Element(name string) (ElementDefinition, bool) {
	for _, e := range d.Elements {
		if e.Name == name {
			return e, true
		}
	}
	return ElementDefinition{}, false
}

// Required reports whether the element has a minimum cardinality above zero.
func (e ElementDefinition) Required() bool { return e.Min > 0 }

var (
	definitionsOnce sync.Once
	definitionIndex map[string]int
)

func loadDefinitions() {
	definitionIndex = make(map[string]int, len(definitions))
	for i := range definitions {
		for j := range definitions[i].Elements {
			el := &definitions[i].Elements[j]
			if el.Choice == nil {
				continue
			}
			el.Types = make([]string, len(el.Choice.Types))
			for k, t := range el.Choice.Types {
				el.Types[k] = choiceTypeCode(t)
			}
		}
		definitionIndex[definitions[i].Name] = i
	}
}

// choiceTypeCode maps a type suffix back to its FHIR type code:
// "DateTime" is dateTime, "Quantity" stays Quantity.
func choiceTypeCode(t codec.ChoiceType) string {
	if !t.Primitive {
		return t.Suffix
	}
	return strings.ToLower(t.Suffix[:1]) + t.Suffix[1:]
}

// Definitions returns the definitions of all structures in the package.
// The result must not be modified.
func Definitions() []Definition {
	definitionsOnce.Do(loadDefinitions)
	return definitions
}

// DefinitionFor returns the definition of the named structure.
func DefinitionFor(name string) (Definition, bool) {
	definitionsOnce.Do(loadDefinitions)
	i, ok := definitionIndex[name]
	if !ok {
		return Definition{}, false
	}
	return definitions[i], true
}

// ChoiceGroup returns the table of the choice element at a FHIR path such
// as "Observation.value[x]".
func ChoiceGroup(path string) (*codec.ChoiceGroup, bool) {
	g, ok := choiceGroups[path]
	return g, ok
}

// New returns an empty structure for a resourceType or data type name.
func New(name string) (Structure, bool) {
	f, ok := structures[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Lookup is New in the form the codec dispatcher expects.
func Lookup(name string) (codec.Decodable, bool) {
	v, ok := New(name)
	if !ok {
		return nil, false
	}
	return v, true
}

// IsResource reports whether name is a resource type known to this package.
func IsResource(name string) bool {
	v, ok := New(name)
	if !ok {
		return false
	}
	_, ok = v.(Resource)
	return ok
}

// ResourceTypes returns the known resource type names, sorted.
func ResourceTypes() []string {
	var out []string
	for name := range structures {
		if IsResource(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// StructureNames returns every name the dispatcher accepts, sorted.
func StructureNames() []string {
	out := make([]string, 0, len(structures))
	for name := range structures {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
