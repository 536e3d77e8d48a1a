package r4_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/models/r4"
)

func TestStructureNamesResolve(t *testing.T) {
	for _, name := range r4.StructureNames() {
		v, ok := r4.New(name)
		require.True(t, ok, name)
		assert.Equal(t, name, v.StructureName())

		_, ok = r4.DefinitionFor(name)
		assert.True(t, ok, "no definition for %s", name)
	}
}

func TestResourceTypes(t *testing.T) {
	types := r4.ResourceTypes()
	assert.Contains(t, types, "Patient")
	assert.Contains(t, types, "Bundle")
	assert.NotContains(t, types, "Money")
	assert.True(t, r4.IsResource("CapabilityStatement"))
	assert.False(t, r4.IsResource("Coding"))
	assert.False(t, r4.IsResource("DoesNotExist"))

	for _, name := range types {
		v, _ := r4.New(name)
		assert.Equal(t, name, v.(r4.Resource).ResourceType())
		def, _ := r4.DefinitionFor(name)
		assert.Equal(t, r4.KindResource, def.Kind)
	}
}

func TestDefinitionsChoiceElements(t *testing.T) {
	var groups int
	for _, def := range r4.Definitions() {
		for _, el := range def.Elements {
			if el.Choice == nil {
				assert.False(t, strings.HasSuffix(el.Name, "[x]"), "%s.%s", def.Path, el.Name)
				continue
			}
			groups++
			path := def.Path + "." + el.Name
			assert.Equal(t, el.Choice.Name+"[x]", el.Name, path)
			assert.Equal(t, el.Required(), el.Choice.Required, path)
			assert.Len(t, el.Types, len(el.Choice.Types), path)

			g, ok := r4.ChoiceGroup(path)
			require.True(t, ok, path)
			assert.Same(t, el.Choice, g)
		}
	}
	assert.Equal(t, 17, groups)
}

func TestChoiceTypeCodes(t *testing.T) {
	def, ok := r4.DefinitionFor("Observation")
	require.True(t, ok)
	el, ok := def.Element("value[x]")
	require.True(t, ok)
	assert.Equal(t, []string{
		"Quantity", "CodeableConcept", "string", "boolean", "integer", "Range",
		"Ratio", "SampledData", "time", "dateTime", "Period",
	}, el.Types)

	g, _ := r4.ChoiceGroup("Observation.value[x]")
	assert.Equal(t, "valueDateTime", g.Key("DateTime"))
}

func TestDefinitionPaths(t *testing.T) {
	def, ok := r4.DefinitionFor("CapabilityStatementRestResourceInteraction")
	require.True(t, ok)
	assert.Equal(t, "CapabilityStatement.rest.resource.interaction", def.Path)
	assert.Equal(t, r4.KindBackbone, def.Kind)

	code, ok := def.Element("code")
	require.True(t, ok)
	assert.True(t, code.Required())
	assert.Equal(t, []string{"code"}, code.Types)

	_, ok = def.Element("missing")
	assert.False(t, ok)
}
