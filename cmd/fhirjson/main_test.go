package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	patient   = `{"resourceType":"Patient","id":"p1","active":true,"gender":"female"}`
	ambiguous = `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":"a","valueBoolean":true}`
)

type result struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecode_Stdin(t *testing.T) {
	res := execute(t, patient, "decode")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "== stdin ==")
	assert.Contains(t, res.stdout, "Type: Patient")
	assert.Contains(t, res.stdout, "Status: VALID")
}

func TestDecode_ReportsLocation(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", patient)
	bad := writeFile(t, dir, "bad.json", ambiguous)

	res := execute(t, "", "decode", good, bad)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Status: INVALID")
	assert.Contains(t, res.stdout, "@ Observation.value[x]")
	assert.Empty(t, res.stderr)
}

func TestDecode_JSONOutput(t *testing.T) {
	res := execute(t, ambiguous, "decode", "-o", "json")
	require.Equal(t, 1, res.code)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, false, reports[0]["valid"])
	assert.Equal(t, "Observation", reports[0]["resourceType"])

	issues := reports[0]["issues"].([]any)
	require.Len(t, issues, 1)
	issue := issues[0].(map[string]any)
	assert.Equal(t, "AmbiguousChoice", issue["kind"])
	assert.Equal(t, "structure", issue["code"])
}

func TestDecode_StrictFromEnvironment(t *testing.T) {
	doc := `{"resourceType":"Patient","nickname":"Pete"}`

	res := execute(t, doc, "decode")
	assert.Equal(t, 0, res.code, res.stdout)

	t.Setenv("FHIRJSON_STRICT", "true")
	res = execute(t, doc, "decode")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Patient.nickname")
}

func TestDecode_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("FHIRJSON_OUTPUT", "json")
	res := execute(t, patient, "decode", "--output", "text")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Status: VALID")
}

func TestInvalidConfiguration(t *testing.T) {
	t.Setenv("FHIRJSON_OUTPUT", "yaml")
	res := execute(t, patient, "decode")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "invalid configuration")

	t.Setenv("FHIRJSON_OUTPUT", "")
	res = execute(t, patient, "decode", "--workers", "0")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Workers")
}

func TestDecode_NoMatchingFiles(t *testing.T) {
	res := execute(t, "", "decode", filepath.Join(t.TempDir(), "*.json"))
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "no files match")
}

func TestRoundtrip(t *testing.T) {
	doc := `{"gender":"female","active":true,"id":"p1","resourceType":"Patient"}`
	res := execute(t, doc, "roundtrip", "--check")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, patient+"\n", res.stdout)
}

func TestRoundtrip_DecodeError(t *testing.T) {
	res := execute(t, ambiguous, "roundtrip")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "stdin:")
	assert.Empty(t, res.stdout)
}

func TestBundle(t *testing.T) {
	bundle := `{"resourceType":"Bundle","type":"collection","entry":[
		{"resource":{"resourceType":"Patient","id":"a"}},
		{"resource":{"resourceType":"Patient","gender":"robot"}}
	]}`

	for _, args := range [][]string{{"bundle"}, {"bundle", "--parallel", "--workers", "2"}} {
		res := execute(t, bundle, args...)
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stdout, "Decoded 2 entries: 1 with errors, 1 resource types")
		assert.Contains(t, res.stdout, "entry[1]:")
		assert.Contains(t, res.stdout, "Bundle.entry[1].resource.gender")
	}
}

func TestBundle_Valid(t *testing.T) {
	bundle := `{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"Basic","code":{"text":"x"}}}]}`
	res := execute(t, bundle, "bundle", "-o", "json")
	require.Equal(t, 0, res.code, res.stdout)

	var rep map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rep))
	assert.Equal(t, float64(1), rep["totalEntries"])
	assert.Equal(t, map[string]any{"Basic": float64(1)}, rep["resourceTypes"])
}

func TestBundle_Invariants(t *testing.T) {
	bundle := `{"resourceType":"Bundle","type":"collection","entry":[
		{"resource":{"resourceType":"Patient","gender":"robot"}},
		{"resource":{"resourceType":"Patient","contact":[{"gender":"male"}]}}
	]}`

	res := execute(t, bundle, "bundle", "--invariants", "-o", "json")
	require.Equal(t, 1, res.code, res.stderr)

	var rep struct {
		EntriesWithErrors int                          `json:"entriesWithErrors"`
		Issues            map[string][]map[string]any `json:"issues"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &rep))
	assert.Equal(t, 1, rep.EntriesWithErrors)
	require.Len(t, rep.Issues["0"], 1)
	assert.Equal(t, "InvalidEnumValue", rep.Issues["0"][0]["kind"])

	keys := map[string]string{}
	for _, iss := range rep.Issues["1"] {
		keys[iss["constraintKey"].(string)] = iss["severity"].(string)
	}
	assert.Equal(t, map[string]string{"pat-1": "error", "dom-6": "warning"}, keys)
}

func TestBundle_InvariantWarningsDoNotFail(t *testing.T) {
	bundle := `{"resourceType":"Bundle","type":"collection","entry":[{"resource":{"resourceType":"Basic","code":{"text":"x"}}}]}`
	res := execute(t, bundle, "bundle", "--invariants")
	assert.Equal(t, 0, res.code, res.stdout)
	assert.Contains(t, res.stdout, "entry[0]:")
	assert.Contains(t, res.stdout, "dom-6")
}

func TestDecode_OutcomeOutput(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", patient)
	bad := writeFile(t, dir, "bad.json", ambiguous)

	res := execute(t, "", "decode", "-o", "outcome", good, bad)
	require.Equal(t, 1, res.code, res.stderr)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 2)

	var ok, failed map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ok))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failed))

	assert.Equal(t, "OperationOutcome", ok["resourceType"])
	okIssues := ok["issue"].([]any)
	require.Len(t, okIssues, 1)
	assert.Equal(t, "information", okIssues[0].(map[string]any)["severity"])

	issues := failed["issue"].([]any)
	require.Len(t, issues, 1)
	issue := issues[0].(map[string]any)
	assert.Equal(t, "error", issue["severity"])
	assert.Equal(t, []any{"Observation.value[x]"}, issue["expression"])
}

func TestInvariants_StructureErrorsFirst(t *testing.T) {
	res := execute(t, ambiguous, "invariants", "--no-builtins")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "Observation.value[x]")
}

func TestInvariants_Profile(t *testing.T) {
	dir := t.TempDir()
	profile := writeFile(t, dir, "profile.json", `{
		"resourceType": "StructureDefinition",
		"url": "http://example.org/fhir/StructureDefinition/named-patient",
		"name": "NamedPatient",
		"status": "draft",
		"kind": "resource",
		"abstract": false,
		"type": "Patient",
		"snapshot": {"element": [{"id": "Patient", "path": "Patient", "min": 0, "max": "*",
			"constraint": [{"key": "np-1", "severity": "error", "human": "Patient needs a name", "expression": "name.exists()"}]}]}
	}`)

	res := execute(t, patient, "invariants", "--no-builtins", "--profile", profile)
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "np-1")

	named := `{"resourceType":"Patient","name":[{"family":"Doe"}]}`
	res = execute(t, named, "invariants", "--no-builtins", "--profile", profile)
	assert.Equal(t, 0, res.code, res.stdout)
}

func TestConformance(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "package.json", `{"name":"local.test","version":"1.0.0"}`)
	writeFile(t, dir, "StructureDefinition-Age.json", `{
		"resourceType": "StructureDefinition",
		"url": "http://hl7.org/fhir/StructureDefinition/Age",
		"name": "Age",
		"status": "draft",
		"kind": "complex-type",
		"abstract": false,
		"type": "Quantity",
		"snapshot": {"element": [
			{"id": "Quantity", "path": "Quantity", "min": 0, "max": "*"},
			{"id": "Quantity.value", "path": "Quantity.value", "min": 0, "max": "1"}
		]}
	}`)

	res := execute(t, "", "conformance", "--dir", dir)
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Compared 1 structures, 1 elements (0 skipped)")

	res = execute(t, "", "conformance", "--cache", t.TempDir())
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "not found")
}

func TestTypes(t *testing.T) {
	res := execute(t, "", "types", "--resources")
	require.Equal(t, 0, res.code)
	lines := strings.Fields(res.stdout)
	assert.Contains(t, lines, "Patient")
	assert.NotContains(t, lines, "Money")

	res = execute(t, "", "types", "--choices")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "Observation.value[x]: Quantity | CodeableConcept")
	assert.Contains(t, res.stdout, "Communication.payload.content[x] (required)")
}

func TestVersion(t *testing.T) {
	res := execute(t, "", "--version")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.stdout, "4.0.1")
}
