package invariant

import (
	"context"
	"errors"
	"sync"
	"testing"

	json "github.com/goccy/go-json"
	fhir "github.com/gofhir/fhir/r4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fm "github.com/gofhir/models"
	"github.com/gofhir/models/pkg/logger"
	"github.com/gofhir/models/r4"
)

// stubEvaluator answers by expression; unknown expressions hold.
type stubEvaluator struct {
	mu      sync.Mutex
	results map[string]bool
	errs    map[string]error
	seen    [][]byte
}

func (s *stubEvaluator) Evaluate(_ context.Context, expression string, resource []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, resource)
	if err, ok := s.errs[expression]; ok {
		return false, err
	}
	if ok, found := s.results[expression]; found {
		return ok, nil
	}
	return true, nil
}

func builtin(t *testing.T, key string) Invariant {
	t.Helper()
	for _, inv := range Builtins() {
		if inv.Key == key {
			return inv
		}
	}
	t.Fatalf("no builtin %s", key)
	return Invariant{}
}

func newChecker(stub *stubEvaluator, opts ...Option) *Checker {
	return NewChecker(append([]Option{WithEvaluator(stub), WithLogger(logger.Nop())}, opts...)...)
}

const observation = `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":"v","dataAbsentReason":{"text":"masked"}}`

func TestInvariant_AppliesTo(t *testing.T) {
	assert.True(t, builtin(t, "obs-6").AppliesTo("Observation"))
	assert.False(t, builtin(t, "obs-6").AppliesTo("Patient"))

	assert.True(t, builtin(t, "dom-2").AppliesTo("Patient"))
	assert.False(t, builtin(t, "dom-2").AppliesTo("Bundle"))
	assert.False(t, builtin(t, "dom-2").AppliesTo("Parameters"))

	assert.True(t, builtin(t, "ext-1").AppliesTo("Bundle"))
}

func TestBuiltinKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, inv := range Builtins() {
		assert.False(t, seen[inv.Key], inv.Key)
		seen[inv.Key] = true
		assert.NotEmpty(t, inv.Expression, inv.Key)
		assert.NotEmpty(t, inv.Human, inv.Key)
	}
}

func TestChecker_Violation(t *testing.T) {
	stub := &stubEvaluator{results: map[string]bool{builtin(t, "obs-6").Expression: false}}
	result := newChecker(stub).Check(context.Background(), []byte(observation))

	assert.False(t, result.Valid)
	assert.Equal(t, "Observation", result.ResourceType)
	require.Len(t, result.Issues, 1)

	issue := result.Issues[0]
	assert.Equal(t, fm.SeverityError, issue.Severity)
	assert.Equal(t, fm.IssueTypeInvariant, issue.Code)
	assert.Equal(t, "obs-6", issue.ConstraintKey)
	assert.Equal(t, []string{"Observation"}, issue.Expression)
	assert.Contains(t, issue.Diagnostics, "Constraint failed: obs-6")

	oo := result.OperationOutcome()
	require.Len(t, oo.Issue, 1)
	assert.Equal(t, "obs-6", *oo.Issue[0].Details.Coding[0].Code)
}

func TestChecker_OnlyApplicableInvariants(t *testing.T) {
	stub := &stubEvaluator{}
	c := newChecker(stub)

	c.Check(context.Background(), []byte(`{"resourceType":"Patient"}`))
	assert.Len(t, stub.seen, len(c.For("Patient")))

	for _, inv := range c.For("Patient") {
		assert.True(t, inv.AppliesTo("Patient"), inv.Key)
		assert.NotEqual(t, "Observation", inv.Context)
	}
}

func TestChecker_WarningKeepsResultValid(t *testing.T) {
	stub := &stubEvaluator{results: map[string]bool{builtin(t, "dom-6").Expression: false}}
	result := newChecker(stub).Check(context.Background(), []byte(`{"resourceType":"Patient"}`))

	assert.True(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, fm.SeverityWarning, result.Issues[0].Severity)
	assert.Equal(t, 1, result.WarningCount())
}

func TestChecker_ElementPathLocation(t *testing.T) {
	stub := &stubEvaluator{results: map[string]bool{builtin(t, "pat-1").Expression: false}}
	result := newChecker(stub).Check(context.Background(), []byte(`{"resourceType":"Patient","contact":[{"gender":"male"}]}`))

	require.Len(t, result.Issues, 1)
	assert.Equal(t, []string{"Patient.contact"}, result.Issues[0].Expression)
}

func TestChecker_EvaluationError(t *testing.T) {
	stub := &stubEvaluator{errs: map[string]error{builtin(t, "cpb-1").Expression: errors.New("boom")}}
	result := newChecker(stub).Check(context.Background(), []byte(`{"resourceType":"CapabilityStatement"}`))

	assert.True(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, fm.IssueTypeProcessing, result.Issues[0].Code)
	assert.Equal(t, fm.SeverityWarning, result.Issues[0].Severity)
	assert.Contains(t, result.Issues[0].Diagnostics, "boom")
}

func TestChecker_MissingDiscriminator(t *testing.T) {
	result := newChecker(&stubEvaluator{}).Check(context.Background(), []byte(`{"id":"x"}`))
	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "MissingDiscriminator", result.Issues[0].Kind)
}

func TestChecker_CustomInvariants(t *testing.T) {
	custom := Invariant{
		Key:        "basic-1",
		Human:      "Basic needs a subject",
		Expression: "subject.exists()",
		Context:    "Basic",
	}
	stub := &stubEvaluator{results: map[string]bool{"subject.exists()": false}}
	c := newChecker(stub, WithoutBuiltins(), WithInvariants(custom))

	require.Len(t, c.For("Basic"), 1)
	assert.Empty(t, c.For("Patient"))

	result := c.Check(context.Background(), []byte(`{"resourceType":"Basic","code":{"text":"x"}}`))
	assert.False(t, result.Valid)
	assert.Equal(t, "basic-1", result.Issues[0].ConstraintKey)
	assert.Equal(t, fm.SeverityError, result.Issues[0].Severity)

	c.Add(Invariant{Key: "any-1", Expression: "id.exists()"})
	assert.Len(t, c.For("Patient"), 1)
}

func TestChecker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := newChecker(&stubEvaluator{}).Check(ctx, []byte(`{"resourceType":"Patient"}`))
	assert.False(t, result.Valid)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, fm.SeverityFatal, result.Issues[0].Severity)
}

func TestChecker_CheckResource(t *testing.T) {
	stub := &stubEvaluator{}
	p := &r4.Patient{ID: r4.Ptr("p1")}
	result := newChecker(stub, WithoutBuiltins(), WithInvariants(Invariant{Key: "k", Expression: "id.exists()"})).
		CheckResource(context.Background(), p)

	assert.True(t, result.Valid)
	require.Len(t, stub.seen, 1)
	assert.JSONEq(t, `{"resourceType":"Patient","id":"p1"}`, string(stub.seen[0]))
}

const patientSD = `{
	"resourceType": "StructureDefinition",
	"url": "http://example.org/fhir/StructureDefinition/strict-patient",
	"name": "StrictPatient",
	"type": "Patient",
	"kind": "resource",
	"abstract": false,
	"status": "draft",
	"snapshot": {"element": [
		{"id": "Patient", "path": "Patient", "min": 0, "max": "*",
		 "constraint": [
			{"key": "dom-6", "severity": "warning", "human": "A resource should have narrative", "expression": "text.` + "`div`" + `.exists()"},
			{"key": "ele-1", "severity": "error", "human": "All FHIR elements must have a @value or children", "expression": "hasValue() or (children().count() > id.count())"},
			{"key": "sp-1", "severity": "error", "human": "Must have a name", "expression": "name.exists()"}
		]},
		{"id": "Patient.contact", "path": "Patient.contact", "min": 0, "max": "*",
		 "constraint": [
			{"key": "pat-1", "severity": "error", "human": "Contact details", "expression": "name.exists() or telecom.exists()"},
			{"key": "pat-1", "severity": "error", "human": "Contact details", "expression": "name.exists() or telecom.exists()"}
		]},
		{"id": "Patient.deceased[x]", "path": "Patient.deceased[x]", "min": 0, "max": "1",
		 "constraint": [
			{"key": "sp-2", "severity": "error", "human": "Deceased must be a flag", "expression": "$this is boolean"}
		]}
	]}
}`

func TestFromStructureDefinition(t *testing.T) {
	var sd fhir.StructureDefinition
	require.NoError(t, json.Unmarshal([]byte(patientSD), &sd))

	invs := FromStructureDefinition(&sd)
	require.Len(t, invs, 4)

	assert.Equal(t, "dom-6", invs[0].Key)
	assert.Equal(t, fm.SeverityWarning, invs[0].Severity)
	assert.Equal(t, "Patient", invs[0].Context)
	assert.Empty(t, invs[0].Path)

	assert.Equal(t, "sp-1", invs[1].Key)
	assert.Equal(t, "name.exists()", invs[1].Expression)

	assert.Equal(t, "pat-1", invs[2].Key)
	assert.Equal(t, "Patient.contact", invs[2].Path)
	assert.Equal(t, "contact.all(name.exists() or telecom.exists())", invs[2].Expression)

	assert.Equal(t, "deceased.all($this is boolean)", invs[3].Expression)
	assert.Equal(t, fm.SeverityError, invs[3].Severity)

	assert.Nil(t, FromStructureDefinition(nil))
}
