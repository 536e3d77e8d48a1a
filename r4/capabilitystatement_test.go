package r4_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/r4"
)

func TestInteractionDecode(t *testing.T) {
	var in r4.CapabilityStatementRestResourceInteraction
	err := codec.UnmarshalInto([]byte(`{"code":"read","documentation":"simple read"}`), &in, nil)
	require.NoError(t, err)
	assert.Equal(t, r4.TypeRestfulInteractionRead, in.Code)
	require.NotNil(t, in.Documentation)
	assert.Equal(t, "simple read", *in.Documentation)
}

func TestInteractionRejectsUnknownCode(t *testing.T) {
	var in r4.CapabilityStatementRestResourceInteraction
	err := codec.UnmarshalInto([]byte(`{"code":"bogus"}`), &in, nil)
	require.ErrorIs(t, err, codec.ErrInvalidEnumValue)

	de, ok := codec.AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "code", de.Field)
	assert.Equal(t, "bogus", de.Value)
	assert.Equal(t, "CapabilityStatementRestResourceInteraction", de.Structure)
}

func TestInteractionRequiresCode(t *testing.T) {
	var in r4.CapabilityStatementRestResourceInteraction
	err := codec.UnmarshalInto([]byte(`{"documentation":"no code"}`), &in, nil)
	require.ErrorIs(t, err, codec.ErrMissingRequiredField)
	de, _ := codec.AsDecodeError(err)
	assert.Equal(t, "code", de.Field)
}

func TestInteractionEnumClosure(t *testing.T) {
	for _, code := range r4.TypeRestfulInteractionValues() {
		t.Run(string(code), func(t *testing.T) {
			doc := fmt.Sprintf(`{"code":%q}`, code)
			var in r4.CapabilityStatementRestResourceInteraction
			require.NoError(t, codec.UnmarshalInto([]byte(doc), &in, nil))
			assert.Equal(t, code, in.Code)
			assert.JSONEq(t, doc, string(codec.Marshal(in)))
		})
	}
}

func TestSystemInteractionIsDistinctValueSet(t *testing.T) {
	var in r4.CapabilityStatementRestInteraction
	err := codec.UnmarshalInto([]byte(`{"code":"read"}`), &in, nil)
	require.ErrorIs(t, err, codec.ErrInvalidEnumValue)

	require.NoError(t, codec.UnmarshalInto([]byte(`{"code":"transaction"}`), &in, nil))
	assert.Equal(t, r4.SystemRestfulInteractionTransaction, in.Code)
}

const capabilityStatement = `{
  "resourceType": "CapabilityStatement",
  "id": "example",
  "text": {"status": "generated", "div": "<div xmlns=\"http://www.w3.org/1999/xhtml\">Example</div>"},
  "url": "urn:uuid:68d043b5-9ecf-4559-a57a-396e0d452311",
  "version": "20130510",
  "name": "ACMEEHR",
  "status": "draft",
  "experimental": true,
  "date": "2012-01-04",
  "publisher": "ACME Corporation",
  "contact": [{"name": "System Administrator", "telecom": [{"system": "email", "value": "wile@acme.org"}]}],
  "useContext": [{"code": {"system": "http://terminology.hl7.org/CodeSystem/usage-context-type", "code": "focus"},
    "valueCodeableConcept": {"coding": [{"system": "http://terminology.hl7.org/CodeSystem/variant-state", "code": "positive"}]}}],
  "kind": "instance",
  "instantiates": ["http://ihe.org/fhir/CapabilityStatement/pixm-client"],
  "software": {"name": "EHR", "version": "0.00.020.2134", "releaseDate": "2012-01-04"},
  "implementation": {"description": "main EHR at ACME", "url": "http://10.2.3.4/fhir"},
  "fhirVersion": "4.0.1",
  "format": ["xml", "json"],
  "patchFormat": ["application/xml-patch+xml", "application/json-patch+json"],
  "rest": [{
    "mode": "server",
    "documentation": "Main FHIR endpoint for acem health",
    "security": {"cors": true, "service": [{"coding": [{"system": "http://terminology.hl7.org/CodeSystem/restful-security-service", "code": "SMART-on-FHIR"}]}]},
    "resource": [{
      "type": "Patient",
      "profile": "http://registry.fhir.org/r4/StructureDefinition/7896271d-57f6-4231-89dc-dcc91eab2416",
      "interaction": [{"code": "read"}, {"code": "vread", "documentation": "Only supported for patient records since 12-Dec 2012"}, {"code": "update"}, {"code": "history-instance"}, {"code": "create"}, {"code": "history-type"}],
      "versioning": "versioned-update",
      "readHistory": true,
      "updateCreate": false,
      "conditionalCreate": true,
      "conditionalRead": "full-support",
      "conditionalDelete": "not-supported",
      "referencePolicy": ["literal", "local"],
      "searchInclude": ["Patient:organization"],
      "searchParam": [{"name": "identifier", "definition": "http://hl7.org/fhir/SearchParameter/Patient-identifier", "type": "token"}]
    }],
    "interaction": [{"code": "transaction"}, {"code": "history-system"}],
    "compartment": ["http://hl7.org/fhir/CompartmentDefinition/patient"]
  }],
  "messaging": [{
    "endpoint": [{"protocol": {"system": "http://terminology.hl7.org/CodeSystem/message-transport", "code": "mllp"}, "address": "mllp:10.1.1.10:9234"}],
    "reliableCache": 30,
    "supportedMessage": [{"mode": "receiver", "definition": "MessageDefinition/example"}]
  }],
  "document": [{"mode": "consumer", "documentation": "Basic rules for all documents in the EHR system", "profile": "http://fhir.hl7.org/base/Profilebc054d23-75e1-4dc6-aca5-838b6b1ac81d/_history/b5fdd9fc-b021-4ea1-911a-721a60663796"}]
}`

func TestCapabilityStatementRoundTrip(t *testing.T) {
	var cs r4.CapabilityStatement
	require.NoError(t, json.Unmarshal([]byte(capabilityStatement), &cs))

	assert.Equal(t, r4.FHIRVersion4_0_1, cs.FHIRVersion)
	assert.Equal(t, []string{"xml", "json"}, cs.Format)
	require.Len(t, cs.Rest, 1)
	res := cs.Rest[0].Resource[0]
	assert.Equal(t, "Patient", res.Type)
	assert.Len(t, res.Interaction, 6)
	assert.Equal(t, r4.TypeRestfulInteractionVread, res.Interaction[1].Code)
	assert.Equal(t, []r4.ReferenceHandlingPolicy{r4.ReferenceHandlingPolicyLiteral, r4.ReferenceHandlingPolicyLocal}, res.ReferencePolicy)

	usage, ok := cs.UseContext[0].Value.(*r4.CodeableConcept)
	require.True(t, ok)
	assert.Equal(t, "positive", *usage.Coding[0].Code)

	out, err := json.Marshal(cs)
	require.NoError(t, err)
	assert.JSONEq(t, capabilityStatement, string(out))
}

func TestCapabilityStatementRequiredFields(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"status", `{"resourceType":"CapabilityStatement","date":"2020","kind":"instance","fhirVersion":"4.0.1","format":["json"]}`, "status"},
		{"format", `{"resourceType":"CapabilityStatement","status":"active","date":"2020","kind":"instance","fhirVersion":"4.0.1"}`, "format"},
		{"nested", `{"resourceType":"CapabilityStatement","status":"active","date":"2020","kind":"instance","fhirVersion":"4.0.1","format":["json"],"software":{"version":"1"}}`, "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cs r4.CapabilityStatement
			err := json.Unmarshal([]byte(tt.doc), &cs)
			require.ErrorIs(t, err, codec.ErrMissingRequiredField)
			de, _ := codec.AsDecodeError(err)
			assert.Equal(t, tt.field, de.Field)
		})
	}
}

func TestInteractionErrorPath(t *testing.T) {
	doc := `{"resourceType":"CapabilityStatement","status":"active","date":"2020","kind":"instance","fhirVersion":"4.0.1","format":["json"],
		"rest":[{"mode":"server","resource":[{"type":"Patient"},{"type":"Observation","interaction":[{"code":"read"},{"code":"bogus"}]}]}]}`
	_, err := codec.Dispatch([]byte(doc), r4.Lookup, nil)
	require.ErrorIs(t, err, codec.ErrInvalidEnumValue)
	de, _ := codec.AsDecodeError(err)
	assert.Equal(t, "CapabilityStatement.rest[0].resource[1].interaction[1]", de.Path)
}
