package r4_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/r4"
)

func decodePayload(doc string) (r4.CommunicationPayload, error) {
	var p r4.CommunicationPayload
	err := codec.UnmarshalInto([]byte(doc), &p, nil)
	return p, err
}

func TestPayloadContentString(t *testing.T) {
	p, err := decodePayload(`{"contentString":"hello"}`)
	require.NoError(t, err)

	s, ok := p.Content.(*r4.String)
	require.True(t, ok, "got %T", p.Content)
	assert.Equal(t, "hello", *s.Value)
	assert.JSONEq(t, `{"contentString":"hello"}`, string(codec.Marshal(p)))
}

func TestPayloadContentAmbiguous(t *testing.T) {
	_, err := decodePayload(`{"contentString":"hello","contentAttachment":{}}`)
	require.ErrorIs(t, err, codec.ErrAmbiguousChoice)

	de, ok := codec.AsDecodeError(err)
	require.True(t, ok)
	assert.Equal(t, "content", de.Field)
	assert.Equal(t, []string{"contentString", "contentAttachment"}, de.Keys)
}

func TestPayloadContentRequired(t *testing.T) {
	_, err := decodePayload(`{"id":"p1"}`)
	require.ErrorIs(t, err, codec.ErrMissingRequiredChoice)
	de, _ := codec.AsDecodeError(err)
	assert.Equal(t, "content", de.Field)
}

func TestPayloadVariants(t *testing.T) {
	tests := []struct {
		doc   string
		check func(t *testing.T, v r4.CommunicationPayloadContent)
	}{
		{`{"contentAttachment":{"contentType":"application/pdf","url":"http://example.org/report.pdf"}}`, func(t *testing.T, v r4.CommunicationPayloadContent) {
			a, ok := v.(*r4.Attachment)
			require.True(t, ok)
			assert.Equal(t, "application/pdf", *a.ContentType)
		}},
		{`{"contentReference":{"reference":"DocumentReference/example"}}`, func(t *testing.T, v r4.CommunicationPayloadContent) {
			r, ok := v.(*r4.Reference)
			require.True(t, ok)
			assert.Equal(t, "DocumentReference/example", *r.Reference)
		}},
		{`{"_contentString":{"extension":[{"url":"http://example.org/redacted","valueBoolean":true}]}}`, func(t *testing.T, v r4.CommunicationPayloadContent) {
			s, ok := v.(*r4.String)
			require.True(t, ok)
			assert.Nil(t, s.Value)
			require.NotNil(t, s.Ext)
			assert.Len(t, s.Ext.Extension, 1)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.doc, func(t *testing.T) {
			p, err := decodePayload(tt.doc)
			require.NoError(t, err)
			tt.check(t, p.Content)
			assert.JSONEq(t, tt.doc, string(codec.Marshal(p)))
		})
	}
}

func TestPayloadEncodeWithoutContentPanics(t *testing.T) {
	assert.Panics(t, func() {
		codec.Marshal(r4.CommunicationPayload{})
	})
}

const communication = `{
  "resourceType": "Communication",
  "id": "example",
  "identifier": [{"type": {"text": "Paging System"}, "system": "urn:oid:1.3.4.5.6.7", "value": "2345678901"}],
  "instantiatesUri": ["http://example.org/hyperkalemia"],
  "partOf": [{"display": "Serum Potassium Observation"}],
  "status": "completed",
  "category": [{"coding": [{"system": "http://acme.org/messagetypes", "code": "Alert"}], "text": "Alert"}],
  "medium": [{"coding": [{"system": "http://terminology.hl7.org/CodeSystem/v3-ParticipationMode", "code": "WRITTEN", "display": "written"}], "text": "written"}],
  "subject": {"reference": "Patient/example"},
  "encounter": {"reference": "Encounter/example"},
  "sent": "2014-12-12T18:01:10-08:00",
  "received": "2014-12-12T18:01:11-08:00",
  "recipient": [{"reference": "Practitioner/example"}],
  "sender": {"reference": "Device/f001"},
  "payload": [
    {"contentString": "Patient 1 has a very high serum potassium value (7.2 mmol/L on 2014-Dec-12 at 5:55 pm)"},
    {"contentReference": {"display": "Serum Potassium Observation"}}
  ]
}`

func TestCommunicationRoundTrip(t *testing.T) {
	v, err := codec.Dispatch([]byte(communication), r4.Lookup, nil)
	require.NoError(t, err)

	c, ok := v.(*r4.Communication)
	require.True(t, ok)
	assert.Equal(t, r4.EventStatusCompleted, c.Status)
	require.Len(t, c.Payload, 2)
	assert.IsType(t, &r4.String{}, c.Payload[0].Content)
	assert.IsType(t, &r4.Reference{}, c.Payload[1].Content)

	assert.JSONEq(t, communication, string(codec.Marshal(c)))
}

func TestCommunicationPayloadErrorPath(t *testing.T) {
	doc := `{"resourceType":"Communication","status":"completed","payload":[{"contentString":"a"},{"contentString":"b","contentReference":{}}]}`
	_, err := codec.Dispatch([]byte(doc), r4.Lookup, nil)
	require.ErrorIs(t, err, codec.ErrAmbiguousChoice)
	de, _ := codec.AsDecodeError(err)
	assert.Equal(t, "Communication.payload[1].content[x]", de.Location())
}
