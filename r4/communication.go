package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Communication records a conveyance of information from a sender to a recipient.
type Communication struct {
	ID                *string
	Meta              *Meta
	ImplicitRules     *string
	ImplicitRulesExt  *Element
	Language          *string
	LanguageExt       *Element
	Text              *Narrative
	Contained         []Resource
	Extension         []Extension
	ModifierExtension []Extension

	Identifier               []Identifier
	InstantiatesCanonical    []string
	InstantiatesCanonicalExt []*Element
	InstantiatesURI          []string
	InstantiatesURIExt       []*Element
	BasedOn                  []Reference
	PartOf                   []Reference
	InResponseTo             []Reference
	Status                   EventStatus
	StatusExt                *Element
	StatusReason             *CodeableConcept
	Category                 []CodeableConcept
	Priority                 RequestPriority
	PriorityExt              *Element
	Medium                   []CodeableConcept
	Subject                  *Reference
	Topic                    *CodeableConcept
	About                    []Reference
	Encounter                *Reference
	Sent                     *string
	SentExt                  *Element
	Received                 *string
	ReceivedExt              *Element
	Recipient                []Reference
	Sender                   *Reference
	ReasonCode               []CodeableConcept
	ReasonReference          []Reference
	Payload                  []CommunicationPayload
	Note                     []Annotation
}

func (Communication) StructureName() string { return "Communication" }

func (Communication) ResourceType() string { return "Communication" }

func (x Communication) ResourceID() *string { return x.ID }

func (x *Communication) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("Communication")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Text = codec.OptStruct[Narrative](o, "text")
	x.Contained = resourceList(o, "contained")
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Identifier = codec.Structs[Identifier](o, "identifier")
	x.InstantiatesCanonical, x.InstantiatesCanonicalExt = stringList(o, "instantiatesCanonical", primitive.Canonical)
	x.InstantiatesURI, x.InstantiatesURIExt = stringList(o, "instantiatesUri", primitive.URI)
	x.BasedOn = codec.Structs[Reference](o, "basedOn")
	x.PartOf = codec.Structs[Reference](o, "partOf")
	x.InResponseTo = codec.Structs[Reference](o, "inResponseTo")
	x.Status, x.StatusExt = reqEnum[EventStatus](o, "status")
	x.StatusReason = codec.OptStruct[CodeableConcept](o, "statusReason")
	x.Category = codec.Structs[CodeableConcept](o, "category")
	x.Priority, x.PriorityExt = optEnum[RequestPriority](o, "priority")
	x.Medium = codec.Structs[CodeableConcept](o, "medium")
	x.Subject = codec.OptStruct[Reference](o, "subject")
	x.Topic = codec.OptStruct[CodeableConcept](o, "topic")
	x.About = codec.Structs[Reference](o, "about")
	x.Encounter = codec.OptStruct[Reference](o, "encounter")
	x.Sent, x.SentExt = optString(o, "sent", primitive.DateTime)
	x.Received, x.ReceivedExt = optString(o, "received", primitive.DateTime)
	x.Recipient = codec.Structs[Reference](o, "recipient")
	x.Sender = codec.OptStruct[Reference](o, "sender")
	x.ReasonCode = codec.Structs[CodeableConcept](o, "reasonCode")
	x.ReasonReference = codec.Structs[Reference](o, "reasonReference")
	x.Payload = codec.Structs[CommunicationPayload](o, "payload")
	x.Note = codec.Structs[Annotation](o, "note")
	return o.Done()
}

func (x Communication) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "Communication", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeOpt(e, "text", x.Text)
	codec.EncodeList(e, "contained", x.Contained)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "identifier", x.Identifier)
	encStrings(e, "instantiatesCanonical", x.InstantiatesCanonical, x.InstantiatesCanonicalExt)
	encStrings(e, "instantiatesUri", x.InstantiatesURI, x.InstantiatesURIExt)
	codec.EncodeList(e, "basedOn", x.BasedOn)
	codec.EncodeList(e, "partOf", x.PartOf)
	codec.EncodeList(e, "inResponseTo", x.InResponseTo)
	encEnum(e, "status", x.Status, x.StatusExt)
	codec.EncodeOpt(e, "statusReason", x.StatusReason)
	codec.EncodeList(e, "category", x.Category)
	encEnum(e, "priority", x.Priority, x.PriorityExt)
	codec.EncodeList(e, "medium", x.Medium)
	codec.EncodeOpt(e, "subject", x.Subject)
	codec.EncodeOpt(e, "topic", x.Topic)
	codec.EncodeList(e, "about", x.About)
	codec.EncodeOpt(e, "encounter", x.Encounter)
	encString(e, "sent", x.Sent, x.SentExt)
	encString(e, "received", x.Received, x.ReceivedExt)
	codec.EncodeList(e, "recipient", x.Recipient)
	codec.EncodeOpt(e, "sender", x.Sender)
	codec.EncodeList(e, "reasonCode", x.ReasonCode)
	codec.EncodeList(e, "reasonReference", x.ReasonReference)
	codec.EncodeList(e, "payload", x.Payload)
	codec.EncodeList(e, "note", x.Note)
}

// CommunicationPayload is one piece of communicated content.
type CommunicationPayload struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Content CommunicationPayloadContent
}

func (CommunicationPayload) StructureName() string { return "CommunicationPayload" }

func (x *CommunicationPayload) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Content = codec.DecodeChoice[CommunicationPayloadContent](o, communicationPayloadContent)
	return o.Done()
}

func (x CommunicationPayload) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	e.Choice(communicationPayloadContent, x.Content)
}
