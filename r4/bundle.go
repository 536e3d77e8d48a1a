package r4

import (
	"github.com/gofhir/models/codec"
	"github.com/gofhir/models/primitive"
)

// Bundle is a container for a collection of resources.
type Bundle struct {
	ID               *string
	Meta             *Meta
	ImplicitRules    *string
	ImplicitRulesExt *Element
	Language         *string
	LanguageExt      *Element

	Identifier   *Identifier
	Type         BundleType
	TypeExt      *Element
	Timestamp    *string
	TimestampExt *Element
	Total        *int
	TotalExt     *Element
	Link         []BundleLink
	Entry        []BundleEntry
	Signature    *Signature
}

func (Bundle) StructureName() string { return "Bundle" }

func (Bundle) ResourceType() string { return "Bundle" }

func (x Bundle) ResourceID() *string { return x.ID }

func (x *Bundle) DecodeFHIR(o *codec.Object) error {
	o.ExpectResourceType("Bundle")
	x.ID = resourceID(o)
	x.Meta = codec.OptStruct[Meta](o, "meta")
	x.ImplicitRules, x.ImplicitRulesExt = optString(o, "implicitRules", primitive.URI)
	x.Language, x.LanguageExt = optString(o, "language", primitive.Code)
	x.Identifier = codec.OptStruct[Identifier](o, "identifier")
	x.Type, x.TypeExt = reqEnum[BundleType](o, "type")
	x.Timestamp, x.TimestampExt = optString(o, "timestamp", primitive.Instant)
	x.Total, x.TotalExt = optInt(o, "total", primitive.UnsignedInt)
	x.Link = codec.Structs[BundleLink](o, "link")
	x.Entry = codec.Structs[BundleEntry](o, "entry")
	x.Signature = codec.OptStruct[Signature](o, "signature")
	return o.Done()
}

func (x Bundle) EncodeFHIR(e *codec.ObjectEncoder) {
	encResourceHeader(e, "Bundle", x.ID, x.Meta, x.ImplicitRules, x.ImplicitRulesExt, x.Language, x.LanguageExt)
	codec.EncodeOpt(e, "identifier", x.Identifier)
	encEnum(e, "type", x.Type, x.TypeExt)
	encString(e, "timestamp", x.Timestamp, x.TimestampExt)
	encInt(e, "total", x.Total, x.TotalExt)
	codec.EncodeList(e, "link", x.Link)
	codec.EncodeList(e, "entry", x.Entry)
	codec.EncodeOpt(e, "signature", x.Signature)
}

type BundleLink struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Relation    string
	RelationExt *Element
	URL         string
	URLExt      *Element
}

func (BundleLink) StructureName() string { return "BundleLink" }

func (x *BundleLink) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Relation, x.RelationExt = reqString(o, "relation", primitive.String)
	x.URL, x.URLExt = reqString(o, "url", primitive.URI)
	return o.Done()
}

func (x BundleLink) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encReqString(e, "relation", x.Relation, x.RelationExt)
	encReqString(e, "url", x.URL, x.URLExt)
}

// BundleEntry is one entry in a bundle: a resource or information about a resource.
type BundleEntry struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Link       []BundleLink
	FullURL    *string
	FullURLExt *Element
	Resource   Resource
	Search     *BundleEntrySearch
	Request    *BundleEntryRequest
	Response   *BundleEntryResponse
}

func (BundleEntry) StructureName() string { return "BundleEntry" }

func (x *BundleEntry) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Link = codec.Structs[BundleLink](o, "link")
	x.FullURL, x.FullURLExt = optString(o, "fullUrl", primitive.URI)
	x.Resource = optResource(o, "resource")
	x.Search = codec.OptStruct[BundleEntrySearch](o, "search")
	x.Request = codec.OptStruct[BundleEntryRequest](o, "request")
	x.Response = codec.OptStruct[BundleEntryResponse](o, "response")
	return o.Done()
}

func (x BundleEntry) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	codec.EncodeList(e, "link", x.Link)
	encString(e, "fullUrl", x.FullURL, x.FullURLExt)
	encResource(e, "resource", x.Resource)
	codec.EncodeOpt(e, "search", x.Search)
	codec.EncodeOpt(e, "request", x.Request)
	codec.EncodeOpt(e, "response", x.Response)
}

type BundleEntrySearch struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Mode     SearchEntryMode
	ModeExt  *Element
	Score    *primitive.Decimal
	ScoreExt *Element
}

func (BundleEntrySearch) StructureName() string { return "BundleEntrySearch" }

func (x *BundleEntrySearch) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Mode, x.ModeExt = optEnum[SearchEntryMode](o, "mode")
	x.Score, x.ScoreExt = optDecimal(o, "score")
	return o.Done()
}

func (x BundleEntrySearch) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encEnum(e, "mode", x.Mode, x.ModeExt)
	encDecimal(e, "score", x.Score, x.ScoreExt)
}

type BundleEntryRequest struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Method             HTTPVerb
	MethodExt          *Element
	URL                string
	URLExt             *Element
	IfNoneMatch        *string
	IfNoneMatchExt     *Element
	IfModifiedSince    *string
	IfModifiedSinceExt *Element
	IfMatch            *string
	IfMatchExt         *Element
	IfNoneExist        *string
	IfNoneExistExt     *Element
}

func (BundleEntryRequest) StructureName() string { return "BundleEntryRequest" }

func (x *BundleEntryRequest) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Method, x.MethodExt = reqEnum[HTTPVerb](o, "method")
	x.URL, x.URLExt = reqString(o, "url", primitive.URI)
	x.IfNoneMatch, x.IfNoneMatchExt = optString(o, "ifNoneMatch", primitive.String)
	x.IfModifiedSince, x.IfModifiedSinceExt = optString(o, "ifModifiedSince", primitive.Instant)
	x.IfMatch, x.IfMatchExt = optString(o, "ifMatch", primitive.String)
	x.IfNoneExist, x.IfNoneExistExt = optString(o, "ifNoneExist", primitive.String)
	return o.Done()
}

func (x BundleEntryRequest) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encEnum(e, "method", x.Method, x.MethodExt)
	encReqString(e, "url", x.URL, x.URLExt)
	encString(e, "ifNoneMatch", x.IfNoneMatch, x.IfNoneMatchExt)
	encString(e, "ifModifiedSince", x.IfModifiedSince, x.IfModifiedSinceExt)
	encString(e, "ifMatch", x.IfMatch, x.IfMatchExt)
	encString(e, "ifNoneExist", x.IfNoneExist, x.IfNoneExistExt)
}

type BundleEntryResponse struct {
	ID                *string
	Extension         []Extension
	ModifierExtension []Extension

	Status          string
	StatusExt       *Element
	Location        *string
	LocationExt     *Element
	Etag            *string
	EtagExt         *Element
	LastModified    *string
	LastModifiedExt *Element
	Outcome         Resource
}

func (BundleEntryResponse) StructureName() string { return "BundleEntryResponse" }

func (x *BundleEntryResponse) DecodeFHIR(o *codec.Object) error {
	x.ID = elementID(o)
	x.Extension = extensions(o)
	x.ModifierExtension = modifierExtensions(o)
	x.Status, x.StatusExt = reqString(o, "status", primitive.String)
	x.Location, x.LocationExt = optString(o, "location", primitive.URI)
	x.Etag, x.EtagExt = optString(o, "etag", primitive.String)
	x.LastModified, x.LastModifiedExt = optString(o, "lastModified", primitive.Instant)
	x.Outcome = optResource(o, "outcome")
	return o.Done()
}

func (x BundleEntryResponse) EncodeFHIR(e *codec.ObjectEncoder) {
	e.OptString("id", x.ID)
	codec.EncodeList(e, "extension", x.Extension)
	codec.EncodeList(e, "modifierExtension", x.ModifierExtension)
	encReqString(e, "status", x.Status, x.StatusExt)
	encString(e, "location", x.Location, x.LocationExt)
	encString(e, "etag", x.Etag, x.EtagExt)
	encString(e, "lastModified", x.LastModified, x.LastModifiedExt)
	encResource(e, "outcome", x.Outcome)
}
