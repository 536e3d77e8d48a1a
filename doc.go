// Package fhirmodels decodes and encodes FHIR R4 JSON documents into typed
// Go structures.
//
// The structures live in package r4; the JSON runtime they share lives in
// package codec. This package is the entry point: it reads the resourceType
// discriminator, dispatches to the matching structure, and reports decode
// failures as typed errors or OperationOutcome issues. Only the resource
// types listed by r4.ResourceTypes are modeled; any other resourceType is
// rejected as UnknownResourceType.
//
// # Quick Start
//
//	import (
//	    fm "github.com/gofhir/models"
//	    "github.com/gofhir/models/r4"
//	)
//
//	v, err := fm.Decode(data)
//	if err != nil {
//	    oo := fm.OperationOutcome(err)
//	    ...
//	}
//	obs := v.(*r4.Observation)
//	switch val := obs.Value.(type) {
//	case *r4.Quantity:
//	    fmt.Println(val.Value, *val.Unit)
//	case *r4.String:
//	    fmt.Println(*val.Value)
//	}
//	out := fm.Encode(obs)
//
// # Choice Elements
//
// A FHIR choice element such as Observation.value[x] is a single Go field of
// a sealed interface type. The decoder accepts exactly one of the suffixed
// member names (valueQuantity, valueString, ...) and fails with
// codec.ErrAmbiguousChoice when more than one is present. Primitive
// variants keep their "_value..." extension sibling on the variant itself.
//
// # Functional Options
//
//	dec, err := fm.NewDecoder(
//	    fm.WithStrict(true),
//	    fm.WithModifierCheck(true),
//	    fm.WithUnderstoodModifiers("http://example.org/fhir/modifier"),
//	    fm.WithMetrics(fm.NewMetrics()),
//	)
//
// # Errors
//
// Every structural failure is a *codec.DecodeError wrapping one of the
// codec.Err* kinds. Use errors.Is to classify it, codec.AsDecodeError for
// its location, or IssueFromError to turn it into an OperationOutcome issue.
package fhirmodels
