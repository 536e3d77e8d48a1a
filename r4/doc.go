// Package r4 contains typed structures for a subset of FHIR R4: the common
// data types, the clinical and infrastructure resources listed by
// ResourceTypes, and their backbone elements. A document whose resourceType
// is not modeled here fails with codec.ErrUnknownResourceType; it is never
// decoded partially.
//
// Conventions:
//
//   - Optional primitives are pointers; required strings and codes are values
//     where "" means absent.
//   - Every primitive field F has a sibling FExt *Element holding the "_f"
//     member. Repeating primitives pair []string with []*Element; "" and nil
//     entries stand for the null placeholders of the JSON form.
//   - Coded fields with a required binding use a named string type with an
//     IsValid method. Unknown codes fail to decode.
//   - A choice group such as Observation.value[x] is a sealed interface
//     (ObservationValue) implemented by pointer variants: *Quantity,
//     *CodeableConcept, *String and so on. A nil interface is an absent group.
//
// Decoding and encoding run through package codec. Structures also implement
// json.Marshaler and json.Unmarshaler:
//
//	var obs r4.Observation
//	if err := json.Unmarshal(data, &obs); err != nil {
//	    return err
//	}
//	switch v := obs.Value.(type) {
//	case *r4.Quantity:
//	    fmt.Println(v.Value, *v.Unit)
//	case *r4.String:
//	    fmt.Println(*v.Value)
//	}
package r4
