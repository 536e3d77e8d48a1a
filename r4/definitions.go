package r4

// definitions mirrors the field tables of the structures in this package.
var definitions = []Definition{
	{Name: "Element", Path: "Element", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
	}},
	{Name: "Extension", Path: "Extension", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "url", Min: 1, Max: "1", Types: []string{"uri"}},
		{Name: "value[x]", Min: 0, Max: "1", Choice: extensionValue},
	}},
	{Name: "Meta", Path: "Meta", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "versionId", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "lastUpdated", Min: 0, Max: "1", Types: []string{"instant"}},
		{Name: "source", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "profile", Min: 0, Max: "*", Types: []string{"canonical"}},
		{Name: "security", Min: 0, Max: "*", Types: []string{"Coding"}},
		{Name: "tag", Min: 0, Max: "*", Types: []string{"Coding"}},
	}},
	{Name: "Narrative", Path: "Narrative", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "status", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "div", Min: 1, Max: "1", Types: []string{"xhtml"}},
	}},
	{Name: "Address", Path: "Address", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "use", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "type", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "line", Min: 0, Max: "*", Types: []string{"string"}},
		{Name: "city", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "district", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "state", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "postalCode", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "country", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "period", Min: 0, Max: "1", Types: []string{"Period"}},
	}},
	{Name: "Annotation", Path: "Annotation", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "author[x]", Min: 0, Max: "1", Choice: annotationAuthor},
		{Name: "time", Min: 0, Max: "1", Types: []string{"dateTime"}},
		{Name: "text", Min: 1, Max: "1", Types: []string{"markdown"}},
	}},
	{Name: "Attachment", Path: "Attachment", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "contentType", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "data", Min: 0, Max: "1", Types: []string{"base64Binary"}},
		{Name: "url", Min: 0, Max: "1", Types: []string{"url"}},
		{Name: "size", Min: 0, Max: "1", Types: []string{"unsignedInt"}},
		{Name: "hash", Min: 0, Max: "1", Types: []string{"base64Binary"}},
		{Name: "title", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "creation", Min: 0, Max: "1", Types: []string{"dateTime"}},
	}},
	{Name: "CodeableConcept", Path: "CodeableConcept", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "coding", Min: 0, Max: "*", Types: []string{"Coding"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"string"}},
	}},
	{Name: "Coding", Path: "Coding", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "system", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "version", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "display", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "userSelected", Min: 0, Max: "1", Types: []string{"boolean"}},
	}},
	{Name: "ContactPoint", Path: "ContactPoint", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "system", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "use", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "rank", Min: 0, Max: "1", Types: []string{"positiveInt"}},
		{Name: "period", Min: 0, Max: "1", Types: []string{"Period"}},
	}},
	{Name: "HumanName", Path: "HumanName", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "use", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "family", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "given", Min: 0, Max: "*", Types: []string{"string"}},
		{Name: "prefix", Min: 0, Max: "*", Types: []string{"string"}},
		{Name: "suffix", Min: 0, Max: "*", Types: []string{"string"}},
		{Name: "period", Min: 0, Max: "1", Types: []string{"Period"}},
	}},
	{Name: "Identifier", Path: "Identifier", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "use", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "type", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "system", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "period", Min: 0, Max: "1", Types: []string{"Period"}},
		{Name: "assigner", Min: 0, Max: "1", Types: []string{"Reference"}},
	}},
	{Name: "Money", Path: "Money", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "currency", Min: 0, Max: "1", Types: []string{"code"}},
	}},
	{Name: "Period", Path: "Period", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "start", Min: 0, Max: "1", Types: []string{"dateTime"}},
		{Name: "end", Min: 0, Max: "1", Types: []string{"dateTime"}},
	}},
	{Name: "Quantity", Path: "Quantity", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "comparator", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "unit", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "system", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"code"}},
	}},
	{Name: "Range", Path: "Range", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "low", Min: 0, Max: "1", Types: []string{"Quantity"}},
		{Name: "high", Min: 0, Max: "1", Types: []string{"Quantity"}},
	}},
	{Name: "Ratio", Path: "Ratio", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "numerator", Min: 0, Max: "1", Types: []string{"Quantity"}},
		{Name: "denominator", Min: 0, Max: "1", Types: []string{"Quantity"}},
	}},
	{Name: "Reference", Path: "Reference", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "reference", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "type", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "identifier", Min: 0, Max: "1", Types: []string{"Identifier"}},
		{Name: "display", Min: 0, Max: "1", Types: []string{"string"}},
	}},
	{Name: "SampledData", Path: "SampledData", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "origin", Min: 1, Max: "1", Types: []string{"Quantity"}},
		{Name: "period", Min: 1, Max: "1", Types: []string{"decimal"}},
		{Name: "factor", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "lowerLimit", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "upperLimit", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "dimensions", Min: 1, Max: "1", Types: []string{"positiveInt"}},
		{Name: "data", Min: 0, Max: "1", Types: []string{"string"}},
	}},
	{Name: "Signature", Path: "Signature", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "type", Min: 1, Max: "*", Types: []string{"Coding"}},
		{Name: "when", Min: 1, Max: "1", Types: []string{"instant"}},
		{Name: "who", Min: 1, Max: "1", Types: []string{"Reference"}},
		{Name: "onBehalfOf", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "targetFormat", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "sigFormat", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "data", Min: 0, Max: "1", Types: []string{"base64Binary"}},
	}},
	{Name: "Timing", Path: "Timing", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "event", Min: 0, Max: "*", Types: []string{"dateTime"}},
		{Name: "repeat", Min: 0, Max: "1", Types: []string{"Element"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
	}},
	{Name: "TimingRepeat", Path: "Timing.repeat", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "bounds[x]", Min: 0, Max: "1", Choice: timingRepeatBounds},
		{Name: "count", Min: 0, Max: "1", Types: []string{"positiveInt"}},
		{Name: "countMax", Min: 0, Max: "1", Types: []string{"positiveInt"}},
		{Name: "duration", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "durationMax", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "durationUnit", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "frequency", Min: 0, Max: "1", Types: []string{"positiveInt"}},
		{Name: "frequencyMax", Min: 0, Max: "1", Types: []string{"positiveInt"}},
		{Name: "period", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "periodMax", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "periodUnit", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "dayOfWeek", Min: 0, Max: "*", Types: []string{"code"}},
		{Name: "timeOfDay", Min: 0, Max: "*", Types: []string{"time"}},
		{Name: "when", Min: 0, Max: "*", Types: []string{"code"}},
		{Name: "offset", Min: 0, Max: "1", Types: []string{"unsignedInt"}},
	}},
	{Name: "Dosage", Path: "Dosage", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "sequence", Min: 0, Max: "1", Types: []string{"integer"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "additionalInstruction", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "patientInstruction", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "timing", Min: 0, Max: "1", Types: []string{"Timing"}},
		{Name: "asNeeded[x]", Min: 0, Max: "1", Choice: dosageAsNeeded},
		{Name: "site", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "route", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "method", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "doseAndRate", Min: 0, Max: "*", Types: []string{"Element"}},
		{Name: "maxDosePerPeriod", Min: 0, Max: "1", Types: []string{"Ratio"}},
		{Name: "maxDosePerAdministration", Min: 0, Max: "1", Types: []string{"Quantity"}},
		{Name: "maxDosePerLifetime", Min: 0, Max: "1", Types: []string{"Quantity"}},
	}},
	{Name: "DosageDoseAndRate", Path: "Dosage.doseAndRate", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "type", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "dose[x]", Min: 0, Max: "1", Choice: dosageDoseAndRateDose},
		{Name: "rate[x]", Min: 0, Max: "1", Choice: dosageDoseAndRateRate},
	}},
	{Name: "ContactDetail", Path: "ContactDetail", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "name", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "telecom", Min: 0, Max: "*", Types: []string{"ContactPoint"}},
	}},
	{Name: "Contributor", Path: "Contributor", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "name", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "contact", Min: 0, Max: "*", Types: []string{"ContactDetail"}},
	}},
	{Name: "DataRequirement", Path: "DataRequirement", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "profile", Min: 0, Max: "*", Types: []string{"canonical"}},
		{Name: "subject[x]", Min: 0, Max: "1", Choice: dataRequirementSubject},
		{Name: "mustSupport", Min: 0, Max: "*", Types: []string{"string"}},
		{Name: "codeFilter", Min: 0, Max: "*", Types: []string{"Element"}},
		{Name: "dateFilter", Min: 0, Max: "*", Types: []string{"Element"}},
		{Name: "limit", Min: 0, Max: "1", Types: []string{"positiveInt"}},
		{Name: "sort", Min: 0, Max: "*", Types: []string{"Element"}},
	}},
	{Name: "DataRequirementCodeFilter", Path: "DataRequirement.codeFilter", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "path", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "searchParam", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "valueSet", Min: 0, Max: "1", Types: []string{"canonical"}},
		{Name: "code", Min: 0, Max: "*", Types: []string{"Coding"}},
	}},
	{Name: "DataRequirementDateFilter", Path: "DataRequirement.dateFilter", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "path", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "searchParam", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "value[x]", Min: 0, Max: "1", Choice: dataRequirementDateFilterValue},
	}},
	{Name: "DataRequirementSort", Path: "DataRequirement.sort", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "path", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "direction", Min: 1, Max: "1", Types: []string{"code"}},
	}},
	{Name: "Expression", Path: "Expression", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "description", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "name", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "language", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "expression", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "reference", Min: 0, Max: "1", Types: []string{"uri"}},
	}},
	{Name: "ParameterDefinition", Path: "ParameterDefinition", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "name", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "use", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "min", Min: 0, Max: "1", Types: []string{"integer"}},
		{Name: "max", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "profile", Min: 0, Max: "1", Types: []string{"canonical"}},
	}},
	{Name: "RelatedArtifact", Path: "RelatedArtifact", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "label", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "display", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "citation", Min: 0, Max: "1", Types: []string{"markdown"}},
		{Name: "url", Min: 0, Max: "1", Types: []string{"url"}},
		{Name: "document", Min: 0, Max: "1", Types: []string{"Attachment"}},
		{Name: "resource", Min: 0, Max: "1", Types: []string{"canonical"}},
	}},
	{Name: "TriggerDefinition", Path: "TriggerDefinition", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "name", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "timing[x]", Min: 0, Max: "1", Choice: triggerDefinitionTiming},
		{Name: "data", Min: 0, Max: "*", Types: []string{"DataRequirement"}},
		{Name: "condition", Min: 0, Max: "1", Types: []string{"Expression"}},
	}},
	{Name: "UsageContext", Path: "UsageContext", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 1, Max: "1", Types: []string{"Coding"}},
		{Name: "value[x]", Min: 1, Max: "1", Choice: usageContextValue},
	}},
	{Name: "Patient", Path: "Patient", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"Narrative"}},
		{Name: "contained", Min: 0, Max: "*", Types: []string{"Resource"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "identifier", Min: 0, Max: "*", Types: []string{"Identifier"}},
		{Name: "active", Min: 0, Max: "1", Types: []string{"boolean"}},
		{Name: "name", Min: 0, Max: "*", Types: []string{"HumanName"}},
		{Name: "telecom", Min: 0, Max: "*", Types: []string{"ContactPoint"}},
		{Name: "gender", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "birthDate", Min: 0, Max: "1", Types: []string{"date"}},
		{Name: "deceased[x]", Min: 0, Max: "1", Choice: patientDeceased},
		{Name: "address", Min: 0, Max: "*", Types: []string{"Address"}},
		{Name: "maritalStatus", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "multipleBirth[x]", Min: 0, Max: "1", Choice: patientMultipleBirth},
		{Name: "photo", Min: 0, Max: "*", Types: []string{"Attachment"}},
		{Name: "contact", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "communication", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "generalPractitioner", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "managingOrganization", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "link", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "PatientContact", Path: "Patient.contact", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "relationship", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "name", Min: 0, Max: "1", Types: []string{"HumanName"}},
		{Name: "telecom", Min: 0, Max: "*", Types: []string{"ContactPoint"}},
		{Name: "address", Min: 0, Max: "1", Types: []string{"Address"}},
		{Name: "gender", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "organization", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "period", Min: 0, Max: "1", Types: []string{"Period"}},
	}},
	{Name: "PatientCommunication", Path: "Patient.communication", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "language", Min: 1, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "preferred", Min: 0, Max: "1", Types: []string{"boolean"}},
	}},
	{Name: "PatientLink", Path: "Patient.link", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "other", Min: 1, Max: "1", Types: []string{"Reference"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
	}},
	{Name: "Observation", Path: "Observation", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"Narrative"}},
		{Name: "contained", Min: 0, Max: "*", Types: []string{"Resource"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "identifier", Min: 0, Max: "*", Types: []string{"Identifier"}},
		{Name: "basedOn", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "partOf", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "status", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "category", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "code", Min: 1, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "subject", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "focus", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "encounter", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "effective[x]", Min: 0, Max: "1", Choice: observationEffective},
		{Name: "issued", Min: 0, Max: "1", Types: []string{"instant"}},
		{Name: "performer", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "value[x]", Min: 0, Max: "1", Choice: observationValue},
		{Name: "dataAbsentReason", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "interpretation", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "note", Min: 0, Max: "*", Types: []string{"Annotation"}},
		{Name: "bodySite", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "method", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "specimen", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "device", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "referenceRange", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "hasMember", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "derivedFrom", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "component", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "ObservationReferenceRange", Path: "Observation.referenceRange", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "low", Min: 0, Max: "1", Types: []string{"Quantity"}},
		{Name: "high", Min: 0, Max: "1", Types: []string{"Quantity"}},
		{Name: "type", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "appliesTo", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "age", Min: 0, Max: "1", Types: []string{"Range"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"string"}},
	}},
	{Name: "ObservationComponent", Path: "Observation.component", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 1, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "value[x]", Min: 0, Max: "1", Choice: observationComponentValue},
		{Name: "dataAbsentReason", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "interpretation", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "referenceRange", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "Communication", Path: "Communication", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"Narrative"}},
		{Name: "contained", Min: 0, Max: "*", Types: []string{"Resource"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "identifier", Min: 0, Max: "*", Types: []string{"Identifier"}},
		{Name: "instantiatesCanonical", Min: 0, Max: "*", Types: []string{"canonical"}},
		{Name: "instantiatesUri", Min: 0, Max: "*", Types: []string{"uri"}},
		{Name: "basedOn", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "partOf", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "inResponseTo", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "status", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "statusReason", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "category", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "priority", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "medium", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "subject", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "topic", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "about", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "encounter", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "sent", Min: 0, Max: "1", Types: []string{"dateTime"}},
		{Name: "received", Min: 0, Max: "1", Types: []string{"dateTime"}},
		{Name: "recipient", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "sender", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "reasonCode", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "reasonReference", Min: 0, Max: "*", Types: []string{"Reference"}},
		{Name: "payload", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "note", Min: 0, Max: "*", Types: []string{"Annotation"}},
	}},
	{Name: "CommunicationPayload", Path: "Communication.payload", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "content[x]", Min: 1, Max: "1", Choice: communicationPayloadContent},
	}},
	{Name: "CapabilityStatement", Path: "CapabilityStatement", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"Narrative"}},
		{Name: "contained", Min: 0, Max: "*", Types: []string{"Resource"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "url", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "version", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "name", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "title", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "status", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "experimental", Min: 0, Max: "1", Types: []string{"boolean"}},
		{Name: "date", Min: 1, Max: "1", Types: []string{"dateTime"}},
		{Name: "publisher", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "contact", Min: 0, Max: "*", Types: []string{"ContactDetail"}},
		{Name: "description", Min: 0, Max: "1", Types: []string{"markdown"}},
		{Name: "useContext", Min: 0, Max: "*", Types: []string{"UsageContext"}},
		{Name: "jurisdiction", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "purpose", Min: 0, Max: "1", Types: []string{"markdown"}},
		{Name: "copyright", Min: 0, Max: "1", Types: []string{"markdown"}},
		{Name: "kind", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "instantiates", Min: 0, Max: "*", Types: []string{"canonical"}},
		{Name: "imports", Min: 0, Max: "*", Types: []string{"canonical"}},
		{Name: "software", Min: 0, Max: "1", Types: []string{"BackboneElement"}},
		{Name: "implementation", Min: 0, Max: "1", Types: []string{"BackboneElement"}},
		{Name: "fhirVersion", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "format", Min: 1, Max: "*", Types: []string{"code"}},
		{Name: "patchFormat", Min: 0, Max: "*", Types: []string{"code"}},
		{Name: "implementationGuide", Min: 0, Max: "*", Types: []string{"canonical"}},
		{Name: "rest", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "messaging", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "document", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "CapabilityStatementSoftware", Path: "CapabilityStatement.software", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "name", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "version", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "releaseDate", Min: 0, Max: "1", Types: []string{"dateTime"}},
	}},
	{Name: "CapabilityStatementImplementation", Path: "CapabilityStatement.implementation", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "description", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "url", Min: 0, Max: "1", Types: []string{"url"}},
		{Name: "custodian", Min: 0, Max: "1", Types: []string{"Reference"}},
	}},
	{Name: "CapabilityStatementRest", Path: "CapabilityStatement.rest", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "mode", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"markdown"}},
		{Name: "security", Min: 0, Max: "1", Types: []string{"BackboneElement"}},
		{Name: "resource", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "interaction", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "searchParam", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "operation", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "compartment", Min: 0, Max: "*", Types: []string{"canonical"}},
	}},
	{Name: "CapabilityStatementRestSecurity", Path: "CapabilityStatement.rest.security", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "cors", Min: 0, Max: "1", Types: []string{"boolean"}},
		{Name: "service", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "description", Min: 0, Max: "1", Types: []string{"markdown"}},
	}},
	{Name: "CapabilityStatementRestResource", Path: "CapabilityStatement.rest.resource", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "profile", Min: 0, Max: "1", Types: []string{"canonical"}},
		{Name: "supportedProfile", Min: 0, Max: "*", Types: []string{"canonical"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"markdown"}},
		{Name: "interaction", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "versioning", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "readHistory", Min: 0, Max: "1", Types: []string{"boolean"}},
		{Name: "updateCreate", Min: 0, Max: "1", Types: []string{"boolean"}},
		{Name: "conditionalCreate", Min: 0, Max: "1", Types: []string{"boolean"}},
		{Name: "conditionalRead", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "conditionalUpdate", Min: 0, Max: "1", Types: []string{"boolean"}},
		{Name: "conditionalDelete", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "referencePolicy", Min: 0, Max: "*", Types: []string{"code"}},
		{Name: "searchInclude", Min: 0, Max: "*", Types: []string{"string"}},
		{Name: "searchRevInclude", Min: 0, Max: "*", Types: []string{"string"}},
		{Name: "searchParam", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "operation", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "CapabilityStatementRestResourceInteraction", Path: "CapabilityStatement.rest.resource.interaction", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"markdown"}},
	}},
	{Name: "CapabilityStatementRestResourceSearchParam", Path: "CapabilityStatement.rest.resource.searchParam", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "name", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "definition", Min: 0, Max: "1", Types: []string{"canonical"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"markdown"}},
	}},
	{Name: "CapabilityStatementRestResourceOperation", Path: "CapabilityStatement.rest.resource.operation", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "name", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "definition", Min: 1, Max: "1", Types: []string{"canonical"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"markdown"}},
	}},
	{Name: "CapabilityStatementRestInteraction", Path: "CapabilityStatement.rest.interaction", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"markdown"}},
	}},
	{Name: "CapabilityStatementMessaging", Path: "CapabilityStatement.messaging", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "endpoint", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "reliableCache", Min: 0, Max: "1", Types: []string{"unsignedInt"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"markdown"}},
		{Name: "supportedMessage", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "CapabilityStatementMessagingEndpoint", Path: "CapabilityStatement.messaging.endpoint", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "protocol", Min: 1, Max: "1", Types: []string{"Coding"}},
		{Name: "address", Min: 1, Max: "1", Types: []string{"url"}},
	}},
	{Name: "CapabilityStatementMessagingSupportedMessage", Path: "CapabilityStatement.messaging.supportedMessage", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "mode", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "definition", Min: 1, Max: "1", Types: []string{"canonical"}},
	}},
	{Name: "CapabilityStatementDocument", Path: "CapabilityStatement.document", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "mode", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "documentation", Min: 0, Max: "1", Types: []string{"markdown"}},
		{Name: "profile", Min: 1, Max: "1", Types: []string{"canonical"}},
	}},
	{Name: "MeasureReport", Path: "MeasureReport", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"Narrative"}},
		{Name: "contained", Min: 0, Max: "*", Types: []string{"Resource"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "identifier", Min: 0, Max: "*", Types: []string{"Identifier"}},
		{Name: "status", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "measure", Min: 1, Max: "1", Types: []string{"canonical"}},
		{Name: "subject", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "date", Min: 0, Max: "1", Types: []string{"dateTime"}},
		{Name: "reporter", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "period", Min: 1, Max: "1", Types: []string{"Period"}},
		{Name: "improvementNotation", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "group", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "evaluatedResource", Min: 0, Max: "*", Types: []string{"Reference"}},
	}},
	{Name: "MeasureReportGroup", Path: "MeasureReport.group", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "population", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "measureScore", Min: 0, Max: "1", Types: []string{"Quantity"}},
		{Name: "stratifier", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "MeasureReportGroupPopulation", Path: "MeasureReport.group.population", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "count", Min: 0, Max: "1", Types: []string{"integer"}},
		{Name: "subjectResults", Min: 0, Max: "1", Types: []string{"Reference"}},
	}},
	{Name: "MeasureReportGroupStratifier", Path: "MeasureReport.group.stratifier", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 0, Max: "*", Types: []string{"CodeableConcept"}},
		{Name: "stratum", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "MeasureReportGroupStratifierStratum", Path: "MeasureReport.group.stratifier.stratum", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "component", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "population", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "measureScore", Min: 0, Max: "1", Types: []string{"Quantity"}},
	}},
	{Name: "MeasureReportGroupStratifierStratumComponent", Path: "MeasureReport.group.stratifier.stratum.component", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 1, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "value", Min: 1, Max: "1", Types: []string{"CodeableConcept"}},
	}},
	{Name: "MeasureReportGroupStratifierStratumPopulation", Path: "MeasureReport.group.stratifier.stratum.population", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "count", Min: 0, Max: "1", Types: []string{"integer"}},
		{Name: "subjectResults", Min: 0, Max: "1", Types: []string{"Reference"}},
	}},
	{Name: "Bundle", Path: "Bundle", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "identifier", Min: 0, Max: "1", Types: []string{"Identifier"}},
		{Name: "type", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "timestamp", Min: 0, Max: "1", Types: []string{"instant"}},
		{Name: "total", Min: 0, Max: "1", Types: []string{"unsignedInt"}},
		{Name: "link", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "entry", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "signature", Min: 0, Max: "1", Types: []string{"Signature"}},
	}},
	{Name: "BundleLink", Path: "Bundle.link", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "relation", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "url", Min: 1, Max: "1", Types: []string{"uri"}},
	}},
	{Name: "BundleEntry", Path: "Bundle.entry", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "link", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
		{Name: "fullUrl", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "resource", Min: 0, Max: "1", Types: []string{"Resource"}},
		{Name: "search", Min: 0, Max: "1", Types: []string{"BackboneElement"}},
		{Name: "request", Min: 0, Max: "1", Types: []string{"BackboneElement"}},
		{Name: "response", Min: 0, Max: "1", Types: []string{"BackboneElement"}},
	}},
	{Name: "BundleEntrySearch", Path: "Bundle.entry.search", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "mode", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "score", Min: 0, Max: "1", Types: []string{"decimal"}},
	}},
	{Name: "BundleEntryRequest", Path: "Bundle.entry.request", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "method", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "url", Min: 1, Max: "1", Types: []string{"uri"}},
		{Name: "ifNoneMatch", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "ifModifiedSince", Min: 0, Max: "1", Types: []string{"instant"}},
		{Name: "ifMatch", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "ifNoneExist", Min: 0, Max: "1", Types: []string{"string"}},
	}},
	{Name: "BundleEntryResponse", Path: "Bundle.entry.response", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "status", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "location", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "etag", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "lastModified", Min: 0, Max: "1", Types: []string{"instant"}},
		{Name: "outcome", Min: 0, Max: "1", Types: []string{"Resource"}},
	}},
	{Name: "OperationOutcome", Path: "OperationOutcome", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"Narrative"}},
		{Name: "contained", Min: 0, Max: "*", Types: []string{"Resource"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "issue", Min: 1, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "OperationOutcomeIssue", Path: "OperationOutcome.issue", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "severity", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "code", Min: 1, Max: "1", Types: []string{"code"}},
		{Name: "details", Min: 0, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "diagnostics", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "location", Min: 0, Max: "*", Types: []string{"string"}},
		{Name: "expression", Min: 0, Max: "*", Types: []string{"string"}},
	}},
	{Name: "Parameters", Path: "Parameters", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "parameter", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "ParametersParameter", Path: "Parameters.parameter", Kind: KindBackbone, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "name", Min: 1, Max: "1", Types: []string{"string"}},
		{Name: "value[x]", Min: 0, Max: "1", Choice: parametersParameterValue},
		{Name: "resource", Min: 0, Max: "1", Types: []string{"Resource"}},
		{Name: "part", Min: 0, Max: "*", Types: []string{"BackboneElement"}},
	}},
	{Name: "Basic", Path: "Basic", Kind: KindResource, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"id"}},
		{Name: "meta", Min: 0, Max: "1", Types: []string{"Meta"}},
		{Name: "implicitRules", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "language", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "text", Min: 0, Max: "1", Types: []string{"Narrative"}},
		{Name: "contained", Min: 0, Max: "*", Types: []string{"Resource"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "modifierExtension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "identifier", Min: 0, Max: "*", Types: []string{"Identifier"}},
		{Name: "code", Min: 1, Max: "1", Types: []string{"CodeableConcept"}},
		{Name: "subject", Min: 0, Max: "1", Types: []string{"Reference"}},
		{Name: "created", Min: 0, Max: "1", Types: []string{"date"}},
		{Name: "author", Min: 0, Max: "1", Types: []string{"Reference"}},
	}},
	{Name: "Age", Path: "Age", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "comparator", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "unit", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "system", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"code"}},
	}},
	{Name: "Count", Path: "Count", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "comparator", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "unit", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "system", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"code"}},
	}},
	{Name: "Distance", Path: "Distance", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "comparator", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "unit", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "system", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"code"}},
	}},
	{Name: "Duration", Path: "Duration", Kind: KindDataType, Elements: []ElementDefinition{
		{Name: "id", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "extension", Min: 0, Max: "*", Types: []string{"Extension"}},
		{Name: "value", Min: 0, Max: "1", Types: []string{"decimal"}},
		{Name: "comparator", Min: 0, Max: "1", Types: []string{"code"}},
		{Name: "unit", Min: 0, Max: "1", Types: []string{"string"}},
		{Name: "system", Min: 0, Max: "1", Types: []string{"uri"}},
		{Name: "code", Min: 0, Max: "1", Types: []string{"code"}},
	}},
}

var structures = map[string]func() Structure{
	"Element":             func() Structure { return &Element{} },
	"Extension":           func() Structure { return &Extension{} },
	"Age":                 func() Structure { return &Age{} },
	"Count":               func() Structure { return &Count{} },
	"Distance":            func() Structure { return &Distance{} },
	"Duration":            func() Structure { return &Duration{} },
	"Meta":                func() Structure { return &Meta{} },
	"Narrative":           func() Structure { return &Narrative{} },
	"Address":             func() Structure { return &Address{} },
	"Annotation":          func() Structure { return &Annotation{} },
	"Attachment":          func() Structure { return &Attachment{} },
	"CodeableConcept":     func() Structure { return &CodeableConcept{} },
	"Coding":              func() Structure { return &Coding{} },
	"ContactPoint":        func() Structure { return &ContactPoint{} },
	"HumanName":           func() Structure { return &HumanName{} },
	"Identifier":          func() Structure { return &Identifier{} },
	"Money":               func() Structure { return &Money{} },
	"Period":              func() Structure { return &Period{} },
	"Quantity":            func() Structure { return &Quantity{} },
	"Range":               func() Structure { return &Range{} },
	"Ratio":               func() Structure { return &Ratio{} },
	"Reference":           func() Structure { return &Reference{} },
	"SampledData":         func() Structure { return &SampledData{} },
	"Signature":           func() Structure { return &Signature{} },
	"Timing":              func() Structure { return &Timing{} },
	"Dosage":              func() Structure { return &Dosage{} },
	"ContactDetail":       func() Structure { return &ContactDetail{} },
	"Contributor":         func() Structure { return &Contributor{} },
	"DataRequirement":     func() Structure { return &DataRequirement{} },
	"Expression":          func() Structure { return &Expression{} },
	"ParameterDefinition": func() Structure { return &ParameterDefinition{} },
	"RelatedArtifact":     func() Structure { return &RelatedArtifact{} },
	"TriggerDefinition":   func() Structure { return &TriggerDefinition{} },
	"UsageContext":        func() Structure { return &UsageContext{} },
	"Patient":             func() Structure { return &Patient{} },
	"Observation":         func() Structure { return &Observation{} },
	"Communication":       func() Structure { return &Communication{} },
	"CapabilityStatement": func() Structure { return &CapabilityStatement{} },
	"MeasureReport":       func() Structure { return &MeasureReport{} },
	"Bundle":              func() Structure { return &Bundle{} },
	"OperationOutcome":    func() Structure { return &OperationOutcome{} },
	"Parameters":          func() Structure { return &Parameters{} },
	"Basic":               func() Structure { return &Basic{} },
}
