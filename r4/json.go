package r4

import "github.com/gofhir/models/codec"

// JSON encoding for every structure goes through the codec field tables, so
// encoding/json and compatible libraries produce FHIR JSON.

func (x Element) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Element) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Extension) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Extension) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Age) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Age) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Count) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Count) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Distance) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Distance) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Duration) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Duration) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Meta) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Meta) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Narrative) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Narrative) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Address) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Address) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Annotation) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Annotation) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Attachment) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Attachment) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CodeableConcept) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CodeableConcept) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Coding) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Coding) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x ContactPoint) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *ContactPoint) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x HumanName) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *HumanName) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Identifier) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Identifier) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Money) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Money) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Period) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Period) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Quantity) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Quantity) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Range) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Range) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Ratio) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Ratio) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Reference) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Reference) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x SampledData) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *SampledData) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Signature) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Signature) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Timing) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Timing) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x TimingRepeat) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *TimingRepeat) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Dosage) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Dosage) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x DosageDoseAndRate) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *DosageDoseAndRate) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x ContactDetail) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *ContactDetail) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Contributor) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Contributor) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x DataRequirement) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *DataRequirement) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x DataRequirementCodeFilter) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *DataRequirementCodeFilter) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x DataRequirementDateFilter) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *DataRequirementDateFilter) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x DataRequirementSort) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *DataRequirementSort) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Expression) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Expression) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x ParameterDefinition) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *ParameterDefinition) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x RelatedArtifact) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *RelatedArtifact) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x TriggerDefinition) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *TriggerDefinition) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x UsageContext) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *UsageContext) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Patient) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Patient) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x PatientContact) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *PatientContact) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x PatientCommunication) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *PatientCommunication) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x PatientLink) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *PatientLink) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Observation) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Observation) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x ObservationReferenceRange) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *ObservationReferenceRange) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x ObservationComponent) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *ObservationComponent) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Communication) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Communication) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CommunicationPayload) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CommunicationPayload) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatement) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatement) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementSoftware) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementSoftware) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementImplementation) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementImplementation) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementRest) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementRest) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementRestSecurity) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementRestSecurity) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementRestResource) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementRestResource) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementRestResourceInteraction) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementRestResourceInteraction) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementRestResourceSearchParam) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementRestResourceSearchParam) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementRestResourceOperation) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementRestResourceOperation) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementRestInteraction) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementRestInteraction) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementMessaging) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementMessaging) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementMessagingEndpoint) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementMessagingEndpoint) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementMessagingSupportedMessage) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementMessagingSupportedMessage) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x CapabilityStatementDocument) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *CapabilityStatementDocument) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x MeasureReport) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *MeasureReport) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x MeasureReportGroup) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *MeasureReportGroup) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x MeasureReportGroupPopulation) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *MeasureReportGroupPopulation) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x MeasureReportGroupStratifier) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *MeasureReportGroupStratifier) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x MeasureReportGroupStratifierStratum) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *MeasureReportGroupStratifierStratum) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x MeasureReportGroupStratifierStratumComponent) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *MeasureReportGroupStratifierStratumComponent) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x MeasureReportGroupStratifierStratumPopulation) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *MeasureReportGroupStratifierStratumPopulation) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Bundle) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Bundle) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x BundleLink) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *BundleLink) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x BundleEntry) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *BundleEntry) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x BundleEntrySearch) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *BundleEntrySearch) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x BundleEntryRequest) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *BundleEntryRequest) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x BundleEntryResponse) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *BundleEntryResponse) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x OperationOutcome) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *OperationOutcome) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x OperationOutcomeIssue) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *OperationOutcomeIssue) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Parameters) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Parameters) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x ParametersParameter) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *ParametersParameter) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }

func (x Basic) MarshalJSON() ([]byte, error) { return codec.Marshal(x), nil }

func (x *Basic) UnmarshalJSON(b []byte) error { return codec.UnmarshalInto(b, x, nil) }
