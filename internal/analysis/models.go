package analysis

// Status classifies a measured value against its reference range.
type Status string

const (
	StatusLow    Status = "LOW"
	StatusNormal Status = "Normal"
	StatusHigh   Status = "HIGH"
)

// MatchedRecord is one recognized test extracted from report text.
type MatchedRecord struct {
	// Test is the canonical upper-cased test name.
	Test string `json:"test"`
	// Value is the measured value as parsed from the text.
	Value float64 `json:"value"`
	// ReferenceRange is the textual rendering of the bounds used for
	// classification, e.g. "70 - 99 mg/dL".
	ReferenceRange string `json:"reference_range"`
	// Status is the classification outcome.
	Status Status `json:"status"`
	// StatusDetail is the status together with the value and unit,
	// e.g. "HIGH (110 mg/dL)".
	StatusDetail string `json:"status_detail"`
	// Meaning is the clinical note from the rule table. It is never
	// overridden by in-text data.
	Meaning string `json:"meaning"`
}

// AnalysisResult is the ordered set of matched records for one document.
// Order follows rule-table iteration order, not position in the text.
// An empty result is a valid outcome and distinct from extraction failure.
type AnalysisResult []MatchedRecord

// Abnormal reports whether any record is outside its reference range.
func (r AnalysisResult) Abnormal() bool {
	for _, rec := range r {
		if rec.Status != StatusNormal {
			return true
		}
	}
	return false
}
