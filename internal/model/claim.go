package model

// Modality is the epistemic stance of a claim
type Modality string

const (
	ModalityAsserted     Modality = "asserted"     // Stated as fact by the author
	ModalityReported     Modality = "reported"     // Relayed from another source
	ModalityAlleged      Modality = "alleged"      // Unproven accusation
	ModalityDenied       Modality = "denied"       // Explicitly denied
	ModalityHypothetical Modality = "hypothetical" // Conditional or speculative
)

// Polarity indicates whether a claim affirms or negates its predicate
type Polarity string

const (
	PolarityAffirm Polarity = "affirm"
	PolarityNegate Polarity = "negate"
)

// Claim represents an atomic factual assertion extracted from one document.
// Claims are produced by the external extraction pipeline and are never
// mutated by the engines.
type Claim struct {
	ID         string `json:"id"`
	CaseID     string `json:"case_id"`
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`

	// Optional subject/predicate/object decomposition
	Subject   string `json:"subject,omitempty"`
	Predicate string `json:"predicate,omitempty"`
	Object    string `json:"object,omitempty"`

	Modality Modality `json:"modality"`
	Polarity Polarity `json:"polarity"`

	Certainty        float64  `json:"certainty"`                   // [0,1]
	CertaintyMarkers []string `json:"certainty_markers,omitempty"` // Phrases that set the certainty

	AssertedBy string `json:"asserted_by,omitempty"` // Author name, if known

	TimeExpression string `json:"time_expression,omitempty"`
	TimeStart      string `json:"time_start,omitempty"`
	TimeEnd        string `json:"time_end,omitempty"`

	// Sentiment tag ("negative"/"positive"), used only by the
	// entity-attribution bias analysis
	Sentiment string `json:"sentiment,omitempty"`
}

const (
	SentimentNegative = "negative"
	SentimentPositive = "positive"
)
