package model

// ContradictionType classifies the rule under which two claims conflict
type ContradictionType string

const (
	ContradictionDirect        ContradictionType = "direct"         // Opposing statements across documents
	ContradictionTemporal      ContradictionType = "temporal"       // Same event, different time values
	ContradictionSelf          ContradictionType = "self"           // Same author, conflicting statements
	ContradictionModalityShift ContradictionType = "modality_shift" // Allegation restated as established fact
	ContradictionValue         ContradictionType = "value"          // Same unit, diverging numeric values
	ContradictionAttribution   ContradictionType = "attribution"    // Same act credited to different actors
	ContradictionQuotation     ContradictionType = "quotation"      // Same speaker quoted with altered wording
	ContradictionOmission      ContradictionType = "omission"       // Material fact absent from a related document
)

// Severity ranks how consequential a contradiction is
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// severityRank orders severities for deterministic sorting (critical first)
var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityHigh:     1,
	SeverityMedium:   2,
	SeverityLow:      3,
}

// Rank returns the sort rank of the severity (critical first)
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// Contradiction represents a detected conflict between exactly two claims.
// Invariant: Type == self implies SameAuthor == true and Severity == critical.
type Contradiction struct {
	ID     string `json:"id"`
	CaseID string `json:"case_id"`

	ClaimAID   string `json:"claim_a_id"`
	ClaimBID   string `json:"claim_b_id"`
	ClaimAText string `json:"claim_a_text"`
	ClaimBText string `json:"claim_b_text"`
	SourceA    string `json:"source_a"` // Document id of claim A
	SourceB    string `json:"source_b"` // Document id of claim B
	AuthorA    string `json:"author_a,omitempty"`
	AuthorB    string `json:"author_b,omitempty"`
	SameAuthor bool   `json:"same_author"`

	Type     ContradictionType `json:"type"`
	Severity Severity          `json:"severity"`

	SemanticSimilarity float64 `json:"semantic_similarity"` // [0,1]
	Confidence         float64 `json:"confidence"`          // [0,1]

	Explanation       string `json:"explanation"`
	LegalSignificance string `json:"legal_significance,omitempty"`
	RecommendedAction string `json:"recommended_action,omitempty"`
	CaseLawRef        string `json:"case_law_ref,omitempty"`
	DetectionMethod   string `json:"detection_method"` // Rule that fired, for traceability
}

// ContradictionSummary aggregates contradiction counts by severity and type
type ContradictionSummary struct {
	Total      int                       `json:"total"`
	BySeverity map[Severity]int          `json:"by_severity"`
	ByType     map[ContradictionType]int `json:"by_type"`
}

// SummarizeContradictions computes aggregate counts for a detection run
func SummarizeContradictions(contradictions []Contradiction) ContradictionSummary {
	summary := ContradictionSummary{
		Total:      len(contradictions),
		BySeverity: make(map[Severity]int),
		ByType:     make(map[ContradictionType]int),
	}
	for _, c := range contradictions {
		summary.BySeverity[c.Severity]++
		summary.ByType[c.Type]++
	}
	return summary
}
