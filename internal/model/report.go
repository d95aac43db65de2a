package model

import "time"

// AnalysisReport is the complete output of one detection run over a case:
// the detected contradictions, the emitted bias signals, and aggregate
// counts. Persistence is the caller's responsibility.
type AnalysisReport struct {
	CaseID     string    `json:"case_id"`
	AnalyzedAt time.Time `json:"analyzed_at"`

	Contradictions []Contradiction `json:"contradictions"`
	BiasSignals    []BiasSignal    `json:"bias_signals"`

	Summary ReportSummary `json:"summary"`
}

// ReportSummary aggregates counts for quick triage
type ReportSummary struct {
	ClaimsAnalyzed    int                  `json:"claims_analyzed"`
	DocumentsAnalyzed int                  `json:"documents_analyzed"`
	Contradictions    ContradictionSummary `json:"contradictions"`
	BiasSignals       int                  `json:"bias_signals"`
	SimilarityTier    string               `json:"similarity_tier"` // Tier that served this run
}
