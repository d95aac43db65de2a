package model

// Document is the bias-analysis input: documents arrive from the caller as
// (id, type, full text) triples. Parsing and OCR happen upstream.
type Document struct {
	ID   string `json:"id"`
	Type string `json:"type"` // e.g. "witness_statement", "social_work_report"
	Text string `json:"text"`
}
