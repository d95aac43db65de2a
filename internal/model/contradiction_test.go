package model

import "testing"

func TestSeverityRank(t *testing.T) {
	if SeverityCritical.Rank() >= SeverityHigh.Rank() {
		t.Error("Expected critical to rank before high")
	}
	if SeverityHigh.Rank() >= SeverityMedium.Rank() {
		t.Error("Expected high to rank before medium")
	}
	if SeverityMedium.Rank() >= SeverityLow.Rank() {
		t.Error("Expected medium to rank before low")
	}
	if Severity("unknown").Rank() <= SeverityLow.Rank() {
		t.Error("Expected unknown severities to rank last")
	}
}

func TestSummarizeContradictions(t *testing.T) {
	summary := SummarizeContradictions([]Contradiction{
		{Type: ContradictionSelf, Severity: SeverityCritical},
		{Type: ContradictionDirect, Severity: SeverityHigh},
		{Type: ContradictionDirect, Severity: SeverityHigh},
	})

	if summary.Total != 3 {
		t.Errorf("Expected total 3, got %d", summary.Total)
	}
	if summary.BySeverity[SeverityHigh] != 2 {
		t.Errorf("Expected 2 high, got %d", summary.BySeverity[SeverityHigh])
	}
	if summary.ByType[ContradictionSelf] != 1 {
		t.Errorf("Expected 1 self, got %d", summary.ByType[ContradictionSelf])
	}
}

func TestSummarizeContradictions_Empty(t *testing.T) {
	summary := SummarizeContradictions(nil)
	if summary.Total != 0 {
		t.Errorf("Expected total 0, got %d", summary.Total)
	}
}
