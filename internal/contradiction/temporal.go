package contradiction

import (
	"context"
	"strings"
	"time"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// timeLayouts are the accepted date formats for claim time values
var timeLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2 January 2006",
	"January 2, 2006",
	"January 2006",
	"2006",
}

// detectTemporal finds same-subject claim pairs whose time values differ.
// A pair where only one side parses is skipped: comparing a parsed date
// against free text cannot be evaluated reliably.
func (e *Engine) detectTemporal(ctx context.Context, claims []model.Claim) []model.Contradiction {
	var dated []model.Claim
	for _, c := range claims {
		if timeValue(c) != "" {
			dated = append(dated, c)
		}
	}
	if len(dated) < 2 {
		return nil
	}

	var results []model.Contradiction
	for _, group := range groupBySubject(dated) {
		if len(group) < 2 {
			continue
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]

				differ, ok := timeValuesDiffer(timeValue(a), timeValue(b))
				if !ok || !differ {
					continue
				}

				sim := e.sim.Score(ctx, a.Text, b.Text)
				if sim < e.thresholds.SemanticThreshold {
					continue
				}

				results = append(results, e.record(a, b,
					model.ContradictionTemporal, model.SeverityHigh,
					sim, sim,
					"temporal_reference_divergence"))
			}
		}
	}
	return results
}

// timeValue picks the comparable time value of a claim
func timeValue(c model.Claim) string {
	if c.TimeStart != "" {
		return c.TimeStart
	}
	return strings.TrimSpace(c.TimeExpression)
}

// timeValuesDiffer compares two time values. Both parseable: compare
// instants. Neither parseable: compare normalized strings. Exactly one
// parseable: not evaluable, skip (malformed-input rule).
func timeValuesDiffer(valueA, valueB string) (differ bool, ok bool) {
	timeA, okA := parseTime(valueA)
	timeB, okB := parseTime(valueB)

	switch {
	case okA && okB:
		return !timeA.Equal(timeB), true
	case !okA && !okB:
		return !strings.EqualFold(strings.TrimSpace(valueA), strings.TrimSpace(valueB)), true
	default:
		return false, false
	}
}

func parseTime(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
