package contradiction

import (
	"context"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// selfConfidenceBoost reflects the elevated certainty of same-author
// conflicts: the author cannot blame a differing source
const selfConfidenceBoost = 0.1

// metadataOppositionConfidence applies when the claims' polarity fields
// disagree even though no lexical opposition was found
const metadataOppositionConfidence = 0.8

// opposes combines the polarity index with the claims' polarity metadata
func (e *Engine) opposes(a, b model.Claim) (bool, float64) {
	if ok, conf := e.pol.Opposes(a.Text, b.Text); ok {
		return true, conf
	}
	if a.Polarity != "" && b.Polarity != "" && a.Polarity != b.Polarity {
		return true, metadataOppositionConfidence
	}
	return false, 0
}

// detectSelf finds conflicting statements by the same author. The
// opposition gate is lowered relative to direct contradictions: missing a
// true same-author conflict costs more than a few false positives. Always
// critical severity, with boosted confidence.
func (e *Engine) detectSelf(ctx context.Context, claims []model.Claim) []model.Contradiction {
	var results []model.Contradiction

	for _, group := range groupByAuthor(claims) {
		if len(group) < 2 {
			continue
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]

				sim := e.sim.Score(ctx, a.Text, b.Text)
				if sim < e.thresholds.SemanticThreshold {
					continue
				}

				opposed, conf := e.opposes(a, b)
				if !opposed || conf < e.thresholds.SelfContradictionThreshold {
					continue
				}

				results = append(results, e.record(a, b,
					model.ContradictionSelf, model.SeverityCritical,
					sim, conf+selfConfidenceBoost,
					"self_contradiction_author_grouping"))
			}
		}
	}
	return results
}
