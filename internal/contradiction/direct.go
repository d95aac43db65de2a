package contradiction

import (
	"context"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// detectDirect finds opposing statements of the same fact across
// documents. Both gates use the polarity threshold: the pair must be near
// paraphrases and the opposition must be explicit or dictionary-backed.
func (e *Engine) detectDirect(ctx context.Context, claims []model.Claim) []model.Contradiction {
	var results []model.Contradiction

	for _, group := range groupBySubject(claims) {
		if len(group) < 2 {
			continue
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if a.DocumentID == b.DocumentID {
					continue
				}

				sim := e.sim.Score(ctx, a.Text, b.Text)
				if sim < e.thresholds.PolarityThreshold {
					continue
				}

				opposed, conf := e.opposes(a, b)
				if !opposed || conf < e.thresholds.PolarityThreshold {
					continue
				}

				results = append(results, e.record(a, b,
					model.ContradictionDirect, model.SeverityHigh,
					sim, (sim+conf)/2,
					"direct_polarity_opposition"))
			}
		}
	}
	return results
}
