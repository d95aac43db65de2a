package contradiction

import (
	"context"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// Attribution gates: the act must match while the credited actor differs
const (
	predicateMatchThreshold = 0.7
	objectMatchThreshold    = 0.6
	subjectDistinctCeiling  = 0.5
)

// detectAttribution finds the same act or statement credited to different
// actors: predicates (and objects, when present) match while the subjects
// clearly differ. Claims without a decomposition cannot be evaluated and
// are skipped.
func (e *Engine) detectAttribution(ctx context.Context, claims []model.Claim) []model.Contradiction {
	var decomposed []model.Claim
	for _, c := range claims {
		if c.Subject != "" && c.Predicate != "" {
			decomposed = append(decomposed, c)
		}
	}
	if len(decomposed) < 2 {
		return nil
	}

	var results []model.Contradiction
	for i := 0; i < len(decomposed); i++ {
		for j := i + 1; j < len(decomposed); j++ {
			a, b := decomposed[i], decomposed[j]

			predSim := e.sim.Score(ctx, a.Predicate, b.Predicate)
			if predSim < predicateMatchThreshold {
				continue
			}

			confidence := predSim
			if a.Object != "" && b.Object != "" {
				objSim := e.sim.Score(ctx, a.Object, b.Object)
				if objSim < objectMatchThreshold {
					continue
				}
				if objSim < confidence {
					confidence = objSim
				}
			}

			if e.sim.Score(ctx, a.Subject, b.Subject) >= subjectDistinctCeiling {
				continue
			}

			results = append(results, e.record(a, b,
				model.ContradictionAttribution, model.SeverityMedium,
				predSim, confidence,
				"attribution_actor_mismatch"))
		}
	}
	return results
}
