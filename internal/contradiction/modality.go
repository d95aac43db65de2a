package contradiction

import (
	"context"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// detectModalityShift targets allegations that are restated elsewhere as
// established fact without intervening proof. The similarity bar is higher
// than the general gate because the two claims must unambiguously describe
// the same event; the opposition check is fact-assertion vocabulary on the
// asserted claim, absent from the allegation.
func (e *Engine) detectModalityShift(ctx context.Context, claims []model.Claim) []model.Contradiction {
	var alleged, asserted []model.Claim
	for _, c := range claims {
		switch c.Modality {
		case model.ModalityAlleged:
			alleged = append(alleged, c)
		case model.ModalityAsserted:
			asserted = append(asserted, c)
		}
	}
	if len(alleged) == 0 || len(asserted) == 0 {
		return nil
	}

	var results []model.Contradiction
	for _, allegation := range alleged {
		for _, assertion := range asserted {
			if allegation.ID == assertion.ID {
				continue
			}
			if !e.lib.FactAssertion.Matches(assertion.Text) || e.lib.FactAssertion.Matches(allegation.Text) {
				continue
			}

			sim := e.sim.Score(ctx, allegation.Text, assertion.Text)
			if sim < e.thresholds.ModalityShiftThreshold {
				continue
			}

			results = append(results, e.record(allegation, assertion,
				model.ContradictionModalityShift, model.SeverityHigh,
				sim, sim,
				"modality_shift_fact_language"))
		}
	}
	return results
}
