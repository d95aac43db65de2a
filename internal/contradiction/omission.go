package contradiction

import (
	"context"
	"sort"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// Omission limits: documents must share subject matter before an absence
// means anything, and flooding a report with omissions helps nobody
const (
	omissionSharedSubjects = 2
	omissionMaxPerPair     = 3
)

// detectOmission finds confident claims that a materially related document
// fails to cover: the documents discuss overlapping subjects, yet the best
// similarity of the claim against everything in the other document stays
// below the coverage threshold. The claim is paired with its nearest miss
// so the report shows what the other document said instead.
func (e *Engine) detectOmission(ctx context.Context, claims []model.Claim) []model.Contradiction {
	byDoc := make(map[string][]model.Claim)
	for _, c := range claims {
		if c.DocumentID == "" {
			continue
		}
		byDoc[c.DocumentID] = append(byDoc[c.DocumentID], c)
	}
	if len(byDoc) < 2 {
		return nil
	}

	docIDs := make([]string, 0, len(byDoc))
	for id := range byDoc {
		docIDs = append(docIDs, id)
	}
	sort.Strings(docIDs)

	subjects := make(map[string]map[string]bool, len(docIDs))
	for id, docClaims := range byDoc {
		keys := make(map[string]bool)
		for _, c := range docClaims {
			if key := subjectKey(c); key != "" {
				keys[key] = true
			}
		}
		subjects[id] = keys
	}

	var results []model.Contradiction
	for i := 0; i < len(docIDs); i++ {
		for j := 0; j < len(docIDs); j++ {
			if i == j {
				continue
			}
			source, other := docIDs[i], docIDs[j]
			if !materiallyRelated(subjects[source], subjects[other]) {
				continue
			}
			results = append(results, e.scanOmissions(ctx, byDoc[source], byDoc[other], subjects[other])...)
		}
	}
	return results
}

// materiallyRelated requires enough shared subject keys between two
// documents for an absence to be meaningful
func materiallyRelated(subjectsA, subjectsB map[string]bool) bool {
	shared := 0
	for key := range subjectsA {
		if subjectsB[key] {
			shared++
			if shared >= omissionSharedSubjects {
				return true
			}
		}
	}
	return false
}

// scanOmissions checks each confident claim of the source document against
// the other document's claims
func (e *Engine) scanOmissions(ctx context.Context, source, other []model.Claim, otherSubjects map[string]bool) []model.Contradiction {
	var results []model.Contradiction
	for _, claim := range source {
		if len(results) >= omissionMaxPerPair {
			break
		}
		if claim.Certainty < e.thresholds.OmissionCertaintyFloor {
			continue
		}
		if !otherSubjects[subjectKey(claim)] {
			continue
		}

		best, counterpart := e.bestMatch(ctx, claim, other)
		if best >= e.thresholds.OmissionCoverageThreshold {
			continue
		}

		confidence := 0.5 + (e.thresholds.OmissionCoverageThreshold - best)
		results = append(results, e.record(claim, counterpart,
			model.ContradictionOmission, model.SeverityMedium,
			best, confidence,
			"omission_coverage_gap"))
	}
	return results
}

// bestMatch returns the highest similarity of the claim against the other
// document's claims, with the claim that achieved it
func (e *Engine) bestMatch(ctx context.Context, claim model.Claim, other []model.Claim) (float64, model.Claim) {
	best := -1.0
	var counterpart model.Claim
	for _, candidate := range other {
		score := e.sim.Score(ctx, claim.Text, candidate.Text)
		if score > best {
			best = score
			counterpart = candidate
		}
	}
	return best, counterpart
}
