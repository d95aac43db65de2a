package contradiction

import (
	"context"
	"regexp"
	"strings"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// quotedSpanPatterns match quoted material inside claim text
var quotedSpanPatterns = []*regexp.Regexp{
	regexp.MustCompile(`"([^"]{10,})"`),
	regexp.MustCompile(`'([^']{10,})'`),
	regexp.MustCompile(`\x{201C}([^\x{201D}]{10,})\x{201D}`),
}

// quotedSpan extracts the first quoted span of meaningful length
func quotedSpan(text string) string {
	for _, pattern := range quotedSpanPatterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// detectQuotation finds the same speaker quoted with altered wording: the
// quoted spans are similar enough to be one statement but below the
// identity bar, meaning the wording drifted between documents.
func (e *Engine) detectQuotation(ctx context.Context, claims []model.Claim) []model.Contradiction {
	type quoting struct {
		claim model.Claim
		quote string
	}

	bySpeaker := make(map[string][]quoting)
	for _, c := range claims {
		quote := quotedSpan(c.Text)
		if quote == "" {
			continue
		}
		speaker := normalizeKey(c.AssertedBy)
		if speaker == "" {
			speaker = normalizeKey(c.Subject)
		}
		if speaker == "" {
			continue
		}
		bySpeaker[speaker] = append(bySpeaker[speaker], quoting{claim: c, quote: quote})
	}

	var results []model.Contradiction
	for _, group := range bySpeaker {
		if len(group) < 2 {
			continue
		}
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if strings.EqualFold(a.quote, b.quote) {
					continue
				}

				spanSim := e.sim.Score(ctx, a.quote, b.quote)
				if spanSim < e.thresholds.QuotationSpanThreshold ||
					spanSim >= e.thresholds.QuotationIdentityThreshold {
					continue
				}

				results = append(results, e.record(a.claim, b.claim,
					model.ContradictionQuotation, model.SeverityHigh,
					spanSim, spanSim,
					"quotation_wording_drift"))
			}
		}
	}
	return results
}
