package bias

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/stats"
)

// Gates for the attribution analysis. Statistical significance alone is
// not enough: a minimum practical effect size is mandatory, otherwise
// large corpora turn meaningless deviations into "significant" ones.
const (
	attributionPThreshold = 0.05
	attributionVThreshold = 0.1
	attributionMinCell    = 5
)

// sentimentCounts tallies negative and positive claims for one entity
type sentimentCounts struct {
	negative float64
	positive float64
}

// analyzeAttributionAsymmetry tests whether negative claims cluster on one
// entity. For each entity a 2x2 contingency table (entity vs all others,
// negative vs positive) feeds a chi-square independence test; a table with
// any cell below the validity minimum is skipped. The reported z is
// sqrt(chi2), which at one degree of freedom keeps the severity mapping
// consistent with the ratio analyses.
func (a *Analyzer) analyzeAttributionAsymmetry(caseID string, claims []model.Claim) []model.BiasSignal {
	counts := make(map[string]*sentimentCounts)
	var totalNegative, totalPositive float64

	for _, c := range claims {
		entity := strings.Join(strings.Fields(strings.ToLower(c.Subject)), " ")
		if entity == "" {
			continue
		}
		switch c.Sentiment {
		case model.SentimentNegative:
			entityCounts(counts, entity).negative++
			totalNegative++
		case model.SentimentPositive:
			entityCounts(counts, entity).positive++
			totalPositive++
		}
	}
	if len(counts) < 2 {
		return nil
	}

	entities := make([]string, 0, len(counts))
	for entity := range counts {
		entities = append(entities, entity)
	}
	sort.Strings(entities)

	var signals []model.BiasSignal
	for _, entity := range entities {
		c := counts[entity]
		othersNegative := totalNegative - c.negative
		othersPositive := totalPositive - c.positive

		if c.negative < attributionMinCell || c.positive < attributionMinCell ||
			othersNegative < attributionMinCell || othersPositive < attributionMinCell {
			continue
		}

		chi2, p := stats.ChiSquare2x2(c.negative, c.positive, othersNegative, othersPositive)
		n := c.negative + c.positive + othersNegative + othersPositive
		v := stats.CramersV(chi2, n)

		if p >= attributionPThreshold || v <= attributionVThreshold {
			continue
		}

		entityRatio := c.negative / (c.negative + c.positive)
		othersRatio := othersNegative / (othersNegative + othersPositive)
		direction := model.DirectionHigher
		if entityRatio < othersRatio {
			direction = model.DirectionLower
		}

		z := math.Sqrt(chi2)
		pCopy := p
		signals = append(signals, model.BiasSignal{
			ID:             uuid.NewString(),
			DocumentID:     model.CaseLevelDocumentID,
			CaseID:         caseID,
			SignalType:     model.BiasAttributionAsymmetry,
			Observed:       entityRatio,
			BaselineMean:   othersRatio,
			BaselineStdDev: 0,
			ZScore:         z,
			PValue:         &pCopy,
			Severity:       a.severityForZ(z),
			Direction:      direction,
			Description: fmt.Sprintf("negative claims about %q run at %.0f%% against %.0f%% for everyone else (chi2=%.2f, p=%.4f, V=%.2f)",
				entity, entityRatio*100, othersRatio*100, chi2, p, v),
			BaselineSource: string(model.BaselineEmpirical),
		})
	}
	return signals
}

func entityCounts(counts map[string]*sentimentCounts, entity string) *sentimentCounts {
	if c, ok := counts[entity]; ok {
		return c
	}
	c := &sentimentCounts{}
	counts[entity] = c
	return c
}
