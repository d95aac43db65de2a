package bias

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/patterns"
)

// ratioInput parameterizes one pattern-ratio analysis: two complementary
// phrase sets counted over a document, the ratio tested against the
// calibrated baseline for the document's type
type ratioInput struct {
	caseID     string
	doc        model.Document
	signalType model.BiasSignalType
	metric     string
	interest   *patterns.PatternSet
	complement *patterns.PatternSet
	label      string
}

// ratioAnalysis is the shared shape of the three per-document analyses.
// Below the minimum sample size no signal exists (insufficient data is not
// an error); below the warning threshold no signal exists either.
func (a *Analyzer) ratioAnalysis(in ratioInput) *model.BiasSignal {
	interestCount := in.interest.Count(in.doc.Text)
	complementCount := in.complement.Count(in.doc.Text)

	total := interestCount + complementCount
	if total < a.thresholds.BiasMinSampleSize {
		return nil
	}

	ratio := float64(interestCount) / float64(total)
	baseline := a.registry.Resolve(in.doc.Type, in.metric)
	if baseline.StdDev <= 0 {
		return nil
	}

	z := (ratio - baseline.Mean) / baseline.StdDev
	absZ := z
	if absZ < 0 {
		absZ = -absZ
	}
	if absZ < a.thresholds.BiasZWarning {
		return nil
	}

	p := a.pvaluer.TwoTailed(z)
	direction := model.DirectionHigher
	if z < 0 {
		direction = model.DirectionLower
	}

	return &model.BiasSignal{
		ID:             uuid.NewString(),
		DocumentID:     in.doc.ID,
		CaseID:         in.caseID,
		SignalType:     in.signalType,
		Observed:       ratio,
		BaselineMean:   baseline.Mean,
		BaselineStdDev: baseline.StdDev,
		ZScore:         z,
		PValue:         &p,
		Severity:       a.severityForZ(absZ),
		Direction:      direction,
		Description: fmt.Sprintf("%s ratio %.2f is %.1f standard deviations %s the %s baseline of %.2f (%d/%d markers)",
			in.label, ratio, absZ, directionWord(direction), in.doc.Type, baseline.Mean, interestCount, total),
		BaselineID:     baseline.ID,
		BaselineSource: string(baseline.Source),
	}
}

func directionWord(d model.BiasDirection) string {
	if d == model.DirectionLower {
		return "below"
	}
	return "above"
}
