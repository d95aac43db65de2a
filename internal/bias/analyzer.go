package bias

import (
	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/patterns"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/stats"
)

// Analyzer runs the four bias analyses over a case's documents and claims.
// Like the contradiction engine it is a pure function of its inputs; the
// registry is read-only for the duration of a run.
type Analyzer struct {
	lib        *patterns.Library
	registry   *Registry
	pvaluer    stats.PValuer
	thresholds model.ThresholdConfig
}

// NewAnalyzer creates a bias analyzer using the exact p-value tier
func NewAnalyzer(lib *patterns.Library, registry *Registry, cfg model.Config) *Analyzer {
	return NewAnalyzerWithPValuer(lib, registry, cfg, stats.NewPValuer(true))
}

// NewAnalyzerWithPValuer creates an analyzer with an explicit p-value
// tier, for tests and callers that want the lookup-table approximation
func NewAnalyzerWithPValuer(lib *patterns.Library, registry *Registry, cfg model.Config, pvaluer stats.PValuer) *Analyzer {
	return &Analyzer{
		lib:        lib,
		registry:   registry,
		pvaluer:    pvaluer,
		thresholds: cfg.Thresholds,
	}
}

// Analyze runs every analysis and returns the emitted signals. Documents
// feed the three per-document ratio analyses; claims feed the case-level
// attribution asymmetry.
func (a *Analyzer) Analyze(caseID string, documents []model.Document, claims []model.Claim) []model.BiasSignal {
	var signals []model.BiasSignal

	for _, doc := range documents {
		if signal := a.analyzeCertainty(caseID, doc); signal != nil {
			signals = append(signals, *signal)
		}
		if signal := a.analyzeNegativity(caseID, doc); signal != nil {
			signals = append(signals, *signal)
		}
		if signal := a.analyzeExtremity(caseID, doc); signal != nil {
			signals = append(signals, *signal)
		}
	}

	signals = append(signals, a.analyzeAttributionAsymmetry(caseID, claims)...)
	return signals
}

func (a *Analyzer) analyzeCertainty(caseID string, doc model.Document) *model.BiasSignal {
	return a.ratioAnalysis(ratioInput{
		caseID:     caseID,
		doc:        doc,
		signalType: model.BiasCertaintyLanguage,
		metric:     model.MetricCertaintyRatio,
		interest:   a.lib.HighCertainty,
		complement: a.lib.LowCertainty,
		label:      "high-certainty language",
	})
}

func (a *Analyzer) analyzeNegativity(caseID string, doc model.Document) *model.BiasSignal {
	return a.ratioAnalysis(ratioInput{
		caseID:     caseID,
		doc:        doc,
		signalType: model.BiasNegativeAttribution,
		metric:     model.MetricNegativityRatio,
		interest:   a.lib.Negative,
		complement: a.lib.Positive,
		label:      "negative characterization",
	})
}

func (a *Analyzer) analyzeExtremity(caseID string, doc model.Document) *model.BiasSignal {
	return a.ratioAnalysis(ratioInput{
		caseID:     caseID,
		doc:        doc,
		signalType: model.BiasQuantifierExtremity,
		metric:     model.MetricExtremityRatio,
		interest:   a.lib.Extreme,
		complement: a.lib.Moderate,
		label:      "extreme quantifier",
	})
}

// severityForZ maps |z| onto the monotonic severity bands. The low band
// sits below the warning threshold and therefore never reaches a report.
func (a *Analyzer) severityForZ(absZ float64) model.BiasSeverity {
	switch {
	case absZ >= a.thresholds.BiasZCritical:
		return model.BiasSeverityHigh
	case absZ >= a.thresholds.BiasZWarning:
		return model.BiasSeverityMedium
	default:
		return model.BiasSeverityLow
	}
}
