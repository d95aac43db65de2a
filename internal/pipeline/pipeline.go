package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/bias"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/cache"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/contradiction"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/patterns"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/polarity"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/similarity"
)

// Pipeline wires the similarity chain, the contradiction engine and the
// bias analyzer for one process. Engines stay pure; the pipeline owns the
// cache, the baseline registry and the logging.
type Pipeline struct {
	detector *contradiction.Engine
	analyzer *bias.Analyzer
	registry *bias.Registry
	sim      *similarity.Chain
	logger   *log.Logger
	cfg      model.Config
}

// New builds a pipeline from configuration. A missing baseline file is
// not fatal: detection proceeds on estimated defaults.
func New(cfg model.Config, logger *log.Logger) *Pipeline {
	store := cache.NewMemoryCache(cfg.Similarity.CacheTTL, 2*cfg.Similarity.CacheTTL)
	sim := similarity.NewChain(cfg.Similarity, store)

	registry := bias.NewRegistry()
	if cfg.Baselines.Path != "" {
		if err := registry.LoadFile(cfg.Baselines.Path); err != nil {
			logger.Warn("baselines unavailable, using estimated defaults", "path", cfg.Baselines.Path, "err", err)
		}
	}

	lib := patterns.NewLibrary()

	return &Pipeline{
		detector: contradiction.NewEngine(sim, polarity.NewIndex(), lib, cfg),
		analyzer: bias.NewAnalyzer(lib, registry, cfg),
		registry: registry,
		sim:      sim,
		logger:   logger,
		cfg:      cfg,
	}
}

// Registry exposes the baseline registry for calibration commands
func (p *Pipeline) Registry() *bias.Registry {
	return p.registry
}

// AnalysisRequest is one detection run's input: a case's claim records
// and document triples from the external claim store
type AnalysisRequest struct {
	CaseID    string           `json:"case_id"`
	Claims    []model.Claim    `json:"claims"`
	Documents []model.Document `json:"documents,omitempty"`
}

// Analyze runs both engines over the case. An empty claim collection is a
// caller-contract violation and surfaces as an error; everything else
// degrades (bad claims are skipped per detector, missing baselines fall
// back to estimated defaults).
func (p *Pipeline) Analyze(ctx context.Context, req AnalysisRequest) (*model.AnalysisReport, error) {
	if len(req.Claims) == 0 {
		return nil, fmt.Errorf("case %s: no claims supplied", req.CaseID)
	}

	p.logger.Debug("starting detection run",
		"case", req.CaseID,
		"claims", len(req.Claims),
		"documents", len(req.Documents),
		"similarity_tier", p.sim.Tier())

	contradictions := p.detector.Detect(ctx, req.Claims)
	signals := p.analyzer.Analyze(req.CaseID, req.Documents, req.Claims)

	report := &model.AnalysisReport{
		CaseID:         req.CaseID,
		AnalyzedAt:     time.Now().UTC(),
		Contradictions: contradictions,
		BiasSignals:    signals,
		Summary: model.ReportSummary{
			ClaimsAnalyzed:    len(req.Claims),
			DocumentsAnalyzed: len(req.Documents),
			Contradictions:    model.SummarizeContradictions(contradictions),
			BiasSignals:       len(signals),
			SimilarityTier:    p.sim.Tier(),
		},
	}

	p.logger.Debug("detection run complete",
		"case", req.CaseID,
		"contradictions", len(contradictions),
		"bias_signals", len(signals))

	return report, nil
}
