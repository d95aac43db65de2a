package contradiction

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/patterns"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/polarity"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/worker"
)

// Scorer is the similarity contract the detectors depend on. Satisfied by
// similarity.Chain; tests inject fixed scorers.
type Scorer interface {
	Score(ctx context.Context, textA, textB string) float64
}

// Engine runs the eight contradiction detectors over one case's claims.
// The engine is stateless and idempotent: re-running with the same claim
// set yields the same contradictions, given deterministic similarity.
type Engine struct {
	sim        Scorer
	pol        *polarity.Index
	lib        *patterns.Library
	thresholds model.ThresholdConfig
	workers    int
}

// NewEngine creates a detection engine
func NewEngine(sim Scorer, pol *polarity.Index, lib *patterns.Library, cfg model.Config) *Engine {
	workers := cfg.Concurrency.DetectorWorkers
	if workers <= 0 {
		workers = 4
	}
	return &Engine{
		sim:        sim,
		pol:        pol,
		lib:        lib,
		thresholds: cfg.Thresholds,
		workers:    workers,
	}
}

// detector is one contradiction rule scanning its relevant claim subset
type detector struct {
	name string
	scan func(ctx context.Context, claims []model.Claim) []model.Contradiction
}

// detectorTask adapts a detector run to the worker pool
type detectorTask struct {
	detector detector
	claims   []model.Claim
	ctx      context.Context
}

// detectorOutcome carries one detector's results. Detectors skip pairs
// they cannot evaluate instead of failing, so Err is always nil.
type detectorOutcome struct {
	contradictions []model.Contradiction
}

func (o *detectorOutcome) Err() error { return nil }

// Run executes the detector
func (t *detectorTask) Run(ctx context.Context) worker.Outcome {
	return &detectorOutcome{contradictions: t.detector.scan(t.ctx, t.claims)}
}

// Detect runs all detectors in parallel over the claim snapshot and
// returns the deterministically sorted contradictions
func (e *Engine) Detect(ctx context.Context, claims []model.Claim) []model.Contradiction {
	if len(claims) < 2 {
		return nil
	}

	detectors := []detector{
		{name: "self", scan: e.detectSelf},
		{name: "modality_shift", scan: e.detectModalityShift},
		{name: "temporal", scan: e.detectTemporal},
		{name: "value", scan: e.detectValue},
		{name: "direct", scan: e.detectDirect},
		{name: "attribution", scan: e.detectAttribution},
		{name: "quotation", scan: e.detectQuotation},
		{name: "omission", scan: e.detectOmission},
	}

	pool := worker.NewPool(e.workers)
	pool.Start()

	// A canceled run stops the pool; detectors already dispatched finish
	// their pass and partial results remain valid
	watcherDone := make(chan struct{})
	defer close(watcherDone)
	go func() {
		select {
		case <-ctx.Done():
			pool.Shutdown()
		case <-watcherDone:
		}
	}()

	go func() {
		for _, d := range detectors {
			pool.Submit(&detectorTask{detector: d, claims: claims, ctx: ctx})
		}
		pool.Close()
	}()

	var results []model.Contradiction
	for _, outcome := range pool.Wait() {
		if o, ok := outcome.(*detectorOutcome); ok {
			results = append(results, o.contradictions...)
		}
	}

	sortContradictions(results)
	return results
}

// contradictionNamespace seeds name-based record ids: re-running a case
// yields byte-identical contradictions, ids included
var contradictionNamespace = uuid.MustParse("b3a9e6d4-7c52-4f1e-8a90-2d6b5c3f7e18")

// record builds a Contradiction from a claim pair, filling the narrative
// fields from the per-type convention table
func (e *Engine) record(a, b model.Claim, typ model.ContradictionType, sev model.Severity, sim, confidence float64, method string) model.Contradiction {
	// Order the pair for deterministic output
	if b.ID < a.ID {
		a, b = b, a
	}

	// Authors compare under the same normalization the self detector
	// groups by, so type=self always carries same_author=true
	sameAuthor := authorKey(a.AssertedBy) != "" && authorKey(a.AssertedBy) == authorKey(b.AssertedBy)
	narrative := narratives[typ]

	return model.Contradiction{
		ID:                 uuid.NewSHA1(contradictionNamespace, []byte(a.CaseID+"|"+string(typ)+"|"+a.ID+"|"+b.ID)).String(),
		CaseID:             a.CaseID,
		ClaimAID:           a.ID,
		ClaimBID:           b.ID,
		ClaimAText:         a.Text,
		ClaimBText:         b.Text,
		SourceA:            a.DocumentID,
		SourceB:            b.DocumentID,
		AuthorA:            a.AssertedBy,
		AuthorB:            b.AssertedBy,
		SameAuthor:         sameAuthor,
		Type:               typ,
		Severity:           sev,
		SemanticSimilarity: sim,
		Confidence:         clamp01(confidence),
		Explanation:        narrative.explanation,
		LegalSignificance:  narrative.significance,
		RecommendedAction:  narrative.action,
		CaseLawRef:         narrative.caseLaw,
		DetectionMethod:    method,
	}
}

// sortContradictions orders results by severity (critical first), then
// type, then claim ids for deterministic output
func sortContradictions(contradictions []model.Contradiction) {
	sort.Slice(contradictions, func(i, j int) bool {
		a, b := contradictions[i], contradictions[j]
		if a.Severity != b.Severity {
			return a.Severity.Rank() < b.Severity.Rank()
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.ClaimAID != b.ClaimAID {
			return a.ClaimAID < b.ClaimAID
		}
		return a.ClaimBID < b.ClaimBID
	})
}

// authorKey normalizes an author name for grouping and comparison
func authorKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// groupByAuthor indexes claims by asserting author, skipping anonymous
// claims. Built fresh per run, never persisted on the claims.
func groupByAuthor(claims []model.Claim) map[string][]model.Claim {
	groups := make(map[string][]model.Claim)
	for _, c := range claims {
		author := authorKey(c.AssertedBy)
		if author == "" {
			continue
		}
		groups[author] = append(groups[author], c)
	}
	return groups
}

// groupBySubject indexes claims by subject key so pairwise scans stay
// grouping-bound instead of O(n^2) over the whole case
func groupBySubject(claims []model.Claim) map[string][]model.Claim {
	groups := make(map[string][]model.Claim)
	for _, c := range claims {
		key := subjectKey(c)
		if key == "" {
			continue
		}
		groups[key] = append(groups[key], c)
	}
	return groups
}

// subjectKey derives a grouping key: the normalized subject when the
// decomposition exists, else the first content words of the text
func subjectKey(c model.Claim) string {
	if s := normalizeKey(c.Subject); s != "" {
		return s
	}
	words := contentWords(c.Text, 3)
	return strings.Join(words, " ")
}

// contentWords returns up to max non-stopword tokens from the text
func contentWords(text string, max int) []string {
	var words []string
	for _, word := range strings.Fields(strings.ToLower(text)) {
		cleaned := strings.Trim(word, `.,;:()"'`)
		if len(cleaned) <= 2 || stopWords[cleaned] {
			continue
		}
		words = append(words, cleaned)
		if len(words) == max {
			break
		}
	}
	return words
}

func normalizeKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "of": true, "to": true,
	"in": true, "for": true, "and": true, "or": true, "with": true,
	"be": true, "by": true, "on": true, "at": true, "from": true,
	"as": true, "is": true, "it": true, "that": true, "this": true,
	"was": true, "were": true, "has": true, "had": true, "have": true,
	"mr": true, "mrs": true, "ms": true, "dr": true,
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
