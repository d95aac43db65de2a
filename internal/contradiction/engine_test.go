package contradiction

import (
	"context"
	"testing"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/patterns"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/polarity"
)

// stubScorer returns canned similarities so detector gates can be tested
// without a live similarity chain
type stubScorer struct {
	scores   map[[2]string]float64
	fallback float64
}

func (s *stubScorer) Score(_ context.Context, textA, textB string) float64 {
	if textB < textA {
		textA, textB = textB, textA
	}
	if v, ok := s.scores[[2]string{textA, textB}]; ok {
		return v
	}
	return s.fallback
}

func pairScore(scores map[[2]string]float64, textA, textB string, score float64) {
	if textB < textA {
		textA, textB = textB, textA
	}
	scores[[2]string{textA, textB}] = score
}

func newTestEngine(sim Scorer) *Engine {
	cfg := model.DefaultConfig()
	cfg.Concurrency.DetectorWorkers = 1
	return NewEngine(sim, polarity.NewIndex(), patterns.NewLibrary(), cfg)
}

func TestDetect_SameAuthorConflict(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	claims := []model.Claim{
		{
			ID: "c1", CaseID: "case042", DocumentID: "doc1",
			Text:       "Mr Ford attended every contact session",
			AssertedBy: "Jane Okafor",
		},
		{
			ID: "c2", CaseID: "case042", DocumentID: "doc1",
			Text:       "Mr Ford failed to attend the contact sessions",
			AssertedBy: "Jane Okafor",
		},
	}

	results := engine.Detect(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 contradiction, got %d", len(results))
	}

	c := results[0]
	if c.Type != model.ContradictionSelf {
		t.Errorf("Expected self contradiction, got %s", c.Type)
	}
	if c.Severity != model.SeverityCritical {
		t.Errorf("Expected critical severity, got %s", c.Severity)
	}
	if !c.SameAuthor {
		t.Error("Expected SameAuthor to be set")
	}
	if c.ClaimAID != "c1" || c.ClaimBID != "c2" {
		t.Errorf("Expected ordered pair c1/c2, got %s/%s", c.ClaimAID, c.ClaimBID)
	}
	// index opposition 0.85 plus the same-author boost
	if c.Confidence < 0.94 || c.Confidence > 0.96 {
		t.Errorf("Expected confidence near 0.95, got %f", c.Confidence)
	}
	if c.Explanation == "" || c.RecommendedAction == "" {
		t.Error("Expected narrative fields to be populated")
	}
}

func TestDetectSelf_AuthorNormalization(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	// case and whitespace variants of one name are one author
	claims := []model.Claim{
		{
			ID: "c1", CaseID: "case042", DocumentID: "doc1",
			Text:       "Mr Ford attended every contact session",
			AssertedBy: "Jane Okafor",
		},
		{
			ID: "c2", CaseID: "case042", DocumentID: "doc1",
			Text:       "Mr Ford failed to attend the contact sessions",
			AssertedBy: " jane okafor ",
		},
	}

	results := engine.detectSelf(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 self contradiction, got %d", len(results))
	}
	if !results[0].SameAuthor {
		t.Error("Expected SameAuthor true for normalized author variants")
	}
	if results[0].Type != model.ContradictionSelf {
		t.Errorf("Expected self type, got %s", results[0].Type)
	}
}

func TestRecord_DeterministicIDs(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	a := model.Claim{ID: "c1", CaseID: "case042", Text: "he attended", AssertedBy: "Jane Okafor"}
	b := model.Claim{ID: "c2", CaseID: "case042", Text: "he missed it", AssertedBy: "Jane Okafor"}

	first := engine.record(a, b, model.ContradictionSelf, model.SeverityCritical, 0.9, 0.95, "m")
	second := engine.record(b, a, model.ContradictionSelf, model.SeverityCritical, 0.9, 0.95, "m")

	if first.ID == "" {
		t.Fatal("Expected an id")
	}
	if first.ID != second.ID {
		t.Errorf("Expected identical ids regardless of pair order, got %s vs %s", first.ID, second.ID)
	}

	other := engine.record(a, b, model.ContradictionDirect, model.SeverityHigh, 0.9, 0.9, "m")
	if other.ID == first.ID {
		t.Error("Expected distinct ids per contradiction type")
	}
}

func TestDetect_CanceledContext(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Text: "he attended the hearing", AssertedBy: "Jane Okafor"},
		{ID: "c2", DocumentID: "doc1", Text: "he missed the hearing", AssertedBy: "Jane Okafor"},
	}

	// a canceled run must return promptly; partial results are valid
	results := engine.Detect(ctx, claims)
	if len(results) > 1 {
		t.Errorf("Expected at most the full result set, got %d", len(results))
	}
}

func TestDetectSelf_RequiresSameAuthor(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Text: "he attended the hearing", AssertedBy: "Jane Okafor"},
		{ID: "c2", DocumentID: "doc1", Text: "he missed the hearing", AssertedBy: "Tom Reid"},
	}

	if results := engine.detectSelf(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected no self contradiction across authors, got %d", len(results))
	}
}

func TestDetectSelf_BelowSimilarityGate(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.4})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Text: "he attended the hearing", AssertedBy: "Jane Okafor"},
		{ID: "c2", DocumentID: "doc1", Text: "he missed the hearing", AssertedBy: "Jane Okafor"},
	}

	if results := engine.detectSelf(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected no self contradiction below similarity gate, got %d", len(results))
	}
}

func TestDetectSelf_PolarityMetadataFallback(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	// no lexical opposition, but the extraction marked opposite polarity
	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Text: "payment reached the account", AssertedBy: "Jane Okafor", Polarity: model.PolarityAffirm},
		{ID: "c2", DocumentID: "doc1", Text: "payment reached the account", AssertedBy: "Jane Okafor", Polarity: model.PolarityNegate},
	}

	results := engine.detectSelf(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 contradiction via polarity metadata, got %d", len(results))
	}
	// metadata opposition 0.8 plus the boost
	if results[0].Confidence < 0.89 || results[0].Confidence > 0.91 {
		t.Errorf("Expected confidence near 0.9, got %f", results[0].Confidence)
	}
}

func TestDetectDirect(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.85})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Subject: "the father", Text: "the father attended the assessment", AssertedBy: "Jane Okafor"},
		{ID: "c2", DocumentID: "doc2", Subject: "the father", Text: "the father was absent from the assessment", AssertedBy: "Tom Reid"},
	}

	results := engine.detectDirect(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 direct contradiction, got %d", len(results))
	}

	c := results[0]
	if c.Type != model.ContradictionDirect {
		t.Errorf("Expected direct type, got %s", c.Type)
	}
	if c.Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", c.Severity)
	}
	if c.SameAuthor {
		t.Error("Expected SameAuthor false across authors")
	}
	// confidence is the mean of similarity 0.85 and opposition 0.85
	if c.Confidence < 0.84 || c.Confidence > 0.86 {
		t.Errorf("Expected confidence near 0.85, got %f", c.Confidence)
	}
}

func TestDetectDirect_SameDocumentSkipped(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Subject: "the father", Text: "the father attended the assessment"},
		{ID: "c2", DocumentID: "doc1", Subject: "the father", Text: "the father was absent from the assessment"},
	}

	if results := engine.detectDirect(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected same-document pair to be skipped, got %d", len(results))
	}
}

func TestDetectDirect_BelowSimilarityGate(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.7})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Subject: "the father", Text: "the father attended the assessment"},
		{ID: "c2", DocumentID: "doc2", Subject: "the father", Text: "the father was absent from the assessment"},
	}

	if results := engine.detectDirect(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected no direct contradiction below the paraphrase gate, got %d", len(results))
	}
}

func TestDetectModalityShift(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.75})

	claims := []model.Claim{
		{
			ID: "c1", DocumentID: "doc1", Modality: model.ModalityAlleged,
			Text:       "the mother says the father shouted during handover",
			AssertedBy: "Jane Okafor",
		},
		{
			ID: "c2", DocumentID: "doc2", Modality: model.ModalityAsserted,
			Text:       "it is established that the father shouted during handover",
			AssertedBy: "Tom Reid",
		},
	}

	results := engine.detectModalityShift(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 modality shift, got %d", len(results))
	}
	if results[0].Type != model.ContradictionModalityShift {
		t.Errorf("Expected modality_shift type, got %s", results[0].Type)
	}
	if results[0].Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", results[0].Severity)
	}
}

func TestDetectModalityShift_RequiresFactLanguage(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	// the asserted claim carries no fact-assertion vocabulary
	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Modality: model.ModalityAlleged, Text: "the mother says the father shouted"},
		{ID: "c2", DocumentID: "doc2", Modality: model.ModalityAsserted, Text: "the father shouted during handover"},
	}

	if results := engine.detectModalityShift(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected no shift without fact language, got %d", len(results))
	}
}

func TestDetectTemporal(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.8})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Subject: "the incident", Text: "the incident took place in March", TimeStart: "2024-03-15", AssertedBy: "Jane Okafor"},
		{ID: "c2", DocumentID: "doc2", Subject: "the incident", Text: "the incident took place in June", TimeStart: "2024-06-20", AssertedBy: "Tom Reid"},
	}

	results := engine.detectTemporal(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 temporal contradiction, got %d", len(results))
	}
	if results[0].Type != model.ContradictionTemporal {
		t.Errorf("Expected temporal type, got %s", results[0].Type)
	}
	if results[0].Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", results[0].Severity)
	}
}

func TestDetectTemporal_OneSideUnparseableSkipped(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Subject: "the incident", Text: "it happened on the fifteenth", TimeStart: "2024-03-15"},
		{ID: "c2", DocumentID: "doc2", Subject: "the incident", Text: "it happened shortly after", TimeExpression: "shortly after the visit"},
	}

	if results := engine.detectTemporal(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected pair with one unparseable side to be skipped, got %d", len(results))
	}
}

func TestDetectTemporal_UnparseableStringsCompared(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Subject: "the incident", Text: "it was before the hearing", TimeExpression: "before the hearing"},
		{ID: "c2", DocumentID: "doc2", Subject: "the incident", Text: "it was after the hearing", TimeExpression: "after the hearing"},
	}

	results := engine.detectTemporal(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected differing free-text time values to be flagged, got %d", len(results))
	}
}

func TestDetectTemporal_EquivalentFormatsNotFlagged(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	// different layouts, same instant
	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Subject: "the incident", Text: "dated one way", TimeStart: "2024-03-15"},
		{ID: "c2", DocumentID: "doc2", Subject: "the incident", Text: "dated another way", TimeStart: "15/03/2024"},
	}

	if results := engine.detectTemporal(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected equivalent dates not to be flagged, got %d", len(results))
	}
}

func TestParseQuantity_Normalization(t *testing.T) {
	cases := []struct {
		text  string
		value float64
		unit  string
	}{
		{"contact lasted 3 weeks", 21, "days"},
		{"contact lasted 20 days", 20, "days"},
		{"over a period of 2 months", 60, "days"},
		{"a delay of 1 year", 365, "days"},
		{"attended 5 sessions", 5, "occasions"},
		{"arrears of £250", 250, "pounds"},
		{"a fee of $40", 40, "dollars"},
		{"roughly 75 percent", 75, "percent"},
		{"the arrears rose by 50%", 50, "percent"},
	}
	for _, tc := range cases {
		qty, ok := parseQuantity(tc.text)
		if !ok {
			t.Errorf("Expected quantity in %q", tc.text)
			continue
		}
		if qty.value != tc.value || qty.unit != tc.unit {
			t.Errorf("%q: expected %f %s, got %f %s", tc.text, tc.value, tc.unit, qty.value, qty.unit)
		}
	}

	if _, ok := parseQuantity("no numbers here"); ok {
		t.Error("Expected no quantity in plain text")
	}
}

func TestDetectValue_RoundingNotFlagged(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.8})

	// 21 days vs 20 days is within the divergence tolerance
	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Text: "contact continued for 3 weeks", AssertedBy: "Jane Okafor"},
		{ID: "c2", DocumentID: "doc2", Text: "contact continued for 20 days", AssertedBy: "Tom Reid"},
	}

	if results := engine.detectValue(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected rounding difference not to be flagged, got %d", len(results))
	}
}

func TestDetectValue_DivergenceFlagged(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.8})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Text: "contact continued for 3 weeks", AssertedBy: "Jane Okafor"},
		{ID: "c2", DocumentID: "doc2", Text: "contact continued for 10 days", AssertedBy: "Tom Reid"},
	}

	results := engine.detectValue(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 value contradiction, got %d", len(results))
	}
	if results[0].Type != model.ContradictionValue {
		t.Errorf("Expected value type, got %s", results[0].Type)
	}
	if results[0].Severity != model.SeverityMedium {
		t.Errorf("Expected medium severity, got %s", results[0].Severity)
	}
}

func TestDetectValue_DifferentUnitsSkipped(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.8})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Text: "he attended 5 sessions"},
		{ID: "c2", DocumentID: "doc2", Text: "he owed £100 in arrears"},
	}

	if results := engine.detectValue(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected different units not to compare, got %d", len(results))
	}
}

func TestDetectAttribution(t *testing.T) {
	scores := make(map[[2]string]float64)
	pairScore(scores, "shouted at the child", "shouted at the child during handover", 0.9)
	pairScore(scores, "the child", "the child", 1.0)
	pairScore(scores, "the father", "the mother", 0.2)

	engine := newTestEngine(&stubScorer{scores: scores, fallback: 0.3})

	claims := []model.Claim{
		{
			ID: "c1", DocumentID: "doc1", AssertedBy: "Jane Okafor",
			Subject: "the father", Predicate: "shouted at the child", Object: "the child",
			Text: "the father shouted at the child",
		},
		{
			ID: "c2", DocumentID: "doc2", AssertedBy: "Tom Reid",
			Subject: "the mother", Predicate: "shouted at the child during handover", Object: "the child",
			Text: "the mother shouted at the child during handover",
		},
	}

	results := engine.detectAttribution(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 attribution contradiction, got %d", len(results))
	}
	if results[0].Type != model.ContradictionAttribution {
		t.Errorf("Expected attribution type, got %s", results[0].Type)
	}
	if results[0].Severity != model.SeverityMedium {
		t.Errorf("Expected medium severity, got %s", results[0].Severity)
	}
	if results[0].Confidence != 0.9 {
		t.Errorf("Expected confidence 0.9 (min of predicate and object), got %f", results[0].Confidence)
	}
}

func TestDetectAttribution_SimilarSubjectsSkipped(t *testing.T) {
	scores := make(map[[2]string]float64)
	pairScore(scores, "left the property", "left the property", 1.0)
	pairScore(scores, "the father", "the child's father", 0.8)

	engine := newTestEngine(&stubScorer{scores: scores, fallback: 0.3})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Subject: "the father", Predicate: "left the property", Text: "a"},
		{ID: "c2", DocumentID: "doc2", Subject: "the child's father", Predicate: "left the property", Text: "b"},
	}

	if results := engine.detectAttribution(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected matching subjects not to be an attribution conflict, got %d", len(results))
	}
}

func TestDetectAttribution_RequiresDecomposition(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", Text: "the father shouted"},
		{ID: "c2", DocumentID: "doc2", Text: "the mother shouted"},
	}

	if results := engine.detectAttribution(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected undecomposed claims to be skipped, got %d", len(results))
	}
}

func TestDetectQuotation(t *testing.T) {
	quoteA := "I never touched the money at any point"
	quoteB := "I did not touch any of the money"

	scores := make(map[[2]string]float64)
	pairScore(scores, quoteA, quoteB, 0.8)

	engine := newTestEngine(&stubScorer{scores: scores, fallback: 0.2})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", AssertedBy: "Mr Ford", Text: `He said "` + quoteA + `" when interviewed`},
		{ID: "c2", DocumentID: "doc2", AssertedBy: "Mr Ford", Text: `His statement records "` + quoteB + `"`},
	}

	results := engine.detectQuotation(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 quotation contradiction, got %d", len(results))
	}
	if results[0].Type != model.ContradictionQuotation {
		t.Errorf("Expected quotation type, got %s", results[0].Type)
	}
	if results[0].Severity != model.SeverityHigh {
		t.Errorf("Expected high severity, got %s", results[0].Severity)
	}
}

func TestDetectQuotation_IdenticalQuotesSkipped(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.99})

	quote := "I never touched the money"
	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", AssertedBy: "Mr Ford", Text: `He said "` + quote + `"`},
		{ID: "c2", DocumentID: "doc2", AssertedBy: "Mr Ford", Text: `The note records "` + quote + `"`},
	}

	if results := engine.detectQuotation(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected identical quotes not to be flagged, got %d", len(results))
	}
}

func TestDetectQuotation_DifferentSpeakersSkipped(t *testing.T) {
	quoteA := "I never touched the money at any point"
	quoteB := "I did not touch any of the money"

	scores := make(map[[2]string]float64)
	pairScore(scores, quoteA, quoteB, 0.8)

	engine := newTestEngine(&stubScorer{scores: scores, fallback: 0.2})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "doc1", AssertedBy: "Mr Ford", Text: `He said "` + quoteA + `"`},
		{ID: "c2", DocumentID: "doc2", AssertedBy: "Mrs Ford", Text: `She said "` + quoteB + `"`},
	}

	if results := engine.detectQuotation(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected different speakers not to compare, got %d", len(results))
	}
}

func TestDetectOmission(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.2})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "docA", Subject: "contact arrangements", Certainty: 0.9, AssertedBy: "Jane Okafor",
			Text: "contact was suspended after the March incident"},
		{ID: "c2", DocumentID: "docA", Subject: "financial support", Certainty: 0.5,
			Text: "maintenance payments were irregular"},
		{ID: "c3", DocumentID: "docB", Subject: "contact arrangements", Certainty: 0.5,
			Text: "weekly contact is progressing well"},
		{ID: "c4", DocumentID: "docB", Subject: "financial support", Certainty: 0.5,
			Text: "payments are made by standing order"},
	}

	results := engine.detectOmission(context.Background(), claims)
	if len(results) != 1 {
		t.Fatalf("Expected 1 omission, got %d", len(results))
	}

	c := results[0]
	if c.Type != model.ContradictionOmission {
		t.Errorf("Expected omission type, got %s", c.Type)
	}
	if c.Severity != model.SeverityMedium {
		t.Errorf("Expected medium severity, got %s", c.Severity)
	}
	// confidence = 0.5 + (0.35 - 0.2)
	if c.Confidence < 0.64 || c.Confidence > 0.66 {
		t.Errorf("Expected confidence near 0.65, got %f", c.Confidence)
	}
}

func TestDetectOmission_UnrelatedDocumentsSkipped(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.1})

	// only one shared subject key: not materially related
	claims := []model.Claim{
		{ID: "c1", DocumentID: "docA", Subject: "contact arrangements", Certainty: 0.9, Text: "contact was suspended"},
		{ID: "c2", DocumentID: "docB", Subject: "contact arrangements", Certainty: 0.9, Text: "housing remains stable"},
	}

	if results := engine.detectOmission(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected unrelated documents to be skipped, got %d", len(results))
	}
}

func TestDetectOmission_CoveredClaimNotFlagged(t *testing.T) {
	scores := make(map[[2]string]float64)
	pairScore(scores, "contact was suspended after the March incident", "contact stopped following the incident in March", 0.8)

	engine := newTestEngine(&stubScorer{scores: scores, fallback: 0.2})

	claims := []model.Claim{
		{ID: "c1", DocumentID: "docA", Subject: "contact arrangements", Certainty: 0.9,
			Text: "contact was suspended after the March incident"},
		{ID: "c2", DocumentID: "docA", Subject: "financial support", Certainty: 0.5,
			Text: "maintenance payments were irregular"},
		{ID: "c3", DocumentID: "docB", Subject: "contact arrangements", Certainty: 0.5,
			Text: "contact stopped following the incident in March"},
		{ID: "c4", DocumentID: "docB", Subject: "financial support", Certainty: 0.5,
			Text: "payments are made by standing order"},
	}

	if results := engine.detectOmission(context.Background(), claims); len(results) != 0 {
		t.Errorf("Expected covered claim not to be flagged, got %d", len(results))
	}
}

func TestDetect_FewerThanTwoClaims(t *testing.T) {
	engine := newTestEngine(&stubScorer{fallback: 0.9})

	if results := engine.Detect(context.Background(), []model.Claim{{ID: "c1", Text: "lonely claim"}}); results != nil {
		t.Errorf("Expected nil for a single claim, got %d results", len(results))
	}
}

func TestSortContradictions(t *testing.T) {
	contradictions := []model.Contradiction{
		{Type: model.ContradictionValue, Severity: model.SeverityMedium, ClaimAID: "c1", ClaimBID: "c2"},
		{Type: model.ContradictionSelf, Severity: model.SeverityCritical, ClaimAID: "c3", ClaimBID: "c4"},
		{Type: model.ContradictionDirect, Severity: model.SeverityHigh, ClaimAID: "c1", ClaimBID: "c5"},
	}

	sortContradictions(contradictions)

	if contradictions[0].Severity != model.SeverityCritical {
		t.Errorf("Expected critical first, got %s", contradictions[0].Severity)
	}
	if contradictions[1].Severity != model.SeverityHigh {
		t.Errorf("Expected high second, got %s", contradictions[1].Severity)
	}
	if contradictions[2].Severity != model.SeverityMedium {
		t.Errorf("Expected medium last, got %s", contradictions[2].Severity)
	}
}

func TestSubjectKey_FallsBackToContentWords(t *testing.T) {
	claim := model.Claim{Text: "The Mr Ford attended the contact session"}

	key := subjectKey(claim)
	if key != "ford attended contact" {
		t.Errorf("Expected content-word key, got %q", key)
	}
}
