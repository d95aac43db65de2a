package similarity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/cache"
)

// failingProvider simulates an unavailable model tier
type failingProvider struct{}

func (p *failingProvider) Name() string { return "failing" }

func (p *failingProvider) Score(_ context.Context, _, _ string) (float64, error) {
	return 0, errors.New("model unavailable")
}

// fixedProvider always returns the same score
type fixedProvider struct {
	name  string
	score float64
}

func (p *fixedProvider) Name() string { return p.name }

func (p *fixedProvider) Score(_ context.Context, _, _ string) (float64, error) {
	return p.score, nil
}

func TestJaccard_IdenticalTexts(t *testing.T) {
	p := NewJaccardProvider()

	score, err := p.Score(context.Background(), "the father attended contact", "the father attended contact")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score != 1.0 {
		t.Errorf("Expected 1.0 for identical texts, got %f", score)
	}
}

func TestJaccard_DisjointTexts(t *testing.T) {
	p := NewJaccardProvider()

	score, err := p.Score(context.Background(), "alpha beta", "gamma delta")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for disjoint texts, got %f", score)
	}
}

func TestJaccard_PartialOverlap(t *testing.T) {
	p := NewJaccardProvider()

	// sets {a,b,c} and {b,c,d}: intersection 2, union 4
	score, err := p.Score(context.Background(), "a b c", "b c d")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score != 0.5 {
		t.Errorf("Expected 0.5, got %f", score)
	}
}

func TestJaccard_EmptyText(t *testing.T) {
	p := NewJaccardProvider()

	score, err := p.Score(context.Background(), "", "some words")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for empty text, got %f", score)
	}
}

func TestTokenSort_WordOrderInsensitive(t *testing.T) {
	p := NewTokenSortProvider()

	score, err := p.Score(context.Background(), "attended the hearing Mr Ford", "Mr Ford attended the hearing")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score != 1.0 {
		t.Errorf("Expected 1.0 for reordered identical tokens, got %f", score)
	}
}

func TestTokenSort_CaseInsensitive(t *testing.T) {
	p := NewTokenSortProvider()

	score, err := p.Score(context.Background(), "THE HEARING", "the hearing")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score != 1.0 {
		t.Errorf("Expected 1.0 regardless of case, got %f", score)
	}
}

func TestTokenSort_SimilarTexts(t *testing.T) {
	p := NewTokenSortProvider()

	score, err := p.Score(context.Background(), "the father attended every contact session", "the father attended most contact sessions")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if score <= 0.5 {
		t.Errorf("Expected score above 0.5 for near-matching texts, got %f", score)
	}
	if score >= 1.0 {
		t.Errorf("Expected score below 1.0 for differing texts, got %f", score)
	}
}

func TestChain_FallsThroughFailingTier(t *testing.T) {
	chain := NewChainWithTiers(nil, &failingProvider{}, &fixedProvider{name: "fixed", score: 0.42})

	score := chain.Score(context.Background(), "one text", "another text")
	if score != 0.42 {
		t.Errorf("Expected fall-through score 0.42, got %f", score)
	}
}

func TestChain_UsesFirstSuccessfulTier(t *testing.T) {
	chain := NewChainWithTiers(nil,
		&fixedProvider{name: "first", score: 0.9},
		&fixedProvider{name: "second", score: 0.1})

	score := chain.Score(context.Background(), "one text", "another text")
	if score != 0.9 {
		t.Errorf("Expected first tier's score 0.9, got %f", score)
	}
	if chain.Tier() != "first" {
		t.Errorf("Expected tier name 'first', got %s", chain.Tier())
	}
}

func TestChain_EmptyInputScoresZero(t *testing.T) {
	chain := NewChainWithTiers(nil, &fixedProvider{name: "fixed", score: 0.9})

	if score := chain.Score(context.Background(), "", "text"); score != 0 {
		t.Errorf("Expected 0 for empty input, got %f", score)
	}
	if score := chain.Score(context.Background(), "text", ""); score != 0 {
		t.Errorf("Expected 0 for empty input, got %f", score)
	}
}

func TestChain_ClampsOutOfRangeScores(t *testing.T) {
	chain := NewChainWithTiers(nil, &fixedProvider{name: "hot", score: 1.7})

	if score := chain.Score(context.Background(), "a", "b"); score != 1.0 {
		t.Errorf("Expected score clamped to 1.0, got %f", score)
	}
}

// countingProvider records how many times it was scored
type countingProvider struct {
	calls int
}

func (p *countingProvider) Name() string { return "counting" }

func (p *countingProvider) Score(_ context.Context, _, _ string) (float64, error) {
	p.calls++
	return 0.6, nil
}

func TestChain_CacheIsSymmetric(t *testing.T) {
	store := cache.NewMemoryCache(time.Minute, time.Minute)
	counter := &countingProvider{}
	chain := NewChainWithTiers(store, counter)

	first := chain.Score(context.Background(), "alpha statement", "beta statement")
	second := chain.Score(context.Background(), "beta statement", "alpha statement")

	if first != second {
		t.Errorf("Expected symmetric scores, got %f and %f", first, second)
	}
	if counter.calls != 1 {
		t.Errorf("Expected 1 provider call with a warm cache, got %d", counter.calls)
	}
}

func TestCosine(t *testing.T) {
	got, err := cosine([]float32{1, 0}, []float32{1, 0})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != 1.0 {
		t.Errorf("Expected 1.0 for identical vectors, got %f", got)
	}

	got, err = cosine([]float32{1, 0}, []float32{0, 1})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != 0 {
		t.Errorf("Expected 0 for orthogonal vectors, got %f", got)
	}

	if _, err := cosine([]float32{1, 0}, []float32{1}); err == nil {
		t.Error("Expected error for mismatched dimensions")
	}
}
