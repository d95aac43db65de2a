package similarity

import (
	"context"
	"strconv"
	"time"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/cache"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// Provider computes a 0-1 similarity score between two text spans.
// Implementations may fail (network, model unavailable); the Chain treats
// any error as a silent fall-through to the next tier.
type Provider interface {
	// Name returns the provider name, used as the detection-run tier tag
	Name() string

	// Score returns a similarity score in [0,1], symmetric in its arguments
	Score(ctx context.Context, textA, textB string) (float64, error)
}

// Chain is the priority-ordered similarity provider: embedding model when
// configured, then token-sort fuzzy matching, then word-overlap ratio. The
// final tier cannot fail, so the chain as a whole never returns an error
// and always runs without external model dependencies, at reduced
// precision. Scores are cached under an order-normalized pair key.
type Chain struct {
	tiers []Provider
	cache cache.Cache
	ttl   time.Duration
}

// NewChain builds the provider chain by capability probing: the embedding
// tier is included only when an API key is configured and embeddings are
// not disabled. Probe failure is not an error; the chain degrades.
func NewChain(cfg model.SimilarityConfig, store cache.Cache) *Chain {
	var tiers []Provider

	if !cfg.DisableEmbeddings {
		if embed, err := NewEmbeddingProvider(cfg); err == nil {
			tiers = append(tiers, embed)
		}
	}
	tiers = append(tiers, NewTokenSortProvider(), NewJaccardProvider())

	return &Chain{
		tiers: tiers,
		cache: store,
		ttl:   cfg.CacheTTL,
	}
}

// NewChainWithTiers builds a chain from explicit tiers, for tests and for
// callers that supply their own providers
func NewChainWithTiers(store cache.Cache, tiers ...Provider) *Chain {
	return &Chain{tiers: tiers, cache: store}
}

// Tier returns the name of the highest-priority tier currently in the chain
func (c *Chain) Tier() string {
	if len(c.tiers) == 0 {
		return ""
	}
	return c.tiers[0].Name()
}

// Score computes similarity via the first tier that succeeds. Empty input
// scores 0. The result is symmetric because every tier is symmetric and
// the cache key is order-normalized.
func (c *Chain) Score(ctx context.Context, textA, textB string) float64 {
	if textA == "" || textB == "" {
		return 0
	}

	key := cache.PairKey(textA, textB)
	if c.cache != nil {
		if raw, ok := c.cache.Get(key); ok {
			if score, err := strconv.ParseFloat(string(raw), 64); err == nil {
				return score
			}
		}
	}

	var score float64
	for _, tier := range c.tiers {
		s, err := tier.Score(ctx, textA, textB)
		if err != nil {
			continue
		}
		score = clamp01(s)
		break
	}

	if c.cache != nil {
		raw := strconv.FormatFloat(score, 'f', -1, 64)
		_ = c.cache.Set(key, []byte(raw), c.ttl)
	}
	return score
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
