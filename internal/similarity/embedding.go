package similarity

import (
	"context"
	"fmt"
	"math"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// EmbeddingProvider is the highest-precision similarity tier: it encodes
// both texts with an embedding model and returns their cosine similarity.
// Every call carries a timeout and passes through a rate limiter so a slow
// or unavailable model stalls nothing; the chain falls through on error.
type EmbeddingProvider struct {
	client  *openai.Client
	model   openai.EmbeddingModel
	limiter *rate.Limiter
	timeout time.Duration
}

// NewEmbeddingProvider creates the embedding tier. Returns an error when no
// API key is configured, which the chain treats as "tier unavailable".
func NewEmbeddingProvider(cfg model.SimilarityConfig) (*EmbeddingProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("embedding model unavailable: no API key configured")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	embeddingModel := openai.EmbeddingModel(cfg.EmbeddingModel)
	if cfg.EmbeddingModel == "" {
		embeddingModel = openai.SmallEmbedding3
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &EmbeddingProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   embeddingModel,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		timeout: timeout,
	}, nil
}

// Name returns the provider name
func (p *EmbeddingProvider) Name() string {
	return "embedding"
}

// Score encodes both texts in a single request and returns their cosine
// similarity clamped to [0,1]
func (p *EmbeddingProvider) Score(ctx context.Context, textA, textB string) (float64, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.limiter.Wait(ctxWithTimeout); err != nil {
		return 0, fmt.Errorf("embedding rate limit: %w", err)
	}

	resp, err := p.client.CreateEmbeddings(ctxWithTimeout, openai.EmbeddingRequest{
		Input: []string{textA, textB},
		Model: p.model,
	})
	if err != nil {
		return 0, fmt.Errorf("embedding request: %w", err)
	}
	if len(resp.Data) < 2 {
		return 0, fmt.Errorf("embedding response: expected 2 vectors, got %d", len(resp.Data))
	}

	sim, err := cosine(resp.Data[0].Embedding, resp.Data[1].Embedding)
	if err != nil {
		return 0, err
	}
	return clamp01(sim), nil
}

// cosine computes cosine similarity between two vectors
func cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) || len(a) == 0 {
		return 0, fmt.Errorf("embedding vectors have mismatched dimensions: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
