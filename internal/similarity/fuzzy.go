package similarity

import (
	"context"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// TokenSortProvider is the middle similarity tier: a normalized token-sort
// ratio. Both texts are lower-cased, tokenized, sorted and rejoined before
// a Levenshtein-based similarity is taken, so word order never penalizes
// otherwise matching statements. This tier cannot fail.
type TokenSortProvider struct {
	metric *metrics.Levenshtein
}

// NewTokenSortProvider creates the token-sort fuzzy tier
func NewTokenSortProvider() *TokenSortProvider {
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	return &TokenSortProvider{metric: metric}
}

// Name returns the provider name
func (p *TokenSortProvider) Name() string {
	return "token_sort"
}

// Score returns the token-sort ratio in [0,1]
func (p *TokenSortProvider) Score(_ context.Context, textA, textB string) (float64, error) {
	return strutil.Similarity(tokenSort(textA), tokenSort(textB), p.metric), nil
}

// tokenSort lower-cases, tokenizes on whitespace, sorts and rejoins
func tokenSort(text string) string {
	tokens := strings.Fields(strings.ToLower(text))
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
