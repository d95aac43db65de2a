package similarity

import (
	"context"
	"strings"
)

// JaccardProvider is the final similarity tier: word-overlap ratio of the
// two lower-cased token sets. It has no dependencies and cannot fail, which
// guarantees the chain always produces a score.
type JaccardProvider struct{}

// NewJaccardProvider creates the word-overlap tier
func NewJaccardProvider() *JaccardProvider {
	return &JaccardProvider{}
}

// Name returns the provider name
func (p *JaccardProvider) Name() string {
	return "jaccard"
}

// Score returns the Jaccard similarity of the two word sets, 0 when either
// set is empty
func (p *JaccardProvider) Score(_ context.Context, textA, textB string) (float64, error) {
	setA := wordSet(textA)
	setB := wordSet(textB)
	if len(setA) == 0 || len(setB) == 0 {
		return 0, nil
	}

	intersection := 0
	for word := range setA {
		if setB[word] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union), nil
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		set[word] = true
	}
	return set
}
