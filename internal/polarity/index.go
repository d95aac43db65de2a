package polarity

import (
	"regexp"
	"strings"
)

// Opposition confidence levels by detection route
const (
	negationConfidence = 0.9
	indexConfidence    = 0.85
)

// Index is a bidirectional lookup over a curated table of antonym and
// negation phrase pairs. The table is expanded at construction so lookup
// works from either side; the index is immutable afterwards and safe for
// concurrent reads.
type Index struct {
	opposites map[string][]string
	phrases   map[string]*regexp.Regexp
	negations []negationPair
}

// negationPair is an explicit auxiliary-verb negation check, e.g.
// "did" / "did not"
type negationPair struct {
	affirm *regexp.Regexp
	negate *regexp.Regexp
}

// NewIndex builds the index from the default phrase table
func NewIndex() *Index {
	return NewIndexWithTable(defaultOpposites)
}

// NewIndexWithTable builds the index from a custom table, for tests and
// domain-specific vocabularies. The table maps a primary term to its
// negated or opposite phrasings; expansion makes every mapping work in
// both directions.
func NewIndexWithTable(table map[string][]string) *Index {
	idx := &Index{
		opposites: make(map[string][]string),
		phrases:   make(map[string]*regexp.Regexp),
		negations: compileNegations(),
	}

	for term, opposites := range table {
		for _, opposite := range opposites {
			idx.register(term, opposite)
			idx.register(opposite, term)
		}
	}
	return idx
}

func (idx *Index) register(term, opposite string) {
	term = strings.ToLower(strings.TrimSpace(term))
	opposite = strings.ToLower(strings.TrimSpace(opposite))
	if term == "" || opposite == "" {
		return
	}
	idx.opposites[term] = append(idx.opposites[term], opposite)
	idx.compilePhrase(term)
	idx.compilePhrase(opposite)
}

func (idx *Index) compilePhrase(phrase string) {
	if _, ok := idx.phrases[phrase]; ok {
		return
	}
	idx.phrases[phrase] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

// Opposes reports whether the two texts express opposite content, with a
// confidence for the match route. Explicit negation pairs are checked
// first (0.9), then index membership (0.85). The check is symmetric.
func (idx *Index) Opposes(textA, textB string) (bool, float64) {
	if textA == "" || textB == "" {
		return false, 0
	}

	for _, pair := range idx.negations {
		if negationOpposes(pair, textA, textB) || negationOpposes(pair, textB, textA) {
			return true, negationConfidence
		}
	}

	if idx.indexOpposes(textA, textB) || idx.indexOpposes(textB, textA) {
		return true, indexConfidence
	}

	return false, 0
}

// negationOpposes reports whether one text carries the negated form while
// the other carries only the affirmative form
func negationOpposes(pair negationPair, negated, affirmed string) bool {
	return pair.negate.MatchString(negated) &&
		pair.affirm.MatchString(affirmed) && !pair.negate.MatchString(affirmed)
}

// indexOpposes reports whether a registered term in textA has one of its
// opposites present in textB
func (idx *Index) indexOpposes(textA, textB string) bool {
	for term, opposites := range idx.opposites {
		if !idx.phrases[term].MatchString(textA) {
			continue
		}
		for _, opposite := range opposites {
			if idx.phrases[opposite].MatchString(textB) {
				return true
			}
		}
	}
	return false
}

// compileNegations builds the explicit auxiliary negation pairs
func compileNegations() []negationPair {
	verbs := [][2]string{
		{"did", "did not"},
		{"was", "was not"},
		{"were", "were not"},
		{"is", "is not"},
		{"has", "has not"},
		{"had", "had not"},
		{"does", "does not"},
		{"will", "will not"},
		{"would", "would not"},
		{"can", "cannot"},
	}

	pairs := make([]negationPair, 0, len(verbs))
	for _, v := range verbs {
		pairs = append(pairs, negationPair{
			affirm: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(v[0]) + `\b`),
			negate: regexp.MustCompile(`(?i)\b` + strings.ReplaceAll(regexp.QuoteMeta(v[1]), ` `, `\s+`) + `\b`),
		})
	}
	return pairs
}

// defaultOpposites is the curated antonym/negation phrase table tuned for
// legal narrative language. Expanded bidirectionally at construction.
var defaultOpposites = map[string][]string{
	"attended":   {"did not attend", "failed to attend", "was absent", "missed"},
	"truthful":   {"lied", "fabricated", "dishonest", "untruthful"},
	"complied":   {"breached", "violated", "failed to comply", "ignored"},
	"paid":       {"did not pay", "withheld payment", "defaulted"},
	"present":    {"absent", "not present"},
	"admitted":   {"denied", "disputed"},
	"agreed":     {"refused", "objected", "disagreed"},
	"consistent": {"inconsistent", "contradictory"},
	"sober":      {"intoxicated", "drunk", "under the influence"},
	"safe":       {"unsafe", "dangerous", "at risk"},
	"employed":   {"unemployed", "dismissed", "out of work"},
	"cooperative": {
		"uncooperative", "obstructive", "refused to engage",
	},
	"disclosed":  {"concealed", "withheld", "failed to disclose"},
	"returned":   {"retained", "kept", "failed to return"},
	"supervised": {"unsupervised", "left alone"},
	"permitted":  {"prohibited", "forbidden", "not allowed"},
	"completed":  {"abandoned", "failed to complete", "left unfinished"},
	"aware":      {"unaware", "had no knowledge"},
	"contacted":  {"made no contact", "failed to contact"},
	"improved":   {"deteriorated", "worsened", "declined"},
}
