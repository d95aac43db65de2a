package patterns

import (
	"regexp"
	"strings"
)

// PatternSet is a compiled set of phrase patterns for one linguistic
// category. Compiled once, read-only afterwards.
type PatternSet struct {
	name     string
	patterns []*regexp.Regexp
}

// Name returns the category name of the set
func (s *PatternSet) Name() string {
	return s.name
}

// Count returns the total number of pattern matches in the text
func (s *PatternSet) Count(text string) int {
	total := 0
	for _, pattern := range s.patterns {
		total += len(pattern.FindAllStringIndex(text, -1))
	}
	return total
}

// Matches reports whether any pattern in the set matches the text
func (s *PatternSet) Matches(text string) bool {
	for _, pattern := range s.patterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// Library holds the compiled phrase-pattern sets shared by the bias
// analyzer and the modality-shift detector. Loaded once into an explicit
// registry object passed to consumers, never a mutable global.
type Library struct {
	HighCertainty *PatternSet
	LowCertainty  *PatternSet
	Negative      *PatternSet
	Positive      *PatternSet
	Extreme       *PatternSet
	Moderate      *PatternSet
	FactAssertion *PatternSet
}

// NewLibrary compiles the default pattern sets
func NewLibrary() *Library {
	return &Library{
		HighCertainty: CompileSet("high_certainty", highCertaintyMarkers),
		LowCertainty:  CompileSet("low_certainty", lowCertaintyMarkers),
		Negative:      CompileSet("negative_sentiment", negativeMarkers),
		Positive:      CompileSet("positive_sentiment", positiveMarkers),
		Extreme:       CompileSet("extreme_quantifier", extremeQuantifiers),
		Moderate:      CompileSet("moderate_quantifier", moderateQuantifiers),
		FactAssertion: CompileSet("fact_assertion", factAssertionMarkers),
	}
}

// CompileSet compiles a phrase list into a case-insensitive, word-bounded
// pattern set. Exposed so tests can inject custom vocabularies.
func CompileSet(name string, phrases []string) *PatternSet {
	set := &PatternSet{name: name, patterns: make([]*regexp.Regexp, 0, len(phrases))}
	for _, phrase := range phrases {
		escaped := strings.ReplaceAll(regexp.QuoteMeta(strings.ToLower(phrase)), ` `, `\s+`)
		set.patterns = append(set.patterns, regexp.MustCompile(`(?i)\b`+escaped+`\b`))
	}
	return set
}

var highCertaintyMarkers = []string{
	"clearly", "undoubtedly", "definitely", "certainly", "obviously",
	"without doubt", "unquestionably", "it is evident", "plainly",
	"manifestly", "beyond doubt", "there is no question",
}

var lowCertaintyMarkers = []string{
	"may", "might", "possibly", "perhaps", "appears to", "seems to",
	"allegedly", "reportedly", "it is possible", "arguably", "suggests",
	"could be",
}

var negativeMarkers = []string{
	"failed", "refused", "neglected", "abusive", "hostile", "aggressive",
	"dishonest", "manipulative", "irresponsible", "dangerous", "harmful",
	"uncooperative", "obstructive", "violent", "erratic", "chaotic",
}

var positiveMarkers = []string{
	"supportive", "caring", "cooperative", "attentive", "responsible",
	"honest", "reliable", "committed", "loving", "diligent", "consistent",
	"engaged",
}

var extremeQuantifiers = []string{
	"always", "never", "every time", "all of the", "none of the",
	"constantly", "completely", "totally", "entirely", "invariably",
	"without exception", "on every occasion",
}

var moderateQuantifiers = []string{
	"sometimes", "often", "occasionally", "usually", "generally",
	"rarely", "frequently", "at times", "mostly", "on occasion",
}

// factAssertionMarkers signal that a statement is presented as settled
// fact, the vocabulary the modality-shift detector looks for
var factAssertionMarkers = []string{
	"established", "confirmed", "the fact that", "proven", "demonstrated",
	"it is a fact", "found that", "determined that", "it is settled",
}
