package contradiction

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// quantity is a parsed number with its canonical unit
type quantity struct {
	value float64
	unit  string
}

var (
	unitQuantityPattern     = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(days?|weeks?|months?|years?|hours?|sessions?|occasions?|times|children|percent|pounds?|dollars?)\b`)
	currencyQuantityPattern = regexp.MustCompile(`([£$])\s*(\d+(?:\.\d+)?)`)
	// The % sign is a non-word character, so it gets its own pattern
	// instead of a word-bounded alternative
	percentQuantityPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
)

// parseQuantity extracts the first number+unit from the text, with
// durations normalized to days so "3 weeks" and "21 days" compare equal
func parseQuantity(text string) (quantity, bool) {
	if m := currencyQuantityPattern.FindStringSubmatch(text); m != nil {
		value, err := strconv.ParseFloat(m[2], 64)
		if err == nil {
			unit := "pounds"
			if m[1] == "$" {
				unit = "dollars"
			}
			return quantity{value: value, unit: unit}, true
		}
	}

	if m := percentQuantityPattern.FindStringSubmatch(text); m != nil {
		if value, err := strconv.ParseFloat(m[1], 64); err == nil {
			return quantity{value: value, unit: "percent"}, true
		}
	}

	m := unitQuantityPattern.FindStringSubmatch(text)
	if m == nil {
		return quantity{}, false
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return quantity{}, false
	}

	unit := strings.TrimSuffix(strings.ToLower(m[2]), "s")
	switch unit {
	case "day":
		return quantity{value: value, unit: "days"}, true
	case "week":
		return quantity{value: value * 7, unit: "days"}, true
	case "month":
		return quantity{value: value * 30, unit: "days"}, true
	case "year":
		return quantity{value: value * 365, unit: "days"}, true
	case "hour":
		return quantity{value: value, unit: "hours"}, true
	case "session", "occasion", "time":
		return quantity{value: value, unit: "occasions"}, true
	case "percent":
		return quantity{value: value, unit: "percent"}, true
	case "pound":
		return quantity{value: value, unit: "pounds"}, true
	case "dollar":
		return quantity{value: value, unit: "dollars"}, true
	case "children":
		return quantity{value: value, unit: "children"}, true
	default:
		return quantity{}, false
	}
}

// detectValue finds claim pairs reporting diverging quantities. Units are
// normalized before comparison; a same-unit relative difference above the
// threshold is required so simple rounding is never flagged.
func (e *Engine) detectValue(ctx context.Context, claims []model.Claim) []model.Contradiction {
	type quantified struct {
		claim model.Claim
		qty   quantity
	}

	var subset []quantified
	for _, c := range claims {
		if qty, ok := parseQuantity(c.Text); ok {
			subset = append(subset, quantified{claim: c, qty: qty})
		}
	}
	if len(subset) < 2 {
		return nil
	}

	var results []model.Contradiction
	for i := 0; i < len(subset); i++ {
		for j := i + 1; j < len(subset); j++ {
			a, b := subset[i], subset[j]
			if a.qty.unit != b.qty.unit {
				continue
			}
			if relativeDiff(a.qty.value, b.qty.value) <= e.thresholds.ValueDiffThreshold {
				continue
			}

			sim := e.sim.Score(ctx, a.claim.Text, b.claim.Text)
			if sim < e.thresholds.ValueSimilarityThreshold {
				continue
			}

			results = append(results, e.record(a.claim, b.claim,
				model.ContradictionValue, model.SeverityMedium,
				sim, sim,
				"numeric_value_divergence"))
		}
	}
	return results
}

func relativeDiff(a, b float64) float64 {
	max := math.Max(math.Abs(a), math.Abs(b))
	if max == 0 {
		return 0
	}
	return math.Abs(a-b) / max
}
