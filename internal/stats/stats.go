package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// PValuer converts a z-score into a two-tailed p-value. Two tiers exist:
// the exact normal CDF and a fixed lookup-table approximation. Selection
// happens at construction, not at call sites.
type PValuer interface {
	Name() string
	TwoTailed(z float64) float64
}

// NewPValuer returns the exact tier when requested, else the table tier
func NewPValuer(exact bool) PValuer {
	if exact {
		return &exactPValuer{normal: distuv.Normal{Mu: 0, Sigma: 1}}
	}
	return &tablePValuer{}
}

// exactPValuer computes p = 2 * (1 - Phi(|z|)) from the normal CDF
type exactPValuer struct {
	normal distuv.Normal
}

func (p *exactPValuer) Name() string { return "normal_cdf" }

func (p *exactPValuer) TwoTailed(z float64) float64 {
	return 2 * (1 - p.normal.CDF(math.Abs(z)))
}

// tablePValuer approximates the two-tailed p-value with the standard
// critical-value table
type tablePValuer struct{}

func (p *tablePValuer) Name() string { return "lookup_table" }

func (p *tablePValuer) TwoTailed(z float64) float64 {
	abs := math.Abs(z)
	switch {
	case abs >= 2.576:
		return 0.01
	case abs >= 1.96:
		return 0.05
	case abs >= 1.645:
		return 0.10
	default:
		return 0.5
	}
}

// ChiSquare2x2 runs a chi-square independence test on a 2x2 contingency
// table laid out as [a b; c d]. Returns the chi-square statistic and its
// p-value at one degree of freedom. A table with an empty margin yields
// (0, 1): no evidence of association.
func ChiSquare2x2(a, b, c, d float64) (chi2, p float64) {
	n := a + b + c + d
	row1 := a + b
	row2 := c + d
	col1 := a + c
	col2 := b + d
	if n == 0 || row1 == 0 || row2 == 0 || col1 == 0 || col2 == 0 {
		return 0, 1
	}

	diff := a*d - b*c
	chi2 = n * diff * diff / (row1 * row2 * col1 * col2)
	dist := distuv.ChiSquared{K: 1}
	return chi2, 1 - dist.CDF(chi2)
}

// CramersV is the effect size of a chi-square test; for a 2x2 table it
// reduces to sqrt(chi2 / n)
func CramersV(chi2, n float64) float64 {
	if n <= 0 {
		return 0
	}
	return math.Sqrt(chi2 / n)
}
