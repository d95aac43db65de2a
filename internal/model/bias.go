package model

// BiasSignalType classifies the linguistic pattern that was flagged
type BiasSignalType string

const (
	BiasCertaintyLanguage    BiasSignalType = "certainty_language"
	BiasNegativeAttribution  BiasSignalType = "negative_attribution"
	BiasQuantifierExtremity  BiasSignalType = "quantifier_extremity"
	BiasAttributionAsymmetry BiasSignalType = "attribution_asymmetry"
)

// BiasSeverity ranks a bias signal. Low is never emitted as a standalone
// signal; it exists only so the severity mapping stays monotonic in |z|.
type BiasSeverity string

const (
	BiasSeverityHigh   BiasSeverity = "high"
	BiasSeverityMedium BiasSeverity = "medium"
	BiasSeverityLow    BiasSeverity = "low"
)

// BiasDirection records which side of the baseline the observation fell on
type BiasDirection string

const (
	DirectionHigher BiasDirection = "higher"
	DirectionLower  BiasDirection = "lower"
)

// CaseLevelDocumentID marks signals computed across all documents of a case
const CaseLevelDocumentID = "case_level"

// BiasSignal is one statistically flagged deviation from a calibrated
// baseline. A signal only exists when |ZScore| reached the warning
// threshold; sub-threshold deviations are never emitted.
type BiasSignal struct {
	ID         string `json:"id"`
	DocumentID string `json:"document_id"` // "case_level" for cross-document signals
	CaseID     string `json:"case_id"`

	SignalType BiasSignalType `json:"signal_type"`

	Observed       float64  `json:"observed"`
	BaselineMean   float64  `json:"baseline_mean"`
	BaselineStdDev float64  `json:"baseline_std_dev"`
	ZScore         float64  `json:"z_score"`
	PValue         *float64 `json:"p_value,omitempty"`

	Severity  BiasSeverity  `json:"severity"`
	Direction BiasDirection `json:"direction"`

	Description    string `json:"description"`
	BaselineID     string `json:"baseline_id,omitempty"`
	BaselineSource string `json:"baseline_source"`
}

// BaselineSource records how a baseline was derived
type BaselineSource string

const (
	BaselineEmpirical  BaselineSource = "empirical"
	BaselineEstimated  BaselineSource = "estimated"
	BaselineCalibrated BaselineSource = "calibrated"
)

// Metric names keyed under (document type, metric) in the baseline registry
const (
	MetricCertaintyRatio  = "certainty_ratio"
	MetricNegativityRatio = "negativity_ratio"
	MetricExtremityRatio  = "extremity_ratio"
)

// BiasBaseline is a calibrated (mean, std-dev, sample size) reference for
// one linguistic metric on one document type. Mutated only through explicit
// calibration; read-only during detection.
type BiasBaseline struct {
	ID           string         `json:"id" yaml:"id"`
	DocumentType string         `json:"document_type" yaml:"document_type"`
	Metric       string         `json:"metric" yaml:"metric"`
	Mean         float64        `json:"mean" yaml:"mean"`
	StdDev       float64        `json:"std_dev" yaml:"std_dev"`
	CorpusSize   int            `json:"corpus_size" yaml:"corpus_size"`
	Source       BaselineSource `json:"source" yaml:"source"`
}
