package model

import "time"

// Config consolidates every tunable threshold and runtime setting so
// detection rules can be audited and tuned without touching detector code.
// Hierarchy: CLI flags > LEXAUDIT_* env vars > config file > defaults.
type Config struct {
	Thresholds  ThresholdConfig  `json:"thresholds" yaml:"thresholds"`
	Similarity  SimilarityConfig `json:"similarity" yaml:"similarity"`
	Concurrency ConcurrencyCfg   `json:"concurrency" yaml:"concurrency"`
	Baselines   BaselineConfig   `json:"baselines" yaml:"baselines"`
	Output      OutputConfig     `json:"output" yaml:"output"`
}

// ThresholdConfig holds the detection thresholds of both engines
type ThresholdConfig struct {
	// Contradiction detection
	SemanticThreshold          float64 `json:"semantic_threshold" yaml:"semantic_threshold"`                       // General similarity gate
	PolarityThreshold          float64 `json:"polarity_threshold" yaml:"polarity_threshold"`                       // Direct contradiction gate
	SelfContradictionThreshold float64 `json:"self_contradiction_threshold" yaml:"self_contradiction_threshold"`  // Lowered opposition gate for same-author pairs
	ModalityShiftThreshold     float64 `json:"modality_shift_threshold" yaml:"modality_shift_threshold"`          // Higher similarity bar: pair must describe one event
	ValueSimilarityThreshold   float64 `json:"value_similarity_threshold" yaml:"value_similarity_threshold"`      // Context gate for numeric pairs
	ValueDiffThreshold         float64 `json:"value_diff_threshold" yaml:"value_diff_threshold"`                  // Relative divergence required after unit normalization
	QuotationSpanThreshold     float64 `json:"quotation_span_threshold" yaml:"quotation_span_threshold"`          // Quoted spans must describe the same statement
	QuotationIdentityThreshold float64 `json:"quotation_identity_threshold" yaml:"quotation_identity_threshold"`  // Above this the quote is unaltered
	OmissionCoverageThreshold  float64 `json:"omission_coverage_threshold" yaml:"omission_coverage_threshold"`    // Best-match similarity below this is a coverage gap
	OmissionCertaintyFloor     float64 `json:"omission_certainty_floor" yaml:"omission_certainty_floor"`          // Only confident claims count as material facts

	// Bias detection
	BiasZWarning      float64 `json:"bias_z_warning" yaml:"bias_z_warning"`
	BiasZCritical     float64 `json:"bias_z_critical" yaml:"bias_z_critical"`
	BiasMinSampleSize int     `json:"bias_min_sample_size" yaml:"bias_min_sample_size"`
}

// SimilarityConfig controls the tiered similarity provider
type SimilarityConfig struct {
	EmbeddingModel    string        `json:"embedding_model" yaml:"embedding_model"`
	APIKey            string        `json:"-" yaml:"-"` // From OPENAI_API_KEY, never serialized
	BaseURL           string        `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	RequestsPerSecond float64       `json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int           `json:"burst" yaml:"burst"`
	CacheTTL          time.Duration `json:"cache_ttl" yaml:"cache_ttl"`
	DisableEmbeddings bool          `json:"disable_embeddings" yaml:"disable_embeddings"`
}

// ConcurrencyCfg controls parallelism across detectors and analyses
type ConcurrencyCfg struct {
	DetectorWorkers int `json:"detector_workers" yaml:"detector_workers"`
}

// BaselineConfig locates the calibrated baseline store
type BaselineConfig struct {
	Path string `json:"path" yaml:"path"` // YAML baseline file; empty means estimated defaults only
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `json:"verbose" yaml:"verbose"`
	IncludeFooter bool `json:"include_footer" yaml:"include_footer"`
}

// DefaultConfig returns the documented defaults for every setting
func DefaultConfig() Config {
	return Config{
		Thresholds: ThresholdConfig{
			SemanticThreshold:          0.6,
			PolarityThreshold:          0.8,
			SelfContradictionThreshold: 0.7,
			ModalityShiftThreshold:     0.7,
			ValueSimilarityThreshold:   0.5,
			ValueDiffThreshold:         0.2,
			QuotationSpanThreshold:     0.7,
			QuotationIdentityThreshold: 0.95,
			OmissionCoverageThreshold:  0.35,
			OmissionCertaintyFloor:     0.7,
			BiasZWarning:               1.5,
			BiasZCritical:              2.0,
			BiasMinSampleSize:          10,
		},
		Similarity: SimilarityConfig{
			EmbeddingModel:    "text-embedding-3-small",
			Timeout:           15 * time.Second,
			RequestsPerSecond: 5,
			Burst:             5,
			CacheTTL:          30 * time.Minute,
		},
		Concurrency: ConcurrencyCfg{
			DetectorWorkers: 4,
		},
		Baselines: BaselineConfig{},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
