package bias

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// Registry is the mutable store of calibrated baselines keyed by
// (document type, metric). Reads during detection take a snapshot under a
// read lock; mutation happens only through the serialized calibration
// operations, so a concurrent run never observes a baseline mid-update.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]model.BiasBaseline
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]model.BiasBaseline)}
}

func registryKey(docType, metric string) string {
	return docType + "/" + metric
}

// Get returns a value snapshot of the baseline for (docType, metric)
func (r *Registry) Get(docType, metric string) (model.BiasBaseline, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	baseline, ok := r.entries[registryKey(docType, metric)]
	return baseline, ok
}

// Upsert stores or replaces a baseline
func (r *Registry) Upsert(docType, metric string, mean, stdDev float64, corpusSize int, source model.BaselineSource) model.BiasBaseline {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := registryKey(docType, metric)
	baseline, ok := r.entries[key]
	if !ok {
		baseline = model.BiasBaseline{ID: uuid.NewString()}
	}
	baseline.DocumentType = docType
	baseline.Metric = metric
	baseline.Mean = mean
	baseline.StdDev = stdDev
	baseline.CorpusSize = corpusSize
	baseline.Source = source

	r.entries[key] = baseline
	return baseline
}

// Calibrate computes mean and standard deviation from observed sample
// ratios and upserts the result with source=calibrated
func (r *Registry) Calibrate(docType, metric string, samples []float64) (model.BiasBaseline, error) {
	if len(samples) < 2 {
		return model.BiasBaseline{}, fmt.Errorf("calibrate %s/%s: need at least 2 samples, got %d", docType, metric, len(samples))
	}

	var sum float64
	for _, s := range samples {
		sum += s
	}
	mean := sum / float64(len(samples))

	var sqSum float64
	for _, s := range samples {
		sqSum += (s - mean) * (s - mean)
	}
	stdDev := math.Sqrt(sqSum / float64(len(samples)-1))

	return r.Upsert(docType, metric, mean, stdDev, len(samples), model.BaselineCalibrated), nil
}

// All returns a snapshot of every stored baseline
func (r *Registry) All() []model.BiasBaseline {
	r.mu.RLock()
	defer r.mu.RUnlock()

	baselines := make([]model.BiasBaseline, 0, len(r.entries))
	for _, b := range r.entries {
		baselines = append(baselines, b)
	}
	return baselines
}

// baselineFile is the on-disk YAML shape of the registry
type baselineFile struct {
	Baselines []model.BiasBaseline `yaml:"baselines"`
}

// LoadFile replaces the registry contents with the baselines in a YAML file
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read baselines: %w", err)
	}

	var file baselineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse baselines: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]model.BiasBaseline, len(file.Baselines))
	for _, b := range file.Baselines {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
		r.entries[registryKey(b.DocumentType, b.Metric)] = b
	}
	return nil
}

// SaveFile writes the registry contents to a YAML file
func (r *Registry) SaveFile(path string) error {
	file := baselineFile{Baselines: r.All()}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("marshal baselines: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write baselines: %w", err)
	}
	return nil
}

// estimatedDefaults are the conservative fallback baselines used when no
// calibration exists for a (document type, metric) pair
var estimatedDefaults = map[string]model.BiasBaseline{
	model.MetricCertaintyRatio:  {Metric: model.MetricCertaintyRatio, Mean: 0.40, StdDev: 0.15, Source: model.BaselineEstimated},
	model.MetricNegativityRatio: {Metric: model.MetricNegativityRatio, Mean: 0.50, StdDev: 0.15, Source: model.BaselineEstimated},
	model.MetricExtremityRatio:  {Metric: model.MetricExtremityRatio, Mean: 0.30, StdDev: 0.12, Source: model.BaselineEstimated},
}

// Resolve returns the calibrated baseline for (docType, metric) when one
// exists, else the documented estimated default
func (r *Registry) Resolve(docType, metric string) model.BiasBaseline {
	if baseline, ok := r.Get(docType, metric); ok {
		return baseline
	}
	baseline := estimatedDefaults[metric]
	baseline.DocumentType = docType
	return baseline
}
