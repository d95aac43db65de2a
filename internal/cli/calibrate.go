package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/bias"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

var (
	calibrateDocType string
	calibrateMetric  string
	calibrateSamples string
	calibrateMean    float64
	calibrateStdDev  float64
	calibrateCorpus  int
)

// calibrateCmd represents the calibrate command
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Calibrate a bias baseline for a document type",
	Long: `Calibrate updates the baseline store used by bias detection.

Either supply observed sample ratios (one per corpus document) in a YAML
file and let lexaudit compute mean and standard deviation:

  lexaudit calibrate --doc-type witness_statement --metric certainty_ratio --samples ratios.yaml

or set the parameters directly from an external empirical study:

  lexaudit calibrate --doc-type expert_report --metric negativity_ratio --mean 0.45 --std-dev 0.12 --corpus-size 310`,
	RunE: runCalibrate,
}

// baselinesCmd lists the stored baselines
var baselinesCmd = &cobra.Command{
	Use:   "baselines",
	Short: "List stored bias baselines",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := bias.NewRegistry()
		path := defaultBaselinesPath()
		if err := registry.LoadFile(path); err != nil {
			return fmt.Errorf("no baseline store at %s (run 'lexaudit calibrate' first): %w", path, err)
		}

		baselines := registry.All()
		sort.Slice(baselines, func(i, j int) bool {
			if baselines[i].DocumentType != baselines[j].DocumentType {
				return baselines[i].DocumentType < baselines[j].DocumentType
			}
			return baselines[i].Metric < baselines[j].Metric
		})

		for _, b := range baselines {
			fmt.Printf("%-24s %-18s mean=%.3f std=%.3f n=%d (%s)\n",
				b.DocumentType, b.Metric, b.Mean, b.StdDev, b.CorpusSize, b.Source)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(baselinesCmd)

	calibrateCmd.Flags().StringVar(&calibrateDocType, "doc-type", "", "document type to calibrate (required)")
	calibrateCmd.Flags().StringVar(&calibrateMetric, "metric", "", "metric name, e.g. certainty_ratio (required)")
	calibrateCmd.Flags().StringVar(&calibrateSamples, "samples", "", "YAML file of observed sample ratios")
	calibrateCmd.Flags().Float64Var(&calibrateMean, "mean", 0, "baseline mean (with --std-dev)")
	calibrateCmd.Flags().Float64Var(&calibrateStdDev, "std-dev", 0, "baseline standard deviation (with --mean)")
	calibrateCmd.Flags().IntVar(&calibrateCorpus, "corpus-size", 0, "corpus size behind --mean/--std-dev")

	_ = calibrateCmd.MarkFlagRequired("doc-type")
	_ = calibrateCmd.MarkFlagRequired("metric")
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	registry := bias.NewRegistry()
	path := defaultBaselinesPath()
	if path == "" {
		return fmt.Errorf("cannot resolve baseline store path")
	}
	if _, err := os.Stat(path); err == nil {
		if err := registry.LoadFile(path); err != nil {
			return fmt.Errorf("load baselines: %w", err)
		}
	}

	var baseline model.BiasBaseline
	switch {
	case calibrateSamples != "":
		samples, err := loadSamples(calibrateSamples)
		if err != nil {
			return err
		}
		baseline, err = registry.Calibrate(calibrateDocType, calibrateMetric, samples)
		if err != nil {
			return err
		}
	case calibrateStdDev > 0:
		baseline = registry.Upsert(calibrateDocType, calibrateMetric,
			calibrateMean, calibrateStdDev, calibrateCorpus, model.BaselineEmpirical)
	default:
		return fmt.Errorf("either --samples or --mean/--std-dev is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create baseline directory: %w", err)
	}
	if err := registry.SaveFile(path); err != nil {
		return err
	}

	fmt.Printf("✓ Calibrated %s/%s: mean=%.3f std=%.3f n=%d (%s)\n",
		baseline.DocumentType, baseline.Metric, baseline.Mean, baseline.StdDev, baseline.CorpusSize, baseline.Source)
	return nil
}

func loadSamples(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}
	var wrapper struct {
		Samples []float64 `yaml:"samples"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("parse samples: %w", err)
	}
	return wrapper.Samples, nil
}
