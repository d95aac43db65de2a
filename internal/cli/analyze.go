package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
	"github.com/pms06-ai/phronesis-lex-sub000/internal/pipeline"
)

var (
	claimsPath    string
	documentsPath string
	outJSON       string
	outMD         string
	analyzeTO     time.Duration
	noEmbeddings  bool

	semanticThreshold float64
	polarityThreshold float64
	selfThreshold     float64
	zWarning          float64
	zCritical         float64
	minSampleSize     int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Detect contradictions and bias signals for one case",
	Long: `Analyze loads a case's claim records (and optionally its document
texts) from the claim store export, runs the contradiction detector and
the bias analyzer, and renders an analysis report.

The claims file is a JSON object: {"case_id": "...", "claims": [...],
"documents": [...]}. Documents may instead be supplied separately via
--documents.

Example:
  lexaudit analyze --claims case042.json --json report.json --md report.md
  lexaudit analyze --claims case042.json --no-embeddings -v`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&claimsPath, "claims", "", "claims export JSON (required)")
	analyzeCmd.Flags().StringVar(&documentsPath, "documents", "", "documents JSON (optional, merged with the claims file)")
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().DurationVar(&analyzeTO, "timeout", 5*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().BoolVar(&noEmbeddings, "no-embeddings", false, "skip the embedding tier (token matching only)")

	// Threshold overrides
	analyzeCmd.Flags().Float64Var(&semanticThreshold, "semantic-threshold", 0.6, "general similarity gate")
	analyzeCmd.Flags().Float64Var(&polarityThreshold, "polarity-threshold", 0.8, "direct contradiction gate")
	analyzeCmd.Flags().Float64Var(&selfThreshold, "self-threshold", 0.7, "same-author opposition gate")
	analyzeCmd.Flags().Float64Var(&zWarning, "z-warning", 1.5, "bias warning threshold")
	analyzeCmd.Flags().Float64Var(&zCritical, "z-critical", 2.0, "bias critical threshold")
	analyzeCmd.Flags().IntVar(&minSampleSize, "min-sample", 10, "minimum pattern matches per bias analysis")

	_ = analyzeCmd.MarkFlagRequired("claims")
}

// caseExport is the claim-store export format at the analyze boundary
type caseExport struct {
	CaseID    string           `json:"case_id"`
	Claims    []model.Claim    `json:"claims"`
	Documents []model.Document `json:"documents,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), analyzeTO)
	defer cancel()

	export, err := loadCaseExport(claimsPath)
	if err != nil {
		return err
	}
	if documentsPath != "" {
		docs, err := loadDocuments(documentsPath)
		if err != nil {
			return err
		}
		export.Documents = append(export.Documents, docs...)
	}

	cfg := model.DefaultConfig()
	cfg.Thresholds.SemanticThreshold = semanticThreshold
	cfg.Thresholds.PolarityThreshold = polarityThreshold
	cfg.Thresholds.SelfContradictionThreshold = selfThreshold
	cfg.Thresholds.BiasZWarning = zWarning
	cfg.Thresholds.BiasZCritical = zCritical
	cfg.Thresholds.BiasMinSampleSize = minSampleSize
	cfg.Similarity.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Similarity.DisableEmbeddings = noEmbeddings
	cfg.Baselines.Path = defaultBaselinesPath()
	cfg.Output.Verbose = verbose

	logger := newLogger()
	p := pipeline.New(cfg, logger)

	report, err := p.Analyze(ctx, pipeline.AnalysisRequest{
		CaseID:    export.CaseID,
		Claims:    export.Claims,
		Documents: export.Documents,
	})
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		logger.Debug("wrote JSON report", "path", outJSON)
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		logger.Debug("wrote Markdown report", "path", outMD)
	}
	renderer.RenderSummary(report)

	return nil
}

func loadCaseExport(path string) (*caseExport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read claims: %w", err)
	}
	var export caseExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parse claims: %w", err)
	}
	return &export, nil
}

func loadDocuments(path string) ([]model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read documents: %w", err)
	}
	var wrapper struct {
		Documents []model.Document `json:"documents"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("parse documents: %w", err)
	}
	return wrapper.Documents, nil
}
