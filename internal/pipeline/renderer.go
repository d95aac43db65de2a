package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pms06-ai/phronesis-lex-sub000/internal/model"
)

// Renderer writes analysis reports as JSON, Markdown and a stdout summary
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.AnalysisReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a human-readable report
func (r *Renderer) RenderMarkdown(report *model.AnalysisReport, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Case Analysis: %s\n\n", report.CaseID)
	fmt.Fprintf(&b, "Analyzed: %s\n\n", report.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	fmt.Fprintf(&b, "- Claims analyzed: %d\n", report.Summary.ClaimsAnalyzed)
	fmt.Fprintf(&b, "- Documents analyzed: %d\n", report.Summary.DocumentsAnalyzed)
	fmt.Fprintf(&b, "- Contradictions: %d\n", report.Summary.Contradictions.Total)
	fmt.Fprintf(&b, "- Bias signals: %d\n", report.Summary.BiasSignals)
	fmt.Fprintf(&b, "- Similarity tier: %s\n\n", report.Summary.SimilarityTier)

	if len(report.Contradictions) > 0 {
		b.WriteString("## Contradictions\n\n")
		for i, c := range report.Contradictions {
			fmt.Fprintf(&b, "### %d. %s (%s)\n\n", i+1, c.Type, c.Severity)
			fmt.Fprintf(&b, "- **Claim A** (%s): %s\n", c.SourceA, c.ClaimAText)
			fmt.Fprintf(&b, "- **Claim B** (%s): %s\n", c.SourceB, c.ClaimBText)
			if c.SameAuthor {
				fmt.Fprintf(&b, "- Same author: %s\n", c.AuthorA)
			}
			fmt.Fprintf(&b, "- Similarity %.2f, confidence %.2f, method `%s`\n", c.SemanticSimilarity, c.Confidence, c.DetectionMethod)
			fmt.Fprintf(&b, "- %s\n", c.Explanation)
			if c.RecommendedAction != "" {
				fmt.Fprintf(&b, "- Recommended: %s\n", c.RecommendedAction)
			}
			if c.CaseLawRef != "" {
				fmt.Fprintf(&b, "- See: %s\n", c.CaseLawRef)
			}
			b.WriteString("\n")
		}
	}

	if len(report.BiasSignals) > 0 {
		b.WriteString("## Bias Signals\n\n")
		b.WriteString("| Document | Signal | Severity | Observed | Baseline | z | Direction |\n")
		b.WriteString("|---|---|---|---|---|---|---|\n")
		for _, s := range report.BiasSignals {
			fmt.Fprintf(&b, "| %s | %s | %s | %.2f | %.2f | %.2f | %s |\n",
				s.DocumentID, s.SignalType, s.Severity, s.Observed, s.BaselineMean, s.ZScore, s.Direction)
		}
		b.WriteString("\n")
		for _, s := range report.BiasSignals {
			fmt.Fprintf(&b, "- %s\n", s.Description)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by lexaudit. Signals describe statistical deviation from calibrated baselines, not findings of fact.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

// RenderSummary prints a short summary to stdout
func (r *Renderer) RenderSummary(report *model.AnalysisReport) {
	fmt.Printf("Case %s: %d contradictions, %d bias signals (%d claims, %d documents)\n",
		report.CaseID,
		report.Summary.Contradictions.Total,
		report.Summary.BiasSignals,
		report.Summary.ClaimsAnalyzed,
		report.Summary.DocumentsAnalyzed)

	for severity, count := range report.Summary.Contradictions.BySeverity {
		fmt.Printf("  %s: %d\n", severity, count)
	}
}
