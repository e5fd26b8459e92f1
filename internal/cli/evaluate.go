package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ppiankov/precedence/internal/pipeline"
	"github.com/ppiankov/precedence/internal/score"
	"github.com/spf13/cobra"
)

var (
	evalModel   string
	evalJSON    string
	evalTable   bool
	evalTimeout time.Duration
	evalWorkers int
)

// evaluateCmd represents the evaluate command
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <corpus>",
	Short: "Score each sieve and the full pipeline against gold annotations",
	Long: `Evaluate runs each rule-based sieve in isolation, the classifier alone
and the full pipeline, and compares their precedence relations with the
corpus annotations.

The report has one aggregate row per pipeline (rule "**ALL**") and one
row per originating rule, sorted by ascending precision:

  sieve  rule  precision  recall  f1  tp  fp  fn

Example:
  precedence evaluate corpus.yaml
  precedence evaluate corpus.yaml --model classifier.yaml --json report.json
  precedence evaluate corpus.yaml --table --workers 8`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().StringVar(&evalModel, "model", "", "classifier model (overrides classifier.model_path)")
	evaluateCmd.Flags().StringVar(&evalJSON, "json", "", "also write the report as JSON to this path")
	evaluateCmd.Flags().BoolVar(&evalTable, "table", false, "align columns instead of printing TSV")
	evaluateCmd.Flags().DurationVar(&evalTimeout, "timeout", 10*time.Minute, "overall evaluation timeout")
	evaluateCmd.Flags().IntVar(&evalWorkers, "workers", 0, "concurrent pipelines (overrides concurrency.workers)")
	evaluateCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable corpus cache")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), evalTimeout)
	defer cancel()

	rt, err := newSession()
	if err != nil {
		return err
	}
	defer rt.close()
	if evalModel != "" {
		rt.cfg.Classifier.ModelPath = evalModel
	}
	if evalWorkers > 0 {
		rt.cfg.Concurrency.Workers = evalWorkers
	}

	c, err := rt.loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	classifier, err := rt.classifier()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Evaluating: %s\n", c.Name)
		fmt.Fprintf(os.Stderr, "Mentions:   %d\n", len(c.Mentions))
		fmt.Fprintf(os.Stderr, "Workers:    %d\n\n", rt.cfg.Concurrency.Workers)
	}

	report, err := pipeline.NewPipeline(rt.cfg, classifier, rt.logger).Evaluate(ctx, c)
	if err != nil {
		return fmt.Errorf("evaluate: %w", err)
	}

	out := cmd.OutOrStdout()
	if evalTable {
		err = score.RenderTable(out, report.Rows)
	} else {
		err = score.RenderTSV(out, report.Rows)
	}
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	for _, conflict := range report.Conflicts {
		fmt.Fprintf(os.Stderr, "⚠ conflict: %s\n", conflict)
	}

	if evalJSON != "" {
		if err := score.RenderJSON(report, evalJSON); err != nil {
			return err
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", evalJSON)
		}
	}
	return nil
}
