package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/precedence/internal/pipeline"
	"github.com/spf13/cobra"
)

var assembleModel string

// assembleCmd represents the assemble command
var assembleCmd = &cobra.Command{
	Use:   "assemble <corpus>",
	Short: "Run the full sieve pipeline and print precedence relations",
	Long: `Assemble deduplicates the corpus mentions into entities/events and runs
every precedence sieve in order, printing one tab-separated line per
precedence relation.

Example:
  precedence assemble corpus.yaml
  precedence assemble corpus.yaml --model classifier.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAssemble,
}

func init() {
	rootCmd.AddCommand(assembleCmd)

	assembleCmd.Flags().StringVar(&assembleModel, "model", "", "classifier model (overrides classifier.model_path)")
	assembleCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable corpus cache")
}

func runAssemble(cmd *cobra.Command, args []string) error {
	rt, err := newSession()
	if err != nil {
		return err
	}
	defer rt.close()
	if assembleModel != "" {
		rt.cfg.Classifier.ModelPath = assembleModel
	}

	c, err := rt.loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	classifier, err := rt.classifier()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(rt.cfg, classifier, rt.logger)
	manager, err := p.ApplySieves(c.Mentions)
	if err != nil {
		return fmt.Errorf("assemble: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Corpus:     %s\n", c.Name)
		fmt.Fprintf(os.Stderr, "Mentions:   %d\n", len(c.Mentions))
		fmt.Fprintf(os.Stderr, "EERs:       %d\n", len(manager.EERs()))
		fmt.Fprintf(os.Stderr, "Relations:  %d\n", len(manager.GetPrecedenceRelations()))
		fmt.Fprintf(os.Stderr, "Conflicts:  %d\n\n", len(manager.Conflicts()))
	}
	for _, conflict := range manager.Conflicts() {
		fmt.Fprintf(os.Stderr, "⚠ conflict: %s\n", conflict)
	}

	return pipeline.RenderRelations(cmd.OutOrStdout(), manager)
}
