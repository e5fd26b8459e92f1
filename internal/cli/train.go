package cli

import (
	"fmt"
	"os"

	"github.com/ppiankov/precedence/internal/classify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	trainOut    string
	trainEpochs int
	trainSeed   int64
)

// trainCmd represents the train command
var trainCmd = &cobra.Command{
	Use:   "train <corpus>",
	Short: "Fit the feature-based precedence classifier on annotated pairs",
	Long: `Train fits the averaged perceptron used by the featureBasedClassifier
sieve on the corpus annotations and writes it as YAML.

Pairs annotated "Bug" are skipped; every non-precedence label becomes
the "None" class.

Example:
  precedence train corpus.yaml --out classifier.yaml
  precedence train corpus.yaml --epochs 20 --seed 7`,
	Args: cobra.ExactArgs(1),
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)

	trainCmd.Flags().StringVarP(&trainOut, "out", "o", "classifier.yaml", "output model path")
	trainCmd.Flags().IntVar(&trainEpochs, "epochs", 0, "training epochs (overrides classifier.epochs)")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 0, "shuffle seed (overrides classifier.seed)")
	trainCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable corpus cache")
}

func runTrain(cmd *cobra.Command, args []string) error {
	rt, err := newSession()
	if err != nil {
		return err
	}
	defer rt.close()

	epochs, seed := rt.cfg.Classifier.Epochs, rt.cfg.Classifier.Seed
	if trainEpochs > 0 {
		epochs = trainEpochs
	}
	if trainSeed != 0 {
		seed = trainSeed
	}

	c, err := rt.loader.Load(args[0])
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	examples, err := c.TrainingExamples()
	if err != nil {
		return fmt.Errorf("training examples: %w", err)
	}
	if len(examples) == 0 {
		return fmt.Errorf("corpus %s has no usable annotations", c.Name)
	}

	m := classify.Train(examples, epochs, seed)
	if err := m.Save(trainOut); err != nil {
		return err
	}

	rt.logger.Info("trained classifier",
		zap.Int("examples", len(examples)),
		zap.Int("epochs", epochs),
		zap.Int("features", len(m.Weights)))
	fmt.Fprintf(os.Stderr, "✓ Trained on %d pairs, wrote %s\n", len(examples), trainOut)
	return nil
}
