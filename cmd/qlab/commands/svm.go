package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qlab/internal/ml/dataset"
	"qlab/internal/ml/svm"
	"qlab/internal/plot"
	"qlab/internal/rand/lcg"
)

// svm: the classical half of the classifier demonstration.
func svmCmd() *cobra.Command {
	var (
		n        int
		noise    float64
		seed     uint64
		boxC     float64
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "svm",
		Short: "Fit a linear SVM on a synthetic 2-D dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := lcg.New(seed)
			d := dataset.Blobs(n, noise, g)
			train, test := d.Split(0.25, g)

			m, err := svm.Train(train.X, train.Y, boxC, svm.Linear(), svm.Options{Seed: seed})
			if err != nil {
				return err
			}

			trainAcc := svm.Accuracy(m.PredictAll(train.X), train.Y)
			testAcc := svm.Accuracy(m.PredictAll(test.X), test.Y)
			w, b := m.LinearWeights()
			fmt.Printf("samples:        %d train / %d test\n", train.Len(), test.Len())
			fmt.Printf("train accuracy: %.3f\n", trainAcc)
			fmt.Printf("test accuracy:  %.3f\n", testAcc)
			fmt.Printf("support vectors: %d\n", len(m.SupportVectors()))
			fmt.Printf("boundary: %.4f*x1 + %.4f*x2 + %.4f = 0\n", w[0], w[1], b)

			if plotPath != "" {
				if err := plot.DecisionBoundary(train, m.Decision, 0, "linear SVM", plotPath); err != nil {
					return err
				}
				fmt.Printf("decision boundary written to %s\n", plotPath)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 200, "dataset size")
	cmd.Flags().Float64Var(&noise, "noise", 0.6, "cluster standard deviation")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "dataset and training seed")
	cmd.Flags().Float64Var(&boxC, "C", 1, "SVM box constraint")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a decision-boundary PNG to this path")
	return cmd
}
