package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qlab/internal/plot"
	"qlab/internal/rand/lcg"
)

// lcg: run the linear congruential recurrence and print the sequence.
func lcgCmd() *cobra.Command {
	var (
		a, c, m, seed uint64
		n             int
		raw           bool
		histPath      string
	)
	cmd := &cobra.Command{
		Use:   "lcg",
		Short: "Generate pseudo-random numbers with a linear congruential generator",
		Long: "Runs x_{i+1} = (a*x_i + c) mod m from the given seed and prints the\n" +
			"outputs normalised to [0,1) by dividing by m (or the raw integers with\n" +
			"--raw). A modulus of 0 selects mod 2^64.",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := lcg.NewParams(a, c, m, seed)
			if raw {
				for i := 0; i < n; i++ {
					fmt.Println(g.Next())
				}
				return nil
			}
			vals := g.Sequence(n)
			for _, v := range vals {
				fmt.Printf("%.9f\n", v)
			}
			if histPath != "" {
				if err := plot.Histogram(vals, 20, "LCG outputs", histPath); err != nil {
					return err
				}
				fmt.Printf("histogram written to %s\n", histPath)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&a, "a", lcg.DefaultA, "multiplier")
	cmd.Flags().Uint64Var(&c, "c", lcg.DefaultC, "increment")
	cmd.Flags().Uint64Var(&m, "m", lcg.DefaultM, "modulus (0 means 2^64)")
	cmd.Flags().Uint64Var(&seed, "seed", 42, "seed")
	cmd.Flags().IntVar(&n, "n", 10, "how many values to generate")
	cmd.Flags().BoolVar(&raw, "raw", false, "print raw integers instead of normalised floats")
	cmd.Flags().StringVar(&histPath, "hist", "", "write a histogram PNG to this path")
	return cmd
}
