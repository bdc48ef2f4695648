package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qlab/internal/backend/local"
	"qlab/internal/domain"
	"qlab/internal/plot"
	"qlab/internal/qrng"
)

// qrng: harvest random numbers by measuring uniform superpositions.
func qrngCmd() *cobra.Command {
	var (
		qubits   int
		n        int
		backend  string
		seed     uint64
		intsMax  int
		histPath string
	)
	cmd := &cobra.Command{
		Use:   "qrng",
		Short: "Harvest random numbers from a quantum backend",
		Long: "Puts a register of qubits into uniform superposition with Hadamards,\n" +
			"measures it once per value, and prints the outcomes. The local\n" +
			"statevector backend needs no credentials; the remote backend uses the\n" +
			"stored bearer token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if qubits == 0 {
				qubits = fileCfg.Qubits
			}

			var be domain.Backend
			switch backend {
			case "local":
				if seed != 0 {
					be = local.NewSeeded(seed)
				} else {
					be = appCtx.Local
				}
			case "remote":
				if passphrase == "" {
					return fmt.Errorf("passphrase required to load credentials (-p)")
				}
				creds, err := appCtx.Creds.LoadCredentials(passphrase)
				if err != nil {
					return err
				}
				be = appCtx.Remote(creds)
			default:
				return fmt.Errorf("unknown backend %q (want local or remote)", backend)
			}

			svc, err := qrng.New(be, qubits)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			if intsMax > 0 {
				vs, err := svc.Ints(ctx, n, intsMax)
				if err != nil {
					return err
				}
				for _, v := range vs {
					fmt.Println(v)
				}
				return nil
			}

			vals, err := svc.Uniform(ctx, n)
			if err != nil {
				return err
			}
			for _, v := range vals {
				fmt.Printf("%.9f\n", v)
			}
			if histPath != "" {
				if err := plot.Histogram(vals, 20, "quantum uniform samples", histPath); err != nil {
					return err
				}
				fmt.Printf("histogram written to %s\n", histPath)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&qubits, "qubits", 0, "register width in qubits (default from config)")
	cmd.Flags().IntVar(&n, "n", 10, "how many values to harvest")
	cmd.Flags().StringVar(&backend, "backend", "local", "execution backend: local or remote")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "fix the local backend's sampling seed (0 means OS-seeded)")
	cmd.Flags().IntVar(&intsMax, "ints", 0, "print integers in [0,max) instead of floats")
	cmd.Flags().StringVar(&histPath, "hist", "", "write a histogram PNG to this path")
	return cmd
}
