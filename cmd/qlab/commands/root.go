package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"qlab/internal/app"
)

var (
	home       string
	passphrase string
	service    string

	appCtx  *app.Wire
	fileCfg app.FileConfig
)

func Execute() error {
	root := &cobra.Command{
		Use:          "qlab",
		Short:        "Didactic quantum randomness and quantum-kernel SVM CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".qlab")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			fc, err := app.LoadFileConfig(home)
			if err != nil {
				return err
			}
			fileCfg = fc
			if service == "" {
				service = fileCfg.Service
			}

			appCtx = app.NewWire(app.Config{Home: home, Service: service})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.qlab)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored credentials")
	root.PersistentFlags().StringVar(&service, "service", "", "remote service base URL (e.g. https://quantum.example.com)")

	root.AddCommand(lcgCmd(), qrngCmd(), backendsCmd(), credsCmd(), svmCmd(), qsvmCmd())
	return root.Execute()
}
