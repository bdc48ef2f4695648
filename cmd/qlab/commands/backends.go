package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func backendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the backends the remote service exposes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required to load credentials (-p)")
			}
			creds, err := appCtx.Creds.LoadCredentials(passphrase)
			if err != nil {
				return err
			}
			infos, err := appCtx.Remote(creds).Backends(cmd.Context())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("service exposes no backends")
				return nil
			}
			for _, bi := range infos {
				fmt.Printf("%-24s %3d qubits  %s\n", bi.Name, bi.Qubits, bi.Status)
			}
			return nil
		},
	}
}
