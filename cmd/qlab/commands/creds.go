package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"qlab/internal/domain"
)

func credsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "creds",
		Short: "Manage remote service credentials",
	}
	cmd.AddCommand(credsSetCmd(), credsShowCmd())
	return cmd
}

func credsSetCmd() *cobra.Command {
	var (
		svcURL string
		token  string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the service URL and bearer token, encrypted under the passphrase",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if token == "" {
				return fmt.Errorf("token required (--token)")
			}
			c := domain.Credentials{Service: svcURL, Token: token}
			if err := appCtx.Creds.SaveCredentials(passphrase, c); err != nil {
				return err
			}
			fmt.Println("credentials stored")
			return nil
		},
	}
	cmd.Flags().StringVar(&svcURL, "service-url", "", "service base URL to store with the token")
	cmd.Flags().StringVar(&token, "token", "", "bearer token for the service")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func credsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Decrypt and print the stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			c, err := appCtx.Creds.LoadCredentials(passphrase)
			if err != nil {
				return err
			}
			fmt.Printf("service: %s\ntoken:   %s\n", c.Service, c.Token)
			return nil
		},
	}
}
