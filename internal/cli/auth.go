package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcortez/mailgrab/internal/gmail"
	"github.com/jcortez/mailgrab/internal/store"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage Gmail authorization",
	}
	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Authorize mailgrab via OAuth and store the token",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := resolveGmailCredentials(cfg); err != nil {
				return err
			}

			client := gmail.NewAPIClient(defaultAccount, store.NewKeyringTokenStore())

			ctx := cmd.Context()
			if err := client.Authenticate(ctx); err != nil {
				return fmt.Errorf("failed to authenticate: %w", err)
			}

			email, err := client.GetProfile(ctx)
			if err != nil {
				// The token is saved; profile lookup is informational only.
				fmt.Fprintf(os.Stderr, "Warning: could not read profile: %v\n", err)
			}

			if jsonFlag {
				return printJSON(jsonAction{OK: true, Action: "login", Email: email})
			}
			if email != "" {
				fmt.Printf("Authenticated as %s\n", email)
			} else {
				fmt.Println("Authenticated.")
			}
			return nil
		},
	}
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored OAuth token",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokenStore := store.NewKeyringTokenStore()
			if err := tokenStore.DeleteToken(defaultAccount); err != nil {
				return fmt.Errorf("failed to remove token: %w", err)
			}

			if jsonFlag {
				return printJSON(jsonAction{OK: true, Action: "logout"})
			}
			fmt.Println("Token removed. Run 'mailgrab auth login' to re-authorize.")
			return nil
		},
	}
}
