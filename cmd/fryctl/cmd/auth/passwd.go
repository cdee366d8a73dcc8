package auth

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/pkg/sdk"
)

var passwdUsername string

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change an account password",
	Long: `Changes a console account password after verifying the current one.
Defaults to the logged-in account when --username is omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if cfg.NonInteractive {
			return fmt.Errorf("passwd requires interactive prompts")
		}

		username := passwdUsername
		if username == "" {
			store, err := cfg.Provider.Store()
			if err != nil {
				return err
			}
			snap := store.Snapshot()
			if snap.Identity == nil {
				return fmt.Errorf("not logged in; pass --username or run `fryctl auth login`")
			}
			username = snap.Identity.Username
		}

		current, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Current password")
		if err != nil {
			return err
		}
		next, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("New password")
		if err != nil {
			return err
		}
		confirm, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Repeat new password")
		if err != nil {
			return err
		}
		if next == "" {
			return fmt.Errorf("new password must not be empty")
		}
		if next != confirm {
			return fmt.Errorf("passwords do not match")
		}

		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		if err := api.ResetPassword(cmd.Context(), username, current, next); err != nil {
			var apiErr *sdk.APIError
			if errors.As(err, &apiErr) {
				return fmt.Errorf("password change failed: %s", apiErr.Message)
			}
			return err
		}

		pterm.Success.Printfln("Password changed for %s", username)
		return nil
	},
}

func init() {
	passwdCmd.Flags().StringVarP(&passwdUsername, "username", "u", "", "Account to change (defaults to the logged-in account)")
}
