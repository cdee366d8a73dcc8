package auth

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/internal/session"
	"github.com/zlzmm5188/fryctl/pkg/sdk"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the fry console",
	Long: `Authenticates against the console API with a username and password and
stores the returned session under ~/.fryctl. Subsequent commands reuse the
stored session until it expires or you log out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		username := loginUsername
		password := loginPassword
		if username == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--username is required in non-interactive mode")
			}
			var err error
			username, err = pterm.DefaultInteractiveTextInput.Show("Username")
			if err != nil {
				return err
			}
		}
		if password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--password is required in non-interactive mode")
			}
			var err error
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}
		if username == "" || password == "" {
			return fmt.Errorf("username and password must not be empty")
		}

		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		result, err := api.Login(cmd.Context(), username, password)
		if err != nil {
			var apiErr *sdk.APIError
			if errors.As(err, &apiErr) {
				return fmt.Errorf("login failed: %s", apiErr.Message)
			}
			return err
		}

		store, err := cfg.Provider.Store()
		if err != nil {
			return err
		}
		if err := store.Login(result.Token, identityFromUser(result.User)); err != nil {
			return err
		}

		pterm.Success.Printfln("Logged in as %s (%s)", result.User.Username, result.User.Role)
		return nil
	},
}

func identityFromUser(u sdk.User) session.Identity {
	return session.Identity{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		InviteCode: u.InviteCode,
	}
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Console username")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Console password (prompted when omitted)")
}
