package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from the fry console",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		store, err := cfg.Provider.Store()
		if err != nil {
			return err
		}

		// Tell the server first, best effort. The local session is cleared
		// even when the server is unreachable or the token already expired.
		if store.Snapshot().IsAuthenticated {
			if api, err := cfg.Provider.SDKClient(); err == nil {
				if err := api.Logout(cmd.Context()); err != nil {
					cfg.Logger.Debug().Err(err).Msg("server-side logout failed")
				}
			}
		}

		if err := store.Logout(); err != nil {
			return err
		}

		pterm.Success.Println("Logged out successfully")
		return nil
	},
}
