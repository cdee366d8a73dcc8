package auth

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display authentication status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		store, err := cfg.Provider.Store()
		if err != nil {
			return err
		}

		snap := store.Snapshot()
		if !snap.IsAuthenticated {
			return fmt.Errorf("not logged in")
		}

		// Refresh the identity from the server when reachable. A rejected
		// token clears the session through the gateway; anything else is
		// non-fatal and the stored identity is shown as-is.
		if api, err := cfg.Provider.SDKClient(); err == nil {
			if me, err := api.Me(cmd.Context()); err == nil {
				if err := store.UpdateIdentity(identityFromUser(*me)); err != nil {
					cfg.Logger.Debug().Err(err).Msg("failed to persist refreshed identity")
				}
				snap = store.Snapshot()
			}
		}
		if !snap.IsAuthenticated {
			return fmt.Errorf("session expired; run `fryctl auth login`")
		}

		pterm.DefaultSection.Println("Authentication Status")
		pterm.Info.Printfln("Logged in as: %s (%s)", snap.Identity.Username, snap.Identity.Role)
		if snap.Identity.InviteCode != "" {
			pterm.Info.Printfln("Invite code: %s", snap.Identity.InviteCode)
		}

		claims, err := session.InspectToken(snap.Token)
		if err != nil {
			pterm.Warning.Println("Stored token is not inspectable; the server remains the authority on its validity.")
			return nil
		}
		if !claims.ExpiresAt.IsZero() {
			if claims.IsExpired() {
				pterm.Warning.Printfln("Token expired at %s; run `fryctl auth login`", claims.ExpiresAt.Format(time.RFC1123))
			} else {
				pterm.Info.Printfln("Token expires at: %s", claims.ExpiresAt.Format(time.RFC1123))
			}
		}
		return nil
	},
}
