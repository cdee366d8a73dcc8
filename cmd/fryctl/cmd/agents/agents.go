package agents

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/internal/guard"
)

// AgentsCmd is the parent command for agent account management. The whole
// group is administrator-only; the server enforces that too.
var AgentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "Manage agent accounts (administrators only)",
	Long:  `Commands for listing, creating and deleting agent accounts.`,
}

// requireAdmin gates every agents subcommand on an administrator session.
// Evaluated fresh on each invocation; the server is still the authority.
func requireAdmin(cfg *config.GlobalConfig) error {
	store, err := cfg.Provider.Store()
	if err != nil {
		return err
	}
	if err := guard.RequireAdmin(store.Snapshot()); err != nil {
		if errors.Is(err, guard.ErrNotLoggedIn) {
			return fmt.Errorf("not logged in; run `fryctl auth login`")
		}
		if errors.Is(err, guard.ErrForbidden) {
			return fmt.Errorf("agent management requires an administrator account")
		}
		return err
	}
	return nil
}

func init() {
	AgentsCmd.AddCommand(listCmd)
	AgentsCmd.AddCommand(createCmd)
	AgentsCmd.AddCommand(deleteCmd)
}
