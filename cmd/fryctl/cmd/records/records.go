package records

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/internal/guard"
)

// RecordsCmd is the parent command for fry record operations
var RecordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Browse and manage fry records",
	Long:  `Commands for listing, annotating and deleting fry records.`,
}

// requireAuth checks the session before a protected command dispatches. The
// decision is re-evaluated on every invocation.
func requireAuth(cfg *config.GlobalConfig) error {
	store, err := cfg.Provider.Store()
	if err != nil {
		return err
	}
	if err := guard.RequireAuth(store.Snapshot()); err != nil {
		if errors.Is(err, guard.ErrNotLoggedIn) {
			return fmt.Errorf("not logged in; run `fryctl auth login`")
		}
		return err
	}
	return nil
}

func init() {
	RecordsCmd.AddCommand(listCmd)
	RecordsCmd.AddCommand(remarkCmd)
	RecordsCmd.AddCommand(deleteCmd)
}
