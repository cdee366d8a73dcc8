package records

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a fry record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := requireAuth(cfg); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}

		if !deleteYes && !cfg.NonInteractive {
			ok, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete record %d?", id))
			if err != nil {
				return err
			}
			if !ok {
				pterm.Info.Println("Aborted")
				return nil
			}
		}

		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		if err := api.DeleteFryRecord(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		pterm.Success.Printfln("Record %d deleted", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
