package agents

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
	Short: "Delete an agent account",
	Long: `Deletes an agent account. Administrator accounts cannot be deleted;
the server rejects the attempt.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := requireAdmin(cfg); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid agent id %q", args[0])
		}

		if !deleteYes && !cfg.NonInteractive {
			ok, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete agent %d?", id))
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
		if err := api.DeleteAgent(cmd.Context(), id); err != nil {
			return fmt.Errorf("failed to delete agent: %w", err)
		}

		pterm.Success.Printfln("Agent %d deleted", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
