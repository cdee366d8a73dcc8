package records

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
)

var remarkCmd = &cobra.Command{
	Use:   "remark <id> <remark>",
	Short: "Set the remark on a fry record",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := requireAuth(cfg); err != nil {
			return err
		}

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid record id %q", args[0])
		}
		remark := strings.Join(args[1:], " ")

		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}
		if err := api.UpdateRemark(cmd.Context(), id, remark); err != nil {
			return fmt.Errorf("failed to update remark: %w", err)
		}

		pterm.Success.Printfln("Remark updated on record %d", id)
		return nil
	},
}
