package agents

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/pkg/sdk"
)

var (
	listPage     int
	listPageSize int
	listUsername string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List agent accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := requireAdmin(cfg); err != nil {
			return err
		}

		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		page, err := api.ListAgents(cmd.Context(), sdk.ListAgentsInput{
			Page:     listPage,
			PageSize: listPageSize,
			Username: listUsername,
		})
		if err != nil {
			return fmt.Errorf("failed to list agents: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tINVITE_CODE\tCREATED")
		for _, agent := range page.Agents {
			invite := agent.InviteCode
			if invite == "" {
				invite = "-"
			}
			created := "-"
			if agent.CreatedAt != 0 {
				created = time.Unix(agent.CreatedAt, 0).Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", agent.ID, agent.Username, invite, created)
		}
		w.Flush()

		pterm.Info.Printfln("%d agent(s) total", page.Total)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 20, "Agents per page (max 100)")
	listCmd.Flags().StringVar(&listUsername, "username", "", "Filter by username")
}
