package records

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/pkg/sdk"
)

var (
	listPage     int
	listPageSize int
	listDate     string
	listPhone    string
	listAgent    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List fry records",
	Long: `Lists one page of fry records. Administrators see every record; agents
only see records attributed to them regardless of the --agent filter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := requireAuth(cfg); err != nil {
			return err
		}

		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		page, err := api.ListFryRecords(cmd.Context(), sdk.ListFryRecordsInput{
			Page:     listPage,
			PageSize: listPageSize,
			Date:     listDate,
			Phone:    listPhone,
			Agent:    listAgent,
		})
		if err != nil {
			return fmt.Errorf("failed to list records: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPHONE\tSTATE_ID\tINVITE_CODE\tREMARK\tCREATED")
		for _, rec := range page.Records {
			invite := rec.InviteCode
			if invite == "" {
				invite = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				rec.ID, rec.Phone, rec.StateID, invite,
				truncateRemark(rec.Remark), formatTimestamp(rec.CreatedAt))
		}
		w.Flush()

		pterm.Info.Printfln("page %d of %d (%d total)", listPage, pageCount(page.Total, listPageSize), page.Total)
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 20, "Records per page (max 100)")
	listCmd.Flags().StringVar(&listDate, "date", "", "Filter by capture date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listPhone, "phone", "", "Filter by phone number")
	listCmd.Flags().StringVar(&listAgent, "agent", "", "Filter by agent username (administrators only)")
}
