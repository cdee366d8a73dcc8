package agents

import (
	"errors"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/pkg/sdk"
)

var createPassword string

var createCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create an agent account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := requireAdmin(cfg); err != nil {
			return err
		}

		username := args[0]
		password := createPassword
		if password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--password is required in non-interactive mode")
			}
			var err error
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password for " + username)
			if err != nil {
				return err
			}
		}
		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		agent, err := api.CreateAgent(cmd.Context(), username, password)
		if err != nil {
			var apiErr *sdk.APIError
			if errors.As(err, &apiErr) {
				return fmt.Errorf("failed to create agent: %s", apiErr.Message)
			}
			return err
		}

		pterm.Success.Printfln("Agent %s created (id %d)", agent.Username, agent.ID)
		if agent.InviteCode != "" {
			pterm.Info.Printfln("Invite code: %s", agent.InviteCode)
		}
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createPassword, "password", "p", "", "Password for the new agent (prompted when omitted)")
}
