package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zlzmm5188/fryctl/cmd/fryctl/cmd/agents"
	"github.com/zlzmm5188/fryctl/cmd/fryctl/cmd/auth"
	"github.com/zlzmm5188/fryctl/cmd/fryctl/cmd/records"
	"github.com/zlzmm5188/fryctl/internal/client"
	"github.com/zlzmm5188/fryctl/internal/config"
	"github.com/zlzmm5188/fryctl/internal/logger"
)

var (
	serverURL      string
	cfgFile        string
	logLevel       string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "fryctl",
	Short: "Fry console CLI - admin console client",
	Long: `fryctl is the command-line client for the fry console API. Use it to log
in, browse and annotate fry records, and manage agent accounts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check for FRYCTL_NON_INTERACTIVE environment variable
		if os.Getenv("FRYCTL_NON_INTERACTIVE") == "1" {
			nonInteractive = true
		}

		fileCfg, err := config.LoadFile(cfgFile)
		if err != nil {
			return err
		}

		// Flags win over the config file, the config file over defaults.
		if !cmd.Flags().Changed("server") && fileCfg.ServerURL != "" {
			serverURL = fileCfg.ServerURL
		}
		if !cmd.Flags().Changed("log-level") && fileCfg.LogLevel != "" {
			logLevel = fileCfg.LogLevel
		}

		log := logger.New(logLevel)
		timeout := time.Duration(fileCfg.TimeoutSeconds) * time.Second

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			Logger:         log,
			Provider:       client.NewProvider(serverURL, timeout, log),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "Fry console API server URL")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fryctl/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via FRYCTL_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(records.RecordsCmd)
	rootCmd.AddCommand(agents.AgentsCmd)
}
