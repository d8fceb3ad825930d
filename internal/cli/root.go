package cli

import (
	"social-auction/services/auction/handler"
	"social-auction/utils"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the social-auction command tree. Running it without a
// subcommand starts the API server.
func NewRootCmd() *cobra.Command {
	opts := &serveOptions{}

	rootCmd := &cobra.Command{
		Use:   "social-auction",
		Short: "Social auction REST API",
		Long: `Social auction is a demo REST backend where users browse auctions,
place bids and post comments. All data lives in memory and is seeded at startup.`,
		Version:       handler.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	bindServeFlags(rootCmd, opts)
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSeedCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		utils.Fatal("social-auction exited", map[string]any{"error": err.Error()})
	}
}
