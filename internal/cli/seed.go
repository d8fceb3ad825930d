package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"social-auction/internal/seed"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the demo dataset as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(seed.Dataset(time.Now())); err != nil {
				return fmt.Errorf("encode seed data: %w", err)
			}
			return nil
		},
	}
}
