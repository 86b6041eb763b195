package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Xausdorf/pix-brcode/internal/domain/brcode"
)

func newKeygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a new RANDOM key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), brcode.NewRandomKey())
			return err
		},
	}
}
