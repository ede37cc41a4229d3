package cmd

import (
	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/scaletrainer/internal/scales"
	"github.com/abhisek/scaletrainer/internal/ui/components"
)

var scalesCmd = &cobra.Command{
	Use:   "scales [key]",
	Short: "Print the major scale table",
	Long:  "Print every major scale, or only the scale for the given key.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := scales.Keys()
		if len(args) == 1 {
			if !scales.IsKey(args[0]) {
				return &scales.InvalidKeyError{Key: args[0]}
			}
			keys = []string{args[0]}
		}
		lipgloss.Fprintln(cmd.OutOrStdout(), components.ScaleGrid(keys, ""))
		return nil
	},
}

func init() {
	scalesCmd.ValidArgs = scales.Keys()
}
