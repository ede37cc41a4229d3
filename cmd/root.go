package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "scaletrainer",
	Short: "Major scale degree trainer",
	Long:  "scaletrainer asks for the note at a random degree of a major scale and times your answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(scalesCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags read by resolveConfig.
func addConfigFlags(flags *pflag.FlagSet) {
	flags.String("key", "", "Scale selected at startup (overrides SCALETRAINER_KEY)")
	flags.Duration("delay", 0, "How long feedback stays up, e.g. 1s (overrides SCALETRAINER_FEEDBACK_DELAY)")
	flags.Int64("seed", 0, "Seed for the degree generator; 0 uses the clock (overrides SCALETRAINER_SEED)")
	flags.String("log-file", "", "Write a debug log to this file (overrides SCALETRAINER_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides SCALETRAINER_LOG_LEVEL)")
}
