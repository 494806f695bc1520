package commands

import (
	"github.com/paulohenriquegf/garmin-statistics/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [export]",
		Short: "Summarize a Garmin Connect export",
		Long: `Reads a Garmin Connect data export (a directory or a .zip archive),
summarizes activities, sleep and wellness data and renders the result.
In a terminal the summary opens as an interactive viewer; in CI or with
--ci it prints as a plain report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")
			outputMode, _ := cmd.Flags().GetString("output-mode")
			ci, _ := cmd.Flags().GetBool("ci")
			watch, _ := cmd.Flags().GetBool("watch")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Stats(cmd.Context(), args[0], app.StatsOptions{
				OutputMode: outputMode,
				NoCache:    noCache,
				Watch:      watch,
			})
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the summary cache and re-read the export")
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().BoolP("watch", "w", false, "Re-summarize and re-render when the export changes")
	return cmd
}
