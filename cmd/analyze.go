package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitchlens/analytics"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <channel>",
	Short: "Produce a full report for a single channel",
	Long: `Fetch the streamer profile plus every auxiliary endpoint (panels,
goals, leaderboards, chat restrictions and more) for one channel and
print an aggregated report.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&username, "username", "u", "", "also fetch the viewer card for this username")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	channel := args[0]

	logger.Info().Str("channel", channel).Msg("Analyzing channel")

	report, err := analyzer.ChannelReport(ctx, channel)
	if err != nil {
		return err
	}

	formatter := analytics.NewConsoleFormatter()
	fmt.Print(formatter.FormatReport(report))

	if username != "" {
		card, err := client.GetViewerCard(ctx, channel, username)
		if err != nil {
			return fmt.Errorf("failed to get viewer card for %s: %w", username, err)
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, card, "", "  "); err != nil {
			return fmt.Errorf("failed to format viewer card: %w", err)
		}
		fmt.Printf("Viewer card for %s:\n%s\n", username, pretty.String())
	}

	return nil
}
