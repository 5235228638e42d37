package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitchlens/analytics"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <channel>",
	Short: "Probe every gateway endpoint for a channel",
	Long: `Call each supported endpoint once for the given channel and report
which ones answer. Useful to verify an API key and to see which data
the gateway currently serves for a channel.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&username, "username", "u", "", "include the viewer card check for this username")
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	channel := args[0]

	logger.Info().Str("channel", channel).Msg("Checking endpoints")

	checks := analyzer.CheckEndpoints(ctx, channel, username)

	fmt.Printf("Endpoint health for %s:\n", channel)

	formatter := analytics.NewConsoleFormatter()
	fmt.Print(formatter.FormatChecks(checks))

	return nil
}
