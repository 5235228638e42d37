package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitchlens/analytics"
	"github.com/s0up4200/twitchlens/filter"
)

var (
	filterExpr string
	preset     string
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare [channels...]",
	Short: "Compare live status and viewers across channels",
	Long: `Look up several channels concurrently and print a comparison table.
Channels default to the list from the config file. The result can be
narrowed with a filter expression such as 'Live && Viewers > 1000'.`,
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	compareCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	channels := args
	if len(channels) == 0 {
		channels = cfg.Channels
	}
	if len(channels) == 0 {
		return fmt.Errorf("no channels specified, pass them as arguments or set 'channels' in config")
	}

	logger.Info().Strs("channels", channels).Msg("Comparing channels")

	statuses, err := analyzer.CompareChannels(ctx, channels)
	if err != nil {
		return err
	}

	statuses, err = applyFilter(statuses)
	if err != nil {
		return err
	}
	if len(statuses) == 0 {
		fmt.Println("No channels match the filter criteria.")
		return nil
	}

	formatter := analytics.NewConsoleFormatter()
	fmt.Print(formatter.FormatComparison(statuses))

	return nil
}

// applyFilter narrows comparison rows by flag, preset or config default
func applyFilter(statuses []analytics.ChannelStatus) ([]analytics.ChannelStatus, error) {
	// Priority: command line filter > preset > config default
	if filterExpr != "" {
		compiled, err := filter.CompileFilter(filterExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return filter.Apply(compiled, statuses), nil
	}

	if preset != "" {
		manager := filter.NewManager()
		if err := manager.RegisterAll(cfg.Filter.Presets); err != nil {
			return nil, err
		}
		if _, exists := manager.Get(preset); !exists {
			return nil, fmt.Errorf("preset '%s' not found in config", preset)
		}
		return manager.Apply(preset, statuses)
	}

	if cfg.Filter.Default != "" {
		compiled, err := filter.CompileFilter(cfg.Filter.Default)
		if err != nil {
			return nil, fmt.Errorf("invalid default filter in config: %w", err)
		}
		return filter.Apply(compiled, statuses), nil
	}

	return statuses, nil
}
