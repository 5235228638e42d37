package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// updateRepo is the GitHub repository releases are published to.
const updateRepo = "s0up4200/twitchlens"

var checkOnly bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update twitchlens to the latest version",
	Long:  `Check GitHub releases for a newer version and replace the current binary.`,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check-only", false, "check for a new version without updating")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if appVersion == "dev" {
		return fmt.Errorf("cannot update a development build, install a release build first")
	}

	current, err := semver.ParseTolerant(appVersion)
	if err != nil {
		return fmt.Errorf("could not parse version %s: %w", appVersion, err)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(updateRepo))
	if err != nil {
		return fmt.Errorf("error checking for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("✓ twitchlens is up to date (%s)\n", appVersion)
		return nil
	}

	if checkOnly {
		fmt.Printf("New version available: %s (current %s)\n", latest.Version(), appVersion)
		fmt.Println("Run 'twitchlens update' to install it.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}

	fmt.Printf("→ Updating to %s... ", latest.Version())
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		fmt.Println("✗ Failed")
		return fmt.Errorf("error updating binary: %w", err)
	}
	fmt.Println("✓ Done")

	return nil
}
