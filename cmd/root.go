package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/twitchlens/analytics"
	"github.com/s0up4200/twitchlens/config"
	"github.com/s0up4200/twitchlens/twitchapi"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *twitchapi.Client
	analyzer *analytics.Analyzer

	appVersion   = "dev"
	appBuildTime = "unknown"

	// Command flags
	username string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "twitchlens",
	Short: "Inspect Twitch channels through the twitch-api8 RapidAPI gateway",
	Long: `twitchlens is a CLI tool that looks up public Twitch channel data
(stream status, viewers, panels, goals, leaderboards and more) through
the twitch-api8 RapidAPI gateway and renders reports, comparisons and
endpoint health checks.`,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// SetVersion records the version information stamped in at build time
func SetVersion(version, buildTime string) {
	appVersion = version
	appBuildTime = buildTime
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// These commands never need configuration or an API key
	switch cmd.Name() {
	case "version", "update", "help":
		return nil
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Twitch API client
	opts := []twitchapi.Option{twitchapi.WithTimeout(cfg.RapidAPI.Timeout)}
	if cfg.Logging.Level == "debug" {
		opts = append(opts, twitchapi.WithDebugLogging())
	}

	client, err = twitchapi.NewClient(cfg.RapidAPI.APIKey, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Twitch API client: %w", err)
	}

	analyzer = analytics.NewAnalyzer(client, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colored only on a real terminal
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("twitchlens %s\n", appVersion)
		fmt.Printf("  build time: %s\n", appBuildTime)
		fmt.Printf("  go runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
