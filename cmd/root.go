package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/becurrie/workday/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	dataDir string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "workday",
	Short: "Track how your day was spent across git branches",
	Long: `workday mines the local reflog of each tracked git repository and turns
branch checkouts into a daily itinerary of work sessions.

Every checkout entry in a repository's reflog marks a branch switch. workday
parses those entries incrementally, reconstructs the time spent on each
branch today (bridging from yesterday's last switch), and emits calendar-ready
events, either one per branch switch or a single merged daily event.

Quick Start:
  workday track ~/src/my-repo        # Start tracking a repository
  workday parse                      # Refresh reflog state for all repos
  workday itinerary                  # Generate today's itinerary
  workday itinerary --format md      # Export as Markdown`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Custom data directory (settings and reflog state)")

	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// resolveDataDir returns the data directory, defaulting to ~/.workday.
func resolveDataDir() (string, error) {
	if dataDir != "" {
		return dataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".workday"), nil
}

func settingsPath(dir string) string {
	return filepath.Join(dir, "settings.yaml")
}

func databasePath(dir string) string {
	return filepath.Join(dir, "workday.db")
}

// openApp wires up the settings, store, ingestor and builder for a command.
// The returned cleanup closes the database.
func openApp() (*internal.Settings, *internal.Store, *internal.Builder, func(), error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, nil, nil, nil, err
	}

	settings, err := internal.LoadSettings(settingsPath(dir))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	db, err := internal.OpenDatabase(databasePath(dir))
	if err != nil {
		return nil, nil, nil, nil, err
	}

	store := internal.NewStore(db)
	ingestor := internal.NewIngestor(internal.GitReflogSource{}, store)
	builder := internal.NewBuilder(ingestor, settings)

	cleanup := func() {
		if err := store.Close(); err != nil {
			internal.LogWarn("Failed to close database: %v", err)
		}
	}
	return settings, store, builder, cleanup, nil
}
