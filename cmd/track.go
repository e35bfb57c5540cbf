package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/becurrie/workday/internal"
	"github.com/spf13/cobra"
)

var trackCmd = &cobra.Command{
	Use:   "track <path>",
	Short: "Start tracking a git repository",
	Long: `Add a repository to the tracked list. The path must be an existing
directory containing a git work tree and must not already be tracked.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir()
		if err != nil {
			return err
		}
		settings, err := internal.LoadSettings(settingsPath(dir))
		if err != nil {
			return err
		}

		repoPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}

		if err := internal.ValidateRepository(repoPath); err != nil {
			return err
		}
		if err := internal.ValidateNotTracked(repoPath, settings); err != nil {
			return err
		}

		settings.Track(repoPath)
		if err := settings.Save(settingsPath(dir)); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Now tracking %s\n", repoPath)
		return nil
	},
}

var untrackCmd = &cobra.Command{
	Use:   "untrack <path>",
	Short: "Stop tracking a repository",
	Long: `Remove a repository from the tracked list. Its persisted reflog state is
kept; use "workday reset" to clear all local data.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir()
		if err != nil {
			return err
		}
		settings, err := internal.LoadSettings(settingsPath(dir))
		if err != nil {
			return err
		}

		repoPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve path: %w", err)
		}

		if !settings.Untrack(repoPath) {
			return fmt.Errorf("repository not tracked: %s", repoPath)
		}
		if err := settings.Save(settingsPath(dir)); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "No longer tracking %s\n", repoPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
	rootCmd.AddCommand(untrackCmd)
}
