package cmd

import (
	"fmt"

	"github.com/becurrie/workday/internal"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Refresh reflog state for all tracked repositories",
	Long: `Re-read the reflog of every tracked repository and merge any new checkout
entries into the local store. Repositories that are currently unreachable are
skipped without losing their stored history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, store, _, cleanup, err := openApp()
		if err != nil {
			return err
		}
		defer cleanup()

		if len(settings.Repositories) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No repositories tracked.")
			return nil
		}

		ingestor := internal.NewIngestor(internal.GitReflogSource{}, store)
		for _, repo := range settings.Repositories {
			state, err := ingestor.Refresh(repo)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d checkout entries\n", repo, len(state.Parsed))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
