package cmd

import (
	"fmt"

	"github.com/becurrie/workday/internal"
	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all local data",
	Long: `Clear every repository's stored reflog state and restore default settings.
This cannot be undone; pass --force to confirm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForce {
			return fmt.Errorf("refusing to delete local data without --force")
		}

		dir, err := resolveDataDir()
		if err != nil {
			return err
		}

		db, err := internal.OpenDatabase(databasePath(dir))
		if err != nil {
			return err
		}
		store := internal.NewStore(db)
		defer func() { _ = store.Close() }()

		if err := store.Reset(); err != nil {
			return err
		}
		if err := internal.DefaultSettings().Save(settingsPath(dir)); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Local data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Confirm deletion of all local data")
	rootCmd.AddCommand(resetCmd)
}
