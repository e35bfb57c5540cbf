package cmd

import (
	"fmt"

	"github.com/becurrie/workday/internal"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	repoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "List tracked repositories",
	Long:  `List every tracked repository with its stored checkout entry count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, store, _, cleanup, err := openApp()
		if err != nil {
			return err
		}
		defer cleanup()

		out := cmd.OutOrStdout()

		if len(settings.Repositories) == 0 {
			fmt.Fprintln(out, headerStyle.Render("No repositories tracked"))
			fmt.Fprintln(out, mutedStyle.Render("Use \"workday track <path>\" to add one."))
			return nil
		}

		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Tracking %d repositor%s", len(settings.Repositories), plural(len(settings.Repositories), "y", "ies"))))
		fmt.Fprintln(out)

		for _, repo := range settings.Repositories {
			count, err := store.EntryCount(repo)
			if err != nil {
				internal.LogWarn("Failed to count entries for %s: %v", repo, err)
			}
			fmt.Fprintf(out, "  %s %s\n",
				repoStyle.Render(repo),
				countStyle.Render(fmt.Sprintf("(%d checkout entries)", count)))
		}
		return nil
	},
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}

func init() {
	rootCmd.AddCommand(reposCmd)
}
