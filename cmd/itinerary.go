package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/becurrie/workday/internal"
	"github.com/becurrie/workday/internal/export"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	itineraryFormat string
	itineraryOutput string
)

var (
	branchStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	issueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("135")).
			Italic(true)

	durationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

var itineraryCmd = &cobra.Command{
	Use:   "itinerary [path]",
	Short: "Generate today's itinerary",
	Long: `Reconstruct today's branch sessions for one repository (or all tracked
repositories when no path is given) and display or export the result.

Each session spans two consecutive branch checkouts; the final session runs
until now. Sessions shorter than the configured minimum duration are dropped,
and configured start/end hours clamp the reported workday window.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, _, builder, cleanup, err := openApp()
		if err != nil {
			return err
		}
		defer cleanup()

		var repos []string
		if len(args) == 1 {
			repoPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}
			repos = []string{repoPath}
		} else {
			repos = settings.Repositories
		}

		if len(repos) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No repositories tracked.")
			return nil
		}

		for _, repo := range repos {
			itinerary, err := builder.Generate(repo)
			if errors.Is(err, internal.ErrNoPriorActivity) {
				// Actionable, not fatal: the repository simply has nothing
				// logged yesterday to bridge from.
				fmt.Fprintf(cmd.OutOrStdout(), "%s: no activity recorded yesterday, skipping\n", repo)
				continue
			}
			if err != nil {
				return err
			}

			if itineraryFormat == "" {
				displayItinerary(cmd, itinerary)
				continue
			}
			if err := exportItinerary(cmd, itinerary); err != nil {
				return err
			}
		}
		return nil
	},
}

func displayItinerary(cmd *cobra.Command, itinerary *internal.Itinerary) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Itinerary for %s", itinerary.Repository)))
	fmt.Fprintln(out)

	if len(itinerary.Events) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("  No reportable sessions today."))
		return
	}

	for _, event := range itinerary.Events {
		window := fmt.Sprintf("%s - %s", event.Start.Format("15:04"), event.End.Format("15:04"))
		if len(event.Branches) > 0 {
			fmt.Fprintf(out, "  %s  %s %s\n",
				mutedStyle.Render(window),
				branchStyle.Render(fmt.Sprintf("%d issues worked on", len(event.Branches))),
				durationStyle.Render(internal.FormatDuration(event.Duration)))
			for _, branch := range event.Branches {
				fmt.Fprintf(out, "      %s %s\n",
					branchStyle.Render(branch),
					durationStyle.Render(internal.FormatDuration(event.Durations[branch])))
			}
			continue
		}
		fmt.Fprintf(out, "  %s  %s %s %s\n",
			mutedStyle.Render(window),
			branchStyle.Render(event.Branch),
			issueStyle.Render(event.Issue),
			durationStyle.Render(internal.FormatDuration(event.Duration)))
	}
}

func exportItinerary(cmd *cobra.Command, itinerary *internal.Itinerary) error {
	exporter, err := export.NewExporter(itineraryFormat)
	if err != nil {
		return err
	}

	if itineraryOutput == "" {
		return exporter.Export(itinerary, cmd.OutOrStdout())
	}

	name := fmt.Sprintf("itinerary_%s.%s", itinerary.GeneratedAt.Format("2006-01-02"), exporter.Extension())
	path := filepath.Join(itineraryOutput, name)
	if err := os.MkdirAll(itineraryOutput, 0755); err != nil {
		return &internal.ExportError{Format: itineraryFormat, Path: path, Err: err}
	}

	f, err := os.Create(path)
	if err != nil {
		return &internal.ExportError{Format: itineraryFormat, Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	if err := exporter.Export(itinerary, f); err != nil {
		return &internal.ExportError{Format: itineraryFormat, Path: path, Err: err}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}

func init() {
	itineraryCmd.Flags().StringVarP(&itineraryFormat, "format", "f", "", "Export format (json, yaml, jsonl, md); default is a styled table")
	itineraryCmd.Flags().StringVarP(&itineraryOutput, "output", "o", "", "Directory to write exported files to (default stdout)")
	rootCmd.AddCommand(itineraryCmd)
}
