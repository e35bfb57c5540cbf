package cmd

import (
	"fmt"
	"strconv"

	"github.com/becurrie/workday/internal"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit settings",
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir()
		if err != nil {
			return err
		}
		settings, err := internal.LoadSettings(settingsPath(dir))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "itinerary-type    %s\n", settings.ItineraryType)
		fmt.Fprintf(out, "minimum-duration  %d minutes\n", settings.MinimumEventDuration)
		fmt.Fprintf(out, "start-time        %s\n", formatHour(settings.HardcodedStartTime))
		fmt.Fprintf(out, "end-time          %s\n", formatHour(settings.HardcodedEndTime))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting. Supported keys and values:

  itinerary-type    multiple_events | single_event
  minimum-duration  5 | 10 | 15 | 30  (minutes)
  start-time        6 | 7 | 8 | none  (24h clock)
  end-time          15 | 16 | 17 | none`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDataDir()
		if err != nil {
			return err
		}
		settings, err := internal.LoadSettings(settingsPath(dir))
		if err != nil {
			return err
		}

		key, value := args[0], args[1]
		switch key {
		case "itinerary-type":
			settings.ItineraryType = internal.ItineraryType(value)
		case "minimum-duration":
			minutes, err := strconv.Atoi(value)
			if err != nil {
				return &internal.ConfigError{Key: "minimum_event_duration", Value: value}
			}
			settings.MinimumEventDuration = minutes
		case "start-time":
			hour, err := parseHour(value)
			if err != nil {
				return &internal.ConfigError{Key: "hardcoded_start_time", Value: value}
			}
			settings.HardcodedStartTime = hour
		case "end-time":
			hour, err := parseHour(value)
			if err != nil {
				return &internal.ConfigError{Key: "hardcoded_end_time", Value: value}
			}
			settings.HardcodedEndTime = hour
		default:
			return fmt.Errorf("unknown setting: %s", key)
		}

		if err := settings.Save(settingsPath(dir)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s set to %s\n", key, value)
		return nil
	},
}

func parseHour(value string) (*int, error) {
	if value == "none" {
		return nil, nil
	}
	hour, err := strconv.Atoi(value)
	if err != nil {
		return nil, err
	}
	return &hour, nil
}

func formatHour(hour *int) string {
	if hour == nil {
		return "none"
	}
	return fmt.Sprintf("%d:00", *hour)
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
