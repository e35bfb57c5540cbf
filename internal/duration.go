package internal

import (
	"fmt"
	"time"
)

// FormatDuration renders a duration as "08h 04m 02s" for display and
// markdown output.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	return fmt.Sprintf("%02dh %02dm %02ds", hours, minutes, seconds)
}
