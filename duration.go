package cookfmt

import (
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// formatMinutes renders a minute count the way a cook reads it:
// "45m", "1h 30m", "1day 2h".
func formatMinutes(minutes int) string {
	if minutes <= 0 {
		return "0m"
	}
	days := minutes / minutesPerDay
	hours := (minutes % minutesPerDay) / 60
	mins := minutes % 60
	parts := make([]string, 0, 3)
	if days == 1 {
		parts = append(parts, "1day")
	} else if days > 1 {
		parts = append(parts, strconv.Itoa(days)+"days")
	}
	if hours > 0 {
		parts = append(parts, strconv.Itoa(hours)+"h")
	}
	if mins > 0 {
		parts = append(parts, strconv.Itoa(mins)+"m")
	}
	return strings.Join(parts, " ")
}
