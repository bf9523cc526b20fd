package utils

import (
	"fmt"
	"time"
)

// FormatYtDuration formats d as HH:MM:SS; hours are not wrapped into days
func FormatYtDuration(d time.Duration) string {
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
