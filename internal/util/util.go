// Package util formats sizes and durations for user-facing messages.
package util

import (
	"fmt"
	"time"
)

var byteUnits = [...]string{"KB", "MB", "GB", "TB", "PB", "EB"}

// FormatBytes renders n with a binary unit and one decimal, e.g. "5.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(byteUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, byteUnits[unit])
}

// FormatDuration renders d rounded to the second in its two largest units,
// e.g. "45s", "2m30s" or "1h30m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h, m, s := int(d/time.Hour), int(d/time.Minute)%60, int(d/time.Second)%60

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
