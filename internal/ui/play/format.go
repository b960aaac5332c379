package play

import (
	"strconv"
	"time"
)

// formatCountdown renders a duration as MM:SS, floored at zero.
func formatCountdown(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	total := int(remaining.Seconds())
	return pad2(total/60) + ":" + pad2(total%60)
}

// formatPercent renders a percentage without trailing zeros.
func formatPercent(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64) + "%"
}

// formatIndex formats a question index for display.
func formatIndex(index int) string {
	return "Q" + pad2(index+1)
}

// shortID abbreviates an attempt id for the header.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}
