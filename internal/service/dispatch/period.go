package dispatch

import "time"

func formatPeriod(from, to *time.Time) string {
	left, right := "...", "..."
	if from != nil {
		left = from.Format("2006-01-02")
	}
	if to != nil {
		right = to.Format("2006-01-02")
	}
	return left + " - " + right
}
