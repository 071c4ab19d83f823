package tui

import "fmt"

// FormatFlights formats a flight count.
func FormatFlights(n int) string {
	return fmt.Sprintf("%d flights", n)
}

// FormatFeet formats a height in feet with two decimals.
func FormatFeet(feet float64) string {
	return fmt.Sprintf("%.2f ft", feet)
}

// FormatPercentage formats a ratio (0-1) as percentage.
func FormatPercentage(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

// FormatAverage formats a flights-per-bucket mean.
func FormatAverage(avg float64) string {
	return fmt.Sprintf("%.2f flights", avg)
}
