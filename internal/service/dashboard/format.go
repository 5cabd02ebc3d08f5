package dashboard

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders an integer with thousands separators: 12345 -> "12,345".
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatPercent renders a percentage with two decimals: 20 -> "20.00%".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.2f%%", finite(v))
}

// FormatCurrency renders a fare in rupees with two decimals.
func FormatCurrency(v float64) string {
	return fmt.Sprintf("₹%.2f", finite(v))
}

func FormatKm(v float64) string {
	return fmt.Sprintf("%.2f km", finite(v))
}

func FormatMeters(v float64) string {
	return fmt.Sprintf("%.2f meters", finite(v))
}

// HourLabel renders an hour of day as "HH:00".
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

// ConversionRate returns quotes/searches as a percentage, or 0 when there
// were no searches.
func ConversionRate(quotes, searches int) float64 {
	if searches == 0 {
		return 0
	}
	return float64(quotes) / float64(searches) * 100
}

// finite maps NaN and infinities to 0 so they never reach the chart layer.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
