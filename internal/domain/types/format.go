package types

// ValueFormat is the tooltip/value formatting applied to a chart panel.
type ValueFormat string

const (
	FormatCount    ValueFormat = "count"
	FormatPercent  ValueFormat = "percent"
	FormatCurrency ValueFormat = "currency"
	FormatKm       ValueFormat = "km"
	FormatMeters   ValueFormat = "meters"
	// FormatMixed leaves the tooltip to the chart library defaults.
	FormatMixed ValueFormat = "mixed"
)
