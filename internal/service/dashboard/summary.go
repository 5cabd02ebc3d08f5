package dashboard

import (
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// StatusBreakdown splits all records by ride status.
func StatusBreakdown(s models.Summary) []Slice {
	return []Slice{
		{Name: "Completed", Value: s.Completed, Color: colorCompleted},
		{Name: "Cancelled", Value: s.Cancelled, Color: colorCancelled},
		{Name: "Active", Value: s.Active, Color: colorActive},
	}
}

// QuoteBreakdown splits searches into those that got a driver quote and those that did not.
func QuoteBreakdown(s models.Summary) []Slice {
	return []Slice{
		{Name: "Quotes Received", Value: s.TotalQuotes, Color: colorCompleted},
		{Name: "No Quotes", Value: s.TotalSearches - s.TotalQuotes, Color: colorCancelled},
	}
}

// SummaryView maps the headline aggregates to four cards and two pies.
func SummaryView(s models.Summary) View {
	return View{
		Tab:     types.TabSummary,
		Heading: "Summary Statistics",
		Cards: []Card{
			{Title: "Total Searches", Value: FormatCount(s.TotalSearches)},
			{Title: "Total Quotes", Value: FormatCount(s.TotalQuotes)},
			{Title: "Conversion Rate", Value: FormatPercent(s.OverallConversionRate)},
			{Title: "Total Records", Value: FormatCount(s.TotalRecords)},
		},
		Blocks: []Block{
			row(
				Panel{
					ID:     "summary-status",
					Title:  "Status Distribution",
					Width:  6,
					Height: heightPanel,
					Format: types.FormatCount,
					Chart:  newPieChart("summary-status", "Status", StatusBreakdown(s)),
				},
				Panel{
					ID:     "summary-quotes",
					Title:  "Quote Conversion",
					Width:  6,
					Height: heightPanel,
					Format: types.FormatCount,
					Chart:  newPieChart("summary-quotes", "Quotes", QuoteBreakdown(s)),
				},
			),
		},
	}
}
