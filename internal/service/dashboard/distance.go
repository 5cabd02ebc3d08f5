package dashboard

import (
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// DistanceView plots the funnel and average fare per trip distance bucket.
func DistanceView(buckets []models.DistanceBucket) View {
	n := len(buckets)
	labels := make([]string, n)
	fares := make([]float64, n)
	for i, b := range buckets {
		labels[i] = b.DistanceRange
		fares[i] = b.AvgBaseFare
	}

	searches, quotes, rates := funnelColumns(n, func(i int) (int, int, float64) {
		f := buckets[i].Funnel
		return f.TotalSearches, f.QuotesReceived, f.ConversionRate
	})

	const axis = "Distance Range"

	return View{
		Tab:     types.TabDistance,
		Heading: "Distance Analysis",
		Description: "This section analyzes how search try to driver quote conversion rates vary based on trip distance. " +
			"Longer trips may have different conversion patterns compared to shorter ones.",
		Blocks: []Block{
			row(Panel{
				ID:     "distance-funnel",
				Title:  "Search Tries and Quotes by Distance Range",
				Width:  12,
				Height: heightWide,
				Format: types.FormatMixed,
				Chart:  newFunnelChart("distance-funnel", axis, labels, searches, quotes, rates, false),
			}),
			row(
				Panel{
					ID:     "distance-rate",
					Title:  "Conversion Rate by Distance Range",
					Width:  6,
					Height: heightPanel,
					Format: types.FormatPercent,
					Chart: newLineChart("distance-rate", axis, labels, heightPanel,
						series{name: "Conversion Rate (%)", color: colorRate, values: rates}),
				},
				Panel{
					ID:     "distance-fare",
					Title:  "Average Fare by Distance Range",
					Width:  6,
					Height: heightPanel,
					Format: types.FormatCurrency,
					Chart: newBarChart("distance-fare", axis, labels, heightPanel,
						series{name: "Avg Base Fare (₹)", color: colorQuotes, values: fares}),
				},
			),
			insights("Key Insights - Distance Analysis",
				"Observe how conversion rates vary for different trip distances",
				"Identify distance ranges where drivers are more likely to accept rides",
				"Note the relationship between trip distance and fare amount",
				"Understand which distance ranges might need incentives to improve conversion",
			),
		},
	}
}
