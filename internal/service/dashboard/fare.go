package dashboard

import (
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

var fareLayout = bucketLayout{
	tab:     types.TabFare,
	prefix:  "fare",
	heading: "Fare Analysis",
	description: "This section analyzes how search try to driver quote conversion rates vary based on fare amount. " +
		"Higher fare rides might attract more driver interest, while lower fare rides might have different acceptance patterns.",
	axis:    "Fare Range",
	subject: "Fare Range",
	insights: []string{
		"Observe how conversion rates vary for different fare amounts",
		"Identify fare ranges where drivers are more likely to accept rides",
		"Understand if higher fare rides consistently attract more driver quotes",
		`Determine if there are "sweet spot" fare ranges with optimal conversion rates`,
		"Identify fare ranges that might need incentives to improve driver acceptance",
	},
}

// FareView plots the funnel per base fare bucket using the stored conversion rates.
func FareView(buckets []models.FareBucket) View {
	labels := make([]string, len(buckets))
	for i, b := range buckets {
		labels[i] = b.FareRange
	}

	searches, quotes, rates := funnelColumns(len(buckets), func(i int) (int, int, float64) {
		f := buckets[i].Funnel
		return f.TotalSearches, f.QuotesReceived, f.ConversionRate
	})

	return fareLayout.view(labels, searches, quotes, rates)
}
