package dashboard

import (
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

var pickupLayout = bucketLayout{
	tab:     types.TabPickup,
	prefix:  "pickup",
	heading: "Pickup Distance Analysis",
	description: "This section analyzes how search try to driver quote conversion rates vary based on the distance " +
		"to pickup location. Shorter pickup distances may have higher acceptance rates from drivers.",
	axis:    "Pickup Distance",
	subject: "Pickup Distance",
	insights: []string{
		"Observe how conversion rates vary based on distance to pickup location",
		"Identify if there's a threshold distance beyond which driver acceptance drops significantly",
		"Understand the relationship between pickup distance and quote conversion",
		"Determine optimal pickup distance ranges for maximizing driver quotes",
		"Identify pickup distance ranges that might need incentives to improve driver acceptance",
	},
}

// RecomputeConversion returns a copy of the buckets with every conversion rate
// derived from the counters. The stored rate is ignored.
func RecomputeConversion(buckets []models.PickupBucket) []models.PickupBucket {
	out := make([]models.PickupBucket, len(buckets))
	for i, b := range buckets {
		b.ConversionRate = ConversionRate(b.QuotesReceived, b.TotalSearches)
		out[i] = b
	}
	return out
}

// PickupView plots the funnel per pickup distance bucket with recomputed rates.
func PickupView(buckets []models.PickupBucket) View {
	fixed := RecomputeConversion(buckets)

	labels := make([]string, len(fixed))
	for i, b := range fixed {
		labels[i] = b.PickupRange
	}

	searches, quotes, rates := funnelColumns(len(fixed), func(i int) (int, int, float64) {
		f := fixed[i].Funnel
		return f.TotalSearches, f.QuotesReceived, f.ConversionRate
	})

	return pickupLayout.view(labels, searches, quotes, rates)
}
