package dashboard

import (
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/models"
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

const hourAxis = "Hour"

// HourlyView plots the funnel, trip averages and ride status for each hour of the day.
func HourlyView(records []models.HourlyRecord) View {
	n := len(records)
	labels := make([]string, n)
	distance := make([]float64, n)
	fare := make([]float64, n)
	pickup := make([]float64, n)
	completed := make([]float64, n)
	cancelled := make([]float64, n)
	active := make([]float64, n)

	for i, r := range records {
		labels[i] = HourLabel(r.Hour)
		distance[i] = r.AvgDistance
		fare[i] = r.AvgBaseFare
		pickup[i] = r.AvgPickupDistance
		completed[i] = float64(r.Completed)
		cancelled[i] = float64(r.Cancelled)
		active[i] = float64(r.Active)
	}

	searches, quotes, rates := funnelColumns(n, func(i int) (int, int, float64) {
		f := records[i].Funnel
		return f.TotalSearches, f.QuotesReceived, f.ConversionRate
	})

	return View{
		Tab:     types.TabHourly,
		Heading: "Hourly Analysis",
		Description: "This section shows how search tries and driver quotes vary by hour of the day, " +
			"helping identify peak hours and times when driver availability may be limited.",
		Blocks: []Block{
			row(Panel{
				ID:     "hourly-funnel",
				Title:  "Search Tries and Quotes by Hour",
				Width:  12,
				Height: heightWide,
				Format: types.FormatMixed,
				Chart:  newFunnelChart("hourly-funnel", hourAxis, labels, searches, quotes, rates, true),
			}),
			row(
				Panel{
					ID:     "hourly-distance",
					Title:  "Avg Trip Distance by Hour",
					Width:  6,
					Height: heightPanel,
					Format: types.FormatKm,
					Chart: newBarChart("hourly-distance", hourAxis, labels, heightPanel,
						series{name: "Avg Distance (km)", color: colorSearches, values: distance}),
				},
				Panel{
					ID:     "hourly-fare",
					Title:  "Avg Base Fare by Hour",
					Width:  6,
					Height: heightPanel,
					Format: types.FormatCurrency,
					Chart: newBarChart("hourly-fare", hourAxis, labels, heightPanel,
						series{name: "Avg Base Fare (₹)", color: colorQuotes, values: fare}),
				},
			),
			row(
				Panel{
					ID:     "hourly-pickup",
					Title:  "Avg Pickup Distance by Hour",
					Width:  6,
					Height: heightPanel,
					Format: types.FormatMeters,
					Chart: newBarChart("hourly-pickup", hourAxis, labels, heightPanel,
						series{name: "Avg Pickup Distance (m)", color: colorRate, values: pickup}),
				},
				Panel{
					ID:     "hourly-status",
					Title:  "Ride Status by Hour",
					Width:  6,
					Height: heightPanel,
					Format: types.FormatCount,
					Chart: newBarChart("hourly-status", hourAxis, labels, heightPanel,
						series{name: "Completed", color: colorCompleted, values: completed, stack: "status"},
						series{name: "Cancelled", color: colorCancelled, values: cancelled, stack: "status"},
						series{name: "Active", color: colorActive, values: active, stack: "status"},
					),
				},
			),
		},
	}
}
