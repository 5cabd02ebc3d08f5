package dashboard

import (
	"github.com/Temutjin2k/rickshaw-analytics/internal/domain/types"
)

// bucketLayout describes the shared fare and pickup page: funnel, rate line,
// insights and the search volume distribution.
type bucketLayout struct {
	tab         types.Tab
	prefix      string
	heading     string
	description string
	axis        string
	subject     string
	insights    []string
}

func (l bucketLayout) view(labels []string, searches, quotes, rates []float64) View {
	return View{
		Tab:         l.tab,
		Heading:     l.heading,
		Description: l.description,
		Blocks: []Block{
			row(Panel{
				ID:     l.prefix + "-funnel",
				Title:  "Search Tries and Quotes by " + l.subject,
				Width:  12,
				Height: heightWide,
				Format: types.FormatMixed,
				Chart:  newFunnelChart(l.prefix+"-funnel", l.axis, labels, searches, quotes, rates, false),
			}),
			row(Panel{
				ID:     l.prefix + "-rate",
				Title:  "Conversion Rate by " + l.subject,
				Width:  12,
				Height: heightPanel,
				Format: types.FormatPercent,
				Chart: newLineChart(l.prefix+"-rate", l.axis, labels, heightPanel,
					series{name: "Conversion Rate (%)", color: colorRate, values: rates}),
			}),
			insights("Key Insights - "+l.heading, l.insights...),
			row(Panel{
				ID:     l.prefix + "-volume",
				Title:  "Distribution of Rides by " + l.subject,
				Width:  12,
				Height: heightPanel,
				Format: types.FormatCount,
				Chart: newBarChart(l.prefix+"-volume", l.axis, labels, heightPanel,
					series{name: "Total Search Tries", color: colorSearches, values: searches}),
			}),
		},
	}
}
