package models

// Document is the pre-aggregated dataset produced by the offline generator.
// It is immutable once loaded.
type Document struct {
	Summary            Summary          `json:"summary"`
	HourlyData         []HourlyRecord   `json:"hourlyData"`
	DistanceData       []DistanceBucket `json:"distanceData"`
	FareData           []FareBucket     `json:"fareData"`
	PickupDistanceData []PickupBucket   `json:"pickupDistanceData"`
}

type Summary struct {
	TotalSearches         int     `json:"totalSearches"`
	TotalQuotes           int     `json:"totalQuotes"`
	TotalRecords          int     `json:"totalRecords"`
	Completed             int     `json:"completed"`
	Cancelled             int     `json:"cancelled"`
	Active                int     `json:"active"`
	OverallConversionRate float64 `json:"overallConversionRate"`
}

// Funnel holds the counters shared by every bucketed record.
type Funnel struct {
	TotalSearches  int     `json:"totalSearches"`
	QuotesReceived int     `json:"quotesReceived"`
	ConversionRate float64 `json:"conversionRate"`
}

type HourlyRecord struct {
	Hour int `json:"hour"`
	Funnel
	AvgDistance       float64 `json:"avgDistance"`
	AvgBaseFare       float64 `json:"avgBaseFare"`
	AvgPickupDistance float64 `json:"avgPickupDistance"`
	Completed         int     `json:"completed"`
	Cancelled         int     `json:"cancelled"`
	Active            int     `json:"active"`
}

type DistanceBucket struct {
	DistanceRange string `json:"distanceRange"`
	Funnel
	AvgBaseFare float64 `json:"avgBaseFare"`
}

type FareBucket struct {
	FareRange string `json:"fareRange"`
	Funnel
	AvgBaseFare float64 `json:"avgBaseFare,omitempty"`
}

type PickupBucket struct {
	PickupRange string `json:"pickupRange"`
	Funnel
}
