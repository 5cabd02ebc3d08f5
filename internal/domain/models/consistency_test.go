package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_DecodesGeneratorShape(t *testing.T) {
	raw := `{
	  "summary": {"totalRecords": 10, "totalSearches": 10, "totalQuotes": 4, "overallConversionRate": 40.0,
	              "completed": 3, "cancelled": 5, "active": 2},
	  "hourlyData": [{"hour": 1, "totalSearches": 10, "quotesReceived": 4, "conversionRate": 40.0,
	                  "avgDistance": 5.5, "avgBaseFare": 120.25, "avgPickupDistance": 800,
	                  "completed": 3, "cancelled": 5, "active": 2}],
	  "distanceData": [{"distanceRange": "0-5", "totalSearches": 10, "quotesReceived": 4, "conversionRate": 40.0, "avgBaseFare": 80}],
	  "fareData": [{"fareRange": "50-100", "totalSearches": 10, "quotesReceived": 4, "conversionRate": 40.0}],
	  "pickupDistanceData": [{"pickupRange": "0-500", "totalSearches": 10, "quotesReceived": 4, "conversionRate": 40.0}]
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, 4, doc.Summary.TotalQuotes)
	require.Len(t, doc.HourlyData, 1)
	assert.Equal(t, 1, doc.HourlyData[0].Hour)
	assert.Equal(t, 4, doc.HourlyData[0].QuotesReceived)
	assert.Equal(t, "0-5", doc.DistanceData[0].DistanceRange)
	assert.InDelta(t, 80.0, doc.DistanceData[0].AvgBaseFare, 1e-9)
	assert.Equal(t, "50-100", doc.FareData[0].FareRange)
	assert.Equal(t, 10, doc.PickupDistanceData[0].TotalSearches)

	assert.Empty(t, doc.Inconsistencies())
}

func TestDocument_Inconsistencies(t *testing.T) {
	doc := Document{
		Summary: Summary{TotalSearches: 100, TotalQuotes: 50, OverallConversionRate: 40, Completed: 10, Cancelled: 10, Active: 10},
		HourlyData: []HourlyRecord{
			{Hour: 3, Funnel: Funnel{TotalSearches: 10, QuotesReceived: 5, ConversionRate: 50}},
			{Hour: 3, Funnel: Funnel{TotalSearches: 10, QuotesReceived: 5, ConversionRate: 50}},
			{Hour: 24},
		},
		PickupDistanceData: []PickupBucket{
			{PickupRange: "0-500", Funnel: Funnel{TotalSearches: 200, QuotesReceived: 40, ConversionRate: 35}},
			{PickupRange: "0-500"},
		},
	}

	issues := doc.Inconsistencies()

	assert.Contains(t, issues, "summary: overallConversionRate 40.0000, counters imply 50.0000")
	assert.Contains(t, issues, "summary: completed+cancelled+active = 30, totalSearches = 100")
	assert.Contains(t, issues, "hourlyData[hour=3]: duplicate hour")
	assert.Contains(t, issues, "hourlyData[hour=24]: hour outside 0-23")
	assert.Contains(t, issues, "pickupDistanceData[0-500]: conversionRate 35.0000, counters imply 20.0000")
	assert.Contains(t, issues, "pickupDistanceData[0-500]: duplicate range label")
	assert.Len(t, issues, 6)
}

func TestState_Constructors(t *testing.T) {
	assert.Equal(t, StatusLoading, Loading().Status)
	assert.False(t, Loading().IsReady())
	assert.True(t, Ready(&Document{}).IsReady())
	assert.False(t, Ready(nil).IsReady())

	failed := Failed("parse", "bad json")
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "bad json", failed.Message)
	assert.Nil(t, failed.Document)
}
