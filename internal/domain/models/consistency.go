package models

import (
	"fmt"
	"math"
)

// rateTolerance is the allowed drift, in percentage points, between a stored
// conversion rate and the one implied by its counters.
const rateTolerance = 0.01

// Inconsistencies reports every violation of the invariants the generator is
// expected to uphold. The document is never changed.
func (d *Document) Inconsistencies() []string {
	var out []string

	s := d.Summary
	if s.TotalSearches > 0 {
		if want := float64(s.TotalQuotes) / float64(s.TotalSearches) * 100; math.Abs(want-s.OverallConversionRate) > rateTolerance {
			out = append(out, fmt.Sprintf("summary: overallConversionRate %.4f, counters imply %.4f", s.OverallConversionRate, want))
		}
	}
	if sum := s.Completed + s.Cancelled + s.Active; sum != 0 && sum != s.TotalSearches {
		out = append(out, fmt.Sprintf("summary: completed+cancelled+active = %d, totalSearches = %d", sum, s.TotalSearches))
	}

	seenHours := make(map[int]bool, len(d.HourlyData))
	for _, r := range d.HourlyData {
		label := fmt.Sprintf("hourlyData[hour=%d]", r.Hour)
		if r.Hour < 0 || r.Hour > 23 {
			out = append(out, label+": hour outside 0-23")
		}
		if seenHours[r.Hour] {
			out = append(out, label+": duplicate hour")
		}
		seenHours[r.Hour] = true
		out = appendFunnelIssues(out, label, r.Funnel)
		if sum := r.Completed + r.Cancelled + r.Active; sum != 0 && sum != r.TotalSearches {
			out = append(out, fmt.Sprintf("%s: completed+cancelled+active = %d, totalSearches = %d", label, sum, r.TotalSearches))
		}
	}

	out = appendBucketIssues(out, "distanceData", d.DistanceData, func(b DistanceBucket) (string, Funnel) { return b.DistanceRange, b.Funnel })
	out = appendBucketIssues(out, "fareData", d.FareData, func(b FareBucket) (string, Funnel) { return b.FareRange, b.Funnel })
	out = appendBucketIssues(out, "pickupDistanceData", d.PickupDistanceData, func(b PickupBucket) (string, Funnel) { return b.PickupRange, b.Funnel })

	return out
}

func appendBucketIssues[T any](out []string, field string, buckets []T, key func(T) (string, Funnel)) []string {
	seen := make(map[string]bool, len(buckets))
	for _, b := range buckets {
		name, f := key(b)
		label := fmt.Sprintf("%s[%s]", field, name)
		if seen[name] {
			out = append(out, label+": duplicate range label")
		}
		seen[name] = true
		out = appendFunnelIssues(out, label, f)
	}
	return out
}

func appendFunnelIssues(out []string, label string, f Funnel) []string {
	if f.TotalSearches == 0 {
		return out
	}
	want := float64(f.QuotesReceived) / float64(f.TotalSearches) * 100
	if math.Abs(want-f.ConversionRate) > rateTolerance {
		out = append(out, fmt.Sprintf("%s: conversionRate %.4f, counters imply %.4f", label, f.ConversionRate, want))
	}
	return out
}
