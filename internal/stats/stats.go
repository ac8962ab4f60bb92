// Package stats holds the pure aggregation helpers behind the market and
// chatbot views. Every function tolerates empty input and leaves its
// input slice untouched.
package stats

import (
	"math"
	"sort"
	"strings"

	"dairyportal/internal/domain"
)

// AllIndiaLabel is the reserved aggregate row in the state ranking
// dataset; ranking queries exclude it.
const AllIndiaLabel = "All India"

// TopStates returns at most limit states sorted ascending by rank,
// skipping the national aggregate row.
func TopStates(rows []domain.StateProduction, limit int) []domain.StateProduction {
	out := make([]domain.StateProduction, 0, len(rows))
	for _, r := range rows {
		if r.State == AllIndiaLabel {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// StateProduction finds the first row whose state name contains name,
// case-insensitive.
func StateProduction(rows []domain.StateProduction, name string) (domain.StateProduction, bool) {
	needle := strings.ToLower(name)
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.State), needle) {
			return r, true
		}
	}
	return domain.StateProduction{}, false
}

// DemandByRegion sums product quantity per customer location.
func DemandByRegion(products []domain.DairyProduct) map[string]float64 {
	out := make(map[string]float64, len(products))
	for _, p := range products {
		out[p.CustomerLocation] += p.Quantity
	}
	return out
}

// BrandPrice is the per-brand price summary.
type BrandPrice struct {
	AvgPrice float64 `json:"avgPrice"`
	Count    int     `json:"count"`
}

// BrandPrices averages unit price per brand, rounded to 2 decimal places.
func BrandPrices(products []domain.DairyProduct) map[string]BrandPrice {
	type acc struct {
		total float64
		count int
	}
	sums := make(map[string]acc, len(products))
	for _, p := range products {
		a := sums[p.Brand]
		a.total += p.PricePerUnit
		a.count++
		sums[p.Brand] = a
	}
	out := make(map[string]BrandPrice, len(sums))
	for brand, a := range sums {
		out[brand] = BrandPrice{
			AvgPrice: math.Round(a.total/float64(a.count)*100) / 100,
			Count:    a.count,
		}
	}
	return out
}

// DailyTotal is one day's summed quantity across shifts.
type DailyTotal struct {
	Date     string  `json:"date"`
	Quantity float64 `json:"quantity"`
}

// DailyTotals sums collection quantity per date, sorts ascending by date,
// and keeps only the most recent lastN days. A negative lastN keeps
// everything.
func DailyTotals(collections []domain.MilkCollection, lastN int) []DailyTotal {
	sums := make(map[string]float64, len(collections))
	for _, c := range collections {
		sums[c.Date] += c.Quantity
	}
	out := make([]DailyTotal, 0, len(sums))
	for date, qty := range sums {
		out = append(out, DailyTotal{Date: date, Quantity: qty})
	}
	// Dates are YYYY-MM-DD, so lexical order is chronological.
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	if lastN >= 0 && len(out) > lastN {
		out = out[len(out)-lastN:]
	}
	return out
}

// HistorySummary aggregates a farmer's supply history the way the
// dashboard presents it.
type HistorySummary struct {
	TotalQuantity  float64 `json:"totalQuantity"`
	TotalEarnings  float64 `json:"totalEarnings"`
	PendingPayment float64 `json:"pendingPayment"`
	AvgFat         float64 `json:"avgFat"`
}

// Summarize computes totals over collection records: earnings count only
// paid records, pending covers everything not yet paid.
func Summarize(collections []domain.MilkCollection) HistorySummary {
	var s HistorySummary
	if len(collections) == 0 {
		return s
	}
	var fatSum float64
	for _, c := range collections {
		s.TotalQuantity += c.Quantity
		fatSum += c.FatContent
		if c.Status == domain.CollectionPaid {
			s.TotalEarnings += c.Amount()
		} else {
			s.PendingPayment += c.Amount()
		}
	}
	s.AvgFat = fatSum / float64(len(collections))
	return s
}
