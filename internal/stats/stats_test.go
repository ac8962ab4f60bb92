package stats

import (
	"reflect"
	"testing"

	"dairyportal/internal/domain"
)

func TestTopStates_ExcludesAggregateAndSortsByRank(t *testing.T) {
	rows := []domain.StateProduction{
		{State: "Rajasthan", Rank: 2},
		{State: "All India", Rank: 0},
		{State: "Uttar Pradesh", Rank: 1},
		{State: "Madhya Pradesh", Rank: 3},
	}
	snapshot := append([]domain.StateProduction(nil), rows...)

	top := TopStates(rows, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(top))
	}
	if top[0].State != "Uttar Pradesh" || top[1].State != "Rajasthan" {
		t.Fatalf("unexpected order %+v", top)
	}
	for _, s := range top {
		if s.State == AllIndiaLabel {
			t.Fatalf("aggregate row leaked into ranking")
		}
	}
	if !reflect.DeepEqual(rows, snapshot) {
		t.Fatalf("input slice was mutated")
	}
}

func TestTopStates_EmptyInput(t *testing.T) {
	if got := TopStates(nil, 5); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestStateProduction_CaseInsensitiveContains(t *testing.T) {
	rows := []domain.StateProduction{
		{State: "Uttar Pradesh", Production: 31.9},
		{State: "Rajasthan", Production: 33.3},
	}
	got, ok := StateProduction(rows, "rajas")
	if !ok || got.State != "Rajasthan" {
		t.Fatalf("unexpected result %+v ok=%v", got, ok)
	}
	if _, ok := StateProduction(rows, "kerala"); ok {
		t.Fatalf("expected miss for unknown state")
	}
}

func TestDemandByRegion_GroupsAndSums(t *testing.T) {
	products := []domain.DairyProduct{
		{CustomerLocation: "Delhi", Quantity: 10},
		{CustomerLocation: "Mumbai", Quantity: 4},
		{CustomerLocation: "Delhi", Quantity: 2.5},
	}
	got := DemandByRegion(products)
	want := map[string]float64{"Delhi": 12.5, "Mumbai": 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := DemandByRegion(nil); len(got) != 0 {
		t.Fatalf("expected empty map for empty input, got %v", got)
	}
}

func TestBrandPrices_AveragesAndRounds(t *testing.T) {
	products := []domain.DairyProduct{
		{Brand: "Amul", PricePerUnit: 10},
		{Brand: "Amul", PricePerUnit: 10.555},
		{Brand: "Nandini", PricePerUnit: 42},
	}
	got := BrandPrices(products)
	if got["Amul"].AvgPrice != 10.28 || got["Amul"].Count != 2 {
		t.Fatalf("unexpected Amul summary %+v", got["Amul"])
	}
	if got["Nandini"].AvgPrice != 42 || got["Nandini"].Count != 1 {
		t.Fatalf("unexpected Nandini summary %+v", got["Nandini"])
	}
}

func TestDailyTotals_SumsShiftsAndSortsAscending(t *testing.T) {
	collections := []domain.MilkCollection{
		{Date: "2025-03-10", Shift: "morning", Quantity: 22.5},
		{Date: "2025-03-10", Shift: "evening", Quantity: 23.0},
		{Date: "2025-03-09", Shift: "morning", Quantity: 19.0},
	}
	got := DailyTotals(collections, 14)
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	if got[0].Date != "2025-03-09" || got[1].Date != "2025-03-10" {
		t.Fatalf("expected ascending dates, got %+v", got)
	}
	if got[1].Quantity != 45.5 {
		t.Fatalf("expected 45.5 for 2025-03-10, got %v", got[1].Quantity)
	}
}

func TestDailyTotals_CapsToMostRecent(t *testing.T) {
	collections := []domain.MilkCollection{
		{Date: "2025-03-08", Quantity: 1},
		{Date: "2025-03-09", Quantity: 2},
		{Date: "2025-03-10", Quantity: 3},
	}
	got := DailyTotals(collections, 2)
	if len(got) != 2 || got[0].Date != "2025-03-09" || got[1].Date != "2025-03-10" {
		t.Fatalf("expected the two most recent days, got %+v", got)
	}

	if got := DailyTotals(nil, 14); len(got) != 0 {
		t.Fatalf("expected empty rollup, got %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	collections := []domain.MilkCollection{
		{Quantity: 10, FatContent: 4.0, RatePerLiter: 48, Status: domain.CollectionPaid},
		{Quantity: 20, FatContent: 4.4, RatePerLiter: 48, Status: domain.CollectionPending},
	}
	s := Summarize(collections)
	if s.TotalQuantity != 30 {
		t.Fatalf("total quantity: %v", s.TotalQuantity)
	}
	if s.TotalEarnings != 480 {
		t.Fatalf("earnings should count paid only: %v", s.TotalEarnings)
	}
	if s.PendingPayment != 960 {
		t.Fatalf("pending payment: %v", s.PendingPayment)
	}
	if s.AvgFat != 4.2 {
		t.Fatalf("avg fat: %v", s.AvgFat)
	}

	if empty := Summarize(nil); empty != (HistorySummary{}) {
		t.Fatalf("expected zero summary for empty input, got %+v", empty)
	}
}
