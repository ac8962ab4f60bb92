package history

import (
	"reflect"
	"testing"
	"time"

	"dairyportal/internal/domain"
)

func TestGenerate_ThirtyDaysTwoShifts(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	records := Generate("farmer-1", domain.CattleBuffalo, now)
	if len(records) != 60 {
		t.Fatalf("expected 60 records, got %d", len(records))
	}

	// Two shifts on the newest day.
	if records[0].Date != "2025-03-10" || records[0].Shift != "morning" {
		t.Fatalf("unexpected first record %+v", records[0])
	}
	if records[1].Date != "2025-03-10" || records[1].Shift != "evening" {
		t.Fatalf("unexpected second record %+v", records[1])
	}

	for _, r := range records {
		if r.Quantity < 18 || r.Quantity > 30 {
			t.Fatalf("quantity out of range: %+v", r)
		}
		if r.RatePerLiter != 48 {
			t.Fatalf("unexpected rate: %+v", r)
		}
		if r.CattleType != domain.CattleBuffalo {
			t.Fatalf("unexpected cattle type: %+v", r)
		}
	}
}

func TestGenerate_StatusByAge(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	records := Generate("farmer-1", domain.CattleCow, now)

	statusFor := func(daysAgo int) string {
		return records[daysAgo*2].Status
	}
	if statusFor(0) != domain.CollectionPending || statusFor(1) != domain.CollectionPending {
		t.Fatalf("newest records should be pending")
	}
	if statusFor(2) != domain.CollectionVerified || statusFor(3) != domain.CollectionVerified {
		t.Fatalf("2-3 day old records should be verified")
	}
	if statusFor(4) != domain.CollectionPaid || statusFor(29) != domain.CollectionPaid {
		t.Fatalf("older records should be paid")
	}
}

func TestGenerate_DeterministicPerFarmer(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	a := Generate("farmer-1", domain.CattleCow, now)
	b := Generate("farmer-1", domain.CattleCow, now)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("generator is not deterministic for the same farmer")
	}

	c := Generate("farmer-2", domain.CattleCow, now)
	if reflect.DeepEqual(a, c) {
		t.Fatalf("different farmers should not share identical histories")
	}
}

func TestGenerate_BothCattleFallsBackToCow(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	records := Generate("farmer-1", domain.CattleBoth, now)
	if records[0].CattleType != domain.CattleCow {
		t.Fatalf("expected cow fallback, got %s", records[0].CattleType)
	}
}
