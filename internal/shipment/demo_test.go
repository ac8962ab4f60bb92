package shipment

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"dairyportal/internal/domain"
)

func TestDemoShipments_WellFormed(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	shipments := DemoShipments("farmer-1", now)
	if len(shipments) != 5 {
		t.Fatalf("expected 5 shipments, got %d", len(shipments))
	}

	seen := map[domain.ShipmentStatus]bool{}
	for _, s := range shipments {
		if s.FarmerID != "farmer-1" {
			t.Fatalf("shipment %s: wrong farmer %q", s.ID, s.FarmerID)
		}
		if len(s.Milestones) != 6 {
			t.Fatalf("shipment %s: expected 6 milestones, got %d", s.ID, len(s.Milestones))
		}
		if s.ID == "" || s.DairyID == "" || s.DairyName == "" {
			t.Fatalf("shipment missing identity fields: %+v", s)
		}
		seen[s.Status] = true

		want := ProjectMilestones(s.Status, s.Milestones[0].Location, s.Milestones[5].Location, *s.Milestones[0].Timestamp)
		if !reflect.DeepEqual(s.Milestones, want) {
			t.Fatalf("shipment %s: milestones diverge from projection", s.ID)
		}
	}

	for _, status := range []domain.ShipmentStatus{
		domain.ShipmentInTransit, domain.ShipmentDelivered,
		domain.ShipmentScheduled, domain.ShipmentQualityCheck, domain.ShipmentDelayed,
	} {
		if !seen[status] {
			t.Fatalf("expected a shipment with status %s", status)
		}
	}
}

func TestDemoShipments_Deterministic(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	a := DemoShipments("farmer-1", now)
	b := DemoShipments("farmer-1", now)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("generator is not deterministic")
	}
}

func TestService_Get(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	svc := NewService(func() time.Time { return now })
	ctx := context.Background()

	s, err := svc.Get(ctx, "farmer-1", "SHP-002")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if s.Status != domain.ShipmentDelivered || s.ActualDelivery == nil {
		t.Fatalf("unexpected shipment %+v", s)
	}

	if _, err := svc.Get(ctx, "farmer-1", "SHP-999"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
