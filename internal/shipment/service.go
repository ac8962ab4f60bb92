package shipment

import (
	"context"
	"time"

	"dairyportal/internal/domain"
)

// Service answers tracking queries for a farmer's shipments.
type Service struct {
	now func() time.Time
}

// NewService builds a Service. A nil clock defaults to time.Now.
func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{now: now}
}

// ListForFarmer returns the farmer's shipments, timelines included.
func (s *Service) ListForFarmer(_ context.Context, farmerID string) ([]domain.Shipment, error) {
	return DemoShipments(farmerID, s.now()), nil
}

// Get returns a single shipment by id for the farmer.
func (s *Service) Get(ctx context.Context, farmerID, id string) (*domain.Shipment, error) {
	shipments, err := s.ListForFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	for i := range shipments {
		if shipments[i].ID == id {
			return &shipments[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
