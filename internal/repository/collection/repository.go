package collection

import (
	"context"

	"dairyportal/internal/domain"
)

// Repository persists milk collection records. Upsert is keyed on
// (farmer, date, shift) so repeated imports stay idempotent.
type Repository interface {
	Upsert(ctx context.Context, c domain.MilkCollection) (*domain.MilkCollection, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]domain.MilkCollection, error)
}
