package farmer

import (
	"context"

	"dairyportal/internal/domain"
)

// Repository persists and fetches farmer accounts. Accounts are keyed by
// normalized (lowercased) email.
type Repository interface {
	Create(ctx context.Context, a domain.FarmerAccount) (*domain.FarmerAccount, error)
	GetByEmail(ctx context.Context, email string) (*domain.FarmerAccount, error)
	GetByID(ctx context.Context, id string) (*domain.FarmerAccount, error)
	Update(ctx context.Context, a domain.FarmerAccount) (*domain.FarmerAccount, error)
	List(ctx context.Context) ([]domain.FarmerAccount, error)
}
