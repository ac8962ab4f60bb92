package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"dairyportal/internal/domain"
	"dairyportal/internal/history"
	collectionrepo "dairyportal/internal/repository/collection"
	farmerrepo "dairyportal/internal/repository/farmer"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Demo account credentials for manual testing.
const (
	DemoEmail    = "demo@dairyportal.in"
	DemoPassword = "demo123"
)

// Apply inserts the demo farmer and 30 days of collection history. It is
// idempotent: an existing demo account is reused.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	farmers := farmerrepo.NewPostgres(pool, logger)
	collections := collectionrepo.NewPostgres(pool, logger)

	account, err := ensureDemoFarmer(ctx, farmers)
	if err != nil {
		return fmt.Errorf("ensure demo farmer: %w", err)
	}

	records := history.Generate(account.Farmer.ID, account.Farmer.CattleType, time.Now())
	for _, c := range records {
		if _, err := collections.Upsert(ctx, c); err != nil {
			return fmt.Errorf("upsert collection %s/%s: %w", c.Date, c.Shift, err)
		}
	}

	logger.Printf("seeded demo farmer %s with %d collection records", account.Farmer.Email, len(records))
	return nil
}

func ensureDemoFarmer(ctx context.Context, repo farmerrepo.Repository) (*domain.FarmerAccount, error) {
	existing, err := repo.GetByEmail(ctx, DemoEmail)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	selected := "amul"
	return repo.Create(ctx, domain.FarmerAccount{
		Farmer: domain.Farmer{
			Name:          "Demo Farmer",
			Email:         DemoEmail,
			Phone:         "+91 98765 00000",
			State:         "Gujarat",
			District:      "Kheda",
			Village:       "Kheda",
			CattleType:    domain.CattleBuffalo,
			CattleCount:   8,
			SelectedDairy: &selected,
		},
		PasswordHash: string(hash),
	})
}
