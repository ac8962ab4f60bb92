package collection

import (
	"context"
	"errors"
	"io"
	"log"

	"dairyportal/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Upsert(ctx context.Context, c domain.MilkCollection) (*domain.MilkCollection, error) {
	const q = `
INSERT INTO collections (farmer_id, collected_on, shift, quantity, fat_content, snf_content, rate_per_liter, cattle_type, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (farmer_id, collected_on, shift) DO UPDATE
SET quantity = EXCLUDED.quantity,
    fat_content = EXCLUDED.fat_content,
    snf_content = EXCLUDED.snf_content,
    rate_per_liter = EXCLUDED.rate_per_liter,
    cattle_type = EXCLUDED.cattle_type,
    status = EXCLUDED.status
RETURNING id::text, farmer_id::text, to_char(collected_on, 'YYYY-MM-DD'), shift, quantity, fat_content, snf_content, rate_per_liter, cattle_type, status
`
	return r.scanCollection(r.pool.QueryRow(
		ctx,
		q,
		c.FarmerID,
		c.Date,
		c.Shift,
		c.Quantity,
		c.FatContent,
		c.SNFContent,
		c.RatePerLiter,
		string(c.CattleType),
		c.Status,
	))
}

func (r *postgresRepo) ListByFarmer(ctx context.Context, farmerID string) ([]domain.MilkCollection, error) {
	const q = `
SELECT id::text, farmer_id::text, to_char(collected_on, 'YYYY-MM-DD'), shift, quantity, fat_content, snf_content, rate_per_liter, cattle_type, status
FROM collections
WHERE farmer_id = $1
ORDER BY collected_on DESC, shift
`
	rows, err := r.pool.Query(ctx, q, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MilkCollection
	for rows.Next() {
		c, err := r.scanCollection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) scanCollection(row pgx.Row) (*domain.MilkCollection, error) {
	var c domain.MilkCollection
	var cattleType string
	err := row.Scan(
		&c.ID,
		&c.FarmerID,
		&c.Date,
		&c.Shift,
		&c.Quantity,
		&c.FatContent,
		&c.SNFContent,
		&c.RatePerLiter,
		&cattleType,
		&c.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("collection repo: scan error=%v", err)
		return nil, err
	}
	c.CattleType = domain.CattleType(cattleType)
	return &c, nil
}
