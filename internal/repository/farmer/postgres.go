package farmer

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"dairyportal/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const farmerColumns = `id::text, name, email, password_hash, phone, state, district, village,
       cattle_type, cattle_count, selected_dairy, registered_at`

func (r *postgresRepo) Create(ctx context.Context, a domain.FarmerAccount) (*domain.FarmerAccount, error) {
	const q = `
INSERT INTO farmers (name, email, password_hash, phone, state, district, village, cattle_type, cattle_count, selected_dairy)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + farmerColumns
	f := a.Farmer
	return r.scanAccount(r.pool.QueryRow(
		ctx,
		q,
		f.Name,
		strings.ToLower(f.Email),
		a.PasswordHash,
		f.Phone,
		f.State,
		f.District,
		f.Village,
		string(f.CattleType),
		f.CattleCount,
		f.SelectedDairy,
	))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.FarmerAccount, error) {
	const q = `
SELECT ` + farmerColumns + `
FROM farmers
WHERE lower(email) = lower($1)
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.FarmerAccount, error) {
	const q = `
SELECT ` + farmerColumns + `
FROM farmers
WHERE id = $1
LIMIT 1
`
	return r.scanAccount(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) Update(ctx context.Context, a domain.FarmerAccount) (*domain.FarmerAccount, error) {
	const q = `
UPDATE farmers
SET name = $2, phone = $3, state = $4, district = $5, village = $6,
    cattle_type = $7, cattle_count = $8, selected_dairy = $9
WHERE id = $1
RETURNING ` + farmerColumns
	f := a.Farmer
	return r.scanAccount(r.pool.QueryRow(
		ctx,
		q,
		f.ID,
		f.Name,
		f.Phone,
		f.State,
		f.District,
		f.Village,
		string(f.CattleType),
		f.CattleCount,
		f.SelectedDairy,
	))
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.FarmerAccount, error) {
	const q = `
SELECT ` + farmerColumns + `
FROM farmers
ORDER BY lower(email)
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FarmerAccount
	for rows.Next() {
		a, err := r.scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

func (r *postgresRepo) scanAccount(row pgx.Row) (*domain.FarmerAccount, error) {
	var a domain.FarmerAccount
	var cattleType string
	err := row.Scan(
		&a.Farmer.ID,
		&a.Farmer.Name,
		&a.Farmer.Email,
		&a.PasswordHash,
		&a.Farmer.Phone,
		&a.Farmer.State,
		&a.Farmer.District,
		&a.Farmer.Village,
		&cattleType,
		&a.Farmer.CattleCount,
		&a.Farmer.SelectedDairy,
		&a.Farmer.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("farmer repo: scan error=%v", err)
		return nil, err
	}
	a.Farmer.CattleType = domain.CattleType(cattleType)
	return &a, nil
}
