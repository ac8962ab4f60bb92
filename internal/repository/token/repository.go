package token

import (
	"context"
	"time"
)

// Token is one issued session credential. The active session survives
// process restarts because tokens live in the database.
type Token struct {
	Token     string
	FarmerID  string
	Kind      string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, token Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
