package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"dairyportal/internal/domain"
	tokenrepo "dairyportal/internal/repository/token"
	"github.com/google/uuid"
)

// memoryRepo is a lightweight in-memory farmer repository for tests,
// keyed by normalized email like the real store.
type memoryRepo struct {
	byEmail map[string]domain.FarmerAccount
}

type memoryTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byEmail: make(map[string]domain.FarmerAccount)}
}

func newMemoryTokenRepo() *memoryTokenRepo {
	return &memoryTokenRepo{tokens: make(map[string]tokenrepo.Token)}
}

func (r *memoryRepo) Create(_ context.Context, a domain.FarmerAccount) (*domain.FarmerAccount, error) {
	key := strings.ToLower(a.Farmer.Email)
	if _, exists := r.byEmail[key]; exists {
		return nil, domain.ErrAlreadyExists
	}
	clone := a
	if clone.Farmer.ID == "" {
		clone.Farmer.ID = uuid.NewString()
	}
	if clone.Farmer.RegisteredAt.IsZero() {
		clone.Farmer.RegisteredAt = time.Now()
	}
	r.byEmail[key] = clone
	return &clone, nil
}

func (r *memoryRepo) GetByEmail(_ context.Context, email string) (*domain.FarmerAccount, error) {
	if a, ok := r.byEmail[strings.ToLower(email)]; ok {
		clone := a
		return &clone, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) GetByID(_ context.Context, id string) (*domain.FarmerAccount, error) {
	for _, a := range r.byEmail {
		if a.Farmer.ID == id {
			clone := a
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Update(_ context.Context, a domain.FarmerAccount) (*domain.FarmerAccount, error) {
	key := strings.ToLower(a.Farmer.Email)
	if _, ok := r.byEmail[key]; !ok {
		return nil, domain.ErrNotFound
	}
	r.byEmail[key] = a
	clone := a
	return &clone, nil
}

func (r *memoryRepo) List(_ context.Context) ([]domain.FarmerAccount, error) {
	out := make([]domain.FarmerAccount, 0, len(r.byEmail))
	for _, a := range r.byEmail {
		out = append(out, a)
	}
	return out, nil
}

func (r *memoryTokenRepo) Create(_ context.Context, token tokenrepo.Token) error {
	if _, exists := r.tokens[token.Token]; exists {
		return domain.ErrAlreadyExists
	}
	r.tokens[token.Token] = token
	return nil
}

func (r *memoryTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := t
	return &clone, nil
}

func (r *memoryTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := r.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tokens, token)
	return nil
}

func validInput() RegisterInput {
	return RegisterInput{
		Name:        "Ravi Patel",
		Email:       "ravi@example.com",
		Password:    "secret1",
		Phone:       "+91 98765 43210",
		State:       "Gujarat",
		District:    "Kheda",
		Village:     "Kheda",
		CattleType:  domain.CattleBuffalo,
		CattleCount: 4,
	}
}

func TestRegister_StoresTypedPasswordAndLogsIn(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo, newMemoryTokenRepo())
	ctx := context.Background()

	f, access, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if f.ID == "" || f.SelectedDairy != nil || f.RegisteredAt.IsZero() {
		t.Fatalf("unexpected farmer %+v", f)
	}
	if access == "" {
		t.Fatalf("expected a session token on register")
	}

	// Login must verify the password the farmer actually typed, not a
	// fixed demo secret.
	if _, _, _, err := svc.Login(ctx, "ravi@example.com", "secret1"); err != nil {
		t.Fatalf("login with typed password: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "ravi@example.com", "demo123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for demo secret, got %v", err)
	}
}

func TestRegister_DuplicateEmailKeepsSingleAccount(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo, newMemoryTokenRepo())
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	in := validInput()
	in.Email = "RAVI@Example.COM" // normalizes to the same key
	if _, _, _, err := svc.Register(ctx, in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	accounts, _ := repo.List(ctx)
	if len(accounts) != 1 {
		t.Fatalf("expected exactly one account, got %d", len(accounts))
	}
}

func TestLogin_CaseInsensitiveEmailExactPassword(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo, newMemoryTokenRepo())
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, _, err := svc.Login(ctx, "Ravi@EXAMPLE.com", "secret1"); err != nil {
		t.Fatalf("case-insensitive login: %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "ravi@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, _, err := svc.Login(ctx, "missing@example.com", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for missing account, got %v", err)
	}
}

func TestRegister_RejectsInvalidProfiles(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"empty email", func(in *RegisterInput) { in.Email = "" }},
		{"empty name", func(in *RegisterInput) { in.Name = "  " }},
		{"short password", func(in *RegisterInput) { in.Password = "abc" }},
		{"zero cattle", func(in *RegisterInput) { in.CattleCount = 0 }},
		{"bad cattle type", func(in *RegisterInput) { in.CattleType = "goat" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if _, _, _, err := svc.Register(ctx, in); err == nil {
			t.Fatalf("expected error for case %s", tc.name)
		}
	}
}

func TestUpdateProfile_MergesAndKeepsAccountConsistent(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo, newMemoryTokenRepo())
	ctx := context.Background()

	f, _, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	dairy := "amul"
	count := 10
	updated, err := svc.UpdateProfile(ctx, f.ID, UpdateInput{
		SelectedDairy: &dairy,
		CattleCount:   &count,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.SelectedDairy == nil || *updated.SelectedDairy != "amul" || updated.CattleCount != 10 {
		t.Fatalf("unexpected profile %+v", updated)
	}
	if updated.Name != "Ravi Patel" {
		t.Fatalf("untouched field changed: %+v", updated)
	}

	// The stored account must match what the session would see.
	stored, err := repo.GetByEmail(ctx, f.Email)
	if err != nil {
		t.Fatalf("get stored account: %v", err)
	}
	if stored.Farmer.SelectedDairy == nil || *stored.Farmer.SelectedDairy != "amul" {
		t.Fatalf("store diverged from session: %+v", stored.Farmer)
	}
}

func TestUpdateProfile_RejectsUnknownDairy(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo, newMemoryTokenRepo())
	ctx := context.Background()

	f, _, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	dairy := "no-such-dairy"
	if _, err := svc.UpdateProfile(ctx, f.ID, UpdateInput{SelectedDairy: &dairy}); !errors.Is(err, ErrUnknownDairy) {
		t.Fatalf("expected ErrUnknownDairy, got %v", err)
	}
}

func TestUpdateProfile_WithoutAccountIsRejected(t *testing.T) {
	svc := New(newMemoryRepo(), newMemoryTokenRepo())

	name := "Someone"
	if _, err := svc.UpdateProfile(context.Background(), "missing-id", UpdateInput{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLookupByToken_ExpiredTokenIsRevoked(t *testing.T) {
	repo := newMemoryRepo()
	tokens := newMemoryTokenRepo()
	svc := New(repo, tokens)
	ctx := context.Background()

	f, access, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := svc.LookupByToken(ctx, access)
	if err != nil || got.ID != f.ID {
		t.Fatalf("lookup: farmer=%+v err=%v", got, err)
	}

	// Force expiry and confirm the token stops resolving and is cleaned up.
	tok := tokens.tokens[access]
	tok.ExpiresAt = time.Now().Add(-time.Minute)
	tokens.tokens[access] = tok

	if _, err := svc.LookupByToken(ctx, access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, exists := tokens.tokens[access]; exists {
		t.Fatalf("expired token should have been deleted")
	}
}

func TestLogout_IsIdempotent(t *testing.T) {
	repo := newMemoryRepo()
	svc := New(repo, newMemoryTokenRepo())
	ctx := context.Background()

	_, access, _, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.Logout(ctx, access); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := svc.Logout(ctx, access); err != nil {
		t.Fatalf("second logout should be a no-op, got %v", err)
	}
	if _, err := svc.LookupByToken(ctx, access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("token should be invalid after logout, got %v", err)
	}
}
