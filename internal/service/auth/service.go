package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dairyportal/internal/catalog"
	"dairyportal/internal/domain"
	farmerrepo "dairyportal/internal/repository/farmer"
	tokenrepo "dairyportal/internal/repository/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when the normalized email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnknownDairy is returned when a profile update references a dairy
	// id missing from the catalog.
	ErrUnknownDairy = errors.New("unknown dairy company")
)

// Service handles farmer registration, login, and profile maintenance.
type Service struct {
	repo        farmerrepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	refreshTTL  time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(repo farmerrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		repo:        repo,
		tokens:      newTokenManager(tokens),
		accessTTL:   48 * time.Hour,
		refreshTTL:  30 * 24 * time.Hour,
		passwordMin: 6,
	}
}

// RegisterInput captures the fields a farmer supplies when signing up.
// ID, registration time, and the selected dairy are never caller-supplied.
type RegisterInput struct {
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Password    string            `json:"password"`
	Phone       string            `json:"phone"`
	State       string            `json:"state"`
	District    string            `json:"district"`
	Village     string            `json:"village"`
	CattleType  domain.CattleType `json:"cattleType"`
	CattleCount int               `json:"cattleCount"`
}

// Register creates a farmer account. The password the farmer actually
// typed is hashed and stored; login later verifies against it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.Farmer, string, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, "", "", errors.New("email required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, "", "", errors.New("name required")
	}
	if !domain.ValidCattleType(in.CattleType) {
		return nil, "", "", fmt.Errorf("invalid cattle type %q", in.CattleType)
	}
	if in.CattleCount < 1 {
		return nil, "", "", errors.New("cattle count must be at least 1")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, "", "", fmt.Errorf("password must be at least %d characters", s.passwordMin)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}

	account := domain.FarmerAccount{
		Farmer: domain.Farmer{
			Name:          strings.TrimSpace(in.Name),
			Email:         email,
			Phone:         strings.TrimSpace(in.Phone),
			State:         strings.TrimSpace(in.State),
			District:      strings.TrimSpace(in.District),
			Village:       strings.TrimSpace(in.Village),
			CattleType:    in.CattleType,
			CattleCount:   in.CattleCount,
			SelectedDairy: nil,
		},
		PasswordHash: string(hashed),
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, "", "", ErrEmailTaken
		}
		return nil, "", "", err
	}

	access, refresh, err := s.issueTokens(ctx, created.Farmer.ID)
	if err != nil {
		return nil, "", "", err
	}
	return &created.Farmer, access, refresh, nil
}

// Login validates credentials and returns issued tokens plus the farmer.
// Email matching is case-insensitive; the password is exact-match against
// the stored hash.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Farmer, string, string, error) {
	password = strings.TrimSpace(password)
	a, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", "", ErrInvalidCredentials
		}
		return nil, "", "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(ctx, a.Farmer.ID)
	if err != nil {
		return nil, "", "", err
	}
	return &a.Farmer, access, refresh, nil
}

// Logout revokes the given session token. Revoking an unknown token is
// not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	err := s.tokens.Revoke(ctx, token)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// UpdateInput carries the optional profile fields a farmer may change.
// Nil fields are left untouched.
type UpdateInput struct {
	Name          *string            `json:"name"`
	Phone         *string            `json:"phone"`
	State         *string            `json:"state"`
	District      *string            `json:"district"`
	Village       *string            `json:"village"`
	CattleType    *domain.CattleType `json:"cattleType"`
	CattleCount   *int               `json:"cattleCount"`
	SelectedDairy *string            `json:"selectedDairy"`
}

// UpdateProfile merges the given fields into the stored profile and
// rewrites the account. The account row is the single source of truth, so
// session reads never diverge from it.
func (s *Service) UpdateProfile(ctx context.Context, farmerID string, in UpdateInput) (*domain.Farmer, error) {
	a, err := s.repo.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	f := &a.Farmer
	if in.Name != nil {
		f.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phone != nil {
		f.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.State != nil {
		f.State = strings.TrimSpace(*in.State)
	}
	if in.District != nil {
		f.District = strings.TrimSpace(*in.District)
	}
	if in.Village != nil {
		f.Village = strings.TrimSpace(*in.Village)
	}
	if in.CattleType != nil {
		if !domain.ValidCattleType(*in.CattleType) {
			return nil, fmt.Errorf("invalid cattle type %q", *in.CattleType)
		}
		f.CattleType = *in.CattleType
	}
	if in.CattleCount != nil {
		if *in.CattleCount < 1 {
			return nil, errors.New("cattle count must be at least 1")
		}
		f.CattleCount = *in.CattleCount
	}
	if in.SelectedDairy != nil {
		id := strings.TrimSpace(*in.SelectedDairy)
		if id == "" {
			f.SelectedDairy = nil
		} else {
			if _, ok := catalog.Company(id); !ok {
				return nil, ErrUnknownDairy
			}
			f.SelectedDairy = &id
		}
	}

	updated, err := s.repo.Update(ctx, *a)
	if err != nil {
		return nil, err
	}
	return &updated.Farmer, nil
}

// LookupByToken returns the farmer bound to a valid access token. This is
// the authenticated-identity contract the HTTP middleware relies on.
func (s *Service) LookupByToken(ctx context.Context, token string) (*domain.Farmer, error) {
	farmerID, ok := s.tokens.Validate(ctx, token)
	if !ok {
		return nil, ErrInvalidToken
	}
	a, err := s.repo.GetByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return &a.Farmer, nil
}

// AccessTTLSeconds exposes the access token lifetime in seconds.
func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}

func (s *Service) issueTokens(ctx context.Context, farmerID string) (string, string, error) {
	access, err := s.tokens.Issue(ctx, farmerID, "access", s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.Issue(ctx, farmerID, "refresh", s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
