package domain

import "time"

// CattleType enumerates the herd kinds a farmer can register with.
type CattleType string

const (
	CattleCow     CattleType = "cow"
	CattleBuffalo CattleType = "buffalo"
	CattleBoth    CattleType = "both"
)

// ValidCattleType reports whether t is one of the registrable kinds.
func ValidCattleType(t CattleType) bool {
	switch t {
	case CattleCow, CattleBuffalo, CattleBoth:
		return true
	}
	return false
}

// Farmer is the profile attached to a registered account.
type Farmer struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	State         string     `json:"state"`
	District      string     `json:"district"`
	Village       string     `json:"village"`
	CattleType    CattleType `json:"cattleType"`
	CattleCount   int        `json:"cattleCount"`
	SelectedDairy *string    `json:"selectedDairy"`
	RegisteredAt  time.Time  `json:"registeredAt"`
}

// FarmerAccount is a Farmer profile together with its login secret.
// The email, lowercased, is the account key.
type FarmerAccount struct {
	Farmer       Farmer `json:"farmer"`
	PasswordHash string `json:"-"`
}
