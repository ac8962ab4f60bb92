// Package history synthesizes a farmer's recent supply records when no
// imported data exists. Generation is seeded by farmer id so repeated
// calls for the same farmer and day are identical.
package history

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"dairyportal/internal/domain"
)

const (
	days         = 30
	ratePerLiter = 48
)

// Generate produces 30 days of morning/evening collection records ending
// at now, newest first. Records older than three days are paid, two to
// three days old are verified, the rest pending.
func Generate(farmerID string, cattle domain.CattleType, now time.Time) []domain.MilkCollection {
	rng := rand.New(rand.NewSource(seed(farmerID)))
	if cattle == "" || cattle == domain.CattleBoth {
		cattle = domain.CattleCow
	}

	out := make([]domain.MilkCollection, 0, days*2)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		status := domain.CollectionPending
		switch {
		case i > 3:
			status = domain.CollectionPaid
		case i > 1:
			status = domain.CollectionVerified
		}

		out = append(out, domain.MilkCollection{
			ID:           date + "-morning",
			FarmerID:     farmerID,
			Date:         date,
			Shift:        "morning",
			Quantity:     round1(20 + rng.Float64()*10),
			FatContent:   round1(3.8 + rng.Float64()*0.8),
			SNFContent:   round1(8.0 + rng.Float64()*0.5),
			RatePerLiter: ratePerLiter,
			CattleType:   cattle,
			Status:       status,
		})
		out = append(out, domain.MilkCollection{
			ID:           date + "-evening",
			FarmerID:     farmerID,
			Date:         date,
			Shift:        "evening",
			Quantity:     round1(18 + rng.Float64()*12),
			FatContent:   round1(3.9 + rng.Float64()*0.7),
			SNFContent:   round1(8.1 + rng.Float64()*0.4),
			RatePerLiter: ratePerLiter,
			CattleType:   cattle,
			Status:       status,
		})
	}
	return out
}

func seed(farmerID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(farmerID))
	return int64(h.Sum64())
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
