// Package catalog holds the static reference data bundled with the
// portal: the dairy-company directory and the list of states. Everything
// here is immutable at runtime; lookups return copies.
package catalog

import "dairyportal/internal/domain"

var companies = []domain.DairyCompany{
	{
		ID:            "amul",
		Name:          "Amul Dairy",
		Logo:          "/logos/amul.png",
		States:        []string{"Gujarat", "Maharashtra", "Rajasthan", "Madhya Pradesh", "Delhi"},
		PricePerLiter: domain.LiterPrice{Cow: 38, Buffalo: 52},
		Rating:        4.6,
		TotalFarmers:  3600000,
		PaymentCycle:  "weekly",
	},
	{
		ID:            "mother-dairy",
		Name:          "Mother Dairy",
		Logo:          "/logos/mother-dairy.png",
		States:        []string{"Delhi", "Haryana", "Uttar Pradesh", "Punjab", "Bihar"},
		PricePerLiter: domain.LiterPrice{Cow: 36, Buffalo: 50},
		Rating:        4.4,
		TotalFarmers:  1200000,
		PaymentCycle:  "weekly",
	},
	{
		ID:            "nandini",
		Name:          "Nandini Dairy (KMF)",
		Logo:          "/logos/nandini.png",
		States:        []string{"Karnataka", "Tamil Nadu", "Kerala", "Andhra Pradesh"},
		PricePerLiter: domain.LiterPrice{Cow: 35, Buffalo: 48},
		Rating:        4.5,
		TotalFarmers:  2500000,
		PaymentCycle:  "biweekly",
	},
	{
		ID:            "aavin",
		Name:          "Aavin Dairy",
		Logo:          "/logos/aavin.png",
		States:        []string{"Tamil Nadu"},
		PricePerLiter: domain.LiterPrice{Cow: 34, Buffalo: 46},
		Rating:        4.2,
		TotalFarmers:  450000,
		PaymentCycle:  "daily",
	},
	{
		ID:            "verka",
		Name:          "Verka (Milkfed Punjab)",
		Logo:          "/logos/verka.png",
		States:        []string{"Punjab", "Haryana", "Himachal Pradesh", "Delhi"},
		PricePerLiter: domain.LiterPrice{Cow: 37, Buffalo: 51},
		Rating:        4.3,
		TotalFarmers:  380000,
		PaymentCycle:  "weekly",
	},
	{
		ID:            "saras",
		Name:          "Saras Dairy (RCDF)",
		Logo:          "/logos/saras.png",
		States:        []string{"Rajasthan", "Delhi", "Haryana"},
		PricePerLiter: domain.LiterPrice{Cow: 35, Buffalo: 49},
		Rating:        4.1,
		TotalFarmers:  550000,
		PaymentCycle:  "monthly",
	},
}

var states = []string{
	"Andhra Pradesh", "Bihar", "Delhi", "Gujarat", "Haryana",
	"Himachal Pradesh", "Karnataka", "Kerala", "Madhya Pradesh",
	"Maharashtra", "Punjab", "Rajasthan", "Tamil Nadu", "Uttar Pradesh",
	"West Bengal",
}

// Companies returns the full dairy-company directory.
func Companies() []domain.DairyCompany {
	out := make([]domain.DairyCompany, len(companies))
	copy(out, companies)
	return out
}

// Company looks up a catalog entry by id.
func Company(id string) (domain.DairyCompany, bool) {
	for _, c := range companies {
		if c.ID == id {
			return c, true
		}
	}
	return domain.DairyCompany{}, false
}

// CompaniesForState partitions the directory into companies operating in
// the given state and the rest, in catalog order.
func CompaniesForState(state string) (available, other []domain.DairyCompany) {
	for _, c := range companies {
		if c.OperatesIn(state) {
			available = append(available, c)
		} else {
			other = append(other, c)
		}
	}
	return available, other
}

// States returns the selectable state names.
func States() []string {
	out := make([]string, len(states))
	copy(out, states)
	return out
}
