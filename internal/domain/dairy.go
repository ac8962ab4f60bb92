package domain

// LiterPrice holds the procurement price per liter by cattle type.
type LiterPrice struct {
	Cow     float64 `json:"cow"`
	Buffalo float64 `json:"buffalo"`
}

// DairyCompany is a static reference-catalog entry. The catalog is
// immutable at runtime.
type DairyCompany struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Logo          string     `json:"logo"`
	States        []string   `json:"states"`
	PricePerLiter LiterPrice `json:"pricePerLiter"`
	Rating        float64    `json:"rating"`
	TotalFarmers  int        `json:"totalFarmers"`
	PaymentCycle  string     `json:"paymentCycle"`
}

// OperatesIn reports whether the company procures in the given state.
func (d DairyCompany) OperatesIn(state string) bool {
	for _, s := range d.States {
		if s == state {
			return true
		}
	}
	return false
}
