package domain

// MilkCollection is one supply-history record: a single shift's pickup
// from a farmer.
type MilkCollection struct {
	ID           string     `json:"id"`
	FarmerID     string     `json:"farmerId"`
	Date         string     `json:"date"` // YYYY-MM-DD
	Shift        string     `json:"shift"`
	Quantity     float64    `json:"quantity"`
	FatContent   float64    `json:"fatContent"`
	SNFContent   float64    `json:"snfContent"`
	RatePerLiter float64    `json:"ratePerLiter"`
	CattleType   CattleType `json:"cattleType"`
	Status       string     `json:"status"`
}

// Collection payment states.
const (
	CollectionPending  = "pending"
	CollectionVerified = "verified"
	CollectionPaid     = "paid"
)

// Amount is the payable value of the record.
func (c MilkCollection) Amount() float64 {
	return c.Quantity * c.RatePerLiter
}
