package domain

// StateProduction is one row of the state-wise milk production ranking
// dataset.
type StateProduction struct {
	State      string  `json:"state"`
	Year       string  `json:"year"`
	Production float64 `json:"production"`
	Rank       int     `json:"rank"`
}

// DemandForecast is one row of the national demand forecast dataset.
type DemandForecast struct {
	Year       int     `json:"year"`
	Production float64 `json:"production"`
}

// DairyProduct is one row of the product/sales dataset. Only a fixed
// positional subset of the source columns is consumed.
type DairyProduct struct {
	Location         string  `json:"location"`
	ProductName      string  `json:"productName"`
	Brand            string  `json:"brand"`
	Quantity         float64 `json:"quantity"`
	PricePerUnit     float64 `json:"pricePerUnit"`
	TotalValue       float64 `json:"totalValue"`
	CustomerLocation string  `json:"customerLocation"`
	SalesChannel     string  `json:"salesChannel"`
}
