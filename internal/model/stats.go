package model

// Stats is the admin dashboard summary.
type Stats struct {
	PendingOrders     int64 `json:"pendingOrders"`
	TotalProducts     int   `json:"totalProducts"`
	AvailableProducts int   `json:"availableProducts"`
	SoldOutProducts   int   `json:"soldOutProducts"`
}

// SummarizeProducts fills the product counters of a Stats value.
func SummarizeProducts(products []Product, pendingOrders int64) Stats {
	s := Stats{PendingOrders: pendingOrders, TotalProducts: len(products)}
	for _, p := range products {
		if p.SoldOut() {
			s.SoldOutProducts++
		} else {
			s.AvailableProducts++
		}
	}
	return s
}
