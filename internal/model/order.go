package model

// OrderRecord is one row of the order dataset.
//
// The seven logical columns (product, channel, region, unit_price,
// discount_pct, revenue, cost) are required by every loader; extra source
// columns such as date or quantity are carried only if useful to the
// caller and are not part of the core contract.
type OrderRecord struct {
	Product     string  `json:"product"`
	Channel     string  `json:"channel"`
	Region      string  `json:"region"`
	UnitPrice   float64 `json:"unit_price"`
	DiscountPct float64 `json:"discount_pct"` // fraction in [0,1)
	Revenue     float64 `json:"revenue"`
	Cost        float64 `json:"cost"`
}

// NetPrice is the unit price after discount.
func (r OrderRecord) NetPrice() float64 {
	return r.UnitPrice * (1 - r.DiscountPct)
}

// Profit is revenue minus cost for this record.
func (r OrderRecord) Profit() float64 {
	return r.Revenue - r.Cost
}
