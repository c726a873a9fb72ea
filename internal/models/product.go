package models

// Product is a catalog entry. The catalog is defined at build time and never
// mutated at runtime.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount,omitempty"` // percent off, 0 = none
	Unit        string  `json:"unit"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url,omitempty"`
	MinQuantity int     `json:"min_quantity"`
	BulkOptions []int   `json:"bulk_options,omitempty"`
	ComingSoon  bool    `json:"coming_soon,omitempty"`
}

// DiscountedPrice returns the effective unit price after the discount
// percentage, or the plain price when no discount is set.
func (p Product) DiscountedPrice() float64 {
	if p.Discount == 0 {
		return p.Price
	}
	return p.Price * (1 - p.Discount/100)
}

// Available reports whether the product can currently be ordered.
func (p Product) Available() bool {
	return !p.ComingSoon
}
