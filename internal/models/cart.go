package models

// CartItem is one line of the cart: a snapshot of the product at the moment
// it was added, plus the selected quantity.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Discount  float64 `json:"discount,omitempty"`
	Unit      string  `json:"unit,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
	Quantity  int     `json:"quantity"`
}

// UnitPrice is the discounted unit price of the line.
func (i CartItem) UnitPrice() float64 {
	if i.Discount == 0 {
		return i.Price
	}
	return i.Price * (1 - i.Discount/100)
}

// Subtotal is the discounted unit price times the quantity.
func (i CartItem) Subtotal() float64 {
	return i.UnitPrice() * float64(i.Quantity)
}
