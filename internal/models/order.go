package models

import "time"

// OrderStatus is the closed status set of a placed order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// PaymentMethod selects how the customer pays at checkout.
type PaymentMethod string

const (
	PaymentUPI PaymentMethod = "upi"
	PaymentCOD PaymentMethod = "cod"
)

// CustomerDetails are the delivery details collected at checkout. City and
// pincode only ever appear on the order record, the checkout form does not
// collect them.
type CustomerDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	Pincode string `json:"pincode,omitempty"`
}

// Order is one entry of the client-local order ledger.
type Order struct {
	ID                string          `json:"id"`
	Items             []CartItem      `json:"items"`
	TotalAmount       float64         `json:"total_amount"`
	Customer          CustomerDetails `json:"customer"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	Status            OrderStatus     `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
}
