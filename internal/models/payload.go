package models

// OrderPayload is the JSON body of POST /api/send-email, shared between the
// checkout client and the mailer endpoint.
type OrderPayload struct {
	Customer    PayloadCustomer `json:"customer"`
	Items       []PayloadItem   `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
	PaymentMode string          `json:"paymentMode"`
	OrderID     string          `json:"orderId"`
}

// PayloadCustomer carries the checkout form fields on the wire.
type PayloadCustomer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PayloadItem is one ordered line as rendered in the notification email.
type PayloadItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}
