package email

import (
	"testing"

	"gromart_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderSubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "New Order - GRM1700000000000", OrderSubject("GRM1700000000000"))
}

func TestOrderHTML_FullPayload(t *testing.T) {
	t.Parallel()

	html := OrderHTML(models.OrderPayload{
		Customer: models.PayloadCustomer{
			Name:    "Priya",
			Phone:   "9876543210",
			Address: "12 MG Road",
		},
		Items: []models.PayloadItem{
			{Name: "Rice 5kg", Quantity: 2, Price: 250},
			{Name: "Tomatoes 1kg", Quantity: 3, Price: 34},
		},
		TotalAmount: 602,
		PaymentMode: "cod",
		OrderID:     "GRM1700000000000",
	})

	assert.Contains(t, html, "<h2>New Order Details</h2>")
	assert.Contains(t, html, "<strong>Order ID:</strong> GRM1700000000000")
	assert.Contains(t, html, "<strong>Customer Name:</strong> Priya")
	assert.Contains(t, html, "<strong>Phone:</strong> 9876543210")
	assert.Contains(t, html, "<strong>Address:</strong> 12 MG Road")
	assert.Contains(t, html, "<li>Rice 5kg - Qty: 2 - ₹500</li>", "per-line subtotal")
	assert.Contains(t, html, "<li>Tomatoes 1kg - Qty: 3 - ₹102</li>")
	assert.Contains(t, html, "<strong>Total Amount:</strong> ₹602")
	assert.Contains(t, html, "<strong>Payment Mode:</strong> cod")
}

func TestOrderHTML_MissingFieldsRenderPlaceholders(t *testing.T) {
	t.Parallel()

	html := OrderHTML(models.OrderPayload{OrderID: "GRM1"})

	assert.Contains(t, html, "<strong>Customer Name:</strong> N/A")
	assert.Contains(t, html, "<strong>Phone:</strong> N/A")
	assert.Contains(t, html, "<strong>Address:</strong> N/A")
	assert.Contains(t, html, "<li>No products found</li>")
	assert.Contains(t, html, "<strong>Total Amount:</strong> ₹0")
	assert.Contains(t, html, "<strong>Payment Mode:</strong> unknown")
}

func TestOrderHTML_FractionalAmounts(t *testing.T) {
	t.Parallel()

	html := OrderHTML(models.OrderPayload{
		Items:       []models.PayloadItem{{Name: "Stayfree Secure XL", Quantity: 6, Price: 7.2}},
		TotalAmount: 43.2,
		PaymentMode: "upi",
		OrderID:     "GRM1",
	})

	assert.Contains(t, html, "₹43.2")
	assert.Contains(t, html, "Qty: 6")
}
