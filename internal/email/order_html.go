package email

import (
	"fmt"
	"strconv"
	"strings"

	"gromart_back_end/internal/models"
)

// OrderSubject is the notification subject line.
func OrderSubject(orderID string) string {
	return fmt.Sprintf("New Order - %s", orderID)
}

// OrderHTML formats the order payload into the notification body. Missing
// customer fields render as N/A; an empty item list renders a placeholder
// line. There is no schema validation beyond these defaults.
func OrderHTML(p models.OrderPayload) string {
	var items strings.Builder
	if len(p.Items) == 0 {
		items.WriteString("<li>No products found</li>")
	}
	for _, item := range p.Items {
		subtotal := item.Price * float64(item.Quantity)
		fmt.Fprintf(&items, "<li>%s - Qty: %d - ₹%s</li>",
			item.Name, item.Quantity, formatAmount(subtotal))
	}

	paymentMode := p.PaymentMode
	if paymentMode == "" {
		paymentMode = "unknown"
	}

	return fmt.Sprintf(`
    <h2>New Order Details</h2>
    <p><strong>Order ID:</strong> %s</p>
    <p><strong>Customer Name:</strong> %s</p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Address:</strong> %s</p>
    <h3>Products:</h3>
    <ul>%s</ul>
    <p><strong>Total Amount:</strong> ₹%s</p>
    <p><strong>Payment Mode:</strong> %s</p>
  `,
		p.OrderID,
		orNA(p.Customer.Name),
		orNA(p.Customer.Phone),
		orNA(p.Customer.Address),
		items.String(),
		formatAmount(p.TotalAmount),
		paymentMode,
	)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// formatAmount prints whole rupees without a decimal point and fractional
// amounts with only the digits needed.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
