// Package checkout drives the order submission flow: collect delivery
// details and a payment choice, post the order to the mailer endpoint once,
// then either hand off to the UPI app or confirm directly for COD.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gromart_back_end/internal/cart"
	"gromart_back_end/internal/mailer"
	"gromart_back_end/internal/models"
	"gromart_back_end/internal/orders"
	"gromart_back_end/internal/upi"
)

var (
	ErrMissingDetails = errors.New("all customer details are required")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNotCollecting  = errors.New("checkout is not collecting")
)

// State of the checkout flow.
type State int

const (
	// Collecting gathers customer details and the payment choice.
	Collecting State = iota
	// Submitting has the single mailer call in flight.
	Submitting
	// Resolved means the order went through; the result says what to show.
	Resolved
)

// Action tells the caller what to do after a successful submit.
type Action int

const (
	// ActionConfirmed goes straight to the confirmation view (COD).
	ActionConfirmed Action = iota
	// ActionRedirect navigates a mobile client to the UPI deep link.
	ActionRedirect
	// ActionShowQR renders the deep link as a scannable code on desktop.
	ActionShowQR
)

// Result of a successful submit.
type Result struct {
	// OrderID is the id sent in the email payload and the UPI note.
	OrderID string
	// LedgerID is the id the ledger assigned to its own record. The ledger
	// and the mailer are unsynchronized copies of the order, so the two ids
	// are generated independently.
	LedgerID string
	Action   Action
	UPILink  string
	QRPNG    []byte
}

// Checkout is one checkout attempt over the session's cart and ledger.
type Checkout struct {
	cart   *cart.Cart
	ledger *orders.Ledger
	client *mailer.Client
	payee  upi.Payee
	mobile bool

	state    State
	customer models.CustomerDetails
	method   models.PaymentMethod
}

// New returns a checkout in Collecting. mobile selects the UPI hand-off:
// direct navigation on touch clients, a QR code otherwise.
func New(c *cart.Cart, l *orders.Ledger, client *mailer.Client, payee upi.Payee, mobile bool) *Checkout {
	return &Checkout{
		cart:   c,
		ledger: l,
		client: client,
		payee:  payee,
		mobile: mobile,
		state:  Collecting,
		method: models.PaymentCOD,
	}
}

// State returns the current flow state.
func (co *Checkout) State() State {
	return co.state
}

// SetCustomer records the delivery details while Collecting.
func (co *Checkout) SetCustomer(details models.CustomerDetails) error {
	if co.state != Collecting {
		return ErrNotCollecting
	}
	co.customer = details
	return nil
}

// SetPaymentMethod records the payment choice while Collecting.
func (co *Checkout) SetPaymentMethod(method models.PaymentMethod) error {
	if co.state != Collecting {
		return ErrNotCollecting
	}
	co.method = method
	return nil
}

// Submit validates the collected state, posts the order payload to the
// mailer endpoint exactly once, and on success records the order in the
// ledger and clears the cart. On any failure nothing is mutated and the
// checkout returns to Collecting so the user can retry.
func (co *Checkout) Submit(ctx context.Context) (*Result, error) {
	if co.state != Collecting {
		return nil, ErrNotCollecting
	}
	if co.customer.Name == "" || co.customer.Phone == "" || co.customer.Address == "" {
		return nil, ErrMissingDetails
	}
	items := co.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	orderID := orders.NewID(time.Now())
	total := co.cart.TotalPrice()
	payload := buildPayload(orderID, co.customer, items, total, co.method)

	co.state = Submitting
	if err := co.client.SendOrder(ctx, payload); err != nil {
		co.state = Collecting
		return nil, fmt.Errorf("place order: %w", err)
	}

	result := &Result{OrderID: orderID, Action: ActionConfirmed}
	if co.method == models.PaymentUPI {
		result.UPILink = upi.Link(co.payee, total, orderID)
		if co.mobile {
			result.Action = ActionRedirect
		} else {
			png, err := upi.QRPNG(result.UPILink)
			if err != nil {
				co.state = Collecting
				return nil, fmt.Errorf("render payment code: %w", err)
			}
			result.Action = ActionShowQR
			result.QRPNG = png
		}
	}

	ledgerID, err := co.ledger.PlaceOrder(items, co.customer, total, co.method)
	if err != nil {
		co.state = Collecting
		return nil, err
	}
	result.LedgerID = ledgerID

	if err := co.cart.Clear(); err != nil {
		co.state = Collecting
		return nil, err
	}

	co.state = Resolved
	return result, nil
}

// Reset returns a resolved checkout to Collecting for a fresh attempt.
func (co *Checkout) Reset() {
	co.state = Collecting
	co.customer = models.CustomerDetails{}
	co.method = models.PaymentCOD
}

func buildPayload(orderID string, customer models.CustomerDetails, items []models.CartItem, total float64, method models.PaymentMethod) models.OrderPayload {
	p := models.OrderPayload{
		Customer: models.PayloadCustomer{
			Name:    customer.Name,
			Phone:   customer.Phone,
			Address: customer.Address,
		},
		TotalAmount: total,
		PaymentMode: string(method),
		OrderID:     orderID,
	}
	for _, item := range items {
		p.Items = append(p.Items, models.PayloadItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.UnitPrice(),
		})
	}
	return p
}
