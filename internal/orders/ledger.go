// Package orders keeps the client-local order ledger. It is not a server of
// record: the mailer endpoint never writes back into it.
package orders

import (
	"errors"
	"fmt"
	"time"

	"gromart_back_end/internal/models"
	"gromart_back_end/internal/store"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrOrderAlreadyClosed = errors.New("order already in a terminal status")
)

// idPrefix + unix millis forms the order id. Two orders placed within the
// same millisecond collide; the scheme is kept for wire compatibility.
const idPrefix = "GRM"

// deliveryWindow is the fixed delivery estimate added to every order.
const deliveryWindow = 2 * time.Hour

// Ledger is the session's list of placed orders, most recent first.
type Ledger struct {
	store store.Store
	list  []models.Order
	now   func() time.Time
}

// New returns a ledger backed by s, restoring any persisted snapshot.
func New(s store.Store) (*Ledger, error) {
	l := &Ledger{store: s, now: time.Now}
	err := s.Load(store.KeyOrders, &l.list)
	if err != nil && !errors.Is(err, store.ErrNoSnapshot) {
		return nil, fmt.Errorf("restore orders: %w", err)
	}
	return l, nil
}

// NewID returns an order id for the current instant.
func NewID(at time.Time) string {
	return fmt.Sprintf("%s%d", idPrefix, at.UnixMilli())
}

// PlaceOrder records a new order and returns its id. COD orders start
// confirmed, UPI orders start pending; nothing transitions them afterwards
// except the explicit Advance and Cancel store actions.
func (l *Ledger) PlaceOrder(items []models.CartItem, customer models.CustomerDetails, total float64, method models.PaymentMethod) (string, error) {
	now := l.now()
	status := models.StatusPending
	if method == models.PaymentCOD {
		status = models.StatusConfirmed
	}

	order := models.Order{
		ID:                NewID(now),
		Items:             append([]models.CartItem(nil), items...),
		TotalAmount:       total,
		Customer:          customer,
		PaymentMethod:     method,
		Status:            status,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(deliveryWindow),
	}

	l.list = append([]models.Order{order}, l.list...)
	if err := l.persist(); err != nil {
		return "", err
	}
	return order.ID, nil
}

// GetOrderByID looks up one order.
func (l *Ledger) GetOrderByID(id string) (models.Order, bool) {
	for _, order := range l.list {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// List returns all orders, most recent first.
func (l *Ledger) List() []models.Order {
	return l.list
}

// next maps each status to its successor on the happy path.
var next = map[models.OrderStatus]models.OrderStatus{
	models.StatusPending:   models.StatusConfirmed,
	models.StatusConfirmed: models.StatusPreparing,
	models.StatusPreparing: models.StatusDelivered,
}

// Advance moves the order one step along pending → confirmed → preparing →
// delivered and returns the new status. This is the store-owner action; no
// external event ever drives it.
func (l *Ledger) Advance(id string) (models.OrderStatus, error) {
	for i := range l.list {
		if l.list[i].ID != id {
			continue
		}
		to, ok := next[l.list[i].Status]
		if !ok {
			return "", fmt.Errorf("%s from %s: %w", id, l.list[i].Status, ErrInvalidTransition)
		}
		l.list[i].Status = to
		if err := l.persist(); err != nil {
			return "", err
		}
		return to, nil
	}
	return "", fmt.Errorf("%s: %w", id, ErrOrderNotFound)
}

// Cancel moves the order to cancelled from any non-terminal status.
func (l *Ledger) Cancel(id string) error {
	for i := range l.list {
		if l.list[i].ID != id {
			continue
		}
		if l.list[i].Status.Terminal() {
			return fmt.Errorf("%s is %s: %w", id, l.list[i].Status, ErrOrderAlreadyClosed)
		}
		l.list[i].Status = models.StatusCancelled
		return l.persist()
	}
	return fmt.Errorf("%s: %w", id, ErrOrderNotFound)
}

func (l *Ledger) persist() error {
	if err := l.store.Save(store.KeyOrders, l.list); err != nil {
		return fmt.Errorf("persist orders: %w", err)
	}
	return nil
}
