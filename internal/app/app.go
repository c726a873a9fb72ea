// Package app is the composition root of the storefront: it wires the
// session, cart and ledger over one snapshot store and hands out checkout
// attempts. All session state lives here and in the store, never on the
// server.
package app

import (
	"fmt"

	"gromart_back_end/internal/cart"
	"gromart_back_end/internal/checkout"
	"gromart_back_end/internal/config"
	"gromart_back_end/internal/mailer"
	"gromart_back_end/internal/orders"
	"gromart_back_end/internal/session"
	"gromart_back_end/internal/store"
	"gromart_back_end/internal/upi"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// App bundles the state objects of one storefront session.
type App struct {
	Session *session.Session
	Cart    *cart.Cart
	Ledger  *orders.Ledger

	mailer *mailer.Client
	payee  upi.Payee
}

// New builds the session state over s. The mailer endpoint and UPI payee come
// from the environment.
func New(s store.Store) (*App, error) {
	sess, err := session.New(s)
	if err != nil {
		return nil, err
	}
	c, err := cart.New(s)
	if err != nil {
		return nil, err
	}
	l, err := orders.New(s)
	if err != nil {
		return nil, err
	}
	return &App{
		Session: sess,
		Cart:    c,
		Ledger:  l,
		mailer:  mailer.NewClient(config.APIBaseURL()),
		payee:   upi.Payee{VPA: config.UPIPayeeVPA(), Name: config.UPIPayeeName()},
	}, nil
}

// NewCheckout starts a checkout attempt over the session's cart and ledger.
func (a *App) NewCheckout(mobile bool) *checkout.Checkout {
	return checkout.New(a.Cart, a.Ledger, a.mailer, a.payee, mobile)
}

// OpenStore builds the snapshot store selected by STORE_BACKEND.
func OpenStore() (store.Store, error) {
	switch backend := config.StoreBackend(); backend {
	case "memory":
		return store.NewMemStore(), nil
	case "file":
		return store.NewFileStore(config.StoreDir())
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr()})
		sessionID := config.Getenv("SESSION_ID", uuid.NewString())
		return store.NewRedisStore(client, sessionID), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
