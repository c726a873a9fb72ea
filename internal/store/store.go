// Package store is the persistence port of the session state. Cart, ledger
// and user record are written as full JSON snapshots under fixed keys, the
// same way the browser build keeps them in local storage.
package store

import "errors"

// ErrNoSnapshot is returned by Load when no snapshot exists for the key.
var ErrNoSnapshot = errors.New("no snapshot for key")

// Snapshot keys shared by the state packages.
const (
	KeyUser   = "gromart_user"
	KeyCart   = "gromart_cart"
	KeyOrders = "gromart_orders"
)

// Store persists full JSON snapshots by key. Every Save rewrites the whole
// value; there are no partial updates.
type Store interface {
	Load(key string, into any) error
	Save(key string, value any) error
	Delete(key string) error
}
