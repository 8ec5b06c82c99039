package store

import (
	"context"
)

// Collection names used by the services. Kept identical to the keys the
// storefront has always persisted under.
const (
	ProductsCollection = "thrift_products"
	OrdersCollection   = "thrift_orders"
	AuthCollection     = "thrift_auth"
)

// Store maps a collection name to a JSON-serialized value, typically an
// ordered list of records. Read decodes the stored value into v and leaves
// v untouched when the collection is absent or unreadable, so callers see
// an empty collection instead of an error. Write replaces the stored value.
//
// A single logical writer is assumed; drivers do not coordinate concurrent
// writers beyond keeping their own internals safe.
type Store interface {
	Read(ctx context.Context, collection string, v interface{}) error
	Write(ctx context.Context, collection string, v interface{}) error
}
