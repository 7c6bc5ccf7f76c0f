// Package cart models the buyer's shopping cart as seen by the order core.
//
// The core never reads cart contents to build an order; callers pass line items
// explicitly. It only needs to empty the cart once an order is recorded. Because the
// cart lives outside the order transaction, every pending clear is tracked by a
// ClearTask until it succeeds.
package cart
