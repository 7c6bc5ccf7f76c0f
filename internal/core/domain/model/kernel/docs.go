// Package kernel provides the shared value objects of the storefront domain.
//
// The package includes:
//   - UUID: identifier of orders, users and products; the only accepted identifier syntax
//   - Address: the shipping address copied by value into an order
//   - Money: a non-negative decimal amount for subtotal, shipping, tax and total
//
// Zero values of these types are invalid; use the constructors.
package kernel
