// Package order provides the Order aggregate of the storefront: a persisted record of a
// purchase with its buyer, line items, shipping address, monetary breakdown, status and
// a human-facing confirmation code.
//
// Key business rules:
//   - Every order references exactly one buyer, resolved at creation and never changed
//   - Line items are non-empty at creation and change only through an explicit patch
//   - New orders start in the Delivered status
//   - Status is a flat field: any valid status may replace any other
//   - Subtotal, shipping cost, tax and total are stored as supplied, never recomputed
//   - The confirmation code is generated once and is not guaranteed to be unique
//   - createdAt is assigned by the repository and never changes
package order
