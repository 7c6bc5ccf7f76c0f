// Package queries contains read-only operations over orders.
// Queries never open a transaction; they read through repository ports and
// return domain objects or read models.
package queries
