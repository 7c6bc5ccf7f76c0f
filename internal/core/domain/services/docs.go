// Package services provides domain services that compute over several orders at once
// and therefore do not belong to the Order aggregate itself.
//
// The package includes:
//   - SalesAggregator: groups Delivered orders into a per-day sales report
package services
