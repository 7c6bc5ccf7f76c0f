package services

import (
	"sort"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// SalesAggregator builds the daily sales report.
//
// Business rules:
//   - Only orders whose status is exactly Delivered are counted
//   - Orders are bucketed by the UTC calendar day of their creation time
//   - Each bucket sums order totals and counts orders
//   - Buckets are returned in ascending date order
//   - Days without sales are absent, never zero-filled
//
// Example usage:
//
//	aggregator := services.NewSalesAggregator()
//	report := aggregator.DailySales(deliveredOrders)
//	for _, day := range report {
//	    fmt.Println(day.Date, day.TotalSales, day.OrdersCount)
//	}
type SalesAggregator struct{}

func NewSalesAggregator() SalesAggregator {
	return SalesAggregator{}
}

// DailySales aggregates orders into one row per day. Orders that are not Delivered,
// not constructed, or nil are ignored. The result is never nil.
func (SalesAggregator) DailySales(orders []*order.Order) []order.DailySales {
	buckets := make(map[string]*order.DailySales)

	for _, o := range orders {
		if o.Validate() != nil || o.Status() != order.Delivered {
			continue
		}

		day := o.CreatedAt().UTC().Format(order.DateLayout)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &order.DailySales{Date: day, TotalSales: kernel.Money{}}
			buckets[day] = bucket
		}
		bucket.TotalSales = bucket.TotalSales.Add(o.Total())
		bucket.OrdersCount++
	}

	report := make([]order.DailySales, 0, len(buckets))
	for _, bucket := range buckets {
		report = append(report, *bucket)
	}
	sort.Slice(report, func(i, j int) bool {
		return report[i].Date < report[j].Date
	})

	return report
}
