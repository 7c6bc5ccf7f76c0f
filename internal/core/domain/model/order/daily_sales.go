package order

import "storefront/internal/core/domain/model/kernel"

// DateLayout is the calendar-day key used by sales reports.
const DateLayout = "2006-01-02"

// DailySales is one row of the daily sales report: the Delivered orders created on
// Date (UTC), their summed totals and their count.
type DailySales struct {
	Date        string
	TotalSales  kernel.Money
	OrdersCount int
}
