package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// GetDailySalesQueryHandler loads Delivered orders and hands them to the
// SalesAggregator.
//
// Example:
//
//	handler := NewGetDailySalesQueryHandler(orderRepo, services.NewSalesAggregator())
//	report, err := handler.Handle(ctx, NewGetDailySalesQuery())
//	if err != nil {
//	    return err
//	}
//	for _, day := range report {
//	    fmt.Printf("%s: %s over %d orders\n", day.Date, day.TotalSales, day.OrdersCount)
//	}
type GetDailySalesQueryHandler struct {
	orders     ports.OrderRepository
	aggregator services.SalesAggregator
}

func NewGetDailySalesQueryHandler(
	orders ports.OrderRepository,
	aggregator services.SalesAggregator,
) GetDailySalesQueryHandler {
	return GetDailySalesQueryHandler{
		orders:     orders,
		aggregator: aggregator,
	}
}

// Handle returns an empty report when there are no Delivered orders.
func (h GetDailySalesQueryHandler) Handle(ctx context.Context, query GetDailySalesQuery) ([]order.DailySales, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	delivered, err := h.orders.FindByStatus(ctx, order.Delivered.String())
	if err != nil {
		return nil, err
	}

	return h.aggregator.DailySales(delivered), nil
}
