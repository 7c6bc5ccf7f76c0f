package http

import (
	"errors"
	"time"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Address struct {
	Street     string `json:"street"`
	Apartment  string `json:"apartment,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type NewOrder struct {
	BuyerID         string          `json:"buyerId"`
	LineItemIDs     []string        `json:"lineItemIds"`
	ShippingAddress Address         `json:"shippingAddress"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	ShippingCost    decimal.Decimal `json:"shippingCost"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
}

// OrderPatch mirrors order.Patch; absent fields stay nil.
type OrderPatch struct {
	LineItemIDs     *[]string        `json:"lineItemIds,omitempty"`
	Status          *string          `json:"status,omitempty"`
	ShippingAddress *Address         `json:"shippingAddress,omitempty"`
	Subtotal        *decimal.Decimal `json:"subtotal,omitempty"`
	ShippingCost    *decimal.Decimal `json:"shippingCost,omitempty"`
	Tax             *decimal.Decimal `json:"tax,omitempty"`
	Total           *decimal.Decimal `json:"total,omitempty"`
}

type Order struct {
	ID               string    `json:"id"`
	BuyerID          string    `json:"buyerId"`
	LineItemIDs      []string  `json:"lineItemIds"`
	ShippingAddress  Address   `json:"shippingAddress"`
	Subtotal         string    `json:"subtotal"`
	ShippingCost     string    `json:"shippingCost"`
	Tax              string    `json:"tax"`
	Total            string    `json:"total"`
	Status           string    `json:"status"`
	ConfirmationCode int       `json:"confirmationCode"`
	CreatedAt        time.Time `json:"createdAt"`
}

type Buyer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price string `json:"price"`
}

// OrderDetails is an Order with buyer and line items expanded. Buyer is omitted
// when the user record no longer exists.
type OrderDetails struct {
	Order
	Buyer     *Buyer    `json:"buyer,omitempty"`
	LineItems []Product `json:"lineItems"`
}

type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type DailySales struct {
	Date        string `json:"date"`
	TotalSales  string `json:"totalSales"`
	OrdersCount int    `json:"ordersCount"`
}

func (a Address) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(a.Street, a.Apartment, a.City, a.State, a.PostalCode)
}

func (o NewOrder) amounts() (order.Amounts, error) {
	var amounts order.Amounts
	var subtotalErr, shippingErr, taxErr, totalErr error
	amounts.Subtotal, subtotalErr = kernel.NewMoney("subtotal", o.Subtotal)
	amounts.ShippingCost, shippingErr = kernel.NewMoney("shippingCost", o.ShippingCost)
	amounts.Tax, taxErr = kernel.NewMoney("tax", o.Tax)
	amounts.Total, totalErr = kernel.NewMoney("total", o.Total)
	return amounts, errors.Join(subtotalErr, shippingErr, taxErr, totalErr)
}

func (p OrderPatch) toDomain() (order.Patch, error) {
	var patch order.Patch
	var errList []error

	if p.LineItemIDs != nil {
		ids, err := kernel.ParseIDs("lineItemIds", *p.LineItemIDs)
		errList = append(errList, err)
		patch.LineItems = &ids
	}
	if p.Status != nil {
		status, err := order.StatusFromString(*p.Status)
		errList = append(errList, err)
		patch.Status = &status
	}
	if p.ShippingAddress != nil {
		address, err := p.ShippingAddress.toDomain()
		if err != nil {
			err = errs.NewValueIsInvalidErrorWithCause("shippingAddress", err)
		}
		errList = append(errList, err)
		patch.ShippingAddress = &address
	}
	patch.Subtotal = optionalMoney("subtotal", p.Subtotal, &errList)
	patch.ShippingCost = optionalMoney("shippingCost", p.ShippingCost, &errList)
	patch.Tax = optionalMoney("tax", p.Tax, &errList)
	patch.Total = optionalMoney("total", p.Total, &errList)

	if err := errors.Join(errList...); err != nil {
		return order.Patch{}, err
	}
	return patch, nil
}

func optionalMoney(paramName string, amount *decimal.Decimal, errList *[]error) *kernel.Money {
	if amount == nil {
		return nil
	}
	m, err := kernel.NewMoney(paramName, *amount)
	if err != nil {
		*errList = append(*errList, err)
		return nil
	}
	return &m
}

func money(m kernel.Money) string {
	return m.Decimal().StringFixed(2)
}

func addressFromDomain(a kernel.Address) Address {
	return Address{
		Street:     a.Street(),
		Apartment:  a.Apartment(),
		City:       a.City(),
		State:      a.State(),
		PostalCode: a.PostalCode(),
	}
}

func orderFromDomain(o *order.Order) Order {
	return Order{
		ID:               o.ID().String(),
		BuyerID:          o.Buyer().String(),
		LineItemIDs:      kernel.Strings(o.LineItems()),
		ShippingAddress:  addressFromDomain(o.ShippingAddress()),
		Subtotal:         money(o.Subtotal()),
		ShippingCost:     money(o.ShippingCost()),
		Tax:              money(o.Tax()),
		Total:            money(o.Total()),
		Status:           o.Status().String(),
		ConfirmationCode: o.ConfirmationCode().Int(),
		CreatedAt:        o.CreatedAt(),
	}
}

func ordersFromDomain(orders []*order.Order) []Order {
	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderFromDomain(o)
	}
	return response
}

func detailsFromDomain(details queries.OrderDetails) OrderDetails {
	response := OrderDetails{
		Order:     orderFromDomain(details.Order),
		LineItems: make([]Product, len(details.LineItems)),
	}

	if details.Buyer != nil {
		response.Buyer = &Buyer{
			ID:    details.Buyer.ID().String(),
			Name:  details.Buyer.Name(),
			Email: details.Buyer.Email(),
		}
	}

	for i, p := range details.LineItems {
		response.LineItems[i] = Product{
			ID:    p.ID().String(),
			Name:  p.Name(),
			Price: money(p.Price()),
		}
	}

	return response
}

func dailySalesFromDomain(sales []order.DailySales) []DailySales {
	response := make([]DailySales, len(sales))
	for i, s := range sales {
		response[i] = DailySales{
			Date:        s.Date,
			TotalSales:  money(s.TotalSales),
			OrdersCount: s.OrdersCount,
		}
	}
	return response
}

func cartFromDomain(items []cart.Item) []CartItem {
	response := make([]CartItem, len(items))
	for i, item := range items {
		response[i] = CartItem{
			ProductID: item.ProductID().String(),
			Quantity:  item.Quantity(),
		}
	}
	return response
}
