package cart

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// Item is one product held in a user's cart.
type Item struct {
	userID    kernel.UUID
	productID kernel.UUID
	quantity  int
}

func NewItem(userID, productID kernel.UUID, quantity int) (Item, error) {
	if err := userID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	if err := productID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("productId", err)
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "+inf")
	}
	return Item{userID: userID, productID: productID, quantity: quantity}, nil
}

func (i Item) UserID() kernel.UUID {
	return i.userID
}

func (i Item) ProductID() kernel.UUID {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}
