// Package cartrepo stores cart contents and the log of pending cart clears.
package cartrepo

import (
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type CartItemDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
	AddedAt   time.Time
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

type ClearTaskDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid"`
	OrderID   uuid.UUID `gorm:"type:uuid"`
	PlacedAt  time.Time
	Status    string
	Attempts  int
	LastError string
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ClearTaskDTO) TableName() string {
	return "cart_clear_tasks"
}

func itemToDomain(dto CartItemDTO) (cart.Item, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return cart.Item{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return cart.Item{}, err
	}

	return cart.NewItem(userID, productID, dto.Quantity)
}

func taskFromDomain(task *cart.ClearTask) ClearTaskDTO {
	return ClearTaskDTO{
		ID:        task.ID().Bytes(),
		UserID:    task.UserID().Bytes(),
		OrderID:   task.OrderID().Bytes(),
		PlacedAt:  task.PlacedAt(),
		Status:    string(task.Status()),
		Attempts:  task.Attempts(),
		LastError: task.LastError(),
		CreatedAt: task.CreatedAt(),
	}
}

func taskToDomain(dto ClearTaskDTO) (*cart.ClearTask, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return cart.RestoreClearTask(
		id,
		userID,
		orderID,
		dto.PlacedAt.UTC(),
		cart.TaskStatus(dto.Status),
		dto.Attempts,
		dto.LastError,
		dto.CreatedAt.UTC(),
	), nil
}
