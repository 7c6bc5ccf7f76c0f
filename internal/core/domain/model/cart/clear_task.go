package cart

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

var ErrClearTaskIsNotConstructed = errors.New("ClearTask must be created via NewClearTask or RestoreClearTask")

// MaxClearAttempts is the number of failed clears after which a task is parked.
const MaxClearAttempts = 10

// TaskStatus is the lifecycle of a ClearTask. A Pending task ends either Done, once
// the cart is emptied, or Parked, once it has failed MaxClearAttempts times.
type TaskStatus string

const (
	TaskPending TaskStatus = "pending"
	TaskDone    TaskStatus = "done"
	TaskParked  TaskStatus = "parked"
)

// ClearTask records that a user's cart must be emptied because an order was placed.
// It is written in the same transaction as the order.
//
// placedAt is the order's creation time. Only items that were in the cart by then
// belong to the checkout; anything added later survives the clear.
type ClearTask struct {
	id        kernel.UUID
	userID    kernel.UUID
	orderID   kernel.UUID
	placedAt  time.Time
	status    TaskStatus
	attempts  int
	lastError string
	createdAt time.Time

	isConstructed bool
}

// NewClearTask creates a pending task for the cart of userID, caused by the order
// orderID placed at placedAt.
func NewClearTask(userID, orderID kernel.UUID, placedAt time.Time) (*ClearTask, error) {
	if err := errors.Join(userID.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if placedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("placedAt")
	}
	return &ClearTask{
		id:            kernel.NewUUID(),
		userID:        userID,
		orderID:       orderID,
		placedAt:      placedAt.UTC(),
		status:        TaskPending,
		isConstructed: true,
	}, nil
}

func RestoreClearTask(
	id, userID, orderID kernel.UUID,
	placedAt time.Time,
	status TaskStatus,
	attempts int,
	lastError string,
	createdAt time.Time,
) *ClearTask {
	return &ClearTask{
		id:            id,
		userID:        userID,
		orderID:       orderID,
		placedAt:      placedAt,
		status:        status,
		attempts:      attempts,
		lastError:     lastError,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (t *ClearTask) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrClearTaskIsNotConstructed
	}
	return nil
}

func (t *ClearTask) ID() kernel.UUID {
	return t.id
}

func (t *ClearTask) UserID() kernel.UUID {
	return t.userID
}

func (t *ClearTask) OrderID() kernel.UUID {
	return t.orderID
}

// PlacedAt is the cut-off for the clear: items added after it are kept.
func (t *ClearTask) PlacedAt() time.Time {
	return t.placedAt
}

func (t *ClearTask) Status() TaskStatus {
	return t.status
}

func (t *ClearTask) Attempts() int {
	return t.attempts
}

func (t *ClearTask) LastError() string {
	return t.lastError
}

func (t *ClearTask) CreatedAt() time.Time {
	return t.createdAt
}

func (t *ClearTask) IsPending() bool {
	return t.status == TaskPending
}

func (t *ClearTask) IsParked() bool {
	return t.status == TaskParked
}

// Complete marks the cart as emptied.
func (t *ClearTask) Complete() {
	t.status = TaskDone
	t.lastError = ""
}

// Fail records a failed clear attempt. The task stays pending until it reaches
// MaxClearAttempts, then it is parked and no longer retried.
func (t *ClearTask) Fail(cause error) {
	t.attempts++
	if cause != nil {
		t.lastError = cause.Error()
	}
	if t.attempts >= MaxClearAttempts {
		t.status = TaskParked
	}
}
