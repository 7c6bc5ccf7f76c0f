package cartrepo

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClearTaskRepository implements ports.CartClearTaskRepository over cart_clear_tasks.
type GormClearTaskRepository struct {
	db *gorm.DB
}

func NewGormClearTaskRepository(db *gorm.DB) *GormClearTaskRepository {
	return &GormClearTaskRepository{db: db}
}

func (r *GormClearTaskRepository) Add(ctx context.Context, task *cart.ClearTask) error {
	if err := task.Validate(); err != nil {
		return err
	}

	dto := taskFromDomain(task)
	if dto.CreatedAt.IsZero() {
		dto.CreatedAt = r.db.NowFunc().UTC().Truncate(time.Microsecond)
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetPending returns the oldest pending tasks first.
func (r *GormClearTaskRepository) GetPending(ctx context.Context, limit int) ([]*cart.ClearTask, error) {
	var dtos []ClearTaskDTO
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(cart.TaskPending)).
		Order("created_at, id").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	tasks := make([]*cart.ClearTask, 0, len(dtos))
	for _, dto := range dtos {
		task, err := taskToDomain(dto)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (r *GormClearTaskRepository) MarkDone(ctx context.Context, id kernel.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&ClearTaskDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"status":     string(cart.TaskDone),
			"last_error": "",
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartClearTaskId", id.String())
	}
	return nil
}

func (r *GormClearTaskRepository) MarkFailed(ctx context.Context, task *cart.ClearTask) error {
	result := r.db.WithContext(ctx).
		Model(&ClearTaskDTO{}).
		Where("id = ? AND status = ?", task.ID().Bytes(), string(cart.TaskPending)).
		Updates(map[string]any{
			"status":     string(task.Status()),
			"attempts":   task.Attempts(),
			"last_error": task.LastError(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("cartClearTaskId", task.ID().String())
	}
	return nil
}
