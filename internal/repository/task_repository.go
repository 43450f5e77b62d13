package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"teamboard/internal/model"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create adds a new task to the database
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID retrieves a task by its ID
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	result := r.db.WithContext(ctx).First(&task, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, result.Error
	}
	return &task, nil
}

// GetAll retrieves every task
func (r *TaskRepository) GetAll(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Order("created_at").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByColumnID retrieves all tasks in a specific column
func (r *TaskRepository) GetByColumnID(ctx context.Context, columnID string) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("column_id = ?", columnID).Order("created_at").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByCategoryID retrieves all tasks in a specific category
func (r *TaskRepository) GetByCategoryID(ctx context.Context, categoryID string) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("category_id = ?", categoryID).Order("created_at").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// GetByAssignee retrieves all tasks assigned to a person, by name
func (r *TaskRepository) GetByAssignee(ctx context.Context, name string) ([]model.Task, error) {
	var tasks []model.Task
	result := r.db.WithContext(ctx).Where("LOWER(assigned_to) = LOWER(?)", name).Order("created_at").Find(&tasks)
	if result.Error != nil {
		return nil, result.Error
	}
	return tasks, nil
}

// Update updates an existing task
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	result := r.db.WithContext(ctx).Save(task)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes a task by its ID
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
