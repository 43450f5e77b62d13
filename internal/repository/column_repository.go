package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"teamboard/internal/model"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) Create(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Create(column).Error
}

func (r *ColumnRepository) GetByID(ctx context.Context, id string) (*model.Column, error) {
	var column model.Column
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&column).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &column, nil
}

func (r *ColumnRepository) GetAll(ctx context.Context) ([]model.Column, error) {
	var columns []model.Column
	err := r.db.WithContext(ctx).Order("position").Find(&columns).Error
	return columns, err
}

func (r *ColumnRepository) Update(ctx context.Context, column *model.Column) error {
	return r.db.WithContext(ctx).Save(column).Error
}

func (r *ColumnRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.Column{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrColumnNotFound
	}
	return nil
}

func (r *ColumnRepository) GetMaxPosition(ctx context.Context) (int, error) {
	var maxPosition struct {
		Max int
	}
	err := r.db.WithContext(ctx).Model(&model.Column{}).
		Select("COALESCE(MAX(position), 0) as max").
		Scan(&maxPosition).Error

	return maxPosition.Max, err
}

func (r *ColumnRepository) Reorder(ctx context.Context, columns []model.Column) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, column := range columns {
			if err := tx.Model(&model.Column{}).Where("id = ?", column.ID).
				Update("position", column.Position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
