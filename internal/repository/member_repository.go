package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"teamboard/internal/model"
)

type MemberRepository struct {
	db *gorm.DB
}

// MemberRepositoryInterface is what the team handlers depend on; the
// integration endpoints are tested against a mock of it.
type MemberRepositoryInterface interface {
	Create(ctx context.Context, member *model.TeamMemberDetails) error
	GetByName(ctx context.Context, name string) (*model.TeamMemberDetails, error)
	GetByID(ctx context.Context, id string) (*model.TeamMemberDetails, error)
	GetAll(ctx context.Context) ([]model.TeamMemberDetails, error)
	Update(ctx context.Context, member *model.TeamMemberDetails) error
	Delete(ctx context.Context, id string) error
}

var _ MemberRepositoryInterface = (*MemberRepository)(nil)

func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

func (r *MemberRepository) Create(ctx context.Context, member *model.TeamMemberDetails) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByName looks a member up by case-insensitive name.
func (r *MemberRepository) GetByName(ctx context.Context, name string) (*model.TeamMemberDetails, error) {
	var member model.TeamMemberDetails
	err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) GetByID(ctx context.Context, id string) (*model.TeamMemberDetails, error) {
	var member model.TeamMemberDetails
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepository) GetAll(ctx context.Context) ([]model.TeamMemberDetails, error) {
	var members []model.TeamMemberDetails
	err := r.db.WithContext(ctx).Order("name").Find(&members).Error
	return members, err
}

func (r *MemberRepository) Update(ctx context.Context, member *model.TeamMemberDetails) error {
	result := r.db.WithContext(ctx).Save(member)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&model.TeamMemberDetails{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
