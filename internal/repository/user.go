package repository

import (
	"context"
	"errors"
	"time"

	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.User, error)
	GetList(ctx context.Context) ([]entity.User, error)
	CountBonusScratch(ctx context.Context) (int64, error)
	UpdateBonusScratch(ctx context.Context, userID string, grant bool) error

	// UseDailyScratch sets the last scratch time to now only if the previous
	// one is at least cooldown old. It returns gorm.ErrRecordNotFound if the
	// user is still cooling down.
	UseDailyScratch(ctx context.Context, userID string, now time.Time, cooldown time.Duration) error

	// UseBonusScratch clears the bonus grant. It returns gorm.ErrRecordNotFound
	// if the user has no grant to use.
	UseBonusScratch(ctx context.Context, userID string) error
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var result entity.User
	if err := xcontext.DB(ctx).Take(&result, "username=?", username).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.User, error) {
	var result []entity.User
	if err := xcontext.DB(ctx).Find(&result, "id IN (?)", ids).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) GetList(ctx context.Context) ([]entity.User, error) {
	var result []entity.User
	if err := xcontext.DB(ctx).Order("created_at DESC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) CountBonusScratch(ctx context.Context) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.User{}).
		Where("bonus_scratch=?", true).
		Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *userRepository) UpdateBonusScratch(ctx context.Context, userID string, grant bool) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=?", userID).
		Update("bonus_scratch", grant)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) UseDailyScratch(
	ctx context.Context, userID string, now time.Time, cooldown time.Duration,
) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=? AND (last_scratch_at IS NULL OR last_scratch_at <= ?)", userID, now.Add(-cooldown)).
		Update("last_scratch_at", now)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of affected rows is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *userRepository) UseBonusScratch(ctx context.Context, userID string) error {
	tx := xcontext.DB(ctx).Model(&entity.User{}).
		Where("id=? AND bonus_scratch=?", userID, true).
		Update("bonus_scratch", false)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
