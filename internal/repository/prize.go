package repository

import (
	"context"
	"time"

	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"gorm.io/gorm"
)

type PrizeRepository interface {
	Create(ctx context.Context, prize *entity.Prize) error
	GetByID(ctx context.Context, prizeID string) (*entity.Prize, error)
	GetList(ctx context.Context) ([]entity.Prize, error)

	// GetAwardable returns prizes in stock whose release time is not after now.
	GetAwardable(ctx context.Context, now time.Time) ([]entity.Prize, error)

	// CheckAndDecreaseRemaining takes one copy of the prize. It returns
	// gorm.ErrRecordNotFound if the prize is out of stock.
	CheckAndDecreaseRemaining(ctx context.Context, prizeID string) error

	SumRemaining(ctx context.Context) (int64, error)
}

type prizeRepository struct{}

func NewPrizeRepository() *prizeRepository {
	return &prizeRepository{}
}

func (r *prizeRepository) Create(ctx context.Context, prize *entity.Prize) error {
	return xcontext.DB(ctx).Create(prize).Error
}

func (r *prizeRepository) GetByID(ctx context.Context, prizeID string) (*entity.Prize, error) {
	var result entity.Prize
	if err := xcontext.DB(ctx).Take(&result, "id=?", prizeID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *prizeRepository) GetList(ctx context.Context) ([]entity.Prize, error) {
	var result []entity.Prize
	if err := xcontext.DB(ctx).Order("id ASC").Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *prizeRepository) GetAwardable(ctx context.Context, now time.Time) ([]entity.Prize, error) {
	var result []entity.Prize
	err := xcontext.DB(ctx).
		Where("remaining > 0 AND release_time <= ?", now).
		Order("id ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *prizeRepository) CheckAndDecreaseRemaining(ctx context.Context, prizeID string) error {
	tx := xcontext.DB(ctx).Model(&entity.Prize{}).
		Where("id=? AND remaining > 0", prizeID).
		Update("remaining", gorm.Expr("remaining-?", 1))
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *prizeRepository) SumRemaining(ctx context.Context) (int64, error) {
	var result int64
	err := xcontext.DB(ctx).Model(&entity.Prize{}).
		Select("COALESCE(SUM(remaining), 0)").
		Scan(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}
