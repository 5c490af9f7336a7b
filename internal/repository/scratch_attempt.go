package repository

import (
	"context"

	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
)

type ScratchAttemptRepository interface {
	Create(ctx context.Context, data *entity.ScratchAttempt) error
	GetLastByUserID(ctx context.Context, userID string) (*entity.ScratchAttempt, error)
	Count(ctx context.Context) (int64, error)
}

type scratchAttemptRepository struct{}

func NewScratchAttemptRepository() *scratchAttemptRepository {
	return &scratchAttemptRepository{}
}

func (r *scratchAttemptRepository) Create(ctx context.Context, data *entity.ScratchAttempt) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *scratchAttemptRepository) GetLastByUserID(ctx context.Context, userID string) (*entity.ScratchAttempt, error) {
	var result entity.ScratchAttempt
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Order("scratched_at DESC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *scratchAttemptRepository) Count(ctx context.Context) (int64, error) {
	var result int64
	if err := xcontext.DB(ctx).Model(&entity.ScratchAttempt{}).Count(&result).Error; err != nil {
		return 0, err
	}

	return result, nil
}
