package repository

import (
	"context"

	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
)

type UserCollectionStatistic struct {
	UserID string
	Total  int64
}

type CollectionRepository interface {
	Create(ctx context.Context, data *entity.CollectionEntry) error
	GetPrizeIDsByUserID(ctx context.Context, userID string) ([]string, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.CollectionEntry, error)

	// GetFirstByPrizeCategory returns the earliest entry of a prize in the
	// category, gorm.ErrRecordNotFound if nobody holds one.
	GetFirstByPrizeCategory(ctx context.Context, category entity.PrizeCategory) (*entity.CollectionEntry, error)

	Statistic(ctx context.Context) ([]UserCollectionStatistic, error)
}

type collectionRepository struct{}

func NewCollectionRepository() *collectionRepository {
	return &collectionRepository{}
}

func (r *collectionRepository) Create(ctx context.Context, data *entity.CollectionEntry) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *collectionRepository) GetPrizeIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	var result []string
	err := xcontext.DB(ctx).Model(&entity.CollectionEntry{}).
		Where("user_id=?", userID).
		Pluck("prize_id", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collectionRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.CollectionEntry, error) {
	var result []entity.CollectionEntry
	err := xcontext.DB(ctx).
		Preload("Prize").
		Where("user_id=?", userID).
		Order("collected_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *collectionRepository) GetFirstByPrizeCategory(
	ctx context.Context, category entity.PrizeCategory,
) (*entity.CollectionEntry, error) {
	var result entity.CollectionEntry
	err := xcontext.DB(ctx).
		Joins("join prizes on prizes.id=collection_entries.prize_id").
		Where("prizes.category=?", category).
		Order("collection_entries.collected_at ASC").
		Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *collectionRepository) Statistic(ctx context.Context) ([]UserCollectionStatistic, error) {
	var result []UserCollectionStatistic
	err := xcontext.DB(ctx).Model(&entity.CollectionEntry{}).
		Select("user_id, COUNT(*) AS total").
		Group("user_id").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
