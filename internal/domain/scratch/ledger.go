package scratch

import (
	"context"
	"errors"

	"github.com/questx-lab/scratchcard/internal/entity"
	"gorm.io/gorm"
)

func (e *engine) CollectedPrizes(ctx context.Context, userID string) (map[string]struct{}, error) {
	prizeIDs, err := e.collectionRepo.GetPrizeIDsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make(map[string]struct{}, len(prizeIDs))
	for _, id := range prizeIDs {
		result[id] = struct{}{}
	}

	return result, nil
}

func (e *engine) HasUniquePrizeBeenAwarded(ctx context.Context) (bool, error) {
	_, err := e.collectionRepo.GetFirstByPrizeCategory(ctx, entity.UniquePrize)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
