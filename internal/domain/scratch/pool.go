package scratch

import (
	"context"
	"math"
	"time"

	"github.com/questx-lab/scratchcard/config"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/crypto"
)

func (e *engine) BuildPool(ctx context.Context, userID string, now time.Time) ([]PoolEntry, error) {
	collected, err := e.CollectedPrizes(ctx, userID)
	if err != nil {
		return nil, err
	}

	uniqueAwarded, err := e.HasUniquePrizeBeenAwarded(ctx)
	if err != nil {
		return nil, err
	}

	prizes, err := e.prizeRepo.GetAwardable(ctx, now)
	if err != nil {
		return nil, err
	}

	return buildPool(e.cfg, prizes, collected, uniqueAwarded, now), nil
}

func buildPool(
	cfg config.ScratchConfigs,
	prizes []entity.Prize,
	collected map[string]struct{},
	uniqueAwarded bool,
	now time.Time,
) []PoolEntry {
	pool := []PoolEntry{}
	for _, prize := range prizes {
		if prize.Remaining <= 0 || prize.ReleaseTime.After(now) {
			continue
		}

		if prize.IsUnique() {
			if uniqueAwarded || now.Before(cfg.UniqueReleaseTime) {
				continue
			}
		} else if _, ok := collected[prize.ID]; ok {
			continue
		}

		weight := scaleWeight(prize.Weight, cfg.WeightScale)
		if weight <= 0 {
			continue
		}

		pool = append(pool, PoolEntry{Prize: prize, Weight: weight})
	}

	return pool
}

// scaleWeight turns an award weight into a ticket count. Negative weights are
// treated as zero.
func scaleWeight(weight float64, scale int) int {
	if weight <= 0 || math.IsNaN(weight) {
		return 0
	}

	return int(math.Floor(weight * float64(scale)))
}

func totalWeight(pool []PoolEntry) int {
	total := 0
	for _, entry := range pool {
		total += entry.Weight
	}

	return total
}

// draw picks one ticket uniformly and returns the entry owning it. The pool
// must not be empty.
func draw(pool []PoolEntry, source crypto.Source) PoolEntry {
	ticket := source.Intn(totalWeight(pool))
	for _, entry := range pool {
		if ticket < entry.Weight {
			return entry
		}

		ticket -= entry.Weight
	}

	return pool[len(pool)-1]
}
