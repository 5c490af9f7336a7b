package statistic

import (
	"context"

	"github.com/questx-lab/scratchcard/internal/common"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/enum"
	"golang.org/x/sync/errgroup"
)

type Inventory interface {
	// GetStats counts every card of the festival. A card is either still in
	// stock or already scratched.
	GetStats(ctx context.Context) (model.InventoryStats, error)

	// ExportGauges publishes the remaining stock of each prize.
	ExportGauges(ctx context.Context) error
}

type inventory struct {
	userRepo    repository.UserRepository
	prizeRepo   repository.PrizeRepository
	attemptRepo repository.ScratchAttemptRepository
}

func NewInventory(
	userRepo repository.UserRepository,
	prizeRepo repository.PrizeRepository,
	attemptRepo repository.ScratchAttemptRepository,
) *inventory {
	return &inventory{
		userRepo:    userRepo,
		prizeRepo:   prizeRepo,
		attemptRepo: attemptRepo,
	}
}

func (i *inventory) GetStats(ctx context.Context) (model.InventoryStats, error) {
	var stats model.InventoryStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.RemainingCards, err = i.prizeRepo.SumRemaining(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.UsedCards, err = i.attemptRepo.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.BonusCards, err = i.userRepo.CountBonusScratch(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return model.InventoryStats{}, err
	}

	stats.TotalCards = stats.RemainingCards + stats.UsedCards
	return stats, nil
}

func (i *inventory) ExportGauges(ctx context.Context) error {
	prizes, err := i.prizeRepo.GetList(ctx)
	if err != nil {
		return err
	}

	gauge := common.PromGauges[common.PrizeRemaining]
	for _, p := range prizes {
		gauge.WithLabelValues(p.ID, enum.ToString(p.Category)).Set(float64(p.Remaining))
	}

	return nil
}
