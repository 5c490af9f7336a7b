// Package scratch decides whether a user may scratch, builds the weighted
// pool of awardable prizes and allocates one of them against the shared
// inventory.
//
// Every operation takes the wall clock as a parameter. Mutations run in a
// single database transaction using conditional updates, so concurrent calls
// from several processes never oversell a prize.
package scratch

import (
	"context"
	"time"

	"github.com/questx-lab/scratchcard/config"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/crypto"
)

type Engine interface {
	// Eligibility.
	CanScratch(ctx context.Context, userID string, now time.Time) (bool, error)
	TimeUntilNextScratch(ctx context.Context, userID string, now time.Time) (time.Duration, error)

	// Pool.
	BuildPool(ctx context.Context, userID string, now time.Time) ([]PoolEntry, error)

	// Allocation.
	ExecuteScratch(ctx context.Context, userID string, usesBonus bool, now time.Time) (*Outcome, error)

	// Ledger.
	CollectedPrizes(ctx context.Context, userID string) (map[string]struct{}, error)
	HasUniquePrizeBeenAwarded(ctx context.Context) (bool, error)
}

type PoolEntry struct {
	Prize entity.Prize

	// Weight is the number of tickets the prize owns in the draw.
	Weight int
}

type Outcome struct {
	Won     bool
	Prize   *entity.Prize
	Message string

	// Probability is the figure shown to the user, the miss percent for a
	// miss and the prize weight for a win.
	Probability float64

	IsUnique  bool
	UsedBonus bool

	// NoPrizeAvailable is set when nothing could be drawn, as opposed to a
	// miss of the coin flip.
	NoPrizeAvailable bool
}

type engine struct {
	cfg config.ScratchConfigs

	userRepo       repository.UserRepository
	prizeRepo      repository.PrizeRepository
	collectionRepo repository.CollectionRepository
	attemptRepo    repository.ScratchAttemptRepository

	source crypto.Source
}

// NewEngine returns the engine. A nil source falls back to crypto/rand.
func NewEngine(
	cfg config.ScratchConfigs,
	userRepo repository.UserRepository,
	prizeRepo repository.PrizeRepository,
	collectionRepo repository.CollectionRepository,
	attemptRepo repository.ScratchAttemptRepository,
	source crypto.Source,
) *engine {
	if source == nil {
		source = crypto.NewSource()
	}

	return &engine{
		cfg:            cfg,
		userRepo:       userRepo,
		prizeRepo:      prizeRepo,
		collectionRepo: collectionRepo,
		attemptRepo:    attemptRepo,
		source:         source,
	}
}
