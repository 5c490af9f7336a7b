package domain

import (
	"context"

	"github.com/questx-lab/scratchcard/internal/domain/scratch"
	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/crypto"
	"github.com/questx-lab/scratchcard/pkg/testutil"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
)

// hitFirstSource always hits and always draws the first ticket.
type hitFirstSource struct{}

func (hitFirstSource) Intn(n int) int {
	if n == 100 {
		return 99
	}

	return 0
}

type missSource struct{}

func (missSource) Intn(n int) int { return 0 }

func newScratchDomain(ctx context.Context, source crypto.Source, redisClient *testutil.MockRedisClient) *scratchDomain {
	userRepo := repository.NewUserRepository()
	prizeRepo := repository.NewPrizeRepository()
	collectionRepo := repository.NewCollectionRepository()

	engine := scratch.NewEngine(
		xcontext.Configs(ctx).Scratch,
		userRepo,
		prizeRepo,
		collectionRepo,
		repository.NewScratchAttemptRepository(),
		source,
	)

	if redisClient == nil {
		redisClient = &testutil.MockRedisClient{}
	}

	return NewScratchDomain(
		engine,
		userRepo,
		prizeRepo,
		collectionRepo,
		statistic.New(collectionRepo, redisClient),
	)
}
