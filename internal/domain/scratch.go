package domain

import (
	"context"
	"errors"
	"time"

	"github.com/questx-lab/scratchcard/internal/common"
	"github.com/questx-lab/scratchcard/internal/domain/scratch"
	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"gorm.io/gorm"
)

type ScratchDomain interface {
	GetStatus(context.Context, *model.GetScratchStatusRequest) (*model.GetScratchStatusResponse, error)
	Scratch(context.Context, *model.ScratchRequest) (*model.ScratchResponse, error)
	GetCollection(context.Context, *model.GetCollectionRequest) (*model.GetCollectionResponse, error)
	GetPrizes(context.Context, *model.GetPrizesRequest) (*model.GetPrizesResponse, error)
}

type scratchDomain struct {
	engine         scratch.Engine
	userRepo       repository.UserRepository
	prizeRepo      repository.PrizeRepository
	collectionRepo repository.CollectionRepository
	leaderboard    statistic.Leaderboard
}

func NewScratchDomain(
	engine scratch.Engine,
	userRepo repository.UserRepository,
	prizeRepo repository.PrizeRepository,
	collectionRepo repository.CollectionRepository,
	leaderboard statistic.Leaderboard,
) *scratchDomain {
	return &scratchDomain{
		engine:         engine,
		userRepo:       userRepo,
		prizeRepo:      prizeRepo,
		collectionRepo: collectionRepo,
		leaderboard:    leaderboard,
	}
}

func (d *scratchDomain) GetStatus(
	ctx context.Context, req *model.GetScratchStatusRequest,
) (*model.GetScratchStatusResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	now := time.Now()

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, d.handleUserError(ctx, err)
	}

	canScratch, err := d.engine.CanScratch(ctx, userID, now)
	if err != nil {
		return nil, d.handleUserError(ctx, err)
	}

	remaining, err := d.engine.TimeUntilNextScratch(ctx, userID, now)
	if err != nil {
		return nil, d.handleUserError(ctx, err)
	}

	return &model.GetScratchStatusResponse{
		CanScratch:               canScratch,
		HasBonus:                 user.BonusScratch,
		TimeUntilNextScratchMsec: remaining.Milliseconds(),
	}, nil
}

// Scratch uses the daily allowance when it is available and falls back to the
// bonus grant otherwise.
func (d *scratchDomain) Scratch(ctx context.Context, req *model.ScratchRequest) (*model.ScratchResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	now := time.Now()

	outcome, err := d.engine.ExecuteScratch(ctx, userID, false, now)
	if errors.Is(err, scratch.ErrIneligible) {
		outcome, err = d.engine.ExecuteScratch(ctx, userID, true, now)
	}

	if err != nil {
		var ineligible scratch.IneligibleError
		switch {
		case errors.As(err, &ineligible):
			common.IncScratchOutcome(common.OutcomeIneligible)
			return nil, errorx.New(errorx.ScratchCooldown,
				"You can scratch again in %s", ineligible.Remaining.Round(time.Second))

		case errors.Is(err, scratch.ErrUserNotFound):
			return nil, errorx.New(errorx.NotFound, "Not found user")

		case errors.Is(err, scratch.ErrAllocationFailed):
			common.IncScratchOutcome(common.OutcomeFailed)
			return nil, errorx.New(errorx.AllocationFailed, "Cannot scratch now, please try again")

		default:
			xcontext.Logger(ctx).Errorf("Cannot execute scratch: %v", err)
			return nil, errorx.Unknown
		}
	}

	switch {
	case outcome.Won:
		common.IncScratchOutcome(common.OutcomeWin)
		if err := d.leaderboard.IncreaseCollection(ctx, userID); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot increase leaderboard of %s: %v", userID, err)
		}

	case outcome.NoPrizeAvailable:
		common.IncScratchOutcome(common.OutcomeEmptyPool)

	default:
		common.IncScratchOutcome(common.OutcomeMiss)
	}

	resp := model.ScratchResponse(convertOutcome(outcome, now, xcontext.Configs(ctx).Scratch.UniqueReleaseTime))
	return &resp, nil
}

func (d *scratchDomain) GetCollection(
	ctx context.Context, req *model.GetCollectionRequest,
) (*model.GetCollectionResponse, error) {
	entries, err := d.collectionRepo.GetListByUserID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collection: %v", err)
		return nil, errorx.Unknown
	}

	now := time.Now()
	uniqueRelease := xcontext.Configs(ctx).Scratch.UniqueReleaseTime
	result := []model.CollectionEntry{}
	for i := range entries {
		result = append(result, convertCollectionEntry(&entries[i], now, uniqueRelease))
	}

	return &model.GetCollectionResponse{Entries: result}, nil
}

func (d *scratchDomain) GetPrizes(ctx context.Context, req *model.GetPrizesRequest) (*model.GetPrizesResponse, error) {
	prizes, err := d.prizeRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get prizes: %v", err)
		return nil, errorx.Unknown
	}

	now := time.Now()
	uniqueRelease := xcontext.Configs(ctx).Scratch.UniqueReleaseTime
	result := []model.Prize{}
	for i := range prizes {
		result = append(result, convertPrize(&prizes[i], now, uniqueRelease))
	}

	return &model.GetPrizesResponse{Prizes: result}, nil
}

func (d *scratchDomain) handleUserError(ctx context.Context, err error) error {
	if errors.Is(err, scratch.ErrUserNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
		return errorx.New(errorx.NotFound, "Not found user")
	}

	xcontext.Logger(ctx).Errorf("Cannot get scratch status: %v", err)
	return errorx.Unknown
}
