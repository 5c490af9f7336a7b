package domain

import (
	"context"
	"errors"
	"time"

	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"gorm.io/gorm"
)

type StatisticDomain interface {
	GetLeaderboard(context.Context, *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
	GetUniqueWinner(context.Context, *model.GetUniqueWinnerRequest) (*model.GetUniqueWinnerResponse, error)
	GetDonors(context.Context, *model.GetDonorsRequest) (*model.GetDonorsResponse, error)
}

type statisticDomain struct {
	userRepo       repository.UserRepository
	prizeRepo      repository.PrizeRepository
	collectionRepo repository.CollectionRepository
	donorRepo      repository.DonorRepository
	leaderboard    statistic.Leaderboard
}

func NewStatisticDomain(
	userRepo repository.UserRepository,
	prizeRepo repository.PrizeRepository,
	collectionRepo repository.CollectionRepository,
	donorRepo repository.DonorRepository,
	leaderboard statistic.Leaderboard,
) *statisticDomain {
	return &statisticDomain{
		userRepo:       userRepo,
		prizeRepo:      prizeRepo,
		collectionRepo: collectionRepo,
		donorRepo:      donorRepo,
		leaderboard:    leaderboard,
	}
}

func (d *statisticDomain) GetLeaderboard(
	ctx context.Context, req *model.GetLeaderboardRequest,
) (*model.GetLeaderboardResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Offset < 0 {
		return nil, errorx.New(errorx.BadRequest, "Offset and limit must not be negative")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", apiCfg.MaxLimit)
	}

	entries, err := d.leaderboard.GetLeaderboard(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	userIDs := []string{}
	for _, e := range entries {
		userIDs = append(userIDs, e.User.ID)
	}

	users, err := d.userRepo.GetByIDs(ctx, userIDs)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	userMap := map[string]*entity.User{}
	for i := range users {
		userMap[users[i].ID] = &users[i]
	}

	for i := range entries {
		if user, ok := userMap[entries[i].User.ID]; ok {
			entries[i].User = convertUser(user, false)
		}
	}

	return &model.GetLeaderboardResponse{Leaderboard: entries}, nil
}

func (d *statisticDomain) GetUniqueWinner(
	ctx context.Context, req *model.GetUniqueWinnerRequest,
) (*model.GetUniqueWinnerResponse, error) {
	entry, err := d.collectionRepo.GetFirstByPrizeCategory(ctx, entity.UniquePrize)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.GetUniqueWinnerResponse{Awarded: false}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get unique prize winner: %v", err)
		return nil, errorx.Unknown
	}

	user, err := d.userRepo.GetByID(ctx, entry.UserID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get winner: %v", err)
		return nil, errorx.Unknown
	}

	prize, err := d.prizeRepo.GetByID(ctx, entry.PrizeID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get unique prize: %v", err)
		return nil, errorx.Unknown
	}

	clientUser := convertUser(user, false)
	clientPrize := convertPrize(prize, time.Now(), xcontext.Configs(ctx).Scratch.UniqueReleaseTime)
	return &model.GetUniqueWinnerResponse{
		Awarded: true,
		Winner:  &clientUser,
		Prize:   &clientPrize,
	}, nil
}

func (d *statisticDomain) GetDonors(ctx context.Context, req *model.GetDonorsRequest) (*model.GetDonorsResponse, error) {
	donors, err := d.donorRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get donors: %v", err)
		return nil, errorx.Unknown
	}

	result := []model.Donor{}
	for i := range donors {
		result = append(result, convertDonor(&donors[i]))
	}

	return &model.GetDonorsResponse{Donors: result}, nil
}
