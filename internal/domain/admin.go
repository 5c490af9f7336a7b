package domain

import (
	"context"
	"errors"

	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"gorm.io/gorm"
)

// AdminDomain is mounted behind the admin guard, handlers do not check the
// role again.
type AdminDomain interface {
	GetMembers(context.Context, *model.GetMembersRequest) (*model.GetMembersResponse, error)
	AssignBonusScratch(context.Context, *model.AssignBonusScratchRequest) (*model.AssignBonusScratchResponse, error)
	RevokeBonusScratch(context.Context, *model.RevokeBonusScratchRequest) (*model.RevokeBonusScratchResponse, error)
	GetInventoryStats(context.Context, *model.GetInventoryStatsRequest) (*model.GetInventoryStatsResponse, error)
}

type adminDomain struct {
	userRepo  repository.UserRepository
	inventory statistic.Inventory
}

func NewAdminDomain(userRepo repository.UserRepository, inventory statistic.Inventory) *adminDomain {
	return &adminDomain{userRepo: userRepo, inventory: inventory}
}

func (d *adminDomain) GetMembers(ctx context.Context, req *model.GetMembersRequest) (*model.GetMembersResponse, error) {
	users, err := d.userRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get members: %v", err)
		return nil, errorx.Unknown
	}

	members := []model.User{}
	for i := range users {
		members = append(members, convertUser(&users[i], true))
	}

	return &model.GetMembersResponse{Members: members}, nil
}

func (d *adminDomain) AssignBonusScratch(
	ctx context.Context, req *model.AssignBonusScratchRequest,
) (*model.AssignBonusScratchResponse, error) {
	if err := d.updateBonusScratch(ctx, req.UserID, true); err != nil {
		return nil, err
	}

	xcontext.Logger(ctx).Infof("Bonus scratch assigned to %s by %s", req.UserID, xcontext.RequestUserID(ctx))
	return &model.AssignBonusScratchResponse{}, nil
}

func (d *adminDomain) RevokeBonusScratch(
	ctx context.Context, req *model.RevokeBonusScratchRequest,
) (*model.RevokeBonusScratchResponse, error) {
	if err := d.updateBonusScratch(ctx, req.UserID, false); err != nil {
		return nil, err
	}

	xcontext.Logger(ctx).Infof("Bonus scratch revoked from %s by %s", req.UserID, xcontext.RequestUserID(ctx))
	return &model.RevokeBonusScratchResponse{}, nil
}

func (d *adminDomain) GetInventoryStats(
	ctx context.Context, req *model.GetInventoryStatsRequest,
) (*model.GetInventoryStatsResponse, error) {
	stats, err := d.inventory.GetStats(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get inventory stats: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetInventoryStatsResponse(stats)
	return &resp, nil
}

func (d *adminDomain) updateBonusScratch(ctx context.Context, userID string, grant bool) error {
	if userID == "" {
		return errorx.New(errorx.BadRequest, "Not allow an empty user id")
	}

	if err := d.userRepo.UpdateBonusScratch(ctx, userID, grant); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot update bonus scratch: %v", err)
		return errorx.Unknown
	}

	return nil
}
