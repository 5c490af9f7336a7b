package domain

import (
	"errors"
	"testing"

	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newAdminDomain() *adminDomain {
	userRepo := repository.NewUserRepository()
	return NewAdminDomain(userRepo, statistic.NewInventory(
		userRepo,
		repository.NewPrizeRepository(),
		repository.NewScratchAttemptRepository(),
	))
}

func Test_adminDomain_BonusScratch(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	d := newAdminDomain()

	_, err := d.AssignBonusScratch(adminCtx, &model.AssignBonusScratchRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.True(t, user.BonusScratch)

	stats, err := d.GetInventoryStats(adminCtx, &model.GetInventoryStatsRequest{})
	require.NoError(t, err)
	require.Equal(t, int64(1), stats.BonusCards)

	_, err = d.RevokeBonusScratch(adminCtx, &model.RevokeBonusScratchRequest{UserID: testutil.User2.ID})
	require.NoError(t, err)

	user, err = repository.NewUserRepository().GetByID(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.False(t, user.BonusScratch)
}

func Test_adminDomain_BonusScratch_Failed(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	adminCtx := testutil.NewMockContextWithUserID(ctx, testutil.Admin.ID)
	d := newAdminDomain()

	var errx errorx.Error
	_, err := d.AssignBonusScratch(adminCtx, &model.AssignBonusScratchRequest{})
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.BadRequest, errx.Code)

	_, err = d.RevokeBonusScratch(adminCtx, &model.RevokeBonusScratchRequest{UserID: "nobody"})
	require.True(t, errors.As(err, &errx))
	require.Equal(t, errorx.NotFound, errx.Code)
}

func Test_adminDomain_GetMembers(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)

	resp, err := newAdminDomain().GetMembers(ctx, &model.GetMembersRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Members, len(testutil.Users))
	for _, m := range resp.Members {
		require.NotEmpty(t, m.Role)
	}
}
