package main

import (
	"context"
	"testing"
	"time"

	"github.com/questx-lab/scratchcard/config"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/testutil"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedContext() context.Context {
	ctx := testutil.NewMockContext()
	cfg := xcontext.Configs(ctx)
	cfg.Catalog = config.Catalog{Prizes: []config.PrizeDefinition{
		{ID: "1", Name: "Mayureshwar", Category: "common", Weight: 20, Remaining: 100, ReleaseTime: testutil.ReleaseTime},
		{ID: "9", Name: "Orion Bappa", Category: "unique", Weight: 0.5, Remaining: 1, ReleaseTime: testutil.UniqueReleaseTime},
	}}
	cfg.Seed = config.SeedConfigs{
		Users: []config.SeedUser{
			{ID: "admin", Name: "Mandal", Username: "mandal", Password: "modak", IsAdmin: true},
			{Name: "Ravi", Username: "ravi"},
		},
		Donors: []config.SeedDonor{
			{Name: "Kulkarni family", Amount: 501, Date: time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)},
		},
	}

	return xcontext.WithConfigs(ctx, cfg)
}

func runSeed(ctx context.Context) error {
	return seed(ctx, repository.NewUserRepository(), repository.NewPrizeRepository(), repository.NewDonorRepository())
}

func Test_seed(t *testing.T) {
	ctx := seedContext()
	require.NoError(t, runSeed(ctx))

	prizes, err := repository.NewPrizeRepository().GetList(ctx)
	require.NoError(t, err)
	require.Len(t, prizes, 2)

	users, err := repository.NewUserRepository().GetList(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)

	admin, err := repository.NewUserRepository().GetByUsername(ctx, "mandal")
	require.NoError(t, err)
	require.Equal(t, entity.RoleAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("modak")))

	ravi, err := repository.NewUserRepository().GetByUsername(ctx, "ravi")
	require.NoError(t, err)
	require.Equal(t, entity.RoleUser, ravi.Role)
	require.NotEmpty(t, ravi.ID)
	require.NotEmpty(t, ravi.Password)

	donors, err := repository.NewDonorRepository().GetList(ctx)
	require.NoError(t, err)
	require.Len(t, donors, 1)
}

func Test_seed_KeepsExistingRows(t *testing.T) {
	ctx := seedContext()
	require.NoError(t, runSeed(ctx))

	prizeRepo := repository.NewPrizeRepository()
	require.NoError(t, prizeRepo.CheckAndDecreaseRemaining(ctx, "9"))

	require.NoError(t, runSeed(ctx))

	unique, err := prizeRepo.GetByID(ctx, "9")
	require.NoError(t, err)
	require.Equal(t, 0, unique.Remaining)

	donors, err := repository.NewDonorRepository().GetList(ctx)
	require.NoError(t, err)
	require.Len(t, donors, 1)
}

func Test_seed_InvalidCatalog(t *testing.T) {
	ctx := seedContext()
	cfg := xcontext.Configs(ctx)
	cfg.Catalog.Prizes = append(cfg.Catalog.Prizes, config.PrizeDefinition{
		ID: "10", Name: "Second box", Category: "unique", Remaining: 1,
	})
	ctx = xcontext.WithConfigs(ctx, cfg)

	require.Error(t, runSeed(ctx))

	prizes, err := repository.NewPrizeRepository().GetList(ctx)
	require.NoError(t, err)
	require.Empty(t, prizes)
}

func Test_gormLogLevel(t *testing.T) {
	require.Equal(t, gormLogLevel("error"), gormLogLevel("unknown"))
	require.NotEqual(t, gormLogLevel("silent"), gormLogLevel("info"))
}
