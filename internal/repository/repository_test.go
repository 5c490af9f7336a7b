package repository

import (
	"context"
	"testing"
	"time"

	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/testutil"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RepositoryTestSuite struct {
	suite.Suite

	ctx context.Context
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.ctx = testutil.NewMockContext()
	testutil.CreateFixtureDb(suite.ctx)
}

func (suite *RepositoryTestSuite) TestUseDailyScratch() {
	t := suite.T()
	userRepo := NewUserRepository()
	now := testutil.Now
	cooldown := 24 * time.Hour

	require.NoError(t, userRepo.UseDailyScratch(suite.ctx, testutil.User1.ID, now, cooldown))

	err := userRepo.UseDailyScratch(suite.ctx, testutil.User1.ID, now.Add(cooldown-time.Second), cooldown)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Exactly at the cooldown boundary the allowance is back.
	require.NoError(t, userRepo.UseDailyScratch(suite.ctx, testutil.User1.ID, now.Add(cooldown), cooldown))

	user, err := userRepo.GetByID(suite.ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.True(t, user.LastScratchAt.Valid)
	require.True(t, now.Add(cooldown).Equal(user.LastScratchAt.Time))

	err = userRepo.UseDailyScratch(suite.ctx, "nobody", now, cooldown)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func (suite *RepositoryTestSuite) TestBonusScratch() {
	t := suite.T()
	userRepo := NewUserRepository()

	err := userRepo.UseBonusScratch(suite.ctx, testutil.User2.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, userRepo.UpdateBonusScratch(suite.ctx, testutil.User2.ID, true))
	count, err := userRepo.CountBonusScratch(suite.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.NoError(t, userRepo.UseBonusScratch(suite.ctx, testutil.User2.ID))
	err = userRepo.UseBonusScratch(suite.ctx, testutil.User2.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = userRepo.UpdateBonusScratch(suite.ctx, "nobody", true)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func (suite *RepositoryTestSuite) TestGetUsers() {
	t := suite.T()
	userRepo := NewUserRepository()

	user, err := userRepo.GetByUsername(suite.ctx, testutil.User3.Username)
	require.NoError(t, err)
	require.Equal(t, testutil.User3.ID, user.ID)

	users, err := userRepo.GetByIDs(suite.ctx, []string{testutil.User1.ID, testutil.Admin.ID, "nobody"})
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = userRepo.GetList(suite.ctx)
	require.NoError(t, err)
	require.Len(t, users, len(testutil.Users))
}

func (suite *RepositoryTestSuite) TestGetAwardable() {
	t := suite.T()
	prizeRepo := NewPrizeRepository()

	prizes, err := prizeRepo.GetAwardable(suite.ctx, testutil.Mahaganapati.ReleaseTime.Add(-time.Second))
	require.NoError(t, err)
	require.Len(t, prizes, 2)

	prizes, err = prizeRepo.GetAwardable(suite.ctx, testutil.Mahaganapati.ReleaseTime)
	require.NoError(t, err)
	require.Len(t, prizes, 3)

	require.NoError(t, prizeRepo.CheckAndDecreaseRemaining(suite.ctx, testutil.OrionBappa.ID))
	prizes, err = prizeRepo.GetAwardable(suite.ctx, testutil.Now)
	require.NoError(t, err)
	require.Len(t, prizes, 3)
	for _, p := range prizes {
		require.NotEqual(t, testutil.OrionBappa.ID, p.ID)
	}
}

func (suite *RepositoryTestSuite) TestCheckAndDecreaseRemaining() {
	t := suite.T()
	prizeRepo := NewPrizeRepository()

	require.NoError(t, prizeRepo.CheckAndDecreaseRemaining(suite.ctx, testutil.OrionBappa.ID))
	err := prizeRepo.CheckAndDecreaseRemaining(suite.ctx, testutil.OrionBappa.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	prize, err := prizeRepo.GetByID(suite.ctx, testutil.OrionBappa.ID)
	require.NoError(t, err)
	require.Equal(t, 0, prize.Remaining)

	sum, err := prizeRepo.SumRemaining(suite.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(160), sum)
}

func (suite *RepositoryTestSuite) TestCollection() {
	t := suite.T()
	collectionRepo := NewCollectionRepository()

	entries := []*entity.CollectionEntry{
		{Base: entity.Base{ID: "e1"}, UserID: testutil.User1.ID, PrizeID: testutil.Mayureshwar.ID, CollectedAt: testutil.Now},
		{Base: entity.Base{ID: "e2"}, UserID: testutil.User1.ID, PrizeID: testutil.OrionBappa.ID, CollectedAt: testutil.Now.Add(time.Hour)},
		{Base: entity.Base{ID: "e3"}, UserID: testutil.User2.ID, PrizeID: testutil.Mayureshwar.ID, CollectedAt: testutil.Now},
	}
	for _, e := range entries {
		require.NoError(t, collectionRepo.Create(suite.ctx, e))
	}

	// A user holds each prize at most once.
	err := collectionRepo.Create(suite.ctx, &entity.CollectionEntry{
		Base: entity.Base{ID: "e4"}, UserID: testutil.User1.ID, PrizeID: testutil.Mayureshwar.ID,
	})
	require.Error(t, err)

	ids, err := collectionRepo.GetPrizeIDsByUserID(suite.ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{testutil.Mayureshwar.ID, testutil.OrionBappa.ID}, ids)

	list, err := collectionRepo.GetListByUserID(suite.ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, testutil.Mayureshwar.Name, list[0].Prize.Name)
	require.Equal(t, testutil.OrionBappa.Name, list[1].Prize.Name)

	unique, err := collectionRepo.GetFirstByPrizeCategory(suite.ctx, entity.UniquePrize)
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, unique.UserID)

	_, err = collectionRepo.GetFirstByPrizeCategory(suite.ctx, entity.RarePrize)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	stats, err := collectionRepo.Statistic(suite.ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []UserCollectionStatistic{
		{UserID: testutil.User1.ID, Total: 2},
		{UserID: testutil.User2.ID, Total: 1},
	}, stats)
}

func (suite *RepositoryTestSuite) TestScratchAttempt() {
	t := suite.T()
	attemptRepo := NewScratchAttemptRepository()

	_, err := attemptRepo.GetLastByUserID(suite.ctx, testutil.User1.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	for i, id := range []string{"a1", "a2"} {
		require.NoError(t, attemptRepo.Create(suite.ctx, &entity.ScratchAttempt{
			Base:        entity.Base{ID: id},
			UserID:      testutil.User1.ID,
			ScratchedAt: testutil.Now.Add(time.Duration(i) * time.Hour),
		}))
	}

	last, err := attemptRepo.GetLastByUserID(suite.ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, "a2", last.ID)

	count, err := attemptRepo.Count(suite.ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), count)
}
