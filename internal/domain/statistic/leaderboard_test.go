package statistic

import (
	"context"
	"strings"
	"testing"

	"github.com/questx-lab/scratchcard/internal/common"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/testutil"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func collect(ctx context.Context, id, userID, prizeID string) {
	err := xcontext.DB(ctx).Create(&entity.CollectionEntry{
		Base:        entity.Base{ID: id},
		UserID:      userID,
		PrizeID:     prizeID,
		CollectedAt: testutil.Now,
	}).Error
	if err != nil {
		panic(err)
	}
}

func Test_leaderboard_GetLeaderboard_LoadsFromDB(t *testing.T) {
	ctx := testutil.NewMockContext()
	testutil.CreateFixtureDb(ctx)
	collect(ctx, "e1", testutil.User1.ID, testutil.Mayureshwar.ID)
	collect(ctx, "e2", testutil.User1.ID, testutil.Varadavinayak.ID)
	collect(ctx, "e3", testutil.User2.ID, testutil.Mayureshwar.ID)

	var staged []redis.Z
	var renamed [2]string
	exists := false
	redisClient := &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return exists, nil
		},
		ZAddFunc: func(ctx context.Context, key string, members ...redis.Z) error {
			require.True(t, strings.HasPrefix(key, common.RedisKeyLeaderboard()+":"))
			staged = members
			return nil
		},
		RenameFunc: func(ctx context.Context, key, newKey string) error {
			renamed = [2]string{key, newKey}
			exists = true
			return nil
		},
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			require.Equal(t, common.RedisKeyLeaderboard(), key)
			require.Equal(t, 0, offset)
			require.Equal(t, 10, limit)
			return []redis.Z{
				{Member: testutil.User1.ID, Score: 2},
				{Member: testutil.User2.ID, Score: 1},
			}, nil
		},
	}

	l := New(repository.NewCollectionRepository(), redisClient)
	result, err := l.GetLeaderboard(ctx, 0, 10)
	require.NoError(t, err)

	require.ElementsMatch(t, []redis.Z{
		{Member: testutil.User1.ID, Score: 2},
		{Member: testutil.User2.ID, Score: 1},
	}, staged)
	require.Equal(t, common.RedisKeyLeaderboard(), renamed[1])

	require.Len(t, result, 2)
	require.Equal(t, testutil.User1.ID, result[0].User.ID)
	require.Equal(t, int64(2), result[0].Total)
	require.Equal(t, 1, result[0].Rank)
	require.Equal(t, 2, result[1].Rank)
}

func Test_leaderboard_Refresh_Empty(t *testing.T) {
	ctx := testutil.NewMockContext()

	deleted := []string{}
	redisClient := &testutil.MockRedisClient{
		DelFunc: func(ctx context.Context, key ...string) error {
			deleted = append(deleted, key...)
			return nil
		},
		ZAddFunc: func(ctx context.Context, key string, members ...redis.Z) error {
			t.Fatal("nothing to add")
			return nil
		},
	}

	l := New(repository.NewCollectionRepository(), redisClient)
	require.NoError(t, l.Refresh(ctx))
	require.Equal(t, []string{common.RedisKeyLeaderboard()}, deleted)
}

func Test_leaderboard_IncreaseCollection(t *testing.T) {
	ctx := testutil.NewMockContext()

	incremented := map[string]int64{}
	exists := false
	redisClient := &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return exists, nil
		},
		ZIncrByFunc: func(ctx context.Context, key string, incr int64, member string) error {
			incremented[member] += incr
			return nil
		},
	}

	l := New(repository.NewCollectionRepository(), redisClient)

	// Nothing cached, nothing to increase.
	require.NoError(t, l.IncreaseCollection(ctx, testutil.User1.ID))
	require.Empty(t, incremented)

	exists = true
	require.NoError(t, l.IncreaseCollection(ctx, testutil.User1.ID))
	require.NoError(t, l.IncreaseCollection(ctx, testutil.User1.ID))
	require.Equal(t, map[string]int64{testutil.User1.ID: 2}, incremented)
}

func Test_leaderboard_GetRank(t *testing.T) {
	ctx := testutil.NewMockContext()

	redisClient := &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			return true, nil
		},
		ZRevRankFunc: func(ctx context.Context, key, member string) (uint64, error) {
			if member == testutil.User1.ID {
				return 0, nil
			}

			return 0, redis.Nil
		},
	}

	l := New(repository.NewCollectionRepository(), redisClient)

	rank, err := l.GetRank(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(1), rank)

	rank, err = l.GetRank(ctx, testutil.User2.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(0), rank)
}
