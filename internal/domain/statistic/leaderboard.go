package statistic

import (
	"context"

	"github.com/google/uuid"
	"github.com/questx-lab/scratchcard/internal/common"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/questx-lab/scratchcard/pkg/xredis"
	"github.com/redis/go-redis/v9"
)

// Leaderboard ranks users by the number of prizes they collected. The ranking
// lives in a redis sorted set which is rebuilt from the collection ledger
// whenever it is missing.
type Leaderboard interface {
	GetLeaderboard(ctx context.Context, offset, limit int) ([]model.LeaderboardEntry, error)
	GetRank(ctx context.Context, userID string) (uint64, error)
	IncreaseCollection(ctx context.Context, userID string) error
	Refresh(ctx context.Context) error
}

type leaderboard struct {
	collectionRepo repository.CollectionRepository
	redisClient    xredis.Client
}

func New(
	collectionRepo repository.CollectionRepository,
	redisClient xredis.Client,
) *leaderboard {
	return &leaderboard{collectionRepo: collectionRepo, redisClient: redisClient}
}

func (l *leaderboard) GetLeaderboard(ctx context.Context, offset, limit int) ([]model.LeaderboardEntry, error) {
	if err := l.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	results, err := l.redisClient.ZRevRangeWithScores(ctx, common.RedisKeyLeaderboard(), offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get revrange redis: %v", err)
		return nil, errorx.Unknown
	}

	leaderboard := []model.LeaderboardEntry{}
	for i, z := range results {
		userID, ok := z.Member.(string)
		if !ok {
			continue
		}

		leaderboard = append(leaderboard, model.LeaderboardEntry{
			User:  model.User{ID: userID},
			Total: int64(z.Score),
			Rank:  offset + i + 1,
		})
	}

	return leaderboard, nil
}

// GetRank returns the 1-based rank of the user, 0 if the user collected
// nothing yet.
func (l *leaderboard) GetRank(ctx context.Context, userID string) (uint64, error) {
	if err := l.ensureLoaded(ctx); err != nil {
		return 0, err
	}

	rank, err := l.redisClient.ZRevRank(ctx, common.RedisKeyLeaderboard(), userID)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get rev rank redis: %v", err)
		return 0, nil
	}

	return rank + 1, nil
}

func (l *leaderboard) IncreaseCollection(ctx context.Context, userID string) error {
	key := common.RedisKeyLeaderboard()
	ok, err := l.redisClient.Exist(ctx, key)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	// If the key didn't exist in redis, the next read loads it from database.
	if !ok {
		return nil
	}

	if err := l.redisClient.ZIncrBy(ctx, key, 1, userID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call ZIncrBy redis: %v", err)
		return errorx.Unknown
	}

	return nil
}

// Refresh rebuilds the ranking in a staging key then swaps it in, so readers
// never observe a half-filled set.
func (l *leaderboard) Refresh(ctx context.Context) error {
	stats, err := l.collectionRepo.Statistic(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot load statistic from database: %v", err)
		return errorx.Unknown
	}

	key := common.RedisKeyLeaderboard()
	if len(stats) == 0 {
		if err := l.redisClient.Del(ctx, key); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete leaderboard: %v", err)
			return errorx.Unknown
		}

		return nil
	}

	members := make([]redis.Z, 0, len(stats))
	for _, s := range stats {
		members = append(members, redis.Z{Score: float64(s.Total), Member: s.UserID})
	}

	staging := common.RedisKeyLeaderboardStaging(uuid.NewString())
	if err := l.redisClient.ZAdd(ctx, staging, members...); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot add leaderboard members to redis: %v", err)
		return errorx.Unknown
	}

	if err := l.redisClient.Rename(ctx, staging, key); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot swap leaderboard: %v", err)
		return errorx.Unknown
	}

	return nil
}

func (l *leaderboard) ensureLoaded(ctx context.Context) error {
	ok, err := l.redisClient.Exist(ctx, common.RedisKeyLeaderboard())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot call exist redis: %v", err)
		return errorx.Unknown
	}

	if ok {
		return nil
	}

	return l.Refresh(ctx)
}
