package scratch

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/questx-lab/scratchcard/config"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/crypto"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
)

// sequenceSource replays values modulo n, cycling when exhausted.
type sequenceSource struct {
	values []int
	i      int
}

func newSequenceSource(values ...int) *sequenceSource {
	return &sequenceSource{values: values}
}

func (s *sequenceSource) Intn(n int) int {
	v := s.values[s.i%len(s.values)] % n
	s.i++
	return v
}

// lockedSource makes a non thread-safe source usable from many goroutines.
type lockedSource struct {
	mu     sync.Mutex
	source crypto.Source
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source.Intn(n)
}

const (
	alwaysMiss = 0
	alwaysHit  = 99
)

func newTestEngine(ctx context.Context, source crypto.Source) *engine {
	return newTestEngineWithConfigs(ctx, xcontext.Configs(ctx).Scratch, source)
}

func newTestEngineWithConfigs(ctx context.Context, cfg config.ScratchConfigs, source crypto.Source) *engine {
	return NewEngine(
		cfg,
		repository.NewUserRepository(),
		repository.NewPrizeRepository(),
		repository.NewCollectionRepository(),
		repository.NewScratchAttemptRepository(),
		source,
	)
}

func setUserState(ctx context.Context, userID string, bonus bool, lastScratchAt *time.Time) {
	updates := map[string]any{"bonus_scratch": bonus}
	if lastScratchAt != nil {
		updates["last_scratch_at"] = sql.NullTime{Time: *lastScratchAt, Valid: true}
	}

	err := xcontext.DB(ctx).Model(&entity.User{}).Where("id=?", userID).Updates(updates).Error
	if err != nil {
		panic(err)
	}
}

func getUser(ctx context.Context, userID string) *entity.User {
	user, err := repository.NewUserRepository().GetByID(ctx, userID)
	if err != nil {
		panic(err)
	}

	return user
}

func getPrize(ctx context.Context, prizeID string) *entity.Prize {
	prize, err := repository.NewPrizeRepository().GetByID(ctx, prizeID)
	if err != nil {
		panic(err)
	}

	return prize
}

func createUsers(ctx context.Context, n int) []string {
	ids := []string{}
	for i := 0; i < n; i++ {
		user := &entity.User{
			Base:     entity.Base{ID: fmt.Sprintf("member%d", i)},
			Name:     fmt.Sprintf("Member %d", i),
			Username: fmt.Sprintf("member%d", i),
			Role:     entity.RoleUser,
		}
		if err := repository.NewUserRepository().Create(ctx, user); err != nil {
			panic(err)
		}

		ids = append(ids, user.ID)
	}

	return ids
}

func countRows(ctx context.Context, model any, query string, args ...any) int64 {
	var result int64
	if err := xcontext.DB(ctx).Model(model).Where(query, args...).Count(&result).Error; err != nil {
		panic(err)
	}

	return result
}
