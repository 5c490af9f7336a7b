package scratch

import (
	"context"
	"errors"
	"time"

	"github.com/questx-lab/scratchcard/internal/entity"
	"gorm.io/gorm"
)

func (e *engine) CanScratch(ctx context.Context, userID string, now time.Time) (bool, error) {
	user, err := e.getUser(ctx, userID)
	if err != nil {
		return false, err
	}

	return canScratch(user, now, e.cfg.Cooldown.Duration), nil
}

func (e *engine) TimeUntilNextScratch(ctx context.Context, userID string, now time.Time) (time.Duration, error) {
	user, err := e.getUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	return timeUntilNextScratch(user, now, e.cfg.Cooldown.Duration), nil
}

func (e *engine) getUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := e.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func canScratch(user *entity.User, now time.Time, cooldown time.Duration) bool {
	return timeUntilNextScratch(user, now, cooldown) == 0
}

// timeUntilNextScratch is zero when a bonus grant is live, whatever the
// cooldown.
func timeUntilNextScratch(user *entity.User, now time.Time, cooldown time.Duration) time.Duration {
	if user.BonusScratch {
		return 0
	}

	return cooldownRemaining(user, now, cooldown)
}

func cooldownRemaining(user *entity.User, now time.Time, cooldown time.Duration) time.Duration {
	if !user.LastScratchAt.Valid {
		return 0
	}

	remaining := user.LastScratchAt.Time.Add(cooldown).Sub(now)
	if remaining < 0 {
		return 0
	}

	return remaining
}
