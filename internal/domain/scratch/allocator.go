package scratch

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/crypto"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"gorm.io/gorm"
)

const (
	MessageNoPrize = "No stickers available at this time"
	MessageMiss    = "Better luck next time!"
)

// ExecuteScratch consumes the daily allowance (or the bonus grant when
// usesBonus is set) and draws a prize, all in one transaction. Misses and an
// empty pool are outcomes, only store failures and ineligibility are errors.
func (e *engine) ExecuteScratch(
	ctx context.Context, userID string, usesBonus bool, now time.Time,
) (*Outcome, error) {
	now = now.UTC()

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := e.consumeAllowance(ctx, userID, usesBonus, now); err != nil {
		return nil, err
	}

	outcome, err := e.allocate(ctx, userID, now)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot allocate prize: %v", err)
		return nil, allocationFailed(err)
	}
	outcome.UsedBonus = usesBonus

	attempt := &entity.ScratchAttempt{
		Base:        entity.Base{ID: uuid.NewString()},
		UserID:      userID,
		ScratchedAt: now,
		Won:         outcome.Won,
		UsedBonus:   usesBonus,
	}
	if outcome.Prize != nil {
		attempt.PrizeID = sql.NullString{String: outcome.Prize.ID, Valid: true}
	}

	if err := e.attemptRepo.Create(ctx, attempt); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create scratch attempt: %v", err)
		return nil, allocationFailed(err)
	}

	if _, err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot commit scratch: %v", err)
		return nil, allocationFailed(err)
	}

	return outcome, nil
}

// consumeAllowance re-validates eligibility under the transaction. The
// conditional update is the check, so two overlapping calls of the same user
// cannot both pass.
func (e *engine) consumeAllowance(ctx context.Context, userID string, usesBonus bool, now time.Time) error {
	var err error
	if usesBonus {
		err = e.userRepo.UseBonusScratch(ctx, userID)
	} else {
		err = e.userRepo.UseDailyScratch(ctx, userID, now, e.cfg.Cooldown.Duration)
	}

	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot consume scratch allowance: %v", err)
		return allocationFailed(err)
	}

	user, err := e.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return allocationFailed(err)
	}

	return IneligibleError{Remaining: cooldownRemaining(user, now, e.cfg.Cooldown.Duration)}
}

func (e *engine) allocate(ctx context.Context, userID string, now time.Time) (*Outcome, error) {
	exhausted := map[string]bool{}
	for i := 0; i <= e.cfg.MaxRetries; i++ {
		pool, err := e.BuildPool(ctx, userID, now)
		if err != nil {
			return nil, err
		}

		pool = excludeExhausted(pool, exhausted)
		if len(pool) == 0 {
			return noPrizeOutcome(), nil
		}

		// The coin is flipped once, a retry only redraws among the prizes.
		if i == 0 && isMiss(e.source, e.cfg.MissPercent) {
			return &Outcome{
				Won:         false,
				Message:     MessageMiss,
				Probability: float64(e.cfg.MissPercent),
			}, nil
		}

		winner := draw(pool, e.source)
		if err := e.prizeRepo.CheckAndDecreaseRemaining(ctx, winner.Prize.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Taken by a concurrent scratch since the pool was built.
				exhausted[winner.Prize.ID] = true
				continue
			}

			return nil, err
		}

		entry := &entity.CollectionEntry{
			Base:        entity.Base{ID: uuid.NewString()},
			UserID:      userID,
			PrizeID:     winner.Prize.ID,
			CollectedAt: now,
		}
		if err := e.collectionRepo.Create(ctx, entry); err != nil {
			return nil, err
		}

		prize := winner.Prize
		prize.Remaining--
		return winOutcome(&prize), nil
	}

	xcontext.Logger(ctx).Warnf("Cannot find an available prize after %d retries", e.cfg.MaxRetries)
	return noPrizeOutcome(), nil
}

// isMiss flips the biased coin, true with a probability of percent/100
// whatever the pool contains.
func isMiss(source crypto.Source, percent int) bool {
	return source.Intn(100) < percent
}

func excludeExhausted(pool []PoolEntry, exhausted map[string]bool) []PoolEntry {
	if len(exhausted) == 0 {
		return pool
	}

	result := []PoolEntry{}
	for _, entry := range pool {
		if !exhausted[entry.Prize.ID] {
			result = append(result, entry)
		}
	}

	return result
}

func noPrizeOutcome() *Outcome {
	return &Outcome{Won: false, Message: MessageNoPrize, Probability: 0, NoPrizeAvailable: true}
}

func winOutcome(prize *entity.Prize) *Outcome {
	message := fmt.Sprintf("You received: %s", prize.Name)
	if prize.IsUnique() {
		message = fmt.Sprintf("Congratulations! You won the Mystery Box - %s!", prize.Name)
	}

	return &Outcome{
		Won:         true,
		Prize:       prize,
		Message:     message,
		Probability: prize.Weight,
		IsUnique:    prize.IsUnique(),
	}
}
