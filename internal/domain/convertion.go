package domain

import (
	"time"

	"github.com/questx-lab/scratchcard/internal/domain/scratch"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/pkg/enum"
)

func convertUser(user *entity.User, includeSensitive bool) model.User {
	if user == nil {
		return model.User{}
	}

	result := model.User{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}

	if user.LastScratchAt.Valid {
		t := user.LastScratchAt.Time
		result.LastScratchAt = &t
	}

	if includeSensitive {
		result.Role = enum.ToString(user.Role)
		result.BonusScratch = user.BonusScratch
	}

	return result
}

// convertPrize flags prizes which cannot be drawn yet at now.
func convertPrize(prize *entity.Prize, now, uniqueReleaseTime time.Time) model.Prize {
	if prize == nil {
		return model.Prize{}
	}

	locked := prize.ReleaseTime.After(now)
	if prize.IsUnique() && now.Before(uniqueReleaseTime) {
		locked = true
	}

	return model.Prize{
		ID:          prize.ID,
		Name:        prize.Name,
		Category:    enum.ToString(prize.Category),
		Probability: prize.Weight,
		Remaining:   prize.Remaining,
		ReleaseTime: prize.ReleaseTime,
		IsLocked:    locked,
	}
}

func convertOutcome(outcome *scratch.Outcome, now, uniqueReleaseTime time.Time) model.ScratchOutcome {
	result := model.ScratchOutcome{
		Won:         outcome.Won,
		Message:     outcome.Message,
		Probability: outcome.Probability,
		IsUnique:    outcome.IsUnique,
		UsedBonus:   outcome.UsedBonus,
	}

	if outcome.Prize != nil {
		prize := convertPrize(outcome.Prize, now, uniqueReleaseTime)
		result.Prize = &prize
	}

	return result
}

func convertCollectionEntry(entry *entity.CollectionEntry, now, uniqueReleaseTime time.Time) model.CollectionEntry {
	return model.CollectionEntry{
		Prize:       convertPrize(&entry.Prize, now, uniqueReleaseTime),
		CollectedAt: entry.CollectedAt,
	}
}

func convertDonor(donor *entity.Donor) model.Donor {
	return model.Donor{
		Name:      donor.Name,
		Amount:    donor.Amount,
		DonatedAt: donor.DonatedAt,
	}
}
