package entity

import (
	"time"

	"github.com/questx-lab/scratchcard/pkg/enum"
)

type PrizeCategory string

var (
	CommonPrize   = enum.New(PrizeCategory("common"), "common")
	RarePrize     = enum.New(PrizeCategory("rare"), "rare")
	VeryRarePrize = enum.New(PrizeCategory("very_rare"), "very_rare")
	UniquePrize   = enum.New(PrizeCategory("unique"), "unique")
)

type Prize struct {
	Base

	Name     string
	Category PrizeCategory `gorm:"index"`

	// Weight is the relative award likelihood. It is also the probability
	// figure shown to the winner.
	Weight float64

	// Remaining is only ever decremented, by one, under a remaining > 0
	// condition.
	Remaining int

	ReleaseTime time.Time
}

func (p Prize) IsUnique() bool {
	return p.Category == UniquePrize
}
