package config

import (
	"fmt"
	"time"

	"golang.org/x/exp/slices"
)

const UniqueCategory = "unique"

var PrizeCategories = []string{"common", "rare", "very_rare", UniqueCategory}

type Catalog struct {
	Prizes []PrizeDefinition `toml:"prizes"`
}

type PrizeDefinition struct {
	ID          string    `toml:"id"`
	Name        string    `toml:"name"`
	Category    string    `toml:"category"`
	Weight      float64   `toml:"weight"`
	Remaining   int       `toml:"remaining"`
	ReleaseTime time.Time `toml:"release_time"`
}

// Validate rejects catalogs the allocator must never see: a second unique
// prize, a unique prize with more than one copy, negative weights or counts.
func (c Catalog) Validate() error {
	ids := map[string]struct{}{}
	uniques := 0
	for i, p := range c.Prizes {
		if p.ID == "" {
			return fmt.Errorf("prize #%d has no id", i+1)
		}

		if _, ok := ids[p.ID]; ok {
			return fmt.Errorf("duplicated prize id %s", p.ID)
		}
		ids[p.ID] = struct{}{}

		if !slices.Contains(PrizeCategories, p.Category) {
			return fmt.Errorf("prize %s has unknown category %q", p.ID, p.Category)
		}

		if p.Weight < 0 {
			return fmt.Errorf("prize %s has negative weight %v", p.ID, p.Weight)
		}

		if p.Remaining < 0 {
			return fmt.Errorf("prize %s has negative remaining %d", p.ID, p.Remaining)
		}

		if p.Category == UniqueCategory {
			uniques++
			if p.Remaining > 1 {
				return fmt.Errorf("unique prize %s must have at most one copy, got %d", p.ID, p.Remaining)
			}
		}
	}

	if uniques > 1 {
		return fmt.Errorf("catalog has %d unique prizes, expected at most one", uniques)
	}

	return nil
}
