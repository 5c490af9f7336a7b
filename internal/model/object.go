package model

import "time"

type AccessToken struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type User struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Username      string     `json:"username"`
	Role          string     `json:"role,omitempty"`
	BonusScratch  bool       `json:"bonus_scratch"`
	LastScratchAt *time.Time `json:"last_scratch_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Prize struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Probability float64   `json:"probability"`
	Remaining   int       `json:"remaining"`
	ReleaseTime time.Time `json:"release_time"`
	IsLocked    bool      `json:"is_locked"`
}

type CollectionEntry struct {
	Prize       Prize     `json:"prize"`
	CollectedAt time.Time `json:"collected_at"`
}

type ScratchOutcome struct {
	Won         bool    `json:"won"`
	Prize       *Prize  `json:"prize,omitempty"`
	Message     string  `json:"message"`
	Probability float64 `json:"probability"`
	IsUnique    bool    `json:"is_unique"`
	UsedBonus   bool    `json:"used_bonus"`
}

type LeaderboardEntry struct {
	User  User  `json:"user"`
	Rank  int   `json:"rank"`
	Total int64 `json:"total"`
}

type Donor struct {
	Name      string    `json:"name"`
	Amount    float64   `json:"amount"`
	DonatedAt time.Time `json:"donated_at"`
}
