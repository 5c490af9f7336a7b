package entity

import "time"

type CollectionEntry struct {
	Base

	UserID string `gorm:"uniqueIndex:idx_collection_entries_user_prize"`
	User   User   `gorm:"foreignKey:UserID"`

	PrizeID string `gorm:"uniqueIndex:idx_collection_entries_user_prize"`
	Prize   Prize  `gorm:"foreignKey:PrizeID"`

	CollectedAt time.Time
}
