package entity

import (
	"database/sql"
	"time"
)

type ScratchAttempt struct {
	Base

	UserID string `gorm:"index"`
	User   User   `gorm:"foreignKey:UserID"`

	ScratchedAt time.Time `gorm:"index"`
	Won         bool
	PrizeID     sql.NullString
	UsedBonus   bool
}
