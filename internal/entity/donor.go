package entity

import "time"

type Donor struct {
	Base

	Name      string
	Amount    float64 `gorm:"index"`
	DonatedAt time.Time
}
