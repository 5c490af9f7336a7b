package entity

import (
	"database/sql"

	"github.com/questx-lab/scratchcard/pkg/enum"
)

type GlobalRole string

var (
	RoleUser  = enum.New(GlobalRole("user"), "user")
	RoleAdmin = enum.New(GlobalRole("admin"), "admin")
)

var GlobalAdminRoles = []GlobalRole{RoleAdmin}

type User struct {
	Base

	Name     string
	Username string `gorm:"unique"`
	Password string
	Role     GlobalRole `gorm:"default:user"`

	// BonusScratch grants one scratch outside the cooldown. Only an operator
	// sets it, the allocator clears it when the grant is used.
	BonusScratch bool

	// LastScratchAt is the time of the last attempt that consumed the daily
	// allowance. Attempts using a bonus grant leave it untouched.
	LastScratchAt sql.NullTime
}
