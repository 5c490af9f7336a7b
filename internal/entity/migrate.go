package entity

import (
	"context"

	"github.com/questx-lab/scratchcard/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Prize{},
		&CollectionEntry{},
		&ScratchAttempt{},
		&Donor{},
	)
}
