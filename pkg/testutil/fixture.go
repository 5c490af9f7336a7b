package testutil

import (
	"context"
	"time"

	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"golang.org/x/crypto/bcrypt"
)

var (
	ReleaseTime       = time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
	UniqueReleaseTime = time.Date(2024, 8, 20, 0, 0, 0, 0, time.UTC)

	// Now is later than every release time of the fixture catalog.
	Now = time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)

	UserPassword = "ganpati"
)

var (
	User1 = &entity.User{Base: entity.Base{ID: "user1"}, Name: "User One", Username: "user1", Role: entity.RoleUser}
	User2 = &entity.User{Base: entity.Base{ID: "user2"}, Name: "User Two", Username: "user2", Role: entity.RoleUser}
	User3 = &entity.User{Base: entity.Base{ID: "user3"}, Name: "User Three", Username: "user3", Role: entity.RoleUser}
	Admin = &entity.User{Base: entity.Base{ID: "admin"}, Name: "Admin", Username: "admin", Role: entity.RoleAdmin}

	Users = []*entity.User{User1, User2, User3, Admin}
)

var (
	Mayureshwar = &entity.Prize{
		Base:        entity.Base{ID: "1"},
		Name:        "Mayureshwar",
		Category:    entity.CommonPrize,
		Weight:      20,
		Remaining:   100,
		ReleaseTime: ReleaseTime,
	}
	Varadavinayak = &entity.Prize{
		Base:        entity.Base{ID: "4"},
		Name:        "Varadavinayak",
		Category:    entity.RarePrize,
		Weight:      7,
		Remaining:   50,
		ReleaseTime: ReleaseTime,
	}
	Mahaganapati = &entity.Prize{
		Base:        entity.Base{ID: "8"},
		Name:        "Mahaganapati",
		Category:    entity.VeryRarePrize,
		Weight:      1,
		Remaining:   10,
		ReleaseTime: time.Date(2024, 8, 18, 0, 0, 0, 0, time.UTC),
	}
	OrionBappa = &entity.Prize{
		Base:        entity.Base{ID: "9"},
		Name:        "Orion Bappa",
		Category:    entity.UniquePrize,
		Weight:      0.5,
		Remaining:   1,
		ReleaseTime: UniqueReleaseTime,
	}

	Prizes = []*entity.Prize{Mayureshwar, Varadavinayak, Mahaganapati, OrionBappa}
)

// CreateFixtureDb inserts copies of the fixture users and catalog, tests may
// mutate the rows freely.
func CreateFixtureDb(ctx context.Context) {
	InsertUsers(ctx)
	InsertPrizes(ctx, Prizes...)
}

func InsertUsers(ctx context.Context) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(UserPassword), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}

	for _, u := range Users {
		user := *u
		user.Password = string(hashed)
		if err := xcontext.DB(ctx).Create(&user).Error; err != nil {
			panic(err)
		}
	}
}

func InsertPrizes(ctx context.Context, prizes ...*entity.Prize) {
	for _, p := range prizes {
		prize := *p
		if err := xcontext.DB(ctx).Create(&prize).Error; err != nil {
			panic(err)
		}
	}
}
