package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/questx-lab/scratchcard/config"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/crypto"
	"github.com/questx-lab/scratchcard/pkg/enum"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func (s *srv) startSeed(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRepos()

	return seed(s.ctx, s.userRepo, s.prizeRepo, s.donorRepo)
}

// seed inserts what the configuration declares and the database lacks. Rows
// already present are never updated, so a reseed cannot give back awarded
// copies.
func seed(
	ctx context.Context,
	userRepo repository.UserRepository,
	prizeRepo repository.PrizeRepository,
	donorRepo repository.DonorRepository,
) error {
	cfg := xcontext.Configs(ctx)
	if err := cfg.Catalog.Validate(); err != nil {
		return err
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := seedPrizes(ctx, prizeRepo, cfg.Catalog); err != nil {
		return err
	}

	if err := seedUsers(ctx, userRepo, cfg.Seed.Users); err != nil {
		return err
	}

	if err := seedDonors(ctx, donorRepo, cfg.Seed.Donors); err != nil {
		return err
	}

	if _, err := xcontext.WithCommitDBTransaction(ctx); err != nil {
		return err
	}

	return nil
}

func seedPrizes(ctx context.Context, prizeRepo repository.PrizeRepository, catalog config.Catalog) error {
	inserted := 0
	for _, p := range catalog.Prizes {
		_, err := prizeRepo.GetByID(ctx, p.ID)
		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		category, err := enum.ToEnum[entity.PrizeCategory](p.Category)
		if err != nil {
			return err
		}

		err = prizeRepo.Create(ctx, &entity.Prize{
			Base:        entity.Base{ID: p.ID},
			Name:        p.Name,
			Category:    category,
			Weight:      p.Weight,
			Remaining:   p.Remaining,
			ReleaseTime: p.ReleaseTime.UTC(),
		})
		if err != nil {
			return err
		}

		inserted++
	}

	xcontext.Logger(ctx).Infof("Seeded %d of %d prizes", inserted, len(catalog.Prizes))
	return nil
}

func seedUsers(ctx context.Context, userRepo repository.UserRepository, users []config.SeedUser) error {
	for _, u := range users {
		_, err := userRepo.GetByUsername(ctx, u.Username)
		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		password := u.Password
		if password == "" {
			password, err = crypto.GenerateRandomString()
			if err != nil {
				return err
			}

			xcontext.Logger(ctx).Infof("Generated password of %s: %s", u.Username, password)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		id := u.ID
		if id == "" {
			id = uuid.NewString()
		}

		role := entity.RoleUser
		if u.IsAdmin {
			role = entity.RoleAdmin
		}

		err = userRepo.Create(ctx, &entity.User{
			Base:     entity.Base{ID: id},
			Name:     u.Name,
			Username: u.Username,
			Password: string(hashed),
			Role:     role,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// seedDonors only fills an empty donor table, donors have no natural key to
// deduplicate on.
func seedDonors(ctx context.Context, donorRepo repository.DonorRepository, donors []config.SeedDonor) error {
	existing, err := donorRepo.GetList(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return nil
	}

	for _, d := range donors {
		date := d.Date
		if date.IsZero() {
			date = time.Now()
		}

		err := donorRepo.Create(ctx, &entity.Donor{
			Base:      entity.Base{ID: uuid.NewString()},
			Name:      d.Name,
			Amount:    d.Amount,
			DonatedAt: date.UTC(),
		})
		if err != nil {
			return err
		}
	}

	return nil
}
