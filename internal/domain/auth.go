package domain

import (
	"context"
	"errors"

	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/authenticator"
	"github.com/questx-lab/scratchcard/pkg/errorx"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type AuthDomain interface {
	Login(context.Context, *model.LoginRequest) (*model.LoginResponse, error)
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
}

type authDomain struct {
	userRepo       repository.UserRepository
	collectionRepo repository.CollectionRepository
	leaderboard    statistic.Leaderboard
	tokenEngine    authenticator.TokenEngine[model.AccessToken]
}

func NewAuthDomain(
	userRepo repository.UserRepository,
	collectionRepo repository.CollectionRepository,
	leaderboard statistic.Leaderboard,
	tokenEngine authenticator.TokenEngine[model.AccessToken],
) *authDomain {
	return &authDomain{
		userRepo:       userRepo,
		collectionRepo: collectionRepo,
		leaderboard:    leaderboard,
		tokenEngine:    tokenEngine,
	}
}

func (d *authDomain) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, errorx.New(errorx.BadRequest, "Username and password are required")
	}

	user, err := d.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		xcontext.Logger(ctx).Debugf("Wrong password of %s: %v", user.Username, err)
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	token, err := d.tokenEngine.Generate(user.ID, model.AccessToken{ID: user.ID, Username: user.Username})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	session, err := d.session(ctx, user)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{AccessToken: token, Session: *session}, nil
}

func (d *authDomain) GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	session, err := d.session(ctx, user)
	if err != nil {
		return nil, err
	}

	return (*model.GetMeResponse)(session), nil
}

func (d *authDomain) session(ctx context.Context, user *entity.User) (*model.Session, error) {
	prizeIDs, err := d.collectionRepo.GetPrizeIDsByUserID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get collected prizes: %v", err)
		return nil, errorx.Unknown
	}

	if prizeIDs == nil {
		prizeIDs = []string{}
	}

	// The rank is informative, a redis outage must not block the login.
	rank, err := d.leaderboard.GetRank(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get rank of %s: %v", user.ID, err)
	}

	return &model.Session{
		User:              convertUser(user, true),
		CollectedPrizeIDs: prizeIDs,
		Rank:              rank,
		IsAdmin:           slices.Contains(entity.GlobalAdminRoles, user.Role),
	}, nil
}
