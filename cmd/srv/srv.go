package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/questx-lab/scratchcard/config"
	"github.com/questx-lab/scratchcard/internal/domain"
	"github.com/questx-lab/scratchcard/internal/domain/scratch"
	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/internal/entity"
	"github.com/questx-lab/scratchcard/internal/model"
	"github.com/questx-lab/scratchcard/internal/repository"
	"github.com/questx-lab/scratchcard/pkg/authenticator"
	"github.com/questx-lab/scratchcard/pkg/crypto"
	"github.com/questx-lab/scratchcard/pkg/logger"
	"github.com/questx-lab/scratchcard/pkg/router"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/questx-lab/scratchcard/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type srv struct {
	app *cli.App
	ctx context.Context

	server *http.Server
	router *router.Router

	redisClient xredis.Client
	tokenEngine authenticator.TokenEngine[model.AccessToken]

	userRepo       repository.UserRepository
	prizeRepo      repository.PrizeRepository
	collectionRepo repository.CollectionRepository
	attemptRepo    repository.ScratchAttemptRepository
	donorRepo      repository.DonorRepository

	engine      scratch.Engine
	leaderboard statistic.Leaderboard
	inventory   statistic.Inventory

	authDomain      domain.AuthDomain
	scratchDomain   domain.ScratchDomain
	statisticDomain domain.StatisticDomain
	adminDomain     domain.AdminDomain
}

func (s *srv) loadConfig(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)
	s.ctx = xcontext.WithLogger(s.ctx, logger.NewZapLogger(cfg.LogLevel, cfg.Env != "local"))
	return nil
}

func (s *srv) close(*cli.Context) error {
	if s.ctx == nil {
		return nil
	}

	if l, ok := xcontext.Logger(s.ctx).(interface{ Sync() error }); ok {
		// Syncing stderr fails on some terminals, nothing to do about it.
		_ = l.Sync()
	}

	return nil
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx).Database
	db, err := gorm.Open(mysql.Open(cfg.ConnectionString()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) migrateDB() {
	if err := entity.MigrateTable(s.ctx); err != nil {
		panic(err)
	}
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.prizeRepo = repository.NewPrizeRepository()
	s.collectionRepo = repository.NewCollectionRepository()
	s.attemptRepo = repository.NewScratchAttemptRepository()
	s.donorRepo = repository.NewDonorRepository()
}

func (s *srv) loadStatistic() {
	s.leaderboard = statistic.New(s.collectionRepo, s.redisClient)
	s.inventory = statistic.NewInventory(s.userRepo, s.prizeRepo, s.attemptRepo)
}

func (s *srv) loadDomains() {
	cfg := xcontext.Configs(s.ctx)

	s.tokenEngine = authenticator.NewTokenEngine[model.AccessToken](cfg.Auth.TokenSecret, cfg.Auth.AccessToken)
	s.engine = scratch.NewEngine(
		cfg.Scratch,
		s.userRepo,
		s.prizeRepo,
		s.collectionRepo,
		s.attemptRepo,
		crypto.NewSource(),
	)

	s.authDomain = domain.NewAuthDomain(s.userRepo, s.collectionRepo, s.leaderboard, s.tokenEngine)
	s.scratchDomain = domain.NewScratchDomain(s.engine, s.userRepo, s.prizeRepo, s.collectionRepo, s.leaderboard)
	s.statisticDomain = domain.NewStatisticDomain(s.userRepo, s.prizeRepo, s.collectionRepo, s.donorRepo, s.leaderboard)
	s.adminDomain = domain.NewAdminDomain(s.userRepo, s.inventory)
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Error
	}
}
