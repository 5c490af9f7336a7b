package main

import (
	"os/signal"
	"syscall"

	"github.com/questx-lab/scratchcard/internal/domain/cron"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadStatistic()

	cfg := xcontext.Configs(s.ctx).Cron
	leaderboardJob, err := cron.NewLeaderboardRefreshCronJob(s.leaderboard, cfg.LeaderboardRefresh)
	if err != nil {
		return err
	}

	inventoryJob, err := cron.NewInventoryReportCronJob(s.inventory, cfg.InventoryReport)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cron.NewCronJobManager().Start(ctx, leaderboardJob, inventoryJob)
	return nil
}
