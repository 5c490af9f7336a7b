package cron

import (
	"context"
	"time"

	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/robfig/cron/v3"
)

// LeaderboardRefreshCronJob rebuilds the redis ranking from the collection
// ledger, which repairs increments lost while redis was unreachable.
type LeaderboardRefreshCronJob struct {
	leaderboard statistic.Leaderboard
	schedule    cron.Schedule
}

func NewLeaderboardRefreshCronJob(
	leaderboard statistic.Leaderboard,
	expr string,
) (*LeaderboardRefreshCronJob, error) {
	schedule, err := parseSchedule(expr)
	if err != nil {
		return nil, err
	}

	return &LeaderboardRefreshCronJob{leaderboard: leaderboard, schedule: schedule}, nil
}

func (job *LeaderboardRefreshCronJob) Do(ctx context.Context) {
	if err := job.leaderboard.Refresh(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot refresh leaderboard: %v", err)
	}
}

func (job *LeaderboardRefreshCronJob) RunNow() bool {
	return true
}

func (job *LeaderboardRefreshCronJob) Next() time.Time {
	return job.schedule.Next(time.Now())
}
