package cron

import (
	"context"
	"time"

	"github.com/questx-lab/scratchcard/internal/domain/statistic"
	"github.com/questx-lab/scratchcard/pkg/xcontext"
	"github.com/robfig/cron/v3"
)

type InventoryReportCronJob struct {
	inventory statistic.Inventory
	schedule  cron.Schedule
}

func NewInventoryReportCronJob(inventory statistic.Inventory, expr string) (*InventoryReportCronJob, error) {
	schedule, err := parseSchedule(expr)
	if err != nil {
		return nil, err
	}

	return &InventoryReportCronJob{inventory: inventory, schedule: schedule}, nil
}

func (job *InventoryReportCronJob) Do(ctx context.Context) {
	if err := job.inventory.ExportGauges(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot export prize gauges: %v", err)
	}

	stats, err := job.inventory.GetStats(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get inventory stats: %v", err)
		return
	}

	xcontext.Logger(ctx).Infof("Inventory: total=%d used=%d remaining=%d bonus=%d",
		stats.TotalCards, stats.UsedCards, stats.RemainingCards, stats.BonusCards)
}

func (job *InventoryReportCronJob) RunNow() bool {
	return false
}

func (job *InventoryReportCronJob) Next() time.Time {
	return job.schedule.Next(time.Now())
}
