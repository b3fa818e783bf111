package scheduler

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/robfig/cron/v3"
	"github.com/stayloop/leasebill/internal/config"
	"github.com/stayloop/leasebill/internal/events"
	"github.com/stayloop/leasebill/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Scheduler runs the recurring billing sweeps.
type Scheduler struct {
	db      *gorm.DB
	log     *zap.Logger
	genID   *snowflake.Node
	outbox  *events.Outbox
	metrics *metrics.SweepMetrics
	cfg     config.SweepConfig
	cron    *cron.Cron
}

type Param struct {
	fx.In

	DB     *gorm.DB
	Log    *zap.Logger
	GenID  *snowflake.Node
	Outbox *events.Outbox
	Config config.Config
}

func New(p Param) *Scheduler {
	return &Scheduler{
		db:      p.DB,
		log:     p.Log.Named("scheduler"),
		genID:   p.GenID,
		outbox:  p.Outbox,
		metrics: metrics.SweepWithConfig(metrics.Config{ServiceName: "leasebill", Environment: p.Config.Environment}),
		cfg:     p.Config.Sweep,
		cron:    cron.New(),
	}
}

// Start registers the cron entries and begins running them.
func (s *Scheduler) Start() error {
	schedule := s.cfg.Schedule
	if schedule == "" {
		schedule = "0 6 * * *"
	}
	if _, err := s.cron.AddFunc(schedule, func() {
		if err := s.RunDueSweep(context.Background()); err != nil {
			s.log.Error("payment due sweep failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("scheduler started", zap.String("schedule", schedule))
	return nil
}

// Stop halts cron and waits for running jobs to finish.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var Module = fx.Module("scheduler",
	fx.Provide(New),
	fx.Invoke(func(lc fx.Lifecycle, s *Scheduler) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return s.Start()
			},
			OnStop: func(ctx context.Context) error {
				return s.Stop(ctx)
			},
		})
	}),
)
