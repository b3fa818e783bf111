package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/stayloop/leasebill/internal/audit"
	"github.com/stayloop/leasebill/internal/booking"
	"github.com/stayloop/leasebill/internal/charge"
	"github.com/stayloop/leasebill/internal/clock"
	"github.com/stayloop/leasebill/internal/config"
	"github.com/stayloop/leasebill/internal/events"
	"github.com/stayloop/leasebill/internal/ledger"
	"github.com/stayloop/leasebill/internal/migration"
	"github.com/stayloop/leasebill/internal/observability"
	"github.com/stayloop/leasebill/internal/schedule"
	"github.com/stayloop/leasebill/internal/scheduler"
	"github.com/stayloop/leasebill/internal/seed"
	"github.com/stayloop/leasebill/internal/server"
	"github.com/stayloop/leasebill/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		fx.Invoke(func(conn *gorm.DB) error {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := migration.RunMigrations(sqlDB); err != nil {
				return err
			}
			return seed.EnsureLedgerAccounts(conn)
		}),

		fx.Provide(events.NewOutbox),
		charge.Module,
		schedule.Module,
		ledger.Module,
		audit.Module,
		booking.Module,
		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
