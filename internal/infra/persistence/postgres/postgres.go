package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"kitchen/config"
	"kitchen/internal/domain/lifecycle"
	"kitchen/internal/errors"
	"kitchen/internal/infra/persistence/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the order database and registers ping, migration and pool monitoring hooks.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Migration.AutoMigrate {
				if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
					return errors.Wrap(err, "failed to migrate PostgreSQL schema")
				}
			}

			if params.Config.Metrics != nil && params.Config.Metrics.Enabled {
				collector := collectors.NewDBStatsCollector(sqlDB, params.Config.Env.ServiceName)
				if err := prometheus.Register(collector); err != nil {
					params.Logger.Warn("DB stats collector not registered", slog.Any("error", err))
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Models lists every table the service owns, in dependency order.
func Models() []any {
	return []any{
		&model.UserModel{},
		&model.RoleAssignmentModel{},
		&model.CredentialModel{},
		&model.ItemModel{},
		&model.OrderModel{},
		&model.OutboxEventModel{},
		&model.NotificationSettingsModel{},
		&model.NotificationDeliveryModel{},
		&model.AdminDeviceModel{},
	}
}

// monitorDBPool warns when requests queued for a connection since the last tick.
// Pool gauges themselves are exported by the DB stats collector.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		waits := cur.WaitCount - prev.WaitCount
		waited := cur.WaitDuration - prev.WaitDuration
		prev = cur

		if waits == 0 || waited < dbPoolWarnDurationThreshold {
			continue
		}

		logger.LogAttrs(ctx, slog.LevelWarn, "Order store connection pool saturated",
			slog.Int64("waits", waits),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("inUse", cur.InUse),
			slog.Int("maxOpen", cur.MaxOpenConnections),
		)
	}
}
