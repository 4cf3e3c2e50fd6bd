package database

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/intervu/config"
	"github.com/lshigami/intervu/internal/logger"
	"github.com/lshigami/intervu/internal/model"
	"github.com/lshigami/intervu/internal/repository"
	"github.com/lshigami/intervu/internal/repository/mongorepo"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const connectTimeout = 10 * time.Second

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Stores is the set of repositories backed by whichever driver is configured.
type Stores struct {
	fx.Out

	Interviews repository.InterviewRepository
	Feedback   repository.FeedbackRepository
	Pinger     Pinger
}

// NewStores opens the configured store and builds the repositories on top of
// it. The connection is closed when the fx app stops.
func NewStores(lc fx.Lifecycle, cfg *config.Config) (Stores, error) {
	switch cfg.Database.Driver {
	case config.DriverMongo:
		return newMongoStores(lc, cfg.Database)
	case config.DriverPostgres, config.DriverSQLite, "":
		db, err := OpenGorm(cfg.Database)
		if err != nil {
			return Stores{}, err
		}
		if err := AutoMigrate(db); err != nil {
			return Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		})
		return Stores{
			Interviews: repository.NewInterviewRepository(db),
			Feedback:   repository.NewFeedbackRepository(db),
			Pinger:     gormPinger{db: db},
		}, nil
	default:
		return Stores{}, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// OpenGorm connects to PostgreSQL or a SQLite file depending on the driver.
func OpenGorm(dbCfg config.Database) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if dbCfg.Driver == config.DriverSQLite {
		dialector = sqlite.Open(dbCfg.Path)
	} else {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			dbCfg.Host, dbCfg.User, dbCfg.Password, dbCfg.Name, dbCfg.Port, dbCfg.SSLMode)
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.NewGormLogger(),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info().Str("driver", dialector.Name()).Msg("Database connection established")
	return db, nil
}

func AutoMigrate(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(&model.Interview{}, &model.Feedback{}); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func newMongoStores(lc fx.Lifecycle, dbCfg config.Database) (Stores, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dbCfg.MongoURI))
	if err != nil {
		return Stores{}, fmt.Errorf("failed to connect to mongo: %w", err)
	}
	db := client.Database(dbCfg.Name)
	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		log.Warn().Err(err).Msg("Could not ensure mongo indexes; list queries may be slow")
	}
	log.Info().Str("database", dbCfg.Name).Msg("Mongo connection established")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})
	return Stores{
		Interviews: mongorepo.NewInterviewRepository(db),
		Feedback:   mongorepo.NewFeedbackRepository(db),
		Pinger:     mongoPinger{client: client},
	}, nil
}

type gormPinger struct{ db *gorm.DB }

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type mongoPinger struct{ client *mongo.Client }

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, nil)
}
