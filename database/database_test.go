package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lshigami/intervu/config"
	"github.com/lshigami/intervu/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{Database: config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "intervu.db"),
	}}
}

func TestNewStores_SQLite(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	stores, err := NewStores(lc, sqliteConfig(t))
	require.NoError(t, err)
	require.NotNil(t, stores.Interviews)
	require.NotNil(t, stores.Feedback)
	require.NotNil(t, stores.Pinger)

	lc.RequireStart()
	defer lc.RequireStop()

	ctx := context.Background()
	assert.NoError(t, stores.Pinger.Ping(ctx))

	interview := model.Interview{UserID: "u1", Role: "SRE", Type: "Technical", Questions: []string{"Q"}, Finalized: true}
	require.NoError(t, stores.Interviews.Create(ctx, &interview))

	at := time.Now().UTC()
	require.NoError(t, stores.Feedback.Save(ctx, &model.Feedback{
		ID:               stores.Feedback.NewID(),
		InterviewID:      interview.ID,
		UserID:           "u2",
		AttemptTimestamp: at,
		TotalScore:       50,
		CreatedAt:        at,
	}))

	available, err := stores.Interviews.FindAvailable(ctx, "u2", 20)
	require.NoError(t, err)
	assert.Len(t, available, 1)

	latest, err := stores.Feedback.FindLatest(ctx, interview.ID, "u2")
	require.NoError(t, err)
	assert.Equal(t, 50, latest.TotalScore)
}

func TestNewStores_UnsupportedDriver(t *testing.T) {
	_, err := NewStores(fxtest.NewLifecycle(t), &config.Config{Database: config.Database{Driver: "cassandra"}})
	assert.Error(t, err)
}

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db, err := OpenGorm(sqliteConfig(t).Database)
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	require.NoError(t, AutoMigrate(db))

	assert.True(t, db.Migrator().HasTable(&model.Interview{}))
	assert.True(t, db.Migrator().HasTable("feedback"))
	assert.True(t, db.Migrator().HasIndex(&model.Feedback{}, "idx_feedback_pair_attempt"))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}
