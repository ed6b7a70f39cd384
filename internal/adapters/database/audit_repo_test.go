package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"textgateway.app/internal/config"
	"textgateway.app/internal/ports"
	"textgateway.app/pkg/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// each new connection to :memory: would see an empty database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, RunMigrations(db))
	return db
}

func TestAuditRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepositoryAdapter(db)
	ctx := context.Background()

	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record := &ports.AuditRecord{
		RequestID:    "req-1",
		UserID:       "alice",
		Operation:    "completion",
		Timestamp:    ts,
		RequestData:  `{"prompt":"Write a short story about a cat."}`,
		ResponseData: `{"text":"The ginger cat..."}`,
	}

	require.NoError(t, repo.Save(ctx, record))
	assert.NotZero(t, record.ID)

	var stored RequestLogModel
	require.NoError(t, db.First(&stored, record.ID).Error)
	assert.Equal(t, "alice", stored.UserID)
	assert.Equal(t, "completion", stored.Operation)
	assert.Equal(t, "req-1", stored.RequestID)
	assert.True(t, ts.Equal(stored.Timestamp))
	assert.Equal(t, record.RequestData, stored.RequestData)
	assert.Equal(t, record.ResponseData, stored.ResponseData)
}

func TestAuditRepository_SaveAssignsIncreasingIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepositoryAdapter(db)
	ctx := context.Background()

	first := &ports.AuditRecord{UserID: "alice", Operation: "summary"}
	second := &ports.AuditRecord{UserID: "alice", Operation: "summary"}
	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	assert.Greater(t, second.ID, first.ID)

	var stored RequestLogModel
	require.NoError(t, db.First(&stored, first.ID).Error)
	assert.False(t, stored.Timestamp.IsZero())
}

func TestAuditRepository_SaveValidation(t *testing.T) {
	repo := NewAuditRepositoryAdapter(setupTestDB(t))

	err := repo.Save(context.Background(), nil)
	assert.True(t, errors.IsValidationError(err))

	err = repo.Save(context.Background(), &ports.AuditRecord{Operation: "completion"})
	assert.True(t, errors.IsValidationError(err))
}

func TestAuditRepository_Count(t *testing.T) {
	repo := NewAuditRepositoryAdapter(setupTestDB(t))
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Save(ctx, &ports.AuditRecord{UserID: "bob", Operation: "translation"}))
		}()
	}
	wg.Wait()

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestAuditRepository_SaveOnClosedDatabase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepositoryAdapter(db)
	require.NoError(t, Close(db))

	err := repo.Save(context.Background(), &ports.AuditRecord{UserID: "alice", Operation: "completion"})

	assert.True(t, errors.IsDatabaseError(err))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(config.DatabaseConfig{Driver: "mysql"})

	assert.True(t, errors.IsConfigurationError(err))
}

func TestOpen_SQLite(t *testing.T) {
	db, err := Open(config.DatabaseConfig{
		Driver:     config.DriverSQLite,
		SQLitePath: ":memory:",
	})
	require.NoError(t, err)
	defer func() { _ = Close(db) }()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)

	require.NoError(t, RunMigrations(db))
	assert.True(t, db.Migrator().HasTable("request_logs"))
}
