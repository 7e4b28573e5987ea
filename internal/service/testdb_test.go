package service

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/songlist-dev/songlist-back/internal/db"
)

var testDBCounter int64

// newTestDB opens a fresh in-memory database per test. The named shared
// cache keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	client, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(client))

	return client
}

func newTestLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

type gormFixture struct {
	client *gorm.DB
}

func (f *gormFixture) createTask(t *testing.T, title string, categoryID uint64) *db.Task {
	t.Helper()
	task := db.Task{Title: title, CategoryID: categoryID}
	require.NoError(t, f.client.Create(&task).Error)
	return &task
}
