package services

import (
	"io"
	"log"
	"strings"
	"testing"

	"project/backend/models"
	"project/backend/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. The DSN is named after the
// test so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, utils.Migrate(db))
	return db
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestCatalog(t *testing.T) (*CatalogService, *gorm.DB) {
	db := newTestDB(t)
	return NewCatalogService(db, testLogger(), nil, StaticContent{}), db
}

func seedCourse(t *testing.T, db *gorm.DB, id string, lessons int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Course{
		ID:         id,
		Title:      id,
		Difficulty: "Beginner",
		Lessons:    lessons,
	}).Error)
}
