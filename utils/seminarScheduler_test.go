package utils_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"simdiklat_backend/database"
	"simdiklat_backend/models"
	"simdiklat_backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDb(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Seminar{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestCompleteFinishedSeminars(t *testing.T) {
	db := setupDb(t)

	past := models.Seminar{
		CreatedBy: 1,
		Title:     "Diklat Selesai",
		DateStart: time.Now().Add(-48 * time.Hour),
		DateEnd:   time.Now().Add(-24 * time.Hour),
		Status:    models.SeminarOpened,
	}
	future := models.Seminar{
		CreatedBy: 1,
		Title:     "Diklat Mendatang",
		DateStart: time.Now().Add(24 * time.Hour),
		DateEnd:   time.Now().Add(48 * time.Hour),
		Status:    models.SeminarOpened,
	}
	require.NoError(t, db.Create(&past).Error)
	require.NoError(t, db.Create(&future).Error)
	require.NoError(t, db.Model(&models.Seminar{}).Where("1 = 1").Update("registration_open", true).Error)

	utils.CompleteFinishedSeminars()

	var after models.Seminar
	require.NoError(t, db.First(&after, past.ID).Error)
	assert.Equal(t, models.SeminarCompleted, after.Status)
	assert.False(t, after.RegistrationOpen)

	require.NoError(t, db.First(&after, future.ID).Error)
	assert.Equal(t, models.SeminarOpened, after.Status)
	assert.True(t, after.RegistrationOpen)

	// Re-running is a no-op for already completed seminars
	utils.CompleteFinishedSeminars()
	require.NoError(t, db.First(&after, past.ID).Error)
	assert.Equal(t, models.SeminarCompleted, after.Status)
}
