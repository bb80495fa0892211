package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"elearn/database"
	courseModels "elearn/models/course"
)

var dbCounter int

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbCounter++
	dsn := fmt.Sprintf("file:utiltest%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.MigrateModels(db))

	database.Database = database.DbInstance{Db: db}
	return db
}

func liveClass(t *testing.T, db *gorm.DB, status string, start time.Time, minutes int) courseModels.LiveClass {
	t.Helper()
	lc := courseModels.LiveClass{
		CourseID:        1,
		TeacherID:       1,
		Title:           "Intro session",
		StartTime:       start,
		DurationMinutes: minutes,
		Platform:        "zoom",
		MeetingLink:     "https://zoom.example.com/j/123",
		Status:          status,
	}
	require.NoError(t, db.Create(&lc).Error)
	return lc
}

func TestSweepLiveClassStatuses(t *testing.T) {
	db := setupDB(t)
	now := time.Now()

	started := liveClass(t, db, courseModels.LiveClassScheduled, now.Add(-5*time.Minute), 60)
	upcoming := liveClass(t, db, courseModels.LiveClassScheduled, now.Add(time.Hour), 60)
	finished := liveClass(t, db, courseModels.LiveClassLive, now.Add(-2*time.Hour), 60)
	cancelled := liveClass(t, db, courseModels.LiveClassCancelled, now.Add(-2*time.Hour), 60)

	SweepLiveClassStatuses()

	status := func(id uint) string {
		var lc courseModels.LiveClass
		require.NoError(t, db.First(&lc, id).Error)
		return lc.Status
	}

	assert.Equal(t, courseModels.LiveClassLive, status(started.ID))
	assert.Equal(t, courseModels.LiveClassScheduled, status(upcoming.ID))
	assert.Equal(t, courseModels.LiveClassEnded, status(finished.ID))
	assert.Equal(t, courseModels.LiveClassCancelled, status(cancelled.ID))
}

func TestValidPlatform(t *testing.T) {
	assert.True(t, courseModels.ValidPlatform("zoom"))
	assert.True(t, courseModels.ValidPlatform("google-meet"))
	assert.False(t, courseModels.ValidPlatform("skype"))
	assert.False(t, courseModels.ValidPlatform(""))
}
