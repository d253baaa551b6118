package controllers

import (
	"lms/database"
	courseModels "lms/models/course"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupProgressDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&courseModels.CourseModule{}, &courseModels.CourseProgress{}))
	database.Database = database.DbInstance{Db: db}
	return db
}

func progressRowCount(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&courseModels.CourseProgress{}).Count(&count).Error)
	return count
}

func TestApplyModuleCompletionNoopWritesNothing(t *testing.T) {
	db := setupProgressDB(t)

	// Marking a module incomplete for a user with no record must not create one.
	progress, courseComplete, err := applyModuleCompletion(1, 1, 42, false)
	require.NoError(t, err)
	assert.False(t, courseComplete)
	assert.Zero(t, progress.ID)
	assert.Equal(t, int64(0), progressRowCount(t, db))
}

func TestApplyModuleCompletionLazyCreate(t *testing.T) {
	db := setupProgressDB(t)

	module := courseModels.CourseModule{CourseID: 1}
	require.NoError(t, db.Create(&module).Error)

	progress, courseComplete, err := applyModuleCompletion(1, 1, module.ID, true)
	require.NoError(t, err)
	assert.True(t, courseComplete) // single-module course finishes on this write
	assert.NotZero(t, progress.ID)
	assert.Equal(t, []uint{module.ID}, []uint(progress.CompletedModuleIDs))
	assert.Equal(t, int64(1), progressRowCount(t, db))

	// Repeating the same toggle changes nothing and reports no transition.
	again, courseComplete, err := applyModuleCompletion(1, 1, module.ID, true)
	require.NoError(t, err)
	assert.False(t, courseComplete)
	assert.Equal(t, progress.ID, again.ID)
	assert.Equal(t, int64(1), progressRowCount(t, db))
}

func TestApplyModuleCompletionTransitionReportedOnce(t *testing.T) {
	db := setupProgressDB(t)

	first := courseModels.CourseModule{CourseID: 1}
	second := courseModels.CourseModule{CourseID: 1}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	_, courseComplete, err := applyModuleCompletion(1, 1, first.ID, true)
	require.NoError(t, err)
	assert.False(t, courseComplete)

	_, courseComplete, err = applyModuleCompletion(1, 1, second.ID, true)
	require.NoError(t, err)
	assert.True(t, courseComplete)

	// Toggling a module off and back on completes the course again.
	_, courseComplete, err = applyModuleCompletion(1, 1, second.ID, false)
	require.NoError(t, err)
	assert.False(t, courseComplete)

	_, courseComplete, err = applyModuleCompletion(1, 1, second.ID, true)
	require.NoError(t, err)
	assert.True(t, courseComplete)
}
