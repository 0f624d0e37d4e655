package postgres

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskhive/domain/models"
)

// newCascadeTestDB opens a throwaway sqlite database with foreign keys
// enforced, so the self-referencing constraint on parent_task_id behaves
// like the production schema. The schema is created by hand because the
// model's server-side UUID default has no sqlite equivalent.
func newCascadeTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "tasks.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL DEFAULT 'Untitled',
		description TEXT,
		estimated_time INTEGER,
		due_date DATETIME,
		completed BOOLEAN NOT NULL DEFAULT 0,
		completed_at DATETIME,
		user_id TEXT NOT NULL,
		parent_task_id TEXT REFERENCES tasks(id),
		category_id TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`).Error)

	require.NoError(t, db.Exec(`CREATE TABLE task_tags (
		task_id TEXT NOT NULL REFERENCES tasks(id),
		tag_id TEXT NOT NULL,
		PRIMARY KEY (task_id, tag_id)
	)`).Error)

	return db
}

func seedTask(t *testing.T, db *gorm.DB, task *models.Task) {
	t.Helper()
	require.NoError(t, db.Create(task).Error)
}

func linkTag(t *testing.T, db *gorm.DB, taskID, tagID uuid.UUID) {
	t.Helper()
	require.NoError(t, db.Exec("INSERT INTO task_tags (task_id, tag_id) VALUES (?, ?)", taskID, tagID).Error)
}

func countTagLinks(t *testing.T, db *gorm.DB, taskID uuid.UUID) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM task_tags WHERE task_id = ?", taskID).Scan(&n).Error)
	return n
}

func TestDeleteCascadeDetachesSubtasks(t *testing.T) {
	db := newCascadeTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	parentCategory := uuid.New()
	ownCategory := uuid.New()

	parent := &models.Task{ID: uuid.New(), Title: "Parent", UserID: userID, CategoryID: &parentCategory}
	seedTask(t, db, parent)
	linkTag(t, db, parent.ID, uuid.New())

	bare := &models.Task{ID: uuid.New(), Title: "Bare sub", UserID: userID, ParentTaskID: &parent.ID}
	seedTask(t, db, bare)
	categorized := &models.Task{ID: uuid.New(), Title: "Categorized sub", UserID: userID, ParentTaskID: &parent.ID, CategoryID: &ownCategory}
	seedTask(t, db, categorized)

	subIDs, err := repo.DeleteCascade(ctx, userID, parent.ID, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{bare.ID, categorized.ID}, subIDs)

	var gone int64
	require.NoError(t, db.Model(&models.Task{}).Where("id = ?", parent.ID).Count(&gone).Error)
	assert.Zero(t, gone)
	assert.Zero(t, countTagLinks(t, db, parent.ID))

	var gotBare models.Task
	require.NoError(t, db.First(&gotBare, "id = ?", bare.ID).Error)
	assert.Nil(t, gotBare.ParentTaskID)
	require.NotNil(t, gotBare.CategoryID)
	assert.Equal(t, parentCategory, *gotBare.CategoryID, "subtask without a category inherits the parent's")

	var gotCategorized models.Task
	require.NoError(t, db.First(&gotCategorized, "id = ?", categorized.ID).Error)
	assert.Nil(t, gotCategorized.ParentTaskID)
	require.NotNil(t, gotCategorized.CategoryID)
	assert.Equal(t, ownCategory, *gotCategorized.CategoryID, "subtask keeps its own category")
}

func TestDeleteCascadeRemovesSubtasks(t *testing.T) {
	db := newCascadeTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	parent := &models.Task{ID: uuid.New(), Title: "Parent", UserID: userID}
	seedTask(t, db, parent)

	sub := &models.Task{ID: uuid.New(), Title: "Sub", UserID: userID, ParentTaskID: &parent.ID}
	seedTask(t, db, sub)
	linkTag(t, db, sub.ID, uuid.New())

	subIDs, err := repo.DeleteCascade(ctx, userID, parent.ID, false)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{sub.ID}, subIDs)

	var remaining int64
	require.NoError(t, db.Model(&models.Task{}).Where("user_id = ?", userID).Count(&remaining).Error)
	assert.Zero(t, remaining)
	assert.Zero(t, countTagLinks(t, db, sub.ID))
}

func TestDeleteCascadeLeaf(t *testing.T) {
	db := newCascadeTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	leaf := &models.Task{ID: uuid.New(), Title: "Leaf", UserID: userID}
	seedTask(t, db, leaf)

	subIDs, err := repo.DeleteCascade(ctx, userID, leaf.ID, true)
	require.NoError(t, err)
	assert.Empty(t, subIDs)

	var remaining int64
	require.NoError(t, db.Model(&models.Task{}).Where("id = ?", leaf.ID).Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestDeleteCascadeScopedToOwner(t *testing.T) {
	db := newCascadeTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	task := &models.Task{ID: uuid.New(), Title: "Mine", UserID: owner}
	seedTask(t, db, task)

	_, err := repo.DeleteCascade(ctx, uuid.New(), task.ID, true)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	var remaining int64
	require.NoError(t, db.Model(&models.Task{}).Where("id = ?", task.ID).Count(&remaining).Error)
	assert.EqualValues(t, 1, remaining)
}
