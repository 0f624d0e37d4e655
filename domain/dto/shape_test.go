package dto

import (
	"testing"

	"taskhive/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(title string, completed bool) *models.Task {
	return &models.Task{
		ID:        uuid.New(),
		Title:     title,
		Completed: completed,
		UserID:    uuid.New(),
	}
}

func TestShapeTaskBoardPartitionsTopLevelInInputOrder(t *testing.T) {
	a := newTask("a", false)
	b := newTask("b", true)
	c := newTask("c", false)
	d := newTask("d", true)

	board := ShapeTaskBoard([]*models.Task{a, b, c, d})

	assert.Equal(t, []uuid.UUID{a.ID, c.ID}, board.Data.IncompleteTasks)
	assert.Equal(t, []uuid.UUID{b.ID, d.ID}, board.Data.CompleteTasks)
	assert.Equal(t, 2, board.Data.IncompleteCount)
	assert.Equal(t, 2, board.Data.CompleteCount)
	assert.Equal(t, 4, board.Data.ParentCount)
	assert.Equal(t, 4, board.Data.TotalCount)
}

func TestShapeTaskBoardSubtasksJoinLookupOnly(t *testing.T) {
	parent := newTask("parent", false)
	sub := newTask("sub", false)
	sub.ParentTaskID = &parent.ID
	parent.SubTasks = []*models.Task{sub}

	board := ShapeTaskBoard([]*models.Task{parent})

	require.Contains(t, board.Tasks, parent.ID)
	require.Contains(t, board.Tasks, sub.ID)
	assert.Equal(t, []uuid.UUID{parent.ID}, board.Data.IncompleteTasks)
	assert.Equal(t, 1, board.Data.ParentCount)
	assert.Equal(t, 2, board.Data.TotalCount)
	assert.True(t, board.Tasks[parent.ID].HasSubtasks)
}

func TestShapeTaskBoardDirectlyMatchedSubtaskStaysOutOfIDLists(t *testing.T) {
	parentID := uuid.New()
	sub := newTask("sub", false)
	sub.ParentTaskID = &parentID

	board := ShapeTaskBoard([]*models.Task{sub})

	require.Contains(t, board.Tasks, sub.ID)
	assert.Empty(t, board.Data.IncompleteTasks)
	assert.Empty(t, board.Data.CompleteTasks)
	assert.Equal(t, 0, board.Data.ParentCount)
	assert.Equal(t, 1, board.Data.TotalCount)
}

func TestShapeTaskBoardSubtaskInheritsParentCategoryName(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Name: "Chores"}
	parent := newTask("parent", false)
	parent.Category = category
	parent.CategoryID = &category.ID

	sub := newTask("sub", false)
	sub.ParentTaskID = &parent.ID
	parent.SubTasks = []*models.Task{sub}

	// The subtask row also appears directly in the list, after its parent,
	// carrying only its own (empty) category relation.
	directSub := &models.Task{ID: sub.ID, Title: sub.Title, UserID: sub.UserID, ParentTaskID: &parent.ID}

	board := ShapeTaskBoard([]*models.Task{parent, directSub})

	require.Contains(t, board.Tasks, sub.ID)
	require.NotNil(t, board.Tasks[sub.ID].CategoryName, "inherited category name survives the direct row")
	assert.Equal(t, "Chores", *board.Tasks[sub.ID].CategoryName)
	assert.Nil(t, board.Tasks[sub.ID].Category)
}

func TestShapeTaskBoardDirectSubtaskRowCarriesParentCategory(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Name: "Errands"}
	parent := newTask("parent", false)
	parent.Category = category
	parent.CategoryID = &category.ID

	sub := newTask("sub", false)
	sub.ParentTaskID = &parent.ID
	sub.ParentTask = parent

	board := ShapeTaskBoard([]*models.Task{sub})

	require.Contains(t, board.Tasks, sub.ID)
	require.NotNil(t, board.Tasks[sub.ID].CategoryName)
	assert.Equal(t, "Errands", *board.Tasks[sub.ID].CategoryName)
}

func TestShapeTaskBoardEmptyInput(t *testing.T) {
	board := ShapeTaskBoard(nil)

	assert.Empty(t, board.Tasks)
	assert.NotNil(t, board.Data.IncompleteTasks)
	assert.NotNil(t, board.Data.CompleteTasks)
	assert.Equal(t, 0, board.Data.TotalCount)
}

func TestShapeSubtaskSetCountsAndInheritedCategory(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Name: "Chores"}
	parent := newTask("parent", false)
	parent.Category = category
	parent.CategoryID = &category.ID

	done := newTask("done", true)
	open := newTask("open", false)

	set := ShapeSubtaskSet([]*models.Task{done, open}, parent)

	assert.Equal(t, 2, set.SubCount)
	assert.Equal(t, 1, set.CompleteCount)
	assert.Equal(t, 1, set.IncompleteCount)
	assert.Equal(t, []uuid.UUID{done.ID}, set.CompleteTasks)
	assert.Equal(t, []uuid.UUID{open.ID}, set.IncompleteTasks)

	require.Contains(t, set.Tasks, open.ID)
	require.NotNil(t, set.Tasks[open.ID].CategoryName)
	assert.Equal(t, "Chores", *set.Tasks[open.ID].CategoryName)
	assert.Nil(t, set.Tasks[open.ID].Category)
}

func TestShapeSubtaskSetWithoutParent(t *testing.T) {
	category := &models.Category{ID: uuid.New(), Name: "Errands"}
	orphan := newTask("orphan", false)
	orphan.Category = category
	orphan.CategoryID = &category.ID

	set := ShapeSubtaskSet([]*models.Task{orphan}, nil)

	require.Contains(t, set.Tasks, orphan.ID)
	require.NotNil(t, set.Tasks[orphan.ID].CategoryName)
	assert.Equal(t, "Errands", *set.Tasks[orphan.ID].CategoryName)
}
