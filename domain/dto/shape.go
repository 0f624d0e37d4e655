package dto

import (
	"taskhive/domain/models"

	"github.com/google/uuid"
)

// TaskBoard is the shaped list structure: an id-indexed lookup over every record
// (top-level tasks and their subtasks) plus ordered id lists for top-level tasks
// partitioned by completion. Shaping flattens; it never re-sorts.
type TaskBoard struct {
	Tasks map[uuid.UUID]*TaskResponse `json:"tasks"`
	Data  TaskBoardData               `json:"data"`
}

type TaskBoardData struct {
	TotalCount      int         `json:"total_count"`
	ParentCount     int         `json:"parent_count"`
	IncompleteCount int         `json:"incomplete_count"`
	CompleteCount   int         `json:"complete_count"`
	IncompleteTasks []uuid.UUID `json:"incomplete_tasks"`
	CompleteTasks   []uuid.UUID `json:"complete_tasks"`
}

// SubtaskSet is the shaped structure for a flat set of subtasks: the same
// id-indexed lookup plus completion-partitioned id lists and counts. Used by
// the subtask listing and by the delete cascade's keep-subtasks report.
type SubtaskSet struct {
	Tasks           map[uuid.UUID]*TaskResponse `json:"tasks"`
	SubCount        int                         `json:"sub_count"`
	IncompleteCount int                         `json:"incomplete_count"`
	CompleteCount   int                         `json:"complete_count"`
	IncompleteTasks []uuid.UUID                 `json:"incomplete_tasks"`
	CompleteTasks   []uuid.UUID                 `json:"complete_tasks"`
}

// DeletedSubtasks reports the subtasks removed alongside their parent.
type DeletedSubtasks struct {
	SubCount        int         `json:"sub_count"`
	DeletedSubtasks []uuid.UUID `json:"deleted_subtasks"`
}

// ShapeTaskBoard flattens an ordered task list into a TaskBoard. Top-level
// tasks are partitioned into the incomplete/complete id lists in input order;
// their subtasks only join the lookup. Tasks that are themselves subtasks
// (possible when a filter matched them directly) join the lookup as well.
func ShapeTaskBoard(tasks []*models.Task) *TaskBoard {
	board := &TaskBoard{
		Tasks: make(map[uuid.UUID]*TaskResponse, len(tasks)),
		Data: TaskBoardData{
			IncompleteTasks: []uuid.UUID{},
			CompleteTasks:   []uuid.UUID{},
		},
	}

	for _, task := range tasks {
		// A record already in the lookup was built in its parent's context and
		// carries the inherited category name; it is never overwritten.
		if _, seen := board.Tasks[task.ID]; !seen {
			board.Tasks[task.ID] = TaskToTaskResponse(task)
		}

		for _, sub := range task.SubTasks {
			if _, seen := board.Tasks[sub.ID]; !seen {
				board.Tasks[sub.ID] = SubtaskToTaskResponse(sub, task)
			}
		}

		if !task.IsTopLevel() {
			continue
		}
		if task.Completed {
			board.Data.CompleteTasks = append(board.Data.CompleteTasks, task.ID)
		} else {
			board.Data.IncompleteTasks = append(board.Data.IncompleteTasks, task.ID)
		}
	}

	board.Data.IncompleteCount = len(board.Data.IncompleteTasks)
	board.Data.CompleteCount = len(board.Data.CompleteTasks)
	board.Data.ParentCount = board.Data.IncompleteCount + board.Data.CompleteCount
	board.Data.TotalCount = len(board.Tasks)

	return board
}

// ShapeSubtaskSet flattens an ordered subtask list, partitioned by completion.
// The parent provides the inherited category name; pass nil when the parent is
// gone (post-delete reporting), in which case records carry their own category
// already rewritten by the cascade.
func ShapeSubtaskSet(subtasks []*models.Task, parent *models.Task) *SubtaskSet {
	set := &SubtaskSet{
		Tasks:           make(map[uuid.UUID]*TaskResponse, len(subtasks)),
		IncompleteTasks: []uuid.UUID{},
		CompleteTasks:   []uuid.UUID{},
	}

	for _, sub := range subtasks {
		set.Tasks[sub.ID] = SubtaskToTaskResponse(sub, parent)
		if sub.Completed {
			set.CompleteTasks = append(set.CompleteTasks, sub.ID)
		} else {
			set.IncompleteTasks = append(set.IncompleteTasks, sub.ID)
		}
	}

	set.IncompleteCount = len(set.IncompleteTasks)
	set.CompleteCount = len(set.CompleteTasks)
	set.SubCount = len(subtasks)

	return set
}
