package postgres

import (
	"strings"
	"time"

	"taskhive/domain/dto"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clause builders for the task query engine. Pure functions over the raw query
// params so that filter and sort translation is testable without a database.
// Unrecognized or malformed values are no-ops: unknown future parameters must
// not break older clients.

// splitSortSpec parses "field:direction". An absent or unrecognized direction
// yields "", letting each field apply its own default.
func splitSortSpec(spec string) (field, dir string) {
	parts := strings.SplitN(spec, ":", 2)
	field = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "asc":
			dir = "ASC"
		case "desc":
			dir = "DESC"
		}
	}
	return field, dir
}

// nullPlacement implements the engine-wide asymmetry: ascending puts nulls
// first, descending puts them last.
func nullPlacement(dir string) string {
	if dir == "DESC" {
		return "NULLS LAST"
	}
	return "NULLS FIRST"
}

func orDefault(dir, def string) string {
	if dir == "" {
		return def
	}
	return dir
}

// taskOrderClauses translates sort_by specs into SQL order clauses. Unknown
// fields are skipped. The default ordering (due date ascending nulls last,
// then newest first) is always appended as the final tiebreak, which keeps
// equal-key ordering deterministic.
func taskOrderClauses(sortBy []string) []string {
	var clauses []string
	for _, spec := range sortBy {
		field, dir := splitSortSpec(spec)
		switch field {
		case "dueDate":
			// Nulls last in both directions, newest-first tiebreak.
			dir = orDefault(dir, "ASC")
			clauses = append(clauses,
				"tasks.due_date "+dir+" NULLS LAST",
				"tasks.created_at DESC",
			)
		case "categoryPriority":
			dir = orDefault(dir, "ASC")
			clauses = append(clauses, "categories.priority "+dir+" "+nullPlacement(dir))
		case "duration":
			dir = orDefault(dir, "ASC")
			clauses = append(clauses, "tasks.estimated_time "+dir+" "+nullPlacement(dir))
		case "createdAt":
			clauses = append(clauses, "tasks.created_at "+orDefault(dir, "DESC"))
		case "numOfSubtasks":
			dir = orDefault(dir, "ASC")
			clauses = append(clauses,
				"(SELECT COUNT(*) FROM tasks st WHERE st.parent_task_id = tasks.id) "+dir,
			)
		}
	}
	clauses = append(clauses,
		"tasks.due_date ASC NULLS LAST",
		"tasks.created_at DESC",
	)
	return clauses
}

// needsCategoryJoin reports whether any sort spec references the categories
// table.
func needsCategoryJoin(sortBy []string) bool {
	for _, spec := range sortBy {
		if field, _ := splitSortSpec(spec); field == "categoryPriority" {
			return true
		}
	}
	return false
}

// dueDateCondition translates a symbolic due-date bucket into a SQL condition,
// evaluated against the calendar date of now. ok is false for unrecognized
// buckets.
func dueDateCondition(bucket string, now time.Time) (cond string, args []any, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 7)

	switch strings.ToLower(bucket) {
	case "past":
		return "tasks.due_date < ?", []any{today}, true
	case "overdue":
		return "tasks.due_date < ? AND tasks.completed = ?", []any{today, false}, true
	case "today":
		return "tasks.due_date >= ? AND tasks.due_date < ?", []any{today, tomorrow}, true
	case "week":
		return "tasks.due_date >= ? AND tasks.due_date < ?", []any{today, weekEnd}, true
	case "future":
		return "tasks.due_date >= ?", []any{weekEnd}, true
	case "none":
		return "tasks.due_date IS NULL", nil, true
	}
	return "", nil, false
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLikePattern neutralizes LIKE metacharacters so search terms match
// literally. Postgres treats backslash as the escape character by default.
func escapeLikePattern(s string) string {
	return likeEscaper.Replace(s)
}

// parseBoolParam accepts "true"/"false" case-insensitively; anything else is
// not ok and the filter is skipped.
func parseBoolParam(v string) (val, ok bool) {
	switch strings.ToLower(v) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// applyTaskFilters ANDs every recognized filter onto the query. An empty
// parameter means no constraint; "null" on relation filters means IS NULL.
func applyTaskFilters(db *gorm.DB, params dto.TaskQueryParams, now time.Time) *gorm.DB {
	if v := params.ParentTask; v != "" {
		if v == "null" {
			db = db.Where("tasks.parent_task_id IS NULL")
		} else if id, err := uuid.Parse(v); err == nil {
			db = db.Where("tasks.parent_task_id = ?", id)
		}
	}

	if v := params.CompletedParam(); v != "" {
		if completed, ok := parseBoolParam(v); ok {
			db = db.Where("tasks.completed = ?", completed)
		}
	}

	if v := params.CategoryParam(); v != "" {
		if v == "null" {
			db = db.Where("tasks.category_id IS NULL")
		} else if id, err := uuid.Parse(v); err == nil {
			db = db.Where("tasks.category_id = ?", id)
		}
	}

	if cond, args, ok := dueDateCondition(params.DueDate, now); ok {
		db = db.Where(cond, args...)
	}

	if v := params.Tag; v != "" {
		if id, err := uuid.Parse(v); err == nil {
			db = db.Where(
				"EXISTS (SELECT 1 FROM task_tags tt WHERE tt.task_id = tasks.id AND tt.tag_id = ?)",
				id,
			)
		}
	}

	if s := params.Search; s != "" {
		like := "%" + escapeLikePattern(s) + "%"
		db = db.Where("tasks.title ILIKE ? OR tasks.description ILIKE ?", like, like)
	}

	return db
}
