package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscapeLikePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"snake_case", `snake\_case`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeLikePattern(tt.in), "input %q", tt.in)
	}
}

func TestSplitSortSpec(t *testing.T) {
	tests := []struct {
		spec  string
		field string
		dir   string
	}{
		{"dueDate:asc", "dueDate", "ASC"},
		{"dueDate:desc", "dueDate", "DESC"},
		{"dueDate:DESC", "dueDate", "DESC"},
		{"dueDate", "dueDate", ""},
		{"dueDate:sideways", "dueDate", ""},
		{" createdAt : desc ", "createdAt", "DESC"},
		{"", "", ""},
	}

	for _, tt := range tests {
		field, dir := splitSortSpec(tt.spec)
		assert.Equal(t, tt.field, field, "spec %q", tt.spec)
		assert.Equal(t, tt.dir, dir, "spec %q", tt.spec)
	}
}

func TestTaskOrderClausesDefaults(t *testing.T) {
	clauses := taskOrderClauses(nil)

	assert.Equal(t, []string{
		"tasks.due_date ASC NULLS LAST",
		"tasks.created_at DESC",
	}, clauses)
}

func TestTaskOrderClausesDueDateNullsLastBothDirections(t *testing.T) {
	asc := taskOrderClauses([]string{"dueDate:asc"})
	require.GreaterOrEqual(t, len(asc), 2)
	assert.Equal(t, "tasks.due_date ASC NULLS LAST", asc[0])
	assert.Equal(t, "tasks.created_at DESC", asc[1])

	desc := taskOrderClauses([]string{"dueDate:desc"})
	assert.Equal(t, "tasks.due_date DESC NULLS LAST", desc[0])
	assert.Equal(t, "tasks.created_at DESC", desc[1])
}

func TestTaskOrderClausesNullPlacementAsymmetry(t *testing.T) {
	asc := taskOrderClauses([]string{"duration:asc"})
	assert.Equal(t, "tasks.estimated_time ASC NULLS FIRST", asc[0])

	desc := taskOrderClauses([]string{"duration:desc"})
	assert.Equal(t, "tasks.estimated_time DESC NULLS LAST", desc[0])

	catAsc := taskOrderClauses([]string{"categoryPriority"})
	assert.Equal(t, "categories.priority ASC NULLS FIRST", catAsc[0])

	catDesc := taskOrderClauses([]string{"categoryPriority:desc"})
	assert.Equal(t, "categories.priority DESC NULLS LAST", catDesc[0])
}

func TestTaskOrderClausesCreatedAtDefaultsDesc(t *testing.T) {
	clauses := taskOrderClauses([]string{"createdAt"})
	assert.Equal(t, "tasks.created_at DESC", clauses[0])

	clauses = taskOrderClauses([]string{"createdAt:asc"})
	assert.Equal(t, "tasks.created_at ASC", clauses[0])
}

func TestTaskOrderClausesNumOfSubtasks(t *testing.T) {
	clauses := taskOrderClauses([]string{"numOfSubtasks:desc"})
	assert.Equal(t,
		"(SELECT COUNT(*) FROM tasks st WHERE st.parent_task_id = tasks.id) DESC",
		clauses[0],
	)
}

func TestTaskOrderClausesUnknownFieldSkipped(t *testing.T) {
	clauses := taskOrderClauses([]string{"favoriteColor:asc", "duration:desc"})

	assert.Equal(t, []string{
		"tasks.estimated_time DESC NULLS LAST",
		"tasks.due_date ASC NULLS LAST",
		"tasks.created_at DESC",
	}, clauses)
}

func TestTaskOrderClausesMultipleSpecsKeepOrder(t *testing.T) {
	clauses := taskOrderClauses([]string{"categoryPriority:desc", "createdAt:asc"})

	assert.Equal(t, []string{
		"categories.priority DESC NULLS LAST",
		"tasks.created_at ASC",
		"tasks.due_date ASC NULLS LAST",
		"tasks.created_at DESC",
	}, clauses)
}

func TestNeedsCategoryJoin(t *testing.T) {
	assert.False(t, needsCategoryJoin(nil))
	assert.False(t, needsCategoryJoin([]string{"dueDate:asc", "duration"}))
	assert.True(t, needsCategoryJoin([]string{"dueDate", "categoryPriority:desc"}))
}

func TestDueDateCondition(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	weekEnd := today.AddDate(0, 0, 7)

	t.Run("past", func(t *testing.T) {
		cond, args, ok := dueDateCondition("past", now)
		require.True(t, ok)
		assert.Equal(t, "tasks.due_date < ?", cond)
		assert.Equal(t, []any{today}, args)
	})

	t.Run("overdue excludes completed", func(t *testing.T) {
		cond, args, ok := dueDateCondition("overdue", now)
		require.True(t, ok)
		assert.Equal(t, "tasks.due_date < ? AND tasks.completed = ?", cond)
		assert.Equal(t, []any{today, false}, args)
	})

	t.Run("today spans the calendar day", func(t *testing.T) {
		cond, args, ok := dueDateCondition("today", now)
		require.True(t, ok)
		assert.Equal(t, "tasks.due_date >= ? AND tasks.due_date < ?", cond)
		assert.Equal(t, []any{today, tomorrow}, args)
	})

	t.Run("week spans seven days", func(t *testing.T) {
		_, args, ok := dueDateCondition("week", now)
		require.True(t, ok)
		assert.Equal(t, []any{today, weekEnd}, args)
	})

	t.Run("future starts at week end", func(t *testing.T) {
		cond, args, ok := dueDateCondition("future", now)
		require.True(t, ok)
		assert.Equal(t, "tasks.due_date >= ?", cond)
		assert.Equal(t, []any{weekEnd}, args)
	})

	t.Run("none is null check", func(t *testing.T) {
		cond, args, ok := dueDateCondition("none", now)
		require.True(t, ok)
		assert.Equal(t, "tasks.due_date IS NULL", cond)
		assert.Nil(t, args)
	})

	t.Run("unknown bucket not ok", func(t *testing.T) {
		_, _, ok := dueDateCondition("someday", now)
		assert.False(t, ok)
		_, _, ok = dueDateCondition("", now)
		assert.False(t, ok)
	})

	t.Run("case insensitive", func(t *testing.T) {
		_, _, ok := dueDateCondition("OVERDUE", now)
		assert.True(t, ok)
	})
}

func TestParseBoolParam(t *testing.T) {
	val, ok := parseBoolParam("true")
	assert.True(t, ok)
	assert.True(t, val)

	val, ok = parseBoolParam("False")
	assert.True(t, ok)
	assert.False(t, val)

	_, ok = parseBoolParam("yes")
	assert.False(t, ok)

	_, ok = parseBoolParam("")
	assert.False(t, ok)
}
