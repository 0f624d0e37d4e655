package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskSetCompleted(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("incomplete to complete stamps completed_at", func(t *testing.T) {
		task := &Task{}
		task.SetCompleted(true, now)

		assert.True(t, task.Completed)
		require.NotNil(t, task.CompletedAt)
		assert.Equal(t, now, *task.CompletedAt)
	})

	t.Run("complete to incomplete clears completed_at", func(t *testing.T) {
		at := now.Add(-time.Hour)
		task := &Task{Completed: true, CompletedAt: &at}
		task.SetCompleted(false, now)

		assert.False(t, task.Completed)
		assert.Nil(t, task.CompletedAt)
	})

	t.Run("complete to complete keeps original timestamp", func(t *testing.T) {
		at := now.Add(-time.Hour)
		task := &Task{Completed: true, CompletedAt: &at}
		task.SetCompleted(true, now)

		assert.True(t, task.Completed)
		require.NotNil(t, task.CompletedAt)
		assert.Equal(t, at, *task.CompletedAt)
	})

	t.Run("incomplete to incomplete stays clear", func(t *testing.T) {
		task := &Task{}
		task.SetCompleted(false, now)

		assert.False(t, task.Completed)
		assert.Nil(t, task.CompletedAt)
	})
}

func TestTaskNormalizeCompletion(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("completed without timestamp gets one", func(t *testing.T) {
		task := &Task{Completed: true}
		task.NormalizeCompletion(now)

		require.NotNil(t, task.CompletedAt)
		assert.Equal(t, now, *task.CompletedAt)
	})

	t.Run("incomplete with stale timestamp loses it", func(t *testing.T) {
		at := now.Add(-time.Hour)
		task := &Task{Completed: false, CompletedAt: &at}
		task.NormalizeCompletion(now)

		assert.Nil(t, task.CompletedAt)
	})
}
