package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbmartins/secretaria/internal/model"
)

func TestRoutineTodayRoutineSortsByTime(t *testing.T) {
	r := NewRoutine(newMemBackend())
	r.Add(&model.RoutineItem{Time: "14:00", Activity: "Fiverr"})
	r.Add(&model.RoutineItem{Time: "06:30", Activity: "Academia"})
	r.Add(&model.RoutineItem{Time: "09:00", Activity: "Inglês"})

	items := r.TodayRoutine()
	require.Len(t, items, 3)
	assert.Equal(t, "06:30", items[0].Time)
	assert.Equal(t, "09:00", items[1].Time)
	assert.Equal(t, "14:00", items[2].Time)
}

func TestRoutineMarkCompleted(t *testing.T) {
	r := NewRoutine(newMemBackend())
	it := r.Add(&model.RoutineItem{Time: "09:00", Activity: "Inglês"})
	r.Add(&model.RoutineItem{Time: "10:00", Activity: "Concurso"})

	require.True(t, r.MarkCompleted(it.ID))
	assert.False(t, r.MarkCompleted("missing"))

	completed, total := r.CompletionStats()
	assert.Equal(t, 1, completed)
	assert.Equal(t, 2, total)
}

func TestRoutineCompletionStatsEmpty(t *testing.T) {
	r := NewRoutine(newMemBackend())
	completed, total := r.CompletionStats()
	assert.Zero(t, completed)
	assert.Zero(t, total)
}
