package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbmartins/secretaria/internal/model"
)

var fiverrNow = time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)

func newFiverrFixture() *Fiverr {
	return NewFiverr(newMemBackend(), WithClock(fixedClock(fiverrNow)))
}

func addTask(f *Fiverr, title string, prio model.TaskPriority, deadline time.Time, completed bool) *model.FiverrTask {
	return f.AddTask(&model.FiverrTask{
		Title:     title,
		Client:    "cliente",
		Deadline:  deadline,
		Priority:  prio,
		Completed: completed,
	})
}

func TestFiverrPendingTasksOrder(t *testing.T) {
	f := newFiverrFixture()
	day := func(n int) time.Time { return fiverrNow.AddDate(0, 0, n) }

	addTask(f, "baixa cedo", model.PriorityLow, day(1), false)
	addTask(f, "alta tarde", model.PriorityHigh, day(5), false)
	addTask(f, "média", model.PriorityMedium, day(2), false)
	addTask(f, "alta cedo", model.PriorityHigh, day(1), false)
	addTask(f, "concluída alta", model.PriorityHigh, day(0), true)

	pending := f.PendingTasks()
	require.Len(t, pending, 4)

	// priority first, then earliest deadline inside the same priority
	assert.Equal(t, "alta cedo", pending[0].Title)
	assert.Equal(t, "alta tarde", pending[1].Title)
	assert.Equal(t, "média", pending[2].Title)
	assert.Equal(t, "baixa cedo", pending[3].Title)
}

func TestFiverrOverdueTasks(t *testing.T) {
	f := newFiverrFixture()

	late := addTask(f, "atrasada", model.PriorityMedium, fiverrNow.Add(-time.Hour), false)
	addTask(f, "entregue em atraso", model.PriorityMedium, fiverrNow.Add(-time.Hour), true)
	addTask(f, "no prazo", model.PriorityMedium, fiverrNow.Add(time.Hour), false)

	overdue := f.OverdueTasks()
	require.Len(t, overdue, 1)
	assert.Equal(t, late.ID, overdue[0].ID)
}

func TestFiverrCompleteTask(t *testing.T) {
	f := newFiverrFixture()
	task := addTask(f, "entrega", model.PriorityHigh, fiverrNow.Add(-time.Hour), false)

	require.True(t, f.CompleteTask(task.ID))

	got, ok := f.GetTask(task.ID)
	require.True(t, ok)
	assert.True(t, got.Completed)
	assert.Empty(t, f.PendingTasks())
	assert.Empty(t, f.OverdueTasks(), "a completed task is never overdue")

	assert.False(t, f.CompleteTask("missing"))
}

func TestFiverrTasksByPriority(t *testing.T) {
	f := newFiverrFixture()
	addTask(f, "a", model.PriorityHigh, fiverrNow, false)
	addTask(f, "b", model.PriorityLow, fiverrNow, true)
	addTask(f, "c", model.PriorityHigh, fiverrNow, true)

	assert.Len(t, f.TasksByPriority(model.PriorityHigh), 2)
	assert.Len(t, f.TasksByPriority(model.PriorityLow), 1)
	assert.Empty(t, f.TasksByPriority(model.PriorityMedium))
}

func TestFiverrClients(t *testing.T) {
	f := newFiverrFixture()
	c := f.AddClient(&model.FiverrClient{Name: "Alice", Email: "alice@example.com"})
	require.NotEmpty(t, c.ID)

	projects := 3
	require.True(t, f.UpdateClient(c.ID, model.FiverrClientPatch{Projects: &projects}))

	clients := f.Clients()
	require.Len(t, clients, 1)
	assert.Equal(t, 3, clients[0].Projects)
	assert.Equal(t, "Alice", clients[0].Name)

	require.True(t, f.DeleteClient(c.ID))
	assert.Empty(t, f.Clients())
}
