package store

import (
	"sort"

	"github.com/rbmartins/secretaria/internal/model"
)

// Routine owns the daily routine items.
type Routine struct {
	col *Collection[*model.RoutineItem]
}

func NewRoutine(b Backend, opts ...Option) *Routine {
	return &Routine{col: NewCollection[*model.RoutineItem]("routine", b, opts...)}
}

func (r *Routine) Add(it *model.RoutineItem) *model.RoutineItem { return r.col.Add(it) }

func (r *Routine) Update(id string, p model.RoutineItemPatch) bool {
	return r.col.Update(id, p.Apply)
}

func (r *Routine) Delete(id string) bool { return r.col.Delete(id) }

func (r *Routine) ReplaceAll(items []*model.RoutineItem) { r.col.ReplaceAll(items) }

func (r *Routine) Items() []*model.RoutineItem { return r.col.Items() }

func (r *Routine) Get(id string) (*model.RoutineItem, bool) { return r.col.Get(id) }

func (r *Routine) MarkCompleted(id string) bool {
	return r.col.Update(id, func(it *model.RoutineItem) { it.Completed = true })
}

// TodayRoutine returns the routine sorted ascending by time of day.
// HH:MM strings sort lexically into chronological order.
func (r *Routine) TodayRoutine() []*model.RoutineItem {
	items := r.col.Items()
	sort.SliceStable(items, func(i, j int) bool { return items[i].Time < items[j].Time })
	return items
}

// CompletionStats counts completed vs total activities.
func (r *Routine) CompletionStats() (completed, total int) {
	for _, it := range r.col.Items() {
		if it.Completed {
			completed++
		}
	}
	return completed, r.col.Len()
}

func (r *Routine) Wait() { r.col.Wait() }
