package store

import (
	"sort"

	"github.com/rbmartins/secretaria/internal/model"
)

// Fiverr owns the gig tasks and the client book. Tasks and clients are
// persisted as separate documents under the fiverr namespace.
type Fiverr struct {
	tasks   *Collection[*model.FiverrTask]
	clients *Collection[*model.FiverrClient]
}

func NewFiverr(b Backend, opts ...Option) *Fiverr {
	return &Fiverr{
		tasks:   NewCollection[*model.FiverrTask]("fiverr", b, opts...),
		clients: NewCollection[*model.FiverrClient]("fiverr_clients", b, opts...),
	}
}

func (f *Fiverr) AddTask(t *model.FiverrTask) *model.FiverrTask { return f.tasks.Add(t) }

func (f *Fiverr) UpdateTask(id string, p model.FiverrTaskPatch) bool {
	return f.tasks.Update(id, p.Apply)
}

func (f *Fiverr) DeleteTask(id string) bool { return f.tasks.Delete(id) }

func (f *Fiverr) ReplaceAllTasks(ts []*model.FiverrTask) { f.tasks.ReplaceAll(ts) }

func (f *Fiverr) Tasks() []*model.FiverrTask { return f.tasks.Items() }

func (f *Fiverr) GetTask(id string) (*model.FiverrTask, bool) { return f.tasks.Get(id) }

func (f *Fiverr) CompleteTask(id string) bool {
	return f.tasks.Update(id, func(t *model.FiverrTask) { t.Completed = true })
}

// PendingTasks returns open tasks ordered by priority rank (high first)
// and, within a rank, by earliest deadline.
func (f *Fiverr) PendingTasks() []*model.FiverrTask {
	var pending []*model.FiverrTask
	for _, t := range f.tasks.Items() {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		ri, rj := pending[i].Priority.Rank(), pending[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return pending[i].Deadline.Before(pending[j].Deadline)
	})
	return pending
}

func (f *Fiverr) TasksByPriority(p model.TaskPriority) []*model.FiverrTask {
	var out []*model.FiverrTask
	for _, t := range f.tasks.Items() {
		if t.Priority == p {
			out = append(out, t)
		}
	}
	return out
}

// OverdueTasks returns open tasks whose deadline has passed.
func (f *Fiverr) OverdueTasks() []*model.FiverrTask {
	now := f.tasks.Now()
	var out []*model.FiverrTask
	for _, t := range f.tasks.Items() {
		if t.Overdue(now) {
			out = append(out, t)
		}
	}
	return out
}

func (f *Fiverr) AddClient(c *model.FiverrClient) *model.FiverrClient { return f.clients.Add(c) }

func (f *Fiverr) UpdateClient(id string, p model.FiverrClientPatch) bool {
	return f.clients.Update(id, p.Apply)
}

func (f *Fiverr) DeleteClient(id string) bool { return f.clients.Delete(id) }

func (f *Fiverr) ReplaceAllClients(cs []*model.FiverrClient) { f.clients.ReplaceAll(cs) }

func (f *Fiverr) Clients() []*model.FiverrClient { return f.clients.Items() }

func (f *Fiverr) Wait() {
	f.tasks.Wait()
	f.clients.Wait()
}
