package notify

import (
	"fmt"
	"sync"
	"time"
)

// Scheduler plans local reminders for routine activities. The core
// never requires one; a nil scheduler simply means reminders are off.
type Scheduler interface {
	Schedule(id, title string, at time.Time) error
	Cancel(id string) error
}

// Lead is how long before the activity the reminder fires.
const Lead = 15 * time.Minute

// NextTrigger computes the reminder instant for an HH:MM routine time:
// today at time minus Lead, rolled to tomorrow when already past.
func NextTrigger(hhmm string, now time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", hhmm, err)
	}
	trigger := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()).Add(-Lead)
	if trigger.Before(now) {
		trigger = trigger.AddDate(0, 0, 1)
	}
	return trigger, nil
}

// Entry is one planned reminder.
type Entry struct {
	Title string
	At    time.Time
}

// Memory is an in-process Scheduler, the default and the test double.
type Memory struct {
	mu      sync.Mutex
	entries map[string]Entry
}

func NewMemory() *Memory {
	return &Memory{entries: make(map[string]Entry)}
}

func (m *Memory) Schedule(id, title string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[id] = Entry{Title: title, At: at}
	return nil
}

func (m *Memory) Cancel(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, id)
	return nil
}

// Scheduled reports the planned reminder for a record, if any.
func (m *Memory) Scheduled(id string) (Entry, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[id]
	return e, ok
}
