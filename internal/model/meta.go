package model

import "time"

// Meta carries the identity and bookkeeping fields shared by every record.
// IDs and timestamps are set by the owning store, never by callers.
type Meta struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m *Meta) EntityID() string { return m.ID }

// Stamp assigns identity on add. The store owns these fields, so anything
// the caller put there is overwritten.
func (m *Meta) Stamp(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch refreshes UpdatedAt; called by the store on every mutation.
func (m *Meta) Touch(now time.Time) { m.UpdatedAt = now }

// Entity is implemented by all persisted record types via Meta embedding.
type Entity interface {
	EntityID() string
	Stamp(id string, now time.Time)
	Touch(now time.Time)
}
