package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Rank orders priorities for sorting: high before medium before low.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

func (p TaskPriority) Label() string {
	switch p {
	case PriorityLow:
		return "Baixa"
	case PriorityMedium:
		return "Média"
	case PriorityHigh:
		return "Alta"
	default:
		return string(p)
	}
}

// FiverrTask is a gig-platform delivery with a deadline.
type FiverrTask struct {
	Meta
	Title       string       `json:"title"`
	Client      string       `json:"client"`
	Deadline    time.Time    `json:"deadline"`
	Priority    TaskPriority `json:"priority"`
	Completed   bool         `json:"completed"`
	Description string       `json:"description,omitempty"`
}

// Overdue is derived, never stored: past the deadline and still open.
func (t *FiverrTask) Overdue(now time.Time) bool {
	return !t.Completed && t.Deadline.Before(now)
}

// FiverrTaskPatch is a partial update; nil fields are left untouched.
type FiverrTaskPatch struct {
	Title       *string
	Client      *string
	Deadline    *time.Time
	Priority    *TaskPriority
	Completed   *bool
	Description *string
}

func (p FiverrTaskPatch) Apply(t *FiverrTask) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Client != nil {
		t.Client = *p.Client
	}
	if p.Deadline != nil {
		t.Deadline = *p.Deadline
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
}

// FiverrClient is a buyer the user has worked with.
type FiverrClient struct {
	Meta
	Name         string          `json:"name"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Projects     int             `json:"projects"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

// FiverrClientPatch is a partial update; nil fields are left untouched.
type FiverrClientPatch struct {
	Name         *string
	Email        *string
	Phone        *string
	Projects     *int
	TotalRevenue *decimal.Decimal
}

func (p FiverrClientPatch) Apply(c *FiverrClient) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Projects != nil {
		c.Projects = *p.Projects
	}
	if p.TotalRevenue != nil {
		c.TotalRevenue = *p.TotalRevenue
	}
}
