package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyChecklist tracks the freelancing ritual of one calendar day.
// At most one exists per date; it is created lazily on first access.
type DailyChecklist struct {
	Meta
	Date                   time.Time `json:"date"`
	SalesCount             int       `json:"salesCount"`
	BuyerRequestsResponded int       `json:"buyerRequestsResponded"`
	ClientMessagesAnswered bool      `json:"clientMessagesAnswered"`
	ProjectsTested         bool      `json:"projectsTested"`
	ReadmeUpdated          bool      `json:"readmeUpdated"`
	ReviewRequested        bool      `json:"reviewRequested"`
}

// DailyChecklistPatch is a partial update; nil fields are left untouched.
type DailyChecklistPatch struct {
	SalesCount             *int
	BuyerRequestsResponded *int
	ClientMessagesAnswered *bool
	ProjectsTested         *bool
	ReadmeUpdated          *bool
	ReviewRequested        *bool
}

func (p DailyChecklistPatch) Apply(c *DailyChecklist) {
	if p.SalesCount != nil {
		c.SalesCount = *p.SalesCount
	}
	if p.BuyerRequestsResponded != nil {
		c.BuyerRequestsResponded = *p.BuyerRequestsResponded
	}
	if p.ClientMessagesAnswered != nil {
		c.ClientMessagesAnswered = *p.ClientMessagesAnswered
	}
	if p.ProjectsTested != nil {
		c.ProjectsTested = *p.ProjectsTested
	}
	if p.ReadmeUpdated != nil {
		c.ReadmeUpdated = *p.ReadmeUpdated
	}
	if p.ReviewRequested != nil {
		c.ReviewRequested = *p.ReviewRequested
	}
}

// WeeklyGoal holds the targets of one week of the 4-week freelancing plan.
// At most one exists per (year, weekNumber).
type WeeklyGoal struct {
	Meta
	WeekNumber      int             `json:"weekNumber"` // 1-4
	Year            int             `json:"year"`
	GigsCreated     int             `json:"gigsCreated"`
	SalesTarget     int             `json:"salesTarget"`
	SalesAchieved   int             `json:"salesAchieved"`
	ReviewsTarget   int             `json:"reviewsTarget"`
	ReviewsAchieved int             `json:"reviewsAchieved"`
	RevenueTarget   decimal.Decimal `json:"revenueTarget"`
	RevenueAchieved decimal.Decimal `json:"revenueAchieved"`
}

// WeeklyGoalPatch is a partial update; nil fields are left untouched.
type WeeklyGoalPatch struct {
	GigsCreated     *int
	SalesTarget     *int
	SalesAchieved   *int
	ReviewsTarget   *int
	ReviewsAchieved *int
	RevenueTarget   *decimal.Decimal
	RevenueAchieved *decimal.Decimal
}

func (p WeeklyGoalPatch) Apply(g *WeeklyGoal) {
	if p.GigsCreated != nil {
		g.GigsCreated = *p.GigsCreated
	}
	if p.SalesTarget != nil {
		g.SalesTarget = *p.SalesTarget
	}
	if p.SalesAchieved != nil {
		g.SalesAchieved = *p.SalesAchieved
	}
	if p.ReviewsTarget != nil {
		g.ReviewsTarget = *p.ReviewsTarget
	}
	if p.ReviewsAchieved != nil {
		g.ReviewsAchieved = *p.ReviewsAchieved
	}
	if p.RevenueTarget != nil {
		g.RevenueTarget = *p.RevenueTarget
	}
	if p.RevenueAchieved != nil {
		g.RevenueAchieved = *p.RevenueAchieved
	}
}

// BuyerRequest is a gig-platform lead the user may respond to and win.
type BuyerRequest struct {
	Meta
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	Deadline    time.Time       `json:"deadline"`
	Responded   bool            `json:"responded"`
	Won         bool            `json:"won"`
	Notes       string          `json:"notes,omitempty"`
}

// BuyerRequestPatch is a partial update; nil fields are left untouched.
type BuyerRequestPatch struct {
	Title       *string
	Description *string
	Budget      *decimal.Decimal
	Deadline    *time.Time
	Responded   *bool
	Won         *bool
	Notes       *string
}

func (p BuyerRequestPatch) Apply(r *BuyerRequest) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Budget != nil {
		r.Budget = *p.Budget
	}
	if p.Deadline != nil {
		r.Deadline = *p.Deadline
	}
	if p.Responded != nil {
		r.Responded = *p.Responded
	}
	if p.Won != nil {
		r.Won = *p.Won
	}
	if p.Notes != nil {
		r.Notes = *p.Notes
	}
}
