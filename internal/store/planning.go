package store

import (
	"time"

	"github.com/rbmartins/secretaria/internal/model"
)

// Planning owns the daily checklists, the 4-week goals and the buyer
// requests, each persisted as its own document under the planning
// namespace.
type Planning struct {
	checklists *Collection[*model.DailyChecklist]
	goals      *Collection[*model.WeeklyGoal]
	requests   *Collection[*model.BuyerRequest]
}

func NewPlanning(b Backend, opts ...Option) *Planning {
	return &Planning{
		checklists: NewCollection[*model.DailyChecklist]("planning_checklists", b, opts...),
		goals:      NewCollection[*model.WeeklyGoal]("planning_goals", b, opts...),
		requests:   NewCollection[*model.BuyerRequest]("planning_requests", b, opts...),
	}
}

func (p *Planning) Checklists() []*model.DailyChecklist { return p.checklists.Items() }

// TodayChecklist returns today's checklist, creating an empty one on
// first access. At most one exists per calendar date.
func (p *Planning) TodayChecklist(userID string) *model.DailyChecklist {
	now := p.checklists.Now()
	for _, c := range p.checklists.Items() {
		if sameDay(c.Date, now) {
			return c
		}
	}
	cl := &model.DailyChecklist{Date: now}
	cl.UserID = userID
	return p.checklists.Add(cl)
}

func (p *Planning) UpdateChecklist(id string, patch model.DailyChecklistPatch) bool {
	return p.checklists.Update(id, patch.Apply)
}

func (p *Planning) WeeklyGoals() []*model.WeeklyGoal { return p.goals.Items() }

// SetWeeklyGoal upserts the goal for (year, weekNumber): the pair is
// unique, so an existing goal is overwritten in place.
func (p *Planning) SetWeeklyGoal(g *model.WeeklyGoal) *model.WeeklyGoal {
	for _, ex := range p.goals.Items() {
		if ex.Year == g.Year && ex.WeekNumber == g.WeekNumber {
			p.goals.Update(ex.ID, func(cur *model.WeeklyGoal) {
				cur.GigsCreated = g.GigsCreated
				cur.SalesTarget = g.SalesTarget
				cur.SalesAchieved = g.SalesAchieved
				cur.ReviewsTarget = g.ReviewsTarget
				cur.ReviewsAchieved = g.ReviewsAchieved
				cur.RevenueTarget = g.RevenueTarget
				cur.RevenueAchieved = g.RevenueAchieved
			})
			return ex
		}
	}
	return p.goals.Add(g)
}

func (p *Planning) UpdateWeeklyGoal(id string, patch model.WeeklyGoalPatch) bool {
	return p.goals.Update(id, patch.Apply)
}

// CurrentWeekGoal finds the goal for the running week of the month, or
// nil when none was set.
func (p *Planning) CurrentWeekGoal() *model.WeeklyGoal {
	now := p.goals.Now()
	week := weekOfMonth(now)
	for _, g := range p.goals.Items() {
		if g.Year == now.Year() && g.WeekNumber == week {
			return g
		}
	}
	return nil
}

func (p *Planning) BuyerRequests() []*model.BuyerRequest { return p.requests.Items() }

func (p *Planning) AddBuyerRequest(r *model.BuyerRequest) *model.BuyerRequest {
	if r.Won {
		r.Responded = true
	}
	return p.requests.Add(r)
}

// UpdateBuyerRequest applies the patch and keeps the won-implies-
// responded invariant: a won request was necessarily responded to.
func (p *Planning) UpdateBuyerRequest(id string, patch model.BuyerRequestPatch) bool {
	return p.requests.Update(id, func(r *model.BuyerRequest) {
		patch.Apply(r)
		if r.Won {
			r.Responded = true
		}
	})
}

func (p *Planning) DeleteBuyerRequest(id string) bool { return p.requests.Delete(id) }

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// weekOfMonth maps a date to the 1-4 week slot of the freelancing plan.
// Days 29-31 count as week 4.
func weekOfMonth(t time.Time) int {
	w := (t.Day()-1)/7 + 1
	if w > 4 {
		w = 4
	}
	return w
}

func (p *Planning) Wait() {
	p.checklists.Wait()
	p.goals.Wait()
	p.requests.Wait()
}
