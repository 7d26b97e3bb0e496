package assistant

import (
	"github.com/shopspring/decimal"

	"github.com/rbmartins/secretaria/internal/model"
	"github.com/rbmartins/secretaria/internal/store"
)

// Snapshot is the read-only bundle of aggregates across all stores that
// the assistant answers from. Taking one never mutates anything.
type Snapshot struct {
	UserName string

	RoutineTotal     int
	RoutineCompleted int

	Balance       decimal.Decimal
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal

	EnglishHours      float64
	ConcursoHours     float64
	WeekProgressHours float64
	WeeklyGoalHours   float64

	PendingTasks      int
	HighPriorityTasks int
	OverdueTasks      int
}

// TakeSnapshot reads the current aggregates from every store.
func TakeSnapshot(users *store.Users, routine *store.Routine, finance *store.Finance, study *store.Study, fiverr *store.Fiverr) Snapshot {
	s := Snapshot{
		WeeklyGoalHours: store.WeeklyGoalHours,
	}
	if u := users.Current(); u != nil {
		s.UserName = u.Name
	}
	s.RoutineCompleted, s.RoutineTotal = routine.CompletionStats()

	sum := finance.Summary()
	s.Balance = sum.Balance
	s.TotalIncome = sum.TotalIncome
	s.TotalExpenses = sum.TotalExpenses

	prog := study.Progress()
	s.EnglishHours = prog.TotalEnglishHours
	s.ConcursoHours = prog.TotalConcursoHours
	s.WeekProgressHours = prog.CurrentWeekProgress
	s.WeeklyGoalHours = prog.WeeklyGoal

	pending := fiverr.PendingTasks()
	s.PendingTasks = len(pending)
	for _, t := range pending {
		if t.Priority == model.PriorityHigh {
			s.HighPriorityTasks++
		}
	}
	s.OverdueTasks = len(fiverr.OverdueTasks())
	return s
}
