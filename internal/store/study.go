package store

import (
	"time"

	"github.com/rbmartins/secretaria/internal/model"
)

// WeeklyGoalHours is the fixed weekly study target. Not configurable.
const WeeklyGoalHours = 20.0

// Study owns the study sessions and the progress aggregate.
type Study struct {
	col *Collection[*model.StudySession]
}

func NewStudy(b Backend, opts ...Option) *Study {
	return &Study{col: NewCollection[*model.StudySession]("study", b, opts...)}
}

func (s *Study) Add(sess *model.StudySession) *model.StudySession { return s.col.Add(sess) }

func (s *Study) Update(id string, p model.StudySessionPatch) bool {
	return s.col.Update(id, p.Apply)
}

func (s *Study) Delete(id string) bool { return s.col.Delete(id) }

func (s *Study) ReplaceAll(ss []*model.StudySession) { s.col.ReplaceAll(ss) }

func (s *Study) Sessions() []*model.StudySession { return s.col.Items() }

func (s *Study) Get(id string) (*model.StudySession, bool) { return s.col.Get(id) }

func (s *Study) SessionsByType(t model.StudyType) []*model.StudySession {
	var out []*model.StudySession
	for _, sess := range s.col.Items() {
		if sess.Type == t {
			out = append(out, sess)
		}
	}
	return out
}

// TotalHours sums minutes of one study type, converted to hours.
func (s *Study) TotalHours(t model.StudyType) float64 {
	minutes := 0
	for _, sess := range s.SessionsByType(t) {
		minutes += sess.Duration
	}
	return float64(minutes) / 60
}

// Progress summarizes per-type totals plus the current week. The week
// starts at local midnight of Sunday.
func (s *Study) Progress() model.StudyProgress {
	now := s.col.Now()
	weekStart := startOfWeek(now)
	weekMinutes := 0
	for _, sess := range s.col.Items() {
		if !sess.Date.Before(weekStart) {
			weekMinutes += sess.Duration
		}
	}
	return model.StudyProgress{
		TotalEnglishHours:   s.TotalHours(model.StudyEnglish),
		TotalConcursoHours:  s.TotalHours(model.StudyConcurso),
		WeeklyGoal:          WeeklyGoalHours,
		CurrentWeekProgress: float64(weekMinutes) / 60,
	}
}

func startOfWeek(now time.Time) time.Time {
	y, m, d := now.AddDate(0, 0, -int(now.Weekday())).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

func (s *Study) Wait() { s.col.Wait() }
