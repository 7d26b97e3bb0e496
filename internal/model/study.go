package model

import "time"

// StudyType distinguishes the two tracked study tracks: English and the
// "concurso MP" exam preparation.
type StudyType string

const (
	StudyEnglish  StudyType = "ingles"
	StudyConcurso StudyType = "concurso"
)

func (t StudyType) Label() string {
	switch t {
	case StudyEnglish:
		return "Inglês"
	case StudyConcurso:
		return "Concurso MP"
	default:
		return string(t)
	}
}

// StudySession is one sitting; Duration is in minutes and always positive.
type StudySession struct {
	Meta
	Type     StudyType `json:"type"`
	Duration int       `json:"duration"`
	Date     time.Time `json:"date"`
	Topic    string    `json:"topic,omitempty"`
	Notes    string    `json:"notes,omitempty"`
}

// StudySessionPatch is a partial update; nil fields are left untouched.
type StudySessionPatch struct {
	Type     *StudyType
	Duration *int
	Date     *time.Time
	Topic    *string
	Notes    *string
}

func (p StudySessionPatch) Apply(s *StudySession) {
	if p.Type != nil {
		s.Type = *p.Type
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.Date != nil {
		s.Date = *p.Date
	}
	if p.Topic != nil {
		s.Topic = *p.Topic
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
}

type StudyProgress struct {
	TotalEnglishHours   float64
	TotalConcursoHours  float64
	WeeklyGoal          float64 // hours
	CurrentWeekProgress float64 // hours inside the current week
}
