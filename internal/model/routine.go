package model

// RoutineItem is one recurring activity of the daily routine.
// Time is an HH:MM string so lexical order equals chronological order.
type RoutineItem struct {
	Meta
	Time      string `json:"time"`
	Activity  string `json:"activity"`
	Duration  string `json:"duration"` // free text: "30 min", "1h"
	Completed bool   `json:"completed"`
}

// RoutineItemPatch is a partial update; nil fields are left untouched.
type RoutineItemPatch struct {
	Time      *string
	Activity  *string
	Duration  *string
	Completed *bool
}

func (p RoutineItemPatch) Apply(it *RoutineItem) {
	if p.Time != nil {
		it.Time = *p.Time
	}
	if p.Activity != nil {
		it.Activity = *p.Activity
	}
	if p.Duration != nil {
		it.Duration = *p.Duration
	}
	if p.Completed != nil {
		it.Completed = *p.Completed
	}
}
