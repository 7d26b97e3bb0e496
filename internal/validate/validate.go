package validate

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Errors maps a field name to a user-facing message. Validation happens
// before any store mutation; stores trust their callers.
type Errors map[string]string

func (e Errors) Valid() bool { return len(e) == 0 }

// String joins the messages in field order, one per line.
func (e Errors) String() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(f + ": " + e[f])
	}
	return b.String()
}

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	timeRe  = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

func Required(v string) bool { return strings.TrimSpace(v) != "" }

func Email(v string) bool { return emailRe.MatchString(v) }

func Number(v string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil
}

func PositiveNumber(v string) bool {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return err == nil && f > 0
}

// TimeOfDay accepts 24h HH:MM strings.
func TimeOfDay(v string) bool { return timeRe.MatchString(v) }

// Login checks the profile fields.
func Login(name, email string) Errors {
	errs := Errors{}
	if !Required(name) {
		errs["nome"] = "nome é obrigatório"
	}
	if !Email(email) {
		errs["email"] = "email inválido"
	}
	return errs
}

// Transaction checks the raw CLI input of a financial movement.
func Transaction(typ, amount, category string) Errors {
	errs := Errors{}
	if typ != "income" && typ != "expense" {
		errs["tipo"] = "tipo deve ser income ou expense"
	}
	if !PositiveNumber(amount) {
		errs["valor"] = "valor deve ser um número positivo"
	}
	if !Required(category) {
		errs["categoria"] = "categoria é obrigatória"
	}
	return errs
}

// RoutineItem checks time and activity of a routine entry.
func RoutineItem(timeStr, activity string) Errors {
	errs := Errors{}
	if !TimeOfDay(timeStr) {
		errs["hora"] = "hora deve estar no formato HH:MM"
	}
	if !Required(activity) {
		errs["atividade"] = "atividade é obrigatória"
	}
	return errs
}

// StudySession checks type and duration of a study entry.
func StudySession(typ, minutes string) Errors {
	errs := Errors{}
	if typ != "ingles" && typ != "concurso" {
		errs["tipo"] = "tipo deve ser ingles ou concurso"
	}
	n, err := strconv.Atoi(strings.TrimSpace(minutes))
	if err != nil || n <= 0 {
		errs["duracao"] = "duração deve ser um número de minutos positivo"
	}
	return errs
}

// FiverrTask checks the fields of a new gig task.
func FiverrTask(title, client, deadline, priority string) Errors {
	errs := Errors{}
	if !Required(title) {
		errs["titulo"] = "título é obrigatório"
	}
	if !Required(client) {
		errs["cliente"] = "cliente é obrigatório"
	}
	if !Required(deadline) {
		errs["prazo"] = "prazo é obrigatório"
	}
	switch priority {
	case "low", "medium", "high":
	default:
		errs["prioridade"] = "prioridade deve ser low, medium ou high"
	}
	return errs
}
