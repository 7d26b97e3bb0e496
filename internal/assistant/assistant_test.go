package assistant

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		UserName:          "Rafael",
		RoutineTotal:      4,
		RoutineCompleted:  2,
		Balance:           decimal.RequireFromString("750.00"),
		TotalIncome:       decimal.RequireFromString("1000.00"),
		TotalExpenses:     decimal.RequireFromString("250.00"),
		EnglishHours:      12.5,
		ConcursoHours:     8,
		WeekProgressHours: 3.5,
		WeeklyGoalHours:   20,
		PendingTasks:      3,
		HighPriorityTasks: 1,
		OverdueTasks:      1,
	}
}

func TestResponderRules(t *testing.T) {
	r := NewResponder()
	s := sampleSnapshot()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "routine",
			input: "Como está minha rotina hoje?",
			want:  "2 de 4 atividades",
		},
		{
			name:  "finance by balance keyword",
			input: "qual meu saldo?",
			want:  "R$ 750,00",
		},
		{
			name:  "finance by expense keyword",
			input: "qual foi meu gasto no mês?",
			want:  "despesas: R$ 250,00",
		},
		{
			name:  "study",
			input: "e os estudos?",
			want:  "12.5h de inglês",
		},
		{
			name:  "tasks",
			input: "minhas tarefas",
			want:  "3 tarefas pendentes no Fiverr",
		},
		{
			name:  "tasks flags overdue",
			input: "algum prazo apertado?",
			want:  "1 já passaram do prazo",
		},
		{
			name:  "overview",
			input: "me dá um resumo geral",
			want:  "Resumo do dia",
		},
		{
			name:  "greeting with name",
			input: "olá!",
			want:  "Olá, Rafael!",
		},
		{
			name:  "thanks",
			input: "obrigado!",
			want:  "De nada",
		},
		{
			name:  "unknown falls back to help",
			input: "xyzzy",
			want:  "Não entendi",
		},
		{
			name:  "matching is case-insensitive",
			input: "MEU SALDO",
			want:  "R$ 750,00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Respond(tt.input, s)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestResponderRuleOrder(t *testing.T) {
	r := NewResponder()
	s := sampleSnapshot()

	// earlier rules win: a message touching routine and fiverr answers
	// about the routine
	got := r.Respond("coloca o fiverr na minha rotina", s)
	assert.Contains(t, got, "rotina de hoje")
	assert.NotContains(t, got, "pendentes")
}

func TestResponderEmptySnapshots(t *testing.T) {
	r := NewResponder()

	t.Run("no routine yet", func(t *testing.T) {
		got := r.Respond("minha rotina", Snapshot{})
		assert.Contains(t, got, "ainda não montou")
	})

	t.Run("no pending tasks", func(t *testing.T) {
		got := r.Respond("minhas tarefas", Snapshot{})
		assert.Contains(t, got, "Nenhuma tarefa pendente")
	})

	t.Run("greeting without a name", func(t *testing.T) {
		got := r.Respond("bom dia", Snapshot{})
		assert.Contains(t, got, "Olá! Sou sua secretária")
	})
}

func TestResponderNegativeBalanceWarning(t *testing.T) {
	r := NewResponder()
	s := sampleSnapshot()
	s.Balance = decimal.RequireFromString("-10.00")

	got := r.Respond("como estão as finanças", s)
	assert.Contains(t, got, "no vermelho")
	assert.Contains(t, got, "-R$ 10,00")
}

func TestResponderMotivationDeterministic(t *testing.T) {
	r := NewResponder(WithIntN(func(int) int { return 2 }))

	got := r.Respond("preciso de motivação", Snapshot{})
	assert.Equal(t, motivations[2], got)
}

func TestResponderMotivationStaysInRange(t *testing.T) {
	for pick := range motivations {
		r := NewResponder(WithIntN(func(int) int { return pick }))
		got := r.Respond("estou cansado", Snapshot{})
		assert.Equal(t, motivations[pick], got)
	}
}
