package assistant

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/rbmartins/secretaria/internal/format"
)

// Responder turns free text plus a snapshot into a canned pt-BR reply.
// It is stateless and performs no I/O; the caller owns the transcript.
// Rules are evaluated in order and the first match wins, so a message
// mentioning both "rotina" and "fiverr" answers about the routine.
type Responder struct {
	rules []rule
	intn  func(n int) int
}

type rule struct {
	keywords []string
	respond  func(s Snapshot) string
}

type ResponderOption func(*Responder)

// WithIntN replaces the random source of the motivational picks, the
// only non-deterministic rule.
func WithIntN(intn func(n int) int) ResponderOption {
	return func(r *Responder) { r.intn = intn }
}

func NewResponder(opts ...ResponderOption) *Responder {
	r := &Responder{intn: rand.Intn}
	for _, o := range opts {
		o(r)
	}
	r.rules = []rule{
		{keywords: []string{"rotina", "atividade", "agenda"}, respond: respondRoutine},
		{keywords: []string{"saldo", "financ", "dinheiro", "gasto", "despesa", "receita"}, respond: respondFinance},
		{keywords: []string{"estud", "ingl", "concurso", "aula"}, respond: respondStudy},
		{keywords: []string{"fiverr", "tarefa", "cliente", "prazo", "entrega"}, respond: respondTasks},
		{keywords: []string{"resumo", "geral", "status", "como estou"}, respond: respondOverview},
		{keywords: []string{"motiva", "desanima", "cansad", "desist", "difícil", "dificil"}, respond: r.respondMotivation},
		{keywords: []string{"oi", "olá", "ola", "bom dia", "boa tarde", "boa noite"}, respond: respondGreeting},
		{keywords: []string{"obrigad", "valeu", "agradec"}, respond: respondThanks},
	}
	return r
}

// Respond matches the lowered input against the rule list in order.
func (r *Responder) Respond(input string, s Snapshot) string {
	in := strings.ToLower(input)
	for _, rl := range r.rules {
		for _, kw := range rl.keywords {
			if strings.Contains(in, kw) {
				return rl.respond(s)
			}
		}
	}
	return respondHelp(s)
}

func respondRoutine(s Snapshot) string {
	if s.RoutineTotal == 0 {
		return "Você ainda não montou sua rotina de hoje. Que tal adicionar a primeira atividade com `secretaria rotina add`?"
	}
	return fmt.Sprintf("Sua rotina de hoje: %d de %d atividades concluídas (%s). Continue assim!",
		s.RoutineCompleted, s.RoutineTotal,
		format.Percentage(float64(s.RoutineCompleted), float64(s.RoutineTotal)))
}

func respondFinance(s Snapshot) string {
	msg := fmt.Sprintf("Seu saldo atual é %s. Receitas: %s, despesas: %s.",
		format.Currency(s.Balance), format.Currency(s.TotalIncome), format.Currency(s.TotalExpenses))
	if s.Balance.IsNegative() {
		msg += " Atenção: você está no vermelho este período."
	}
	return msg
}

func respondStudy(s Snapshot) string {
	return fmt.Sprintf("Você acumulou %s de inglês e %s de concurso MP. Nesta semana: %s de %s da meta.",
		format.Hours(s.EnglishHours), format.Hours(s.ConcursoHours),
		format.Hours(s.WeekProgressHours), format.Hours(s.WeeklyGoalHours))
}

func respondTasks(s Snapshot) string {
	if s.PendingTasks == 0 {
		return "Nenhuma tarefa pendente no Fiverr. Caixa de entrada limpa!"
	}
	msg := fmt.Sprintf("Você tem %d tarefas pendentes no Fiverr, sendo %d de prioridade alta.",
		s.PendingTasks, s.HighPriorityTasks)
	if s.OverdueTasks > 0 {
		msg += fmt.Sprintf(" %d já passaram do prazo!", s.OverdueTasks)
	}
	return msg
}

func respondOverview(s Snapshot) string {
	return fmt.Sprintf(
		"Resumo do dia: rotina %d/%d, saldo %s, estudos na semana %s/%s, %d tarefas pendentes no Fiverr.",
		s.RoutineCompleted, s.RoutineTotal,
		format.Currency(s.Balance),
		format.Hours(s.WeekProgressHours), format.Hours(s.WeeklyGoalHours),
		s.PendingTasks)
}

var motivations = [5]string{
	"Você está indo muito bem! Cada pequeno passo conta.",
	"Lembre-se do seu objetivo: liberdade financeira e aprovação no concurso. Foco!",
	"O sucesso é a soma de pequenos esforços repetidos dia após dia.",
	"Respira fundo e continua. Você já chegou mais longe do que imagina.",
	"Disciplina é escolher entre o que você quer agora e o que você quer mais.",
}

func (r *Responder) respondMotivation(Snapshot) string {
	return motivations[r.intn(len(motivations))]
}

func respondGreeting(s Snapshot) string {
	if s.UserName != "" {
		return fmt.Sprintf("Olá, %s! Sou sua secretária virtual. Pergunte sobre rotina, finanças, estudos ou tarefas.", s.UserName)
	}
	return "Olá! Sou sua secretária virtual. Pergunte sobre rotina, finanças, estudos ou tarefas."
}

func respondThanks(Snapshot) string {
	return "De nada! Estou aqui para ajudar na sua organização."
}

func respondHelp(Snapshot) string {
	return "Não entendi. Posso falar sobre: rotina, finanças (saldo, gastos), estudos, tarefas do Fiverr ou um resumo geral do seu dia."
}
