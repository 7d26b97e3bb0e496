package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rbmartins/secretaria/internal/format"
	"github.com/rbmartins/secretaria/internal/model"
	"github.com/rbmartins/secretaria/internal/ui"
	"github.com/rbmartins/secretaria/internal/validate"
)

var (
	fiverrCliente    string
	fiverrPrazo      string
	fiverrPrioridade string
	fiverrDescricao  string
	fiverrTodas      bool

	clienteEmail string
	clientePhone string
)

var fiverrCmd = &cobra.Command{
	Use:   "fiverr",
	Short: "Tarefas e clientes do Fiverr",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFiverrLs(cmd, args)
	},
}

var fiverrAddCmd = &cobra.Command{
	Use:   "add <título...>",
	Short: "Adiciona uma tarefa",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		if errs := validate.FiverrTask(title, fiverrCliente, fiverrPrazo, fiverrPrioridade); !errs.Valid() {
			return errors.New(errs.String())
		}
		deadline, err := parseDeadline(fiverrPrazo)
		if err != nil {
			return err
		}
		t := app.Fiverr.AddTask(&model.FiverrTask{
			Meta:        model.Meta{UserID: app.userID()},
			Title:       title,
			Client:      fiverrCliente,
			Deadline:    deadline,
			Priority:    model.TaskPriority(fiverrPrioridade),
			Description: fiverrDescricao,
		})
		ui.OK(fmt.Sprintf("tarefa adicionada: %s (prazo %s)", t.Title, t.Deadline.Format("02/01 15:04")))
		return nil
	},
}

// parseDeadline accepts a date or a date with time; a bare date means
// end of that day.
func parseDeadline(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	return time.Time{}, fmt.Errorf("prazo inválido (use AAAA-MM-DD ou \"AAAA-MM-DD HH:MM\"): %s", s)
}

var fiverrLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lista tarefas pendentes (por prioridade e prazo)",
	RunE:  runFiverrLs,
}

func runFiverrLs(cmd *cobra.Command, args []string) error {
	tasks := app.Fiverr.PendingTasks()
	if fiverrTodas {
		tasks = app.Fiverr.Tasks()
	}
	if len(tasks) == 0 {
		fmt.Println(ui.MutedStyle.Render("nenhuma tarefa: caixa de entrada limpa"))
		return nil
	}
	now := time.Now()
	for i, t := range tasks {
		box := ui.MutedStyle.Render(ui.BoxUnchecked)
		title := t.Title
		if t.Completed {
			box = ui.SuccessStyle.Render(ui.BoxChecked)
			title = ui.DoneStyle.Render(title)
		}
		prio := priorityStyle(t.Priority).Render("[" + t.Priority.Label() + "]")
		deadline := t.Deadline.Format("02/01 15:04")
		if t.Overdue(now) {
			deadline = ui.ErrorStyle.Render(deadline + " ATRASADA")
		}
		line := fmt.Sprintf("%2d. %s %s %s  %s", i+1, box, prio, title, ui.MutedStyle.Render(deadline))
		if t.Client != "" {
			line += ui.MutedStyle.Render("  @" + t.Client)
		}
		fmt.Println(line)
	}
	return nil
}

func priorityStyle(p model.TaskPriority) lipgloss.Style {
	switch p {
	case model.PriorityHigh:
		return ui.DangerStyle
	case model.PriorityMedium:
		return ui.PendingStyle
	default:
		return ui.MutedStyle
	}
}

var fiverrDoneCmd = &cobra.Command{
	Use:   "done <índice>",
	Short: "Conclui uma tarefa pendente",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := app.Fiverr.PendingTasks()
		i, err := parseIndex(args[0], len(tasks), "fiverr ls")
		if err != nil {
			return err
		}
		app.Fiverr.CompleteTask(tasks[i].ID)
		ui.OK("entregue: " + tasks[i].Title)
		return nil
	},
}

var fiverrRmCmd = &cobra.Command{
	Use:   "rm <índice>",
	Short: "Remove uma tarefa pendente",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks := app.Fiverr.PendingTasks()
		i, err := parseIndex(args[0], len(tasks), "fiverr ls")
		if err != nil {
			return err
		}
		app.Fiverr.DeleteTask(tasks[i].ID)
		ui.OK("removida: " + tasks[i].Title)
		return nil
	},
}

var fiverrClienteCmd = &cobra.Command{
	Use:   "cliente",
	Short: "Clientes do Fiverr",
}

var fiverrClienteAddCmd = &cobra.Command{
	Use:   "add <nome...>",
	Short: "Cadastra um cliente",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		if !validate.Required(name) {
			return errors.New("nome é obrigatório")
		}
		if clienteEmail != "" && !validate.Email(clienteEmail) {
			return errors.New("email inválido")
		}
		c := app.Fiverr.AddClient(&model.FiverrClient{
			Meta:  model.Meta{UserID: app.userID()},
			Name:  name,
			Email: clienteEmail,
			Phone: clientePhone,
		})
		ui.OK("cliente cadastrado: " + c.Name)
		return nil
	},
}

var fiverrClienteLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lista os clientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cs := app.Fiverr.Clients()
		if len(cs) == 0 {
			fmt.Println(ui.MutedStyle.Render("nenhum cliente cadastrado"))
			return nil
		}
		for i, c := range cs {
			line := fmt.Sprintf("%2d. %-20s %d projetos  %s", i+1, c.Name, c.Projects, format.Currency(c.TotalRevenue))
			if c.Email != "" {
				line += ui.MutedStyle.Render("  " + c.Email)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	fiverrAddCmd.Flags().StringVar(&fiverrCliente, "cliente", "", "nome do cliente")
	fiverrAddCmd.Flags().StringVar(&fiverrPrazo, "prazo", "", "prazo (AAAA-MM-DD ou \"AAAA-MM-DD HH:MM\")")
	fiverrAddCmd.Flags().StringVar(&fiverrPrioridade, "prioridade", "medium", "prioridade: low, medium ou high")
	fiverrAddCmd.Flags().StringVar(&fiverrDescricao, "descricao", "", "descrição da entrega")
	_ = fiverrAddCmd.MarkFlagRequired("cliente")
	_ = fiverrAddCmd.MarkFlagRequired("prazo")

	fiverrLsCmd.Flags().BoolVar(&fiverrTodas, "todas", false, "inclui tarefas concluídas, em ordem de criação")

	fiverrClienteAddCmd.Flags().StringVar(&clienteEmail, "email", "", "email do cliente")
	fiverrClienteAddCmd.Flags().StringVar(&clientePhone, "telefone", "", "telefone do cliente")
	fiverrClienteCmd.AddCommand(fiverrClienteAddCmd)
	fiverrClienteCmd.AddCommand(fiverrClienteLsCmd)

	fiverrCmd.AddCommand(fiverrAddCmd)
	fiverrCmd.AddCommand(fiverrLsCmd)
	fiverrCmd.AddCommand(fiverrDoneCmd)
	fiverrCmd.AddCommand(fiverrRmCmd)
	fiverrCmd.AddCommand(fiverrClienteCmd)
}
