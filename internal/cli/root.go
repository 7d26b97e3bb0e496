package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rbmartins/secretaria/internal/assistant"
	"github.com/rbmartins/secretaria/internal/config"
	"github.com/rbmartins/secretaria/internal/format"
	"github.com/rbmartins/secretaria/internal/notify"
	"github.com/rbmartins/secretaria/internal/store"
	"github.com/rbmartins/secretaria/internal/store/jsonstore"
	"github.com/rbmartins/secretaria/internal/ui"
)

// application bundles the explicitly constructed stores. They are built
// once per invocation and passed around instead of living as globals in
// their own packages, so tests can build isolated instances.
type application struct {
	cfg      config.Config
	Users    *store.Users
	Routine  *store.Routine
	Finance  *store.Finance
	Study    *store.Study
	Fiverr   *store.Fiverr
	Planning *store.Planning
	Notify   notify.Scheduler
}

var app *application

func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	backend, err := jsonstore.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("open data dir: %w", err)
	}
	app = &application{
		cfg:      cfg,
		Users:    store.NewUsers(backend),
		Routine:  store.NewRoutine(backend),
		Finance:  store.NewFinance(backend),
		Study:    store.NewStudy(backend),
		Fiverr:   store.NewFiverr(backend),
		Planning: store.NewPlanning(backend),
		Notify:   notify.NewMemory(),
	}
	return nil
}

// wait drains the fire-and-forget flushes before the process exits.
func (a *application) wait() {
	a.Users.Wait()
	a.Routine.Wait()
	a.Finance.Wait()
	a.Study.Wait()
	a.Fiverr.Wait()
	a.Planning.Wait()
}

func (a *application) snapshot() assistant.Snapshot {
	return assistant.TakeSnapshot(a.Users, a.Routine, a.Finance, a.Study, a.Fiverr)
}

func (a *application) userID() string {
	if u := a.Users.Current(); u != nil {
		return u.ID
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "secretaria",
	Short: "Secretária virtual de produtividade pessoal",
	Long: `Acompanhe sua rotina diária, estudos, finanças e tarefas do Fiverr,
tudo guardado localmente, e converse com a secretária virtual sobre
o seu dia.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app != nil {
			app.wait()
		}
	},
	RunE: runDashboard,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(rotinaCmd)
	rootCmd.AddCommand(financasCmd)
	rootCmd.AddCommand(estudosCmd)
	rootCmd.AddCommand(fiverrCmd)
	rootCmd.AddCommand(planejamentoCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(relatorioCmd)
	rootCmd.AddCommand(versionCmd)
}

// runDashboard mirrors the app's home screen: one card per domain.
func runDashboard(cmd *cobra.Command, args []string) error {
	name := "visitante"
	if u := app.Users.Current(); u != nil {
		name = u.Name
	}
	fmt.Println(ui.TitleStyle.Render("Olá, " + name + "!"))
	fmt.Println(ui.MutedStyle.Render("Veja como está seu dia"))
	fmt.Println()

	done, total := app.Routine.CompletionStats()
	fmt.Println(ui.Panel([]string{
		ui.TitleStyle.Render("Rotina do Dia"),
		ui.ProgressBar(done, total, 28),
		ui.MutedStyle.Render(format.Percentage(float64(done), float64(total)) + " concluído"),
	}))

	sum := app.Finance.Summary()
	balanceStyle := ui.SuccessStyle
	if sum.Balance.IsNegative() {
		balanceStyle = ui.DangerStyle
	}
	fmt.Println(ui.Panel([]string{
		ui.TitleStyle.Render("Saldo Financeiro"),
		balanceStyle.Render(format.Currency(sum.Balance)),
		"Receitas: " + ui.SuccessStyle.Render(format.Currency(sum.TotalIncome)) +
			"   Despesas: " + ui.DangerStyle.Render(format.Currency(sum.TotalExpenses)),
	}))

	prog := app.Study.Progress()
	fmt.Println(ui.Panel([]string{
		ui.TitleStyle.Render("Progresso de Estudos"),
		fmt.Sprintf("Inglês: %s   Concurso MP: %s",
			format.Hours(prog.TotalEnglishHours), format.Hours(prog.TotalConcursoHours)),
		ui.ProgressBar(int(prog.CurrentWeekProgress*60), int(prog.WeeklyGoal*60), 28),
		ui.MutedStyle.Render(fmt.Sprintf("Meta semanal: %s / %s",
			format.Hours(prog.CurrentWeekProgress), format.Hours(prog.WeeklyGoal))),
	}))

	pending := app.Fiverr.PendingTasks()
	lines := []string{
		ui.TitleStyle.Render("Tarefas Fiverr"),
		fmt.Sprintf("%d tarefas pendentes", len(pending)),
	}
	if n := len(app.Fiverr.OverdueTasks()); n > 0 {
		lines = append(lines, ui.ErrorStyle.Render(fmt.Sprintf("%d atrasadas", n)))
	}
	fmt.Println(ui.Panel(lines))
	return nil
}

// parseIndex resolves a 1-based user index against a list length.
// Strict parsing: a typo like "3x" is rejected, not read as 3.
func parseIndex(arg string, length int, hint string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("não é um número: %s", arg)
	}
	if n < 1 || n > length {
		return 0, fmt.Errorf("índice fora do intervalo: tenho %d, recebi %d (dica: rode `secretaria %s`)", length, n, hint)
	}
	return n - 1, nil
}
