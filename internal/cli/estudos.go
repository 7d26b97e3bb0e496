package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbmartins/secretaria/internal/format"
	"github.com/rbmartins/secretaria/internal/model"
	"github.com/rbmartins/secretaria/internal/ui"
	"github.com/rbmartins/secretaria/internal/validate"
)

var (
	estudosData  string
	estudosNotas string
)

var estudosCmd = &cobra.Command{
	Use:   "estudos",
	Short: "Sessões de estudo (inglês e concurso MP)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgresso(cmd, args)
	},
}

var estudosAddCmd = &cobra.Command{
	Use:   "add <ingles|concurso> <minutos> [tópico...]",
	Short: "Registra uma sessão de estudo",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, minutes := args[0], args[1]
		if errs := validate.StudySession(typ, minutes); !errs.Valid() {
			return errors.New(errs.String())
		}
		duration, _ := strconv.Atoi(strings.TrimSpace(minutes))
		date := time.Now()
		if estudosData != "" {
			var err error
			date, err = time.ParseInLocation("2006-01-02", estudosData, time.Local)
			if err != nil {
				return fmt.Errorf("data inválida (use AAAA-MM-DD): %s", estudosData)
			}
		}
		sess := app.Study.Add(&model.StudySession{
			Meta:     model.Meta{UserID: app.userID()},
			Type:     model.StudyType(typ),
			Duration: duration,
			Date:     date,
			Topic:    strings.Join(args[2:], " "),
			Notes:    estudosNotas,
		})
		ui.OK(fmt.Sprintf("sessão registrada: %s de %s", format.Duration(sess.Duration), sess.Type.Label()))
		return nil
	},
}

var estudosLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lista as sessões de estudo",
	RunE: func(cmd *cobra.Command, args []string) error {
		ss := app.Study.Sessions()
		if len(ss) == 0 {
			fmt.Println(ui.MutedStyle.Render("nenhuma sessão registrada"))
			return nil
		}
		for i, s := range ss {
			line := fmt.Sprintf("%2d. %s  %-12s %s", i+1, s.Date.Format("02/01"), s.Type.Label(), format.Duration(s.Duration))
			if s.Topic != "" {
				line += ui.MutedStyle.Render("  " + s.Topic)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var estudosRmCmd = &cobra.Command{
	Use:   "rm <índice>",
	Short: "Remove uma sessão",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ss := app.Study.Sessions()
		i, err := parseIndex(args[0], len(ss), "estudos ls")
		if err != nil {
			return err
		}
		app.Study.Delete(ss[i].ID)
		ui.OK("sessão removida")
		return nil
	},
}

var estudosProgressoCmd = &cobra.Command{
	Use:   "progresso",
	Short: "Progresso acumulado e meta semanal",
	RunE:  runProgresso,
}

func runProgresso(cmd *cobra.Command, args []string) error {
	prog := app.Study.Progress()
	fmt.Println(ui.Panel([]string{
		ui.TitleStyle.Render("Progresso de Estudos"),
		fmt.Sprintf("Inglês:      %s", format.Hours(prog.TotalEnglishHours)),
		fmt.Sprintf("Concurso MP: %s", format.Hours(prog.TotalConcursoHours)),
		"",
		ui.ProgressBar(int(prog.CurrentWeekProgress*60), int(prog.WeeklyGoal*60), 28),
		ui.MutedStyle.Render(fmt.Sprintf("Meta semanal: %s / %s (%s)",
			format.Hours(prog.CurrentWeekProgress), format.Hours(prog.WeeklyGoal),
			format.Percentage(prog.CurrentWeekProgress, prog.WeeklyGoal))),
	}))
	return nil
}

func init() {
	estudosAddCmd.Flags().StringVar(&estudosData, "data", "", "data da sessão (AAAA-MM-DD, padrão hoje)")
	estudosAddCmd.Flags().StringVar(&estudosNotas, "notas", "", "anotações da sessão")
	estudosCmd.AddCommand(estudosAddCmd)
	estudosCmd.AddCommand(estudosLsCmd)
	estudosCmd.AddCommand(estudosRmCmd)
	estudosCmd.AddCommand(estudosProgressoCmd)
}
