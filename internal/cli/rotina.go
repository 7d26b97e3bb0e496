package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rbmartins/secretaria/internal/model"
	"github.com/rbmartins/secretaria/internal/notify"
	"github.com/rbmartins/secretaria/internal/tui"
	"github.com/rbmartins/secretaria/internal/ui"
	"github.com/rbmartins/secretaria/internal/validate"
)

var (
	rotinaDuracao  string
	rotinaLembrete bool
)

var rotinaCmd = &cobra.Command{
	Use:   "rotina",
	Short: "Rotina diária (lista interativa)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := tui.RunRoutine(app.Routine); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}

var rotinaAddCmd = &cobra.Command{
	Use:   "add <HH:MM> <atividade...>",
	Short: "Adiciona uma atividade à rotina",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hhmm := args[0]
		activity := strings.Join(args[1:], " ")
		if errs := validate.RoutineItem(hhmm, activity); !errs.Valid() {
			return errors.New(errs.String())
		}
		it := app.Routine.Add(&model.RoutineItem{
			Meta:     model.Meta{UserID: app.userID()},
			Time:     hhmm,
			Activity: activity,
			Duration: rotinaDuracao,
		})
		ui.OK("atividade adicionada")

		if rotinaLembrete {
			trigger, err := notify.NextTrigger(hhmm, time.Now())
			if err != nil {
				return err
			}
			if err := app.Notify.Schedule(it.ID, it.Activity, trigger); err != nil {
				return fmt.Errorf("lembrete: %w", err)
			}
			ui.OK("lembrete agendado para " + trigger.Format("02/01 15:04"))
		}
		return nil
	},
}

var rotinaLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lista a rotina em ordem de horário",
	RunE: func(cmd *cobra.Command, args []string) error {
		items := app.Routine.TodayRoutine()
		if len(items) == 0 {
			fmt.Println(ui.MutedStyle.Render("rotina vazia: adicione com `secretaria rotina add`"))
			return nil
		}
		for i, it := range items {
			box := ui.MutedStyle.Render(ui.BoxUnchecked)
			label := fmt.Sprintf("%s %s", it.Time, it.Activity)
			if it.Duration != "" {
				label += ui.MutedStyle.Render(" (" + it.Duration + ")")
			}
			if it.Completed {
				box = ui.SuccessStyle.Render(ui.BoxChecked)
				label = ui.DoneStyle.Render(label)
			}
			fmt.Printf("%2d. %s %s\n", i+1, box, label)
		}
		done, total := app.Routine.CompletionStats()
		fmt.Println(ui.MutedStyle.Render(ui.ProgressBar(done, total, 28)))
		return nil
	},
}

var rotinaDoneCmd = &cobra.Command{
	Use:   "done <índice>",
	Short: "Marca uma atividade como concluída",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := app.Routine.TodayRoutine()
		i, err := parseIndex(args[0], len(items), "rotina ls")
		if err != nil {
			return err
		}
		app.Routine.MarkCompleted(items[i].ID)
		ui.OK("concluída: " + items[i].Activity)
		return nil
	},
}

var rotinaRmCmd = &cobra.Command{
	Use:   "rm <índice>",
	Short: "Remove uma atividade",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		items := app.Routine.TodayRoutine()
		i, err := parseIndex(args[0], len(items), "rotina ls")
		if err != nil {
			return err
		}
		app.Routine.Delete(items[i].ID)
		_ = app.Notify.Cancel(items[i].ID)
		ui.OK("removida: " + items[i].Activity)
		return nil
	},
}

func init() {
	rotinaAddCmd.Flags().StringVar(&rotinaDuracao, "duracao", "", "duração em texto livre (ex: \"30 min\")")
	rotinaAddCmd.Flags().BoolVar(&rotinaLembrete, "lembrete", false, "agenda um lembrete 15 min antes")
	rotinaCmd.AddCommand(rotinaAddCmd)
	rotinaCmd.AddCommand(rotinaLsCmd)
	rotinaCmd.AddCommand(rotinaDoneCmd)
	rotinaCmd.AddCommand(rotinaRmCmd)
}
