package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rbmartins/secretaria/internal/format"
	"github.com/rbmartins/secretaria/internal/model"
	"github.com/rbmartins/secretaria/internal/ui"
	"github.com/rbmartins/secretaria/internal/validate"
)

var (
	metaSemana   int
	metaAno      int
	metaGigs     int
	metaVendas   int
	metaReviews  int
	metaReceita  string
	pedidoBudget string
	pedidoPrazo  string
	pedidoNotas  string
)

var planejamentoCmd = &cobra.Command{
	Use:   "planejamento",
	Short: "Checklist diário, metas semanais e buyer requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHoje(cmd, args)
	},
}

var planHojeCmd = &cobra.Command{
	Use:   "hoje",
	Short: "Checklist de hoje",
	RunE:  runHoje,
}

func runHoje(cmd *cobra.Command, args []string) error {
	cl := app.Planning.TodayChecklist(app.userID())
	check := func(done bool, label string) string {
		box := ui.MutedStyle.Render(ui.BoxUnchecked)
		if done {
			box = ui.SuccessStyle.Render(ui.BoxChecked)
		}
		return box + " " + label
	}
	fmt.Println(ui.Panel([]string{
		ui.TitleStyle.Render("Checklist de " + cl.Date.Format("02/01/2006")),
		check(cl.ClientMessagesAnswered, "responder mensagens de clientes"),
		check(cl.ProjectsTested, "testar projetos entregues"),
		check(cl.ReadmeUpdated, "atualizar README dos gigs"),
		check(cl.ReviewRequested, "pedir avaliação aos clientes"),
		"",
		fmt.Sprintf("Vendas do dia: %d    Buyer requests respondidos: %d",
			cl.SalesCount, cl.BuyerRequestsResponded),
	}))
	return nil
}

var planMarcarCmd = &cobra.Command{
	Use:       "marcar <mensagens|testes|readme|avaliacao>",
	Aliases:   []string{"check"},
	Short:     "Alterna um item do checklist de hoje",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"mensagens", "testes", "readme", "avaliacao"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cl := app.Planning.TodayChecklist(app.userID())
		var patch model.DailyChecklistPatch
		var flipped bool
		switch args[0] {
		case "mensagens":
			flipped = !cl.ClientMessagesAnswered
			patch.ClientMessagesAnswered = &flipped
		case "testes":
			flipped = !cl.ProjectsTested
			patch.ProjectsTested = &flipped
		case "readme":
			flipped = !cl.ReadmeUpdated
			patch.ReadmeUpdated = &flipped
		case "avaliacao":
			flipped = !cl.ReviewRequested
			patch.ReviewRequested = &flipped
		default:
			return fmt.Errorf("item desconhecido: %s (use mensagens, testes, readme ou avaliacao)", args[0])
		}
		app.Planning.UpdateChecklist(cl.ID, patch)
		if flipped {
			ui.OK("item marcado")
		} else {
			ui.OK("item desmarcado")
		}
		return nil
	},
}

var planVendaCmd = &cobra.Command{
	Use:   "venda",
	Short: "Registra uma venda no dia",
	RunE: func(cmd *cobra.Command, args []string) error {
		cl := app.Planning.TodayChecklist(app.userID())
		n := cl.SalesCount + 1
		app.Planning.UpdateChecklist(cl.ID, model.DailyChecklistPatch{SalesCount: &n})
		ui.OK(fmt.Sprintf("venda registrada (%d hoje)", n))
		return nil
	},
}

var planRespostaCmd = &cobra.Command{
	Use:   "resposta",
	Short: "Registra um buyer request respondido no dia",
	RunE: func(cmd *cobra.Command, args []string) error {
		cl := app.Planning.TodayChecklist(app.userID())
		n := cl.BuyerRequestsResponded + 1
		app.Planning.UpdateChecklist(cl.ID, model.DailyChecklistPatch{BuyerRequestsResponded: &n})
		ui.OK(fmt.Sprintf("resposta registrada (%d hoje)", n))
		return nil
	},
}

var planMetaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Meta da semana corrente",
	RunE: func(cmd *cobra.Command, args []string) error {
		g := app.Planning.CurrentWeekGoal()
		if g == nil {
			fmt.Println(ui.MutedStyle.Render("nenhuma meta definida para esta semana"))
			fmt.Println("Defina com: secretaria planejamento meta definir --vendas N --receita R")
			return nil
		}
		fmt.Println(ui.Panel([]string{
			ui.TitleStyle.Render(fmt.Sprintf("Meta: semana %d de %d", g.WeekNumber, g.Year)),
			fmt.Sprintf("Gigs criados:  %d", g.GigsCreated),
			fmt.Sprintf("Vendas:        %d / %d", g.SalesAchieved, g.SalesTarget),
			fmt.Sprintf("Avaliações:    %d / %d", g.ReviewsAchieved, g.ReviewsTarget),
			fmt.Sprintf("Receita:       %s / %s", format.Currency(g.RevenueAchieved), format.Currency(g.RevenueTarget)),
		}))
		return nil
	},
}

var planMetaDefinirCmd = &cobra.Command{
	Use:   "definir",
	Short: "Define (ou sobrescreve) a meta de uma semana",
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		week, year := metaSemana, metaAno
		if week == 0 {
			week = (now.Day()-1)/7 + 1
			if week > 4 {
				week = 4
			}
		}
		if week < 1 || week > 4 {
			return fmt.Errorf("semana deve estar entre 1 e 4, recebi %d", week)
		}
		if year == 0 {
			year = now.Year()
		}
		revenue := decimal.Zero
		if metaReceita != "" {
			var err error
			revenue, err = decimal.NewFromString(strings.TrimSpace(metaReceita))
			if err != nil {
				return fmt.Errorf("receita inválida: %s", metaReceita)
			}
		}
		g := app.Planning.SetWeeklyGoal(&model.WeeklyGoal{
			Meta:          model.Meta{UserID: app.userID()},
			WeekNumber:    week,
			Year:          year,
			GigsCreated:   metaGigs,
			SalesTarget:   metaVendas,
			ReviewsTarget: metaReviews,
			RevenueTarget: revenue,
		})
		ui.OK(fmt.Sprintf("meta da semana %d de %d definida", g.WeekNumber, g.Year))
		return nil
	},
}

var planPedidosCmd = &cobra.Command{
	Use:   "pedidos",
	Short: "Buyer requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPedidosLs(cmd, args)
	},
}

var planPedidosAddCmd = &cobra.Command{
	Use:   "add <título...>",
	Short: "Registra um buyer request",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		if !validate.Required(title) {
			return errors.New("título é obrigatório")
		}
		budget := decimal.Zero
		if pedidoBudget != "" {
			var err error
			budget, err = decimal.NewFromString(strings.TrimSpace(pedidoBudget))
			if err != nil {
				return fmt.Errorf("orçamento inválido: %s", pedidoBudget)
			}
		}
		deadline := time.Now().AddDate(0, 0, 7)
		if pedidoPrazo != "" {
			var err error
			deadline, err = parseDeadline(pedidoPrazo)
			if err != nil {
				return err
			}
		}
		r := app.Planning.AddBuyerRequest(&model.BuyerRequest{
			Meta:     model.Meta{UserID: app.userID()},
			Title:    title,
			Budget:   budget,
			Deadline: deadline,
			Notes:    pedidoNotas,
		})
		ui.OK("buyer request registrado: " + r.Title)
		return nil
	},
}

var planPedidosLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lista os buyer requests",
	RunE:  runPedidosLs,
}

func runPedidosLs(cmd *cobra.Command, args []string) error {
	rs := app.Planning.BuyerRequests()
	if len(rs) == 0 {
		fmt.Println(ui.MutedStyle.Render("nenhum buyer request registrado"))
		return nil
	}
	for i, r := range rs {
		status := ui.MutedStyle.Render("novo")
		switch {
		case r.Won:
			status = ui.SuccessStyle.Render("ganho")
		case r.Responded:
			status = ui.PendingStyle.Render("respondido")
		}
		fmt.Printf("%2d. %-30s %10s  %s  %s\n", i+1, r.Title,
			format.Currency(r.Budget), r.Deadline.Format("02/01"), status)
	}
	return nil
}

var planPedidosResponderCmd = &cobra.Command{
	Use:   "responder <índice>",
	Short: "Marca um request como respondido",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs := app.Planning.BuyerRequests()
		i, err := parseIndex(args[0], len(rs), "planejamento pedidos ls")
		if err != nil {
			return err
		}
		responded := true
		app.Planning.UpdateBuyerRequest(rs[i].ID, model.BuyerRequestPatch{Responded: &responded})
		ui.OK("respondido: " + rs[i].Title)
		return nil
	},
}

var planPedidosGanheiCmd = &cobra.Command{
	Use:   "ganhei <índice>",
	Short: "Marca um request como ganho",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs := app.Planning.BuyerRequests()
		i, err := parseIndex(args[0], len(rs), "planejamento pedidos ls")
		if err != nil {
			return err
		}
		won := true
		app.Planning.UpdateBuyerRequest(rs[i].ID, model.BuyerRequestPatch{Won: &won})
		ui.OK("parabéns pelo projeto: " + rs[i].Title)
		return nil
	},
}

var planPedidosRmCmd = &cobra.Command{
	Use:   "rm <índice>",
	Short: "Remove um buyer request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs := app.Planning.BuyerRequests()
		i, err := parseIndex(args[0], len(rs), "planejamento pedidos ls")
		if err != nil {
			return err
		}
		app.Planning.DeleteBuyerRequest(rs[i].ID)
		ui.OK("removido: " + rs[i].Title)
		return nil
	},
}

func init() {
	planMetaDefinirCmd.Flags().IntVar(&metaSemana, "semana", 0, "semana do mês (1-4, padrão a corrente)")
	planMetaDefinirCmd.Flags().IntVar(&metaAno, "ano", 0, "ano (padrão o corrente)")
	planMetaDefinirCmd.Flags().IntVar(&metaGigs, "gigs", 0, "gigs a criar")
	planMetaDefinirCmd.Flags().IntVar(&metaVendas, "vendas", 0, "meta de vendas")
	planMetaDefinirCmd.Flags().IntVar(&metaReviews, "avaliacoes", 0, "meta de avaliações")
	planMetaDefinirCmd.Flags().StringVar(&metaReceita, "receita", "", "meta de receita (ex: 1500.00)")
	planMetaCmd.AddCommand(planMetaDefinirCmd)

	planPedidosAddCmd.Flags().StringVar(&pedidoBudget, "orcamento", "", "orçamento do comprador")
	planPedidosAddCmd.Flags().StringVar(&pedidoPrazo, "prazo", "", "prazo (AAAA-MM-DD, padrão daqui a 7 dias)")
	planPedidosAddCmd.Flags().StringVar(&pedidoNotas, "notas", "", "anotações")
	planPedidosCmd.AddCommand(planPedidosAddCmd)
	planPedidosCmd.AddCommand(planPedidosLsCmd)
	planPedidosCmd.AddCommand(planPedidosResponderCmd)
	planPedidosCmd.AddCommand(planPedidosGanheiCmd)
	planPedidosCmd.AddCommand(planPedidosRmCmd)

	planejamentoCmd.AddCommand(planHojeCmd)
	planejamentoCmd.AddCommand(planMarcarCmd)
	planejamentoCmd.AddCommand(planVendaCmd)
	planejamentoCmd.AddCommand(planRespostaCmd)
	planejamentoCmd.AddCommand(planMetaCmd)
	planejamentoCmd.AddCommand(planPedidosCmd)
}
