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

var financasData string

var financasCmd = &cobra.Command{
	Use:   "financas",
	Short: "Controle financeiro",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResumo(cmd, args)
	},
}

var financasAddCmd = &cobra.Command{
	Use:   "add <income|expense> <valor> <categoria> [descrição...]",
	Short: "Registra uma movimentação",
	Args:  cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, amount, category := args[0], args[1], args[2]
		if errs := validate.Transaction(typ, amount, category); !errs.Valid() {
			return errors.New(errs.String())
		}
		value, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return fmt.Errorf("valor inválido: %s", amount)
		}
		date := time.Now()
		if financasData != "" {
			date, err = time.ParseInLocation("2006-01-02", financasData, time.Local)
			if err != nil {
				return fmt.Errorf("data inválida (use AAAA-MM-DD): %s", financasData)
			}
		}
		t := app.Finance.Add(&model.Transaction{
			Meta:        model.Meta{UserID: app.userID()},
			Type:        model.TransactionType(typ),
			Amount:      value,
			Category:    category,
			Description: strings.Join(args[3:], " "),
			Date:        date,
		})
		verb := "receita"
		if t.Type == model.TransactionExpense {
			verb = "despesa"
		}
		ui.OK(fmt.Sprintf("%s registrada: %s (%s)", verb, format.Currency(t.Amount), t.Category))
		return nil
	},
}

var financasLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "Lista as movimentações",
	RunE: func(cmd *cobra.Command, args []string) error {
		ts := app.Finance.Transactions()
		if len(ts) == 0 {
			fmt.Println(ui.MutedStyle.Render("nenhuma movimentação registrada"))
			return nil
		}
		for i, t := range ts {
			amount := ui.SuccessStyle.Render("+" + format.Currency(t.Amount))
			if t.Type == model.TransactionExpense {
				amount = ui.DangerStyle.Render("-" + format.Currency(t.Amount))
			}
			line := fmt.Sprintf("%2d. %s  %s  %s", i+1, t.Date.Format("02/01"), amount, t.Category)
			if t.Description != "" {
				line += ui.MutedStyle.Render("  " + t.Description)
			}
			fmt.Println(line)
		}
		return nil
	},
}

var financasRmCmd = &cobra.Command{
	Use:   "rm <índice>",
	Short: "Remove uma movimentação",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ts := app.Finance.Transactions()
		i, err := parseIndex(args[0], len(ts), "financas ls")
		if err != nil {
			return err
		}
		app.Finance.Delete(ts[i].ID)
		ui.OK("movimentação removida")
		return nil
	},
}

var financasResumoCmd = &cobra.Command{
	Use:   "resumo",
	Short: "Resumo com saldo e gastos por categoria",
	RunE:  runResumo,
}

func runResumo(cmd *cobra.Command, args []string) error {
	sum := app.Finance.Summary()
	balanceStyle := ui.SuccessStyle
	if sum.Balance.IsNegative() {
		balanceStyle = ui.DangerStyle
	}
	lines := []string{
		ui.TitleStyle.Render("Resumo Financeiro"),
		"Saldo:    " + balanceStyle.Render(format.Currency(sum.Balance)),
		"Receitas: " + ui.SuccessStyle.Render(format.Currency(sum.TotalIncome)),
		"Despesas: " + ui.DangerStyle.Render(format.Currency(sum.TotalExpenses)),
	}
	if len(sum.ExpensesByCategory) > 0 {
		lines = append(lines, "", ui.MutedStyle.Render("Gastos por categoria:"))
		for _, ct := range sum.ExpensesByCategory {
			share := format.Percentage(ct.Total.InexactFloat64(), sum.TotalExpenses.InexactFloat64())
			lines = append(lines, fmt.Sprintf("  %-16s %12s  %s", ct.Category, format.Currency(ct.Total), ui.MutedStyle.Render(share)))
		}
	}
	fmt.Println(ui.Panel(lines))
	return nil
}

func init() {
	financasAddCmd.Flags().StringVar(&financasData, "data", "", "data da movimentação (AAAA-MM-DD, padrão hoje)")
	financasCmd.AddCommand(financasAddCmd)
	financasCmd.AddCommand(financasLsCmd)
	financasCmd.AddCommand(financasRmCmd)
	financasCmd.AddCommand(financasResumoCmd)
}
