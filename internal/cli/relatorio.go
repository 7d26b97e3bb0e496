package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbmartins/secretaria/internal/assistant"
)

// Reports always go through the remote secretary; they need analysis
// the local rules cannot produce.
var relatorioCmd = &cobra.Command{
	Use:       "relatorio <semanal|mensal|financeiro|estudos>",
	Short:     "Relatórios gerados pela secretária remota (requer API key)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"semanal", "mensal", "financeiro", "estudos"},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := assistant.NewClient(app.cfg.PerplexityAPIKey, assistant.WithModel(app.cfg.PerplexityModel))
		if err != nil {
			return err
		}
		snap := app.snapshot()
		ctx := cmd.Context()

		var report func(context.Context, assistant.Snapshot) (string, error)
		switch args[0] {
		case "semanal":
			report = client.WeeklyReport
		case "mensal":
			report = client.MonthlyReport
		case "financeiro":
			report = client.FinancialAdvice
		case "estudos":
			report = client.StudyRecommendations
		default:
			return fmt.Errorf("relatório desconhecido: %s (use semanal, mensal, financeiro ou estudos)", args[0])
		}

		out, err := report(ctx, snap)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}
