package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rbmartins/secretaria/internal/assistant"
	"github.com/rbmartins/secretaria/internal/tui"
)

var chatIA bool

var chatCmd = &cobra.Command{
	Use:   "chat [mensagem...]",
	Short: "Conversa com a secretária virtual",
	Long: `Sem argumentos abre a conversa interativa; com uma mensagem responde
uma única vez e sai. Por padrão a resposta vem das regras locais; com
--ia a pergunta vai para a API da Perplexity usando os seus dados
como contexto.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		send, err := buildSender()
		if err != nil {
			return err
		}

		if len(args) > 0 {
			out, err := send(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		greeting := assistant.NewResponder().Respond("olá", app.snapshot())
		return tui.RunChat(send, greeting)
	},
}

// buildSender picks the reply engine once; the snapshot is taken per
// message so the secretary always sees fresh aggregates.
func buildSender() (tui.ChatFunc, error) {
	if chatIA {
		client, err := assistant.NewClient(app.cfg.PerplexityAPIKey, assistant.WithModel(app.cfg.PerplexityModel))
		if err != nil {
			return nil, err
		}
		return func(ctx context.Context, input string) (string, error) {
			return client.SendMessage(ctx, app.snapshot(), input)
		}, nil
	}
	responder := assistant.NewResponder()
	return func(ctx context.Context, input string) (string, error) {
		return responder.Respond(input, app.snapshot()), nil
	}, nil
}

func init() {
	chatCmd.Flags().BoolVar(&chatIA, "ia", false, "responde via Perplexity em vez das regras locais")
}
