package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Remote secretary: same snapshot, answered by the Perplexity
// chat-completions API instead of the keyword rules.

const (
	defaultBaseURL = "https://api.perplexity.ai/chat/completions"

	// DefaultModel is used when no model is configured.
	DefaultModel = "llama-3.1-sonar-small-128k-online"
)

// ErrNoAPIKey is returned before any network activity when the bearer
// credential is missing from the configuration.
var ErrNoAPIKey = errors.New("perplexity: api key not configured")

type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

type ClientOption func(*Client)

func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

func WithModel(m string) ClientOption {
	return func(c *Client) {
		if m != "" {
			c.model = m
		}
	}
}

func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// NewClient fails fast when the key is absent.
func NewClient(apiKey string, opts ...ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoAPIKey
	}
	c := &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: defaultBaseURL,
		model:   DefaultModel,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func systemPrompt(s Snapshot) string {
	return fmt.Sprintf(`Você é minha secretária virtual especializada em organização pessoal e produtividade.

Contexto atual do usuário:
- Nome: %s
- Rotina: %d/%d atividades concluídas hoje
- Financeiro: Saldo atual R$ %s
- Estudos: %.1fh inglês, %.1fh concurso MP
- Progresso semanal: %.1fh/%.0fh
- Fiverr: %d tarefas pendentes

Suas responsabilidades:
1. Fornecer recomendações personalizadas baseadas nos dados do usuário
2. Ajudar na organização da rotina e priorização de tarefas
3. Dar insights sobre gastos e sugestões financeiras
4. Motivar e acompanhar o progresso dos estudos
5. Alertar sobre prazos e compromissos importantes

Seja concisa, objetiva e sempre útil. Use português brasileiro.`,
		s.UserName,
		s.RoutineCompleted, s.RoutineTotal,
		s.Balance.StringFixed(2),
		s.EnglishHours, s.ConcursoHours,
		s.WeekProgressHours, s.WeeklyGoalHours,
		s.PendingTasks)
}

// SendMessage forwards the user message plus the snapshot-derived system
// prompt and returns the completion text. No retry; the caller decides
// how to surface failures.
func (c *Client) SendMessage(ctx context.Context, s Snapshot, userMessage string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt(s)},
			{Role: "user", Content: userMessage},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return "", fmt.Errorf("perplexity: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("perplexity: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("perplexity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var ae apiError
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &ae) == nil {
			if ae.Error.Message != "" {
				msg = ae.Error.Message
			} else if ae.Message != "" {
				msg = ae.Message
			}
		}
		return "", fmt.Errorf("perplexity: api error (%s): %s", resp.Status, msg)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", fmt.Errorf("perplexity: decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", errors.New("perplexity: empty completion")
	}
	return cr.Choices[0].Message.Content, nil
}

// WeeklyReport asks for the canned weekly progress report.
func (c *Client) WeeklyReport(ctx context.Context, s Snapshot) (string, error) {
	return c.SendMessage(ctx, s,
		"Gere um relatório semanal completo do meu progresso, incluindo estudos, finanças, rotina e tarefas do Fiverr. Destaque pontos positivos e áreas que preciso melhorar.")
}

// MonthlyReport asks for the canned monthly analysis.
func (c *Client) MonthlyReport(ctx context.Context, s Snapshot) (string, error) {
	return c.SendMessage(ctx, s,
		"Gere um relatório mensal completo com análise profunda do meu desempenho em todas as áreas. Inclua metas alcançadas, gastos totais e recomendações para o próximo mês.")
}

// FinancialAdvice asks for saving tips based on current spending.
func (c *Client) FinancialAdvice(ctx context.Context, s Snapshot) (string, error) {
	return c.SendMessage(ctx, s,
		"Com base nos meus gastos atuais, me dê conselhos financeiros práticos para economizar e alcançar minhas metas.")
}

// StudyRecommendations asks for study plan adjustments.
func (c *Client) StudyRecommendations(ctx context.Context, s Snapshot) (string, error) {
	return c.SendMessage(ctx, s,
		"Analise meu progresso de estudos e me dê recomendações específicas para melhorar meu desempenho e atingir minhas metas.")
}
