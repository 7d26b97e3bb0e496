package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/rbmartins/secretaria/internal/model"
	"github.com/rbmartins/secretaria/internal/ui"
)

// ChatFunc produces the secretary's reply for one user message. The
// rule-based responder never errors; the remote client can.
type ChatFunc func(ctx context.Context, input string) (string, error)

type replyMsg struct {
	content string
	err     error
}

type chatModel struct {
	vp   viewport.Model
	ti   textinput.Model
	spin spinner.Model

	// transcript is append-only; a second send while one is outstanding
	// cannot corrupt it, only interleave.
	transcript []model.ChatMessage

	send    ChatFunc
	waiting bool
	cancel  context.CancelFunc

	width, height int
	ready         bool
}

// RunChat starts the interactive secretary conversation.
func RunChat(send ChatFunc, greeting string) error {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Pergunte algo à sua secretária..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = ui.AccentStyle

	m := chatModel{ti: ti, spin: sp, send: send}
	if greeting != "" {
		m.transcript = append(m.transcript, assistantMessage(greeting))
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func assistantMessage(content string) model.ChatMessage {
	return model.ChatMessage{ID: uuid.NewString(), Role: model.RoleAssistant, Content: content, Timestamp: time.Now()}
}

func userMessage(content string) model.ChatMessage {
	return model.ChatMessage{ID: uuid.NewString(), Role: model.RoleUser, Content: content, Timestamp: time.Now()}
}

func (m chatModel) Init() tea.Cmd { return textinput.Blink }

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		vpHeight := m.height - 5
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.vp = viewport.New(m.width-4, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = m.width - 4
			m.vp.Height = vpHeight
		}
		m.ti.Width = m.width - 8
		m.vp.SetContent(m.renderTranscript())
		m.vp.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		case "esc":
			if m.waiting {
				// cancel the in-flight remote call, keep chatting
				if m.cancel != nil {
					m.cancel()
				}
				return m, nil
			}
			return m, tea.Quit
		case "enter":
			if m.waiting {
				// one in-flight send at a time
				return m, nil
			}
			text := strings.TrimSpace(m.ti.Value())
			if text == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, userMessage(text))
			m.ti.SetValue("")
			m.vp.SetContent(m.renderTranscript())
			m.vp.GotoBottom()

			ctx, cancel := context.WithCancel(context.Background())
			m.cancel = cancel
			m.waiting = true
			send := m.send
			return m, tea.Batch(m.spin.Tick, func() tea.Msg {
				out, err := send(ctx, text)
				return replyMsg{content: out, err: err}
			})
		}

	case replyMsg:
		m.waiting = false
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if msg.err != nil {
			// error bubble in the transcript; the transcript itself is intact
			m.transcript = append(m.transcript, assistantMessage(
				ui.ErrorStyle.Render("⚠ "+msg.err.Error())))
		} else {
			m.transcript = append(m.transcript, assistantMessage(msg.content))
		}
		m.vp.SetContent(m.renderTranscript())
		m.vp.GotoBottom()
		return m, nil

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	cmds = append(cmds, cmd)
	m.vp, cmd = m.vp.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m chatModel) renderTranscript() string {
	wrap := lipgloss.NewStyle().Width(m.vp.Width)
	var b strings.Builder
	for i, msg := range m.transcript {
		if i > 0 {
			b.WriteByte('\n')
		}
		who := ui.SuccessStyle.Render("Secretária:")
		if msg.Role == model.RoleUser {
			who = ui.AccentStyle.Render("Você:")
		}
		b.WriteString(wrap.Render(who + " " + msg.Content))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m chatModel) View() string {
	if !m.ready {
		return "carregando..."
	}
	status := ui.HelpStyle.Render("enter envia • esc sai • ctrl+c força saída")
	if m.waiting {
		status = m.spin.View() + ui.MutedStyle.Render(" pensando... (esc cancela)")
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(m.vp.View() + "\n" + m.ti.View() + "\n" + status)
}
