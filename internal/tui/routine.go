package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rbmartins/secretaria/internal/model"
	"github.com/rbmartins/secretaria/internal/store"
	"github.com/rbmartins/secretaria/internal/ui"
	"github.com/rbmartins/secretaria/internal/validate"
)

// routineEntry adapts a RoutineItem to bubbles/list.Item.
type routineEntry struct {
	item *model.RoutineItem
}

func (e routineEntry) text() string {
	box := ui.BoxUnchecked
	if e.item.Completed {
		box = ui.BoxChecked
	}
	label := fmt.Sprintf("%s %s", e.item.Time, e.item.Activity)
	if e.item.Duration != "" {
		label += " (" + e.item.Duration + ")"
	}
	return fmt.Sprintf("%s %s", box, label)
}

func (e routineEntry) Title() string       { return e.text() }
func (e routineEntry) Description() string { return "" }
func (e routineEntry) FilterValue() string { return e.item.Activity }

// Custom delegate to control how entries render (single line).
type routineDelegate struct{}

func (d routineDelegate) Height() int                               { return 1 }
func (d routineDelegate) Spacing() int                              { return 0 }
func (d routineDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d routineDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	e, _ := item.(routineEntry)
	raw := e.text()
	space := strings.Index(raw, " ")
	if space < 0 {
		space = len(raw)
	}
	box, text := raw[:space], strings.TrimSpace(raw[space:])

	boxStyled := ui.MutedStyle.Render(box)
	textStyled := text
	if e.item.Completed {
		boxStyled = ui.SuccessStyle.Render(ui.BoxChecked)
		textStyled = ui.DoneStyle.Render(text)
	}

	line := fmt.Sprintf("%s %s", boxStyled, textStyled)
	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}

type routineModel struct {
	list    list.Model
	routine *store.Routine

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	// Inline edit (activity text)
	editing bool
	editID  string
	editErr string

	// Undo support (single-level; the item comes back with a new id)
	undoItem *model.RoutineItem

	width, height int
}

// RunRoutine starts the interactive routine list. Every action mutates
// the store directly, so there is nothing extra to save on quit.
func RunRoutine(routine *store.Routine) error {
	m := newRoutineModel(routine)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newRoutineModel(routine *store.Routine) routineModel {
	l := list.New(nil, routineDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("atividade", "atividades")

	addBind := key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "adicionar"))
	editBind := key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar"))
	undoBind := key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "desfazer"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{addBind, editBind, undoBind} }

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "HH:MM atividade..."
	ti.CharLimit = 200

	m := routineModel{list: l, routine: routine, ti: ti}
	m.reload()
	return m
}

// reload rebuilds the list from the store, keeping the time ordering.
func (m *routineModel) reload() {
	items := m.routine.TodayRoutine()
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, routineEntry{item: it})
	}
	m.list.SetItems(li)

	done, total := m.routine.CompletionStats()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Rotina do Dia"),
		ui.SuccessStyle.Render("✔"), done,
		ui.PendingStyle.Render("•"), total-done,
		ui.AccentStyle.Render("Total"), total,
	)
}

func (m routineModel) selected() (*model.RoutineItem, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.list.Items()) {
		return nil, false
	}
	e, ok := m.list.Items()[i].(routineEntry)
	if !ok {
		return nil, false
	}
	return e.item, true
}

func (m routineModel) Init() tea.Cmd { return nil }

func (m routineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	// add mode: "HH:MM atividade"
	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				raw := strings.TrimSpace(m.ti.Value())
				hhmm, activity, _ := strings.Cut(raw, " ")
				activity = strings.TrimSpace(activity)
				if errs := validate.RoutineItem(hhmm, activity); !errs.Valid() {
					m.addErr = errs.String()
					return m, nil
				}
				m.routine.Add(&model.RoutineItem{Time: hhmm, Activity: activity})
				m.reload()
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.adding = false
				return m, nil
			case "esc":
				m.adding = false
				m.addErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// edit mode
	if m.editing {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				activity := strings.TrimSpace(m.ti.Value())
				if activity == "" {
					m.editErr = "atividade não pode ser vazia"
					return m, nil
				}
				m.routine.Update(m.editID, model.RoutineItemPatch{Activity: &activity})
				m.reload()
				m.editErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				m.editing = false
				return m, nil
			case "esc":
				m.editing = false
				m.editErr = ""
				m.ti.SetValue("")
				m.ti.Blur()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			if it, ok := m.selected(); ok {
				completed := !it.Completed
				m.routine.Update(it.ID, model.RoutineItemPatch{Completed: &completed})
				m.reload()
			}
			return m, nil
		case "d":
			if it, ok := m.selected(); ok {
				copied := *it
				m.undoItem = &copied
				m.routine.Delete(it.ID)
				m.reload()
			}
			return m, nil
		case "a":
			m.adding = true
			m.ti.SetValue("")
			m.ti.Placeholder = "HH:MM atividade..."
			m.ti.Focus()
			return m, nil
		case "e":
			if it, ok := m.selected(); ok {
				m.editing = true
				m.editID = it.ID
				m.ti.SetValue(it.Activity)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Editar atividade..."
				m.ti.Focus()
			}
			return m, nil
		case "u":
			if m.undoItem != nil {
				m.routine.Add(&model.RoutineItem{
					Time:      m.undoItem.Time,
					Activity:  m.undoItem.Activity,
					Duration:  m.undoItem.Duration,
					Completed: m.undoItem.Completed,
				})
				m.undoItem = nil
				m.reload()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m routineModel) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.adding || m.editing {
		listHeight = h - 6
	}
	m.list.SetSize(w-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
		title := "Nova atividade"
		if m.editing {
			title = "Editar atividade"
		}
		if m.addErr != "" && m.adding {
			title += " -- " + ui.ErrorStyle.Render(m.addErr)
		}
		if m.editErr != "" && m.editing {
			title += " -- " + ui.ErrorStyle.Render(m.editErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.ti.View())
	}

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1)
	return border.Render(content)
}
