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
	"github.com/rs/zerolog"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/ui"
)

// listItem adapts a *model.Item to bubbles/list.Item
type listItem struct {
	item *model.Item
}

func (i listItem) Title() string       { return i.item.Title() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title() }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()

	box := t.Muted.Render(t.BoxUnchecked)
	text := it.item.Title()
	if it.item.IsDone() {
		box = t.Success.Render(t.BoxChecked)
		text = t.Done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

var (
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	removeBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	hideBind   = key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "hide done"))
)

// Model is the Bubble Tea model over a todo list. Every edit goes through
// the *model.List, the bubbles list only mirrors it.
type Model struct {
	todos *model.List
	list  list.Model
	log   zerolog.Logger

	hideDone bool
	width    int
	height   int

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string
}

// New builds the model; todos is edited in place.
func New(todos *model.List, log zerolog.Logger) Model {
	t := ui.Current()

	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = t.Title
	l.Styles.HelpStyle = t.Muted
	l.Styles.PaginationStyle = t.Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")

	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, removeBind, hideBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "New item title..."
	ti.CharLimit = 200

	m := Model{
		todos:  todos,
		list:   l,
		log:    log,
		ti:     ti,
		width:  80,
		height: 24,
	}
	m.refresh()
	m.resize()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(todos *model.List, log zerolog.Logger) error {
	p := tea.NewProgram(New(todos, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// refresh rebuilds the visible rows and the header from m.todos.
func (m *Model) refresh() tea.Cmd {
	view := m.todos
	if m.hideDone {
		view = m.todos.Filter(model.Pending)
	}
	rows := make([]list.Item, 0, view.Size())
	view.ForEach(func(it *model.Item) {
		rows = append(rows, listItem{item: it})
	})

	t := ui.Current()
	done, pending := m.todos.Counts()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.todos.Title(),
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), m.todos.Size(),
	)
	return m.list.SetItems(rows)
}

// selected returns the highlighted item and its index in m.todos.
func (m Model) selected() (*model.Item, int, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil, -1, false
	}
	for i, it := range m.todos.Items() {
		if it == li.item {
			return it, i, true
		}
	}
	return nil, -1, false
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	// add mode
	if m.adding {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.addErr = "Title cannot be empty"
					return m, nil
				}
				if err := m.todos.Add(model.NewItem(title)); err != nil {
					m.addErr = err.Error()
					return m, nil
				}
				m.log.Debug().Str("title", title).Msg("item added")
				m.closeInput()
				cmd = m.refresh()
				m.list.Select(len(m.list.Items()) - 1)
				return m, cmd
			case "esc":
				m.closeInput()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// let the fuzzy filter own the keyboard while it is open
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case " ":
			it, idx, ok := m.selected()
			if !ok {
				return m, nil
			}
			var err error
			if it.IsDone() {
				err = m.todos.MarkUndoneAt(idx)
			} else {
				err = m.todos.MarkDoneAt(idx)
			}
			if err != nil {
				m.log.Error().Err(err).Int("index", idx).Msg("toggle")
				return m, nil
			}
			m.log.Debug().Int("index", idx).Bool("done", it.IsDone()).Msg("item toggled")
			return m, m.refresh()
		case "d":
			_, idx, ok := m.selected()
			if !ok {
				return m, nil
			}
			if _, err := m.todos.RemoveAt(idx); err != nil {
				m.log.Error().Err(err).Int("index", idx).Msg("remove")
				return m, nil
			}
			m.log.Debug().Int("index", idx).Msg("item removed")
			return m, m.refresh()
		case "a":
			m.adding = true
			m.addErr = ""
			m.ti.SetValue("")
			m.resize()
			return m, m.ti.Focus()
		case "c":
			m.hideDone = !m.hideDone
			return m, m.refresh()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding {
		h = m.height - 8
	}
	m.list.SetSize(m.width-4, max(h, 1))
}

func (m Model) View() string {
	content := m.list.View()
	if m.adding {
		t := ui.Current()
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.BorderColor).Padding(0, 1)
		title := "Add new item"
		if m.addErr != "" {
			title += " - " + t.Error.Render(m.addErr)
		}
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return ui.PanelString(content)
}
