// Package tui is the interactive todo list. All state changes go through the
// app controller; the model only mirrors what the controller renders.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/export"
	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/notify"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Builder wires a controller to the view it should render into.
type Builder func(r app.Renderer, n notify.Notifier) *app.Controller

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
)

// sink receives controller output. Model is copied on every Update, so the
// controller writes here and the model reads it back in sync.
type sink struct {
	items  []model.Item
	filter model.Filter
	dirty  bool
	notes  []notify.Notification
}

func (s *sink) Render(items []model.Item, filter model.Filter) {
	s.items = items
	s.filter = filter
	s.dirty = true
}

func (s *sink) Notify(n notify.Notification) { s.notes = append(s.notes, n) }

type Model struct {
	ctx    context.Context
	ctrl   *app.Controller
	sink   *sink
	toasts *ToastController
	st     styles

	list  list.Model
	input textinput.Model
	mode  mode

	width, height int
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
	filterBind = key.NewBinding(key.WithKeys("f", "1", "2", "3"), key.WithHelp("f/1/2/3", "filter"))
	exportBind = key.NewBinding(key.WithKeys("p", "x", "w"), key.WithHelp("p/x/w", "export pdf/xlsx/docx"))
)

// New loads the list through the controller that build returns.
func New(ctx context.Context, build Builder) Model {
	s := &sink{}
	ctrl := build(s, s)
	st := newStyles(ui.Current())

	l := list.New(nil, itemDelegate{st: st}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = st.title
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	bindings := func() []key.Binding {
		return []key.Binding{addBind, editBind, toggleBind, deleteBind, filterBind, exportBind}
	}
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		ctx:    ctx,
		ctrl:   ctrl,
		sink:   s,
		toasts: NewToastController(st),
		st:     st,
		list:   l,
		input:  ti,
		width:  80,
		height: 24,
	}
	ctrl.Start(ctx)
	m.sync()
	return m
}

// Run starts the interactive list and blocks until the user quits.
func Run(ctx context.Context, build Builder) error {
	p := tea.NewProgram(New(ctx, build), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return m.toasts.ensureTick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case toastTickMsg:
		cmd := m.toasts.onTick()
		m.resize()
		return m, cmd
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "ctrl+x" {
			m.toasts.Dismiss()
			return m, nil
		}
		if m.mode != modeBrowse {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Placeholder = "New item title..."
		m.resize()
		cmd := m.input.Focus()
		return m, cmd
	case "e":
		id, ok := m.selectedID()
		if !ok {
			return m, nil
		}
		title, err := m.ctrl.OnEditRequested(m.ctx, id)
		if err != nil {
			cmd := m.sync()
			return m, cmd
		}
		m.mode = modeEdit
		m.input.SetValue(title)
		m.input.CursorEnd()
		m.input.Placeholder = "Edit item title..."
		m.resize()
		cmd := m.input.Focus()
		return m, cmd
	case " ":
		if id, ok := m.selectedID(); ok {
			_, _ = m.ctrl.OnToggleRequested(m.ctx, id)
		}
		cmd := m.sync()
		return m, cmd
	case "d":
		if id, ok := m.selectedID(); ok {
			_ = m.ctrl.OnDeleteRequested(m.ctx, id)
		}
		cmd := m.sync()
		return m, cmd
	case "f":
		_ = m.ctrl.OnFilterChanged(m.ctx, m.sink.filter.Next())
		cmd := m.sync()
		return m, cmd
	case "1", "2", "3":
		f := model.Filters()[msg.String()[0]-'1']
		_ = m.ctrl.OnFilterChanged(m.ctx, f)
		cmd := m.sync()
		return m, cmd
	case "p":
		return m.export(export.FormatPDF)
	case "x":
		return m.export(export.FormatXLSX)
	case "w":
		return m.export(export.FormatDOCX)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) export(f export.Format) (tea.Model, tea.Cmd) {
	_, _ = m.ctrl.OnExportRequested(m.ctx, f)
	cmd := m.sync()
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if _, err := m.ctrl.OnAddOrUpdateRequested(m.ctx, m.input.Value()); err != nil {
			// stay in the input so the title can be fixed
			cmd := m.sync()
			return m, cmd
		}
		m.closeInput()
		cmd := m.sync()
		return m, cmd
	case "esc":
		if m.mode == modeEdit {
			m.ctrl.OnCancelEdit()
		}
		m.closeInput()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closeInput() {
	m.mode = modeBrowse
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m Model) selectedID() (string, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return "", false
	}
	return it.item.ID, true
}

// sync copies pending renders and notices from the sink into the model.
func (m *Model) sync() tea.Cmd {
	if m.sink.dirty {
		items := make([]list.Item, 0, len(m.sink.items))
		for _, it := range m.sink.items {
			items = append(items, listItem{item: it})
		}
		m.list.SetItems(items)
		m.list.Title = m.header()
		m.sink.dirty = false
	}
	for _, n := range m.sink.notes {
		m.toasts.Push(n)
	}
	m.sink.notes = nil
	m.resize()
	return m.toasts.ensureTick()
}

// header shows counts over the whole list and the active filter.
func (m Model) header() string {
	var done, pending int
	for _, it := range m.ctrl.Store().All() {
		if it.IsCompleted {
			done++
		} else {
			pending++
		}
	}
	return fmt.Sprintf("Todos   %s %d  %s %d  %s %d  [%s]",
		m.st.success.Render(m.st.symDone), done,
		m.st.pending.Render(m.st.symPending), pending,
		m.st.accent.Render("Total"), done+pending,
		m.sink.filter,
	)
}

func (m *Model) resize() {
	h := m.height - 4
	if m.mode != modeBrowse {
		h -= 4
	}
	if m.toasts.HasToasts() {
		h -= 3 * len(m.toasts.Toasts())
	}
	m.list.SetSize(max(m.width-4, 10), max(h, 3))
}

func (m Model) View() string {
	var content string
	if len(m.list.Items()) == 0 {
		content = m.st.title.Render(m.list.Title) + "\n\n" + m.st.muted.Render("no items") +
			"\n\n" + m.st.help.Render("a add • f filter • q quit")
	} else {
		content = m.list.View()
	}

	if m.mode != modeBrowse {
		title := "Add new item"
		if m.mode == modeEdit {
			title = "Edit item"
		}
		content += "\n" + m.st.frame.Render(title+"\n"+m.input.View())
	}

	out := m.st.frame.Render(content)
	if tv := m.toasts.View(); tv != "" {
		out = lipgloss.JoinVertical(lipgloss.Left, out, tv)
	}
	return strings.TrimRight(out, "\n")
}
