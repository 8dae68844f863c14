package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Makepad-fr/tada/internal/model"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	item model.Item
}

func (i listItem) FilterValue() string { return i.item.Title }

// itemDelegate renders one item per line.
type itemDelegate struct {
	st styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.st.muted.Render(d.st.boxUnchecked)
	text := it.item.Title
	if it.item.IsCompleted {
		box = d.st.success.Render(d.st.boxChecked)
		text = d.st.done.Render(text)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.st.selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}
