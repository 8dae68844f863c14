package commands

import (
	"fmt"
	"io"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/notify"
	"github.com/Makepad-fr/tada/internal/ui"
)

// listView keeps the last rendered list; commands print it once at the end.
type listView struct {
	items  []model.Item
	filter model.Filter
}

func (v *listView) Render(items []model.Item, filter model.Filter) {
	v.items = items
	v.filter = filter
}

// consoleNotifier prints notices the way the rest of the CLI prints status lines.
type consoleNotifier struct {
	out, errOut io.Writer
}

func (n consoleNotifier) Notify(note notify.Notification) {
	switch note.Level {
	case notify.LevelInfo:
		ui.OK(n.out, note.Message)
	case notify.LevelWarning:
		ui.Warn(n.errOut, note.Message)
	default:
		ui.Fail(n.errOut, note.Message)
	}
}

// -------------- rendering helpers --------------

// printList draws the panel. all is the full list and numbers rows by their
// position in it so indexes stay valid as refs under any filter.
func printList(w io.Writer, all []model.Item, v *listView, group bool) {
	t := ui.Current()
	d, p := stats(all)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(t.Title, "Todos"),
		ui.C(t.Success, t.SymDone), d,
		ui.C(t.Pending, t.SymUnchecked), p,
		ui.C(t.Accent, "Total"), len(all),
	)
	if v.filter != "" && v.filter != model.FilterAll {
		header += "  " + ui.C(t.Muted, "["+string(v.filter)+"]")
	}

	pos := make(map[string]int, len(all))
	for i, it := range all {
		pos[it.ID] = i + 1
	}

	var lines []string
	lines = append(lines, header)
	lines = append(lines, ui.C(t.Muted, ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")

	if group {
		lines = append(lines, groupLines(v.items, pos)...)
	} else {
		lines = append(lines, flatLines(v.items, pos)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Muted, "Tip: add with `tada add \"Buy milk\"`"))
	ui.Panel(w, lines)
}

func stats(items []model.Item) (done, pending int) {
	for _, it := range items {
		if it.IsCompleted {
			done++
		} else {
			pending++
		}
	}
	return
}

func flatLines(items []model.Item, pos map[string]int) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{ui.C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		idx := fmt.Sprintf("%2d.", pos[it.ID])
		box := t.BoxUnchecked
		color := t.Muted
		if it.IsCompleted {
			box, color = t.BoxChecked, t.Success
		}
		title := it.Title
		if r := []rune(title); len(r) > 80 {
			title = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.Dim(idx), ui.C(color, box), title))
	}
	return out
}

func groupLines(items []model.Item, pos map[string]int) []string {
	t := ui.Current()
	var pend, done []model.Item
	for _, it := range items {
		if it.IsCompleted {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.C(t.Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend, pos)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(t.Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.C(t.Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done, pos)...)
	}
	return lines
}
