package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/ui"
)

// styles holds the lipgloss styles derived from a ui.Theme.
type styles struct {
	title    lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	help     lipgloss.Style
	frame    lipgloss.Style

	toastInfo    lipgloss.Style
	toastWarning lipgloss.Style
	toastError   lipgloss.Style

	boxChecked, boxUnchecked string
	symDone, symPending      string
}

func newStyles(t ui.Theme) styles {
	p := t.Palette
	toast := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		success:  lipgloss.NewStyle().Foreground(p.Success),
		pending:  lipgloss.NewStyle().Foreground(p.Pending),
		accent:   lipgloss.NewStyle().Foreground(p.Accent),
		muted:    lipgloss.NewStyle().Faint(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:     lipgloss.NewStyle().Faint(true),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),

		toastInfo:    toast.BorderForeground(p.Accent),
		toastWarning: toast.BorderForeground(p.Pending),
		toastError:   toast.BorderForeground(p.Error),

		boxChecked:   t.BoxChecked,
		boxUnchecked: t.BoxUnchecked,
		symDone:      t.SymDone,
		symPending:   t.SymUnchecked,
	}
}
