package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles the ANSI palette, symbols and box borders used by the CLI
// renderer, plus the lipgloss colors the TUI draws with.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending string
	BoxUnchecked, BoxChecked                      string
	CornerTL, CornerTR, CornerBL, CornerBR        string
	H, V                                          string
	SymDone, SymUnchecked                         string

	// Plain themes never emit escape codes.
	Plain bool

	Palette Palette
}

// Palette is the TUI color set.
type Palette struct {
	Success, Pending, Accent, Error, Border lipgloss.TerminalColor
}

var themes = map[string]Theme{
	"classic": {
		Name:  "classic",
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Pending: fgYellow,
		BoxUnchecked: "☐", BoxChecked: "☑",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymDone: "✔", SymUnchecked: "•",
		Palette: Palette{
			Success: lipgloss.Color("42"), Pending: lipgloss.Color("214"),
			Accent: lipgloss.Color("12"), Error: lipgloss.Color("9"), Border: lipgloss.Color("8"),
		},
	},
	"neon": {
		Name:  "neon",
		Title: "\033[95m", Muted: fgGray, Accent: "\033[96m",
		Success: fgGreen, Error: fgRed, Pending: "\033[93m",
		BoxUnchecked: "◻", BoxChecked: "◼",
		CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
		H: "─", V: "│",
		SymDone: "✔", SymUnchecked: "•",
		Palette: Palette{
			Success: lipgloss.Color("48"), Pending: lipgloss.Color("227"),
			Accent: lipgloss.Color("201"), Error: lipgloss.Color("197"), Border: lipgloss.Color("51"),
		},
	},
	"mono": {
		Name:         "mono",
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
		H: "-", V: "|",
		SymDone: "x", SymUnchecked: "-",
		Plain: true,
		Palette: Palette{
			Success: lipgloss.NoColor{}, Pending: lipgloss.NoColor{},
			Accent: lipgloss.NoColor{}, Error: lipgloss.NoColor{}, Border: lipgloss.NoColor{},
		},
	},
}

// Themes lists the accepted theme names.
func Themes() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

var current = themes["classic"]

// SetTheme switches the active theme. Names are case-insensitive.
func SetTheme(name string) error {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown theme %q (want one of %s)", name, strings.Join(Themes(), ", "))
	}
	current = t
	return nil
}

func Current() Theme { return current }
