package commands

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

func okf(c *cli.Command, format string, args ...any) {
	ui.OK(c.Root().Writer, fmt.Sprintf(format, args...))
}

// nop discards renders for commands that only print a status line.
func nop([]model.Item, model.Filter) {}
