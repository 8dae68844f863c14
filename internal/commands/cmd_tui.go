package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/tui"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates the interactive command run when no subcommand is given.
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Run starts the interactive list.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	return tui.Run(ctx, cmd.flags.controller)
}
