package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/app"
)

type DoneCmd struct {
	flags *Flags
}

// NewDoneCmd creates a new done command.
func NewDoneCmd(flags *Flags) *DoneCmd {
	return &DoneCmd{flags: flags}
}

// Register adds the done command to the application.
func (cmd *DoneCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "done",
		Aliases:     []string{"toggle"},
		Usage:       "Toggle a todo between done and pending",
		UsageText:   "tada done <id|number>",
		Description: "Marks a pending todo as done. Running it again on a done todo marks it pending.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *DoneCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return usage("tada done <id|number>")
	}

	ctrl := cmd.flags.controller(app.RendererFunc(nop), consoleNotifier{out: c.Root().Writer, errOut: c.Root().ErrWriter})
	ctrl.Start(ctx)

	it, err := ctrl.OnToggleRequested(ctx, resolveRef(ctrl.Store().All(), c.Args().First()))
	if err != nil {
		return err
	}

	if it.IsCompleted {
		okf(c, "marked done: %s", it.Title)
	} else {
		okf(c, "marked pending: %s", it.Title)
	}
	return nil
}
