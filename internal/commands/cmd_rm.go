package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/app"
)

type RmCmd struct {
	flags *Flags
}

// NewRmCmd creates a new rm command.
func NewRmCmd(flags *Flags) *RmCmd {
	return &RmCmd{flags: flags}
}

// Register adds the rm command to the application.
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Remove a todo",
		UsageText: "tada rm <id|number>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return usage("tada rm <id|number>")
	}

	ctrl := cmd.flags.controller(app.RendererFunc(nop), consoleNotifier{out: c.Root().Writer, errOut: c.Root().ErrWriter})
	ctrl.Start(ctx)

	id := resolveRef(ctrl.Store().All(), c.Args().First())
	if err := ctrl.OnDeleteRequested(ctx, id); err != nil {
		return err
	}

	okf(c, "removed")
	return nil
}
