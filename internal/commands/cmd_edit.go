package commands

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/app"
)

type EditCmd struct {
	flags *Flags
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Rename a todo",
		UsageText: "tada edit <id|number> <title...>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	if !c.Args().Present() {
		return usage("tada edit <id|number> <title...>")
	}
	args := c.Args().Slice()

	ctrl := cmd.flags.controller(app.RendererFunc(nop), consoleNotifier{out: c.Root().Writer, errOut: c.Root().ErrWriter})
	ctrl.Start(ctx)

	id := resolveRef(ctrl.Store().All(), args[0])
	if _, err := ctrl.OnEditRequested(ctx, id); err != nil {
		return err
	}
	it, err := ctrl.OnAddOrUpdateRequested(ctx, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	okf(c, "renamed to %q", it.Title)
	return nil
}
