package commands

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/app"
)

type AddCmd struct {
	flags *Flags
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags) *AddCmd {
	return &AddCmd{flags: flags}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a todo",
		UsageText: "tada add <title...>",
		Action:    cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	// The arg parser drops blank arguments, so a missing title is an empty one.
	title := strings.Join(c.Args().Slice(), " ")

	ctrl := cmd.flags.controller(app.RendererFunc(nop), consoleNotifier{out: c.Root().Writer, errOut: c.Root().ErrWriter})
	ctrl.Start(ctx)
	it, err := ctrl.OnAddOrUpdateRequested(ctx, title)
	if err != nil {
		return err
	}

	okf(c, "added %q", it.Title)
	return nil
}
