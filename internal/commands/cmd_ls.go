package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/model"
)

type LsCmd struct {
	flags  *Flags
	filter string
	group  bool
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List todos",
		UsageText: "tada ls [--filter all|completed|incomplete] [--group]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "show only all, completed or incomplete todos",
				Value:       string(model.FilterAll),
				Destination: &cmd.filter,
			},
			&cli.BoolFlag{
				Name:        "group",
				Aliases:     []string{"g"},
				Usage:       "group the list by pending and done",
				Sources:     cli.EnvVars("TADA_GROUP"),
				Destination: &cmd.group,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	f, err := parseFilterFlag(cmd.filter)
	if err != nil {
		return err
	}

	view := &listView{}
	ctrl := cmd.flags.controller(view, consoleNotifier{out: c.Root().Writer, errOut: c.Root().ErrWriter})
	ctrl.Start(ctx)
	if err := ctrl.OnFilterChanged(ctx, f); err != nil {
		return err
	}

	printList(c.Root().Writer, ctrl.Store().All(), view, cmd.group)
	return nil
}

func parseFilterFlag(s string) (model.Filter, error) {
	f, err := model.ParseFilter(s)
	if err != nil {
		names := make([]string, 0, len(model.Filters()))
		for _, f := range model.Filters() {
			names = append(names, string(f))
		}
		return "", usage(fmt.Sprintf("--filter must be one of %s, got %q", strings.Join(names, ", "), s))
	}
	return f, nil
}
