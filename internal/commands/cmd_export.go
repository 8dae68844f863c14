package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Makepad-fr/tada/internal/app"
	"github.com/Makepad-fr/tada/internal/export"
)

type ExportCmd struct {
	flags  *Flags
	filter string
	out    string
}

// NewExportCmd creates a new export command.
func NewExportCmd(flags *Flags) *ExportCmd {
	return &ExportCmd{flags: flags}
}

// Register adds the export command to the application.
func (cmd *ExportCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "export",
		Usage:     "Export todos as a PDF, Excel or Word document",
		UsageText: "tada export <pdf|xlsx|docx> [--filter all|completed|incomplete] [--out dir]",
		Description: `Writes todos.pdf, todos.xlsx or todos.docx with one row per todo:
number, id, title and status. The filter selects which todos are written.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "export only all, completed or incomplete todos",
				Value:       "all",
				Destination: &cmd.filter,
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "output directory (defaults to export.dir from config, then the working directory)",
				Destination: &cmd.out,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ExportCmd) run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return usage(cmd.usageText())
	}
	format, err := export.ParseFormat(c.Args().First())
	if err != nil {
		return usage(cmd.usageText())
	}
	f, err := parseFilterFlag(cmd.filter)
	if err != nil {
		return err
	}

	if cmd.out != "" {
		cmd.flags.Config.Export.Dir = cmd.out
	}

	ctrl := cmd.flags.controller(app.RendererFunc(nop), consoleNotifier{out: c.Root().Writer, errOut: c.Root().ErrWriter})
	ctrl.Start(ctx)
	if err := ctrl.OnFilterChanged(ctx, f); err != nil {
		return err
	}

	_, err = ctrl.OnExportRequested(ctx, format)
	return err
}

func (cmd *ExportCmd) usageText() string {
	names := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		names = append(names, string(f))
	}
	return fmt.Sprintf("tada export <%s>", strings.Join(names, "|"))
}
