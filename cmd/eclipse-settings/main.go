package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"github.com/pescuma/eclipse-settings/lib/consoles"
	"github.com/pescuma/eclipse-settings/lib/workspace"
)

type CLI struct {
	Project    string `short:"p" help:"Project directory. Default is the git work tree containing the current directory." type:"path" env:"ECLIPSE_SETTINGS_PROJECT"`
	Module     string `short:"m" help:"Module name shown in messages. Default is the project directory name."`
	NoColor    bool   `help:"Disable colored output." env:"ECLIPSE_SETTINGS_NO_COLOR"`
	Timestamps bool   `help:"Show the time of each message."`

	Setup SetupCmd `cmd:"" default:"withargs" help:"Copy the Eclipse settings templates into the settings directory."`
	List  ListCmd  `cmd:"" help:"List the templates that would be copied."`
	Diff  DiffCmd  `cmd:"" help:"Show the differences between the templates and the installed settings."`
	Clean CleanCmd `cmd:"" help:"Remove the installed settings that came from the templates."`
}

type context struct {
	ws *workspace.Workspace
}

var cli CLI

var configFiles = []string{".eclipse-settings.json", "~/.eclipse-settings.json"}

func newParser(c *CLI, paths ...string) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("eclipse-settings"),
		kong.Description("Generate the Eclipse settings of a project from its templates."),
		kong.ShortUsageOnError(),
		kong.Configuration(kong.JSON, paths...),
	)
}

func main() {
	parser, err := newParser(&cli, configFiles...)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	console := consoles.NewStdOutConsole(consoles.Options{
		Colors:     !cli.NoColor && consoles.IsTerminal(),
		Timestamps: cli.Timestamps,
	})

	ws, err := workspace.NewWorkspace(console, afero.NewOsFs(), cli.Project, cli.Module)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})
	ctx.FatalIfErrorf(err)
}
