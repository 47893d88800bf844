package main

import (
	"github.com/pescuma/eclipse-settings/lib/consoles"
	"github.com/pescuma/eclipse-settings/lib/settings"
)

type SetupCmd struct {
	templateFlags

	SkipExisting bool `help:"Keep files already present in the settings directory."`
	DryRun       bool `short:"n" help:"Only show what would be done."`
	Verbose      bool `short:"v" help:"Show each copied file."`
	Progress     bool `help:"Show a progress bar while copying."`
}

func (c *SetupCmd) Run(ctx *context) error {
	_, err := ctx.ws.Setup(c.options(), &settings.Options{
		SkipExisting: c.SkipExisting,
		DryRun:       c.DryRun,
		Verbose:      c.Verbose,
		Progress:     c.Progress && consoles.IsTerminal(),
	})
	return err
}
