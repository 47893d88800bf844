package main

import (
	"github.com/pescuma/eclipse-settings/lib/settings"
)

type CleanCmd struct {
	templateFlags

	DryRun  bool `short:"n" help:"Only show what would be removed."`
	Verbose bool `short:"v" help:"Show each removed file."`
}

func (c *CleanCmd) Run(ctx *context) error {
	_, err := ctx.ws.Clean(c.options(), &settings.Options{
		DryRun:  c.DryRun,
		Verbose: c.Verbose || c.DryRun,
	})
	return err
}
