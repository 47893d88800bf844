package main

import (
	"github.com/abiosoft/lineprefix"

	"github.com/pescuma/eclipse-settings/lib/linediff"
	"github.com/pescuma/eclipse-settings/lib/settings"
)

type DiffCmd struct {
	templateFlags

	Stat bool `help:"Only show the number of changed lines per file."`
}

func (c *DiffCmd) Run(ctx *context) error {
	diffs, err := ctx.ws.Diff(c.options())
	if err != nil {
		return err
	}

	console := ctx.ws.Console()

	for _, d := range diffs {
		switch d.State {
		case settings.Equal:
			console.Printf("  %v: %v\n", d.Template.Name, d.State)
			continue

		case settings.Missing:
			console.Printf("[green]+ %v: %v[reset]\n", d.Template.Name, d.State)

		case settings.Changed:
			console.Printf("[yellow]~ %v: +%v -%v[reset]\n", d.Template.Name, d.Stats.Inserted, d.Stats.Deleted)
		}

		if c.Stat || d.State == settings.Missing {
			continue
		}

		console.PushPrefix("    ")

		prefix := lineprefix.PrefixFunc(func() string {
			return console.Prepare("")
		})

		err = linediff.Write(lineprefix.New(lineprefix.Writer(console.Writer()), prefix), d.Diffs)

		console.PopPrefix()

		if err != nil {
			return err
		}
	}

	return nil
}
