package main

import (
	"github.com/pescuma/eclipse-settings/lib/workspace"
)

type templateFlags struct {
	Templates []string `short:"t" default:"scripts/templates/eclipse-settings/files" help:"Template directories, relative to the project. Later ones override files of earlier ones."`
	Builtin   bool     `help:"Use the built-in Eclipse settings instead of template directories."`
	Settings  string   `short:"s" default:".settings" help:"Settings directory, relative to the project."`
	Include   []string `short:"i" help:"Only use templates matching these filters."`
	Exclude   []string `short:"e" help:"Do not use templates matching these filters. This has preference over the included ones."`
}

func (c *templateFlags) options() *workspace.TemplateOptions {
	return &workspace.TemplateOptions{
		Dirs:        c.Templates,
		Builtin:     c.Builtin,
		Includes:    c.Include,
		Excludes:    c.Exclude,
		SettingsDir: c.Settings,
	}
}
