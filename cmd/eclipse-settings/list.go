package main

import (
	"github.com/dustin/go-humanize"

	"github.com/pescuma/eclipse-settings/lib/common"
	"github.com/pescuma/eclipse-settings/lib/templates"
	"github.com/pescuma/eclipse-settings/lib/utils"
)

type ListCmd struct {
	templateFlags

	All bool `short:"a" help:"Also show skipped entries and why."`
}

func (c *ListCmd) Run(ctx *context) error {
	listing, err := ctx.ws.ListTemplates(c.options())
	if err != nil {
		return err
	}

	console := ctx.ws.Console()

	for _, t := range listing.Templates {
		console.Printf("%-45v %10v   %v\n", t.Name, humanize.Bytes(uint64(t.Size)), c.sourceName(ctx, t.Source))
	}

	if c.All {
		for _, s := range listing.Skipped {
			console.Printf("[dark_gray]%-45v %10v   %v[reset]\n", s.Name, "("+s.Reason.String()+")", c.sourceName(ctx, s.Source))
		}
	}

	console.Printf("\n%v\n", common.CountWithDetail("template", len(listing.Templates), humanize.Bytes(uint64(listing.TotalSize()))))

	return nil
}

func (c *ListCmd) sourceName(ctx *context, s *templates.Source) string {
	if s.IsBuiltin() {
		return s.Name()
	}
	return utils.RelOrAbs(ctx.ws.Root(), s.Name())
}
