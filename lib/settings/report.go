package settings

import (
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/pescuma/eclipse-settings/lib/common"
)

type Report struct {
	Directory        string
	DryRun           bool
	CreatedDirectory bool
	RemovedDirectory bool

	clean bool

	Copied  []string
	Skipped []string
	Removed []string
	Bytes   int64
}

func (r *Report) Summary() string {
	var parts []string

	if !r.clean {
		verb := "Copied"
		if r.DryRun {
			verb = "Would copy"
		}
		parts = append(parts, verb+" "+common.CountWithDetail("file", len(r.Copied), humanize.Bytes(uint64(r.Bytes)))+" to "+r.Directory)
	}

	if len(r.Skipped) > 0 {
		parts = append(parts, "kept "+common.Count("existing file", len(r.Skipped)))
	}

	if r.clean {
		verb := "Removed"
		if r.DryRun {
			verb = "Would remove"
		}
		parts = append(parts, verb+" "+common.Count("file", len(r.Removed))+" from "+r.Directory)
	}

	if r.RemovedDirectory {
		parts = append(parts, "removed empty "+r.Directory)
	}

	return strings.Join(parts, ", ")
}
