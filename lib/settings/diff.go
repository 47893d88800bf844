package settings

import (
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/pescuma/eclipse-settings/lib/linediff"
	"github.com/pescuma/eclipse-settings/lib/templates"
)

type FileState int

const (
	Missing FileState = iota
	Equal
	Changed
)

func (s FileState) String() string {
	switch s {
	case Missing:
		return "missing"
	case Equal:
		return "up to date"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

type FileDiff struct {
	Template *templates.Template
	State    FileState
	Stats    linediff.Stats

	// Diffs goes from the installed file to the template, what a setup would change
	Diffs []linediff.Diff
}

func (i *Installer) Diff(listing *templates.Listing, dir string) ([]*FileDiff, error) {
	result := make([]*FileDiff, 0, len(listing.Templates))

	for _, t := range listing.Templates {
		d, err := i.diffOne(t, filepath.Join(dir, filepath.FromSlash(t.Name)))
		if err != nil {
			return nil, err
		}

		result = append(result, d)
	}

	return result, nil
}

func (i *Installer) diffOne(t *templates.Template, installed string) (*FileDiff, error) {
	wanted, err := t.Source.ReadFile(t.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading template %v", t.Name)
	}

	current, err := afero.ReadFile(i.fs, installed)
	if errors.Is(err, afero.ErrFileNotFound) {
		diffs := linediff.Do("", string(wanted))

		return &FileDiff{
			Template: t,
			State:    Missing,
			Stats:    linediff.Summarize(diffs),
			Diffs:    diffs,
		}, nil
	} else if err != nil {
		return nil, errors.Wrapf(err, "error reading %v", i.display(installed))
	}

	diffs := linediff.Do(string(current), string(wanted))
	stats := linediff.Summarize(diffs)

	return &FileDiff{
		Template: t,
		State:    lo.Ternary(stats.Changed(), Changed, Equal),
		Stats:    stats,
		Diffs:    diffs,
	}, nil
}
