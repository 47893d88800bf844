package settings

import (
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/pescuma/eclipse-settings/lib/templates"
	"github.com/pescuma/eclipse-settings/lib/utils"
)

// Clean removes from dir the files that have the same name as a template. Other files are kept,
// and dir is removed only if nothing else is left inside it.
func (i *Installer) Clean(listing *templates.Listing, dir string, opts *Options) (*Report, error) {
	if opts == nil {
		opts = &Options{}
	}

	report := &Report{
		Directory: i.display(dir),
		DryRun:    opts.DryRun,
		clean:     true,
	}

	exists, err := i.checkDirectory(dir)
	if err != nil || !exists {
		return report, err
	}

	var errs *multierror.Error
	for _, t := range listing.Templates {
		installed := filepath.Join(dir, filepath.FromSlash(t.Name))

		found, err := utils.FileExists(i.fs, installed)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if !found {
			continue
		}

		if opts.Verbose {
			i.console.Printf("\trm %v\n", filepath.ToSlash(i.display(installed)))
		}

		if !opts.DryRun {
			err = i.remove(installed)
			if err != nil {
				errs = multierror.Append(errs, errors.Wrapf(err, "error removing %v", t.Name))
				continue
			}
		}

		report.Removed = append(report.Removed, t.Name)
	}

	if !opts.DryRun && errs.ErrorOrNil() == nil {
		empty, err := afero.IsEmpty(i.fs, dir)
		if err != nil {
			return report, err
		}

		if empty {
			err = i.remove(dir)
			if err != nil {
				return report, errors.Wrapf(err, "error removing %v", report.Directory)
			}
			report.RemovedDirectory = true
		}
	}

	return report, errs.ErrorOrNil()
}
